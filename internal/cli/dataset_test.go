package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transfers.app/billing/model"
)

func TestReadDataset(t *testing.T) {
	ds, err := ReadDataset(strings.NewReader(datasetJSONFixture))
	require.NoError(t, err)

	require.Len(t, ds.Clients, 1)
	assert.Equal(t, "Hotel Miramar", ds.Clients[0].Name)

	require.Len(t, ds.Records, 3)
	assert.Equal(t, []uuid.UUID{uuid.MustParse(brokenID)}, ds.Invalid)

	dispo := ds.Records[1]
	rate, ok := dispo.Pricing.(model.HourlyRate)
	require.True(t, ok)
	assert.True(t, decimal.NewFromInt(20).Equal(rate.Rate))
	assert.True(t, decimal.NewFromInt(3).Equal(rate.Hours))
	require.Len(t, dispo.ExtraCharges, 1)
	assert.True(t, decimal.NewFromInt(25).Equal(dispo.ExtraCharges[0].Price))
	require.NotNil(t, dispo.Discount)
	assert.Equal(t, model.AdjustmentPercentage, dispo.Discount.Kind)
}

func TestReadDataset_Malformed(t *testing.T) {
	_, err := ReadDataset(strings.NewReader(`{"records": [`))
	assert.Error(t, err)
}

func TestDataset_Filters(t *testing.T) {
	ds, err := ReadDataset(strings.NewReader(datasetJSONFixture))
	require.NoError(t, err)

	assert.Equal(t,
		[]uuid.UUID{uuid.MustParse(transferID), uuid.MustParse(dispoID)},
		ds.Unbilled(uuid.MustParse(clientID)),
	)
	assert.Empty(t, ds.Unbilled(uuid.New()))

	may := ds.Between(
		time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.May, 31, 0, 0, 0, 0, time.UTC),
	)
	assert.Len(t, may, 2)
}
