package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProfitReport struct {
	From          time.Time                `json:"from"`
	To            time.Time                `json:"to"`
	Services      int                      `json:"services"`
	Revenue       decimal.Decimal          `json:"revenue"`
	Commissions   decimal.Decimal          `json:"commissions"`
	Net           decimal.Decimal          `json:"net"`
	ByKind        map[ServiceKind]KindStat `json:"by_kind"`
	Collaborators []CollaboratorCommission `json:"collaborators"`
	Invalid       int                      `json:"invalid"`
}

type KindStat struct {
	Services int             `json:"services"`
	Revenue  decimal.Decimal `json:"revenue"`
}

type CollaboratorCommission struct {
	Name     string          `json:"name"`
	Services int             `json:"services"`
	Amount   decimal.Decimal `json:"amount"`
}
