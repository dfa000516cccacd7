package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"transfers.app/billing/model"
	"transfers.app/billing/pricing"
)

// BuildProfitReport aggregates revenue and commissions over records. Revenue
// is the sum of line totals before tax; net is revenue minus commissions.
// Records the calculators reject are counted in Invalid and otherwise
// ignored.
func BuildProfitReport(from, to time.Time, records []*model.ServiceRecord) *model.ProfitReport {
	r := &model.ProfitReport{
		From:        from,
		To:          to,
		Revenue:     decimal.Zero,
		Commissions: decimal.Zero,
		ByKind:      make(map[model.ServiceKind]model.KindStat),
	}

	collaborators := make(map[string]*model.CollaboratorCommission)

	for _, rec := range records {
		lineTotal, err := pricing.LineTotal(rec)
		if err != nil {
			r.Invalid++
			continue
		}
		commission, err := pricing.Commission(rec)
		if err != nil {
			r.Invalid++
			continue
		}

		r.Services++
		r.Revenue = r.Revenue.Add(lineTotal)

		stat := r.ByKind[rec.Kind()]
		stat.Services++
		stat.Revenue = stat.Revenue.Add(lineTotal)
		r.ByKind[rec.Kind()] = stat

		if rec.Commission == nil || rec.Commission.CollaboratorName == "" {
			continue
		}

		r.Commissions = r.Commissions.Add(commission)

		name := rec.Commission.CollaboratorName
		c, ok := collaborators[name]
		if !ok {
			c = &model.CollaboratorCommission{Name: name, Amount: decimal.Zero}
			collaborators[name] = c
		}
		c.Services++
		c.Amount = c.Amount.Add(commission)
	}

	r.Net = r.Revenue.Sub(r.Commissions)

	r.Collaborators = make([]model.CollaboratorCommission, 0, len(collaborators))
	for _, c := range collaborators {
		r.Collaborators = append(r.Collaborators, *c)
	}
	sort.Slice(r.Collaborators, func(i, j int) bool {
		return r.Collaborators[i].Name < r.Collaborators[j].Name
	})

	return r
}
