package summary

import (
	"github.com/bitmark-inc/covid-summary/consts"
	"github.com/bitmark-inc/covid-summary/schema"
)

// ComputeTypeTotals sums cases by case type. The result always holds one
// entry per known type in the fixed order confirmed, death, recovered;
// types absent from the table report zero.
func ComputeTypeTotals(observations []schema.CaseObservation) []schema.TypeTotal {
	sums := make(map[schema.CaseType]int64)
	for _, o := range observations {
		sums[o.CaseType] += o.Cases
	}

	totals := make([]schema.TypeTotal, 0, len(consts.CaseTypeOrder))
	for _, t := range consts.CaseTypeOrder {
		totals = append(totals, schema.TypeTotal{
			CaseType:   t,
			TotalCases: sums[t],
		})
	}
	return totals
}

// GlobalStats are the worldwide headline numbers derived from the type
// totals. The percent fields are NaN when no confirmed cases exist.
type GlobalStats struct {
	Confirmed           int64
	Death               int64
	Recovered           int64
	Active              int64
	DeathRatePercent    float64
	RecoveryRatePercent float64
}

// ComputeGlobalStats derives the headline numbers from the observation
// table. Percent values are rounded to two decimals.
func ComputeGlobalStats(observations []schema.CaseObservation) GlobalStats {
	var confirmed, death, recovered int64
	for _, t := range ComputeTypeTotals(observations) {
		switch t.CaseType {
		case schema.CaseTypeConfirmed:
			confirmed = t.TotalCases
		case schema.CaseTypeDeath:
			death = t.TotalCases
		case schema.CaseTypeRecovered:
			recovered = t.TotalCases
		}
	}

	return GlobalStats{
		Confirmed:           confirmed,
		Death:               death,
		Recovered:           recovered,
		Active:              confirmed - death - recovered,
		DeathRatePercent:    RoundPercent(100 * Rate(float64(death), float64(confirmed))),
		RecoveryRatePercent: RoundPercent(100 * Rate(float64(recovered), float64(confirmed))),
	}
}
