package summary

import (
	"sort"

	"github.com/bitmark-inc/covid-summary/schema"
)

// ComputeProvinceBreakdown sums confirmed cases per province within one
// country, sorted descending by total with ties ascending by province name.
// A country absent from the table yields an empty result.
func ComputeProvinceBreakdown(observations []schema.CaseObservation, country string) []schema.ProvinceBreakdown {
	sums := make(map[string]int64)
	for _, o := range observations {
		if o.Country != country || o.CaseType != schema.CaseTypeConfirmed {
			continue
		}
		sums[o.Province] += o.Cases
	}

	breakdown := make([]schema.ProvinceBreakdown, 0, len(sums))
	for province, total := range sums {
		breakdown = append(breakdown, schema.ProvinceBreakdown{
			Province:       province,
			TotalConfirmed: total,
		})
	}

	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].TotalConfirmed != breakdown[j].TotalConfirmed {
			return breakdown[i].TotalConfirmed > breakdown[j].TotalConfirmed
		}
		return breakdown[i].Province < breakdown[j].Province
	})
	return breakdown
}
