package summary

import (
	"sort"

	"github.com/bitmark-inc/covid-summary/schema"
)

// ComputeTopCountries ranks countries by confirmed total and reports each
// one's share of the global confirmed total as a fraction. Ties sort
// ascending by country name. The result holds at most n entries; a
// negative n means no limit.
func ComputeTopCountries(observations []schema.CaseObservation, n int) []schema.CountryShare {
	sums := make(map[string]int64)
	var global int64
	for _, o := range observations {
		if o.CaseType != schema.CaseTypeConfirmed {
			continue
		}
		sums[o.Country] += o.Cases
		global += o.Cases
	}

	shares := make([]schema.CountryShare, 0, len(sums))
	for country, total := range sums {
		shares = append(shares, schema.CountryShare{
			Country:                  country,
			TotalConfirmed:           total,
			PercentOfGlobalConfirmed: Rate(float64(total), float64(global)),
		})
	}

	sort.Slice(shares, func(i, j int) bool {
		if shares[i].TotalConfirmed != shares[j].TotalConfirmed {
			return shares[i].TotalConfirmed > shares[j].TotalConfirmed
		}
		return shares[i].Country < shares[j].Country
	})

	if n >= 0 && len(shares) > n {
		shares = shares[:n]
	}
	return shares
}
