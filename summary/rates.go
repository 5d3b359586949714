package summary

import (
	"sort"

	"github.com/bitmark-inc/covid-summary/consts"
	"github.com/bitmark-inc/covid-summary/schema"
)

type countryCount struct {
	confirmed int64
	death     int64
}

// ComputeCountryRates reports per-country death rates for countries whose
// confirmed total is at least minConfirmed, sorted descending by confirmed
// total with ties ascending by country name. The "Others" pseudo-country is
// skipped: it aggregates counts the provider could not assign to a
// location, so a rate over it is meaningless.
func ComputeCountryRates(observations []schema.CaseObservation, minConfirmed int64) []schema.CountryRate {
	sums := make(map[string]*countryCount)
	for _, o := range observations {
		if o.Country == consts.OthersLabel {
			continue
		}
		c, ok := sums[o.Country]
		if !ok {
			c = &countryCount{}
			sums[o.Country] = c
		}
		switch o.CaseType {
		case schema.CaseTypeConfirmed:
			c.confirmed += o.Cases
		case schema.CaseTypeDeath:
			c.death += o.Cases
		}
	}

	rates := make([]schema.CountryRate, 0, len(sums))
	for country, c := range sums {
		if c.confirmed < minConfirmed {
			continue
		}
		rates = append(rates, schema.CountryRate{
			Country:        country,
			TotalConfirmed: c.confirmed,
			TotalDeath:     c.death,
			DeathRate:      Rate(float64(c.death), float64(c.confirmed)),
		})
	}

	sort.Slice(rates, func(i, j int) bool {
		if rates[i].TotalConfirmed != rates[j].TotalConfirmed {
			return rates[i].TotalConfirmed > rates[j].TotalConfirmed
		}
		return rates[i].Country < rates[j].Country
	})
	return rates
}
