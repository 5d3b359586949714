package report

import (
	"fmt"
	"io"
	"math"

	"github.com/aclements/go-gg/table"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/bitmark-inc/covid-summary/schema"
	"github.com/bitmark-inc/covid-summary/summary"
)

// counts are printed with grouped digits, e.g. 1,234,567.
var printer = message.NewPrinter(language.English)

// formatPercent renders a fraction as a two-decimal percentage. The NaN
// sentinel for an undefined rate renders as "n/a".
func formatPercent(fraction float64) string {
	if math.IsNaN(fraction) {
		return "n/a"
	}
	return fmt.Sprintf("%.2f%%", 100*fraction)
}

// formatPercentValue is formatPercent for values already expressed in
// percent.
func formatPercentValue(percent float64) string {
	if math.IsNaN(percent) {
		return "n/a"
	}
	return fmt.Sprintf("%.2f%%", percent)
}

func formatCount(n int64) string {
	return printer.Sprintf("%d", n)
}

// FprintGlobalStats writes the headline numbers as a one-row table.
func FprintGlobalStats(w io.Writer, stats summary.GlobalStats) {
	tab := new(table.Builder).
		Add("Confirmed", []string{formatCount(stats.Confirmed)}).
		Add("Death", []string{formatCount(stats.Death)}).
		Add("Recovered", []string{formatCount(stats.Recovered)}).
		Add("Active", []string{formatCount(stats.Active)}).
		Add("Death rate", []string{formatPercentValue(stats.DeathRatePercent)}).
		Add("Recovery rate", []string{formatPercentValue(stats.RecoveryRatePercent)}).
		Done()
	table.Fprint(w, tab)
}

// FprintTypeTotals writes the per-type totals in enumeration order.
func FprintTypeTotals(w io.Writer, totals []schema.TypeTotal) {
	types := make([]string, len(totals))
	counts := make([]string, len(totals))
	for i, t := range totals {
		types[i] = string(t.CaseType)
		counts[i] = formatCount(t.TotalCases)
	}
	tab := new(table.Builder).
		Add("Case type", types).
		Add("Total cases", counts).
		Done()
	table.Fprint(w, tab)
}

// FprintTopCountries writes the ranked country shares with the share column
// rendered as a percentage.
func FprintTopCountries(w io.Writer, shares []schema.CountryShare) {
	countries := make([]string, len(shares))
	confirmed := make([]string, len(shares))
	percents := make([]string, len(shares))
	for i, s := range shares {
		countries[i] = s.Country
		confirmed[i] = formatCount(s.TotalConfirmed)
		percents[i] = formatPercent(s.PercentOfGlobalConfirmed)
	}
	tab := new(table.Builder).
		Add("Country", countries).
		Add("Confirmed", confirmed).
		Add("% of global", percents).
		Done()
	table.Fprint(w, tab)
}

// FprintCountryRates writes the per-country death rates.
func FprintCountryRates(w io.Writer, rates []schema.CountryRate) {
	countries := make([]string, len(rates))
	confirmed := make([]string, len(rates))
	deaths := make([]string, len(rates))
	deathRates := make([]string, len(rates))
	for i, r := range rates {
		countries[i] = r.Country
		confirmed[i] = formatCount(r.TotalConfirmed)
		deaths[i] = formatCount(r.TotalDeath)
		deathRates[i] = formatPercent(r.DeathRate)
	}
	tab := new(table.Builder).
		Add("Country", countries).
		Add("Confirmed", confirmed).
		Add("Death", deaths).
		Add("Death rate", deathRates).
		Done()
	table.Fprint(w, tab)
}

// FprintProvinceBreakdown writes one country's per-province confirmed
// totals.
func FprintProvinceBreakdown(w io.Writer, breakdown []schema.ProvinceBreakdown) {
	provinces := make([]string, len(breakdown))
	confirmed := make([]string, len(breakdown))
	for i, b := range breakdown {
		province := b.Province
		if province == "" {
			province = "(unassigned)"
		}
		provinces[i] = province
		confirmed[i] = formatCount(b.TotalConfirmed)
	}
	tab := new(table.Builder).
		Add("Province", provinces).
		Add("Confirmed", confirmed).
		Done()
	table.Fprint(w, tab)
}
