package schema

import "time"

// TypeTotal is the worldwide sum of cases for one case type.
type TypeTotal struct {
	CaseType   CaseType `json:"type"`
	TotalCases int64    `json:"total"`
}

// TimeSeriesPoint carries the running totals up to and including one
// reporting day.
type TimeSeriesPoint struct {
	Date                time.Time `json:"date"`
	ActiveCumulative    int64     `json:"active_cum"`
	RecoveredCumulative int64     `json:"recovered_cum"`
	DeathCumulative     int64     `json:"death_cum"`
}

// CountryShare is one country's confirmed total and its share of the global
// confirmed total, expressed as a fraction in [0, 1].
type CountryShare struct {
	Country                  string  `json:"country"`
	TotalConfirmed           int64   `json:"confirmed"`
	PercentOfGlobalConfirmed float64 `json:"confirmed_pct"`
}

// CountryRate is one country's case totals with its death rate
// (deaths / confirmed, NaN when confirmed is zero).
type CountryRate struct {
	Country        string  `json:"country"`
	TotalConfirmed int64   `json:"confirmed"`
	TotalDeath     int64   `json:"death"`
	DeathRate      float64 `json:"death_rate"`
}

// ProvinceBreakdown is the confirmed total of one province within a fixed
// country.
type ProvinceBreakdown struct {
	Province       string `json:"province"`
	TotalConfirmed int64  `json:"confirmed"`
}
