package schema

import "time"

// CaseType classifies a daily count row.
type CaseType string

const (
	CaseTypeConfirmed CaseType = "confirmed"
	CaseTypeDeath     CaseType = "death"
	CaseTypeRecovered CaseType = "recovered"
)

// Valid reports whether t is one of the three known case types.
func (t CaseType) Valid() bool {
	switch t {
	case CaseTypeConfirmed, CaseTypeDeath, CaseTypeRecovered:
		return true
	}
	return false
}

// CaseObservation is one row of the input table: the number of new cases of
// one type reported on one day for one location. The same
// (date, country, province, case type) key may appear on multiple rows;
// consumers always sum over grouping keys.
type CaseObservation struct {
	Date      time.Time `json:"date"`
	Province  string    `json:"province"`
	Country   string    `json:"country"`
	Latitude  float64   `json:"lat"`
	Longitude float64   `json:"long"`
	CaseType  CaseType  `json:"type"`
	Cases     int64     `json:"cases"`
}
