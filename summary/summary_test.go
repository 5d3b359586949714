package summary

import (
	"testing"
	"time"

	"github.com/bitmark-inc/covid-summary/schema"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func observation(t *testing.T, date, country, province string, caseType schema.CaseType, cases int64) schema.CaseObservation {
	t.Helper()
	return schema.CaseObservation{
		Date:     day(t, date),
		Province: province,
		Country:  country,
		CaseType: caseType,
		Cases:    cases,
	}
}

// worldFixture is a small multi-country table shared across tests.
func worldFixture(t *testing.T) []schema.CaseObservation {
	t.Helper()
	return []schema.CaseObservation{
		observation(t, "2020-01-22", "China", "Hubei", schema.CaseTypeConfirmed, 444),
		observation(t, "2020-01-22", "China", "Hubei", schema.CaseTypeDeath, 17),
		observation(t, "2020-01-23", "China", "Hubei", schema.CaseTypeConfirmed, 95),
		observation(t, "2020-01-23", "China", "Hubei", schema.CaseTypeRecovered, 28),
		observation(t, "2020-01-23", "China", "Guangdong", schema.CaseTypeConfirmed, 32),
		observation(t, "2020-01-23", "Italy", "", schema.CaseTypeConfirmed, 150),
		observation(t, "2020-01-24", "Italy", "", schema.CaseTypeConfirmed, 50),
		observation(t, "2020-01-24", "Italy", "", schema.CaseTypeDeath, 4),
		observation(t, "2020-01-24", "US", "", schema.CaseTypeConfirmed, 100),
		observation(t, "2020-01-24", "Others", "", schema.CaseTypeConfirmed, 60),
		observation(t, "2020-01-24", "Others", "", schema.CaseTypeDeath, 30),
		observation(t, "2020-01-25", "Spain", "", schema.CaseTypeConfirmed, 10),
	}
}
