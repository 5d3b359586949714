package summary

import (
	"sort"
	"time"

	"github.com/bitmark-inc/covid-summary/schema"
)

type dailyCount struct {
	confirmed int64
	death     int64
	recovered int64
}

// ComputeTimeSeries pivots the table into one point per reporting day and
// accumulates running totals of active, death and recovered counts in
// strictly ascending date order. Per-day active is confirmed minus death
// minus recovered for that day alone; the cumulative fields carry the sums
// over all same-or-earlier days.
func ComputeTimeSeries(observations []schema.CaseObservation) []schema.TimeSeriesPoint {
	byDate := make(map[time.Time]*dailyCount)
	for _, o := range observations {
		day := dayOf(o.Date)
		d, ok := byDate[day]
		if !ok {
			d = &dailyCount{}
			byDate[day] = d
		}
		switch o.CaseType {
		case schema.CaseTypeConfirmed:
			d.confirmed += o.Cases
		case schema.CaseTypeDeath:
			d.death += o.Cases
		case schema.CaseTypeRecovered:
			d.recovered += o.Cases
		}
	}

	dates := make([]time.Time, 0, len(byDate))
	for day := range byDate {
		dates = append(dates, day)
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})

	var activeCum, deathCum, recoveredCum int64
	points := make([]schema.TimeSeriesPoint, 0, len(dates))
	for _, day := range dates {
		d := byDate[day]
		activeCum += d.confirmed - d.death - d.recovered
		deathCum += d.death
		recoveredCum += d.recovered
		points = append(points, schema.TimeSeriesPoint{
			Date:                day,
			ActiveCumulative:    activeCum,
			RecoveredCumulative: recoveredCum,
			DeathCumulative:     deathCum,
		})
	}
	return points
}

// dayOf strips any time-of-day component so rows reported with different
// timestamps on the same calendar day group together.
func dayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
