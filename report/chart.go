package report

import (
	"fmt"
	"io"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"

	"github.com/bitmark-inc/covid-summary/schema"
)

const (
	chartWidth  = 900
	chartHeight = 500
)

// go-gg cannot lay out a zero-row table or an axis whose range collapses to
// a single value. Builders fall back to this placeholder for such views.
func writePlaceholderChart(w io.Writer, title string) error {
	_, err := fmt.Fprintf(w,
		"<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\"><text x=\"20\" y=\"40\">%s: not enough data to chart</text></svg>\n",
		chartWidth, chartHeight, title)
	return err
}

func allZero(values []float64) bool {
	for _, v := range values {
		if v != 0 {
			return false
		}
	}
	return true
}

// WriteTimeSeriesChart renders the cumulative active/recovered/death series
// as one SVG line chart, one colored line per series. The x axis is the day
// index since the first report; points must already be in ascending date
// order. Views with fewer than two days, or with no nonzero count, render
// as a placeholder.
func WriteTimeSeriesChart(w io.Writer, points []schema.TimeSeriesPoint) error {
	days := make([]float64, 0, 3*len(points))
	cases := make([]float64, 0, 3*len(points))
	series := make([]string, 0, 3*len(points))
	for i, p := range points {
		for _, s := range []struct {
			name  string
			value int64
		}{
			{"active", p.ActiveCumulative},
			{"recovered", p.RecoveredCumulative},
			{"death", p.DeathCumulative},
		} {
			days = append(days, float64(i))
			cases = append(cases, float64(s.value))
			series = append(series, s.name)
		}
	}

	if len(points) < 2 || allZero(cases) {
		return writePlaceholderChart(w, "Cumulative COVID-19 cases")
	}

	tab := new(table.Builder).
		Add("day", days).
		Add("cases", cases).
		Add("series", series).
		Done()

	plot := gg.NewPlot(tab)
	plot.SortBy("day")
	plot.SetScale("y", gg.NewLinearScaler().Include(0))
	plot.Add(
		gg.LayerLines{X: "day", Y: "cases", Color: "series"},
		gg.Title("Cumulative COVID-19 cases"),
		gg.AxisLabel("x", "days since first report"),
		gg.AxisLabel("y", "cases"),
	)
	return plot.WriteSVG(w, chartWidth, chartHeight)
}

// WriteTopCountriesChart renders the ranked confirmed totals with a labeled
// point per country. Views with fewer than two countries, or with no
// nonzero total, render as a placeholder.
func WriteTopCountriesChart(w io.Writer, shares []schema.CountryShare) error {
	ranks := make([]float64, len(shares))
	confirmed := make([]float64, len(shares))
	countries := make([]string, len(shares))
	for i, s := range shares {
		ranks[i] = float64(i + 1)
		confirmed[i] = float64(s.TotalConfirmed)
		countries[i] = s.Country
	}

	if len(shares) < 2 || allZero(confirmed) {
		return writePlaceholderChart(w, "Countries with most confirmed cases")
	}

	tab := new(table.Builder).
		Add("rank", ranks).
		Add("confirmed", confirmed).
		Add("country", countries).
		Done()

	plot := gg.NewPlot(tab)
	plot.SetScale("y", gg.NewLinearScaler().Include(0))
	plot.Add(
		gg.LayerPoints{X: "rank", Y: "confirmed"},
		gg.LayerTags{X: "rank", Y: "confirmed", Label: "country"},
		gg.Title("Countries with most confirmed cases"),
		gg.AxisLabel("x", "rank"),
		gg.AxisLabel("y", "confirmed cases"),
	)
	return plot.WriteSVG(w, chartWidth, chartHeight)
}

// WriteProvinceChart renders one country's per-province confirmed totals.
// Views with fewer than two provinces, or with no nonzero total, render as
// a placeholder; a country absent from the table yields an empty breakdown
// and therefore a placeholder, not an error.
func WriteProvinceChart(w io.Writer, country string, breakdown []schema.ProvinceBreakdown) error {
	ranks := make([]float64, len(breakdown))
	confirmed := make([]float64, len(breakdown))
	provinces := make([]string, len(breakdown))
	for i, b := range breakdown {
		ranks[i] = float64(i + 1)
		confirmed[i] = float64(b.TotalConfirmed)
		provinces[i] = b.Province
	}

	if len(breakdown) < 2 || allZero(confirmed) {
		return writePlaceholderChart(w, "Confirmed cases by province, "+country)
	}

	tab := new(table.Builder).
		Add("rank", ranks).
		Add("confirmed", confirmed).
		Add("province", provinces).
		Done()

	plot := gg.NewPlot(tab)
	plot.SetScale("y", gg.NewLinearScaler().Include(0))
	plot.Add(
		gg.LayerPoints{X: "rank", Y: "confirmed"},
		gg.LayerTags{X: "rank", Y: "confirmed", Label: "province"},
		gg.Title("Confirmed cases by province, "+country),
		gg.AxisLabel("x", "rank"),
		gg.AxisLabel("y", "confirmed cases"),
	)
	return plot.WriteSVG(w, chartWidth, chartHeight)
}
