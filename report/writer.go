package report

import (
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/covid-summary/consts"
	"github.com/bitmark-inc/covid-summary/dataset"
	"github.com/bitmark-inc/covid-summary/schema"
	"github.com/bitmark-inc/covid-summary/summary"
)

const reportLogPrefix = "report"

// Options control the derived views of a report.
type Options struct {
	// TopN bounds the top-countries section.
	TopN int

	// MinConfirmed is the smallest confirmed total a country needs for
	// its death rate to be reported.
	MinConfirmed int64

	// ProvinceCountry selects the country of the per-province section.
	ProvinceCountry string
}

// DefaultOptions mirror the published summary: top ten countries, death
// rates over at least 25 confirmed cases, provinces of China.
func DefaultOptions() Options {
	return Options{
		TopN:            consts.DefaultTopN,
		MinConfirmed:    consts.DefaultMinConfirmed,
		ProvinceCountry: "China",
	}
}

// Writer produces the full case summary from one dataset provider.
type Writer struct {
	provider dataset.Provider
	options  Options
}

// NewWriter makes a report writer over the given provider.
func NewWriter(provider dataset.Provider, options Options) *Writer {
	return &Writer{
		provider: provider,
		options:  options,
	}
}

// Write recomputes every view from the provider's current table and writes
// the report into dir: a text summary plus one SVG per chart. The directory
// is created when absent.
func (w *Writer) Write(dir string) error {
	observations, err := w.provider.Observations()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	stats := summary.ComputeGlobalStats(observations)
	totals := summary.ComputeTypeTotals(observations)
	series := summary.ComputeTimeSeries(observations)
	topCountries := summary.ComputeTopCountries(observations, w.options.TopN)
	rates := summary.ComputeCountryRates(observations, w.options.MinConfirmed)
	breakdown := summary.ComputeProvinceBreakdown(observations, w.options.ProvinceCountry)

	log.WithFields(log.Fields{
		"prefix":    reportLogPrefix,
		"records":   len(observations),
		"days":      len(series),
		"countries": len(rates),
	}).Info("views computed")

	if err := w.writeText(filepath.Join(dir, "summary.txt"), stats, totals, topCountries, rates, breakdown); err != nil {
		return err
	}

	charts := []struct {
		name  string
		write func(f *os.File) error
	}{
		{"timeseries.svg", func(f *os.File) error {
			return WriteTimeSeriesChart(f, series)
		}},
		{"top_countries.svg", func(f *os.File) error {
			return WriteTopCountriesChart(f, topCountries)
		}},
		{"provinces.svg", func(f *os.File) error {
			return WriteProvinceChart(f, w.options.ProvinceCountry, breakdown)
		}},
	}
	for _, c := range charts {
		f, err := os.Create(filepath.Join(dir, c.name))
		if err != nil {
			return err
		}
		if err := c.write(f); err != nil {
			f.Close()
			return fmt.Errorf("render %s: %w", c.name, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
	}

	log.WithFields(log.Fields{
		"prefix": reportLogPrefix,
		"dir":    dir,
	}).Info("report written")
	return nil
}

func (w *Writer) writeText(path string, stats summary.GlobalStats, totals []schema.TypeTotal, topCountries []schema.CountryShare, rates []schema.CountryRate, breakdown []schema.ProvinceBreakdown) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintln(f, "COVID-19 case summary")
	fmt.Fprintln(f)
	FprintGlobalStats(f, stats)

	fmt.Fprintln(f)
	fmt.Fprintln(f, "Cases by type")
	FprintTypeTotals(f, totals)

	fmt.Fprintln(f)
	fmt.Fprintf(f, "Top %d countries by confirmed cases\n", w.options.TopN)
	FprintTopCountries(f, topCountries)

	fmt.Fprintln(f)
	fmt.Fprintf(f, "Death rates (>= %d confirmed cases)\n", w.options.MinConfirmed)
	FprintCountryRates(f, rates)

	fmt.Fprintln(f)
	fmt.Fprintf(f, "Confirmed cases by province, %s\n", w.options.ProvinceCountry)
	FprintProvinceBreakdown(f, breakdown)

	return nil
}
