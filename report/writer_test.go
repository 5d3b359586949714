package report

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/covid-summary/dataset/mocks"
	"github.com/bitmark-inc/covid-summary/schema"
)

func testObservations(t *testing.T) []schema.CaseObservation {
	t.Helper()
	day := func(value string) time.Time {
		d, err := time.Parse("2006-01-02", value)
		if err != nil {
			t.Fatal(err)
		}
		return d
	}
	return []schema.CaseObservation{
		{Date: day("2020-01-22"), Province: "Hubei", Country: "China", CaseType: schema.CaseTypeConfirmed, Cases: 444},
		{Date: day("2020-01-22"), Province: "Hubei", Country: "China", CaseType: schema.CaseTypeDeath, Cases: 17},
		{Date: day("2020-01-23"), Country: "Italy", CaseType: schema.CaseTypeConfirmed, Cases: 150},
		{Date: day("2020-01-24"), Country: "US", CaseType: schema.CaseTypeConfirmed, Cases: 100},
		{Date: day("2020-01-24"), Country: "US", CaseType: schema.CaseTypeRecovered, Cases: 3},
	}
}

func TestWriterWrite(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	provider := mocks.NewMockProvider(ctl)
	provider.EXPECT().Observations().Return(testObservations(t), nil).Times(1)

	dir, err := ioutil.TempDir("", "report")
	assert.NoError(t, err)
	defer os.RemoveAll(dir)

	w := NewWriter(provider, DefaultOptions())
	assert.NoError(t, w.Write(dir))

	summaryBytes, err := ioutil.ReadFile(filepath.Join(dir, "summary.txt"))
	assert.NoError(t, err)
	summaryText := string(summaryBytes)
	assert.Contains(t, summaryText, "China")
	assert.Contains(t, summaryText, "Hubei")
	assert.Contains(t, summaryText, "confirmed")
	assert.Contains(t, summaryText, "Top 10 countries")

	for _, name := range []string{"timeseries.svg", "top_countries.svg", "provinces.svg"} {
		svg, err := ioutil.ReadFile(filepath.Join(dir, name))
		assert.NoError(t, err)
		assert.True(t, strings.Contains(string(svg), "<svg"), name)
	}
}

func TestWriterEmptyDataset(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	provider := mocks.NewMockProvider(ctl)
	provider.EXPECT().Observations().Return(nil, nil).Times(1)

	dir, err := ioutil.TempDir("", "report")
	assert.NoError(t, err)
	defer os.RemoveAll(dir)

	w := NewWriter(provider, DefaultOptions())
	assert.NoError(t, w.Write(dir))

	summaryBytes, err := ioutil.ReadFile(filepath.Join(dir, "summary.txt"))
	assert.NoError(t, err)
	assert.Contains(t, string(summaryBytes), "n/a")

	for _, name := range []string{"timeseries.svg", "top_countries.svg", "provinces.svg"} {
		svg, err := ioutil.ReadFile(filepath.Join(dir, name))
		assert.NoError(t, err)
		assert.True(t, strings.Contains(string(svg), "<svg"), name)
	}
}

func TestWriterAbsentProvinceCountry(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	day, err := time.Parse("2006-01-02", "2020-01-23")
	assert.NoError(t, err)

	// One country, one day: every chart falls back to its placeholder.
	provider := mocks.NewMockProvider(ctl)
	provider.EXPECT().Observations().Return([]schema.CaseObservation{
		{Date: day, Country: "Italy", CaseType: schema.CaseTypeConfirmed, Cases: 150},
	}, nil).Times(1)

	dir, err := ioutil.TempDir("", "report")
	assert.NoError(t, err)
	defer os.RemoveAll(dir)

	w := NewWriter(provider, DefaultOptions())
	assert.NoError(t, w.Write(dir))

	svg, err := ioutil.ReadFile(filepath.Join(dir, "provinces.svg"))
	assert.NoError(t, err)
	assert.Contains(t, string(svg), "not enough data")
}

func TestWriterProviderError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	provider := mocks.NewMockProvider(ctl)
	provider.EXPECT().Observations().Return(nil, fmt.Errorf("corrupt dataset")).Times(1)

	w := NewWriter(provider, DefaultOptions())
	err := w.Write(os.TempDir())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "corrupt dataset")
}
