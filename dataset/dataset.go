package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/covid-summary/schema"
)

const datasetLogPrefix = "dataset"

// DateLayout is the reporting-day format of the packaged table.
const DateLayout = "2006-01-02"

var (
	ErrInvalidSchema   = fmt.Errorf("invalid dataset schema")
	ErrUnknownCaseType = fmt.Errorf("unknown case type")
)

// RequiredColumns is the exact column set of the packaged table. Order in
// the file does not matter.
var RequiredColumns = []string{
	"date", "province", "country", "latitude", "longitude", "case_type", "cases",
}

// Provider delivers the observation table to the presentation layer.
type Provider interface {
	Observations() ([]schema.CaseObservation, error)
}

// Load parses the packaged CSV table. It validates the header against
// RequiredColumns and every row's field types before returning; any
// unrecognized case type fails the whole load rather than dropping the row,
// so totals computed from the result always match the file.
func Load(r io.Reader) ([]schema.CaseObservation, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: read header: %s", ErrInvalidSchema, err)
	}

	index, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var observations []schema.CaseObservation
	row := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %s", ErrInvalidSchema, row, err)
		}
		row++

		o, err := parseRecord(record, index, row)
		if err != nil {
			return nil, err
		}
		observations = append(observations, o)
	}

	log.WithFields(log.Fields{
		"prefix":  datasetLogPrefix,
		"records": len(observations),
	}).Debug("dataset loaded")

	return observations, nil
}

// LoadFile reads the packaged table from path.
func LoadFile(path string) ([]schema.CaseObservation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Load(f)
}

func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		if _, ok := index[name]; ok {
			return nil, fmt.Errorf("%w: duplicate column %q", ErrInvalidSchema, name)
		}
		index[name] = i
	}

	for _, name := range RequiredColumns {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrInvalidSchema, name)
		}
	}
	if len(index) != len(RequiredColumns) {
		for _, name := range RequiredColumns {
			delete(index, name)
		}
		for name := range index {
			return nil, fmt.Errorf("%w: unknown column %q", ErrInvalidSchema, name)
		}
	}
	return index, nil
}

func parseRecord(record []string, index map[string]int, row int) (schema.CaseObservation, error) {
	var o schema.CaseObservation

	date, err := time.Parse(DateLayout, record[index["date"]])
	if err != nil {
		return o, fmt.Errorf("%w: row %d: bad date %q", ErrInvalidSchema, row, record[index["date"]])
	}

	lat, err := strconv.ParseFloat(record[index["latitude"]], 64)
	if err != nil {
		return o, fmt.Errorf("%w: row %d: bad latitude %q", ErrInvalidSchema, row, record[index["latitude"]])
	}
	long, err := strconv.ParseFloat(record[index["longitude"]], 64)
	if err != nil {
		return o, fmt.Errorf("%w: row %d: bad longitude %q", ErrInvalidSchema, row, record[index["longitude"]])
	}

	cases, err := strconv.ParseInt(record[index["cases"]], 10, 64)
	if err != nil {
		return o, fmt.Errorf("%w: row %d: bad cases %q", ErrInvalidSchema, row, record[index["cases"]])
	}

	caseType := schema.CaseType(record[index["case_type"]])
	if !caseType.Valid() {
		return o, fmt.Errorf("%w: row %d: %q", ErrUnknownCaseType, row, caseType)
	}

	country := record[index["country"]]
	if country == "" {
		return o, fmt.Errorf("%w: row %d: empty country", ErrInvalidSchema, row)
	}

	o = schema.CaseObservation{
		Date:      date,
		Province:  record[index["province"]],
		Country:   country,
		Latitude:  lat,
		Longitude: long,
		CaseType:  caseType,
		Cases:     cases,
	}
	return o, nil
}
