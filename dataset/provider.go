package dataset

import "github.com/bitmark-inc/covid-summary/schema"

// FileProvider loads the packaged table from a CSV file on each call.
type FileProvider struct {
	Path string
}

func (p FileProvider) Observations() ([]schema.CaseObservation, error) {
	return LoadFile(p.Path)
}
