package consts

import "github.com/bitmark-inc/covid-summary/schema"

const (
	// OthersLabel is the pseudo-country the dataset provider uses for
	// aggregate counts it could not assign to a location. Rate views skip
	// it.
	OthersLabel = "Others"

	// DefaultTopN bounds the top-countries view.
	DefaultTopN = 10

	// DefaultMinConfirmed is the smallest confirmed total for which a
	// death rate is considered meaningful.
	DefaultMinConfirmed = 25
)

// CaseTypeOrder fixes the display order of case-type totals.
var CaseTypeOrder = []schema.CaseType{
	schema.CaseTypeConfirmed,
	schema.CaseTypeDeath,
	schema.CaseTypeRecovered,
}
