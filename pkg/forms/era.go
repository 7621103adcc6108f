package forms

import "github.com/goliatone/go-specform/pkg/dict"

// Era identifies how a server delivered a tagged response.
type Era int

const (
	// EraPlain responses carry no form: the dictionary is the record.
	EraPlain Era = iota
	// EraFormatted responses carry a specdef and pre-parsed form fields,
	// flagged by specFormatted.
	EraFormatted
	// EraLegacyText responses carry a specdef and the whole form as text in
	// the data key.
	EraLegacyText
)

func (e Era) String() string {
	switch e {
	case EraFormatted:
		return "formatted"
	case EraLegacyText:
		return "legacy-text"
	default:
		return "plain"
	}
}

// DetectEra classifies d by the protocol keys it carries. A specdef alone is
// not enough to treat the response as a form.
func DetectEra(d dict.Dict) Era {
	if !d.Has(dict.KeySpecDef) {
		return EraPlain
	}
	switch {
	case d.Has(dict.KeyData):
		return EraLegacyText
	case d.Has(dict.KeySpecFormatted):
		return EraFormatted
	default:
		return EraPlain
	}
}
