package content

import (
	"github.com/mitchellh/mapstructure"
)

// FilingProfile is the typed view of the user data the parameterized
// renderers care about. Decoded from the merged turn data; fields missing
// from the dialogue so far stay zero.
type FilingProfile struct {
	FinalForm    string `mapstructure:"final_form"`
	TaxRegime    string `mapstructure:"tax_regime"`
	FilerType    string `mapstructure:"filer_type"`
	VerifyMethod string `mapstructure:"verify_method"`
	PAN          string `mapstructure:"pan"`
}

func profileFrom(data map[string]string) FilingProfile {
	var p FilingProfile
	// Decoding a map[string]string into a string-only struct cannot fail;
	// a decoder construction error would be a programming mistake.
	_ = mapstructure.Decode(data, &p)
	return p
}

// Form returns the recommended form, defaulting to ITR-1 when the dialogue
// has not settled one yet.
func (p FilingProfile) Form() string {
	if p.FinalForm == "" {
		return "ITR-1"
	}
	return p.FinalForm
}
