// Package validation provides input validation for CLI flags and
// request payloads.
//
// Struct tag validation uses the validator library:
//
//	type Settings struct {
//	    BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`
//	    Output  string `mapstructure:"output" validate:"omitempty,oneof=json text"`
//	}
//	err := validation.Validate(settings)
//
// Programmatic validation collects field errors, which is how commands
// check their flags before calling the API:
//
//	v := validation.New()
//	v.RequiredUUID("wallet-id", walletID).Range("page-size", size, 1, 50)
//	if appErr := v.Validate(); appErr != nil {
//	    return appErr
//	}
package validation
