// Package validation validates configuration and request structs.
//
// Struct tag validation is backed by go-playground/validator and reports
// fields by their mapstructure or json names:
//
//	type Config struct {
//	    BaseURL string `mapstructure:"base_url" validate:"required,url"`
//	}
//	err := validation.Validate(cfg)
//
// Checks that depend on other fields use the collecting Validator:
//
//	v := validation.New()
//	v.OneOf("auth.type", a.Type, []string{"none", "basic", "bearer"})
//	err := v.Err()
package validation
