// Package validation checks configuration values before they are turned into
// enumerator pipelines.
//
// Struct tag validation uses go-playground/validator:
//
//	type Stage struct {
//	    Op string `validate:"required,oneof=drop take"`
//	    N  int    `validate:"gte=0"`
//	}
//	err := validation.Validate(stage)
//
// Rules that depend on several fields are collected programmatically:
//
//	v := validation.New()
//	v.Check(stage.Value != nil, "value", "is required for until_eq")
//	err := v.Err()
//
// Both forms return an *errors.AppError with code INVALID_INPUT whose
// "fields" detail lists every failing field.
package validation
