package utils

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// ValidateStruct runs the shared validator over a request DTO. Handlers
// translate any error into a generic 400 without leaking field details.
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}
