package validation

import (
	"reflect"
	"strings"

	"school-erp/internal/ledger"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("decimal_amount", validateDecimalAmount)
	_ = v.RegisterValidation("selection_key", validateSelectionKey)
	_ = v.RegisterValidation("direction_filter", validateDirectionFilter)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a struct using the registered rules
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// validateDecimalAmount accepts any string that parses as a decimal number.
// Sign and range are checked by the ledger drafts.
func validateDecimalAmount(fl validator.FieldLevel) bool {
	_, err := ledger.ParseAmount(fl.Field().String())
	return err == nil
}

// validateSelectionKey validates an aid:/oid:/name: account picker key
func validateSelectionKey(fl validator.FieldLevel) bool {
	_, err := ledger.ParseSelectionKey(fl.Field().String())
	return err == nil
}

// validateDirectionFilter validates a ledger direction filter (all, in, out)
func validateDirectionFilter(fl validator.FieldLevel) bool {
	_, err := ledger.ParseFilter(fl.Field().String())
	return err == nil
}
