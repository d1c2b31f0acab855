package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()

	// Use JSON tag names in error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Register custom validations
	registerCustomValidations()
}

func registerCustomValidations() {
	// Duration bucket validation
	validate.RegisterValidation("duration_bucket", func(fl validator.FieldLevel) bool {
		bucket := fl.Field().String()
		validBuckets := []string{"1-3 days", "4-7 days", "8+ days"}
		for _, b := range validBuckets {
			if bucket == b {
				return true
			}
		}
		return false
	})

	// Month name validation ("All" or a long English month name)
	validate.RegisterValidation("month", func(fl validator.FieldLevel) bool {
		month := fl.Field().String()
		validMonths := []string{
			"All", "January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		}
		for _, m := range validMonths {
			if month == m {
				return true
			}
		}
		return false
	})
}

// Validate validates a struct and returns a map of field errors
func Validate(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		field := err.Field()
		switch err.Tag() {
		case "required":
			errors[field] = "This field is required"
		case "min":
			errors[field] = "Value is too short (min: " + err.Param() + ")"
		case "max":
			errors[field] = "Value is too long (max: " + err.Param() + ")"
		case "gt":
			errors[field] = "Value must be greater than " + err.Param()
		case "gte":
			errors[field] = "Value must be at least " + err.Param()
		case "lte":
			errors[field] = "Value must be at most " + err.Param()
		case "uuid":
			errors[field] = "Invalid identifier format"
		case "duration_bucket":
			errors[field] = "Invalid duration. Must be: 1-3 days, 4-7 days, or 8+ days"
		case "month":
			errors[field] = "Invalid month. Must be: All or a full month name"
		default:
			errors[field] = "Invalid value"
		}
	}

	return errors
}

// ValidateVar validates a single variable
func ValidateVar(field interface{}, tag string) error {
	return validate.Var(field, tag)
}
