// Package validation checks incoming entities against their field
// constraints before anything touches the store. Violations come back as
// an apperr.ValidationError keyed by the JSON field name.
package validation

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"catalog-service/internal/apperr"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report violations under the JSON field name, not the Go name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	must(v.RegisterValidation("notblank", notBlank))
	must(v.RegisterValidation("dgt0", decimalGreaterThanZero))
	must(v.RegisterValidation("dgte0", decimalZeroOrPositive))
	must(v.RegisterValidation("dscale2", decimalScaleTwo))
	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// Struct validates an entity and flattens every violation into a
// field → reason map.
func Struct(entity interface{}) error {
	err := validate.Struct(entity)
	if err == nil {
		return nil
	}
	violations, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	fields := make(map[string]string, len(violations))
	for _, fe := range violations {
		if _, seen := fields[fe.Field()]; !seen {
			fields[fe.Field()] = message(fe)
		}
	}
	return apperr.NewValidation(fields)
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func decimalGreaterThanZero(fl validator.FieldLevel) bool {
	d, ok := decimalValue(fl)
	return ok && d.Sign() > 0
}

func decimalZeroOrPositive(fl validator.FieldLevel) bool {
	d, ok := decimalValue(fl)
	return ok && d.Sign() >= 0
}

// decimalScaleTwo rejects amounts with more than two significant
// fractional digits. Trailing zeros do not count: 48.810 is scale 2.
func decimalScaleTwo(fl validator.FieldLevel) bool {
	d, ok := decimalValue(fl)
	return ok && d.Equal(d.Truncate(2))
}

func decimalValue(fl validator.FieldLevel) (decimal.Decimal, bool) {
	switch v := fl.Field().Interface().(type) {
	case decimal.Decimal:
		return v, true
	case decimal.NullDecimal:
		if !v.Valid {
			return decimal.Decimal{}, false
		}
		return v.Decimal, true
	default:
		return decimal.Decimal{}, false
	}
}

// displayOverrides covers field names that do not read well when
// mechanically humanized.
var displayOverrides = map[string]string{
	"msrp": "MSRP",
}

func message(fe validator.FieldError) string {
	name := displayName(fe.Field())
	switch fe.Tag() {
	case "required", "notblank":
		return name + " is required"
	case "max":
		return name + " must be at most " + fe.Param() + " characters"
	case "email":
		return "Invalid email format"
	case "min":
		return name + " must be at least " + fe.Param()
	case "gte":
		return name + " must be " + fe.Param() + " or more"
	case "dgt0":
		return name + " must be greater than zero"
	case "dgte0":
		return name + " must be zero or positive"
	case "dscale2":
		return name + " must have at most 2 decimal places"
	default:
		return name + " is invalid"
	}
}

// displayName turns a camelCase JSON name into a sentence-style label,
// e.g. "addressLine1" → "Address line 1".
func displayName(field string) string {
	if label, ok := displayOverrides[field]; ok {
		return label
	}
	var b strings.Builder
	for i, r := range field {
		switch {
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsUpper(r):
			b.WriteByte(' ')
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsDigit(r) && !unicode.IsDigit(rune(field[i-1])):
			b.WriteByte(' ')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
