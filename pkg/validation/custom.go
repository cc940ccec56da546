package validation

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// RegisterCustom wires the UK format checks into a validator instance so
// DTOs can use them as struct tags (e.g. `validate:"ni_number"`).
func RegisterCustom(v *validator.Validate) error {
	checks := map[string]func(string) bool{
		"full_name":      IsFullName,
		"uk_phone":       IsPhone,
		"ni_number":      IsNationalInsuranceNumber,
		"utr_number":     IsUTRNumber,
		"vat_number":     IsVATNumber,
		"sort_code":      IsSortCode,
		"account_number": IsAccountNumber,
		"uk_postcode":    IsUKPostcode,
	}

	for tag, check := range checks {
		fn := check
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return fn(fl.Field().String())
		}); err != nil {
			return err
		}
	}

	return v.RegisterValidation("adult_birth_date", func(fl validator.FieldLevel) bool {
		return IsAdultBirthDate(fl.Field().String(), time.Now())
	})
}
