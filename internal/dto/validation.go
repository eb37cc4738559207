package dto

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/wfbarn/wfbarn_app/internal/core/domain"
)

var yearMonthRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// RegisterCustomValidators installs the domain-specific binding validators
// on gin's validator engine. Call once at startup before routes are served.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("assettype", func(fl validator.FieldLevel) bool {
		return domain.AssetType(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("txntype", func(fl validator.FieldLevel) bool {
		return domain.TransactionType(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("dateonly", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseDate(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("yearmonth", func(fl validator.FieldLevel) bool {
		return yearMonthRe.MatchString(fl.Field().String())
	})
}

// IsYearMonth reports whether s is a valid "YYYY-MM" budget key. Used by
// handlers for path parameters, which bypass body binding.
func IsYearMonth(s string) bool {
	return yearMonthRe.MatchString(s)
}
