package validate

import (
	"github.com/go-playground/validator/v10"
	"github.com/ougirez/riskmap/internal/domain"
)

// New returns a validator that knows the map's closed value sets.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return domain.Category(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("risklevel", func(fl validator.FieldLevel) bool {
		return domain.RiskLevel(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("mapfilter", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || domain.Filter(s).Valid()
	})

	return v
}
