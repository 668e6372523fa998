package api

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/ougirez/riskmap/internal/pkg/constants"
	"github.com/ougirez/riskmap/internal/pkg/validate"
)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validate.New()}
}

func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	if errs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range errs {
			if fe.Tag() == "mapfilter" {
				return fmt.Errorf("%w: %q", constants.ErrInvalidFilter, fe.Value())
			}
		}
	}

	return fmt.Errorf("%w: %s", constants.ErrInvalidRequest, err.Error())
}
