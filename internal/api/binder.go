package api

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/riskmap/internal/pkg/constants"
)

// Binder binds path and query parameters and validates the result.
type Binder struct {
	echo.DefaultBinder
}

func NewBinder() *Binder {
	return &Binder{}
}

func (b *Binder) Bind(i interface{}, c echo.Context) error {
	if err := b.DefaultBinder.Bind(i, c); err != nil {
		return fmt.Errorf("%w: %s", constants.ErrInvalidRequest, err.Error())
	}
	return c.Validate(i)
}
