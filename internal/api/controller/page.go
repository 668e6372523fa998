package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/riskmap/internal/web"
)

func (c *Controller) GetMapPage(ctx echo.Context) error {
	state, err := bindState(ctx)
	if err != nil {
		return err
	}

	return ctx.Render(http.StatusOK, web.TemplateMap, c.service.View(state))
}

// GetDetailPartial renders the detail panel alone; the body is empty when
// nothing (or an unknown site) is selected.
func (c *Controller) GetDetailPartial(ctx echo.Context) error {
	state, err := bindState(ctx)
	if err != nil {
		return err
	}

	return ctx.Render(http.StatusOK, web.TemplateDetail, c.service.Detail(state))
}

func (c *Controller) Healthz(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
