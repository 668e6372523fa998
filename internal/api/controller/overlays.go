package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (c *Controller) GetZones(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, c.service.Zones())
}

func (c *Controller) GetZonesGeoJSON(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, c.service.ZonesGeoJSON())
}

func (c *Controller) GetEvents(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, c.service.Events())
}

func (c *Controller) GetEventsGeoJSON(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, c.service.EventsGeoJSON())
}

func (c *Controller) GetLegend(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, c.service.Legend())
}
