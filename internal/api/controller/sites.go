package controller

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/riskmap/internal/domain"
	"github.com/ougirez/riskmap/internal/pkg/constants"
)

func (c *Controller) GetFilters(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, domain.FilterOptions())
}

func (c *Controller) GetView(ctx echo.Context) error {
	state, err := bindState(ctx)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, c.service.View(state))
}

func (c *Controller) GetSites(ctx echo.Context) error {
	state, err := bindState(ctx)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, c.service.FilteredSites(state.Filter))
}

func (c *Controller) GetMarkers(ctx echo.Context) error {
	state, err := bindState(ctx)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, c.service.Markers(state))
}

func (c *Controller) GetSitesGeoJSON(ctx echo.Context) error {
	state, err := bindState(ctx)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, c.service.SitesGeoJSON(state))
}

func (c *Controller) GetSite(ctx echo.Context) error {
	// echo leaves params escaped when it routes on RawPath.
	name := ctx.Param("name")
	if ctx.Request().URL.RawPath != "" {
		unescaped, err := url.PathUnescape(name)
		if err != nil {
			return fmt.Errorf("%w: site name %q", constants.ErrInvalidRequest, name)
		}
		name = unescaped
	}

	site, err := c.service.Site(name)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, site)
}
