package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/riskmap/internal/pkg/constants"
	"github.com/ougirez/riskmap/internal/pkg/tiles"
)

func (c *Controller) GetTile(ctx echo.Context) error {
	if c.tiles == nil {
		return constants.ErrTilesDisabled
	}

	coord, err := tiles.ParseCoord(ctx.Param("z"), ctx.Param("x"), ctx.Param("y"))
	if err != nil {
		return err
	}

	tile, err := c.tiles.Fetch(ctx.Request().Context(), coord)
	if err != nil {
		return err
	}

	ctx.Response().Header().Set("Cache-Control", "public, max-age=86400")
	return ctx.Blob(http.StatusOK, tile.ContentType, tile.Data)
}
