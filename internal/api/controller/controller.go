package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/ougirez/riskmap/internal/domain"
	"github.com/ougirez/riskmap/internal/pkg/tiles"
	"github.com/ougirez/riskmap/internal/service/riskmap"
)

type Controller struct {
	service *riskmap.Service
	tiles   *tiles.Proxy
}

func NewController(service *riskmap.Service, tiles *tiles.Proxy) *Controller {
	return &Controller{service: service, tiles: tiles}
}

type viewQuery struct {
	Filter   string `query:"filter" validate:"mapfilter"`
	Selected string `query:"selected"`
}

// bindState reads filter and selection from the query string.
func bindState(ctx echo.Context) (domain.ViewState, error) {
	var q viewQuery
	if err := ctx.Bind(&q); err != nil {
		return domain.ViewState{}, err
	}

	f, err := domain.ParseFilter(q.Filter)
	if err != nil {
		return domain.ViewState{}, err
	}

	state := domain.NewViewState().WithFilter(f)
	if q.Selected != "" {
		state = state.Select(q.Selected)
	}
	return state, nil
}
