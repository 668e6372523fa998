package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/ougirez/riskmap/internal/api/controller"
	"github.com/ougirez/riskmap/internal/pkg/metrics"
	"github.com/ougirez/riskmap/internal/pkg/tiles"
	"github.com/ougirez/riskmap/internal/service/riskmap"
	"github.com/ougirez/riskmap/internal/web"
)

type Options struct {
	AllowOrigins []string
	Debug        bool
	// ExposeMetrics mounts /metrics; the middleware records either way.
	ExposeMetrics bool
	// Tiles is nil when the tile proxy is disabled.
	Tiles *tiles.Proxy
}

type APIService struct {
	router         *echo.Echo
	metrics        *metrics.Metrics
	riskmapService *riskmap.Service
}

func (svc *APIService) Serve(addr string) error {
	if err := svc.router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func (svc *APIService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	svc.router.ServeHTTP(w, r)
}

func NewAPIService(riskmapService *riskmap.Service, m *metrics.Metrics, opts Options) (*APIService, error) {
	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("web.NewRenderer: %w", err)
	}

	svc := &APIService{
		router:         echo.New(),
		metrics:        m,
		riskmapService: riskmapService,
	}

	svc.router.HideBanner = true
	svc.router.HidePort = true
	svc.router.Debug = opts.Debug
	if opts.Debug {
		svc.router.Logger.SetLevel(log.DEBUG)
	} else {
		svc.router.Logger.SetLevel(log.WARN)
	}

	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.JSONSerializer = SonicSerializer{}
	svc.router.Renderer = renderer
	svc.router.HTTPErrorHandler = httpErrorHandler

	svc.router.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	svc.router.Use(svc.RequestContextMiddleware)
	svc.router.Use(accessLogMiddleware())
	svc.router.Use(middleware.Recover())
	svc.router.Use(svc.MetricsMiddleware)
	if len(opts.AllowOrigins) > 0 {
		svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: opts.AllowOrigins,
			AllowMethods: []string{http.MethodGet, http.MethodHead},
			AllowHeaders: []string{echo.HeaderContentType},
		}))
	}

	cntrl := controller.NewController(riskmapService, opts.Tiles)

	svc.router.GET("/", cntrl.GetMapPage)
	svc.router.GET("/partials/detail", cntrl.GetDetailPartial)
	svc.router.GET("/tiles/:z/:x/:y", cntrl.GetTile)
	svc.router.GET("/healthz", cntrl.Healthz)
	if opts.ExposeMetrics {
		svc.router.GET("/metrics", echo.WrapHandler(m.Handler()))
	}

	api := svc.router.Group("/api/v1")
	api.GET("/filters", cntrl.GetFilters)
	api.GET("/view", cntrl.GetView)
	api.GET("/legend", cntrl.GetLegend)
	api.GET("/markers", cntrl.GetMarkers)

	api.GET("/sites", cntrl.GetSites)
	api.GET("/sites.geojson", cntrl.GetSitesGeoJSON)
	api.GET("/sites/:name", cntrl.GetSite)

	api.GET("/zones", cntrl.GetZones)
	api.GET("/zones.geojson", cntrl.GetZonesGeoJSON)
	api.GET("/events", cntrl.GetEvents)
	api.GET("/events.geojson", cntrl.GetEventsGeoJSON)

	return svc, nil
}
