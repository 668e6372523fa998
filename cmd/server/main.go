package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-playground/validator/v10"
	"github.com/ougirez/riskmap/internal/api"
	"github.com/ougirez/riskmap/internal/domain"
	"github.com/ougirez/riskmap/internal/domain/dto"
	"github.com/ougirez/riskmap/internal/pkg/config"
	"github.com/ougirez/riskmap/internal/pkg/constants"
	"github.com/ougirez/riskmap/internal/pkg/logger"
	"github.com/ougirez/riskmap/internal/pkg/metrics"
	"github.com/ougirez/riskmap/internal/pkg/store"
	"github.com/ougirez/riskmap/internal/pkg/store/xpgx"
	"github.com/ougirez/riskmap/internal/pkg/tiles"
	"github.com/ougirez/riskmap/internal/pkg/validate"
	"github.com/ougirez/riskmap/internal/service/riskmap"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

const proxiedTileURL = "/tiles/{z}/{x}/{y}.png"

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to the config file")
	flag.Parse()

	if err := config.Load(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := logger.Init(viper.GetString(constants.ViperLogLevel), viper.GetString(constants.ViperLogFormat)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		logger.Fatal(ctx, err)
	}
}

func run(ctx context.Context) error {
	if err := config.Validate(viper.GetViper()); err != nil {
		return err
	}

	catalog, err := loadCatalog(ctx, validate.New())
	if err != nil {
		return err
	}
	logger.Infof(ctx, "catalog loaded from %s: %d sites, %d zones, %d events",
		viper.GetString(constants.ViperCatalogSource), len(catalog.Sites), len(catalog.Zones), len(catalog.Events))

	m := metrics.New()

	mapOpts := riskmap.DefaultMapOptions()
	mapOpts.Center = dto.LatLng{viper.GetFloat64(constants.ViperMapCenterLat), viper.GetFloat64(constants.ViperMapCenterLon)}
	mapOpts.Zoom = viper.GetInt(constants.ViperMapZoom)
	mapOpts.TileURL = viper.GetString(constants.ViperMapTileURL)
	mapOpts.Attribution = viper.GetString(constants.ViperMapAttribution)

	var proxy *tiles.Proxy
	if viper.GetBool(constants.ViperTilesProxy) {
		proxy = tiles.NewProxy(tiles.Options{
			Upstream:   viper.GetString(constants.ViperTilesUpstream),
			Subdomains: viper.GetStringSlice(constants.ViperTilesSubdomains),
			UserAgent:  viper.GetString(constants.ViperTilesUserAgent),
			Retries:    uint64(viper.GetInt(constants.ViperTilesRetries)),
			CacheSize:  viper.GetInt(constants.ViperTilesCacheSize),
			Timeout:    viper.GetDuration(constants.ViperTilesTimeout),
		}, m.ObserveTile)
		mapOpts.TileURL = proxiedTileURL
		logger.Infof(ctx, "tile proxy enabled for %s", viper.GetString(constants.ViperTilesUpstream))
	}

	riskmapService := riskmap.NewService(catalog,
		riskmap.WithMapOptions(mapOpts),
		riskmap.WithFilterObserver(func(f domain.Filter) { m.ObserveFilter(string(f)) }),
	)

	apiService, err := api.NewAPIService(riskmapService, m, api.Options{
		AllowOrigins:  viper.GetStringSlice(constants.ViperServerAllowOrigins),
		Debug:         viper.GetString(constants.ViperLogLevel) == "debug",
		ExposeMetrics: viper.GetBool(constants.ViperMetricsEnabled),
		Tiles:         proxy,
	})
	if err != nil {
		return fmt.Errorf("api.NewAPIService: %w", err)
	}

	addr := viper.GetString(constants.ViperServerAddr)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Infof(gctx, "listening on %s", addr)
		return apiService.Serve(addr)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Infof(ctx, "shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), viper.GetDuration(constants.ViperShutdownTimeout))
		defer cancel()
		return apiService.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func loadCatalog(ctx context.Context, v *validator.Validate) (*domain.Catalog, error) {
	switch viper.GetString(constants.ViperCatalogSource) {
	case constants.CatalogSourceFile:
		c, err := store.LoadCatalogFile(viper.GetString(constants.ViperCatalogFile))
		if err != nil {
			return nil, err
		}
		return store.LoadCatalog(ctx, store.NewMemoryStore(c), v)

	case constants.CatalogSourcePostgres:
		pool, err := xpgx.NewPool(ctx, viper.GetString(constants.ViperPostgresDSN))
		if err != nil {
			return nil, err
		}
		defer pool.Close()

		pg := store.NewPostgresStore(pool)
		if viper.GetBool(constants.ViperPostgresMigrate) {
			if err = pg.Migrate(ctx); err != nil {
				return nil, err
			}
		}
		return store.LoadCatalog(ctx, pg, v)

	default:
		return store.LoadCatalog(ctx, store.NewMemoryStore(store.DefaultCatalog()), v)
	}
}
