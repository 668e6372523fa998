package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ougirez/riskmap/internal/domain"
	"github.com/ougirez/riskmap/internal/pkg/config"
	"github.com/ougirez/riskmap/internal/pkg/constants"
	"github.com/ougirez/riskmap/internal/pkg/logger"
	"github.com/ougirez/riskmap/internal/pkg/store"
	"github.com/ougirez/riskmap/internal/pkg/store/xpgx"
	"github.com/ougirez/riskmap/internal/pkg/validate"
	"github.com/spf13/viper"
)

// seed writes the builtin catalog, or the one in --file, into the postgres
// database named by postgres.dsn.
func main() {
	configPath := flag.String("config", "config/config.yaml", "path to the config file")
	catalogFile := flag.String("file", "", "catalog file to seed instead of the builtin tables")
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

	if err := seed(ctx, *catalogFile); err != nil {
		logger.Fatal(ctx, err)
	}
}

func seed(ctx context.Context, file string) error {
	dsn := viper.GetString(constants.ViperPostgresDSN)
	if dsn == "" {
		return errors.New("postgres.dsn is empty")
	}

	var (
		c   *domain.Catalog
		err error
	)
	if file != "" {
		if c, err = store.LoadCatalogFile(file); err != nil {
			return err
		}
	} else {
		c = store.DefaultCatalog()
	}
	if err = store.ValidateCatalog(c, validate.New()); err != nil {
		return err
	}

	pool, err := xpgx.NewPool(ctx, dsn)
	if err != nil {
		return err
	}
	defer pool.Close()

	pg := store.NewPostgresStore(pool)
	if err = pg.Migrate(ctx); err != nil {
		return err
	}
	if err = pg.ReplaceCatalog(ctx, c); err != nil {
		return fmt.Errorf("ReplaceCatalog: %w", err)
	}

	logger.Infof(ctx, "seeded %d sites, %d zones, %d events, %d risk colors",
		len(c.Sites), len(c.Zones), len(c.Events), len(c.RiskColors))
	return nil
}
