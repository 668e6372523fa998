package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/ougirez/riskmap/internal/pkg/constants"
	"github.com/spf13/viper"
)

const EnvPrefix = "RISKMAP"

// SetDefaults registers a value for every key so that env overrides work
// without a config file.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(constants.ViperServerAddr, ":8080")
	v.SetDefault(constants.ViperServerAllowOrigins, []string{})
	v.SetDefault(constants.ViperShutdownTimeout, 10*time.Second)

	v.SetDefault(constants.ViperLogLevel, "info")
	v.SetDefault(constants.ViperLogFormat, "json")

	v.SetDefault(constants.ViperMapCenterLat, 23.6850)
	v.SetDefault(constants.ViperMapCenterLon, 90.3563)
	v.SetDefault(constants.ViperMapZoom, 7)
	v.SetDefault(constants.ViperMapTileURL, "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png")
	v.SetDefault(constants.ViperMapAttribution, `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`)

	v.SetDefault(constants.ViperCatalogSource, constants.CatalogSourceBuiltin)
	v.SetDefault(constants.ViperCatalogFile, "")

	v.SetDefault(constants.ViperPostgresDSN, "")
	v.SetDefault(constants.ViperPostgresMigrate, false)

	v.SetDefault(constants.ViperTilesProxy, false)
	v.SetDefault(constants.ViperTilesUpstream, "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png")
	v.SetDefault(constants.ViperTilesSubdomains, []string{"a", "b", "c"})
	v.SetDefault(constants.ViperTilesUserAgent, "riskmap/1.0")
	v.SetDefault(constants.ViperTilesRetries, 2)
	v.SetDefault(constants.ViperTilesCacheSize, 512)
	v.SetDefault(constants.ViperTilesTimeout, 10*time.Second)

	v.SetDefault(constants.ViperMetricsEnabled, true)
}

// Load fills the global viper from defaults, the optional file at path and
// RISKMAP_* environment variables, in increasing priority. A missing file is
// not an error.
func Load(path string) error {
	return LoadInto(viper.GetViper(), path)
}

func LoadInto(v *viper.Viper, path string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("godotenv.Load: %w", err)
	}

	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	return nil
}

// Validate reports settings that cannot work together.
func Validate(v *viper.Viper) error {
	switch src := v.GetString(constants.ViperCatalogSource); src {
	case constants.CatalogSourceBuiltin:
	case constants.CatalogSourceFile:
		if v.GetString(constants.ViperCatalogFile) == "" {
			return fmt.Errorf("%s is %q but %s is empty", constants.ViperCatalogSource, src, constants.ViperCatalogFile)
		}
	case constants.CatalogSourcePostgres:
		if v.GetString(constants.ViperPostgresDSN) == "" {
			return fmt.Errorf("%s is %q but %s is empty", constants.ViperCatalogSource, src, constants.ViperPostgresDSN)
		}
	default:
		return fmt.Errorf("unknown %s %q", constants.ViperCatalogSource, src)
	}

	if z := v.GetInt(constants.ViperMapZoom); z < 0 || z > 19 {
		return fmt.Errorf("%s %d out of range", constants.ViperMapZoom, z)
	}

	return nil
}
