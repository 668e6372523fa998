package constants

const (
	ViperServerAddr         = "server.addr"
	ViperServerAllowOrigins = "server.allow_origins"
	ViperShutdownTimeout    = "server.shutdown_timeout"

	ViperLogLevel  = "log.level"
	ViperLogFormat = "log.format"

	ViperMapCenterLat   = "map.center_lat"
	ViperMapCenterLon   = "map.center_lon"
	ViperMapZoom        = "map.zoom"
	ViperMapTileURL     = "map.tile_url"
	ViperMapAttribution = "map.attribution"

	ViperCatalogSource = "catalog.source"
	ViperCatalogFile   = "catalog.file"

	ViperPostgresDSN     = "postgres.dsn"
	ViperPostgresMigrate = "postgres.migrate"

	ViperTilesProxy      = "tiles.proxy"
	ViperTilesUpstream   = "tiles.upstream"
	ViperTilesSubdomains = "tiles.subdomains"
	ViperTilesUserAgent  = "tiles.user_agent"
	ViperTilesRetries    = "tiles.retries"
	ViperTilesCacheSize  = "tiles.cache_size"
	ViperTilesTimeout    = "tiles.timeout"

	ViperMetricsEnabled = "metrics.enabled"
)

const (
	CatalogSourceBuiltin  = "builtin"
	CatalogSourceFile     = "file"
	CatalogSourcePostgres = "postgres"
)
