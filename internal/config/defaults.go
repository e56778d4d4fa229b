package config

const (
	defaultDatabasePath   = "data/databases/holreg_research.db"
	defaultDataDir        = "site/data"
	defaultSiteDir        = "site"
	defaultCSVDir         = "data/csv_exports"
	defaultAFIBaseURL     = "https://catalog.afi.com"
	defaultAFIUserAgent   = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"
	defaultRequestDelay   = 1.5
	defaultRequestTimeout = 30
	defaultSiteTitle      = "Hollywood Adaptations of American Women Writers"
	defaultSiteSubtitle   = "Film Adaptations Database (1910-1960)"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DatabasePath: defaultDatabasePath,
			DataDir:      defaultDataDir,
			SiteDir:      defaultSiteDir,
			CSVDir:       defaultCSVDir,
		},
		AFI: AFI{
			BaseURL:        defaultAFIBaseURL,
			UserAgent:      defaultAFIUserAgent,
			RequestDelay:   defaultRequestDelay,
			RequestTimeout: defaultRequestTimeout,
		},
		Site: Site{
			Title:    defaultSiteTitle,
			Subtitle: defaultSiteSubtitle,
		},
		Export: Export{
			PrettyJSON:       true,
			DecadePartitions: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
