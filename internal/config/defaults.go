package config

const (
	defaultDocumentsRoot     = "~/.local/share/docket/documents"
	defaultMappingFile       = "~/.local/share/docket/peopleToPage.json"
	defaultDataDir           = "~/.local/share/docket"
	defaultLogDir            = "~/.local/share/docket/logs"
	defaultReportsDir        = "~/.local/share/docket/reports"
	defaultMatchingThreshold = 0.85
	defaultRequestLogFile    = "request_log.csv"
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DocumentsRoot: defaultDocumentsRoot,
			MappingFile:   defaultMappingFile,
			DataDir:       defaultDataDir,
			LogDir:        defaultLogDir,
			ReportsDir:    defaultReportsDir,
		},
		Matching: Matching{
			Threshold: defaultMatchingThreshold,
		},
		Requests: Requests{
			LogFile: defaultRequestLogFile,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
