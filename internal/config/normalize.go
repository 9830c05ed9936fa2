package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeRequests()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DocumentsRoot) == "" {
		c.Paths.DocumentsRoot = defaultDocumentsRoot
	}
	if c.Paths.DocumentsRoot, err = expandPath(c.Paths.DocumentsRoot); err != nil {
		return fmt.Errorf("paths.documents_root: %w", err)
	}
	if strings.TrimSpace(c.Paths.MappingFile) == "" {
		c.Paths.MappingFile = defaultMappingFile
	}
	if c.Paths.MappingFile, err = expandPath(c.Paths.MappingFile); err != nil {
		return fmt.Errorf("paths.mapping_file: %w", err)
	}
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.ReportsDir) == "" {
		c.Paths.ReportsDir = defaultReportsDir
	}
	if c.Paths.ReportsDir, err = expandPath(c.Paths.ReportsDir); err != nil {
		return fmt.Errorf("paths.reports_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeRequests() {
	c.Requests.LogFile = strings.TrimSpace(c.Requests.LogFile)
	if c.Requests.LogFile == "" {
		c.Requests.LogFile = defaultRequestLogFile
	}
	if !filepath.IsAbs(c.Requests.LogFile) {
		c.Requests.LogFile = filepath.Join(c.Paths.ReportsDir, c.Requests.LogFile)
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
