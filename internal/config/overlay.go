// config/overlay.go
package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// ReportFile is the optional report.yml kept next to config.yml.
type ReportFile struct {
	Report Report `yaml:"report"`
}

// OverlayReport replaces cfg.Report with the report section of path, keeping
// current values for keys the file leaves out.
func OverlayReport(cfg *Config, path string) error {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		// Missing report file should not kill startup
		return nil
	}
	if err != nil {
		return err
	}

	rf := ReportFile{Report: cfg.Report}
	if err := yaml.Unmarshal(b, &rf); err != nil {
		return err
	}
	cfg.Report = rf.Report
	return nil
}
