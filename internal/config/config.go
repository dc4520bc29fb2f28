// Package config holds the settings shared by the export command and the
// viewer, with flag and environment bindings.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"kmzexport/internal/export"
	"kmzexport/internal/kml"
)

// EnvPrefix prefixes the environment variable consulted for each flag left
// unset on the command line: --default-symbol reads KMZEXPORT_DEFAULT_SYMBOL.
const EnvPrefix = "KMZEXPORT_"

// Config controls what an export writes and how the process logs.
type Config struct {
	OutDir string

	CSV     bool
	TXT     bool
	GeoJSON bool
	Bundle  bool

	CSVName     string
	TXTName     string
	GeoJSONName string
	BundleName  string

	DefaultSymbol   string
	StrictNamespace bool
	Jobs            int
	Preview       bool

	LogLevel  string
	LogFormat string
}

// Default returns the settings used when nothing is overridden: CSV and TXT
// under their usual names in the current directory.
func Default() Config {
	return Config{
		OutDir:        ".",
		CSV:           true,
		TXT:           true,
		CSVName:       export.CSVName,
		TXTName:       export.TXTName,
		GeoJSONName:   export.GeoJSONName,
		BundleName:    export.BundleName,
		DefaultSymbol: string(kml.YellowDot),
		Jobs:          runtime.NumCPU(),
		LogLevel:      "info",
		LogFormat:     "console",
	}
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	if _, err := kml.ParseSymbol(c.DefaultSymbol); err != nil {
		errs = append(errs, fmt.Errorf("default-symbol: %w", err))
	}
	if c.Jobs < 1 {
		errs = append(errs, fmt.Errorf("jobs: must be at least 1, got %d", c.Jobs))
	}
	if !c.CSV && !c.TXT && !c.GeoJSON {
		errs = append(errs, errors.New("no output format enabled"))
	}
	names := []struct {
		flag, v string
		on      bool
	}{
		{"csv-name", c.CSVName, c.CSV},
		{"txt-name", c.TXTName, c.TXT},
		{"geojson-name", c.GeoJSONName, c.GeoJSON},
		{"bundle-name", c.BundleName, c.Bundle},
	}
	for _, n := range names {
		if !n.on {
			continue
		}
		if strings.TrimSpace(n.v) == "" || strings.ContainsAny(n.v, `/\`) {
			errs = append(errs, fmt.Errorf("%s: invalid file name %q", n.flag, n.v))
		}
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		errs = append(errs, fmt.Errorf("log-level: %w", err))
	}
	switch strings.ToLower(c.LogFormat) {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("log-format: want console or json, got %q", c.LogFormat))
	}
	return errors.Join(errs...)
}

// Symbol returns the parsed default symbol. Call Validate first.
func (c Config) Symbol() kml.Symbol {
	s, err := kml.ParseSymbol(c.DefaultSymbol)
	if err != nil {
		return kml.YellowDot
	}
	return s
}

// ParseOptions returns the KML parsing options for c.
func (c Config) ParseOptions() []kml.Option {
	opts := []kml.Option{kml.WithDefaultSymbol(c.Symbol())}
	if c.StrictNamespace {
		opts = append(opts, kml.WithStrictNamespace())
	}
	return opts
}

// Artifacts maps the enabled formats to an export.Set.
func (c Config) Artifacts() export.Set {
	var s export.Set
	if c.CSV {
		s.CSV = c.CSVName
	}
	if c.TXT {
		s.TXT = c.TXTName
	}
	if c.GeoJSON {
		s.GeoJSON = c.GeoJSONName
	}
	if c.Bundle {
		s.Bundle = c.BundleName
	}
	return s
}

// BindLogFlags registers the logging flags on fs.
func (c *Config) BindLogFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (trace, debug, info, warn, error)")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log format (console or json)")
}

// BindExportFlags registers the export flags on fs.
func (c *Config) BindExportFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.OutDir, "out", "o", c.OutDir, "output directory")
	fs.BoolVar(&c.CSV, "csv", c.CSV, "write the CSV table")
	fs.BoolVar(&c.TXT, "txt", c.TXT, "write the plain text table")
	fs.BoolVar(&c.GeoJSON, "geojson", c.GeoJSON, "write a GeoJSON FeatureCollection")
	fs.BoolVar(&c.Bundle, "bundle", c.Bundle, "also write a zip holding every artifact")
	fs.StringVar(&c.CSVName, "csv-name", c.CSVName, "CSV file name")
	fs.StringVar(&c.TXTName, "txt-name", c.TXTName, "TXT file name")
	fs.StringVar(&c.GeoJSONName, "geojson-name", c.GeoJSONName, "GeoJSON file name")
	fs.StringVar(&c.BundleName, "bundle-name", c.BundleName, "bundle file name")
	fs.StringVar(&c.DefaultSymbol, "default-symbol", c.DefaultSymbol, "symbol used when no rule matches")
	fs.BoolVar(&c.StrictNamespace, "strict-namespace", c.StrictNamespace, "ignore elements outside the KML 2.2 namespace")
	fs.IntVarP(&c.Jobs, "jobs", "j", c.Jobs, "files converted concurrently")
	fs.BoolVar(&c.Preview, "preview", c.Preview, "print the rows table to stderr")
}

// ApplyEnv sets every flag in fs that was not given on the command line from
// its environment variable, when present.
func ApplyEnv(fs *pflag.FlagSet, lookup func(string) (string, bool)) error {
	var errs []error
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			return
		}
		key := EnvVar(f.Name)
		v, ok := lookup(key)
		if !ok {
			return
		}
		if err := fs.Set(f.Name, v); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
	})
	return errors.Join(errs...)
}

// EnvVar returns the environment variable name for a flag.
func EnvVar(flag string) string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
}
