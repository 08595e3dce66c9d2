// Package main provides the webui-config command-line tool, which prints the
// web client configuration for a given environment.
// Copyright (C) 2021  Sylvain Gaunet

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.

// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/sgaunet/webui-config/pkg/buildinfo"
	"github.com/sgaunet/webui-config/pkg/compat"
	"github.com/sgaunet/webui-config/pkg/config"
	"github.com/sgaunet/webui-config/pkg/filetypes"
	"github.com/sgaunet/webui-config/pkg/provider"
)

var errUnknownFormat = errors.New("unknown output format")

// cliFlags holds command-line flag values.
type cliFlags struct {
	browser  string
	dev      string
	hostname string
}

func printVersion() {
	fmt.Printf("%s (%s)\n", buildinfo.Version, buildinfo.BuildHash)
}

func printConfiguration() {
	c, err := config.NewConfigFromEnv()
	if err != nil {
		c = &config.Config{}
	}
	c.Usage()

	fmt.Println("--------------------------------------------------")
	fmt.Println("webui-config environment:")
	fmt.Print(c.String())
	os.Exit(0)
}

func loadConfiguration(cfgFile string) (*config.Config, error) {
	if len(cfgFile) > 0 {
		cfg, err := config.NewConfigFromFile(cfgFile)
		if err != nil {
			return nil, err
		}
		return cfg, nil
	}
	cfg, err := config.NewConfigFromEnv()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyCliOverrides applies command-line flag values to the configuration.
// Boolean flags are strings so that an unset flag leaves the loaded value alone.
func applyCliOverrides(cfg *config.Config, flags cliFlags) error {
	if flags.browser != "" {
		v, err := parseBool("browser", flags.browser)
		if err != nil {
			return err
		}
		cfg.Browser = v
	}
	if flags.dev != "" {
		v, err := parseBool("dev", flags.dev)
		if err != nil {
			return err
		}
		cfg.Dev = v
	}
	if flags.hostname != "" {
		cfg.Hostname = flags.hostname
	}
	return nil
}

// validateConfiguration validates cfg only when the configuration is printed.
// File and version checks do not depend on the hostname.
func validateConfiguration(cfg *config.Config, rendering bool) error {
	if !rendering {
		return nil
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func render(w io.Writer, p *provider.Provider, format string) error {
	var (
		out []byte
		err error
	)
	switch format {
	case "yaml", "":
		out, err = p.YAML()
	case "json":
		out, err = p.JSON()
		out = append(out, '\n')
	default:
		return fmt.Errorf("%w: %s", errUnknownFormat, format)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	if err != nil {
		return fmt.Errorf("failed to write configuration: %w", err)
	}
	return nil
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: webui-config [OPTIONS]\n\n")
		fmt.Fprintf(os.Stderr, "Print the web client configuration\n\n")
		fmt.Fprintf(os.Stderr, "OPTIONS:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEXAMPLES:\n")
		fmt.Fprintf(os.Stderr, "  # Development build served from localhost\n")
		fmt.Fprintf(os.Stderr, "  webui-config --browser true --dev true --hostname localhost\n\n")
		fmt.Fprintf(os.Stderr, "  # Check which files would be accepted for upload\n")
		fmt.Fprintf(os.Stderr, "  webui-config --check \"report.pdf,'my notes.md',photo.png\"\n\n")
		fmt.Fprintf(os.Stderr, "  # Check an Ollama server version\n")
		fmt.Fprintf(os.Stderr, "  webui-config --ollama-version 0.1.20\n\n")
		fmt.Fprintf(os.Stderr, "CONFIGURATION PRECEDENCE:\n")
		fmt.Fprintf(os.Stderr, "  CLI flags > Environment variables > Config file\n\n")
		fmt.Fprintf(os.Stderr, "VALIDATION:\n")
		fmt.Fprintf(os.Stderr, "  The hostname is only validated when the configuration is printed,\n")
		fmt.Fprintf(os.Stderr, "  --check and --ollama-version run regardless of it.\n")
	}
}

//nolint:funlen // Main function complexity is acceptable for CLI entry point
func main() {
	configFile := flag.String("config", "", "Path to configuration file (YAML)")
	flag.StringVar(configFile, "c", "", "Path to configuration file (YAML) (shorthand)")

	browser := flag.String("browser", "", "Running inside a browser page (true/false)")
	dev := flag.String("dev", "", "Development build (true/false)")
	hostname := flag.String("hostname", "", "Host the page was served from (default: localhost)")
	format := flag.String("format", "yaml", "Output format: yaml or json")
	check := flag.String("check", "", "Comma separated list of file names to check for upload support")
	ollamaVersion := flag.String("ollama-version", "", "Check an Ollama server version against the minimum supported")

	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.BoolVar(showVersion, "v", false, "Show version and exit (shorthand)")
	showHelp := flag.Bool("help", false, "Show help and exit")
	flag.BoolVar(showHelp, "h", false, "Show help and exit (shorthand)")
	printCfg := flag.Bool("cfg", false, "Print configuration and exit")

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *printCfg {
		printConfiguration()
	}

	cfg, err := loadConfiguration(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading configuration: %v\n", err)
		os.Exit(1)
	}

	flags := cliFlags{
		browser:  *browser,
		dev:      *dev,
		hostname: *hostname,
	}
	if err := applyCliOverrides(cfg, flags); err != nil {
		fmt.Fprintf(os.Stderr, "invalid flag: %v\n", err)
		os.Exit(1)
	}

	rendering := *ollamaVersion == "" && *check == ""
	if err := validateConfiguration(cfg, rendering); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration validation failed: %v\n", err)
		os.Exit(1)
	}

	l := initTrace(os.Getenv("DEBUGLEVEL"), cfg.NoLogTime)
	slog.SetDefault(l)

	p := provider.New(*cfg)
	l.Debug("configuration resolved",
		"browser", cfg.Browser, "dev", cfg.Dev, "baseURL", p.Endpoints().BaseURL)

	failed := false
	if *ollamaVersion != "" {
		if err := compat.CheckOllama(*ollamaVersion); err != nil {
			l.Error("ollama version check failed", "version", *ollamaVersion, "error", err)
			failed = true
		} else {
			l.Info("ollama version supported", "version", *ollamaVersion, "required", p.RequiredOllamaVersion())
		}
	}

	if *check != "" {
		results, err := checkFiles(*check)
		if err != nil {
			l.Error("cannot parse file list", "error", err)
			os.Exit(1)
		}
		for _, r := range results {
			if r.err != nil {
				l.Warn("file not supported", "file", r.name, "error", r.err)
				failed = true
				continue
			}
			l.Info("file supported", "file", r.name, "extension", filetypes.Extension(r.name))
		}
	}

	if rendering {
		if err := render(os.Stdout, p, *format); err != nil {
			l.Error("cannot print configuration", "error", err)
			os.Exit(1)
		}
	}

	if failed {
		os.Exit(1)
	}
}
