// plateful - an AI meal planner for the terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/plateful/plateful-tui/internal/cloud"
	"github.com/plateful/plateful-tui/internal/config"
	"github.com/plateful/plateful-tui/internal/planner"
	"github.com/plateful/plateful-tui/internal/ui/app"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "print version and exit")
		configPath  = flag.String("config", "", "path to a config file (.toml or .json)")
		outputDir   = flag.String("output-dir", "", "directory for exported documents")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("plateful %s (%s, built %s)\n", Version, GitCommit, BuildDate)
		return
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "plateful: %v\n", err)
		os.Exit(1)
	}
	if *outputDir != "" {
		cfg.Export.OutputDir = *outputDir
	}
	config.SetGlobal(cfg)

	client := cloud.NewOpenRouterClient(cfg.API.Key).
		WithBaseURL(cfg.API.BaseURL).
		WithModel(cfg.API.Model).
		WithMaxTokens(cfg.API.MaxTokens).
		WithSiteURL(cfg.API.Referer).
		WithSiteName(cfg.API.AppTitle).
		WithTimeout(time.Duration(cfg.API.TimeoutSeconds) * time.Second)

	session := planner.NewSession(client)

	p := tea.NewProgram(app.New(session, cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "plateful: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig resolves the configuration: an explicit file wins, then the
// standard ~/.plateful locations, with environment overrides applied in
// both cases.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}

	cfg, err := config.LoadFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
