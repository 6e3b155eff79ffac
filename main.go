package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

func main() {
	level := zap.LevelFlag("log-level", zap.InfoLevel, "set log level")
	cfg := ParseFlags()

	logCfg := zap.NewDevelopmentConfig()
	logCfg.Level = zap.NewAtomicLevelAt(*level)
	logger, err := logCfg.Build()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	templates, err := LoadTemplates(cfg.TemplatesPath)
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}

	// The allocator belongs to this build; a second build gets a fresh one.
	site, err := BuildSite(cfg, NewAllocator())
	if err != nil {
		return fmt.Errorf("failed to build topology: %w", err)
	}

	outDir := cfg.OutputDir
	if outDir == "" {
		outDir = cfg.SiteName
	}
	if err := DumpSite(site, templates, outDir); err != nil {
		return fmt.Errorf("failed to write device outputs: %w", err)
	}
	zap.S().Infof("files saved in directory %s", outDir)

	if cfg.InventoryPath != "" {
		if err := SaveInventory(cfg.InventoryPath, site); err != nil {
			return fmt.Errorf("failed to save inventory: %w", err)
		}
	}

	if cfg.XLSXPath != "" {
		if err := ExportXLSX(cfg.XLSXPath, site); err != nil {
			return fmt.Errorf("failed to export addressing plan: %w", err)
		}
	}

	return writeYAML(os.Stdout, BuildManifest(site))
}
