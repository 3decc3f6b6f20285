// Prints the Beginner Mode defaults table and catalog coverage diagnostics.
//
// Usage:
//
//	go run ./cmd/defaultsreport
//
// Config path defaults to config/editor.yaml, override with GOLDEDIT_CONFIG.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/udisondev/goldedit/internal/config"
	"github.com/udisondev/goldedit/internal/data"
)

const ConfigPath = "config/editor.yaml"

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := ConfigPath
	if p := os.Getenv("GOLDEDIT_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadEditor(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if !cfg.BeginnerMode {
		slog.Warn("beginner mode disabled in config; reporting reference data anyway")
	}

	if err := data.LoadWeaponTemplates(); err != nil {
		return fmt.Errorf("loading weapon templates: %w", err)
	}

	rules, err := data.NewDefaultRules(data.Catalog())
	if err != nil {
		return fmt.Errorf("building default rules: %w", err)
	}

	if cfg.Report.ShowTable {
		printTable(rules)
	}
	if cfg.Report.ShowCoverage {
		printCoverage(rules)
	}
	return nil
}

func printTable(rules *data.DefaultRules) {
	fmt.Printf("%-20s %-16s %s\n", "WEAPON", "AMMO TYPE", "COUNT")
	for _, row := range rules.Rows() {
		fmt.Printf("%-20s %-16s %s\n", row.Weapon, row.AmmoType, row.Count)
	}
	fmt.Println()
}

func printCoverage(rules *data.DefaultRules) {
	missingDefaults := 0
	for _, name := range data.AllWeaponNames() {
		if _, ok := rules.AmmoTypeFor(name); !ok {
			fmt.Printf("catalog weapon without defaults row: %s\n", name)
			missingDefaults++
		}
	}

	withoutProp := 0
	for _, row := range rules.Rows() {
		if !rules.HasProp(row.Weapon) {
			fmt.Printf("defaults row without pickup prop: %s\n", row.Weapon)
			withoutProp++
		}
	}

	slog.Info("coverage",
		"catalog_weapons", len(data.AllWeaponNames()),
		"defaults_rows", len(rules.Rows()),
		"missing_defaults", missingDefaults,
		"without_prop", withoutProp,
	)
}
