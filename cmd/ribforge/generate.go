package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/ribforge/internal/airfoil"
	"github.com/pdiddy/ribforge/internal/catalog"
	"github.com/pdiddy/ribforge/internal/generate"
	"github.com/pdiddy/ribforge/internal/plan"
	"github.com/pdiddy/ribforge/pkg/types"
)

const catalogFile = "catalog.db"

var generateCmd = &cobra.Command{
	Use:   "generate [sets...]",
	Short: "Generate DXF drawings for every rib in the plan",
	Long: `Generate reads the build plan, loads every referenced airfoil file,
computes rib geometry, and writes one DXF file per rib into the output
directory. Ribs whose inputs are unchanged since the last recorded run
are skipped unless --force is given. Naming sets restricts the run to
those sets.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("plan", "plan.csv", "plan table (CSV)")
	generateCmd.Flags().String("airfoil-dir", "", "override the plan's airfoil directory")
	generateCmd.Flags().String("output-dir", "", "override the plan's output directory")
	generateCmd.Flags().Int("points", 0, "resampling points per surface (0 = plan value, negative = off)")
	generateCmd.Flags().Bool("force", false, "regenerate ribs with unchanged inputs")
	generateCmd.Flags().Bool("no-catalog", false, "run without catalog bookkeeping")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := types.GenerateConfig{
		PlanFile:       configString(cmd, "plan"),
		AirfoilDir:     configString(cmd, "airfoil-dir"),
		OutputDir:      configString(cmd, "output-dir"),
		ResamplePoints: configInt(cmd, "points"),
		Force:          configBool(cmd, "force"),
	}

	p, err := plan.Load(cfg.PlanFile)
	if err != nil {
		return err
	}
	if cfg.AirfoilDir != "" {
		p.AirfoilDir = cfg.AirfoilDir
	}
	if cfg.OutputDir != "" {
		p.OutputDir = cfg.OutputDir
	}

	lib := airfoil.LoadReferenced(p.AirfoilDir, p.AirfoilNames())

	// A broken catalog degrades to a full regeneration, not a failed run.
	var store *catalog.Store
	if noCatalog, _ := cmd.Flags().GetBool("no-catalog"); !noCatalog {
		store, err = catalog.Open(types.CatalogConfig{Path: filepath.Join(p.OutputDir, catalogFile)})
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: catalog unavailable: %v\n", err)
			store = nil
		} else {
			defer store.Close()
		}
	}

	opts := generate.Options{
		Force:          cfg.Force,
		ResamplePoints: cfg.ResamplePoints,
		Sets:           args,
	}
	result, err := generate.Run(context.Background(), p, lib, store, opts, os.Stdout)
	if err != nil {
		return err
	}
	if result.HasFailures() {
		return fmt.Errorf("%d rib(s) failed generation", result.Failed)
	}
	return nil
}
