// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/ribforge/internal/catalog"
	"github.com/pdiddy/ribforge/internal/plan"
	"github.com/pdiddy/ribforge/pkg/types"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "List ribs recorded in the generation catalog",
	Long: `Status lists the ribs recorded by previous generate runs: which set
and airfoil each belongs to, how many outline points and holes it was
drawn with, and when its DXF file was last written. The catalog lives
next to the generated files as catalog.db.`,
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().String("plan", "plan.csv", "plan table (CSV)")
	statusCmd.Flags().String("catalog", "", "catalog database path (default: <output-dir>/catalog.db)")
	statusCmd.Flags().String("set", "", "filter by rib set name")
	statusCmd.Flags().String("airfoil", "", "filter by airfoil name")
	statusCmd.Flags().Int("limit", 0, "maximum rows to list (0 = catalog default)")
	statusCmd.Flags().Bool("json", false, "output entries as JSON")
	statusCmd.Flags().String("export", "", "write all matching entries to a YAML file")

	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	path := configString(cmd, "catalog")
	if path == "" {
		p, err := plan.Load(configString(cmd, "plan"))
		if err != nil {
			return err
		}
		path = filepath.Join(p.OutputDir, catalogFile)
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: no catalog at %s (run generate first)", types.ErrIO, path)
	}

	store, err := catalog.Open(types.CatalogConfig{Path: path, MaxResults: configInt(cmd, "limit")})
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	filter := catalog.Filter{
		Set:     configString(cmd, "set"),
		Airfoil: configString(cmd, "airfoil"),
		Limit:   configInt(cmd, "limit"),
	}

	if exportPath := configString(cmd, "export"); exportPath != "" {
		if err := store.ExportYAML(ctx, exportPath, filter); err != nil {
			return err
		}
		fmt.Printf("Exported catalog to %s\n", exportPath)
		return nil
	}

	entries, err := store.List(ctx, filter)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	fmt.Fprintf(os.Stdout, "%-12s  %-12s  %-16s  %8s  %6s  %5s  %-19s\n",
		"Set", "Rib", "Airfoil", "Chord", "Points", "Holes", "Generated")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 89))
	for _, e := range entries {
		fmt.Fprintf(os.Stdout, "%-12s  %-12s  %-16s  %8.1f  %6d  %5d  %-19s\n",
			e.Set, e.Rib, e.Airfoil, e.Chord, e.OutlinePoints, e.HoleCount,
			e.GeneratedAt.Format("2006-01-02 15:04:05"))
	}
	fmt.Fprintf(os.Stdout, "\n%d ribs\n", len(entries))
	return nil
}
