// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/ribforge/internal/airfoil"
	"github.com/pdiddy/ribforge/internal/generate"
	"github.com/pdiddy/ribforge/internal/geometry"
	"github.com/pdiddy/ribforge/internal/plan"
	"github.com/pdiddy/ribforge/pkg/types"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <set> <rib>",
	Short: "Show the computed geometry for one rib",
	Long: `Inspect builds the geometry for a single rib without writing a DXF
file and prints a summary: outline and sheeting point counts, stringer
slots, datum lines, and every hole center. Useful for checking a rib
table row before a batch run.`,
	Args: cobra.ExactArgs(2),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().String("plan", "plan.csv", "plan table (CSV)")
	inspectCmd.Flags().Int("points", 0, "resampling points per surface (0 = plan value, negative = off)")
	inspectCmd.Flags().Bool("json", false, "output the summary as JSON")

	rootCmd.AddCommand(inspectCmd)
}

type holeReport struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
}

type inspectReport struct {
	Set            string       `json:"set"`
	Rib            string       `json:"rib"`
	Airfoil        string       `json:"airfoil"`
	Title          string       `json:"title,omitempty"`
	Chord          float64      `json:"chord"`
	Incidence      float64      `json:"incidence"`
	OutlinePoints  int          `json:"outline_points"`
	SheetingPoints int          `json:"sheeting_points,omitempty"`
	Slots          int          `json:"slots"`
	Datums         int          `json:"datums"`
	Holes          []holeReport `json:"holes"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	p, err := plan.Load(configString(cmd, "plan"))
	if err != nil {
		return err
	}

	spec, err := findRib(p, args[0], args[1])
	if err != nil {
		return err
	}

	lib := airfoil.LoadReferenced(p.AirfoilDir, spec.AirfoilNames())
	prof, err := generate.ResolveProfile(*spec, lib, p.Geometry, configInt(cmd, "points"))
	if err != nil {
		return err
	}
	rib, err := geometry.Build(*spec, prof.Points, p.Geometry)
	if err != nil {
		return err
	}

	report := inspectReport{
		Set:            args[0],
		Rib:            spec.Name,
		Airfoil:        spec.Airfoil,
		Title:          prof.DisplayName,
		Chord:          spec.Chord,
		Incidence:      spec.Incidence,
		OutlinePoints:  len(rib.Outline),
		SheetingPoints: len(rib.Sheeting),
		Slots:          len(rib.Slots),
		Datums:         len(rib.Datums),
		Holes:          make([]holeReport, 0, len(rib.Holes)),
	}
	for _, h := range rib.Holes {
		report.Holes = append(report.Holes, holeReport{X: h.Center.X, Y: h.Center.Y, Radius: h.Radius})
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	fmt.Fprintf(os.Stdout, "rib:       %s/%s\n", report.Set, report.Rib)
	if report.Title != "" {
		fmt.Fprintf(os.Stdout, "airfoil:   %s (%s)\n", report.Airfoil, report.Title)
	} else {
		fmt.Fprintf(os.Stdout, "airfoil:   %s\n", report.Airfoil)
	}
	fmt.Fprintf(os.Stdout, "chord:     %.2f\n", report.Chord)
	fmt.Fprintf(os.Stdout, "incidence: %.2f deg\n", report.Incidence)
	fmt.Fprintf(os.Stdout, "outline:   %d points\n", report.OutlinePoints)
	if report.SheetingPoints > 0 {
		fmt.Fprintf(os.Stdout, "sheeting:  %d points\n", report.SheetingPoints)
	}
	fmt.Fprintf(os.Stdout, "slots:     %d\n", report.Slots)
	fmt.Fprintf(os.Stdout, "datums:    %d\n", report.Datums)
	if len(report.Holes) > 0 {
		fmt.Fprintln(os.Stdout, "holes:")
		for _, h := range report.Holes {
			fmt.Fprintf(os.Stdout, "  x=%.3f  y=%.3f  r=%.3f\n", h.X, h.Y, h.Radius)
		}
	}
	return nil
}

func findRib(p *types.Plan, setName, ribName string) (*types.RibSpec, error) {
	for i := range p.Sets {
		if p.Sets[i].Name != setName {
			continue
		}
		for j := range p.Sets[i].Ribs {
			if p.Sets[i].Ribs[j].Name == ribName {
				return &p.Sets[i].Ribs[j], nil
			}
		}
		return nil, fmt.Errorf("%w: no rib %q in set %q", types.ErrConfig, ribName, setName)
	}
	return nil, fmt.Errorf("%w: no rib set %q in plan", types.ErrConfig, setName)
}
