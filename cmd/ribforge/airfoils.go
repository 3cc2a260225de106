package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/ribforge/internal/airfoil"
	"github.com/pdiddy/ribforge/internal/plan"
)

var airfoilsCmd = &cobra.Command{
	Use:   "airfoils [names...]",
	Short: "List and validate airfoil coordinate files",
	Long: `Airfoils parses coordinate files from the airfoil directory and prints
each section's point count, maximum thickness, and maximum camber.
Files that fail to parse are reported with the parse error. Naming
airfoils restricts the listing to those files.`,
	RunE: runAirfoils,
}

func init() {
	airfoilsCmd.Flags().String("plan", "plan.csv", "plan table naming the airfoil directory")
	airfoilsCmd.Flags().String("airfoil-dir", "", "airfoil directory (overrides the plan)")

	rootCmd.AddCommand(airfoilsCmd)
}

func runAirfoils(cmd *cobra.Command, args []string) error {
	dir := configString(cmd, "airfoil-dir")
	if dir == "" {
		p, err := plan.Load(configString(cmd, "plan"))
		if err != nil {
			return err
		}
		dir = p.AirfoilDir
	}

	names := args
	if len(names) == 0 {
		var err error
		names, err = airfoil.ScanDir(dir)
		if err != nil {
			return err
		}
	}
	if len(names) == 0 {
		fmt.Println("No airfoil files found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-16s  %-28s  %6s  %10s  %10s\n",
		"Name", "Title", "Points", "Thickness", "Camber")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 78))

	invalid := 0
	for _, name := range names {
		prof, err := airfoil.Load(filepath.Join(dir, name+".dat"))
		if err != nil {
			fmt.Fprintf(os.Stdout, "%-16s  invalid: %v\n", name, err)
			invalid++
			continue
		}
		title := prof.DisplayName
		if len(title) > 28 {
			title = title[:25] + "..."
		}
		thickness, _ := prof.Thickness()
		camber, _ := prof.Camber()
		fmt.Fprintf(os.Stdout, "%-16s  %-28s  %6d  %9.2f%%  %9.2f%%\n",
			name, title, len(prof.Points), thickness*100, camber*100)
	}

	fmt.Fprintf(os.Stdout, "\n%d airfoils\n", len(names))
	if invalid > 0 {
		return fmt.Errorf("%d airfoil file(s) failed validation", invalid)
	}
	return nil
}
