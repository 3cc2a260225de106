// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the ribforge CLI.
// Implements: prd001-plan, prd002-airfoils, prd003-geometry,
//             prd004-dxf-output, prd005-catalog (CLI surface).
// See docs/ARCHITECTURE § Pipeline Interface, § Project Structure.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the ribforge CLI.
var rootCmd = &cobra.Command{
	Use:   "ribforge",
	Short: "Batch DXF generation for model aircraft wing ribs",
	Long: `ribforge turns a build plan into manufacturing drawings. A plan table
names rib sets and shared geometry settings; each set's rib table lists
per-rib parameters (airfoil, chord, incidence, spar holes, sheeting,
stringers). ribforge loads the referenced airfoil coordinate files,
computes each rib's outline geometry, and writes one DXF file per rib.

The generation catalog tracks what was built from which inputs, so
unchanged ribs are skipped on reruns and past runs can be inspected
with the status command.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./ribforge.yaml or ~/.config/ribforge/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("ribforge")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "ribforge"))
		}
	}

	viper.SetEnvPrefix("RIBFORGE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// configString resolves a string setting: the command-line flag when
// set, otherwise the viper value (config file or RIBFORGE_* variable),
// otherwise the flag default.
func configString(cmd *cobra.Command, name string) string {
	if !cmd.Flags().Changed(name) && viper.IsSet(name) {
		return viper.GetString(name)
	}
	v, _ := cmd.Flags().GetString(name)
	return v
}

func configInt(cmd *cobra.Command, name string) int {
	if !cmd.Flags().Changed(name) && viper.IsSet(name) {
		return viper.GetInt(name)
	}
	v, _ := cmd.Flags().GetInt(name)
	return v
}

func configBool(cmd *cobra.Command, name string) bool {
	if !cmd.Flags().Changed(name) && viper.IsSet(name) {
		return viper.GetBool(name)
	}
	v, _ := cmd.Flags().GetBool(name)
	return v
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
