// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package plan parses build plans: the plan table naming directories,
// units, and shared geometry settings, plus the rib tables of every
// named set.
// Implements: prd001-plan (R1-R5);
//
//	docs/ARCHITECTURE § Plan.
package plan

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pdiddy/ribforge/pkg/types"
)

// Load reads the plan file and every rib table it names. Relative
// airfoil, output, and rib table paths resolve against the plan file's
// directory. Any malformed row aborts the load; nothing about a plan
// error is recoverable per rib.
func Load(path string) (*types.Plan, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening plan %s: %v", types.ErrIO, path, err)
	}
	defer f.Close()

	p, err := Parse(f, path)
	if err != nil {
		return nil, err
	}

	base := filepath.Dir(path)
	p.AirfoilDir = resolvePath(base, p.AirfoilDir)
	p.OutputDir = resolvePath(base, p.OutputDir)
	for i := range p.Sets {
		set := &p.Sets[i]
		ribs, err := LoadRibTable(resolvePath(base, set.Source))
		if err != nil {
			return nil, err
		}
		set.Ribs = ribs
	}
	return p, nil
}

// Parse reads just the plan table. Rows are key, annotation, value; the
// annotation column is free-form except in set rows, where it carries
// the set name. Unknown keys are rejected rather than skipped.
func Parse(r io.Reader, source string) (*types.Plan, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.Comment = '#'
	reader.TrimLeadingSpace = true

	p := &types.Plan{
		Source:     source,
		AirfoilDir: "airfoils",
		OutputDir:  "figure",
	}
	seenSets := make(map[string]bool)

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: plan %s: %v", types.ErrConfig, source, err)
		}
		line, _ := reader.FieldPos(0)

		key := strings.TrimSpace(record[0])
		if key == "" {
			continue
		}
		if len(record) < 3 {
			return nil, fmt.Errorf("%w: plan %s line %d: row %q needs key, annotation, value", types.ErrConfig, source, line, key)
		}
		val := strings.TrimSpace(record[2])

		switch key {
		case "airfoil_dir":
			p.AirfoilDir = val
		case "output_dir":
			p.OutputDir = val
		case "units":
			units, err := parseUnits(val)
			if err != nil {
				return nil, fmt.Errorf("%w: plan %s line %d: %v", types.ErrConfig, source, line, err)
			}
			p.Units = units
		case "resample_points":
			n, err := strconv.Atoi(val)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%w: plan %s line %d: resample_points %q must be a non-negative integer", types.ErrConfig, source, line, val)
			}
			p.Geometry.ResamplePoints = n
		case "plank_thickness":
			p.Geometry.PlankThickness, err = parseThickness(key, val, source, line)
		case "ribcap_thickness":
			p.Geometry.RibcapThickness, err = parseThickness(key, val, source, line)
		case "tan_stringer_thickness":
			p.Geometry.TanStringerThickness, err = parseThickness(key, val, source, line)
		case "tan_stringer_width":
			p.Geometry.TanStringerWidth, err = parseThickness(key, val, source, line)
		case "norm_stringer_thickness":
			p.Geometry.NormStringerThickness, err = parseThickness(key, val, source, line)
		case "norm_stringer_width":
			p.Geometry.NormStringerWidth, err = parseThickness(key, val, source, line)
		case "set":
			name := strings.TrimSpace(record[1])
			if name == "" {
				return nil, fmt.Errorf("%w: plan %s line %d: set row needs a name in the second column", types.ErrConfig, source, line)
			}
			if val == "" {
				return nil, fmt.Errorf("%w: plan %s line %d: set %q names no rib table", types.ErrConfig, source, line, name)
			}
			if seenSets[name] {
				return nil, fmt.Errorf("%w: plan %s line %d: duplicate set %q", types.ErrConfig, source, line, name)
			}
			seenSets[name] = true
			p.Sets = append(p.Sets, types.RibSet{Name: name, Source: val})
		default:
			return nil, fmt.Errorf("%w: plan %s line %d: unknown key %q", types.ErrConfig, source, line, key)
		}
		if err != nil {
			return nil, err
		}
	}

	if len(p.Sets) == 0 {
		return nil, fmt.Errorf("%w: plan %s: no rib sets", types.ErrConfig, source)
	}
	return p, nil
}

func parseUnits(val string) (types.Units, error) {
	switch val {
	case "", "none":
		return types.UnitsNone, nil
	case "mm":
		return types.UnitsMillimeters, nil
	case "in":
		return types.UnitsInches, nil
	default:
		return types.UnitsNone, fmt.Errorf("unknown units %q, want mm, in, or none", val)
	}
}

func parseThickness(key, val, source string, line int) (float64, error) {
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: plan %s line %d: %s %q is not a number", types.ErrConfig, source, line, key, val)
	}
	if f < 0 {
		return 0, fmt.Errorf("%w: plan %s line %d: %s must not be negative", types.ErrConfig, source, line, key)
	}
	return f, nil
}

func resolvePath(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
