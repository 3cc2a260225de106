// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package plan

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pdiddy/ribforge/pkg/types"
)

// Rib tables are CSV with one header row. Columns are matched by name,
// not position, so tables can omit unused features and order columns
// freely.
var requiredColumns = []string{"name", "airfoil", "chord", "incidence"}

// LoadRibTable reads one rib table file.
func LoadRibTable(path string) ([]types.RibSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening rib table %s: %v", types.ErrIO, path, err)
	}
	defer f.Close()
	return ParseRibTable(f, path)
}

// ParseRibTable reads rib rows from r. Every row must parse; a rib
// table with a bad row aborts the plan rather than generating a subset
// silently.
func ParseRibTable(r io.Reader, source string) ([]types.RibSpec, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.Comment = '#'
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: rib table %s is empty", types.ErrConfig, source)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: rib table %s: %v", types.ErrConfig, source, err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, req := range requiredColumns {
		if _, ok := cols[req]; !ok {
			return nil, fmt.Errorf("%w: rib table %s: missing required column %q", types.ErrConfig, source, req)
		}
	}

	var ribs []types.RibSpec
	names := make(map[string]bool)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: rib table %s: %v", types.ErrConfig, source, err)
		}
		line, _ := reader.FieldPos(0)

		row := tableRow{record: record, cols: cols, source: source, line: line}
		if row.cell("name") == "" && len(strings.TrimSpace(strings.Join(record, ""))) == 0 {
			continue
		}
		spec, err := parseRib(&row)
		if err != nil {
			return nil, err
		}
		if names[spec.Name] {
			return nil, row.errf("duplicate rib name %q", spec.Name)
		}
		names[spec.Name] = true
		ribs = append(ribs, spec)
	}

	if len(ribs) == 0 {
		return nil, fmt.Errorf("%w: rib table %s has no rib rows", types.ErrConfig, source)
	}
	return ribs, nil
}

// tableRow gives name-based access to one CSV record with positioned
// error reporting.
type tableRow struct {
	record []string
	cols   map[string]int
	source string
	line   int
}

func (r *tableRow) cell(name string) string {
	idx, ok := r.cols[name]
	if !ok || idx >= len(r.record) {
		return ""
	}
	return strings.TrimSpace(r.record[idx])
}

func (r *tableRow) errf(format string, args ...any) error {
	return fmt.Errorf("%w: %s line %d: %s", types.ErrConfig, r.source, r.line, fmt.Sprintf(format, args...))
}

func (r *tableRow) float(name string) (float64, error) {
	val := r.cell(name)
	if val == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, r.errf("%s %q is not a number", name, val)
	}
	return f, nil
}

func parseRib(row *tableRow) (types.RibSpec, error) {
	var spec types.RibSpec

	spec.Name = row.cell("name")
	if spec.Name == "" {
		return spec, row.errf("rib row has no name")
	}
	spec.Airfoil = row.cell("airfoil")
	if spec.Airfoil == "" {
		return spec, row.errf("rib %q names no airfoil", spec.Name)
	}

	var err error
	if spec.Chord, err = row.float("chord"); err != nil {
		return spec, err
	}
	if spec.Chord <= 0 {
		return spec, row.errf("rib %q: chord must be positive, got %g", spec.Name, spec.Chord)
	}
	if spec.Incidence, err = row.float("incidence"); err != nil {
		return spec, err
	}

	spec.BlendAirfoil = row.cell("blend_airfoil")
	if spec.BlendRatio, err = row.float("blend_ratio"); err != nil {
		return spec, err
	}
	if spec.BlendAirfoil == "" && spec.BlendRatio != 0 {
		return spec, row.errf("rib %q: blend_ratio set without blend_airfoil", spec.Name)
	}
	if spec.BlendAirfoil != "" && (spec.BlendRatio < 0 || spec.BlendRatio > 1) {
		return spec, row.errf("rib %q: blend_ratio %g outside [0,1]", spec.Name, spec.BlendRatio)
	}

	if spec.SparHoles, err = parseHoles(row); err != nil {
		return spec, err
	}
	if spec.RearSpar, err = parseRearSpar(row); err != nil {
		return spec, err
	}
	if spec.RearSpar != nil && len(spec.SparHoles) == 0 {
		return spec, row.errf("rib %q: rear_spar requires spar_holes", spec.Name)
	}

	if spec.BracingPosition, err = row.float("bracing_position"); err != nil {
		return spec, err
	}
	if spec.BracingPosition != 0 {
		if spec.RearSpar == nil {
			return spec, row.errf("rib %q: bracing_position requires rear_spar", spec.Name)
		}
		if spec.BracingPosition < 0 || spec.BracingPosition >= 1 {
			return spec, row.errf("rib %q: bracing_position %g outside (0,1)", spec.Name, spec.BracingPosition)
		}
	}

	if spec.UpperPlankEnd, err = row.float("upper_plank_end"); err != nil {
		return spec, err
	}
	if spec.LowerPlankEnd, err = row.float("lower_plank_end"); err != nil {
		return spec, err
	}
	for _, v := range []float64{spec.UpperPlankEnd, spec.LowerPlankEnd} {
		if v < 0 || v > 1 {
			return spec, row.errf("rib %q: plank end %g outside [0,1]", spec.Name, v)
		}
	}

	if spec.Stringers, err = parseStringers(row); err != nil {
		return spec, err
	}

	return spec, nil
}

// parseHoles reads the spar_holes cell: space-separated pos:diameter
// entries, e.g. "0.25:12 0.6:6".
func parseHoles(row *tableRow) ([]types.HoleSpec, error) {
	cell := row.cell("spar_holes")
	if cell == "" {
		return nil, nil
	}
	var holes []types.HoleSpec
	for _, entry := range strings.Fields(cell) {
		parts := strings.Split(entry, ":")
		if len(parts) != 2 {
			return nil, row.errf("spar hole %q: want position:diameter", entry)
		}
		pos, err1 := strconv.ParseFloat(parts[0], 64)
		dia, err2 := strconv.ParseFloat(parts[1], 64)
		if err1 != nil || err2 != nil {
			return nil, row.errf("spar hole %q: want position:diameter", entry)
		}
		if pos < 0 || pos > 1 {
			return nil, row.errf("spar hole %q: position outside [0,1]", entry)
		}
		if dia <= 0 {
			return nil, row.errf("spar hole %q: diameter must be positive", entry)
		}
		holes = append(holes, types.HoleSpec{Position: pos, Diameter: dia})
	}
	return holes, nil
}

// parseRearSpar reads the rear_spar cell: distance:angle:diameter.
func parseRearSpar(row *tableRow) (*types.RearSparSpec, error) {
	cell := row.cell("rear_spar")
	if cell == "" {
		return nil, nil
	}
	parts := strings.Split(cell, ":")
	if len(parts) != 3 {
		return nil, row.errf("rear_spar %q: want distance:angle:diameter", cell)
	}
	dist, err1 := strconv.ParseFloat(parts[0], 64)
	angle, err2 := strconv.ParseFloat(parts[1], 64)
	dia, err3 := strconv.ParseFloat(parts[2], 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return nil, row.errf("rear_spar %q: want distance:angle:diameter", cell)
	}
	if dist <= 0 {
		return nil, row.errf("rear_spar %q: distance must be positive", cell)
	}
	if dia <= 0 {
		return nil, row.errf("rear_spar %q: diameter must be positive", cell)
	}
	return &types.RearSparSpec{Distance: dist, Angle: angle, Diameter: dia}, nil
}

// parseStringers reads the stringers cell: space-separated signed chord
// fractions, positive upper, negative lower.
func parseStringers(row *tableRow) ([]float64, error) {
	cell := row.cell("stringers")
	if cell == "" {
		return nil, nil
	}
	var stringers []float64
	for _, entry := range strings.Fields(cell) {
		v, err := strconv.ParseFloat(entry, 64)
		if err != nil {
			return nil, row.errf("stringer %q is not a number", entry)
		}
		abs := v
		if abs < 0 {
			abs = -abs
		}
		if abs <= 0 || abs >= 1 {
			return nil, row.errf("stringer %q: magnitude outside (0,1)", entry)
		}
		stringers = append(stringers, v)
	}
	return stringers, nil
}
