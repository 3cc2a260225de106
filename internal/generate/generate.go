// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package generate runs the batch pipeline: resolve airfoils, build rib
// geometry, write DXF files, and record outcomes in the catalog.
// Implements: prd004-dxf-output (R5-R7), prd005-catalog (R2);
//
//	docs/ARCHITECTURE § Generation.
package generate

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/ribforge/internal/airfoil"
	"github.com/pdiddy/ribforge/internal/catalog"
	"github.com/pdiddy/ribforge/internal/dxf"
	"github.com/pdiddy/ribforge/internal/geometry"
	"github.com/pdiddy/ribforge/pkg/types"
)

const manifestFile = "manifest.yaml"

// Status classifies the outcome of one rib generation attempt.
type Status string

const (
	StatusGenerated Status = "generated"
	StatusSkipped   Status = "skipped"
	StatusFailed    Status = "failed"
)

// Outcome describes one rib generation attempt.
type Outcome struct {
	Set         string `json:"set" yaml:"set"`
	Rib         string `json:"rib" yaml:"rib"`
	Status      Status `json:"status" yaml:"status"`
	Path        string `json:"path,omitempty" yaml:"path,omitempty"`
	Points      int    `json:"points,omitempty" yaml:"points,omitempty"`
	Holes       int    `json:"holes,omitempty" yaml:"holes,omitempty"`
	Fingerprint string `json:"fingerprint,omitempty" yaml:"fingerprint,omitempty"`
	Error       string `json:"error,omitempty" yaml:"error,omitempty"`
}

// BatchResult summarizes a batch run.
type BatchResult struct {
	Generated int
	Skipped   int
	Failed    int
	Outcomes  []Outcome
}

// Total returns the total number of ribs processed.
func (r BatchResult) Total() int {
	return r.Generated + r.Skipped + r.Failed
}

// HasFailures reports whether any rib failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Options adjust a batch run.
type Options struct {
	// Force regenerates ribs whose fingerprints are unchanged.
	Force bool

	// ResamplePoints overrides the plan's per-surface resampling count.
	// Zero keeps the plan value; negative disables resampling.
	ResamplePoints int

	// Sets restricts the run to the named rib sets. Empty runs all.
	Sets []string
}

// Run generates every rib of the selected sets. Per-rib failures are
// counted and reported to w; the run continues. A run-level error is
// returned only for unknown set names, an unusable output directory, or
// context cancellation.
func Run(ctx context.Context, p *types.Plan, lib *airfoil.Library, store *catalog.Store, opts Options, w io.Writer) (BatchResult, error) {
	sets, err := selectSets(p, opts.Sets)
	if err != nil {
		return BatchResult{}, err
	}
	if err := os.MkdirAll(p.OutputDir, 0o755); err != nil {
		return BatchResult{}, fmt.Errorf("%w: creating %s: %v", types.ErrIO, p.OutputDir, err)
	}

	var result BatchResult
	for _, set := range sets {
		for _, spec := range set.Ribs {
			select {
			case <-ctx.Done():
				return result, ctx.Err()
			default:
			}

			out := generateRib(ctx, set.Name, spec, p, lib, store, opts)
			result.Outcomes = append(result.Outcomes, out)

			switch out.Status {
			case StatusGenerated:
				fmt.Fprintf(w, "generated: %s/%s (%d points, %d holes)\n", set.Name, spec.Name, out.Points, out.Holes)
				result.Generated++
				if store != nil {
					if err := record(ctx, store, spec, out); err != nil {
						fmt.Fprintf(w, "warning: catalog record failed for %s/%s: %v\n", set.Name, spec.Name, err)
					}
				}
			case StatusSkipped:
				fmt.Fprintf(w, "skipped: %s/%s (unchanged)\n", set.Name, spec.Name)
				result.Skipped++
			case StatusFailed:
				fmt.Fprintf(w, "failed:  %s/%s (%s)\n", set.Name, spec.Name, out.Error)
				result.Failed++
			}
		}
	}

	fmt.Fprintf(w, "\nBatch summary: %d generated, %d skipped, %d failed (total: %d)\n",
		result.Generated, result.Skipped, result.Failed, result.Total())

	if err := writeManifest(p, result); err != nil {
		fmt.Fprintf(w, "warning: manifest write failed: %v\n", err)
	}
	return result, nil
}

// selectSets returns the plan sets to run, in request order when names
// are given.
func selectSets(p *types.Plan, names []string) ([]types.RibSet, error) {
	if len(names) == 0 {
		return p.Sets, nil
	}
	byName := make(map[string]types.RibSet, len(p.Sets))
	for _, s := range p.Sets {
		byName[s.Name] = s
	}
	sets := make([]types.RibSet, 0, len(names))
	for _, name := range names {
		s, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: unknown rib set %q", types.ErrConfig, name)
		}
		sets = append(sets, s)
	}
	return sets, nil
}

// ResolveProfile returns the drawing profile for one rib: blended when
// the rib names a partner airfoil, resampled when the settings or the
// override ask for it. A negative override disables resampling.
func ResolveProfile(spec types.RibSpec, lib *airfoil.Library, settings types.GeometrySettings, override int) (*airfoil.Profile, error) {
	prof, err := lib.Lookup(spec.Airfoil)
	if err != nil {
		return nil, err
	}
	if spec.Blended() {
		partner, err := lib.Lookup(spec.BlendAirfoil)
		if err != nil {
			return nil, err
		}
		prof, err = airfoil.Blend(prof, partner, spec.BlendRatio)
		if err != nil {
			return nil, err
		}
	}

	if resample := resolveResample(settings.ResamplePoints, override); resample > 0 {
		prof, err = airfoil.Resample(prof, resample)
		if err != nil {
			return nil, err
		}
	}
	return prof, nil
}

// generateRib produces one DXF file. A failed rib leaves no output
// file behind.
func generateRib(ctx context.Context, set string, spec types.RibSpec, p *types.Plan, lib *airfoil.Library, store *catalog.Store, opts Options) Outcome {
	out := Outcome{Set: set, Rib: spec.Name}

	prof, err := ResolveProfile(spec, lib, p.Geometry, opts.ResamplePoints)
	if err != nil {
		return failed(out, err)
	}

	resample := resolveResample(p.Geometry.ResamplePoints, opts.ResamplePoints)
	out.Path = filepath.Join(p.OutputDir, set, spec.Name+".dxf")
	out.Fingerprint = fingerprint(spec, lib, p.Geometry, resample)

	if !opts.Force && store != nil && store.Unchanged(ctx, set, spec.Name, out.Fingerprint) {
		if _, err := os.Stat(out.Path); err == nil {
			out.Status = StatusSkipped
			return out
		}
	}

	rib, err := geometry.Build(spec, prof.Points, p.Geometry)
	if err != nil {
		return failed(out, err)
	}

	var d dxf.Drawing
	d.InsUnits = p.Units.InsUnits()
	d.Polyline(rib.Outline)
	d.Polyline(rib.Chordline)
	if rib.Sheeting != nil {
		d.Polyline(rib.Sheeting)
	}
	for _, slot := range rib.Slots {
		d.Polyline(slot)
	}
	for _, hole := range rib.Holes {
		d.Circle(hole.Center, hole.Radius)
	}
	for _, line := range rib.Datums {
		d.Polyline(line)
	}

	if err := os.MkdirAll(filepath.Dir(out.Path), 0o755); err != nil {
		return failed(out, fmt.Errorf("%w: creating %s: %v", types.ErrIO, filepath.Dir(out.Path), err))
	}
	if err := d.Save(out.Path); err != nil {
		os.Remove(out.Path)
		return failed(out, err)
	}

	out.Status = StatusGenerated
	out.Points = len(rib.Outline)
	out.Holes = len(rib.Holes)
	return out
}

func failed(out Outcome, err error) Outcome {
	out.Status = StatusFailed
	out.Error = err.Error()
	return out
}

func resolveResample(planPoints, override int) int {
	switch {
	case override > 0:
		return override
	case override < 0:
		return 0
	default:
		return planPoints
	}
}

// fingerprint hashes everything that shapes one rib's output: the rib
// row, the bytes of the referenced airfoil files, the shared geometry
// settings, and the effective resampling count.
func fingerprint(spec types.RibSpec, lib *airfoil.Library, settings types.GeometrySettings, resample int) string {
	h := sha256.New()
	row, _ := yaml.Marshal(spec)
	h.Write(row)
	io.WriteString(h, lib.Checksum(spec.Airfoil))
	if spec.Blended() {
		io.WriteString(h, lib.Checksum(spec.BlendAirfoil))
	}
	shared, _ := yaml.Marshal(settings)
	h.Write(shared)
	fmt.Fprintf(h, "resample=%d", resample)
	return hex.EncodeToString(h.Sum(nil))
}

func record(ctx context.Context, store *catalog.Store, spec types.RibSpec, out Outcome) error {
	return store.Record(ctx, catalog.Entry{
		Set:           out.Set,
		Rib:           out.Rib,
		Airfoil:       spec.Airfoil,
		Chord:         spec.Chord,
		Incidence:     spec.Incidence,
		OutlinePoints: out.Points,
		HoleCount:     out.Holes,
		DXFPath:       out.Path,
		Fingerprint:   out.Fingerprint,
	})
}

type manifest struct {
	Plan      string    `yaml:"plan"`
	RunAt     time.Time `yaml:"run_at"`
	Generated int       `yaml:"generated"`
	Skipped   int       `yaml:"skipped"`
	Failed    int       `yaml:"failed"`
	Outcomes  []Outcome `yaml:"outcomes"`
}

func writeManifest(p *types.Plan, result BatchResult) error {
	m := manifest{
		Plan:      p.Source,
		RunAt:     time.Now().UTC(),
		Generated: result.Generated,
		Skipped:   result.Skipped,
		Failed:    result.Failed,
		Outcomes:  result.Outcomes,
	}
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	return os.WriteFile(filepath.Join(p.OutputDir, manifestFile), data, 0o644)
}
