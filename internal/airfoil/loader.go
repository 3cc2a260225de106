// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package airfoil

import (
	"bufio"
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pdiddy/ribforge/internal/geometry"
	"github.com/pdiddy/ribforge/pkg/types"
)

// Coordinate values are chord fractions near [0, 1], so any first pair
// above this threshold marks a Lednicer count line instead.
const lednicerThreshold = 1.5

// Parse reads one airfoil coordinate file and returns the profile in
// Selig order. Both common layouts are accepted:
//
//   - Selig: a title line, then one trailing edge to trailing edge
//     point sequence over the upper then lower surface.
//   - Lednicer: a title line, a pair of per-surface point counts, then
//     the upper and lower surfaces separately, each leading edge to
//     trailing edge.
//
// The title line may be absent when the first line already parses as a
// coordinate pair. Surfaces must be strictly monotonic chord-wise;
// anything else returns ErrFormat.
func Parse(r io.Reader, name string) (*Profile, error) {
	scanner := bufio.NewScanner(r)

	var displayName string
	var pairs []geometry.Point
	first := true
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if first {
			first = false
			if _, ok := parsePair(line); !ok {
				displayName = line
				continue
			}
		}
		p, ok := parsePair(line)
		if !ok {
			return nil, fmt.Errorf("%w: %s line %d: expected two coordinates, got %q", types.ErrFormat, name, lineNo, line)
		}
		pairs = append(pairs, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", types.ErrIO, name, err)
	}
	if len(pairs) == 0 {
		return nil, fmt.Errorf("%w: %s: no coordinate data", types.ErrFormat, name)
	}

	points := pairs
	if pairs[0].X > lednicerThreshold || pairs[0].Y > lednicerThreshold {
		var err error
		points, err = assembleLednicer(pairs, name)
		if err != nil {
			return nil, err
		}
	}

	if len(points) < 3 {
		return nil, fmt.Errorf("%w: %s: only %d points", types.ErrFormat, name, len(points))
	}
	if err := validateMonotonic(points, name); err != nil {
		return nil, err
	}

	return &Profile{Name: name, DisplayName: displayName, Points: points}, nil
}

// assembleLednicer joins separately listed surfaces into Selig order.
// The leading edge point is shared, so the first lower point is
// dropped.
func assembleLednicer(pairs []geometry.Point, name string) ([]geometry.Point, error) {
	counts := pairs[0]
	nUpper := int(counts.X)
	nLower := int(counts.Y)
	if float64(nUpper) != counts.X || float64(nLower) != counts.Y || nUpper < 2 || nLower < 2 {
		return nil, fmt.Errorf("%w: %s: bad surface counts %g/%g", types.ErrFormat, name, counts.X, counts.Y)
	}
	data := pairs[1:]
	if len(data) != nUpper+nLower {
		return nil, fmt.Errorf("%w: %s: expected %d coordinate pairs, found %d", types.ErrFormat, name, nUpper+nLower, len(data))
	}

	upper := data[:nUpper]
	lower := data[nUpper:]
	points := make([]geometry.Point, 0, nUpper+nLower-1)
	points = append(points, geometry.Reverse(upper)...)
	points = append(points, lower[1:]...)
	return points, nil
}

func validateMonotonic(points []geometry.Point, name string) error {
	le := geometry.LeadingEdgeIndex(points)
	if le == 0 || le == len(points)-1 {
		return fmt.Errorf("%w: %s: outline has only one surface", types.ErrFormat, name)
	}
	for i := 1; i <= le; i++ {
		if points[i].X >= points[i-1].X {
			return fmt.Errorf("%w: %s: upper surface not monotonic near x=%.4f", types.ErrFormat, name, points[i].X)
		}
	}
	for i := le + 1; i < len(points); i++ {
		if points[i].X <= points[i-1].X {
			return fmt.Errorf("%w: %s: lower surface not monotonic near x=%.4f", types.ErrFormat, name, points[i].X)
		}
	}
	return nil
}

func parsePair(line string) (geometry.Point, bool) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return geometry.Point{}, false
	}
	x, err1 := strconv.ParseFloat(fields[0], 64)
	y, err2 := strconv.ParseFloat(fields[1], 64)
	if err1 != nil || err2 != nil {
		return geometry.Point{}, false
	}
	return geometry.Pt(x, y), true
}

// Load reads and parses the coordinate file at path. The profile name
// is the file stem and the checksum records the raw file bytes.
func Load(path string) (*Profile, error) {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", types.ErrReference, path)
		}
		return nil, fmt.Errorf("%w: reading %s: %v", types.ErrIO, path, err)
	}

	prof, err := Parse(bytes.NewReader(data), name)
	if err != nil {
		return nil, err
	}
	sum := sha256.Sum256(data)
	prof.Checksum = hex.EncodeToString(sum[:])
	return prof, nil
}

// Library is the read-only profile set a plan works against. Lookups
// never touch the filesystem; everything is loaded up front.
type Library struct {
	profiles map[string]*Profile
	errs     map[string]error
}

// LoadReferenced loads exactly the named airfoils from dir. Failures
// are recorded per name instead of aborting, so a missing or malformed
// file only fails the ribs that reference it.
func LoadReferenced(dir string, names []string) *Library {
	lib := &Library{
		profiles: make(map[string]*Profile, len(names)),
		errs:     make(map[string]error),
	}
	for _, name := range names {
		prof, err := Load(filepath.Join(dir, name+".dat"))
		if err != nil {
			if errors.Is(err, types.ErrReference) {
				err = fmt.Errorf("%w: airfoil %q not found in %s", types.ErrReference, name, dir)
			}
			lib.errs[name] = err
			continue
		}
		lib.profiles[name] = prof
	}
	return lib
}

// Lookup returns the named profile, or the error its load produced.
func (l *Library) Lookup(name string) (*Profile, error) {
	if p, ok := l.profiles[name]; ok {
		return p, nil
	}
	if err, ok := l.errs[name]; ok {
		return nil, err
	}
	return nil, fmt.Errorf("%w: airfoil %q was never loaded", types.ErrReference, name)
}

// Checksum returns the source file checksum for name, or the empty
// string when the profile failed to load.
func (l *Library) Checksum(name string) string {
	if p, ok := l.profiles[name]; ok {
		return p.Checksum
	}
	return ""
}

// Names returns the successfully loaded profile names, sorted.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.profiles))
	for name := range l.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ScanDir lists the airfoil names available in dir: the stems of its
// .dat files, sorted. Subdirectories and dotfiles are skipped.
func ScanDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: scanning %s: %v", types.ErrIO, dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		ext := filepath.Ext(e.Name())
		if !strings.EqualFold(ext, ".dat") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ext))
	}
	sort.Strings(names)
	return names, nil
}
