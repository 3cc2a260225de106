// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package airfoil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/ribforge/internal/geometry"
	"github.com/pdiddy/ribforge/pkg/types"
)

const seligFixture = `test foil
1.000000  0.000000
0.500000  0.080000
0.000000  0.000000
0.500000 -0.040000
1.000000  0.000000
`

const lednicerFixture = `TEST FOIL L
 3.  3.

0.000000  0.000000
0.500000  0.080000
1.000000  0.000000

0.000000  0.000000
0.500000 -0.040000
1.000000  0.000000
`

func TestParseSelig(t *testing.T) {
	prof, err := Parse(strings.NewReader(seligFixture), "testfoil")
	require.NoError(t, err)

	assert.Equal(t, "testfoil", prof.Name)
	assert.Equal(t, "test foil", prof.DisplayName)
	require.Len(t, prof.Points, 5)
	assert.Equal(t, geometry.Pt(1, 0), prof.Points[0])
	assert.Equal(t, geometry.Pt(0, 0), prof.Points[2])
	assert.Equal(t, geometry.Pt(0.5, -0.04), prof.Points[3])
}

func TestParseLednicer(t *testing.T) {
	prof, err := Parse(strings.NewReader(lednicerFixture), "testfoil-l")
	require.NoError(t, err)

	assert.Equal(t, "TEST FOIL L", prof.DisplayName)

	// Assembled into Selig order with the shared leading edge point
	// kept once.
	want := []geometry.Point{
		geometry.Pt(1, 0),
		geometry.Pt(0.5, 0.08),
		geometry.Pt(0, 0),
		geometry.Pt(0.5, -0.04),
		geometry.Pt(1, 0),
	}
	assert.Equal(t, want, prof.Points)
}

func TestParseHeaderless(t *testing.T) {
	fixture := strings.SplitN(seligFixture, "\n", 2)[1]
	prof, err := Parse(strings.NewReader(fixture), "bare")
	require.NoError(t, err)
	assert.Empty(t, prof.DisplayName)
	assert.Len(t, prof.Points, 5)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			"empty file",
			"",
			types.ErrFormat,
		},
		{
			"name only",
			"lonely title\n",
			types.ErrFormat,
		},
		{
			"three columns",
			"foil\n1.0 0.0 9.9\n0.5 0.1\n0.0 0.0\n",
			types.ErrFormat,
		},
		{
			"non-numeric coordinate",
			"foil\n1.0 0.0\nabc 0.1\n0.0 0.0\n",
			types.ErrFormat,
		},
		{
			"lednicer count mismatch",
			"foil\n3. 3.\n0.0 0.0\n0.5 0.1\n1.0 0.0\n0.0 0.0\n1.0 0.0\n",
			types.ErrFormat,
		},
		{
			"lednicer fractional counts",
			"foil\n2.5 3.\n0.0 0.0\n0.5 0.1\n1.0 0.0\n",
			types.ErrFormat,
		},
		{
			"non-monotonic upper surface",
			"foil\n1.0 0.0\n0.4 0.1\n0.6 0.12\n0.0 0.0\n0.5 -0.05\n1.0 0.0\n",
			types.ErrFormat,
		},
		{
			"duplicate station",
			"foil\n1.0 0.0\n0.5 0.1\n0.5 0.09\n0.0 0.0\n0.5 -0.05\n1.0 0.0\n",
			types.ErrFormat,
		},
		{
			"single surface only",
			"foil\n1.0 0.0\n0.5 0.1\n0.0 0.0\n",
			types.ErrFormat,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input), "fixture")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeFoil(t, dir, "dae11.dat", seligFixture)

	prof, err := Load(filepath.Join(dir, "dae11.dat"))
	require.NoError(t, err)
	assert.Equal(t, "dae11", prof.Name)
	assert.Len(t, prof.Checksum, 64)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.dat"))
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrReference)
}

func TestLoadReferenced(t *testing.T) {
	dir := t.TempDir()
	writeFoil(t, dir, "good.dat", seligFixture)
	writeFoil(t, dir, "broken.dat", "broken foil\nnot numbers here\n")

	lib := LoadReferenced(dir, []string{"good", "broken", "missing"})

	prof, err := lib.Lookup("good")
	require.NoError(t, err)
	assert.Equal(t, "good", prof.Name)

	_, err = lib.Lookup("broken")
	assert.ErrorIs(t, err, types.ErrFormat)

	_, err = lib.Lookup("missing")
	assert.ErrorIs(t, err, types.ErrReference)

	_, err = lib.Lookup("unrequested")
	assert.ErrorIs(t, err, types.ErrReference)

	assert.Equal(t, []string{"good"}, lib.Names())
	assert.NotEmpty(t, lib.Checksum("good"))
	assert.Empty(t, lib.Checksum("missing"))
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	writeFoil(t, dir, "zed.dat", seligFixture)
	writeFoil(t, dir, "alpha.dat", seligFixture)
	writeFoil(t, dir, "UPPER.DAT", seligFixture)
	writeFoil(t, dir, "notes.txt", "not a foil")
	writeFoil(t, dir, ".hidden.dat", seligFixture)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir.dat"), 0o755))

	names, err := ScanDir(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"UPPER", "alpha", "zed"}, names)
}

func TestScanDirMissing(t *testing.T) {
	_, err := ScanDir(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrIO)
}

func writeFoil(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
