// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dxf

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/ribforge/internal/geometry"
	"github.com/pdiddy/ribforge/pkg/types"
)

// goldenDrawing is the serialized form of testDrawing: one three-point
// polyline and one circle, no units header.
const goldenDrawing = `  0
SECTION
  2
ENTITIES
  0
POLYLINE
  8
0
  6
CONTINUOUS
 62
7
 66
1
 10
0
 20
0
 30
0
 70
128
 40
1.0
 41
1.0
  0
VERTEX
  8
0
  6
CONTINUOUS
 62
7
 10
0.000000
 20
0.000000
 30
0
 40
0
 41
0
  0
VERTEX
  8
0
  6
CONTINUOUS
 62
7
 10
10.000000
 20
0.000000
 30
0
 40
0
 41
0
  0
VERTEX
  8
0
  6
CONTINUOUS
 62
7
 10
10.000000
 20
5.000000
 30
0
 40
0
 41
0
  0
SEQEND
  8
0
  6
CONTINUOUS
 62
7
  0
CIRCLE
  8
0
  6
CONTINUOUS
 62
7
 10
2.500000
 20
1.250000
 30
0
 40
3.000000
  0
ENDSEC
  0
EOF
`

func testDrawing() *Drawing {
	var d Drawing
	d.Polyline([]geometry.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 5}})
	d.Circle(geometry.Point{X: 2.5, Y: 1.25}, 3)
	return &d
}

func TestWriteToGolden(t *testing.T) {
	var buf bytes.Buffer
	n, err := testDrawing().WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if got := buf.String(); got != goldenDrawing {
		t.Errorf("WriteTo() mismatch:\ngot:\n%s\nwant:\n%s", got, goldenDrawing)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo() n = %d, want %d", n, buf.Len())
	}
}

func TestWriteToEmpty(t *testing.T) {
	var d Drawing
	var buf bytes.Buffer
	if _, err := d.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	want := "  0\nSECTION\n  2\nENTITIES\n  0\nENDSEC\n  0\nEOF\n"
	if buf.String() != want {
		t.Errorf("WriteTo() = %q, want %q", buf.String(), want)
	}
}

func TestWriteToDeterministic(t *testing.T) {
	d := testDrawing()
	var a, b bytes.Buffer
	if _, err := d.WriteTo(&a); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if _, err := d.WriteTo(&b); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("WriteTo() output differs between runs")
	}
}

func TestWriteToUnitsHeader(t *testing.T) {
	d := testDrawing()
	d.InsUnits = types.UnitsMillimeters.InsUnits()
	var buf bytes.Buffer
	if _, err := d.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	wantPrefix := "  0\nSECTION\n  2\nHEADER\n  9\n$INSUNITS\n 70\n4\n  0\nENDSEC\n"
	if !strings.HasPrefix(buf.String(), wantPrefix) {
		t.Errorf("WriteTo() header = %q, want prefix %q", buf.String()[:len(wantPrefix)], wantPrefix)
	}

	var bare bytes.Buffer
	if _, err := testDrawing().WriteTo(&bare); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if strings.Contains(bare.String(), "$INSUNITS") {
		t.Error("WriteTo() emits $INSUNITS with no units configured")
	}
}

func TestWriteToNormalizesNegativeZero(t *testing.T) {
	var d Drawing
	d.Circle(geometry.Point{X: math.Copysign(0, -1), Y: 0}, 1)
	var buf bytes.Buffer
	if _, err := d.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if strings.Contains(buf.String(), "-0.000000") {
		t.Error("WriteTo() emits -0.000000")
	}
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rib.dxf")
	if err := testDrawing().Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != goldenDrawing {
		t.Error("Save() content differs from WriteTo() output")
	}
}

func TestSaveMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent", "rib.dxf")
	err := testDrawing().Save(path)
	if !errors.Is(err, types.ErrIO) {
		t.Errorf("Save() error = %v, want ErrIO", err)
	}
}
