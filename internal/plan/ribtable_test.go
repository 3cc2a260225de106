// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package plan

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/ribforge/pkg/types"
)

const fullRibTable = `name,airfoil,chord,incidence,blend_airfoil,blend_ratio,spar_holes,rear_spar,bracing_position,upper_plank_end,lower_plank_end,stringers
R01,clarky,180,2.5,e205,0.25,0.25:12 0.6:6,95:12:6,0.3,0.3,0.15,0.45 -0.45
R02,clarky,170,2.0,,,0.25:12,,,,,
`

func TestParseRibTable(t *testing.T) {
	ribs, err := ParseRibTable(strings.NewReader(fullRibTable), "ribs.csv")
	if err != nil {
		t.Fatalf("ParseRibTable() error = %v", err)
	}
	if len(ribs) != 2 {
		t.Fatalf("len(ribs) = %d, want 2", len(ribs))
	}

	r := ribs[0]
	if r.Name != "R01" || r.Airfoil != "clarky" {
		t.Errorf("rib = %q %q, want R01 clarky", r.Name, r.Airfoil)
	}
	if r.Chord != 180 || r.Incidence != 2.5 {
		t.Errorf("chord/incidence = %g/%g, want 180/2.5", r.Chord, r.Incidence)
	}
	if r.BlendAirfoil != "e205" || r.BlendRatio != 0.25 {
		t.Errorf("blend = %q %g, want e205 0.25", r.BlendAirfoil, r.BlendRatio)
	}
	if !r.Blended() {
		t.Error("Blended() = false, want true")
	}
	wantHoles := []types.HoleSpec{{Position: 0.25, Diameter: 12}, {Position: 0.6, Diameter: 6}}
	if len(r.SparHoles) != len(wantHoles) {
		t.Fatalf("len(SparHoles) = %d, want %d", len(r.SparHoles), len(wantHoles))
	}
	for i, want := range wantHoles {
		if r.SparHoles[i] != want {
			t.Errorf("SparHoles[%d] = %+v, want %+v", i, r.SparHoles[i], want)
		}
	}
	if r.RearSpar == nil {
		t.Fatal("RearSpar = nil, want set")
	}
	if *r.RearSpar != (types.RearSparSpec{Distance: 95, Angle: 12, Diameter: 6}) {
		t.Errorf("RearSpar = %+v, want 95:12:6", *r.RearSpar)
	}
	if r.BracingPosition != 0.3 {
		t.Errorf("BracingPosition = %g, want 0.3", r.BracingPosition)
	}
	if r.UpperPlankEnd != 0.3 || r.LowerPlankEnd != 0.15 {
		t.Errorf("plank ends = %g/%g, want 0.3/0.15", r.UpperPlankEnd, r.LowerPlankEnd)
	}
	if len(r.Stringers) != 2 || r.Stringers[0] != 0.45 || r.Stringers[1] != -0.45 {
		t.Errorf("Stringers = %v, want [0.45 -0.45]", r.Stringers)
	}

	r = ribs[1]
	if r.Blended() {
		t.Error("Blended() = true for a plain rib")
	}
	if r.RearSpar != nil || r.BracingPosition != 0 || len(r.Stringers) != 0 {
		t.Errorf("plain rib carries options: %+v", r)
	}
}

func TestParseRibTableMinimalColumns(t *testing.T) {
	table := "chord,name,incidence,airfoil\n200,R01,0,ag35\n"
	ribs, err := ParseRibTable(strings.NewReader(table), "ribs.csv")
	if err != nil {
		t.Fatalf("ParseRibTable() error = %v", err)
	}
	if len(ribs) != 1 {
		t.Fatalf("len(ribs) = %d, want 1", len(ribs))
	}
	if ribs[0].Name != "R01" || ribs[0].Airfoil != "ag35" || ribs[0].Chord != 200 {
		t.Errorf("rib = %+v, want R01 ag35 chord 200", ribs[0])
	}
}

func TestParseRibTableShortRows(t *testing.T) {
	// Rows may stop early; absent trailing cells read as empty.
	table := "name,airfoil,chord,incidence,spar_holes\nR01,clarky,180,1\n"
	ribs, err := ParseRibTable(strings.NewReader(table), "ribs.csv")
	if err != nil {
		t.Fatalf("ParseRibTable() error = %v", err)
	}
	if len(ribs[0].SparHoles) != 0 {
		t.Errorf("SparHoles = %v, want none", ribs[0].SparHoles)
	}
}

func TestParseRibTableErrors(t *testing.T) {
	header := "name,airfoil,chord,incidence,blend_airfoil,blend_ratio,spar_holes,rear_spar,bracing_position,upper_plank_end,lower_plank_end,stringers\n"
	row := func(cells string) string { return header + cells + "\n" }

	tests := []struct {
		name  string
		table string
	}{
		{"empty table", ""},
		{"no rows", header},
		{"missing column", "name,airfoil,chord\nR01,clarky,180\n"},
		{"no name", row(",clarky,180,0")},
		{"duplicate name", row("R01,clarky,180,0") + "R01,clarky,170,0\n"},
		{"no airfoil", row("R01,,180,0")},
		{"zero chord", row("R01,clarky,0,0")},
		{"chord not a number", row("R01,clarky,wide,0")},
		{"incidence not a number", row("R01,clarky,180,steep")},
		{"ratio without blend", row("R01,clarky,180,0,,0.5")},
		{"ratio out of range", row("R01,clarky,180,0,e205,1.5")},
		{"hole missing diameter", row("R01,clarky,180,0,,,0.25")},
		{"hole position out of range", row("R01,clarky,180,0,,,1.25:12")},
		{"hole zero diameter", row("R01,clarky,180,0,,,0.25:0")},
		{"hole not numbers", row("R01,clarky,180,0,,,mid:big")},
		{"rear spar malformed", row("R01,clarky,180,0,,,0.25:12,95:6")},
		{"rear spar zero distance", row("R01,clarky,180,0,,,0.25:12,0:12:6")},
		{"rear spar zero diameter", row("R01,clarky,180,0,,,0.25:12,95:12:0")},
		{"rear spar without holes", row("R01,clarky,180,0,,,,95:12:6")},
		{"bracing without rear spar", row("R01,clarky,180,0,,,0.25:12,,0.3")},
		{"bracing out of range", row("R01,clarky,180,0,,,0.25:12,95:12:6,1.0")},
		{"plank end out of range", row("R01,clarky,180,0,,,,,,1.2")},
		{"stringer at chord end", row("R01,clarky,180,0,,,,,,,,1.0")},
		{"stringer not a number", row("R01,clarky,180,0,,,,,,,,mid")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRibTable(strings.NewReader(tt.table), "ribs.csv")
			if !errors.Is(err, types.ErrConfig) {
				t.Errorf("ParseRibTable() error = %v, want ErrConfig", err)
			}
		})
	}
}

func TestParseRibTableErrorNamesLine(t *testing.T) {
	table := "name,airfoil,chord,incidence\nR01,clarky,180,0\nR02,clarky,-5,0\n"
	_, err := ParseRibTable(strings.NewReader(table), "ribs.csv")
	if err == nil || !strings.Contains(err.Error(), "line 3") {
		t.Errorf("ParseRibTable() error = %v, want line 3 mentioned", err)
	}
}

func TestLoadRibTableMissing(t *testing.T) {
	_, err := LoadRibTable(filepath.Join(t.TempDir(), "absent.csv"))
	if !errors.Is(err, types.ErrIO) {
		t.Errorf("LoadRibTable() error = %v, want ErrIO", err)
	}
}
