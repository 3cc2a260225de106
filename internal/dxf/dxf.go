// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dxf serializes rib drawings as minimal R12-flavor DXF: an
// optional HEADER section carrying $INSUNITS, then one ENTITIES section
// of POLYLINE and CIRCLE entities.
// Implements: prd004-dxf-output (R1-R4);
//
//	docs/ARCHITECTURE § DXF Output.
package dxf

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pdiddy/ribforge/internal/geometry"
	"github.com/pdiddy/ribforge/pkg/types"
)

// Drawing accumulates entities and serializes them on demand. The zero
// value is an empty drawing with no units header.
type Drawing struct {
	// InsUnits is the $INSUNITS header value. Zero omits the HEADER
	// section entirely.
	InsUnits int

	entities []entity
}

type entity interface {
	emit(w *tagWriter)
}

// Polyline appends an open polyline through points.
func (d *Drawing) Polyline(points []geometry.Point) {
	d.entities = append(d.entities, polyline{points: points})
}

// Circle appends a circle.
func (d *Drawing) Circle(center geometry.Point, radius float64) {
	d.entities = append(d.entities, circle{center: center, radius: radius})
}

// WriteTo serializes the drawing. Output is byte-deterministic: group
// codes are right-justified to three columns and coordinates use a
// fixed six-decimal format.
func (d *Drawing) WriteTo(w io.Writer) (int64, error) {
	tw := newTagWriter(w)
	if d.InsUnits > 0 {
		tw.tag(0, "SECTION")
		tw.tag(2, "HEADER")
		tw.tag(9, "$INSUNITS")
		tw.tagInt(70, d.InsUnits)
		tw.tag(0, "ENDSEC")
	}
	tw.tag(0, "SECTION")
	tw.tag(2, "ENTITIES")
	for _, e := range d.entities {
		e.emit(tw)
	}
	tw.tag(0, "ENDSEC")
	tw.tag(0, "EOF")
	return tw.flush()
}

// Save writes the drawing to path. The parent directory must exist.
func (d *Drawing) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: creating %s: %v", types.ErrIO, path, err)
	}
	if _, err := d.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("%w: writing %s: %v", types.ErrIO, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: writing %s: %v", types.ErrIO, path, err)
	}
	return nil
}

type polyline struct {
	points []geometry.Point
}

func (p polyline) emit(w *tagWriter) {
	w.tag(0, "POLYLINE")
	layerTags(w)
	// 66=1: vertex entities follow. 70=128: continuous linetype
	// pattern around vertices.
	w.tagInt(66, 1)
	w.tagInt(10, 0)
	w.tagInt(20, 0)
	w.tagInt(30, 0)
	w.tagInt(70, 128)
	w.tag(40, "1.0")
	w.tag(41, "1.0")
	for _, pt := range p.points {
		w.tag(0, "VERTEX")
		layerTags(w)
		w.tagFloat(10, pt.X)
		w.tagFloat(20, pt.Y)
		w.tagInt(30, 0)
		w.tagInt(40, 0)
		w.tagInt(41, 0)
	}
	w.tag(0, "SEQEND")
	layerTags(w)
}

type circle struct {
	center geometry.Point
	radius float64
}

func (c circle) emit(w *tagWriter) {
	w.tag(0, "CIRCLE")
	layerTags(w)
	w.tagFloat(10, c.center.X)
	w.tagFloat(20, c.center.Y)
	w.tagInt(30, 0)
	w.tagFloat(40, c.radius)
}

// layerTags writes the attributes shared by every entity: layer 0,
// linetype CONTINUOUS, color 7.
func layerTags(w *tagWriter) {
	w.tagInt(8, 0)
	w.tag(6, "CONTINUOUS")
	w.tagInt(62, 7)
}

// tagWriter emits DXF group code and value pairs. The first write error
// sticks; later writes are dropped and flush reports it.
type tagWriter struct {
	w   *bufio.Writer
	n   int64
	err error
}

func newTagWriter(w io.Writer) *tagWriter {
	return &tagWriter{w: bufio.NewWriter(w)}
}

func (t *tagWriter) tag(code int, value string) {
	if t.err != nil {
		return
	}
	n, err := fmt.Fprintf(t.w, "%3d\n%s\n", code, value)
	t.n += int64(n)
	t.err = err
}

func (t *tagWriter) tagInt(code, v int) {
	t.tag(code, strconv.Itoa(v))
}

func (t *tagWriter) tagFloat(code int, v float64) {
	if v == 0 {
		v = 0 // normalize negative zero
	}
	t.tag(code, strconv.FormatFloat(v, 'f', 6, 64))
}

func (t *tagWriter) flush() (int64, error) {
	if t.err != nil {
		return t.n, t.err
	}
	return t.n, t.w.Flush()
}
