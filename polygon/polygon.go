// Package polygon provides closed polygons of points, e.g. the outline of an
// arc chain, on top of polyclip-go.
package polygon

import (
	"fmt"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/arcspiral"
	"github.com/npillmayer/schuko/tracing"
)

// L traces with key 'polygon'.
func L() tracing.Trace {
	return tracing.Select("polygon")
}

// Polygon is a sequence of knots, optionally closed.
type Polygon struct {
	contour polyclip.Contour
	cycle   bool
}

// NullPolygon creates an empty polygon, to be extended by Knot().
func NullPolygon() *Polygon {
	return &Polygon{}
}

// Knot appends a point. Part of builder functionality.
func (pg *Polygon) Knot(p arcspiral.Pair) *Polygon {
	pg.contour.Add(polyclip.Point{X: p.X(), Y: p.Y()})
	return pg
}

// Cycle closes the polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// Box creates a rectangle from two opposite corners.
func Box(a, b arcspiral.Pair) *Polygon {
	x0, y0 := a.F()
	x1, y1 := b.F()
	return NullPolygon().
		Knot(arcspiral.P(x0, y0)).Knot(arcspiral.P(x1, y0)).
		Knot(arcspiral.P(x1, y1)).Knot(arcspiral.P(x0, y1)).Cycle()
}

// N returns the number of knots.
func (pg *Polygon) N() int {
	return len(pg.contour)
}

// IsCycle is a predicate: is this polygon closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// Pt returns knot i.
func (pg *Polygon) Pt(i int) arcspiral.Pair {
	p := pg.contour[i]
	return arcspiral.P(p.X, p.Y)
}

// BoundingBox returns the lower left and upper right corners of the
// smallest axis-aligned rectangle enclosing all knots of all polygons.
func BoundingBox(pgs ...*Polygon) (arcspiral.Pair, arcspiral.Pair) {
	var all polyclip.Polygon
	for _, pg := range pgs {
		if pg != nil && pg.N() > 0 {
			all = append(all, pg.contour)
		}
	}
	if len(all) == 0 {
		return arcspiral.Origin, arcspiral.Origin
	}
	bb := all.BoundingBox()
	L().Debugf("bounding box of %d contours: (%g,%g)–(%g,%g)", len(all), bb.Min.X, bb.Min.Y, bb.Max.X, bb.Max.Y)
	return arcspiral.P(bb.Min.X, bb.Min.Y), arcspiral.P(bb.Max.X, bb.Max.Y)
}

// AsString returns a polygon as a (debugging) string.
func AsString(pg *Polygon) string {
	var b strings.Builder
	for i := 0; i < pg.N(); i++ {
		if i > 0 {
			b.WriteString(" -- ")
		}
		fmt.Fprintf(&b, "%s", pg.Pt(i))
	}
	if pg.IsCycle() {
		b.WriteString(" -- cycle")
	}
	return b.String()
}
