package euler

import (
	"math"

	"github.com/npillmayer/arcspiral"
	"github.com/npillmayer/arcspiral/polygon"
)

// Footprint returns the closed polygon running through the start and mid
// points of every arc of the chain (construction arcs included) and the
// chain's last point.
func (chain *ChainResult) Footprint() *polygon.Polygon {
	pg := polygon.NullPolygon()
	for _, arc := range chain.Arcs {
		pg.Knot(arc.Start).Knot(arc.Mid)
	}
	if len(chain.Arcs) > 0 {
		pg.Knot(chain.Arcs[len(chain.Arcs)-1].End)
	}
	return pg.Cycle()
}

// Extent returns the lower left and upper right corner of the chain,
// construction arcs included. Arcs bulging beyond their footprint knots
// contribute their axis-extreme points.
func (chain *ChainResult) Extent() (arcspiral.Pair, arcspiral.Pair) {
	bulges := polygon.NullPolygon()
	for _, arc := range chain.Arcs {
		for _, p := range arc.extremes() {
			bulges.Knot(p)
		}
	}
	return polygon.BoundingBox(chain.Footprint(), bulges)
}

// extremes returns the points of an arc where it is tangent to a horizontal
// or vertical line, i.e., the points at 0°, 90°, 180° and 270° around its
// center which lie within its sweep.
func (arc ArcPrimitive) extremes() []arcspiral.Pair {
	var pts []arcspiral.Pair
	start := arc.StartAngle()
	r := math.Abs(arc.Radius)
	for k := 0; k < 4; k++ {
		theta := float64(k) * math.Pi / 2
		if math.Mod(theta-start+2*pi2, pi2) <= arc.Alpha {
			pts = append(pts, arc.Center+arcspiral.Polar(r, theta))
		}
	}
	return pts
}
