package euler

import (
	"fmt"
	"math"

	"github.com/npillmayer/arcspiral"
)

// IntentKind is the kind of relationship a downstream drafting system has to
// enforce between primitives of a chain.
type IntentKind int8

// Intent kinds, named after the sketcher constraints they map to.
const (
	Equal      IntentKind = iota // equal chord lengths or equal radii
	Coincident                   // two points coincide
	Tangent                      // two arcs are tangent at their joint
	Angle                        // subtended angle of an arc
	Radius                       // radius of an arc pinned to a value
	Origin                       // point pinned to the origin
)

func (k IntentKind) String() string {
	switch k {
	case Equal:
		return "Equal"
	case Coincident:
		return "Coincident"
	case Tangent:
		return "Tangent"
	case Angle:
		return "Angle"
	case Radius:
		return "Radius"
	case Origin:
		return "Origin"
	}
	return fmt.Sprintf("IntentKind(%d)", int(k))
}

// Geometry selects one of the primitive lists of a chain.
type Geometry int8

const (
	ArcGeometry Geometry = iota
	ChordGeometry
)

// Vertex selects a point of a primitive.
type Vertex int8

const (
	WholePrimitive Vertex = iota
	StartVertex
	EndVertex
)

// Ref references a primitive of a chain, or one of its end points.
type Ref struct {
	Geometry Geometry
	Index    int // index into ChainResult.Arcs or ChainResult.Chords
	Vertex   Vertex
}

func arcRef(i int, v Vertex) Ref   { return Ref{Geometry: ArcGeometry, Index: i, Vertex: v} }
func chordRef(i int, v Vertex) Ref { return Ref{Geometry: ChordGeometry, Index: i, Vertex: v} }

func (r Ref) String() string {
	g := "arc"
	if r.Geometry == ChordGeometry {
		g = "chord"
	}
	switch r.Vertex {
	case StartVertex:
		return fmt.Sprintf("%s[%d].start", g, r.Index)
	case EndVertex:
		return fmt.Sprintf("%s[%d].end", g, r.Index)
	}
	return fmt.Sprintf("%s[%d]", g, r.Index)
}

// Intent is a relationship between primitives of a chain. B is unused for
// the unary kinds Angle, Radius and Origin; Value is used by Angle and Radius.
// Name is set for the intents a user may want to toggle downstream.
type Intent struct {
	Kind  IntentKind
	A, B  Ref
	Value float64
	Name  string
}

func (in Intent) String() string {
	var s string
	switch in.Kind {
	case Angle:
		s = fmt.Sprintf("Angle(%s, %.6g°)", in.A, in.Value/arcspiral.Deg2Rad)
	case Radius:
		s = fmt.Sprintf("Radius(%s, %g)", in.A, in.Value)
	case Origin:
		s = fmt.Sprintf("Origin(%s)", in.A)
	default:
		s = fmt.Sprintf("%s(%s, %s)", in.Kind, in.A, in.B)
	}
	if in.Name != "" {
		s += " '" + in.Name + "'"
	}
	return s
}

// Names of the toggleable intents.
const (
	NameR1     = "EulerR1"
	NameR2     = "EulerR2"
	NameOrigin = "EulerOrigin"
)

// Intents lists the relationships a downstream constraint system has to
// enforce to keep the chain's shape under manipulation: all chords are equal
// and joined, consecutive arcs are tangent, chords and arcs share their
// vertices, every arc keeps its subtended angle, the boundary half-arcs keep
// equal radii, the smaller boundary radius is pinned, and the visible curve
// starts at the origin.
//
// With these intents in place the chain keeps one degree of freedom, a
// rotation around the origin. Dropping the origin intent allows translation,
// dropping the radius intent allows scaling with R1/R2 fixed.
func (chain *ChainResult) Intents() []Intent {
	n := chain.Spec.N
	last := len(chain.Arcs) - 1 // end construction half-arc
	var intents []Intent
	add := func(kind IntentKind, a, b Ref) {
		intents = append(intents, Intent{Kind: kind, A: a, B: b})
	}
	for i := 1; i <= n; i++ {
		add(Equal, chordRef(0, WholePrimitive), chordRef(i, WholePrimitive))
	}
	for i := 0; i < n; i++ {
		add(Coincident, chordRef(i, EndVertex), chordRef(i+1, StartVertex))
	}
	for i := 0; i < last; i++ {
		add(Tangent, arcRef(i, EndVertex), arcRef(i+1, StartVertex))
	}
	add(Coincident, chordRef(0, StartVertex), arcRef(0, StartVertex))
	for i := 0; i < n; i++ { // chord i ends where real arc i ends
		add(Coincident, chordRef(i, EndVertex), arcRef(i+1, EndVertex))
	}
	add(Coincident, chordRef(n, EndVertex), arcRef(last, EndVertex))
	for i, arc := range chain.Arcs {
		intents = append(intents, Intent{Kind: Angle, A: arcRef(i, WholePrimitive), Value: arc.Alpha})
	}
	add(Equal, arcRef(0, WholePrimitive), arcRef(1, WholePrimitive))
	add(Equal, arcRef(last-1, WholePrimitive), arcRef(last, WholePrimitive))
	if chain.Spec.R1 < chain.Spec.R2 {
		intents = append(intents, Intent{Kind: Radius, A: arcRef(0, WholePrimitive),
			Value: chain.Spec.R1, Name: NameR1})
	} else {
		intents = append(intents, Intent{Kind: Radius, A: arcRef(last, WholePrimitive),
			Value: chain.Spec.R2, Name: NameR2})
	}
	intents = append(intents, Intent{Kind: Origin, A: arcRef(1, StartVertex), Name: NameOrigin})
	return intents
}

// Residual measures how far the chain's geometry is from satisfying an
// intent: a distance for Coincident and Origin, a length difference for
// Equal and Radius, an angle difference for Angle and the sine of the angle
// between the radius vectors at the joint for Tangent.
func (chain *ChainResult) Residual(in Intent) float64 {
	switch in.Kind {
	case Equal:
		return math.Abs(chain.measure(in.A) - chain.measure(in.B))
	case Coincident:
		return chain.point(in.A).Dist(chain.point(in.B))
	case Tangent:
		a, b := chain.Arcs[in.A.Index], chain.Arcs[in.B.Index]
		u, v := a.End-a.Center, b.Start-b.Center
		return math.Abs(u.X()*v.Y()-u.Y()*v.X()) / (u.Abs() * v.Abs())
	case Angle:
		arc := chain.Arcs[in.A.Index]
		sweep := math.Mod((arc.End-arc.Center).Angle()-arc.StartAngle()+2*pi2, pi2)
		return math.Abs(sweep - in.Value)
	case Radius:
		arc := chain.Arcs[in.A.Index]
		return math.Abs(arc.Start.Dist(arc.Center) - in.Value)
	case Origin:
		return chain.point(in.A).Abs()
	}
	return math.NaN()
}

// measure is the length of a chord or the radius of an arc.
func (chain *ChainResult) measure(r Ref) float64 {
	if r.Geometry == ChordGeometry {
		return chain.Chords[r.Index].Length()
	}
	arc := chain.Arcs[r.Index]
	return arc.Start.Dist(arc.Center)
}

func (chain *ChainResult) point(r Ref) arcspiral.Pair {
	var start, end arcspiral.Pair
	if r.Geometry == ChordGeometry {
		start, end = chain.Chords[r.Index].Start, chain.Chords[r.Index].End
	} else {
		start, end = chain.Arcs[r.Index].Start, chain.Arcs[r.Index].End
	}
	if r.Vertex == EndVertex {
		return end
	}
	return start
}
