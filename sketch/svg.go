// Package sketch hands arc chains to the outside world: as SVG drawings and
// as listings of the constraint intents a drafting system has to enforce.
package sketch

import (
	"image/color"
	"io"
	"math"

	"github.com/npillmayer/arcspiral/euler"
	"github.com/npillmayer/schuko/tracing"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/svg"
)

// tracer writes to trace with key 'sketch'
func tracer() tracing.Trace {
	return tracing.Select("sketch")
}

// Options control SVG output.
type Options struct {
	StrokeWidth  float64 // in user units; 0 chooses 1/200 of the drawing's size
	Margin       float64 // relative to the drawing's size
	Construction bool    // draw construction arcs and chords
}

// DefaultOptions draws construction geometry with a margin of 5%.
func DefaultOptions() Options {
	return Options{Margin: 0.05, Construction: true}
}

// WriteSVG renders a chain as a standalone SVG document. The visible curve
// is drawn as one path of arcs, construction arcs and chords as a second,
// dashed path. The drawing is shifted to the positive quadrant; the SVG
// renderer takes care of the y-axis pointing down.
func WriteSVG(w io.Writer, chain *euler.ChainResult, opts Options) error {
	ll, ur := chain.Extent()
	size := math.Max(ur.X()-ll.X(), ur.Y()-ll.Y())
	if size <= 0 {
		size = 1
	}
	margin := opts.Margin * size
	stroke := opts.StrokeWidth
	if stroke <= 0 {
		stroke = size / 200
	}
	width, height := ur.X()-ll.X()+2*margin, ur.Y()-ll.Y()+2*margin
	m := canvas.Identity.Translate(margin-ll.X(), margin-ll.Y())
	r := svg.New(w, width, height)
	if opts.Construction {
		style := lineStyle(canvas.Grey, stroke)
		style.Dashes = []float64{4 * stroke, 2 * stroke}
		r.RenderPath(constructionPath(chain), style, m)
	}
	r.RenderPath(curvePath(chain), lineStyle(canvas.Black, stroke), m)
	tracer().Debugf("wrote SVG for %d arcs, size %g × %g", len(chain.Arcs), width, height)
	return r.Close()
}

func lineStyle(c color.RGBA, width float64) canvas.Style {
	return canvas.Style{
		StrokeColor:  c,
		StrokeWidth:  width,
		StrokeCapper: canvas.RoundCap,
		StrokeJoiner: canvas.RoundJoin,
	}
}

// curvePath is the visible curve, one arc command per real arc.
func curvePath(chain *euler.ChainResult) *canvas.Path {
	p := &canvas.Path{}
	first := true
	for _, arc := range chain.Arcs {
		if arc.Construction {
			continue
		}
		if first {
			p.MoveTo(arc.Start.X(), arc.Start.Y())
			first = false
		}
		arcTo(p, arc)
	}
	return p
}

// constructionPath collects chords and construction arcs as separate subpaths.
func constructionPath(chain *euler.ChainResult) *canvas.Path {
	p := &canvas.Path{}
	for _, chord := range chain.Chords {
		p.MoveTo(chord.Start.X(), chord.Start.Y())
		p.LineTo(chord.End.X(), chord.End.Y())
	}
	for _, arc := range chain.Arcs {
		if arc.Construction {
			p.MoveTo(arc.Start.X(), arc.Start.Y())
			arcTo(p, arc)
		}
	}
	return p
}

// ArcPath returns a path drawing a single arc.
func ArcPath(arc euler.ArcPrimitive) *canvas.Path {
	p := &canvas.Path{}
	p.MoveTo(arc.Start.X(), arc.Start.Y())
	arcTo(p, arc)
	return p
}

// arcTo appends a counter-clockwise circular arc.
func arcTo(p *canvas.Path, arc euler.ArcPrimitive) {
	r := math.Abs(arc.Radius)
	p.ArcTo(r, r, 0, arc.Alpha > math.Pi, true, arc.End.X(), arc.End.Y())
}
