// Command eulerarcs approximates an Euler spiral by a chain of circular arcs
// and prints how close the chain comes to the spiral's length.
//
//	eulerarcs -n 40 --r1 10 --r2 1e4 --angle 90 --svg spiral.svg
//
// Without --angle the spiral is specified by its length.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/arcspiral"
	"github.com/npillmayer/arcspiral/euler"
	"github.com/npillmayer/arcspiral/sketch"
	"github.com/tdewolff/argp"
)

type Arcs struct {
	Angle    float64 `short:"a" default:"0" desc:"Total turning angle in degrees (overrides --length)"`
	Length   float64 `short:"l" default:"31.41592653589793" desc:"Curve length"`
	R1       float64 `default:"10" desc:"Radius at the start of the spiral"`
	R2       float64 `default:"10000" desc:"Radius at the end of the spiral"`
	N        int     `short:"n" default:"20" desc:"Number of chord segments"`
	Rotate   float64 `short:"r" default:"0" desc:"Rotate the chain around its start point, in degrees"`
	SVG      string  `short:"o" desc:"Write an SVG drawing to this file"`
	Intents  bool    `short:"i" desc:"List constraint intents"`
	Geometry bool    `short:"g" desc:"List arcs and chords"`
	Study    string  `short:"s" desc:"Comma-separated segment counts for a convergence study"`
}

func main() {
	root := argp.NewCmd(&Arcs{}, "Euler spiral approximation by circular arcs")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Arcs) Run() error {
	if cmd.Study != "" {
		ns, err := parseCounts(cmd.Study)
		if err != nil {
			return err
		}
		return study(os.Stdout, cmd.spec(), ns)
	}
	var drawing bytes.Buffer
	if err := cmd.run(os.Stdout, &drawing); err != nil {
		return err
	}
	if cmd.SVG != "" {
		return os.WriteFile(cmd.SVG, drawing.Bytes(), 0o644)
	}
	return nil
}

func (cmd *Arcs) spec() euler.SpiralSpec {
	spec := euler.SpiralSpec{
		CurveLength: cmd.Length,
		R1:          cmd.R1,
		R2:          cmd.R2,
		N:           cmd.N,
	}
	if cmd.Angle != 0 {
		spec.UseTotalAngle = true
		spec.TotalAngleRad = cmd.Angle * arcspiral.Deg2Rad
	}
	return spec
}

// run builds the chain and writes the report and listings to w. If an SVG
// file has been requested, the drawing goes to svg.
func (cmd *Arcs) run(w, svg io.Writer) error {
	chain, err := cmd.build()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, chain.Report())
	if cmd.Geometry {
		if err := sketch.WriteGeometry(w, chain); err != nil {
			return err
		}
	}
	if cmd.Intents {
		if err := sketch.WriteIntents(w, chain); err != nil {
			return err
		}
	}
	if cmd.SVG != "" {
		return sketch.WriteSVG(svg, chain, sketch.DefaultOptions())
	}
	return nil
}

// build assembles the chain and turns it around its start point.
func (cmd *Arcs) build() (*euler.ChainResult, error) {
	chain, err := euler.Assemble(cmd.spec())
	if err != nil {
		return nil, err
	}
	if cmd.Rotate != 0 {
		chain = chain.Rotated(cmd.Rotate * arcspiral.Deg2Rad)
	}
	return chain, nil
}

func study(w io.Writer, spec euler.SpiralSpec, ns []int) error {
	reports, err := euler.Convergence(spec, ns...)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%6s %14s %14s %8s\n", "N", "arc error", "chord error", "ratio")
	for i, r := range reports {
		ratio := "-"
		if i > 0 && r.ChordError() != 0 {
			ratio = fmt.Sprintf("%.3f", reports[i-1].ChordError()/r.ChordError())
		}
		fmt.Fprintf(w, "%6d %14.6e %14.6e %8s\n", r.N, r.ArcError(), r.ChordError(), ratio)
	}
	return nil
}

func parseCounts(s string) ([]int, error) {
	var ns []int
	for _, field := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("bad segment count %q: %w", field, err)
		}
		ns = append(ns, n)
	}
	return ns, nil
}
