package sketch

import (
	"bufio"
	"fmt"
	"io"

	"github.com/npillmayer/arcspiral"
	"github.com/npillmayer/arcspiral/euler"
)

// WriteIntents lists the constraint intents of a chain, one per line,
// together with the residual of the chain's geometry. Named intents are
// the ones a user may want to switch off downstream: the radius pin allows
// rescaling, the origin pin allows translation.
func WriteIntents(w io.Writer, chain *euler.ChainResult) error {
	bw := bufio.NewWriter(w)
	intents := chain.Intents()
	for i, in := range intents {
		fmt.Fprintf(bw, "%4d %-48s %.3g\n", i, in, chain.Residual(in))
	}
	tracer().Debugf("listed %d intents", len(intents))
	return bw.Flush()
}

// WriteGeometry lists the primitives of a chain in creation order.
func WriteGeometry(w io.Writer, chain *euler.ChainResult) error {
	bw := bufio.NewWriter(w)
	for i, arc := range chain.Arcs {
		kind := "arc"
		if arc.Construction {
			kind = "arc*"
		}
		fmt.Fprintf(bw, "%-5s %3d  %v .. %v .. %v  center %v  r=%.6g  α=%.6g°\n", kind, i,
			arc.Start.Zap(), arc.Mid.Zap(), arc.End.Zap(), arc.Center.Zap(), arc.Radius, arc.Alpha/arcspiral.Deg2Rad)
	}
	for i, chord := range chain.Chords {
		fmt.Fprintf(bw, "%-5s %3d  %v -- %v  d=%.6g\n", "chord", i, chord.Start.Zap(), chord.End.Zap(), chord.Length())
	}
	return bw.Flush()
}
