package caseio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/routegen/geom"
	"github.com/katalvlaran/routegen/layout"
)

// Write emits the full case of l.
func Write(w io.Writer, l *layout.Layout) error {
	return Encode(w, FromLayout(l))
}

// WriteRouterInput emits c without via and segment records.
func WriteRouterInput(w io.Writer, c *Case) error {
	return Encode(w, c.RouterInput())
}

// Encode emits c; wiring records are written only when c.Wired is set.
func Encode(w io.Writer, c *Case) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "Width 0 %d\n", c.Width)
	fmt.Fprintf(bw, "Height 0 %d\n", c.Height)
	fmt.Fprintf(bw, "total_WL %d\n", c.TotalWL)
	fmt.Fprintf(bw, "total_via %d\n", c.TotalVias)
	fmt.Fprintf(bw, "Layer %d\n", c.Layers)
	for i := 0; i < c.Layers; i++ {
		fmt.Fprintf(bw, "track%d 0 1 %d\n", i, i%2)
	}

	fmt.Fprintf(bw, "Obstacle_num %d\n", len(c.Obstacles))
	for _, b := range c.Obstacles {
		fmt.Fprintf(bw, "%d %d %d %d %d %d\n", b.Lo.X, b.Lo.Y, b.Lo.Z, b.Hi.X, b.Hi.Y, b.Hi.Z)
	}

	fmt.Fprintf(bw, "Net_num %d\n", len(c.Nets))
	for _, n := range c.Nets {
		fmt.Fprintf(bw, "Net_id %d\n", n.ID)
		fmt.Fprintf(bw, "pin_num %d\n", len(n.Pins))
		for j, p := range n.Pins {
			fmt.Fprintf(bw, "pin_id %d\nap_num 1\n%d %d %d\n", j, p.X, p.Y, p.Z)
		}
		if !c.Wired {
			continue
		}
		fmt.Fprintf(bw, "Via_num %d\n", len(n.Vias))
		for _, v := range n.Vias {
			fmt.Fprintf(bw, "%d %d\n", v.X, v.Y)
		}
		writeSegments(bw, "H_segment_num", n.HSegments)
		writeSegments(bw, "V_segment_num", n.VSegments)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("caseio: write: %w", err)
	}
	return nil
}

func writeSegments(bw *bufio.Writer, key string, segs []geom.Segment) {
	fmt.Fprintf(bw, "%s %d\n", key, len(segs))
	for _, s := range segs {
		fmt.Fprintf(bw, "%d %d %d %d %d %d\n", s[0], s[1], s[2], s[3], s[4], s[5])
	}
}
