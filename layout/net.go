package layout

import "github.com/katalvlaran/routegen/geom"

// Net is a committed, fully routed net.
type Net struct {
	// ID is the insertion index within the layout.
	ID int
	// Pins are the terminals in routing order, all on layer 0.
	Pins []geom.Point
	// Vias are layer changes at their lower layer.
	Vias []geom.Point
	// HSegments run along x on even layers, VSegments along y on odd layers.
	HSegments []geom.Segment
	VSegments []geom.Segment
	// WL is len(Vias) plus the span-1 of every segment.
	WL int
}

// reset drops everything but the pins.
func (n *Net) reset() {
	n.Vias = nil
	n.HSegments = nil
	n.VSegments = nil
	n.WL = 0
}
