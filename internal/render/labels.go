package render

import "sort"

// Label is a text annotation anchored at a data point, already mapped to
// pixel coordinates.
type Label struct {
	X, Y float64
	Text string
}

// PlacedLabel is a label with its final, non-overlapping box position. The
// box's bottom-left corner is (BoxX, BoxY); a connector is drawn back to
// (X, Y) when the label moved away from its anchor.
type PlacedLabel struct {
	Label
	BoxX, BoxY float64
	BoxW, BoxH float64
}

// LabelPlacer lays out text annotations so they do not overlap. Implemented
// here by GreedyPlacer; callers may substitute their own layout routine.
type LabelPlacer interface {
	Place(labels []Label, boxW, boxH float64) []PlacedLabel
}

// GreedyPlacer nudges labels upward until they clear every previously placed
// box. Labels are processed left to right, so the output is deterministic.
type GreedyPlacer struct {
	// Pad is the minimum gap between boxes in pixels.
	Pad float64
}

// NewGreedyPlacer returns a placer with a small default padding.
func NewGreedyPlacer() *GreedyPlacer {
	return &GreedyPlacer{Pad: 2}
}

func overlaps(a, b PlacedLabel, pad float64) bool {
	if a.BoxX+a.BoxW+pad <= b.BoxX || b.BoxX+b.BoxW+pad <= a.BoxX {
		return false
	}
	if a.BoxY+a.BoxH+pad <= b.BoxY || b.BoxY+b.BoxH+pad <= a.BoxY {
		return false
	}
	return true
}

// Place implements LabelPlacer. Boxes start just above their anchor and move
// up (smaller pixel y) in box-height steps until free.
func (g *GreedyPlacer) Place(labels []Label, boxW, boxH float64) []PlacedLabel {
	ordered := make([]Label, len(labels))
	copy(ordered, labels)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].X < ordered[j].X })

	placed := make([]PlacedLabel, 0, len(ordered))
	for _, l := range ordered {
		cand := PlacedLabel{
			Label: l,
			BoxX:  l.X - boxW/2,
			BoxY:  l.Y - boxH - g.Pad,
			BoxW:  boxW,
			BoxH:  boxH,
		}

		for {
			free := true
			for _, p := range placed {
				if overlaps(cand, p, g.Pad) {
					free = false
					break
				}
			}
			if free {
				break
			}
			cand.BoxY -= boxH + g.Pad
		}

		placed = append(placed, cand)
	}

	return placed
}
