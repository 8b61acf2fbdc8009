package avatar

// Clip is a playable animation handle supplied by the asset layer. The
// animator only ever starts, stops, and weights a clip; it never inspects
// clip internals.
type Clip interface {
	Start(loop bool, speedRatio float64)
	Stop()
	SetWeight(weight float64)
}
