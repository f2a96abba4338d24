package graphemitter

// Style bundles the graphviz attribute sets applied to matched and
// unmatched vertices and edges.
type Style struct {
	VertexProps        map[string]string
	MatchedVertexProps map[string]string
	EdgeProps          map[string]string
	MatchedEdgeProps   map[string]string
}

// DefaultStyle returns the reference attribute set: unmatched vertices and
// edges in grey, matched vertices filled light sky blue with a heavy red
// border, matched edges heavy-weight.
func DefaultStyle() Style {
	return Style{
		VertexProps: map[string]string{
			"color": "grey",
		},
		MatchedVertexProps: map[string]string{
			"color":     "red",
			"style":     "filled",
			"fillcolor": "lightskyblue",
			"penwidth":  "3",
		},
		EdgeProps: map[string]string{
			"color": "grey",
		},
		MatchedEdgeProps: map[string]string{
			"penwidth": "3",
		},
	}
}

// LabelSource supplies the display label for a vertex's pid.
type LabelSource interface {
	Label(lund int64) string
}

// DirectLabelSource labels a vertex with its raw pid, formatted as a
// decimal integer.
type DirectLabelSource struct{}

// Label implements LabelSource.
func (DirectLabelSource) Label(lund int64) string {
	return formatLund(lund)
}
