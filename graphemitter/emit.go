package graphemitter

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/bdtaunu/graphtruth/dgraph"
)

// Emitter writes graphs in the canonical textual (dot) form under a fixed
// Style.
type Emitter struct {
	style Style
}

// NewEmitter returns an Emitter using the given Style.
func NewEmitter(style Style) *Emitter {
	return &Emitter{style: style}
}

// Emit writes g to w as a graphviz digraph. labels supplies each vertex's
// display label; matching, if non-nil, is indexed by local_index and a
// non-negative entry marks that vertex (and, transitively, edges between
// two matched vertices) as matched for styling purposes. A nil matching
// vector renders every vertex and edge with the unmatched style.
// Complexity: O(V + E).
func (e *Emitter) Emit(w io.Writer, g *dgraph.Graph, labels LabelSource, matching []int) error {
	live := g.LiveVertices()

	matched := make(map[int]bool, len(live))
	for _, ref := range live {
		li, err := g.LocalIndex(ref)
		if err != nil {
			return err
		}
		if li < len(matching) && matching[li] >= 0 {
			matched[li] = true
		}
	}

	if _, err := fmt.Fprintln(w, "digraph G {"); err != nil {
		return err
	}

	for _, ref := range live {
		if err := e.writeVertex(w, g, ref, labels, matched); err != nil {
			return err
		}
	}
	for _, ref := range live {
		if err := e.writeEdges(w, g, ref, matched); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, "}")

	return err
}

func (e *Emitter) writeVertex(w io.Writer, g *dgraph.Graph, ref dgraph.VertexRef, labels LabelSource, matched map[int]bool) error {
	li, err := g.LocalIndex(ref)
	if err != nil {
		return err
	}
	lund, err := g.PID(ref)
	if err != nil {
		return err
	}

	styleProps := e.style.VertexProps
	if matched[li] {
		styleProps = e.style.MatchedVertexProps
	}

	props := make(map[string]string, len(styleProps)+1)
	for k, v := range styleProps {
		props[k] = v
	}
	props["label"] = labels.Label(lund)

	_, err = fmt.Fprintf(w, "  %d %s;\n", li, attrBlock(props))

	return err
}

func (e *Emitter) writeEdges(w io.Writer, g *dgraph.Graph, ref dgraph.VertexRef, matched map[int]bool) error {
	li, err := g.LocalIndex(ref)
	if err != nil {
		return err
	}

	children, err := g.OutEdges(ref)
	if err != nil {
		return err
	}

	for _, child := range children {
		childLi, err := g.LocalIndex(child)
		if err != nil {
			return err
		}

		props := e.style.EdgeProps
		if matched[li] && matched[childLi] {
			props = e.style.MatchedEdgeProps
		}

		if _, err := fmt.Fprintf(w, "  %d -> %d %s;\n", li, childLi, attrBlock(props)); err != nil {
			return err
		}
	}

	return nil
}

// attrBlock renders a property map as a deterministic "[key="value",...]"
// graphviz attribute block. A "label" key, if present, is always emitted
// first; the remaining keys follow in sorted order.
func attrBlock(props map[string]string) string {
	keys := make([]string, 0, len(props))
	for k := range props {
		if k != "label" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	if _, ok := props["label"]; ok {
		keys = append([]string{"label"}, keys...)
	}

	s := "["
	for i, k := range keys {
		if i > 0 {
			s += ","
		}
		s += k + "=" + strconv.Quote(props[k])
	}
	s += "]"

	return s
}

func formatLund(lund int64) string {
	return strconv.FormatInt(lund, 10)
}
