package production

import (
	"bytes"
	"encoding/json"
	"fmt"

	rc "github.com/comalice/rivercrossing"
	"github.com/comalice/rivercrossing/internal/core"
)

// DefaultVisualizer renders state graphs as Graphviz DOT and reports as
// JSON.
type DefaultVisualizer struct{}

// ExportDOT generates Graphviz DOT source for g. States on path are filled
// and the moves between consecutive path states are drawn bold.
func (v *DefaultVisualizer) ExportDOT(g rc.StateGraph, path []rc.State) string {
	var buf bytes.Buffer
	buf.WriteString(`digraph RiverCrossing {
  rankdir=LR;
  node [shape=box, fontsize=10, style=rounded];
  edge [fontsize=9];
`)

	ids := make(map[rc.State]string, len(g.States))
	for i, s := range g.States {
		ids[s] = fmt.Sprintf("s%d", i)
	}

	onPath := make(map[rc.State]bool, len(path))
	pathEdge := make(map[[2]rc.State]bool, len(path))
	for i, s := range path {
		onPath[s] = true
		if i > 0 {
			pathEdge[[2]rc.State{path[i-1], s}] = true
		}
	}

	for _, s := range g.States {
		style := ""
		switch {
		case s == g.Root:
			style = ` style="rounded,filled" fillcolor=orange`
		case len(path) > 0 && s == path[len(path)-1]:
			style = ` style="rounded,filled" fillcolor=gold`
		case onPath[s]:
			style = ` style="rounded,filled" fillcolor=lightgreen`
		}
		fmt.Fprintf(&buf, "  %s [label=%q%s];\n", ids[s], nodeLabel(s), style)
	}

	for _, e := range g.Edges {
		style := ""
		if pathEdge[[2]rc.State{e.From, e.To}] {
			style = " penwidth=2 color=darkgreen"
		}
		fmt.Fprintf(&buf, "  %s -> %s [label=%q%s];\n", ids[e.From], ids[e.To], edgeLabel(e.Move), style)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// ExportJSON serializes a report in its document form.
func (v *DefaultVisualizer) ExportJSON(report core.Report) ([]byte, error) {
	return json.MarshalIndent(NewReportDocument(report), "", "  ")
}

func nodeLabel(s rc.State) string {
	return fmt.Sprintf("L: %s\nR: %s\nboat@%s: %s", s.Left, s.Right, s.Boat, s.Passengers)
}

func edgeLabel(m rc.Move) string {
	if m.Kind == rc.Cross {
		return "cross"
	}
	return fmt.Sprintf("%s %s", m.Kind, m.Character)
}
