package aggregate

import (
	"strconv"
	"strings"

	"github.com/netra-cyber/netra-portal/models"
)

const caseNodePrefix = "CASE_"

var groupColors = map[string]string{
	"case":      "#4CAF50",
	"mobile":    "#FF9800",
	"financial": "#f44336",
	"search":    "#6c757d",
}

// NodeView is a graph node ready to display.
type NodeView struct {
	ID    string
	Label string
	Group string
	Color string
	Link  string
}

// EdgeView is a graph edge with its endpoints resolved to labels.
type EdgeView struct {
	From  string
	To    string
	Label string
}

// GraphView is the rendered shape of a network graph.
type GraphView struct {
	Identifier string
	Empty      bool
	Nodes      []NodeView
	Edges      []EdgeView
}

// BuildGraphView resolves nodes and edges for display. Case nodes link to their case page.
func BuildGraphView(identifier string, g models.NetworkGraph) GraphView {
	view := GraphView{Identifier: identifier}
	if len(g.Nodes) == 0 {
		view.Empty = true
		return view
	}

	labels := make(map[string]string, len(g.Nodes))
	for _, n := range g.Nodes {
		labels[n.ID] = n.Label
		color, ok := groupColors[n.Group]
		if !ok {
			color = groupColors["search"]
		}
		view.Nodes = append(view.Nodes, NodeView{
			ID:    n.ID,
			Label: n.Label,
			Group: n.Group,
			Color: color,
			Link:  NodeLink(n.ID),
		})
	}

	for _, e := range g.Edges {
		view.Edges = append(view.Edges, EdgeView{
			From:  labelOr(labels, e.From),
			To:    labelOr(labels, e.To),
			Label: e.Label,
		})
	}
	return view
}

// NodeLink returns the case page for a CASE_<id> node and "" for anything else.
func NodeLink(id string) string {
	if !strings.HasPrefix(id, caseNodePrefix) {
		return ""
	}
	n, err := strconv.Atoi(strings.TrimPrefix(id, caseNodePrefix))
	if err != nil || n <= 0 {
		return ""
	}
	return CasePath(n)
}

func labelOr(labels map[string]string, id string) string {
	if l, ok := labels[id]; ok && l != "" {
		return l
	}
	return id
}
