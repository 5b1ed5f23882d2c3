package vanco

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// responseNode is a generic XML tree node. The gateway's response shape is
// not fixed, so responses are decoded structurally and flattened afterwards.
type responseNode struct {
	XMLName xml.Name
	Text    string         `xml:",chardata"`
	Nodes   []responseNode `xml:",any"`
}

func (n *responseNode) isLeaf() bool {
	return len(n.Nodes) == 0
}

func (n *responseNode) tag() string {
	return strings.ToLower(n.XMLName.Local)
}

func (n *responseNode) text() string {
	return strings.TrimSpace(n.Text)
}

// parseResponse converts a raw response document into a flat mapping keyed
// by normalized field names: a top-level leaf keeps its own tag, a nested
// leaf gets "{parent}_{leaf}" with its wrapping container collapsed away.
// Structure deeper than that is not flattened further; the subtree is
// stored as a nested mapping under the composed key (protocol errors
// arrive this way, as Errors/Error/{ErrorCode,ErrorDescription}).
// Malformed input is a hard failure.
func parseResponse(body []byte) (map[string]any, error) {
	var root responseNode
	if err := xml.Unmarshal(body, &root); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	out := make(map[string]any)
	for _, child := range root.Nodes {
		if child.isLeaf() {
			out[child.tag()] = child.text()
			continue
		}
		for _, grand := range child.Nodes {
			flattenChild(out, child.tag(), grand)
		}
	}
	return out, nil
}

func flattenChild(out map[string]any, parentTag string, n responseNode) {
	if n.isLeaf() {
		out[parentTag+"_"+n.tag()] = n.text()
		return
	}

	if onlyLeaves(n.Nodes) {
		// A container of plain fields (e.g. ResponseVars) is transparent:
		// its fields flatten against the top-level parent.
		for _, inner := range n.Nodes {
			out[parentTag+"_"+inner.tag()] = inner.text()
		}
		return
	}

	out[parentTag+"_"+n.tag()] = subtreeMap(n)
}

func onlyLeaves(nodes []responseNode) bool {
	for _, n := range nodes {
		if !n.isLeaf() {
			return false
		}
	}
	return true
}

// subtreeMap converts a subtree into a nested mapping keyed by the
// original tag names, so callers address fields as Error.ErrorCode.
func subtreeMap(n responseNode) map[string]any {
	out := make(map[string]any, len(n.Nodes))
	for _, child := range n.Nodes {
		if child.isLeaf() {
			out[child.XMLName.Local] = child.text()
		} else {
			out[child.XMLName.Local] = subtreeMap(child)
		}
	}
	return out
}
