// Package outline assembles classified headings into document outlines.
//
// Two shapes are produced from the same ordered heading list: a flat
// outline ([Flat]) with one entry per heading, and a nested tree
// ([Build]) derived purely from the heading sequence and levels, never
// from spatial containment.
package outline

import (
	"fmt"
	"strings"

	"github.com/tsawler/outliner/model"
)

// Node is an entry in the nested outline tree
type Node struct {
	// Level is the heading level in output form ("H1".."H3")
	Level string `json:"level"`

	// Text is the heading text
	Text string `json:"text"`

	// Page is the zero-based page index
	Page int `json:"page"`

	// Children are nested entries in arrival order
	Children []*Node `json:"outline"`
}

// Root is the synthetic top of an outline tree
type Root struct {
	// Title is the document title
	Title string `json:"title"`

	// Children are the top-level outline entries
	Children []*Node `json:"outline"`
}

// otherDepth is the stack depth assigned to headings without one of the
// H1-H3 levels; they nest below everything else
const otherDepth = 4

// levelDepth maps a heading level to its integer depth in the tree.
// The synthetic root sits at depth 0.
func levelDepth(level model.HeadingLevel) int {
	switch level {
	case model.LevelH1, model.LevelH2, model.LevelH3:
		return int(level)
	default:
		return otherDepth
	}
}

// stackEntry pairs a node with its depth. Depth is construction
// bookkeeping only and never appears in the output shape.
type stackEntry struct {
	node  *Node
	depth int
}

// Build converts the flat, ordered heading list into a nested tree under
// a synthetic root holding the title.
//
// Headings are processed in document order with an explicit node stack:
// a heading whose text repeats the immediately preceding accepted
// heading is skipped (merge artifacts can surface as consecutive
// identical headings); otherwise the stack is popped while its top is at
// the same or a deeper level, and the heading is attached to the
// remaining top. Siblings therefore stay siblings and deeper headings
// nest under the nearest shallower one.
//
// Top-level entries whose text is blank or equals the title are dropped
// from the result, since the title already heads the output.
func Build(title string, headings []model.ClassifiedHeading) *Root {
	root := &Root{
		Title:    title,
		Children: make([]*Node, 0),
	}

	// Sentinel root entry at depth 0; nothing pops it.
	stack := []stackEntry{{node: nil, depth: 0}}
	lastText := ""
	haveLast := false

	for _, heading := range headings {
		if haveLast && heading.Text == lastText {
			continue
		}

		depth := levelDepth(heading.Level)
		for len(stack) > 1 && stack[len(stack)-1].depth >= depth {
			stack = stack[:len(stack)-1]
		}

		node := &Node{
			Level:    fmt.Sprintf("H%d", depth),
			Text:     heading.Text,
			Page:     heading.Page,
			Children: make([]*Node, 0),
		}

		parent := stack[len(stack)-1]
		if parent.node == nil {
			root.Children = append(root.Children, node)
		} else {
			parent.node.Children = append(parent.node.Children, node)
		}
		stack = append(stack, stackEntry{node: node, depth: depth})

		lastText = heading.Text
		haveLast = true
	}

	root.Children = filterTopLevel(root.Children, title)
	return root
}

// filterTopLevel drops blank entries and entries repeating the document
// title from the top level of the outline
func filterTopLevel(nodes []*Node, title string) []*Node {
	filtered := make([]*Node, 0, len(nodes))
	for _, n := range nodes {
		if strings.TrimSpace(n.Text) == "" || n.Text == title {
			continue
		}
		filtered = append(filtered, n)
	}
	return filtered
}
