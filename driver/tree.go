package driver

import (
	"fmt"
	"io"
)

// Node is one parse-tree node: a terminal leaf carries Text, a
// production node carries Children built by reducing its RHS.
type Node struct {
	Name     string
	Text     string
	Row, Col int
	Children []*Node
}

// PrintTree renders node as an ASCII box-drawing tree, ported
// line-for-line from the teacher's driver/parser.go printer.
func PrintTree(w io.Writer, node *Node) {
	printTree(w, node, "", "")
}

func printTree(w io.Writer, node *Node, ruledLine string, childRuledLinePrefix string) {
	if node == nil {
		return
	}

	if node.Text != "" {
		fmt.Fprintf(w, "%v%v %#v\n", ruledLine, node.Name, node.Text)
	} else {
		fmt.Fprintf(w, "%v%v\n", ruledLine, node.Name)
	}

	num := len(node.Children)
	for i, child := range node.Children {
		var line string
		if num > 1 && i < num-1 {
			line = "├─ "
		} else {
			line = "└─ "
		}

		var prefix string
		if i >= num-1 {
			prefix = "   "
		} else {
			prefix = "│  "
		}

		printTree(w, child, childRuledLinePrefix+line, childRuledLinePrefix+prefix)
	}
}
