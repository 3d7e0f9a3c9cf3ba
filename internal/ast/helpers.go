package ast

import "reflect"

// childList collects the given nodes in order, skipping absent optional
// children. A typed-nil pointer wrapped in the Node interface counts as
// absent, so callers can pass optional struct fields directly.
func childList(nodes ...Node) []Node {
	children := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if isNilNode(n) {
			continue
		}
		children = append(children, n)
	}
	return children
}

func isNilNode(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// Walk visits node and every structural descendant in depth-first order.
// The visitor returns false to stop descending into a subtree.
func Walk(node Node, visit func(Node) bool) {
	if isNilNode(node) {
		return
	}
	if !visit(node) {
		return
	}
	for _, child := range node.Children() {
		Walk(child, visit)
	}
}
