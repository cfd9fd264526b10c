package pyast

import "iter"

// Ancestors is an immutable chain of enclosing nodes. The nil *Ancestors is
// the empty chain. Chains share their tails, so extending one never changes
// another.
type Ancestors struct {
	up    *Ancestors
	node  Node
	depth int
}

// Push returns a chain with n appended as the innermost ancestor.
func (a *Ancestors) Push(n Node) *Ancestors {
	return &Ancestors{up: a, node: n, depth: a.Len() + 1}
}

// Len returns the number of ancestors.
func (a *Ancestors) Len() int {
	if a == nil {
		return 0
	}

	return a.depth
}

// Parent returns the immediate parent, or nil for the empty chain.
func (a *Ancestors) Parent() Node {
	if a == nil {
		return nil
	}

	return a.node
}

// Slice returns a fresh root-to-parent copy of the chain.
func (a *Ancestors) Slice() []Node {
	out := make([]Node, a.Len())
	for cur := a; cur != nil; cur = cur.up {
		out[cur.depth-1] = cur.node
	}

	return out
}

type frame struct {
	node      Node
	ancestors *Ancestors
}

// Walk yields every node of the tree rooted at root in pre-order, each paired
// with its ancestor chain.
func Walk(root Node) iter.Seq2[Node, *Ancestors] {
	return func(yield func(Node, *Ancestors) bool) {
		if root == nil {
			return
		}

		stack := []frame{{node: root}}
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(top.node, top.ancestors) {
				return
			}

			children := top.node.Children()
			if len(children) == 0 {
				continue
			}

			inner := top.ancestors.Push(top.node)
			for i := len(children) - 1; i >= 0; i-- {
				if children[i] == nil {
					continue
				}

				stack = append(stack, frame{node: children[i], ancestors: inner})
			}
		}
	}
}
