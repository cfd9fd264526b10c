package adapter

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	m "allurelint.dev/pkg/allurelint/internal/model"
	"allurelint.dev/pkg/allurelint/internal/pyast"
)

// PythonFileAdapter encapsulates Python parsing so the domain layer can focus
// on annotation rules while delegating grammar details to an infrastructure
// component.
type PythonFileAdapter interface {
	// Parse builds a syntax tree for src. Source that does not parse is
	// reported as a *pyast.SyntaxError.
	Parse(ctx context.Context, filename m.Path, src []byte) (*pyast.Module, error)
}

// LocalPythonFileAdapter provides a concrete PythonFileAdapter backed by
// tree-sitter.
type LocalPythonFileAdapter struct{}

// NewLocalPythonFileAdapter constructs a LocalPythonFileAdapter.
func NewLocalPythonFileAdapter() *LocalPythonFileAdapter {
	return &LocalPythonFileAdapter{}
}

// Parse runs tree-sitter over src and lowers the concrete syntax tree.
// A new tree-sitter parser is created per call.
func (a *LocalPythonFileAdapter) Parse(ctx context.Context, filename m.Path, src []byte) (*pyast.Module, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse %s: %w", filename, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, &pyast.SyntaxError{Msg: "parser returned no syntax tree"}
	}

	if root.HasError() {
		return nil, locateSyntaxError(root)
	}

	l := lowerer{src: src}

	return &pyast.Module{Body: l.children(root)}, nil
}

// locateSyntaxError returns the first ERROR or MISSING node in pre-order.
func locateSyntaxError(root *sitter.Node) *pyast.SyntaxError {
	stack := []*sitter.Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if n.IsMissing() {
			return &pyast.SyntaxError{
				Line: int(n.StartPoint().Row) + 1,
				Msg:  fmt.Sprintf("expected %q", n.Type()),
			}
		}

		if n.Type() == "ERROR" {
			return &pyast.SyntaxError{Line: int(n.StartPoint().Row) + 1, Msg: "invalid syntax"}
		}

		for i := int(n.ChildCount()) - 1; i >= 0; i-- {
			child := n.Child(i)
			if child == nil || !(child.HasError() || child.IsMissing()) {
				continue
			}

			stack = append(stack, child)
		}
	}

	return &pyast.SyntaxError{Msg: "invalid syntax"}
}

// lowerer converts tree-sitter nodes into pyast nodes. Blocks are flattened
// into their owner and decorated definitions carry their decorators, so the
// parent of every definition is the same as in Python's own ast module.
type lowerer struct {
	src []byte
}

func (l lowerer) text(n *sitter.Node) string {
	if n == nil {
		return ""
	}

	return n.Content(l.src)
}

func pos(n *sitter.Node) pyast.Pos {
	p := n.StartPoint()

	return pyast.Pos{Line: int(p.Row) + 1, Column: int(p.Column)}
}

// children lowers every named child of n.
func (l lowerer) children(n *sitter.Node) []pyast.Node {
	if n == nil {
		return nil
	}

	var out []pyast.Node

	for i := 0; i < int(n.NamedChildCount()); i++ {
		out = append(out, l.lower(n.NamedChild(i))...)
	}

	return out
}

// lower converts a statement-level node. It returns zero nodes for comments
// and several for a flattened block.
func (l lowerer) lower(n *sitter.Node) []pyast.Node {
	if n == nil {
		return nil
	}

	switch n.Type() {
	case "comment":
		return nil
	case "block":
		return l.children(n)
	case "decorated_definition":
		return l.decorated(n)
	case "function_definition":
		return []pyast.Node{l.function(n, nil)}
	case "class_definition":
		return []pyast.Node{l.class(n, nil)}
	}

	return []pyast.Node{l.expr(n)}
}

func (l lowerer) decorated(n *sitter.Node) []pyast.Node {
	var decorators []pyast.Node

	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child.Type() != "decorator" {
			continue
		}

		if expr := firstNamed(child); expr != nil {
			decorators = append(decorators, l.expr(expr))
		}
	}

	def := n.ChildByFieldName("definition")
	if def == nil {
		return decorators
	}

	switch def.Type() {
	case "function_definition":
		return []pyast.Node{l.function(def, decorators)}
	case "class_definition":
		return []pyast.Node{l.class(def, decorators)}
	}

	return append(decorators, l.lower(def)...)
}

func (l lowerer) function(n *sitter.Node, decorators []pyast.Node) *pyast.FunctionDef {
	fn := &pyast.FunctionDef{
		Pos:        pos(n),
		Name:       l.text(n.ChildByFieldName("name")),
		Decorators: decorators,
	}

	if n.ChildCount() > 0 && n.Child(0).Type() == "async" {
		fn.Async = true
	}

	for _, field := range []string{"type_parameters", "parameters", "return_type"} {
		if child := n.ChildByFieldName(field); child != nil {
			fn.Params = append(fn.Params, l.lower(child)...)
		}
	}

	fn.Body = l.lower(n.ChildByFieldName("body"))

	return fn
}

func (l lowerer) class(n *sitter.Node, decorators []pyast.Node) *pyast.ClassDef {
	class := &pyast.ClassDef{
		Pos:        pos(n),
		Name:       l.text(n.ChildByFieldName("name")),
		Decorators: decorators,
	}

	if bases := n.ChildByFieldName("superclasses"); bases != nil {
		class.Bases = l.children(bases)
	}

	class.Body = l.lower(n.ChildByFieldName("body"))

	return class
}

// expr converts an expression node.
func (l lowerer) expr(n *sitter.Node) pyast.Node {
	switch n.Type() {
	case "identifier":
		return &pyast.Name{Pos: pos(n), ID: l.text(n)}
	case "attribute":
		return &pyast.Attribute{
			Pos:   pos(n),
			Value: l.optionalExpr(n.ChildByFieldName("object")),
			Attr:  l.text(n.ChildByFieldName("attribute")),
		}
	case "call":
		return l.call(n)
	case "string":
		return l.str(n)
	case "concatenated_string":
		return l.concatenated(n)
	case "integer", "float":
		return &pyast.Constant{Pos: pos(n), Value: pyast.NumberLiteral(l.text(n))}
	case "true":
		return &pyast.Constant{Pos: pos(n), Value: pyast.BoolLiteral(true)}
	case "false":
		return &pyast.Constant{Pos: pos(n), Value: pyast.BoolLiteral(false)}
	case "none":
		return &pyast.Constant{Pos: pos(n), Value: pyast.NoneLiteral{}}
	case "ellipsis":
		return &pyast.Constant{Pos: pos(n), Value: pyast.EllipsisLiteral{}}
	case "parenthesized_expression":
		if inner := firstNamed(n); inner != nil && namedCount(n) == 1 {
			return l.expr(inner)
		}
	}

	return &pyast.Other{Pos: pos(n), Kind: n.Type(), Nodes: l.children(n)}
}

func (l lowerer) optionalExpr(n *sitter.Node) pyast.Node {
	if n == nil {
		return nil
	}

	return l.expr(n)
}

func (l lowerer) call(n *sitter.Node) *pyast.Call {
	call := &pyast.Call{
		Pos:  pos(n),
		Func: l.optionalExpr(n.ChildByFieldName("function")),
	}

	args := n.ChildByFieldName("arguments")
	if args == nil {
		return call
	}

	if args.Type() != "argument_list" {
		// f(x for x in y): the generator is the only positional argument.
		call.Args = append(call.Args, l.expr(args))
		return call
	}

	for i := 0; i < int(args.NamedChildCount()); i++ {
		arg := args.NamedChild(i)

		switch arg.Type() {
		case "comment":
		case "keyword_argument":
			call.Keywords = append(call.Keywords, pyast.Keyword{
				Pos:   pos(arg),
				Arg:   l.text(arg.ChildByFieldName("name")),
				Value: l.optionalExpr(arg.ChildByFieldName("value")),
			})
		case "dictionary_splat":
			call.Keywords = append(call.Keywords, pyast.Keyword{
				Pos:   pos(arg),
				Value: l.optionalExpr(firstNamed(arg)),
			})
		case "list_splat":
			call.Args = append(call.Args, &pyast.Starred{
				Pos:   pos(arg),
				Value: l.optionalExpr(firstNamed(arg)),
			})
		default:
			call.Args = append(call.Args, l.expr(arg))
		}
	}

	return call
}

func (l lowerer) str(n *sitter.Node) pyast.Node {
	if lit, ok := decodeStringLiteral(l.text(n)); ok {
		return &pyast.Constant{Pos: pos(n), Value: lit}
	}

	return &pyast.Other{Pos: pos(n), Kind: "joined_str", Nodes: l.children(n)}
}

// concatenated folds adjacent literals ("1" "2") into one constant, as the
// Python compiler does. Any f-string part makes the whole a joined string.
func (l lowerer) concatenated(n *sitter.Node) pyast.Node {
	var (
		text    string
		isBytes bool
	)

	parts := 0

	for i := 0; i < int(n.NamedChildCount()); i++ {
		part := n.NamedChild(i)
		if part.Type() != "string" {
			continue
		}

		lit, ok := decodeStringLiteral(l.text(part))
		if !ok {
			return &pyast.Other{Pos: pos(n), Kind: "joined_str", Nodes: l.children(n)}
		}

		switch v := lit.(type) {
		case pyast.StringLiteral:
			if parts > 0 && isBytes {
				return &pyast.Other{Pos: pos(n), Kind: n.Type(), Nodes: l.children(n)}
			}

			text += string(v)
		case pyast.BytesLiteral:
			if parts > 0 && !isBytes {
				return &pyast.Other{Pos: pos(n), Kind: n.Type(), Nodes: l.children(n)}
			}

			isBytes = true
			text += string(v)
		}

		parts++
	}

	if isBytes {
		return &pyast.Constant{Pos: pos(n), Value: pyast.BytesLiteral(text)}
	}

	return &pyast.Constant{Pos: pos(n), Value: pyast.StringLiteral(text)}
}

// firstNamed returns the first named child that is not a comment.
func firstNamed(n *sitter.Node) *sitter.Node {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if child := n.NamedChild(i); child.Type() != "comment" {
			return child
		}
	}

	return nil
}

func namedCount(n *sitter.Node) int {
	count := 0

	for i := 0; i < int(n.NamedChildCount()); i++ {
		if n.NamedChild(i).Type() != "comment" {
			count++
		}
	}

	return count
}
