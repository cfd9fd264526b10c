// Package pyast models the subset of the Python syntax tree the checker
// reasons about. The set of node types is closed: anything the checker has
// no rule for is kept as an Other node so traversal still sees it.
package pyast

// Pos is a source position: 1-based line, 0-based byte column.
type Pos struct {
	Line   int
	Column int
}

// IsValid reports whether the position points into a file.
func (p Pos) IsValid() bool {
	return p.Line > 0
}

// Node is implemented by every syntax tree node.
type Node interface {
	Position() Pos
	// Children returns the direct children in source order.
	Children() []Node
	node()
}

// Module is the root of a parsed file.
type Module struct {
	Body []Node
}

// ClassDef is a class statement. Bases holds the lowered superclass list.
type ClassDef struct {
	Pos        Pos
	Name       string
	Decorators []Node
	Bases      []Node
	Body       []Node
}

// FunctionDef is a def or async def statement. Pos is the position of the
// def (or async) keyword, not of the first decorator.
type FunctionDef struct {
	Pos        Pos
	Name       string
	Async      bool
	Decorators []Node
	// Params holds the lowered parameter list and return annotation.
	Params []Node
	Body   []Node
}

// Call is a call expression.
type Call struct {
	Pos      Pos
	Func     Node
	Args     []Node
	Keywords []Keyword
}

// Keyword is a name=value call argument. Arg is empty for **mapping.
type Keyword struct {
	Pos   Pos
	Arg   string
	Value Node
}

// Attribute is a value.attr expression.
type Attribute struct {
	Pos   Pos
	Value Node
	Attr  string
}

// Name is a bare identifier.
type Name struct {
	Pos Pos
	ID  string
}

// Constant is a literal whose value is known without execution.
type Constant struct {
	Pos   Pos
	Value Literal
}

// Starred is a *iterable call argument.
type Starred struct {
	Pos   Pos
	Value Node
}

// Other is any construct without a dedicated type. Kind is the grammar name.
type Other struct {
	Pos   Pos
	Kind  string
	Nodes []Node
}

func (*Module) Position() Pos        { return Pos{Line: 1} }
func (n *ClassDef) Position() Pos    { return n.Pos }
func (n *FunctionDef) Position() Pos { return n.Pos }
func (n *Call) Position() Pos        { return n.Pos }
func (n *Keyword) Position() Pos     { return n.Pos }
func (n *Attribute) Position() Pos   { return n.Pos }
func (n *Name) Position() Pos        { return n.Pos }
func (n *Constant) Position() Pos    { return n.Pos }
func (n *Starred) Position() Pos     { return n.Pos }
func (n *Other) Position() Pos       { return n.Pos }

func (n *Module) Children() []Node { return n.Body }

func (n *ClassDef) Children() []Node {
	return concat(n.Decorators, n.Bases, n.Body)
}

func (n *FunctionDef) Children() []Node {
	return concat(n.Decorators, n.Params, n.Body)
}

func (n *Call) Children() []Node {
	children := make([]Node, 0, 1+len(n.Args)+len(n.Keywords))
	if n.Func != nil {
		children = append(children, n.Func)
	}

	children = append(children, n.Args...)
	for i := range n.Keywords {
		children = append(children, &n.Keywords[i])
	}

	return children
}

func (n *Keyword) Children() []Node   { return single(n.Value) }
func (n *Attribute) Children() []Node { return single(n.Value) }
func (*Name) Children() []Node        { return nil }
func (*Constant) Children() []Node    { return nil }
func (n *Starred) Children() []Node   { return single(n.Value) }
func (n *Other) Children() []Node     { return n.Nodes }

func (*Module) node()      {}
func (*ClassDef) node()    {}
func (*FunctionDef) node() {}
func (*Call) node()        {}
func (*Keyword) node()     {}
func (*Attribute) node()   {}
func (*Name) node()        {}
func (*Constant) node()    {}
func (*Starred) node()     {}
func (*Other) node()       {}

func concat(groups ...[]Node) []Node {
	size := 0
	for _, g := range groups {
		size += len(g)
	}

	out := make([]Node, 0, size)
	for _, g := range groups {
		out = append(out, g...)
	}

	return out
}

func single(n Node) []Node {
	if n == nil {
		return nil
	}

	return []Node{n}
}
