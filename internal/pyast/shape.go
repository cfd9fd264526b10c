package pyast

// CallShape classifies the callee of a Call.
type CallShape interface {
	callShape()
}

// AttributeCall is a call of the form namespace.attr(...) where namespace is
// a bare name.
type AttributeCall struct {
	Namespace string
	Attr      string
}

// NameCall is a call of the form name(...).
type NameCall struct {
	Name string
}

// OtherCall is any callee the checker does not recognize, for example
// a.b.c(...), f()(...) or x[0](...).
type OtherCall struct{}

func (AttributeCall) callShape() {}
func (NameCall) callShape()      {}
func (OtherCall) callShape()     {}

// ShapeOf returns the shape of the call's callee.
func ShapeOf(call *Call) CallShape {
	switch fn := call.Func.(type) {
	case *Name:
		return NameCall{Name: fn.ID}
	case *Attribute:
		if ns, ok := fn.Value.(*Name); ok {
			return AttributeCall{Namespace: ns.ID, Attr: fn.Attr}
		}
	}

	return OtherCall{}
}
