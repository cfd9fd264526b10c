package pyast

// Literal is the typed payload of a Constant.
type Literal interface {
	literal()
}

// StringLiteral is a str constant with escapes already decoded.
type StringLiteral string

// BytesLiteral is a bytes constant.
type BytesLiteral string

// NumberLiteral is an int, float or complex constant, kept as source text.
type NumberLiteral string

// BoolLiteral is True or False.
type BoolLiteral bool

// NoneLiteral is None.
type NoneLiteral struct{}

// EllipsisLiteral is the ... constant.
type EllipsisLiteral struct{}

func (StringLiteral) literal()   {}
func (BytesLiteral) literal()    {}
func (NumberLiteral) literal()   {}
func (BoolLiteral) literal()     {}
func (NoneLiteral) literal()     {}
func (EllipsisLiteral) literal() {}

// StringValue returns the decoded text when n is a str constant.
func StringValue(n Node) (string, bool) {
	c, ok := n.(*Constant)
	if !ok {
		return "", false
	}

	s, ok := c.Value.(StringLiteral)

	return string(s), ok
}
