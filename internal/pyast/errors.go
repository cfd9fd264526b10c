package pyast

import "fmt"

// SyntaxError reports source that does not parse.
type SyntaxError struct {
	// Line is 1-based; zero when the parser could not locate the error.
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	}

	return e.Msg
}
