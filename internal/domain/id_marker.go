package domain

import (
	"fmt"

	m "allurelint.dev/pkg/allurelint/internal/model"
	"allurelint.dev/pkg/allurelint/internal/pyast"
)

const (
	allureNamespace = "allure"
	idAttr          = "id"
)

// MatchIDMarkers returns the @allure.id(...) decorator calls of fn in source
// order. Aliases and other spellings are not recognized.
func MatchIDMarkers(fn *pyast.FunctionDef) []*pyast.Call {
	var calls []*pyast.Call

	for _, dec := range fn.Decorators {
		call, ok := dec.(*pyast.Call)
		if !ok {
			continue
		}

		if shape, ok := pyast.ShapeOf(call).(pyast.AttributeCall); ok &&
			shape.Namespace == allureNamespace && shape.Attr == idAttr {
			calls = append(calls, call)
		}
	}

	return calls
}

// CheckIDMarker validates the identifier marker of a test function. It
// returns nil when the marker is present exactly once and well formed.
func CheckIDMarker(path m.Path, fn *pyast.FunctionDef) *m.Diagnostic {
	calls := MatchIDMarkers(fn)

	switch {
	case len(calls) == 0:
		return newDiagnostic(path, fn.Pos, m.CodeIDMissing,
			fmt.Sprintf("missing @allure.id on test '%s'", fn.Name))
	case len(calls) > 1:
		return newDiagnostic(path, positionOr(calls[1].Pos, fn.Pos), m.CodeIDMultiple,
			"a test function must have exactly one @allure.id")
	}

	call := calls[0]

	if len(call.Args) != 1 {
		return newDiagnostic(path, call.Pos, m.CodeIDArgCount,
			"allure.id must take exactly one positional argument")
	}

	if len(call.Keywords) != 0 {
		return newDiagnostic(path, call.Pos, m.CodeIDKeywords,
			"allure.id must not take keyword arguments")
	}

	value, ok := pyast.StringValue(call.Args[0])
	if !ok {
		return newDiagnostic(path, call.Pos, m.CodeIDLiteral,
			"argument of allure.id must be a digit string")
	}

	if value == "0" || !isDigits(value) {
		return newDiagnostic(path, call.Pos, m.CodeIDLiteral,
			"allure.id string must contain only digits and be greater than 0")
	}

	if len(value) > 1 && value[0] == '0' {
		return newDiagnostic(path, call.Pos, m.CodeIDLiteral,
			"allure.id string must not have leading zeros")
	}

	return nil
}

// isDigits reports whether s is a non-empty run of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

func newDiagnostic(path m.Path, pos pyast.Pos, code m.Code, msg string) *m.Diagnostic {
	return &m.Diagnostic{
		Path:    path,
		Line:    pos.Line,
		Column:  pos.Column,
		Code:    code,
		Message: msg,
	}
}

func positionOr(pos, fallback pyast.Pos) pyast.Pos {
	if pos.IsValid() {
		return pos
	}

	return fallback
}
