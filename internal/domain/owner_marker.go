package domain

import (
	"fmt"
	"strings"

	m "allurelint.dev/pkg/allurelint/internal/model"
	"allurelint.dev/pkg/allurelint/internal/pyast"
)

const (
	labelAttr     = "label"
	ownerLabelKey = "owner"
	ownerFunc     = "owner"
)

// ownerKeywords are the keyword arguments that may carry the owner value.
var ownerKeywords = map[string]struct{}{"value": {}, "owner": {}}

// OwnerMatch is the decorator call recognized as the owner marker. Value is
// empty when the call matched but carried no string literal value.
type OwnerMatch struct {
	Call  *pyast.Call
	Value string
}

// MatchOwnerMarker returns the first decorator of fn that is either
// @allure.label("owner", ...) or @owner(...). Label calls for other keys are
// skipped. It returns nil when no decorator matches.
func MatchOwnerMarker(fn *pyast.FunctionDef) *OwnerMatch {
	for _, dec := range fn.Decorators {
		call, ok := dec.(*pyast.Call)
		if !ok {
			continue
		}

		switch shape := pyast.ShapeOf(call).(type) {
		case pyast.AttributeCall:
			if shape.Namespace != allureNamespace || shape.Attr != labelAttr {
				continue
			}

			if len(call.Args) == 0 {
				continue
			}

			if key, ok := pyast.StringValue(call.Args[0]); !ok || key != ownerLabelKey {
				continue
			}

			return &OwnerMatch{Call: call, Value: ownerValue(call, 1)}
		case pyast.NameCall:
			if shape.Name != ownerFunc {
				continue
			}

			return &OwnerMatch{Call: call, Value: ownerValue(call, 0)}
		}
	}

	return nil
}

// ownerValue extracts the owner from the positional argument at index, or
// from a value=/owner= keyword when that argument is not a string literal.
func ownerValue(call *pyast.Call, index int) string {
	if index < len(call.Args) {
		if v, ok := pyast.StringValue(call.Args[index]); ok {
			return v
		}
	}

	for _, kw := range call.Keywords {
		if _, ok := ownerKeywords[kw.Arg]; !ok {
			continue
		}

		if v, ok := pyast.StringValue(kw.Value); ok {
			return v
		}
	}

	return ""
}

// CheckOwnerMarker validates the owner marker of a test function. It returns
// nil when an owner label with a non-blank value is present.
func CheckOwnerMarker(path m.Path, fn *pyast.FunctionDef) *m.Diagnostic {
	match := MatchOwnerMarker(fn)
	if match == nil {
		return newDiagnostic(path, fn.Pos, m.CodeOwnerMissing,
			fmt.Sprintf("missing @allure.label(\"owner\", ...) on test '%s'", fn.Name))
	}

	if strings.TrimSpace(match.Value) == "" {
		return newDiagnostic(path, positionOr(match.Call.Pos, fn.Pos), m.CodeOwnerEmpty,
			fmt.Sprintf("empty or invalid value for @allure.label(\"owner\", ...) on test '%s'", fn.Name))
	}

	return nil
}
