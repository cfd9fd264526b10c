package domain

import (
	"strings"

	m "allurelint.dev/pkg/allurelint/internal/model"
	"allurelint.dev/pkg/allurelint/internal/pyast"
)

const (
	testPrefix   = "test_"
	sourceSuffix = ".py"
)

// IsTestFile reports whether path names a pytest module (test_*.py).
func IsTestFile(path m.Path) bool {
	name := path.Base()
	return strings.HasPrefix(name, testPrefix) && strings.HasSuffix(name, sourceSuffix)
}

// IsTestFunction reports whether n is a test function pytest would collect
// by name: a def or async def named test_* that sits at module level or
// directly in a class body. Closures named test_* are excluded.
func IsTestFunction(n pyast.Node, ancestors *pyast.Ancestors) bool {
	fn, ok := n.(*pyast.FunctionDef)
	if !ok || !strings.HasPrefix(fn.Name, testPrefix) {
		return false
	}

	switch ancestors.Parent().(type) {
	case nil, *pyast.Module, *pyast.ClassDef:
		return true
	}

	return false
}
