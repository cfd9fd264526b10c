package adapter

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"allurelint.dev/pkg/allurelint/internal/pyast"
)

func parseSource(t *testing.T, src string) *pyast.Module {
	t.Helper()

	mod, err := NewLocalPythonFileAdapter().Parse(context.Background(), "test_sample.py", []byte(src))
	require.NoError(t, err)
	require.NotNil(t, mod)

	return mod
}

func functionsByName(mod *pyast.Module) map[string]*pyast.FunctionDef {
	out := map[string]*pyast.FunctionDef{}

	for n := range pyast.Walk(mod) {
		if fn, ok := n.(*pyast.FunctionDef); ok {
			out[fn.Name] = fn
		}
	}

	return out
}

func TestLocalPythonFileAdapter_Parse_DecoratedFunction(t *testing.T) {
	src := `import allure


@allure.id("12")
@allure.label("owner", "bob")
def test_login():
    assert True
`
	mod := parseSource(t, src)

	fn := functionsByName(mod)["test_login"]
	require.NotNil(t, fn)
	assert.Equal(t, pyast.Pos{Line: 6, Column: 0}, fn.Pos)
	assert.False(t, fn.Async)
	require.Len(t, fn.Decorators, 2)

	idCall, ok := fn.Decorators[0].(*pyast.Call)
	require.True(t, ok)
	assert.Equal(t, pyast.Pos{Line: 4, Column: 1}, idCall.Pos)
	assert.Equal(t, pyast.AttributeCall{Namespace: "allure", Attr: "id"}, pyast.ShapeOf(idCall))
	require.Len(t, idCall.Args, 1)

	value, ok := pyast.StringValue(idCall.Args[0])
	require.True(t, ok)
	assert.Equal(t, "12", value)

	labelCall, ok := fn.Decorators[1].(*pyast.Call)
	require.True(t, ok)
	require.Len(t, labelCall.Args, 2)

	owner, ok := pyast.StringValue(labelCall.Args[1])
	require.True(t, ok)
	assert.Equal(t, "bob", owner)
}

func TestLocalPythonFileAdapter_Parse_ParentsMatchPythonAST(t *testing.T) {
	src := `class TestSuite:
    @owner("alice")
    async def test_method(self):
        def test_helper():
            pass

if True:
    def test_conditional():
        pass
`
	mod := parseSource(t, src)

	parents := map[string]pyast.Node{}
	for n, anc := range pyast.Walk(mod) {
		if fn, ok := n.(*pyast.FunctionDef); ok {
			parents[fn.Name] = anc.Parent()
		}
	}

	class, ok := parents["test_method"].(*pyast.ClassDef)
	require.True(t, ok)
	assert.Equal(t, "TestSuite", class.Name)

	method, ok := parents["test_helper"].(*pyast.FunctionDef)
	require.True(t, ok)
	assert.Equal(t, "test_method", method.Name)
	assert.True(t, method.Async)
	assert.Equal(t, pyast.Pos{Line: 3, Column: 4}, method.Pos)

	other, ok := parents["test_conditional"].(*pyast.Other)
	require.True(t, ok)
	assert.Equal(t, "if_statement", other.Kind)
}

func TestLocalPythonFileAdapter_Parse_CallArguments(t *testing.T) {
	src := `@marker(1, *rest, key="v", **extra)
def test_args():
    pass
`
	fn := functionsByName(parseSource(t, src))["test_args"]
	require.NotNil(t, fn)
	require.Len(t, fn.Decorators, 1)

	call, ok := fn.Decorators[0].(*pyast.Call)
	require.True(t, ok)
	assert.Equal(t, pyast.NameCall{Name: "marker"}, pyast.ShapeOf(call))

	require.Len(t, call.Args, 2)
	num, ok := call.Args[0].(*pyast.Constant)
	require.True(t, ok)
	assert.Equal(t, pyast.NumberLiteral("1"), num.Value)
	assert.IsType(t, &pyast.Starred{}, call.Args[1])

	require.Len(t, call.Keywords, 2)
	assert.Equal(t, "key", call.Keywords[0].Arg)
	assert.Equal(t, "", call.Keywords[1].Arg)
}

func TestLocalPythonFileAdapter_Parse_Literals(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want pyast.Literal
	}{
		{"double quoted", `"12"`, pyast.StringLiteral("12")},
		{"single quoted", `'12'`, pyast.StringLiteral("12")},
		{"concatenated", `"1" "2"`, pyast.StringLiteral("12")},
		{"parenthesized", `("7")`, pyast.StringLiteral("7")},
		{"bytes", `b"12"`, pyast.BytesLiteral("12")},
		{"integer", `5`, pyast.NumberLiteral("5")},
		{"true", `True`, pyast.BoolLiteral(true)},
		{"none", `None`, pyast.NoneLiteral{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := "@allure.id(" + tt.expr + ")\ndef test_x():\n    pass\n"
			fn := functionsByName(parseSource(t, src))["test_x"]
			require.NotNil(t, fn)

			call := fn.Decorators[0].(*pyast.Call)
			require.Len(t, call.Args, 1)

			c, ok := call.Args[0].(*pyast.Constant)
			require.True(t, ok, "got %T", call.Args[0])
			assert.Equal(t, tt.want, c.Value)
		})
	}
}

func TestLocalPythonFileAdapter_Parse_NonConstants(t *testing.T) {
	for _, expr := range []string{`f"12"`, `-5`, `ID`, `str(5)`} {
		t.Run(expr, func(t *testing.T) {
			src := "@allure.id(" + expr + ")\ndef test_x():\n    pass\n"
			fn := functionsByName(parseSource(t, src))["test_x"]
			require.NotNil(t, fn)

			call := fn.Decorators[0].(*pyast.Call)
			require.Len(t, call.Args, 1)
			_, isConstant := call.Args[0].(*pyast.Constant)
			assert.False(t, isConstant, "got %T", call.Args[0])
		})
	}
}

func TestLocalPythonFileAdapter_Parse_SyntaxError(t *testing.T) {
	src := "def test_broken(:\n    pass\n"

	_, err := NewLocalPythonFileAdapter().Parse(context.Background(), "test_broken.py", []byte(src))
	require.Error(t, err)

	var syntaxErr *pyast.SyntaxError
	require.True(t, errors.As(err, &syntaxErr))
	assert.Equal(t, 1, syntaxErr.Line)
	assert.NotEmpty(t, syntaxErr.Msg)
}

func TestLocalPythonFileAdapter_Parse_Empty(t *testing.T) {
	mod := parseSource(t, "")
	assert.Empty(t, mod.Body)
}

func TestLocalPythonFileAdapter_Parse_CommentsDropped(t *testing.T) {
	mod := parseSource(t, "# header\nimport os  # trailing\n")

	for n := range pyast.Walk(mod) {
		if other, ok := n.(*pyast.Other); ok {
			assert.NotEqual(t, "comment", other.Kind)
		}
	}
}
