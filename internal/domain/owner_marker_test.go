package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "allurelint.dev/pkg/allurelint/internal/model"
	"allurelint.dev/pkg/allurelint/internal/pyast"
)

func TestMatchOwnerMarker(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		wantMatch bool
		wantLine  int
		wantValue string
	}{
		{"label", "@allure.label(\"owner\", \"bob\")\ndef test_a(): pass\n", true, 1, "bob"},
		{"owner helper", "@owner(\"alice\")\ndef test_a(): pass\n", true, 1, "alice"},
		{"label value keyword", "@allure.label(\"owner\", value=\"bob\")\ndef test_a(): pass\n", true, 1, "bob"},
		{"label owner keyword", "@allure.label(\"owner\", owner=\"bob\")\ndef test_a(): pass\n", true, 1, "bob"},
		{"helper keyword", "@owner(owner=\"carol\")\ndef test_a(): pass\n", true, 1, "carol"},
		{"helper extra args", "@owner(\"dave\", \"ignored\")\ndef test_a(): pass\n", true, 1, "dave"},
		{"label without value", "@allure.label(\"owner\")\ndef test_a(): pass\n", true, 1, ""},
		{"helper without args", "@owner()\ndef test_a(): pass\n", true, 1, ""},
		{"helper with variable", "@owner(OWNER)\ndef test_a(): pass\n", true, 1, ""},
		{"unrelated keyword", "@owner(name=\"bob\")\ndef test_a(): pass\n", true, 1, ""},
		{
			"other labels skipped",
			"@allure.label(\"layer\", \"api\")\n@allure.label(\"owner\", \"bob\")\ndef test_a(): pass\n",
			true, 2, "bob",
		},
		{
			"first match wins",
			"@owner(\"\")\n@allure.label(\"owner\", \"bob\")\ndef test_a(): pass\n",
			true, 1, "",
		},
		{"other label only", "@allure.label(\"layer\", \"api\")\ndef test_a(): pass\n", false, 0, ""},
		{"label key not literal", "@allure.label(OWNER, \"bob\")\ndef test_a(): pass\n", false, 0, ""},
		{"label without args", "@allure.label()\ndef test_a(): pass\n", false, 0, ""},
		{"bare helper", "@owner\ndef test_a(): pass\n", false, 0, ""},
		{"qualified helper", "@markers.owner(\"bob\")\ndef test_a(): pass\n", false, 0, ""},
		{"no decorators", "def test_a(): pass\n", false, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchOwnerMarker(firstFunction(t, tt.src))

			if !tt.wantMatch {
				assert.Nil(t, got)
				return
			}

			require.NotNil(t, got)
			assert.Equal(t, tt.wantLine, got.Call.Pos.Line)
			assert.Equal(t, tt.wantValue, got.Value)
		})
	}
}

func TestCheckOwnerMarker(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantCode m.Code
		wantLine int
		wantCol  int
	}{
		{"valid label", "@allure.label(\"owner\", \"bob\")\ndef test_a(): pass\n", "", 0, 0},
		{"valid helper", "@owner(\"bob\")\ndef test_a(): pass\n", "", 0, 0},
		{"missing", "@allure.id(\"1\")\ndef test_a(): pass\n", m.CodeOwnerMissing, 2, 0},
		{"empty", "@allure.label(\"owner\", \"\")\ndef test_a(): pass\n", m.CodeOwnerEmpty, 1, 1},
		{"whitespace", "@owner(\"   \")\ndef test_a(): pass\n", m.CodeOwnerEmpty, 1, 1},
		{"tabs and newlines", "@owner(\"\\t\\n\")\ndef test_a(): pass\n", m.CodeOwnerEmpty, 1, 1},
		{"not a literal", "@owner(OWNER)\ndef test_a(): pass\n", m.CodeOwnerEmpty, 1, 1},
		{"bytes value", "@owner(b\"bob\")\ndef test_a(): pass\n", m.CodeOwnerEmpty, 1, 1},
		{
			"in class",
			"class TestA:\n    @owner(\"\")\n    def test_a(self): pass\n",
			m.CodeOwnerEmpty, 2, 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckOwnerMarker("test_sample.py", firstFunction(t, tt.src))

			if tt.wantCode == "" {
				assert.Nil(t, got)
				return
			}

			require.NotNil(t, got)
			assert.Equal(t, tt.wantCode, got.Code)
			assert.Equal(t, tt.wantLine, got.Line, "line")
			assert.Equal(t, tt.wantCol, got.Column, "column")
		})
	}
}

func TestCheckOwnerMarker_FallsBackToFunctionPosition(t *testing.T) {
	fn := &pyast.FunctionDef{
		Pos:  pyast.Pos{Line: 9, Column: 4},
		Name: "test_synthetic",
		Decorators: []pyast.Node{
			&pyast.Call{Func: &pyast.Name{ID: "owner"}},
		},
	}

	got := CheckOwnerMarker("t.py", fn)
	require.NotNil(t, got)
	assert.Equal(t, m.CodeOwnerEmpty, got.Code)
	assert.Equal(t, 9, got.Line)
	assert.Equal(t, 4, got.Column)
	assert.Contains(t, got.Message, "test_synthetic")
}
