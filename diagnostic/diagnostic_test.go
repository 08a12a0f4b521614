package diagnostic_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-sqlfront/sqlfront/diagnostic"
)

func TestNewIsGrammarKind(t *testing.T) {
	d := diagnostic.New(3, 7, "duplicate WHERE clause")
	require.Equal(t, diagnostic.Grammar, d.Kind)
	require.Equal(t, "duplicate WHERE clause at line 3, column 7", d.Error())
}

func TestUnexpectedCarriesExpectedAndActual(t *testing.T) {
	d := diagnostic.Unexpected(1, 1, "FROM", "WHERE")
	require.Equal(t, diagnostic.UnexpectedToken, d.Kind)
	require.Equal(t, "FROM", d.Expected)
	require.Equal(t, "WHERE", d.Actual)
	require.Contains(t, d.Error(), "expected FROM, got WHERE")
}

func TestUnsupportedIsUnsupportedFeatureKind(t *testing.T) {
	d := diagnostic.Unsupported(1, 1, "recursive CTEs")
	require.Equal(t, diagnostic.UnsupportedFeature, d.Kind)
}

func TestKindStringNames(t *testing.T) {
	require.Equal(t, "LexicalError", diagnostic.Lexical.String())
	require.Equal(t, "UnexpectedToken", diagnostic.UnexpectedToken.String())
	require.Equal(t, "GrammarError", diagnostic.Grammar.String())
	require.Equal(t, "UnsupportedFeature", diagnostic.UnsupportedFeature.String())
}
