package atomforge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(tokens []token) []tokenKind {
	out := make([]tokenKind, len(tokens))
	for i, tk := range tokens {
		out[i] = tk.kind
	}
	return out
}

func TestLexAtomLine(t *testing.T) {
	t.Parallel()
	tokens, err := lexSource("mat_trigger_style <picture>\n")
	require.Nil(t, err)
	assert.Equal(t, []tokenKind{tknIdent, tknLT, tknIdent, tknGT, tknNewline, tknEOF}, kinds(tokens))
	assert.Equal(t, "mat_trigger_style", tokens[0].value)
	assert.Equal(t, "picture", tokens[2].value)
}

func TestLexArgumentSeparators(t *testing.T) {
	t.Parallel()
	tokens, err := lexSource(`fm_transfer_params <50, 4, 512>`)
	require.Nil(t, err)
	assert.Equal(t, []tokenKind{
		tknIdent, tknLT, tknNumber, tknComma, tknNumber, tknComma, tknNumber, tknGT, tknEOF,
	}, kinds(tokens))

	tokens, err = lexSource(`mat_font_style <bold | underline>`)
	require.Nil(t, err)
	assert.Equal(t, []tokenKind{
		tknIdent, tknLT, tknIdent, tknPipe, tknIdent, tknGT, tknEOF,
	}, kinds(tokens))
}

func TestLexNumericForms(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		in   string
		kind tokenKind
	}{
		{"512", tknNumber},
		{"0x1F", tknHex},
		{"$1f", tknHex},
		{"32-105", tknGid},
		{"1-0-21877", tknGid},
	} {
		tokens, err := lexSource(tc.in)
		require.Nil(t, err, tc.in)
		assert.Equal(t, tc.kind, tokens[0].kind, tc.in)
		assert.Equal(t, tc.in, tokens[0].value, tc.in)
	}
}

func TestLexString(t *testing.T) {
	t.Parallel()
	tokens, err := lexSource(`mat_title <"a \"quoted\" line\nwith\ttabs\\">`)
	require.Nil(t, err)
	assert.Equal(t, tknString, tokens[2].kind)
	assert.Equal(t, "a \"quoted\" line\nwith\ttabs\\", tokens[2].value)
}

func TestLexComment(t *testing.T) {
	t.Parallel()
	tokens, err := lexSource("# a comment line\nfm_start # trailing\n")
	require.Nil(t, err)
	assert.Equal(t, []tokenKind{tknNewline, tknIdent, tknNewline, tknEOF}, kinds(tokens))
}

func TestLexErrors(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		in     string
		line   int
		column int
	}{
		{"mat_title <\"unterminated>\n", 1, 12},
		{"mat_title <\"bad \\q escape\">", 1, 12},
		{"fm_start\n@", 2, 1},
		{"uni_sync_skip <0x>", 1, 16},
	} {
		_, err := lexSource(tc.in)
		require.NotNil(t, err, tc.in)
		assert.Equal(t, tc.line, err.Line, tc.in)
		assert.Equal(t, tc.column, err.Column, tc.in)
	}
}

func TestLexTracksLines(t *testing.T) {
	t.Parallel()
	tokens, err := lexSource("fm_start\nfm_end\n")
	require.Nil(t, err)
	assert.Equal(t, 1, tokens[0].line)
	assert.Equal(t, 2, tokens[2].line)
}
