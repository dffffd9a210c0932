package atomforge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iconidentify/atomforge/dictionary"
)

var testDict = dictionary.Builtin()

func mustParse(t *testing.T, source string) *Stream {
	t.Helper()
	stream, err := parseSource(testDict, source)
	require.NoError(t, err)
	return stream
}

func TestParseBareAtom(t *testing.T) {
	t.Parallel()
	stream := mustParse(t, "fm_start\n")
	require.Len(t, stream.Atoms, 1)
	atom := stream.Atoms[0]
	assert.Equal(t, "fm_start", atom.Name)
	assert.Equal(t, uint8(4), atom.Proto)
	assert.Equal(t, uint8(0), atom.Code)
	assert.Empty(t, atom.Args)
	require.NotNil(t, atom.Def)
}

func TestParseEnumArgument(t *testing.T) {
	t.Parallel()
	stream := mustParse(t, "mat_trigger_style <picture>\n")
	require.Len(t, stream.Atoms, 1)
	assert.Equal(t, []Arg{ArgIdent{Name: "picture"}}, stream.Atoms[0].Args)

	// numeric literals are accepted verbatim as an enum fallback
	stream = mustParse(t, "mat_trigger_style <9>\n")
	assert.Equal(t, []Arg{ArgNumber{Value: 9}}, stream.Atoms[0].Args)
}

// The same token shapes parse differently depending on the atom's
// declared type: ind_group, "Title" is an object argument while
// 50, 4, 512 is a plain list.
func TestParseSchemaDirectedDispatch(t *testing.T) {
	t.Parallel()
	stream := mustParse(t, "man_start_object <ind_group, \"Title\">\n")
	require.Len(t, stream.Atoms[0].Args, 1)
	assert.Equal(t, ArgObject{Class: "ind_group", ClassCode: 1, Title: "Title"}, stream.Atoms[0].Args[0])

	stream = mustParse(t, "fm_transfer_params <50, 4, 512>\n")
	assert.Equal(t, []Arg{
		ArgNumber{Value: 50}, ArgNumber{Value: 4}, ArgNumber{Value: 512},
	}, stream.Atoms[0].Args)
}

func TestParseObjectWithoutTitle(t *testing.T) {
	t.Parallel()
	stream := mustParse(t, "man_start_object <ind_group>\n")
	assert.Equal(t, ArgObject{Class: "ind_group", ClassCode: 1}, stream.Atoms[0].Args[0])
}

func TestParseLetterStringList(t *testing.T) {
	t.Parallel()
	stream := mustParse(t, "fm_item <B,\"text\">\n")
	assert.Equal(t, []Arg{ArgIdent{Name: "B"}, ArgString{Value: "text"}}, stream.Atoms[0].Args)
}

func TestParsePipedBitSet(t *testing.T) {
	t.Parallel()
	stream := mustParse(t, "mat_font_style <bold | underline>\n")
	assert.Equal(t, []Arg{ArgPiped{Parts: []Arg{
		ArgIdent{Name: "bold"}, ArgIdent{Name: "underline"},
	}}}, stream.Atoms[0].Args)
}

func TestParseGidForms(t *testing.T) {
	t.Parallel()
	stream := mustParse(t, "man_preset_gid <32-105>\n")
	assert.Equal(t, []Arg{ArgGid{Hi: 32, Lo: 105}}, stream.Atoms[0].Args)

	// three-part form folds to byte,byte,word
	stream = mustParse(t, "man_preset_gid <1-0-21877>\n")
	assert.Equal(t, []Arg{ArgGid{Hi: 0x0100, Lo: 21877}}, stream.Atoms[0].Args)

	// single numbers split into two words
	stream = mustParse(t, "man_preset_gid <0x00200069>\n")
	assert.Equal(t, []Arg{ArgGid{Hi: 0x0020, Lo: 0x0069}}, stream.Atoms[0].Args)
}

func TestParseNestedStream(t *testing.T) {
	t.Parallel()
	source := "act_replace_select_action <\n" +
		"\tuni_start_stream\n" +
		"\tmat_bool_invert <1>\n" +
		"\tuni_end_stream\n" +
		">\n"
	stream := mustParse(t, source)
	require.Len(t, stream.Atoms, 1)
	inner, ok := stream.Atoms[0].Args[0].(ArgStream)
	require.True(t, ok)
	require.Len(t, inner.Stream.Atoms, 3)
	assert.Equal(t, "uni_start_stream", inner.Stream.Atoms[0].Name)
	assert.Equal(t, "mat_bool_invert", inner.Stream.Atoms[1].Name)
	assert.Equal(t, "uni_end_stream", inner.Stream.Atoms[2].Name)
}

func TestParseSyntheticAtom(t *testing.T) {
	t.Parallel()
	stream := mustParse(t, "proto31_atom255 <0xabcd>\n")
	atom := stream.Atoms[0]
	assert.Nil(t, atom.Def)
	assert.Equal(t, uint8(31), atom.Proto)
	assert.Equal(t, uint8(255), atom.Code)
	assert.Equal(t, []Arg{ArgHex{Data: []byte{0xab, 0xcd}}}, atom.Args)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		name   string
		source string
	}{
		{"unknown atom", "no_such_atom <1>\n"},
		{"unknown enum value", "mat_trigger_style <no_such_style>\n"},
		{"type mismatch", "mat_title <42>\n"},
		{"two atoms on one line", "fm_start fm_end\n"},
		{"unterminated nested stream", "act_do_action <\n\tuni_start_stream\n"},
		{"unterminated argument block", "mat_title <\"x\"\n"},
		{"stray close bracket", ">\n"},
	} {
		_, err := parseSource(testDict, tc.source)
		assert.Error(t, err, tc.name)
		assert.IsType(t, &ParseError{}, err, tc.name)
	}
}

func TestParseReportsLine(t *testing.T) {
	t.Parallel()
	_, err := parseSource(testDict, "fm_start\nno_such_atom\n")
	require.Error(t, err)
	parseErr, ok := err.(*ParseError)
	require.True(t, ok)
	assert.Equal(t, 2, parseErr.Line)
}
