package atomforge

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compileBytes(t *testing.T, source string) []byte {
	t.Helper()
	data, err := NewCompiler(testDict).Compile(source)
	require.NoError(t, err)
	return data
}

func TestEncodeFullStyle(t *testing.T) {
	t.Parallel()
	// protocol 16, atom 88, length 2, value 3 big-endian
	assert.Equal(t,
		[]byte{0x10, 0x58, 0x02, 0x00, 0x03},
		compileBytes(t, "mat_trigger_style <picture>\n"))
	assert.Equal(t,
		[]byte{0x10, 0x57, 0x02, 0x00, 0x05},
		compileBytes(t, "mat_frame_style <double_line>\n"))
}

func TestEncodeCompactNoData(t *testing.T) {
	t.Parallel()
	// protocol 0 is current at stream start, so a bare uni atom fits the
	// single-byte style: [011|atom]
	assert.Equal(t, []byte{0x60}, compileBytes(t, "uni_start_stream\n"))
	assert.Equal(t, []byte{0x61}, compileBytes(t, "uni_end_stream\n"))

	// a bare atom of another protocol needs the two-byte style [001|proto][atom]
	assert.Equal(t, []byte{0x24, 0x00}, compileBytes(t, "fm_start\n"))
}

func TestEncodeCompactOneByte(t *testing.T) {
	t.Parallel()
	// first record carries the protocol: [010|proto][atom][datum]
	// second fits [100|atom][datum] since protocol 16 is then current
	assert.Equal(t,
		[]byte{0x50, 0x00, 0x01, 0x92, 0x01},
		compileBytes(t, "mat_relative_tag <1>\nmat_bool_invert <1>\n"))
}

func TestEncodeInlineDatum(t *testing.T) {
	t.Parallel()
	// mat_border_width has atom code 67, too big for the atom-compact
	// styles, but its small datum rides in the header: [110|datum][atom]
	assert.Equal(t,
		[]byte{0x50, 0x00, 0x00, 0xC2, 0x43},
		compileBytes(t, "mat_relative_tag <0>\nmat_border_width <2>\n"))
}

func TestEncodeAtomLenStyle(t *testing.T) {
	t.Parallel()
	// same protocol, small atom code, multi-byte payload: [101|atom][len]
	assert.Equal(t,
		[]byte{0x50, 0x00, 0x00, 0xA3, 0x02, 'H', 'i'},
		compileBytes(t, "mat_relative_tag <0>\nmat_title <\"Hi\">\n"))
}

func TestEncodeObjectType(t *testing.T) {
	t.Parallel()
	assert.Equal(t,
		[]byte{0x01, 0x00, 0x07, 0x00, 0x01, 'T', 'i', 't', 'l', 'e'},
		compileBytes(t, "man_start_object <ind_group, \"Title\">\n"))

	// absent title encodes as the bare class word
	assert.Equal(t,
		[]byte{0x01, 0x00, 0x02, 0x00, 0x01},
		compileBytes(t, "man_start_object <ind_group>\n"))
}

func TestEncodeLetterStringList(t *testing.T) {
	t.Parallel()
	assert.Equal(t,
		[]byte{0x04, 0x02, 0x05, 'B', 't', 'e', 'x', 't'},
		compileBytes(t, "fm_item <B,\"text\">\n"))
}

func TestEncodePositionalList(t *testing.T) {
	t.Parallel()
	// shape (byte, byte, word)
	assert.Equal(t,
		[]byte{0x04, 0x0A, 0x04, 50, 4, 0x02, 0x00},
		compileBytes(t, "fm_transfer_params <50, 4, 512>\n"))
}

func TestEncodeBitSet(t *testing.T) {
	t.Parallel()
	assert.Equal(t,
		[]byte{0x10, 0x0B, 0x02, 0x00, 0x05},
		compileBytes(t, "mat_font_style <bold | underline>\n"))
}

func TestEncodeGid(t *testing.T) {
	t.Parallel()
	assert.Equal(t,
		[]byte{0x01, 0x08, 0x04, 0x00, 0x20, 0x00, 0x69},
		compileBytes(t, "man_preset_gid <32-105>\n"))
}

func TestEncodeNestedStream(t *testing.T) {
	t.Parallel()
	source := "uni_start_stream\n" +
		"act_replace_select_action <\n" +
		"\tuni_start_stream\n" +
		"\tmat_bool_invert <1>\n" +
		"\tuni_end_stream\n" +
		">\n" +
		"uni_end_stream\n"
	inner := []byte{0x60, 0x50, 0x12, 0x01, 0x20, 0x01}
	want := append([]byte{0x60, 0x03, 0x03, 0x06}, inner...)
	want = append(want, 0x20, 0x01)
	assert.Equal(t, want, compileBytes(t, source))
}

func TestEncodeLengthPrefix(t *testing.T) {
	t.Parallel()
	// 127 payload bytes keep the single-byte length
	data := compileBytes(t, "mat_title <\""+strings.Repeat("a", 127)+"\">\n")
	assert.Equal(t, []byte{0x10, 0x03, 0x7F}, data[:3])
	assert.Equal(t, 3+127, len(data))

	// 128 bytes switch to the two-byte form with the MSB set
	data = compileBytes(t, "mat_title <\""+strings.Repeat("a", 128)+"\">\n")
	assert.Equal(t, []byte{0x10, 0x03, 0x80, 0x80}, data[:4])
	assert.Equal(t, 4+128, len(data))
}

func TestEncodePayloadTooLong(t *testing.T) {
	t.Parallel()
	_, err := NewCompiler(testDict).Compile("mat_title <\"" + strings.Repeat("a", 32768) + "\">\n")
	require.Error(t, err)
	assert.IsType(t, &EncodeError{}, err)
	assert.Contains(t, err.Error(), "record limit")
}

func TestEncodeValueRange(t *testing.T) {
	t.Parallel()
	// mat_font_size is a byte atom; 300 does not fit
	_, err := NewCompiler(testDict).Compile("mat_font_size <300>\n")
	require.Error(t, err)
	assert.IsType(t, &EncodeError{}, err)
}

func TestEncodeSyntheticAtom(t *testing.T) {
	t.Parallel()
	data := compileBytes(t, "proto31_atom255 <0xabcd>\n")
	assert.Equal(t, []byte{0x1F, 0xFF, 0x02, 0xAB, 0xCD}, data)
}

func TestStreamMarshalBinary(t *testing.T) {
	t.Parallel()
	stream := mustParse(t, "mat_trigger_style <picture>\n")
	data, err := stream.MarshalBinary()
	require.NoError(t, err)
	assert.True(t, bytes.Equal([]byte{0x10, 0x58, 0x02, 0x00, 0x03}, data))
}
