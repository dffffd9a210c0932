package dictionary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinLookups(t *testing.T) {
	t.Parallel()
	d := Builtin()

	def, ok := d.ByName("mat_trigger_style")
	require.True(t, ok)
	assert.Equal(t, uint8(16), def.Proto)
	assert.Equal(t, uint8(88), def.Code)
	assert.Equal(t, TypeEnum, def.Type)
	assert.Equal(t, uint16(3), def.Enum["picture"])

	byCode, ok := d.ByCode(16, 88)
	require.True(t, ok)
	assert.Same(t, def, byCode)

	_, ok = d.ByName("no_such_atom")
	assert.False(t, ok)
	_, ok = d.ByCode(31, 255)
	assert.False(t, ok)
}

func TestBuiltinFlags(t *testing.T) {
	t.Parallel()
	d := Builtin()
	start, _ := d.ByName("uni_start_stream")
	end, _ := d.ByName("uni_end_stream")
	assert.True(t, start.HasFlag(FlagIndentNext))
	assert.False(t, start.HasFlag(FlagOutdent))
	assert.True(t, end.HasFlag(FlagOutdent))
}

func TestNewRejectsDuplicates(t *testing.T) {
	t.Parallel()
	_, err := New([]*AtomDef{
		{Name: "a", Proto: 1, Code: 1, Type: TypeNone},
		{Name: "a", Proto: 1, Code: 2, Type: TypeNone},
	})
	assert.Error(t, err)

	_, err = New([]*AtomDef{
		{Name: "a", Proto: 1, Code: 1, Type: TypeNone},
		{Name: "b", Proto: 1, Code: 1, Type: TypeNone},
	})
	assert.Error(t, err)

	_, err = New([]*AtomDef{{Name: "a", Proto: 40, Code: 1, Type: TypeNone}})
	assert.Error(t, err)
}

func TestSyntheticNames(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "proto16_atom88", SyntheticName(16, 88))

	proto, code, ok := ParseSyntheticName("proto16_atom88")
	require.True(t, ok)
	assert.Equal(t, uint8(16), proto)
	assert.Equal(t, uint8(88), code)

	for _, bad := range []string{
		"proto_atom88", "proto16atom88", "proto99_atom1", "proto16_atom999", "mat_title",
	} {
		_, _, ok := ParseSyntheticName(bad)
		assert.False(t, ok, bad)
	}
}

func TestLoadResource(t *testing.T) {
	t.Parallel()
	resource := `
# test dictionary
xx_start 9 0 none indent_next
xx_end 9 1 none outdent
xx_style 9 2 enum enum=fancy:1,plain:0
xx_pair 9 3 list shape=byte,string
`
	d, err := Load(strings.NewReader(resource))
	require.NoError(t, err)
	assert.Equal(t, 4, d.Len())

	style, ok := d.ByName("xx_style")
	require.True(t, ok)
	assert.Equal(t, TypeEnum, style.Type)
	assert.Equal(t, uint16(1), style.Enum["fancy"])

	pair, ok := d.ByName("xx_pair")
	require.True(t, ok)
	assert.Equal(t, []ValueType{TypeByte, TypeString}, pair.ListShape)

	start, _ := d.ByName("xx_start")
	assert.True(t, start.HasFlag(FlagIndentNext))
}

func TestLoadResourceErrors(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		name     string
		resource string
	}{
		{"too few fields", "xx_start 9 0"},
		{"bad protocol", "xx_start 99 0 none"},
		{"bad type", "xx_start 9 0 quux"},
		{"bad flag", "xx_start 9 0 none sideways"},
		{"bad enum pair", "xx_style 9 2 enum enum=fancy"},
		{"duplicate name", "xx 9 0 none\nxx 9 1 none"},
	} {
		_, err := Load(strings.NewReader(tc.resource))
		assert.Error(t, err, tc.name)
	}
}

func TestEnumTableNameFor(t *testing.T) {
	t.Parallel()
	table := EnumTable{"a": 1, "b": 2}
	name, ok := table.NameFor(2)
	require.True(t, ok)
	assert.Equal(t, "b", name)
	_, ok = table.NameFor(9)
	assert.False(t, ok)
}

func TestValueTypeStrings(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "enum", TypeEnum.String())
	typ, ok := ValueTypeFromString("bitset")
	require.True(t, ok)
	assert.Equal(t, TypeBitSet, typ)
	_, ok = ValueTypeFromString("quux")
	assert.False(t, ok)
}
