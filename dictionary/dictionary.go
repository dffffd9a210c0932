// Package dictionary provides the static FDO atom dictionary: the mapping
// between atom names, their (protocol, atom) wire codes, argument value
// types, enumeration tables and formatter flags.
//
// A Dictionary is read-only after construction and safe for concurrent use.
package dictionary

import (
	"fmt"
	"strconv"
	"strings"
)

/*
===============================================================================
    Value Types
===============================================================================
*/

// ValueType describes the argument grammar and payload encoding of an atom.
type ValueType int

const (
	// TypeNone takes no argument and encodes a zero-byte payload.
	TypeNone ValueType = iota
	// TypeByte takes a single numeric argument encoded as one byte.
	TypeByte
	// TypeWord takes a single numeric argument encoded as two bytes big-endian.
	TypeWord
	// TypeDWord takes a single numeric argument encoded as four bytes big-endian.
	TypeDWord
	// TypeString takes a double-quoted string, encoded as its raw bytes.
	TypeString
	// TypeRaw takes a hex literal encoded verbatim. Used for opaque data
	// atoms; unknown-atom fallback atoms carry the same hex form but have
	// no definition and so no value type.
	TypeRaw
	// TypeEnum takes a symbolic name from the atom's enum table (or a
	// numeric literal), encoded as a word.
	TypeEnum
	// TypeBitSet takes one or more enum names joined by '|', OR-reduced
	// into a word.
	TypeBitSet
	// TypeGid takes a global identifier, encoded as two words.
	TypeGid
	// TypeObjectType takes an object class name plus a title string,
	// encoded as a word followed by the title bytes.
	TypeObjectType
	// TypeList takes comma-separated elements encoded back to back
	// according to the definition's list shape.
	TypeList
	// TypeStream takes a nested stream, encoded recursively as the payload.
	TypeStream
)

var valueTypeNames = map[ValueType]string{
	TypeNone:       "none",
	TypeByte:       "byte",
	TypeWord:       "word",
	TypeDWord:      "dword",
	TypeString:     "string",
	TypeRaw:        "raw",
	TypeEnum:       "enum",
	TypeBitSet:     "bitset",
	TypeGid:        "gid",
	TypeObjectType: "object",
	TypeList:       "list",
	TypeStream:     "stream",
}

func (t ValueType) String() string {
	if s, ok := valueTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("ValueType(%d)", int(t))
}

// ValueTypeFromString is the inverse of ValueType.String, used by the
// resource loader.
func ValueTypeFromString(s string) (ValueType, bool) {
	for t, name := range valueTypeNames {
		if name == s {
			return t, true
		}
	}
	return TypeNone, false
}

/*
===============================================================================
    Formatter Flags
===============================================================================
*/

// Flag carries formatter hints attached to an atom definition.
type Flag uint8

const (
	// FlagIndent raises the indent level before the atom is printed.
	FlagIndent Flag = 1 << iota
	// FlagOutdent lowers the indent level before the atom is printed.
	FlagOutdent
	// FlagIndentNext raises the indent level after the atom is printed,
	// so that following lines nest under it. Carried by stream-bracket
	// atoms such as uni_start_stream and man_start_object.
	FlagIndentNext
)

/*
===============================================================================
    Atom Definitions
===============================================================================
*/

// EnumTable maps symbolic enum names to their wire codes.
type EnumTable map[string]uint16

// NameFor returns the symbolic name bound to code, if any.
func (et EnumTable) NameFor(code uint16) (string, bool) {
	for name, c := range et {
		if c == code {
			return name, true
		}
	}
	return "", false
}

// AtomDef is a single entry of the atom dictionary.
type AtomDef struct {
	Name      string
	Proto     uint8 // 5-bit protocol namespace, 0-31
	Code      uint8 // atom code within the protocol
	Type      ValueType
	Enum      EnumTable   // for TypeEnum / TypeBitSet / TypeObjectType
	ListShape []ValueType // for TypeList; last entry repeats
	Flags     Flag
}

// HasFlag reports whether the definition carries the given formatter flag.
func (d *AtomDef) HasFlag(f Flag) bool {
	return d.Flags&f != 0
}

// key packs a (protocol, atom) pair for map lookup.
func key(proto, code uint8) uint16 {
	return uint16(proto)<<8 | uint16(code)
}

/*
===============================================================================
    Dictionary
===============================================================================
*/

// Dictionary provides atom lookup by name and by (protocol, atom) pair.
type Dictionary struct {
	byName map[string]*AtomDef
	byCode map[uint16]*AtomDef
}

// New builds a Dictionary from the given definitions. Later duplicates of
// a name or a (protocol, atom) pair are rejected.
func New(defs []*AtomDef) (*Dictionary, error) {
	d := &Dictionary{
		byName: make(map[string]*AtomDef, len(defs)),
		byCode: make(map[uint16]*AtomDef, len(defs)),
	}
	for _, def := range defs {
		if def.Proto > 31 {
			return nil, fmt.Errorf("atom %q: protocol %d exceeds 5 bits", def.Name, def.Proto)
		}
		if _, dup := d.byName[def.Name]; dup {
			return nil, fmt.Errorf("duplicate atom name %q", def.Name)
		}
		if prev, dup := d.byCode[key(def.Proto, def.Code)]; dup {
			return nil, fmt.Errorf("atoms %q and %q share code (%d,%d)", prev.Name, def.Name, def.Proto, def.Code)
		}
		d.byName[def.Name] = def
		d.byCode[key(def.Proto, def.Code)] = def
	}
	return d, nil
}

// ByName returns the definition bound to name.
func (d *Dictionary) ByName(name string) (*AtomDef, bool) {
	def, ok := d.byName[name]
	return def, ok
}

// ByCode returns the definition bound to the (protocol, atom) pair.
func (d *Dictionary) ByCode(proto, code uint8) (*AtomDef, bool) {
	def, ok := d.byCode[key(proto, code)]
	return def, ok
}

// Len returns the number of definitions held.
func (d *Dictionary) Len() int {
	return len(d.byName)
}

/*
===============================================================================
    Unknown-Atom Fallback Names
===============================================================================
*/

// SyntheticName renders the fallback name used for (protocol, atom) pairs
// absent from the dictionary, e.g. "proto16_atom88".
func SyntheticName(proto, code uint8) string {
	return fmt.Sprintf("proto%d_atom%d", proto, code)
}

// ParseSyntheticName recognises the fallback form produced by
// SyntheticName. The parser accepts it symmetrically so that decompiled
// output containing unknown atoms recompiles to the original bytes.
func ParseSyntheticName(name string) (proto, code uint8, ok bool) {
	rest, found := strings.CutPrefix(name, "proto")
	if !found {
		return 0, 0, false
	}
	protoStr, codeStr, found := strings.Cut(rest, "_atom")
	if !found {
		return 0, 0, false
	}
	p, err := strconv.ParseUint(protoStr, 10, 8)
	if err != nil || p > 31 {
		return 0, 0, false
	}
	c, err := strconv.ParseUint(codeStr, 10, 8)
	if err != nil {
		return 0, 0, false
	}
	return uint8(p), uint8(c), true
}
