package atomforge

import (
	"bytes"
	"encoding/binary"

	"github.com/iconidentify/atomforge/dictionary"
)

/*
===============================================================================
    Binary Styles
===============================================================================
*/

// A record's first byte selects one of eight encoding styles in its top
// 3 bits; the low 5 bits carry the protocol, the atom code or an inline
// datum depending on the style. Both coders track a *current protocol*
// register, reset to protocol 0 at the start of every stream (nested
// streams are independent); styles that omit the protocol use it, styles
// that carry one load it.
const (
	styFull        = 0 // [000|proto][atom][len:1-2][payload]
	styNoData      = 1 // [001|proto][atom]
	styOneByte     = 2 // [010|proto][atom][datum]
	styAtomNoData  = 3 // [011|atom5]
	styAtomOneByte = 4 // [100|atom5][datum]
	styAtomLen     = 5 // [101|atom5][len:1-2][payload]
	styInlineDatum = 6 // [110|datum5][atom]
	styReserved    = 7 // reserved; the decoder rejects it as an unknown style

	// maxRecordPayload is the largest length expressible by the 15-bit
	// length prefix.
	maxRecordPayload = 32767
)

// styleHeader packs a style and its 5-bit operand into a style byte.
func styleHeader(style, low5 uint8) byte {
	return style<<5 | low5&0x1f
}

/*
===============================================================================
    Encoder
===============================================================================
*/

type streamEncoder struct {
	buf      bytes.Buffer
	curProto uint8
}

// encodeStream serialises a stream record by record, choosing the
// smallest legal style for each atom.
func encodeStream(s *Stream) ([]byte, error) {
	enc := &streamEncoder{}
	for _, atom := range s.Atoms {
		if err := enc.writeAtom(atom); err != nil {
			return nil, err
		}
	}
	return enc.buf.Bytes(), nil
}

// writeAtom emits one record. The styles are tried smallest-first; the
// first whose constraints hold is taken, which is what makes the output
// reproduce the legacy compiler byte for byte.
func (enc *streamEncoder) writeAtom(atom *Atom) error {
	payload, err := encodePayload(atom)
	if err != nil {
		return err
	}
	if len(payload) > maxRecordPayload {
		return EncodeErrorf(atom.Name, "payload of %d bytes exceeds the record limit of %d", len(payload), maxRecordPayload)
	}

	sameProto := atom.Proto == enc.curProto
	shortAtom := atom.Code < 32

	switch {
	case sameProto && shortAtom && len(payload) == 0:
		enc.buf.WriteByte(styleHeader(styAtomNoData, atom.Code))
	case sameProto && shortAtom && len(payload) == 1:
		enc.buf.WriteByte(styleHeader(styAtomOneByte, atom.Code))
		enc.buf.WriteByte(payload[0])
	case sameProto && len(payload) == 1 && payload[0] < 32:
		enc.buf.WriteByte(styleHeader(styInlineDatum, payload[0]))
		enc.buf.WriteByte(atom.Code)
	case len(payload) == 0:
		enc.buf.WriteByte(styleHeader(styNoData, atom.Proto))
		enc.buf.WriteByte(atom.Code)
		enc.curProto = atom.Proto
	case len(payload) == 1:
		enc.buf.WriteByte(styleHeader(styOneByte, atom.Proto))
		enc.buf.WriteByte(atom.Code)
		enc.buf.WriteByte(payload[0])
		enc.curProto = atom.Proto
	case sameProto && shortAtom:
		enc.buf.WriteByte(styleHeader(styAtomLen, atom.Code))
		enc.writeLength(len(payload))
		enc.buf.Write(payload)
	default:
		enc.buf.WriteByte(styleHeader(styFull, atom.Proto))
		enc.buf.WriteByte(atom.Code)
		enc.writeLength(len(payload))
		enc.buf.Write(payload)
		enc.curProto = atom.Proto
	}
	return nil
}

// writeLength emits the record length prefix: one byte below 128, else
// two bytes with the MSB of the first set and 15 bits big-endian.
func (enc *streamEncoder) writeLength(n int) {
	if n < 128 {
		enc.buf.WriteByte(byte(n))
		return
	}
	enc.buf.WriteByte(byte(n>>8) | 0x80)
	enc.buf.WriteByte(byte(n))
}

/*
===============================================================================
    Payload Serialisation
===============================================================================
*/

// encodePayload serialises an atom's arguments per its value type.
func encodePayload(atom *Atom) ([]byte, error) {
	if atom.Def == nil {
		// synthetic proto<N>_atom<M> form: optional raw hex payload
		switch len(atom.Args) {
		case 0:
			return nil, nil
		case 1:
			if hexArg, ok := atom.Args[0].(ArgHex); ok {
				return hexArg.Data, nil
			}
		}
		return nil, EncodeErrorf(atom.Name, "unknown atom takes a single hex payload")
	}

	def := atom.Def
	switch def.Type {
	case dictionary.TypeNone:
		if len(atom.Args) != 0 {
			return nil, EncodeErrorf(atom.Name, "takes no argument")
		}
		return nil, nil
	case dictionary.TypeByte:
		v, err := numericValue(atom, def, 0xff)
		if err != nil {
			return nil, err
		}
		return []byte{byte(v)}, nil
	case dictionary.TypeWord, dictionary.TypeEnum, dictionary.TypeBitSet:
		v, err := numericValue(atom, def, 0xffff)
		if err != nil {
			return nil, err
		}
		return beWord(uint16(v)), nil
	case dictionary.TypeDWord:
		v, err := numericValue(atom, def, 0xffffffff)
		if err != nil {
			return nil, err
		}
		out := make([]byte, 4)
		binary.BigEndian.PutUint32(out, v)
		return out, nil
	case dictionary.TypeString:
		s, err := singleArg[ArgString](atom, "string")
		if err != nil {
			return nil, err
		}
		return []byte(s.Value), nil
	case dictionary.TypeRaw:
		if len(atom.Args) == 0 {
			return nil, nil
		}
		h, err := singleArg[ArgHex](atom, "hex literal")
		if err != nil {
			return nil, err
		}
		return h.Data, nil
	case dictionary.TypeGid:
		g, err := singleArg[ArgGid](atom, "gid")
		if err != nil {
			return nil, err
		}
		return append(beWord(g.Hi), beWord(g.Lo)...), nil
	case dictionary.TypeObjectType:
		obj, err := singleArg[ArgObject](atom, "object type")
		if err != nil {
			return nil, err
		}
		return append(beWord(obj.ClassCode), []byte(obj.Title)...), nil
	case dictionary.TypeList:
		return encodeList(atom, def)
	case dictionary.TypeStream:
		inner, err := singleArg[ArgStream](atom, "nested stream")
		if err != nil {
			return nil, err
		}
		return encodeStream(inner.Stream)
	}
	return nil, EncodeErrorf(atom.Name, "unhandled value type %s", def.Type)
}

func beWord(v uint16) []byte {
	return []byte{byte(v >> 8), byte(v)}
}

// singleArg extracts the atom's sole argument of the wanted variant.
func singleArg[T Arg](atom *Atom, want string) (T, error) {
	var zero T
	if len(atom.Args) != 1 {
		return zero, EncodeErrorf(atom.Name, "takes exactly one %s argument", want)
	}
	arg, ok := atom.Args[0].(T)
	if !ok {
		return zero, EncodeErrorf(atom.Name, "takes a %s argument, got %T", want, atom.Args[0])
	}
	return arg, nil
}

// numericValue resolves the atom's single numeric argument: a literal, a
// symbolic enum name, or a piped group OR-reduced into one value.
func numericValue(atom *Atom, def *dictionary.AtomDef, max uint32) (uint32, error) {
	if len(atom.Args) != 1 {
		return 0, EncodeErrorf(atom.Name, "takes exactly one value argument")
	}
	v, err := resolveNumeric(atom, def, atom.Args[0])
	if err != nil {
		return 0, err
	}
	if v > max {
		return 0, EncodeErrorf(atom.Name, "value %d out of range (max %d)", v, max)
	}
	return v, nil
}

func resolveNumeric(atom *Atom, def *dictionary.AtomDef, arg Arg) (uint32, error) {
	switch a := arg.(type) {
	case ArgNumber:
		return a.Value, nil
	case ArgIdent:
		if def.Enum == nil {
			return 0, EncodeErrorf(atom.Name, "takes no symbolic values")
		}
		code, ok := def.Enum[a.Name]
		if !ok {
			return 0, EncodeErrorf(atom.Name, "unknown enum value %q", a.Name)
		}
		return uint32(code), nil
	case ArgPiped:
		var v uint32
		for _, part := range a.Parts {
			pv, err := resolveNumeric(atom, def, part)
			if err != nil {
				return 0, err
			}
			v |= pv
		}
		return v, nil
	}
	return 0, EncodeErrorf(atom.Name, "argument %T is not numeric", arg)
}

// encodeList serialises list elements against the definition's shape;
// the final shape entry repeats for overlong lists.
func encodeList(atom *Atom, def *dictionary.AtomDef) ([]byte, error) {
	shape := def.ListShape
	if len(shape) == 0 {
		return nil, EncodeErrorf(atom.Name, "list atom has no declared shape")
	}
	var out bytes.Buffer
	for i, item := range atom.Args {
		elemType := shape[min(i, len(shape)-1)]
		switch elemType {
		case dictionary.TypeByte:
			b, err := listByte(atom, item)
			if err != nil {
				return nil, err
			}
			out.WriteByte(b)
		case dictionary.TypeWord:
			n, ok := item.(ArgNumber)
			if !ok || n.Value > 0xffff {
				return nil, EncodeErrorf(atom.Name, "list element %d must be a word", i)
			}
			out.Write(beWord(uint16(n.Value)))
		case dictionary.TypeDWord:
			n, ok := item.(ArgNumber)
			if !ok {
				return nil, EncodeErrorf(atom.Name, "list element %d must be a number", i)
			}
			var buf [4]byte
			binary.BigEndian.PutUint32(buf[:], n.Value)
			out.Write(buf[:])
		case dictionary.TypeString:
			s, ok := item.(ArgString)
			if !ok {
				return nil, EncodeErrorf(atom.Name, "list element %d must be a string", i)
			}
			out.WriteString(s.Value)
		default:
			return nil, EncodeErrorf(atom.Name, "unsupported list element type %s", elemType)
		}
	}
	return out.Bytes(), nil
}

// listByte encodes a byte-typed list element: a numeric literal, or a
// single-letter identifier standing for its ASCII code (the letter+string
// form, e.g. <B,"text">).
func listByte(atom *Atom, item Arg) (byte, error) {
	switch a := item.(type) {
	case ArgNumber:
		if a.Value > 0xff {
			return 0, EncodeErrorf(atom.Name, "byte value %d out of range", a.Value)
		}
		return byte(a.Value), nil
	case ArgIdent:
		if len(a.Name) == 1 {
			return a.Name[0], nil
		}
	}
	return 0, EncodeErrorf(atom.Name, "bad byte list element %v", item)
}
