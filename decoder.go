package atomforge

import (
	"encoding/binary"
	"sort"

	"github.com/b71729/bin"
	"github.com/iconidentify/atomforge/dictionary"
	"github.com/rs/zerolog/log"
)

/*
===============================================================================
    Decoder
===============================================================================
*/

// streamDecoder walks a byte buffer record by record. It keeps its own
// position and size so that errors can report absolute byte offsets even
// inside nested streams.
type streamDecoder struct {
	dict     *dictionary.Dictionary
	r        bin.Reader
	pos      int64 // absolute offset of the cursor
	end      int64 // absolute offset one past the buffer
	curProto uint8
	depth    int
}

// DecodeStream decodes a complete binary FDO stream against the given
// dictionary.
func DecodeStream(dict *dictionary.Dictionary, data []byte) (*Stream, error) {
	return decodeStreamAt(dict, data, 0, 0)
}

func decodeStreamAt(dict *dictionary.Dictionary, data []byte, base int64, depth int) (*Stream, error) {
	if depth > GetConfig().MaxDepth {
		return nil, CorruptStreamError(base, "nested stream depth exceeds %d", GetConfig().MaxDepth)
	}
	dec := &streamDecoder{
		dict:  dict,
		r:     bin.NewReaderBytes(data, binary.BigEndian),
		pos:   base,
		end:   base + int64(len(data)),
		depth: depth,
	}
	stream := &Stream{}
	for dec.remaining() > 0 {
		atom, err := dec.readAtom()
		if err != nil {
			return nil, err
		}
		stream.Atoms = append(stream.Atoms, atom)
	}
	return stream, nil
}

func (dec *streamDecoder) remaining() int64 {
	return dec.end - dec.pos
}

func (dec *streamDecoder) readByte() (byte, error) {
	if dec.remaining() < 1 {
		return 0, CorruptStreamError(dec.pos, "unexpected end of stream")
	}
	var b [1]byte
	if err := dec.r.ReadBytes(b[:]); err != nil {
		return 0, CorruptStreamError(dec.pos, "%v", err)
	}
	dec.pos++
	return b[0], nil
}

func (dec *streamDecoder) readBytes(n int64) ([]byte, error) {
	if n == 0 {
		return []byte{}, nil
	}
	if dec.remaining() < n {
		return nil, CorruptStreamError(dec.pos, "unexpected end of stream: want %d bytes, have %d", n, dec.remaining())
	}
	buf := make([]byte, n)
	if err := dec.r.ReadBytes(buf); err != nil {
		return nil, CorruptStreamError(dec.pos, "%v", err)
	}
	dec.pos += n
	return buf, nil
}

// readLength decodes the record length prefix of styles 0 and 5.
func (dec *streamDecoder) readLength() (int64, error) {
	first, err := dec.readByte()
	if err != nil {
		return 0, err
	}
	if first < 0x80 {
		return int64(first), nil
	}
	second, err := dec.readByte()
	if err != nil {
		return 0, err
	}
	return int64(first&0x7f)<<8 | int64(second), nil
}

// readAtom decodes one record: style dispatch, then payload decoding
// according to the dictionary definition.
func (dec *streamDecoder) readAtom() (*Atom, error) {
	recordStart := dec.pos
	styleByte, err := dec.readByte()
	if err != nil {
		return nil, err
	}
	style := styleByte >> 5
	low5 := styleByte & 0x1f

	var proto, code uint8
	var payload []byte
	switch style {
	case styFull:
		proto = low5
		if code, err = dec.readByte(); err != nil {
			return nil, err
		}
		length, err := dec.readLength()
		if err != nil {
			return nil, err
		}
		if payload, err = dec.readBytes(length); err != nil {
			return nil, err
		}
		dec.curProto = proto
	case styNoData:
		proto = low5
		if code, err = dec.readByte(); err != nil {
			return nil, err
		}
		dec.curProto = proto
	case styOneByte:
		proto = low5
		if code, err = dec.readByte(); err != nil {
			return nil, err
		}
		datum, err := dec.readByte()
		if err != nil {
			return nil, err
		}
		payload = []byte{datum}
		dec.curProto = proto
	case styAtomNoData:
		proto, code = dec.curProto, low5
	case styAtomOneByte:
		proto, code = dec.curProto, low5
		datum, err := dec.readByte()
		if err != nil {
			return nil, err
		}
		payload = []byte{datum}
	case styAtomLen:
		proto, code = dec.curProto, low5
		length, err := dec.readLength()
		if err != nil {
			return nil, err
		}
		if payload, err = dec.readBytes(length); err != nil {
			return nil, err
		}
	case styInlineDatum:
		proto = dec.curProto
		if code, err = dec.readByte(); err != nil {
			return nil, err
		}
		payload = []byte{low5}
	default:
		return nil, CorruptStreamError(recordStart, "unknown style byte 0x%02X", styleByte)
	}

	return dec.buildAtom(recordStart, proto, code, payload)
}

// buildAtom turns a decoded (proto, code, payload) triple into a typed
// atom. Pairs missing from the dictionary fall back to the synthetic
// proto<N>_atom<M> form with an opaque hex payload so that decoding stays
// lossless; StrictMode turns that fallback into an error.
func (dec *streamDecoder) buildAtom(offset int64, proto, code uint8, payload []byte) (*Atom, error) {
	def, known := dec.dict.ByCode(proto, code)
	if !known {
		if GetConfig().StrictMode {
			return nil, CorruptStreamError(offset, "unknown atom (%d,%d)", proto, code)
		}
		log.Debug().
			Uint8("proto", proto).
			Uint8("atom", code).
			Int64("offset", offset).
			Msg("atom pair not in dictionary, using synthetic fallback")
		atom := &Atom{Name: dictionary.SyntheticName(proto, code), Proto: proto, Code: code}
		if len(payload) > 0 {
			atom.Args = append(atom.Args, ArgHex{Data: payload})
		}
		return atom, nil
	}

	atom := &Atom{Name: def.Name, Def: def, Proto: proto, Code: code}
	args, err := dec.decodePayload(offset, def, payload)
	if err != nil {
		return nil, err
	}
	atom.Args = args
	return atom, nil
}

func (dec *streamDecoder) decodePayload(offset int64, def *dictionary.AtomDef, payload []byte) ([]Arg, error) {
	switch def.Type {
	case dictionary.TypeNone:
		if len(payload) != 0 {
			return nil, CorruptStreamError(offset, "atom %s: %d payload bytes for a bare atom", def.Name, len(payload))
		}
		return nil, nil
	case dictionary.TypeByte:
		if len(payload) != 1 {
			return nil, CorruptStreamError(offset, "atom %s: byte payload has %d bytes", def.Name, len(payload))
		}
		return []Arg{ArgNumber{Value: uint32(payload[0])}}, nil
	case dictionary.TypeWord:
		if len(payload) != 2 {
			return nil, CorruptStreamError(offset, "atom %s: word payload has %d bytes", def.Name, len(payload))
		}
		return []Arg{ArgNumber{Value: uint32(binary.BigEndian.Uint16(payload))}}, nil
	case dictionary.TypeDWord:
		if len(payload) != 4 {
			return nil, CorruptStreamError(offset, "atom %s: dword payload has %d bytes", def.Name, len(payload))
		}
		return []Arg{ArgNumber{Value: binary.BigEndian.Uint32(payload)}}, nil
	case dictionary.TypeString:
		return []Arg{ArgString{Value: string(payload)}}, nil
	case dictionary.TypeRaw:
		if len(payload) == 0 {
			return nil, nil
		}
		return []Arg{ArgHex{Data: payload}}, nil
	case dictionary.TypeEnum:
		if len(payload) != 2 {
			return nil, CorruptStreamError(offset, "atom %s: enum payload has %d bytes", def.Name, len(payload))
		}
		v := binary.BigEndian.Uint16(payload)
		if name, ok := def.Enum.NameFor(v); ok {
			return []Arg{ArgIdent{Name: name}}, nil
		}
		return []Arg{ArgNumber{Value: uint32(v)}}, nil
	case dictionary.TypeBitSet:
		if len(payload) != 2 {
			return nil, CorruptStreamError(offset, "atom %s: bitset payload has %d bytes", def.Name, len(payload))
		}
		return []Arg{decodeBitSet(def.Enum, binary.BigEndian.Uint16(payload))}, nil
	case dictionary.TypeGid:
		if len(payload) != 4 {
			return nil, CorruptStreamError(offset, "atom %s: gid payload has %d bytes", def.Name, len(payload))
		}
		return []Arg{ArgGid{
			Hi: binary.BigEndian.Uint16(payload[0:2]),
			Lo: binary.BigEndian.Uint16(payload[2:4]),
		}}, nil
	case dictionary.TypeObjectType:
		if len(payload) < 2 {
			return nil, CorruptStreamError(offset, "atom %s: object payload has %d bytes", def.Name, len(payload))
		}
		obj := ArgObject{
			ClassCode: binary.BigEndian.Uint16(payload[0:2]),
			Title:     string(payload[2:]),
		}
		if name, ok := def.Enum.NameFor(obj.ClassCode); ok {
			obj.Class = name
		}
		return []Arg{obj}, nil
	case dictionary.TypeList:
		return decodeList(offset, def, payload)
	case dictionary.TypeStream:
		// the payload ends at the cursor, so the inner stream starts there
		// minus its length
		inner, err := decodeStreamAt(dec.dict, payload, dec.pos-int64(len(payload)), dec.depth+1)
		if err != nil {
			return nil, err
		}
		return []Arg{ArgStream{Stream: inner}}, nil
	}
	return nil, CorruptStreamError(offset, "atom %s: unhandled value type %s", def.Name, def.Type)
}

// decodeBitSet decomposes a bitset word into its symbolic members in
// ascending code order, with any residual bits kept as a trailing number.
func decodeBitSet(table dictionary.EnumTable, value uint16) Arg {
	if value == 0 || table == nil {
		return ArgNumber{Value: uint32(value)}
	}
	type entry struct {
		name string
		code uint16
	}
	entries := make([]entry, 0, len(table))
	for name, code := range table {
		entries = append(entries, entry{name, code})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].code < entries[j].code })

	var parts []Arg
	residue := value
	for _, e := range entries {
		if e.code != 0 && value&e.code == e.code {
			parts = append(parts, ArgIdent{Name: e.name})
			residue &^= e.code
		}
	}
	if residue != 0 || len(parts) == 0 {
		parts = append(parts, ArgNumber{Value: uint32(residue)})
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return ArgPiped{Parts: parts}
}

// decodeList walks the payload against the definition's shape; the final
// shape entry repeats until the payload is exhausted.
func decodeList(offset int64, def *dictionary.AtomDef, payload []byte) ([]Arg, error) {
	shape := def.ListShape
	if len(shape) == 0 {
		return nil, CorruptStreamError(offset, "atom %s: list atom has no declared shape", def.Name)
	}
	var args []Arg
	pos := 0
	for i := 0; pos < len(payload); i++ {
		elemType := shape[min(i, len(shape)-1)]
		switch elemType {
		case dictionary.TypeByte:
			b := payload[pos]
			pos++
			if b >= 'A' && b <= 'Z' {
				args = append(args, ArgIdent{Name: string(rune(b))})
			} else {
				args = append(args, ArgNumber{Value: uint32(b)})
			}
		case dictionary.TypeWord:
			if pos+2 > len(payload) {
				return nil, CorruptStreamError(offset, "atom %s: trailing bytes in list payload", def.Name)
			}
			args = append(args, ArgNumber{Value: uint32(binary.BigEndian.Uint16(payload[pos:]))})
			pos += 2
		case dictionary.TypeDWord:
			if pos+4 > len(payload) {
				return nil, CorruptStreamError(offset, "atom %s: trailing bytes in list payload", def.Name)
			}
			args = append(args, ArgNumber{Value: binary.BigEndian.Uint32(payload[pos:])})
			pos += 4
		case dictionary.TypeString:
			// a string element consumes the rest of the payload
			args = append(args, ArgString{Value: string(payload[pos:])})
			pos = len(payload)
		default:
			return nil, CorruptStreamError(offset, "atom %s: unsupported list element type %s", def.Name, elemType)
		}
	}
	return args, nil
}
