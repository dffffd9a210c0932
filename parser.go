package atomforge

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/iconidentify/atomforge/dictionary"
)

/*
===============================================================================
    Parser
===============================================================================
*/

// The parser is schema-directed recursive descent: an atom's name is
// resolved against the dictionary *before* its argument block is read,
// and the definition's value type selects the argument grammar. Without
// this the grammar is ambiguous (compare `ind_group, "Title"` with
// `50, 4, 512`).

type parser struct {
	dict   *dictionary.Dictionary
	tokens []token
	pos    int
}

// parseSource tokenises and parses a complete FDO source text.
func parseSource(dict *dictionary.Dictionary, source string) (*Stream, error) {
	tokens, lexErr := lexSource(source)
	if lexErr != nil {
		return nil, lexErr
	}
	p := &parser{dict: dict, tokens: tokens}
	stream, err := p.parseStream(false)
	if err != nil {
		return nil, err
	}
	if p.cur().kind != tknEOF {
		return nil, ParseErrorf(p.cur().line, "unexpected token %s after stream", p.cur().kind)
	}
	return stream, nil
}

func (p *parser) cur() token {
	return p.tokens[p.pos]
}

func (p *parser) advance() token {
	tk := p.tokens[p.pos]
	if tk.kind != tknEOF {
		p.pos++
	}
	return tk
}

func (p *parser) skipNewlines() {
	for p.cur().kind == tknNewline {
		p.advance()
	}
}

// parseStream reads atoms until EOF, or until '>' when nested.
func (p *parser) parseStream(nested bool) (*Stream, error) {
	stream := &Stream{}
	for {
		p.skipNewlines()
		tk := p.cur()
		switch tk.kind {
		case tknEOF:
			if nested {
				return nil, ParseErrorf(tk.line, "unterminated nested stream")
			}
			return stream, nil
		case tknGT:
			if nested {
				return stream, nil
			}
			return nil, ParseErrorf(tk.line, "unexpected '>' outside nested stream")
		case tknIdent:
			atom, err := p.parseAtom()
			if err != nil {
				return nil, err
			}
			stream.Atoms = append(stream.Atoms, atom)
		default:
			return nil, ParseErrorf(tk.line, "expecting atom name, got %s", tk.kind)
		}
	}
}

func (p *parser) parseAtom() (*Atom, error) {
	name := p.advance()
	atom := &Atom{Name: name.value}

	def, known := p.dict.ByName(name.value)
	if known {
		atom.Def = def
		atom.Proto = def.Proto
		atom.Code = def.Code
	} else {
		proto, code, synthetic := dictionary.ParseSyntheticName(name.value)
		if !synthetic {
			return nil, ParseErrorf(name.line, "unknown atom %q", name.value)
		}
		atom.Proto = proto
		atom.Code = code
	}

	if p.cur().kind != tknLT {
		return atom, p.requireLineEnd(name.line)
	}
	p.advance() // consume '<'

	if !known {
		return atom, p.parseUnknownBlock(atom)
	}

	var err error
	switch def.Type {
	case dictionary.TypeNone:
		// canonical form is the bare name; an empty block is tolerated
	case dictionary.TypeStream:
		err = p.parseNestedStream(atom)
	case dictionary.TypeObjectType:
		err = p.parseObjectType(atom, def)
	case dictionary.TypeList:
		err = p.parseList(atom, def)
	case dictionary.TypeString:
		err = p.parseStringArg(atom)
	case dictionary.TypeRaw:
		err = p.parseRawArg(atom)
	case dictionary.TypeGid:
		err = p.parseGidArg(atom)
	default: // byte, word, dword, enum, bitset
		err = p.parseValueArg(atom, def)
	}
	if err != nil {
		return nil, err
	}

	if tk := p.advance(); tk.kind != tknGT {
		return nil, ParseErrorf(tk.line, "atom %s: expecting '>', got %s", atom.Name, tk.kind)
	}
	return atom, p.requireLineEnd(name.line)
}

// requireLineEnd enforces the one-atom-per-line rule. The terminating
// newline (or '>' of an enclosing nested stream) is left unconsumed.
func (p *parser) requireLineEnd(line int) error {
	switch p.cur().kind {
	case tknNewline, tknEOF, tknGT:
		return nil
	}
	return ParseErrorf(line, "unexpected token %s after atom", p.cur().kind)
}

// parseUnknownBlock reads the single hex payload of a synthetic
// proto<N>_atom<M> form, mirroring the decoder fallback.
func (p *parser) parseUnknownBlock(atom *Atom) error {
	if p.cur().kind == tknHex {
		tk := p.advance()
		data, err := hexBytes(tk.value)
		if err != nil {
			return ParseErrorf(tk.line, "atom %s: %v", atom.Name, err)
		}
		atom.Args = append(atom.Args, ArgHex{Data: data})
	}
	if tk := p.advance(); tk.kind != tknGT {
		return ParseErrorf(tk.line, "atom %s: expecting '>', got %s", atom.Name, tk.kind)
	}
	return p.requireLineEnd(p.cur().line)
}

func (p *parser) parseNestedStream(atom *Atom) error {
	if p.cur().kind != tknNewline {
		return ParseErrorf(p.cur().line, "atom %s: nested stream must start on a new line", atom.Name)
	}
	inner, err := p.parseStream(true)
	if err != nil {
		return err
	}
	atom.Args = append(atom.Args, ArgStream{Stream: inner})
	return nil
}

func (p *parser) parseObjectType(atom *Atom, def *dictionary.AtomDef) error {
	obj := ArgObject{}
	switch tk := p.advance(); tk.kind {
	case tknIdent:
		code, ok := def.Enum[tk.value]
		if !ok {
			return ParseErrorf(tk.line, "atom %s: unknown object class %q", atom.Name, tk.value)
		}
		obj.Class = tk.value
		obj.ClassCode = code
	case tknNumber:
		n, err := parseNumeric(tk.value, 16)
		if err != nil {
			return ParseErrorf(tk.line, "atom %s: %v", atom.Name, err)
		}
		obj.ClassCode = uint16(n)
		if name, ok := def.Enum.NameFor(obj.ClassCode); ok {
			obj.Class = name
		}
	default:
		return ParseErrorf(tk.line, "atom %s: expecting object class, got %s", atom.Name, tk.kind)
	}
	if p.cur().kind == tknComma {
		p.advance()
		tk := p.advance()
		if tk.kind != tknString {
			return ParseErrorf(tk.line, "atom %s: object title must be a string, got %s", atom.Name, tk.kind)
		}
		obj.Title = tk.value
	}
	atom.Args = append(atom.Args, obj)
	return nil
}

func (p *parser) parseList(atom *Atom, def *dictionary.AtomDef) error {
	for {
		tk := p.advance()
		var item Arg
		switch tk.kind {
		case tknIdent:
			item = ArgIdent{Name: tk.value}
		case tknNumber, tknHex:
			n, err := parseNumeric(tk.value, 32)
			if err != nil {
				return ParseErrorf(tk.line, "atom %s: %v", atom.Name, err)
			}
			item = ArgNumber{Value: uint32(n)}
		case tknString:
			item = ArgString{Value: tk.value}
		default:
			return ParseErrorf(tk.line, "atom %s: bad list element %s", atom.Name, tk.kind)
		}
		atom.Args = append(atom.Args, item)
		if p.cur().kind != tknComma {
			return nil
		}
		p.advance()
	}
}

func (p *parser) parseStringArg(atom *Atom) error {
	tk := p.advance()
	if tk.kind != tknString {
		return ParseErrorf(tk.line, "atom %s: expecting string, got %s", atom.Name, tk.kind)
	}
	atom.Args = append(atom.Args, ArgString{Value: tk.value})
	return nil
}

func (p *parser) parseRawArg(atom *Atom) error {
	tk := p.advance()
	if tk.kind != tknHex {
		return ParseErrorf(tk.line, "atom %s: expecting hex literal, got %s", atom.Name, tk.kind)
	}
	data, err := hexBytes(tk.value)
	if err != nil {
		return ParseErrorf(tk.line, "atom %s: %v", atom.Name, err)
	}
	atom.Args = append(atom.Args, ArgHex{Data: data})
	return nil
}

func (p *parser) parseGidArg(atom *Atom) error {
	tk := p.advance()
	switch tk.kind {
	case tknGid:
		gid, err := parseGidLiteral(tk.value)
		if err != nil {
			return ParseErrorf(tk.line, "atom %s: %v", atom.Name, err)
		}
		atom.Args = append(atom.Args, gid)
	case tknNumber, tknHex:
		n, err := parseNumeric(tk.value, 32)
		if err != nil {
			return ParseErrorf(tk.line, "atom %s: %v", atom.Name, err)
		}
		atom.Args = append(atom.Args, ArgGid{Hi: uint16(n >> 16), Lo: uint16(n)})
	default:
		return ParseErrorf(tk.line, "atom %s: expecting gid, got %s", atom.Name, tk.kind)
	}
	return nil
}

// parseValueArg handles the numeric value types: byte, word, dword, enum
// and bitset. Pipes build an ArgPiped whose parts are OR-ed at encode
// time; symbolic names are resolved against the enum table here so that
// unknown symbols fail at parse time.
func (p *parser) parseValueArg(atom *Atom, def *dictionary.AtomDef) error {
	var parts []Arg
	for {
		tk := p.advance()
		switch tk.kind {
		case tknIdent:
			if def.Enum == nil {
				return ParseErrorf(tk.line, "atom %s: unexpected identifier %q", atom.Name, tk.value)
			}
			if _, ok := def.Enum[tk.value]; !ok {
				return ParseErrorf(tk.line, "atom %s: unknown enum value %q", atom.Name, tk.value)
			}
			parts = append(parts, ArgIdent{Name: tk.value})
		case tknNumber, tknHex:
			n, err := parseNumeric(tk.value, 32)
			if err != nil {
				return ParseErrorf(tk.line, "atom %s: %v", atom.Name, err)
			}
			parts = append(parts, ArgNumber{Value: uint32(n)})
		default:
			return ParseErrorf(tk.line, "atom %s: expecting value, got %s", atom.Name, tk.kind)
		}
		if p.cur().kind != tknPipe {
			break
		}
		p.advance()
	}
	if len(parts) == 1 {
		atom.Args = append(atom.Args, parts[0])
	} else {
		atom.Args = append(atom.Args, ArgPiped{Parts: parts})
	}
	return nil
}

/*
===============================================================================
    Literal Helpers
===============================================================================
*/

// parseNumeric converts a decimal or hex literal to an unsigned value of
// the given bit width.
func parseNumeric(s string, bits int) (uint64, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return strconv.ParseUint(s[2:], 16, bits)
	}
	if strings.HasPrefix(s, "$") {
		return strconv.ParseUint(s[1:], 16, bits)
	}
	return strconv.ParseUint(s, 10, bits)
}

// hexBytes converts a 0x / $ hex literal to its raw bytes. An odd-length
// literal gets a leading zero nibble.
func hexBytes(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X"), "$")
	if len(s)%2 == 1 {
		s = "0" + s
	}
	return hex.DecodeString(s)
}

// parseGidLiteral converts a dash-joined gid to its canonical two-word
// form: "hi-lo" directly, "a-b-c" as byte,byte,word.
func parseGidLiteral(s string) (ArgGid, error) {
	groups := strings.Split(s, "-")
	switch len(groups) {
	case 2:
		hi, err := strconv.ParseUint(groups[0], 10, 16)
		if err != nil {
			return ArgGid{}, err
		}
		lo, err := strconv.ParseUint(groups[1], 10, 16)
		if err != nil {
			return ArgGid{}, err
		}
		return ArgGid{Hi: uint16(hi), Lo: uint16(lo)}, nil
	case 3:
		a, err := strconv.ParseUint(groups[0], 10, 8)
		if err != nil {
			return ArgGid{}, err
		}
		b, err := strconv.ParseUint(groups[1], 10, 8)
		if err != nil {
			return ArgGid{}, err
		}
		c, err := strconv.ParseUint(groups[2], 10, 16)
		if err != nil {
			return ArgGid{}, err
		}
		return ArgGid{Hi: uint16(a)<<8 | uint16(b), Lo: uint16(c)}, nil
	default:
		return ArgGid{}, strconv.ErrSyntax
	}
}
