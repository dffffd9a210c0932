package atomforge

import (
	"fmt"
	"strings"

	"github.com/iconidentify/atomforge/dictionary"
)

/*
===============================================================================
    Stream Model
===============================================================================
*/

// Stream is an ordered sequence of atoms, either top-level or nested
// inside an ArgStream argument. Streams are immutable once produced by
// the parser or the decoder.
type Stream struct {
	Atoms []*Atom
}

// Atom is a single named FDO command with its arguments. Def is nil for
// atoms absent from the dictionary; Proto and Code always carry the wire
// identity.
type Atom struct {
	Name  string
	Def   *dictionary.AtomDef
	Proto uint8
	Code  uint8
	Args  []Arg
}

// HasFlag reports whether the atom's definition carries the given flag.
// Unknown atoms carry no flags.
func (a *Atom) HasFlag(f dictionary.Flag) bool {
	return a.Def != nil && a.Def.HasFlag(f)
}

// Arg is one argument of an atom. The concrete types below mirror the
// argument variants of the FDO text grammar.
type Arg interface {
	isArg()
}

// ArgString is a double-quoted string argument.
type ArgString struct {
	Value string
}

// ArgNumber is an integer argument (decimal or hex literal in text form).
type ArgNumber struct {
	Value uint32
}

// ArgHex is a raw byte payload written as a hex literal. Produced by the
// decoder's unknown-atom fallback and accepted for raw data atoms.
type ArgHex struct {
	Data []byte
}

// ArgGid is a global identifier, canonically two words "hi-lo".
type ArgGid struct {
	Hi uint16
	Lo uint16
}

// ArgIdent is a symbolic identifier resolved against an enum table at
// encode time.
type ArgIdent struct {
	Name string
}

// ArgPiped is an ordered group of values OR-ed together with '|'.
// Comma-separated list elements have no wrapper of their own: they sit
// directly in the atom's Args, one entry per element.
type ArgPiped struct {
	Parts []Arg
}

// ArgObject is an object-type argument: a class identifier plus a title
// string. Class is empty when only the numeric code is known.
type ArgObject struct {
	Class     string
	ClassCode uint16
	Title     string
}

// ArgStream is a nested stream argument.
type ArgStream struct {
	Stream *Stream
}

func (ArgString) isArg() {}
func (ArgNumber) isArg() {}
func (ArgHex) isArg()    {}
func (ArgGid) isArg()    {}
func (ArgIdent) isArg()  {}
func (ArgPiped) isArg()  {}
func (ArgObject) isArg() {}
func (ArgStream) isArg() {}

// String renders the atom on one line for diagnostics. The Formatter, not
// this method, produces canonical decompiler output.
func (a *Atom) String() string {
	if len(a.Args) == 0 {
		return a.Name
	}
	parts := make([]string, len(a.Args))
	for i, arg := range a.Args {
		parts[i] = fmt.Sprintf("%v", arg)
	}
	return fmt.Sprintf("%s <%s>", a.Name, strings.Join(parts, ", "))
}

// MarshalBinary encodes the stream to the FDO wire format. Definitions
// are bound into the atoms at parse or decode time, so no dictionary is
// required here.
func (s *Stream) MarshalBinary() ([]byte, error) {
	return encodeStream(s)
}
