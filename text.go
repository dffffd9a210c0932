package atomforge

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/iconidentify/atomforge/dictionary"
)

/*
===============================================================================
    Formatter
===============================================================================
*/

// Formatter prints a stream back to FDO source text in the legacy
// decompiler convention: one atom per line, indentation driven by the
// dictionary flags, nested streams spanning multiple lines.
type Formatter struct{}

// NewFormatter returns a Formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

// Format renders the stream as source text. The output is canonical: it
// reparses and recompiles to the same bytes the stream encodes to.
func (f *Formatter) Format(s *Stream) string {
	var sb strings.Builder
	writeStream(&sb, s, 0)
	return sb.String()
}

func writeStream(sb *strings.Builder, s *Stream, level int) {
	for _, atom := range s.Atoms {
		if atom.HasFlag(dictionary.FlagOutdent) && level > 0 {
			level--
		}
		if atom.HasFlag(dictionary.FlagIndent) {
			level++
		}
		writeAtomLine(sb, atom, level)
		if atom.HasFlag(dictionary.FlagIndentNext) {
			level++
		}
	}
}

func writeAtomLine(sb *strings.Builder, atom *Atom, level int) {
	indent := strings.Repeat("\t", level)

	// nested streams span multiple lines
	if inner, ok := nestedStream(atom); ok {
		sb.WriteString(indent)
		sb.WriteString(atom.Name)
		sb.WriteString(" <\n")
		writeStream(sb, inner, level+1)
		sb.WriteString(indent)
		sb.WriteString(">\n")
		return
	}

	sb.WriteString(indent)
	sb.WriteString(atom.Name)
	if len(atom.Args) > 0 {
		sb.WriteString(" <")
		sb.WriteString(formatArgs(atom))
		sb.WriteString(">")
	}
	sb.WriteString("\n")
}

func nestedStream(atom *Atom) (*Stream, bool) {
	if len(atom.Args) != 1 {
		return nil, false
	}
	arg, ok := atom.Args[0].(ArgStream)
	if !ok {
		return nil, false
	}
	return arg.Stream, true
}

func formatArgs(atom *Atom) string {
	// the letter+string form prints with a tight comma: <B,"text">
	if isLetterStringList(atom) {
		letter := atom.Args[0].(ArgIdent)
		str := atom.Args[1].(ArgString)
		return letter.Name + "," + quoteString(str.Value)
	}
	parts := make([]string, len(atom.Args))
	for i, arg := range atom.Args {
		parts[i] = formatArg(arg)
	}
	return strings.Join(parts, ", ")
}

func isLetterStringList(atom *Atom) bool {
	if atom.Def == nil || atom.Def.Type != dictionary.TypeList || len(atom.Args) != 2 {
		return false
	}
	letter, ok := atom.Args[0].(ArgIdent)
	if !ok || len(letter.Name) != 1 || letter.Name[0] < 'A' || letter.Name[0] > 'Z' {
		return false
	}
	_, ok = atom.Args[1].(ArgString)
	return ok
}

func formatArg(arg Arg) string {
	switch a := arg.(type) {
	case ArgString:
		return quoteString(a.Value)
	case ArgNumber:
		return fmt.Sprintf("%d", a.Value)
	case ArgHex:
		return "0x" + hex.EncodeToString(a.Data)
	case ArgGid:
		return fmt.Sprintf("%d-%d", a.Hi, a.Lo)
	case ArgIdent:
		return a.Name
	case ArgPiped:
		parts := make([]string, len(a.Parts))
		for i, part := range a.Parts {
			parts[i] = formatArg(part)
		}
		return strings.Join(parts, " | ")
	case ArgObject:
		class := a.Class
		if class == "" {
			class = fmt.Sprintf("%d", a.ClassCode)
		}
		return class + ", " + quoteString(a.Title)
	}
	return fmt.Sprintf("%v", arg)
}

// quoteString re-escapes a string value for source text. Only the five
// legacy escapes are produced; all other bytes pass through literally.
func quoteString(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
