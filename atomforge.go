// Package atomforge provides a bidirectional codec for FDO form
// description streams: compiling the legacy textual language to its
// tag-length-value binary wire format and decompiling the binary form
// back to source text.
//
// The codec is driven by an atom dictionary (see the dictionary
// package); the dictionary is read-only and may be shared freely, while
// Compiler, Decompiler and Formatter values hold only per-operation
// state and should be used from one goroutine at a time.
package atomforge

import (
	"github.com/iconidentify/atomforge/dictionary"
)

// AtomForgeVersion equals the current (or aimed for) version of the software.
const AtomForgeVersion = "0.1"

/*
===============================================================================
    Compiler
===============================================================================
*/

// Compiler turns FDO source text into the binary wire format.
type Compiler struct {
	dict *dictionary.Dictionary
}

// NewCompiler returns a Compiler bound to the given dictionary.
func NewCompiler(dict *dictionary.Dictionary) *Compiler {
	return &Compiler{dict: dict}
}

// Compile parses source and encodes the resulting stream, reproducing
// the legacy compiler's output byte for byte.
func (c *Compiler) Compile(source string) ([]byte, error) {
	stream, err := c.Parse(source)
	if err != nil {
		return nil, err
	}
	return stream.MarshalBinary()
}

// Parse parses source into the typed stream model without encoding it.
func (c *Compiler) Parse(source string) (*Stream, error) {
	return parseSource(c.dict, source)
}

/*
===============================================================================
    Decompiler
===============================================================================
*/

// Decompiler turns binary FDO streams back into source text.
type Decompiler struct {
	dict      *dictionary.Dictionary
	formatter *Formatter
}

// NewDecompiler returns a Decompiler bound to the given dictionary.
func NewDecompiler(dict *dictionary.Dictionary) *Decompiler {
	return &Decompiler{dict: dict, formatter: NewFormatter()}
}

// Decompile decodes data and renders it as canonical source text.
// Unknown (protocol, atom) pairs decompile to the synthetic
// proto<N>_atom<M> form unless StrictMode is set.
func (d *Decompiler) Decompile(data []byte) (string, error) {
	stream, err := DecodeStream(d.dict, data)
	if err != nil {
		return "", err
	}
	return d.formatter.Format(stream), nil
}
