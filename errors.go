package atomforge

import "fmt"

/*
===============================================================================
    Error Types
===============================================================================
*/

// LexError is an error indicating that the source text could not be
// tokenised. It carries the 1-based line and column of the offence.
type LexError struct {
	error
	Line   int
	Column int
}

// ParseError is an error raised while assembling atoms from tokens:
// unknown atom names, enum symbols or argument shape mismatches.
type ParseError struct {
	error
	Line int
}

// EncodeError is an error raised while serialising a stream to bytes.
type EncodeError struct {
	error
	AtomName string
}

// CorruptStream is an error indicating that a binary stream could not be
// decoded. Offset is the absolute byte position of the failure: the
// start of the failing record, or the cursor position where a read ran
// past the end of the buffer.
type CorruptStream struct {
	error
	Offset int64
}

// LexErrorf raises a `LexError` at the given position
func LexErrorf(line, column int, format string, a ...interface{}) *LexError {
	return &LexError{
		error:  fmt.Errorf("line %d:%d: %s", line, column, fmt.Sprintf(format, a...)),
		Line:   line,
		Column: column,
	}
}

// ParseErrorf raises a `ParseError` at the given line
func ParseErrorf(line int, format string, a ...interface{}) *ParseError {
	return &ParseError{
		error: fmt.Errorf("line %d: %s", line, fmt.Sprintf(format, a...)),
		Line:  line,
	}
}

// EncodeErrorf raises an `EncodeError` for the named atom
func EncodeErrorf(atomName string, format string, a ...interface{}) *EncodeError {
	return &EncodeError{
		error:    fmt.Errorf("atom %s: %s", atomName, fmt.Sprintf(format, a...)),
		AtomName: atomName,
	}
}

// CorruptStreamError raises a `CorruptStream` error at the given offset
func CorruptStreamError(offset int64, format string, a ...interface{}) *CorruptStream {
	return &CorruptStream{
		error:  fmt.Errorf("offset %d: %s", offset, fmt.Sprintf(format, a...)),
		Offset: offset,
	}
}
