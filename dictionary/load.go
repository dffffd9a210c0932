package dictionary

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

/*
===============================================================================
    Dictionary Resource Loader
===============================================================================
*/

// Load parses a dictionary resource and returns the resulting Dictionary.
//
// The resource holds one atom per line:
//
//	name proto code type [flags] [enum=name:val,name:val] [shape=type,type]
//
// with '#' introducing comments. Flags are a comma-joined subset of
// "indent", "outdent", "indent_next". This is the serialized form emitted
// by the table generator, allowing dictionary revisions to ship
// independently of the codec.
func Load(r io.Reader) (*Dictionary, error) {
	var defs []*AtomDef
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		def, err := parseDefLine(fields)
		if err != nil {
			return nil, errors.Wrapf(err, "dictionary resource line %d", lineNo)
		}
		defs = append(defs, def)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading dictionary resource")
	}
	d, err := New(defs)
	return d, errors.Wrap(err, "building dictionary")
}

func parseDefLine(fields []string) (*AtomDef, error) {
	if len(fields) < 4 {
		return nil, errors.Errorf("want at least 4 fields, got %d", len(fields))
	}
	def := &AtomDef{Name: fields[0]}

	proto, err := strconv.ParseUint(fields[1], 10, 8)
	if err != nil || proto > 31 {
		return nil, errors.Errorf("bad protocol %q", fields[1])
	}
	def.Proto = uint8(proto)

	code, err := strconv.ParseUint(fields[2], 10, 8)
	if err != nil {
		return nil, errors.Errorf("bad atom code %q", fields[2])
	}
	def.Code = uint8(code)

	typ, ok := ValueTypeFromString(fields[3])
	if !ok {
		return nil, errors.Errorf("unknown value type %q", fields[3])
	}
	def.Type = typ

	for _, field := range fields[4:] {
		switch {
		case strings.HasPrefix(field, "enum="):
			table, err := parseEnumField(strings.TrimPrefix(field, "enum="))
			if err != nil {
				return nil, err
			}
			def.Enum = table
		case strings.HasPrefix(field, "shape="):
			shape, err := parseShapeField(strings.TrimPrefix(field, "shape="))
			if err != nil {
				return nil, err
			}
			def.ListShape = shape
		default:
			flags, err := parseFlagsField(field)
			if err != nil {
				return nil, err
			}
			def.Flags |= flags
		}
	}
	return def, nil
}

func parseEnumField(s string) (EnumTable, error) {
	table := make(EnumTable)
	for _, pair := range strings.Split(s, ",") {
		name, valStr, found := strings.Cut(pair, ":")
		if !found {
			return nil, errors.Errorf("bad enum pair %q", pair)
		}
		val, err := strconv.ParseUint(valStr, 0, 16)
		if err != nil {
			return nil, errors.Errorf("bad enum value %q", valStr)
		}
		table[name] = uint16(val)
	}
	return table, nil
}

func parseShapeField(s string) ([]ValueType, error) {
	var shape []ValueType
	for _, name := range strings.Split(s, ",") {
		typ, ok := ValueTypeFromString(name)
		if !ok {
			return nil, errors.Errorf("unknown shape type %q", name)
		}
		shape = append(shape, typ)
	}
	return shape, nil
}

func parseFlagsField(s string) (Flag, error) {
	var flags Flag
	for _, name := range strings.Split(s, ",") {
		switch name {
		case "indent":
			flags |= FlagIndent
		case "outdent":
			flags |= FlagOutdent
		case "indent_next":
			flags |= FlagIndentNext
		default:
			return 0, errors.Errorf("unknown flag %q", name)
		}
	}
	return flags, nil
}
