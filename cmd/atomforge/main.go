package main

import (
	"os"
	"unicode/utf8"

	"github.com/teris-io/cli"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/charmap"

	"github.com/iconidentify/atomforge"
	"github.com/iconidentify/atomforge/dictionary"
)

/*
===============================================================================
    Util: Compile / Decompile FDO Streams
===============================================================================
*/

// toolLogger builds the logger for one command invocation, honouring the
// --json-log switch.
func toolLogger(options map[string]string) *zap.SugaredLogger {
	return atomforge.NewToolLogger(options["json-log"] == "true", os.Stderr)
}

// loadDictionary returns the built-in dictionary, or one loaded from the
// resource named by the --dict option.
func loadDictionary(options map[string]string) (*dictionary.Dictionary, error) {
	path, ok := options["dict"]
	if !ok {
		return dictionary.Builtin(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return dictionary.Load(f)
}

// sourceText reads an FDO source file, re-decoding it as ISO-8859-1 when
// it is not valid UTF-8.
func sourceText(logger *zap.SugaredLogger, path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if utf8.Valid(raw) {
		return string(raw), nil
	}
	logger.Warnf("%s is not valid UTF-8, decoding as ISO-8859-1", path)
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

func outputPath(options map[string]string, def string) string {
	if out, ok := options["output"]; ok {
		return out
	}
	return def
}

func compileHandler(args []string, options map[string]string) int {
	logger := toolLogger(options)
	dict, err := loadDictionary(options)
	if err != nil {
		logger.Errorf("loading dictionary: %v", err)
		return 1
	}
	source, err := sourceText(logger, args[0])
	if err != nil {
		logger.Errorf("reading input: %v", err)
		return 1
	}
	data, err := atomforge.NewCompiler(dict).Compile(source)
	if err != nil {
		logger.Errorf("compiling %s: %v", args[0], err)
		return 1
	}
	if err := os.WriteFile(outputPath(options, args[0]+".bin"), data, 0644); err != nil {
		logger.Errorf("writing output: %v", err)
		return 1
	}
	return 0
}

func decompileHandler(args []string, options map[string]string) int {
	logger := toolLogger(options)
	dict, err := loadDictionary(options)
	if err != nil {
		logger.Errorf("loading dictionary: %v", err)
		return 1
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		logger.Errorf("reading input: %v", err)
		return 1
	}
	text, err := atomforge.NewDecompiler(dict).Decompile(data)
	if err != nil {
		logger.Errorf("decompiling %s: %v", args[0], err)
		return 1
	}
	if err := os.WriteFile(outputPath(options, args[0]+".fdo"), []byte(text), 0644); err != nil {
		logger.Errorf("writing output: %v", err)
		return 1
	}
	return 0
}

var compileCmd = cli.NewCommand("compile", "compile FDO source text to a binary stream").
	WithArg(cli.NewArg("input", "the source (.fdo) file")).
	WithOption(cli.NewOption("output", "output path (defaults to <input>.bin)").WithChar('o')).
	WithOption(cli.NewOption("dict", "dictionary resource to use instead of the built-in table")).
	WithOption(cli.NewOption("json-log", "emit machine-readable JSON log output").WithType(cli.TypeBool)).
	WithAction(compileHandler)

var decompileCmd = cli.NewCommand("decompile", "decompile a binary stream to FDO source text").
	WithArg(cli.NewArg("input", "the binary (.bin) file")).
	WithOption(cli.NewOption("output", "output path (defaults to <input>.fdo)").WithChar('o')).
	WithOption(cli.NewOption("dict", "dictionary resource to use instead of the built-in table")).
	WithOption(cli.NewOption("json-log", "emit machine-readable JSON log output").WithType(cli.TypeBool)).
	WithAction(decompileHandler)

var app = cli.New("AtomForge FDO codec version " + atomforge.AtomForgeVersion).
	WithCommand(compileCmd).
	WithCommand(decompileCmd)

func main() {
	atomforge.GetConfig()
	os.Exit(app.Run(os.Args, os.Stdout))
}
