package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/slytomcat/llog"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/carr"
	"pkt.systems/version"
)

const (
	toolName        = "carr"
	outputExtension = ".array"

	usageDescription = "carr takes a file and creates from it a C const char array " +
		"definition which can be compiled into a program. If the output file exists " +
		"it is overwritten."
)

func init() {
	version.SetDefaultModule("pkt.systems/carr")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var (
		name       string
		lineLength int
		outPath    string
		bare       bool
		debug      bool
	)

	flags := pflag.NewFlagSet(toolName, pflag.ContinueOnError)
	flags.StringVarP(&name, "name", "n", "", "Array name (default: input file base name without extension)")
	flags.IntVarP(&lineLength, "line-length", "l", carr.DefaultLineLength, "Length of each line in the output file")
	flags.StringVarP(&outPath, "output", "o", "", "Output file (default: input base name with extension "+outputExtension+"; use - for stdout)")
	flags.BoolVarP(&bare, "bare", "b", false, "Bare output without topping and tailing comment lines")
	flags.BoolVar(&debug, "debug", false, "Log transcoding details")
	flags.SetInterspersed(true)
	flags.SetOutput(stderr)
	flags.Usage = func() { printUsage(flags, stdout) }

	if err := flags.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		return 2
	}

	if debug {
		llog.SetPrefix(toolName)
		llog.SetFlags(log.Lmicroseconds)
		llog.SetLevel(llog.DEBUG)
	} else {
		llog.SetLevel(-1)
	}

	positional := flags.Args()
	if len(positional) != 1 {
		printUsage(flags, stdout)
		return 2
	}
	inputPath := positional[0]

	in, err := os.Open(inputPath)
	if err != nil {
		fmt.Fprintf(stderr, "open input: %v\n", err)
		return 1
	}
	defer func() { _ = in.Close() }()

	derived := deriveName(inputPath)
	if name == "" {
		name = derived
		if name == "" {
			fmt.Fprintf(stderr, "cannot derive an array name from %q; use -n\n", inputPath)
			return 2
		}
	}

	if min := carr.MinLineLength(name); lineLength < min {
		fmt.Fprintf(stdout, "Using line length %d as %d is less than the minimum required to print something.\n",
			min, lineLength)
		lineLength = min
	}

	if outPath == "" {
		if derived == "" {
			fmt.Fprintf(stderr, "cannot derive an output file name from %q; use -o\n", inputPath)
			return 2
		}
		outPath = derived + outputExtension
	}

	var out io.Writer = stdout
	var outFile *os.File
	if outPath != "-" {
		outFile, err = os.Create(outPath)
		if err != nil {
			fmt.Fprintf(stderr, "open output: %v\n", err)
			return 1
		}
		out = outFile
		suffix := "."
		if bare {
			suffix = " bare."
		}
		fmt.Fprintf(stdout, "Arrayifying file %q, naming array %q, using %d character lines and writing output to %q%s\n",
			inputPath, name, lineLength, outPath, suffix)
	}
	llog.Debugf("input=%q name=%q lineLength=%d output=%q bare=%v", inputPath, name, lineLength, outPath, bare)

	lines, err := carr.Transcode(carr.Request{
		Reader:     in,
		Writer:     out,
		Name:       name,
		LineLength: lineLength,
		Bare:       bare,
		SourceName: inputPath,
		ToolName:   toolName,
	})
	if err != nil {
		fmt.Fprintf(stderr, "transcode: %v\n", err)
		return 1
	}
	llog.Debugf("lines written: %d", lines)

	if outFile != nil {
		if err := outFile.Close(); err != nil {
			fmt.Fprintf(stderr, "close output: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "Done: %d line(s) written to file.\n", lines)
	}
	return 0
}

// deriveName returns the input file's base name with any leading dots
// skipped and everything from the first remaining dot stripped.
func deriveName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimLeft(base, ".")
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	return base
}

func printUsage(flags *pflag.FlagSet, w io.Writer) {
	width := terminalWidth(carr.DefaultLineLength)
	fmt.Fprintln(w, version.Module(), version.Current())
	fmt.Fprintln(w, wordwrap.String(usageDescription, width))
	fmt.Fprintf(w, "\nUsage: %s input_file [flags]\n\nFlags:\n", toolName)
	fmt.Fprint(w, flags.FlagUsagesWrapped(width))
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}
