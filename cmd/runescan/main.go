package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/runedfa/dfa"
	"github.com/wippyai/runedfa/errors"
	"github.com/wippyai/runedfa/transcoder"
	"github.com/wippyai/runedfa/view"
)

func main() {
	var (
		file        = flag.String("file", "", "Path to input file (default: stdin)")
		variant     = flag.String("variant", "utf8", "Encoding variant: utf8, wtf8 or text")
		count       = flag.Bool("count", false, "Print the codepoint count")
		offsets     = flag.Bool("offsets", false, "Print a per-codepoint breakdown")
		utf16Out    = flag.String("utf16", "", "Transcode to UTF-16LE and write to this file")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive inspector with TUI")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		dfa.SetLogger(logger)
		transcoder.SetLogger(logger)
	}

	tables, ok := dfa.Variant(*variant)
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown variant %q (want utf8, wtf8 or text)\n", *variant)
		os.Exit(1)
	}

	if *interactive {
		if err := runInteractive(tables); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*file, tables, *count, *offsets, *utf16Out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var (
	okStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#90EE90"))
	badStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

// styled applies s only when stdout is a terminal, so piped output stays
// plain.
func styled(s lipgloss.Style, text string) string {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return text
	}
	return s.Render(text)
}

func run(file string, tables *dfa.Tables, count, offsets bool, utf16Out string) error {
	var data []byte
	var err error
	if file == "" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	dfa.Logger().Debug("input loaded",
		zap.Int("bytes", len(data)),
		zap.String("variant", tables.Name()))

	cursor := 0
	if !tables.ValidateCursor(data, &cursor) {
		fmt.Printf("%s %s\n",
			styled(badStyle, "malformed"),
			styled(dimStyle, fmt.Sprintf("(%s, first bad byte at offset %d)", tables.Name(), cursor)))
		return errors.Malformed(errors.PhaseValidate, cursor, data[cursor])
	}
	fmt.Printf("%s %s\n",
		styled(okStyle, "well-formed"),
		styled(dimStyle, fmt.Sprintf("(%s, %d bytes)", tables.Name(), len(data))))

	if count {
		n, err := tables.Count(data)
		if err != nil {
			return err
		}
		fmt.Printf("codepoints: %d\n", n)
	}

	if offsets {
		printOffsets(data, tables)
	}

	if utf16Out != "" {
		dst := make([]uint16, transcoder.RequiredUnits(len(data)))
		n, err := transcoder.New(tables).Transcode(dst, data)
		if err != nil {
			return err
		}
		out := transcoder.AppendBytesLE(make([]byte, 0, 2*n), dst[:n])
		if err := os.WriteFile(utf16Out, out, 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		fmt.Printf("wrote %d UTF-16LE units (%d bytes) to %s\n", n, len(out), utf16Out)
	}

	return nil
}

func printOffsets(data []byte, tables *dfa.Tables) {
	v := view.FromTrusted(data, tables) // validated above
	it := v.Iter()
	for {
		offset := it.Offset()
		raw, ok := it.NextBytes()
		if !ok {
			break
		}
		cp := []rune(string(raw))[0]
		if tables == dfa.WTF8 {
			// A lone surrogate round-trips through string() as U+FFFD;
			// re-decode directly.
			c := offset
			cp = tables.DecodeRuneAssumeValid(data, &c)
		}
		fmt.Printf("%6d  %-11s U+%04X  %s\n",
			offset,
			fmt.Sprintf("% X", raw),
			cp,
			styled(dimStyle, displayRune(cp)))
	}
}

// displayRune renders cp for terminal output, escaping what would mangle
// the table layout.
func displayRune(cp rune) string {
	switch {
	case cp == '\n':
		return `\n`
	case cp == '\r':
		return `\r`
	case cp == '\t':
		return `\t`
	case cp < 0x20 || cp == 0x7F:
		return fmt.Sprintf("\\x%02x", cp)
	case cp >= 0xD800 && cp <= 0xDFFF:
		return "(surrogate)"
	}
	return string(cp)
}
