package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/mdcat"
	"pkt.systems/version"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
	exitFatal   = 3
)

func init() {
	version.SetDefaultModule("pkt.systems/mdcat")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run processes every operand in order. The exit status is that of the last
// operand: earlier failures are reported but do not change it.
func run(args []string, stdout, stderr io.Writer) int {
	var (
		delay          time.Duration
		typewriterFlag string
		resetPerLine   bool
		bullet         string
		outPath        string
		debug          bool
		showVersion    bool
	)

	flags := pflag.NewFlagSet("mdcat", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.DurationVarP(&delay, "delay", "d", mdcat.DefaultTypewriterDelay, "Typewriter delay per character")
	flags.StringVarP(&typewriterFlag, "typewriter", "T", "auto", "Typewriter effect: auto|on|off")
	flags.BoolVarP(&resetPerLine, "reset-per-line", "r", false, "Close open formats at the end of every line")
	flags.StringVar(&bullet, "bullet", "", "List bullet glyph (default \"•\")")
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVar(&debug, "debug", false, "Trace per-file progress to stderr")
	flags.BoolVarP(&showVersion, "version", "V", false, "Print version and exit")
	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintln(stderr, "Usage: mdcat [flags] FILE [FILE...]")
		fmt.Fprintln(stderr, "\nFILE may be a path, a file:// URL or an http(s):// URL.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	if showVersion {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return exitOK
	}

	operands := flags.Args()
	if len(operands) == 0 {
		fmt.Fprintln(stderr, "mdcat: missing file operand.")
		flags.Usage()
		return exitFailure
	}

	writer, closeOut, err := resolveOutput(outPath, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "mdcat: open output: %v\n", err)
		return exitFailure
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	typewriter, err := resolveTypewriter(typewriterFlag, writer)
	if err != nil {
		fmt.Fprintf(stderr, "mdcat: invalid --typewriter %q: %v\n", typewriterFlag, err)
		return exitUsage
	}
	var out io.Writer
	if typewriter && delay > 0 {
		out = mdcat.NewTypewriter(writer, delay)
	} else {
		bw := bufio.NewWriter(writer)
		defer func() { _ = bw.Flush() }()
		out = bw
	}

	logger := log.New(io.Discard, "mdcat: debug: ", 0)
	if debug {
		logger.SetOutput(stderr)
	}

	opts := []mdcat.RenderOption{
		mdcat.WithResetPerLine(resetPerLine),
		mdcat.WithBullet(bullet),
	}
	status := exitOK
	for _, raw := range operands {
		src := makeInputSource(raw)
		logger.Printf("%s: rendering", src.name)
		err := src.render(out, opts)
		var contractErr *mdcat.ContractError
		switch {
		case err == nil:
			status = exitOK
		case errors.As(err, &contractErr):
			fmt.Fprintf(stderr, "mdcat: fatal: %s: %v\n", src.name, err)
			return exitFatal
		default:
			fmt.Fprintf(stderr, "mdcat: %v\n", err)
			status = exitFailure
		}
		logger.Printf("%s: status %d", src.name, status)
	}
	return status
}

func resolveTypewriter(mode string, w io.Writer) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return isTerminal(w), nil
	case "on", "true", "1", "yes":
		return true, nil
	case "off", "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("expected auto|on|off")
	}
}

type inputSource struct {
	name   string
	render func(w io.Writer, opts []mdcat.RenderOption) error
}

func makeInputSource(raw string) inputSource {
	u, err := url.Parse(raw)
	if err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return inputSource{name: raw, render: func(w io.Writer, opts []mdcat.RenderOption) error {
				return mdcat.HTTPRender(context.Background(), mdcat.HTTPRenderRequest{
					URL:     raw,
					Writer:  w,
					Options: opts,
				})
			}}
		case "file":
			path := u.Path
			if path == "" {
				path = u.Host
			}
			if unescaped, err := url.PathUnescape(path); err == nil {
				path = unescaped
			}
			return fileSource(path)
		}
	}
	return fileSource(raw)
}

func fileSource(path string) inputSource {
	path = normalizePath(path)
	return inputSource{name: path, render: func(w io.Writer, opts []mdcat.RenderOption) error {
		return mdcat.RenderFile(path, w, opts...)
	}}
}

func resolveOutput(path string, stdout io.Writer) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

// normalizePath expands a leading "~". Other paths are kept as given so
// diagnostics name the operand the user typed.
func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				return home
			}
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
