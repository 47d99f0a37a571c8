// Command ufmt formats its arguments according to a template, like printf(1)
// but with the ufmt verb set.
//
//	ufmt [flags] FORMAT [ARG...]
//	ufmt [flags] -template NAME [KEY=VALUE...]
//	ufmt [flags] -i
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/peterh/liner"

	"github.com/bjaus/ufmt"
)

const (
	appName     = "ufmt"
	historyFile = ".ufmt_history"
	prompt      = "ufmt> "
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	config      string
	noFloat     bool
	locale      string
	template    string
	interactive bool
	verbose     bool
}

func run(argv []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	var o options
	fs.StringVar(&o.config, "config", "", "YAML or JSON configuration `file`")
	fs.BoolVar(&o.noFloat, "nofloat", false, "disable %f and %F")
	fs.StringVar(&o.locale, "locale", "", "take the decimal point from the first byte of `locale`")
	fs.StringVar(&o.template, "template", "", "expand the configured template `name` with KEY=VALUE arguments")
	fs.BoolVar(&o.interactive, "i", false, "read FORMAT ARG... lines interactively")
	fs.BoolVar(&o.verbose, "v", false, "log debug events to stderr")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: %s [flags] FORMAT [ARG...]\n", appName)
		fs.PrintDefaults()
	}
	if err := fs.Parse(argv); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, p, err := setup(o, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		return 1
	}

	switch {
	case o.interactive:
		return runInteractive(p, stdout, stderr)
	case o.template != "":
		return runTemplate(cfg.TemplateSet(), o.template, fs.Args(), stdout, stderr)
	case fs.NArg() == 0:
		fs.Usage()
		return 2
	}
	return runFormat(p, fs.Arg(0), fs.Args()[1:], stdout, stderr)
}

func setup(o options, stderr io.Writer) (ufmt.Config, *ufmt.Printer, error) {
	var cfg ufmt.Config
	if o.config != "" {
		var err error
		if cfg, err = ufmt.LoadConfig(o.config); err != nil {
			return cfg, nil, err
		}
	}
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	opts := append([]ufmt.Option{ufmt.WithLogger(logger)}, cfg.Options()...)
	if o.locale != "" {
		opts = append(opts, ufmt.WithLocale(o.locale))
	}
	if o.noFloat {
		opts = append(opts, ufmt.WithFloatSupport(false))
	}
	p := ufmt.New(opts...)
	if err := p.RegisterHandler('b', ufmt.BinaryHandler{}); err != nil {
		return cfg, nil, err
	}
	if err := p.RegisterHandler('U', ufmt.UUIDHandler{}); err != nil {
		return cfg, nil, err
	}
	return cfg, p, nil
}

func runFormat(p *ufmt.Printer, format string, raw []string, stdout, stderr io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			var argErr *ufmt.ArgError
			if err, ok := r.(error); ok && errors.As(err, &argErr) {
				fmt.Fprintf(stderr, "%s: %v\n", appName, argErr)
				code = 1
				return
			}
			panic(r)
		}
	}()
	if _, err := p.Fprintf(stdout, unescape(format), parseArgs(raw)...); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		return 1
	}
	return 0
}

func runTemplate(ts *ufmt.TemplateSet, name string, raw []string, stdout, stderr io.Writer) int {
	vars := make(map[string]string, len(raw))
	for _, kv := range raw {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			fmt.Fprintf(stderr, "%s: template argument %q is not KEY=VALUE\n", appName, kv)
			return 2
		}
		vars[k] = v
	}
	sink := ufmt.NewWriterSink(stdout)
	if _, err := ts.Execute(sink, name, vars); err != nil {
		fmt.Fprintf(stderr, "\n%s: %v\n", appName, err)
		return 1
	}
	if err := sink.Err(); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		return 1
	}
	return 0
}

func runInteractive(p *ufmt.Printer, stdout, stderr io.Writer) int {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(stdout)
			break
		}
		if err != nil {
			// Ctrl+C drops the current line.
			continue
		}
		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case ":quit", ":exit":
			return saveHistory(ln, histPath)
		}
		fields, err := splitLine(line)
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", appName, err)
			continue
		}
		runFormat(p, fields[0], fields[1:], stdout, stderr)
		fmt.Fprintln(stdout)
		ln.AppendHistory(line)
	}
	return saveHistory(ln, histPath)
}

func saveHistory(ln *liner.State, path string) int {
	if f, err := os.Create(path); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}
	return 0
}

// splitLine breaks an interactive line into whitespace-separated fields.
// Fields in double quotes may contain spaces and Go escape sequences.
func splitLine(line string) ([]string, error) {
	var fields []string
	for {
		line = strings.TrimLeft(line, " \t")
		if line == "" {
			break
		}
		if line[0] == '"' {
			q, err := strconv.QuotedPrefix(line)
			if err != nil {
				return nil, fmt.Errorf("unterminated quote in %q", line)
			}
			s, _ := strconv.Unquote(q)
			fields = append(fields, s)
			line = line[len(q):]
			continue
		}
		end := strings.IndexAny(line, " \t")
		if end < 0 {
			end = len(line)
		}
		fields = append(fields, line[:end])
		line = line[end:]
	}
	if len(fields) == 0 {
		return nil, errors.New("empty line")
	}
	return fields, nil
}

// unescape interprets Go escape sequences such as \n and \t in s. Text that
// does not form valid escapes is returned unchanged.
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	q := `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
	if u, err := strconv.Unquote(q); err == nil {
		return u
	}
	return s
}

// parseArgs types each command-line argument: integers, then floats, then
// UUIDs, otherwise strings.
func parseArgs(raw []string) []any {
	vals := make([]any, len(raw))
	for i, s := range raw {
		vals[i] = parseArg(s)
	}
	return vals
}

func parseArg(s string) any {
	if n, err := strconv.ParseInt(s, 0, 64); err == nil {
		return n
	}
	if n, err := strconv.ParseUint(s, 0, 64); err == nil {
		return n
	}
	// ParseFloat also accepts words like "inf"; only digits make a float here.
	if strings.ContainsAny(s, "0123456789") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	if id, err := uuid.Parse(s); err == nil && len(s) == 36 {
		return id
	}
	return s
}
