package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/pkg/errors"

	"github.com/zephyrtronium/symbolic"
)

// demo is the formula shown when there is no other input.
const demo = "(x + (2 * y))"

const historyFile = ".symbolic_history"

func main() {
	log.SetFlags(0)
	var (
		inname              string
		with                [][2]string
		interactive, greedy bool
	)
	cfg := config{verb: "%g", name: "x", simplify: true}
	addwith := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return errors.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		with = append(with, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&inname, "in", "", "input file with one formula per line, or - for stdin")
	flag.StringVar(&cfg.verb, "fmt", cfg.verb, "result formatting string")
	flag.Func("given", "name=value variable definition (any number of times)", addwith)
	flag.StringVar(&cfg.name, "d", cfg.name, "variable to differentiate by")
	flag.BoolVar(&cfg.simplify, "simplify", cfg.simplify, "also print the simplified derivative")
	flag.BoolVar(&cfg.echo, "echo", false, "print parse trees")
	flag.BoolVar(&greedy, "greedy", false, "lex every - as part of a number")
	flag.BoolVar(&interactive, "i", false, "read formulas interactively")
	flag.Parse()

	if greedy {
		cfg.opts = append(cfg.opts, symbolic.GreedyMinus())
	}
	cfg.ctx = symbolic.NewContext()
	for _, d := range with {
		if err := cfg.let(d[0], d[1]); err != nil {
			log.Fatal(err)
		}
	}

	if interactive {
		if err := repl(&cfg); err != nil {
			log.Fatal(err)
		}
		return
	}

	srcs := flag.Args()
	if inname != "" {
		lines, err := readlines(inname)
		if err != nil {
			log.Fatal(err)
		}
		srcs = append(srcs, lines...)
	}
	if len(srcs) == 0 {
		srcs = []string{demo}
	}
	for _, src := range srcs {
		if err := cfg.describe(os.Stdout, src); err != nil {
			log.Fatal(err)
		}
	}
}

// config is the command's view of its flags.
type config struct {
	// verb formats numeric results.
	verb string
	// name is the variable to differentiate by.
	name     string
	simplify bool
	echo     bool
	// bound is whether any variables have been defined, which enables
	// evaluation.
	bound bool
	opts  []symbolic.ParseOption
	ctx   *symbolic.Context
}

// let defines a variable. The value may itself be a formula without
// variables.
func (cfg *config) let(name, value string) error {
	if name == "" {
		return errors.Errorf("empty variable name in definition of %q", value)
	}
	r, err := symbolic.EvalString(value)
	if err != nil {
		return errors.Wrapf(err, "setting %s", name)
	}
	cfg.ctx.Set(name, r)
	cfg.bound = true
	return nil
}

// describe parses src and writes it, its derivative, and optionally the
// simplified derivative and their values. Only parse errors and write errors
// are returned; evaluation errors are written as results.
func (cfg *config) describe(w io.Writer, src string) error {
	e, err := symbolic.ParseString(src, cfg.opts...)
	if err != nil {
		return errors.Wrapf(err, "parsing %q", src)
	}
	b := bufio.NewWriter(w)
	if cfg.echo {
		fmt.Fprintf(b, "%+v : %#v\n", e, e)
	}
	fmt.Fprintf(b, "%v\n", e)
	cfg.value(b, e)
	d := e.Deriv(cfg.name)
	fmt.Fprintf(b, "d/d%s: %v\n", cfg.name, d)
	if cfg.simplify {
		s, err := d.Simplify()
		if err != nil {
			fmt.Fprintf(b, "simplified: %v\n", err)
		} else {
			fmt.Fprintf(b, "simplified: %v\n", s)
			cfg.value(b, s)
		}
	}
	return errors.Wrap(b.Flush(), "writing results")
}

func (cfg *config) value(w io.Writer, e *symbolic.Expr) {
	if !cfg.bound {
		return
	}
	r, err := cfg.ctx.Eval(e)
	if err != nil {
		fmt.Fprintf(w, "  = %v\n", err)
		return
	}
	fmt.Fprintf(w, "  = "+cfg.verb+"\n", r)
}

// readlines reads the non-empty lines of a file, or of stdin if name is -.
func readlines(name string) ([]string, error) {
	f := os.Stdin
	if name != "-" {
		in, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer in.Close()
		f = in
	}
	var lines []string
	s := bufio.NewScanner(f)
	for s.Scan() {
		if line := strings.TrimSpace(s.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, errors.Wrapf(s.Err(), "reading %s", name)
}

// repl reads formulas and commands from the terminal until EOF or :quit.
func repl(cfg *config) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)
	if f, err := os.Open(histPath); err == nil {
		ln.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}()

	for {
		line, err := ln.Prompt("> ")
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
				fmt.Println()
				return nil
			}
			return errors.Wrap(err, "reading input")
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)
		quit, err := cfg.command(os.Stdout, line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		if quit {
			return nil
		}
	}
}

// command handles one line of interactive input. Lines starting with : are
// commands; anything else is a formula.
func (cfg *config) command(w io.Writer, line string) (quit bool, err error) {
	if !strings.HasPrefix(line, ":") {
		return false, cfg.describe(w, line)
	}
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	switch cmd {
	case ":quit", ":q":
		return true, nil
	case ":d":
		if arg == "" {
			return false, errors.New("usage: :d name")
		}
		cfg.name = arg
	case ":let":
		name, value, ok := strings.Cut(arg, "=")
		if !ok {
			return false, errors.New("usage: :let name=value")
		}
		return false, cfg.let(strings.TrimSpace(name), strings.TrimSpace(value))
	default:
		return false, errors.Errorf("unknown command %s; try :d, :let, or :quit", cmd)
	}
	return false, nil
}
