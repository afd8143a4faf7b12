// Released under an MIT license. See LICENSE.

// Package options parses flatlisp's command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is reported by -v.
const Version = "flatlisp 0.1.0"

const usage = `flatlisp

Usage:
  flatlisp [-d] [-t] [SCRIPT]
  flatlisp [-t] -i
  flatlisp -h
  flatlisp -v

Arguments:
  SCRIPT  Path to a flatlisp source file. Without one, source is read from
          stdin, or interactively if stdin is a terminal.

Options:
  -d, --dump         Write the tokens and arena as YAML before evaluating.
  -i, --interactive  Read and evaluate forms interactively.
  -t, --trace        Log reader and evaluator steps to stderr.
  -h, --help         Display this help.
  -v, --version      Print flatlisp version.
`

// T (options) holds the parsed command line.
type T struct {
	Dump        bool
	Interactive bool
	Script      string
	Trace       bool
}

// Parse parses os.Args. It prints help or the version and exits if asked.
func Parse() (*T, error) {
	p := &docopt.Parser{HelpHandler: docopt.PrintHelpAndExit}

	return parse(p, os.Args[1:], Terminal())
}

// Terminal returns true if stdin is a terminal.
func Terminal() bool {
	fd := os.Stdin.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func parse(p *docopt.Parser, argv []string, terminal bool) (*T, error) {
	opts, err := p.ParseArgs(usage, argv, Version)
	if err != nil {
		return nil, err
	}

	o := &T{}

	o.Dump, _ = opts.Bool("--dump")
	o.Interactive, _ = opts.Bool("--interactive")
	o.Script, _ = opts.String("SCRIPT")
	o.Trace, _ = opts.Bool("--trace")

	if o.Script == "" && terminal {
		o.Interactive = true
	}

	return o, nil
}
