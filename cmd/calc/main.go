// Command calc is an interactive calculator with exact arithmetic and units.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"

	"github.com/zephyrtronium/calc"
)

const usage = `calc

Usage:
  calc help
  calc [--] [EXPR...]
  calc -h | --help
  calc -v | --version

Arguments:
  EXPR  Expression to evaluate. Multiple arguments are joined with spaces.

Options:
  -h, --help     Display this help.
  -v, --version  Print calc version.

With no expression, calc reads expressions from stdin. If stdin is a
terminal, calc runs interactively with line editing and history.
`

const replHelp = `Enter an expression, e.g. 1/2 + 1/3, 5 kg to lb, or pi -> 10 dp.
Assign variables with x = 3 and functions with f = \x.x^2.
Type quit or exit to leave.`

func main() {
	log.SetFlags(0)
	opts, err := docopt.ParseArgs(usage, os.Args[1:], calc.Version)
	if err != nil {
		log.Fatal(err)
	}
	if h, _ := opts.Bool("help"); h {
		fmt.Print(usage)
		return
	}
	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}
	ctx := calc.NewContext()
	if args, _ := opts["EXPR"].([]string); len(args) > 0 {
		if !evalPrint(ctx, strings.Join(args, " "), calc.NeverInterrupt{}, cfg) {
			os.Exit(1)
		}
		return
	}
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		if !evalLines(ctx, os.Stdin, cfg) {
			os.Exit(1)
		}
		return
	}
	if !repl(ctx, cfg) {
		os.Exit(1)
	}
}

// evalPrint evaluates src and prints its result or error. It reports whether
// evaluation succeeded.
func evalPrint(ctx *calc.Context, src string, intr calc.Interrupt, cfg *config) bool {
	r, err := ctx.Evaluate(src, intr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return false
	}
	if r.MainResult() == "" {
		return true
	}
	fmt.Println(r.MainResult())
	if cfg.OtherInfo {
		for _, s := range r.OtherInfo() {
			fmt.Println("->", s)
		}
	}
	return true
}

// evalLines evaluates each line of a non-interactive input.
func evalLines(ctx *calc.Context, in io.Reader, cfg *config) bool {
	var flag calc.Flag
	stop := notifyInterrupt(&flag)
	defer stop()
	ok := true
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		flag.Reset()
		ok = evalPrint(ctx, sc.Text(), &flag, cfg)
	}
	if err := sc.Err(); err != nil {
		log.Print(err)
		return false
	}
	return ok
}

var quitWords = map[string]bool{
	"quit": true,
	"exit": true,
	"q":    true,
	":q":   true,
	":wq":  true,
	":x":   true,
}

// repl runs the interactive loop. The result is whether the last command
// succeeded.
func repl(ctx *calc.Context, cfg *config) bool {
	cli := liner.NewLiner()
	defer cli.Close()
	cli.SetCtrlCAborts(true)
	if cfg.HistorySize > 0 {
		cli.SetHistoryLimit(cfg.HistorySize)
	}
	if cfg.History != "" {
		if f, err := os.Open(cfg.History); err == nil {
			cli.ReadHistory(f)
			f.Close()
		}
		defer saveHistory(cli, cfg.History)
	}

	var flag calc.Flag
	stop := notifyInterrupt(&flag)
	defer stop()
	ok := true
	for {
		line, err := cli.Prompt(cfg.Prompt)
		switch {
		case err == nil:
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case errors.Is(err, io.EOF):
			fmt.Println()
			return ok
		default:
			log.Print(err)
			return false
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		cli.AppendHistory(line)
		switch {
		case quitWords[line]:
			return ok
		case line == "help" || line == "?":
			fmt.Println(replHelp)
			continue
		}
		flag.Reset()
		ok = evalPrint(ctx, line, &flag, cfg)
	}
}

func saveHistory(cli *liner.State, path string) {
	f, err := os.Create(path)
	if err != nil {
		log.Print("saving history: ", err)
		return
	}
	if _, err := cli.WriteHistory(f); err != nil {
		log.Print("saving history: ", err)
	}
	f.Close()
}
