package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/lazyseq"
	"github.com/npillmayer/lazyseq/crosscheck"
	"github.com/npillmayer/lazyseq/literal"
	"github.com/npillmayer/lazyseq/nested"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/

// main() starts an interactive CLI ("LZREPL"), where users may enter commands
// operating on list literals. LZREPL will run the command lazily and print
// out the elements produced.
//
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	initf := flag.String("init", "", "Initial load")
	limit := flag.Int("take", 100, "Maximum number of elements to print per command")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to LZREPL")   // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	tracer().SetTraceLevel(traceLevel(*tlevel)) // now set the user supplied level
	//
	// set up REPL
	repl, err := readline.New("lzrepl> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{
		repl:  repl,
		limit: *limit,
	}
	input := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if input != "" {
		if _, err := intp.Eval(input); err != nil {
			os.Exit(2)
		}
	}
	//
	// load an init file and start receiving commands
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.loadInitFile(*initf)           // init file name provided by flag
	intp.REPL()                         // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl  *readline.Instance
	limit int // max number of elements to print, 0 for no limit
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if line = strings.TrimSpace(line); line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		if _, err := intp.Eval(line); err != nil {
			tracer().Errorf("Error line %d: %v", lineno, err)
		}
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: %v", err)
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	defer intp.repl.Close()
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval parses and executes a command line. Errors are displayed and returned.
func (intp *Intp) Eval(line string) (bool, error) {
	terms, err := literal.Parse(line)
	if err != nil {
		pterm.Error.Println(err.Error())
		return false, err
	}
	if len(terms) == 0 {
		return false, nil
	}
	cmd, args := command(terms)
	tracer().Debugf("command %q with %d arguments", cmd, len(args))
	switch cmd {
	case "quit":
		return true, nil
	case "help":
		pterm.Info.Println(usage)
		return false, nil
	case "tree":
		err = showTree(args)
	case "check":
		err = intp.check(args)
	case "take":
		err = intp.take(args)
	default:
		var j job
		if j, err = makeJob(cmd, args); err == nil {
			intp.print(lazyseq.NewCursor(j.explicit()), intp.limit)
		}
	}
	if err != nil {
		pterm.Error.Println(err.Error())
	}
	return false, err
}

const usage = `commands:
  chain <list> ...     concatenate flat lists
  zip <list> ...       tuples of corresponding elements
  primes <n>           primes below n (including 1)
  comb <list> <k>      k-combinations of a flat list
  flatten <list>       leaves of a nested list
  tree <list>          display a nested list as a tree
  check <command>      compare explicit and generator form of a command
  take <n> <command>   print at most n elements of a command
  quit`

// command splits a command line into the command name and its arguments.
// An empty name is returned if the line does not start with an identifier.
func command(terms []nested.Element[literal.Atom]) (string, []nested.Element[literal.Atom]) {
	if terms[0].IsList() || terms[0].Value().Kind != literal.Ident {
		return "", terms
	}
	return terms[0].Value().Lexeme, terms[1:]
}

func (intp *Intp) check(args []nested.Element[literal.Atom]) error {
	if len(args) == 0 {
		return errors.New("check: missing command")
	}
	cmd, rest := command(args)
	j, err := makeJob(cmd, rest)
	if err != nil {
		return err
	}
	report, err := crosscheck.Compare(j.explicit(), j.generator())
	if err != nil {
		return err
	}
	pterm.Info.Println(fmt.Sprintf("%s: both forms agree, %s", cmd, report))
	return nil
}

func (intp *Intp) take(args []nested.Element[literal.Atom]) error {
	if len(args) < 2 || args[0].IsList() {
		return errors.New("usage: take <n> <command>")
	}
	n, err := args[0].Value().Int()
	if err != nil {
		return err
	}
	cmd, rest := command(args[1:])
	j, err := makeJob(cmd, rest)
	if err != nil {
		return err
	}
	intp.print(lazyseq.NewCursor(j.explicit()), n)
	return nil
}

// print outputs at most limit elements of c. Iteration is broken off early
// if c has more elements than that.
func (intp *Intp) print(c *lazyseq.Cursor[string], limit int) {
	var out []string
	if limit > 0 {
		out = c.Take(limit)
	} else {
		out = c.Collect()
	}
	more := c.HasNext()
	c.Break()
	s := strings.Join(out, " ")
	if more {
		s += " …"
	}
	pterm.Info.Println(fmt.Sprintf("(%d) %s", len(out), s))
}

// --- Tree display -----------------------------------------------------------

func showTree(args []nested.Element[literal.Atom]) error {
	if len(args) != 1 {
		return errors.New("tree: can only print tree for one list at a time")
	}
	root := pterm.NewTreeFromLeveledList(leveledList(args[0]))
	pterm.DefaultTree.WithRoot(root).Render()
	return nil
}

// leveledList lists the nodes of e top-down, each tagged with its nesting
// level. Lists show up as "·".
func leveledList(e nested.Element[literal.Atom]) pterm.LeveledList {
	ll := pterm.LeveledList{}
	w := nested.NewWalker(e)
	for w.Step() {
		switch w.Event() {
		case nested.Open:
			ll = append(ll, pterm.LeveledListItem{Level: w.Level(), Text: "·"})
		case nested.Atom:
			ll = append(ll, pterm.LeveledListItem{Level: w.Level(), Text: w.Element().Value().String()})
		}
	}
	tracer().Debugf("|ll| = %d", len(ll))
	return ll
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
