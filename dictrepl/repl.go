package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/dicts"
	"github.com/pterm/pterm"
	"github.com/timtadh/lexmachine"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// main() starts an interactive CLI, where users may enter dictionary
// commands. Enter 'help' at the prompt for a list of commands. The CLI is
// intended as a sandbox for experiments with insertion-ordered
// dictionaries, in particular with ordering behavior around deletion and
// re-insertion of keys.
//
// Please refer to package "dicts".
//
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	initf := flag.String("init", "", "Initial load")
	flag.Parse()
	tracer().SetTraceLevel(traceLevel(*tlevel))
	pterm.Info.Println("Welcome to the dicts REPL") // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	//
	lexer, err := newLineLexer()
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	repl, err := readline.New("dicts> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{
		dict:  dicts.New(),
		lexer: lexer,
		repl:  repl,
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

func traceLevel(l string) tracing.TraceLevel {
	switch strings.ToLower(l) {
	case "debug":
		return tracing.LevelDebug
	case "error":
		return tracing.LevelError
	}
	return tracing.LevelInfo
}

// Intp is our interpreter object
type Intp struct {
	dict  *dicts.Dict
	lexer *lexmachine.Lexer
	repl  *readline.Instance
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
	lineno := 1
	for scanner.Scan() {
		line := scanner.Text()
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		_, err := intp.Eval(line)
		if err != nil {
			tracer().Errorf("Error line %d: "+err.Error(), lineno)
		}
		lineno++
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: " + err.Error())
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
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
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval evaluates a dictionary command, given on a line by itself.
//
func (intp *Intp) Eval(line string) (bool, error) {
	tokens, err := lineTokens(intp.lexer, line)
	if err != nil {
		return false, err
	}
	if len(tokens) == 0 || tokens[0].kind != Ident {
		return false, fmt.Errorf("expected a command, got %q", line)
	}
	cmd, args := tokens[0].lexeme, tokens[1:]
	switch cmd {
	case "help":
		printHelp()
	case "set":
		if len(args) != 2 {
			return false, fmt.Errorf("usage: set <key> <value>")
		}
		intp.dict.Set(args[0].value, args[1].value)
	case "get":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: get <key>")
		}
		v, ok := intp.dict.Get(args[0].value)
		if !ok {
			pterm.Info.Println("<absent>")
			break
		}
		pterm.Info.Println(fmt.Sprintf("%v", v))
	case "del":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: del <key>")
		}
		if !intp.dict.Delete(args[0].value) {
			pterm.Info.Println("<absent>")
		}
	case "keys":
		pterm.Info.Println(fmt.Sprintf("%v", intp.dict.Keys()))
	case "sorted":
		pterm.Info.Println(fmt.Sprintf("%v", intp.dict.SortedKeys()))
	case "len":
		pterm.Info.Println(fmt.Sprintf("%d", intp.dict.Len()))
	case "dump":
		intp.dump()
	case "transpose":
		intp.dict = intp.dict.Transpose()
		intp.dump()
	case "clear":
		intp.dict.Clear()
	case "quit", "bye":
		return true, nil
	default:
		return false, fmt.Errorf("unknown command: %s", cmd)
	}
	return false, nil
}

// dump renders the current dictionary as a tree on the terminal, entries
// in insertion order.
func (intp *Intp) dump() {
	ll := pterm.LeveledList{pterm.LeveledListItem{Level: 0, Text: "dict"}}
	intp.dict.Each(func(value interface{}, key string, d *dicts.Dict) {
		ll = append(ll, pterm.LeveledListItem{
			Level: 1,
			Text:  fmt.Sprintf("%s = %v", key, value),
		})
	})
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
}

func printHelp() {
	pterm.Info.Println(strings.Join([]string{
		"set <key> <value>   insert or overwrite an entry",
		"get <key>           look up an entry",
		"del <key>           delete an entry",
		"keys                list keys in insertion order",
		"sorted              list keys in lexicographic order",
		"len                 number of entries",
		"dump                show all entries as a tree",
		"transpose           swap keys and values",
		"clear               remove all entries",
		"quit                leave the REPL",
	}, "\n"))
}
