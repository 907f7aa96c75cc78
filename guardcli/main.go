package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/optguard"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'optguard'
func tracer() tracing.Trace {
	return tracing.Select("optguard")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.optguard":  "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	flag.Parse()
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	pterm.Info.Println("Welcome to the optguard playground") // colored welcome message
	//
	// set up REPL
	repl, err := readline.New("optguard > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl}
	intp.records = append(intp.records, &jobTicket{}) // start with one record instance
	//
	// route reassignment warnings to the terminal
	optguard.SetWarningHandler(func(w optguard.ReassignmentWarning) {
		pterm.Warning.Println(w.String())
	})
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D")
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object. It owns the live record instances;
// commands operate on the current one.
type Intp struct {
	repl    *readline.Instance
	records []*jobTicket
	current int
}

func (intp *Intp) String() string {
	return fmt.Sprintf("( record #%d of %d )", intp.current, len(intp.records))
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd := intp.parseCommand(line)
		err, quit := intp.execute(cmd)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Command is a parsed input line: an op-word plus its arguments.
type Command struct {
	op   string
	args []string
}

func (intp *Intp) parseCommand(line string) *Command {
	parts := strings.Fields(line)
	cmd := &Command{op: strings.ToLower(parts[0])}
	cmd.args = parts[1:]
	tracer().Debugf("parsed command: %v %v", cmd.op, cmd.args)
	return cmd
}

var commandFn = map[string]func(*Intp, *Command) (error, bool){
	"quit":    quitOp,
	"help":    helpOp,
	"fields":  fieldsOp,
	"records": recordsOp,
	"new":     newOp,
	"use":     useOp,
	"get":     getOp,
	"set":     setOp,
	"clear":   clearOp,
	"default": defaultOp,
	"assign":  assignOp,
	"del":     delOp,
	"coerce":  coerceOp,
}

func (intp *Intp) execute(cmd *Command) (error, bool) {
	fn, ok := commandFn[cmd.op]
	if !ok {
		help("")
		return nil, false
	}
	return fn(intp, cmd)
}

func quitOp(intp *Intp, cmd *Command) (error, bool) {
	return nil, true
}

func newOp(intp *Intp, cmd *Command) (error, bool) {
	intp.records = append(intp.records, &jobTicket{})
	intp.current = len(intp.records) - 1
	pterm.Info.Printf("created record #%d\n", intp.current)
	return nil, false
}

func useOp(intp *Intp, cmd *Command) (error, bool) {
	if len(cmd.args) == 0 {
		return fmt.Errorf("use: which record? (0..%d)", len(intp.records)-1), false
	}
	n, err := strconv.Atoi(cmd.args[0])
	if err != nil {
		return fmt.Errorf("use: record index not numeric: %q", cmd.args[0]), false
	}
	if n < 0 || n >= len(intp.records) {
		return fmt.Errorf("use: no record #%d", n), false
	}
	intp.current = n
	return nil, false
}

// record returns the current record instance.
func (intp *Intp) record() *jobTicket {
	return intp.records[intp.current]
}

// field resolves the field-name argument of a command.
func (intp *Intp) field(cmd *Command) (*fieldHandle, error) {
	if len(cmd.args) == 0 {
		return nil, fmt.Errorf("%s: which field? (try 'fields')", cmd.op)
	}
	f, ok := schema[strings.ToLower(cmd.args[0])]
	if !ok {
		return nil, fmt.Errorf("%s: unknown field %q", cmd.op, cmd.args[0])
	}
	return f, nil
}
