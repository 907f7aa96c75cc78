package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, cmd *Command) (error, bool) {
	topic := ""
	if len(cmd.args) > 0 {
		topic = cmd.args[0]
	}
	help(topic)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "fields", "field", "schema":
		pterm.Info.Println("Fields")
		pterm.Println(`
	The demo schema is a job ticket with three guarded fields:
	+---------+--------+----------------------------+
	| urgent  | bool   | no default                 |
	| owner   | string | no default                 |
	| retries | int    | factory default 3          |
	+---------+--------+----------------------------+
	Every record instance gets its own copy of each field's guard,
	created the first time the field is read. Mutating one record
	never affects another.
	`)
	case "guard", "guards", "misuse":
		pterm.Info.Println("Guards")
		pterm.Println(`
	A guard is a box around a possibly-absent value. It refuses to be
	compared or used as a boolean, and a bound field refuses to be
	deleted. Try it:

	  coerce urgent    bool-coerce the guard (fails loudly)
	  assign urgent true   re-assign the whole guard (warns, then
	                       copies the value into the record's box)
	  del urgent       delete the field (always refused)
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	fields            show the current record's fields
	records           list record instances ('*' marks current)
	new               create a fresh record instance
	use <n>           switch to record #n
	get <f>           read field f (error if absent)
	set <f> <v>       set field f's value
	clear <f>         make field f absent again
	default <f> <v>   read field f, falling back to v
	assign <f> <v>    re-assign the whole guard (discouraged, warns)
	del <f>           try to delete field f (always fails)
	coerce <f>        try to bool-coerce the guard (always fails)
	help [fields|guards]
	quit

	See 'help fields' and 'help guards' for the demo schema and the
	deliberately blocked operations.
	`)
	}
}
