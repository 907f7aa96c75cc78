package main

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/optguard"
	"github.com/pterm/pterm"
)

// jobTicket is the demo record schema: a work item with three guarded
// fields. `urgent` is the bool-flavored case optguard was made for —
// an unset flag and a flag switched off deliberately must not look the
// same.
type jobTicket struct {
	optguard.Store
}

var (
	urgentField  = optguard.Empty[bool]()
	ownerField   = optguard.Empty[string]()
	retriesField = optguard.FromFactory(func() (int, bool) { return 3, true })
)

func init() {
	urgentField.Bind("urgent")
	ownerField.Bind("owner")
	retriesField.Bind("retries")
}

// fieldHandle adapts one typed guard template to the string-in,
// string-out world of the REPL.
type fieldHandle struct {
	name   string
	kind   string
	render func(rec *jobTicket) (string, error)
	get    func(rec *jobTicket) (string, error)
	set    func(rec *jobTicket, raw string) error
	clear  func(rec *jobTicket) error
	deflt  func(rec *jobTicket, raw string) (string, error)
	assign func(rec *jobTicket, raw string) error
	remove func(rec *jobTicket) error
	coerce func(rec *jobTicket) error
}

// handleFor wires a guard template into a fieldHandle, using parse to
// turn command arguments into T values.
func handleFor[T any](name, kind string, tmpl *optguard.Guard[T], parse func(string) (T, error)) *fieldHandle {
	return &fieldHandle{
		name: name,
		kind: kind,
		render: func(rec *jobTicket) (string, error) {
			g, err := tmpl.Get(rec)
			if err != nil {
				return "", err
			}
			if !g.HasValue() {
				return "<none>", nil
			}
			v, err := g.Value()
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%v", v), nil
		},
		get: func(rec *jobTicket) (string, error) {
			g, err := tmpl.Get(rec)
			if err != nil {
				return "", err
			}
			v, err := g.Value() // guarded read: fails on an absent value
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%v", v), nil
		},
		set: func(rec *jobTicket, raw string) error {
			v, err := parse(raw)
			if err != nil {
				return err
			}
			g, err := tmpl.Get(rec)
			if err != nil {
				return err
			}
			g.Set(v)
			return nil
		},
		clear: func(rec *jobTicket) error {
			g, err := tmpl.Get(rec)
			if err != nil {
				return err
			}
			g.Clear()
			return nil
		},
		deflt: func(rec *jobTicket, raw string) (string, error) {
			fallback, err := parse(raw)
			if err != nil {
				return "", err
			}
			g, err := tmpl.Get(rec)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%v", g.GetOrDefault(fallback)), nil
		},
		assign: func(rec *jobTicket, raw string) error {
			v, err := parse(raw)
			if err != nil {
				return err
			}
			// Wholesale assignment of a fresh guard: allowed, but the
			// binding keeps the record's own box and warns.
			return tmpl.Assign(rec, optguard.New(v))
		},
		remove: func(rec *jobTicket) error {
			return tmpl.Remove(rec)
		},
		coerce: func(rec *jobTicket) (err error) {
			g, gerr := tmpl.Get(rec)
			if gerr != nil {
				return gerr
			}
			defer func() {
				if r := recover(); r != nil {
					if e, ok := r.(error); ok {
						err = e
						return
					}
					err = fmt.Errorf("%v", r)
				}
			}()
			_ = g.Bool() // always panics, by contract
			return nil
		},
	}
}

var schema = map[string]*fieldHandle{
	"urgent":  handleFor("urgent", "bool", urgentField, strconv.ParseBool),
	"owner":   handleFor("owner", "string", ownerField, func(s string) (string, error) { return s, nil }),
	"retries": handleFor("retries", "int", retriesField, strconv.Atoi),
}

// schemaOrder keeps table output stable.
var schemaOrder = []string{"urgent", "owner", "retries"}

func getOp(intp *Intp, cmd *Command) (error, bool) {
	f, err := intp.field(cmd)
	if err != nil {
		return err, false
	}
	s, err := f.get(intp.record())
	if err != nil {
		return err, false
	}
	pterm.Printf("%s = %s\n", f.name, s)
	return nil, false
}

func setOp(intp *Intp, cmd *Command) (error, bool) {
	f, err := intp.field(cmd)
	if err != nil {
		return err, false
	}
	if len(cmd.args) < 2 {
		return fmt.Errorf("set: missing value for field %q", f.name), false
	}
	if err := f.set(intp.record(), cmd.args[1]); err != nil {
		return err, false
	}
	return nil, false
}

func clearOp(intp *Intp, cmd *Command) (error, bool) {
	f, err := intp.field(cmd)
	if err != nil {
		return err, false
	}
	return f.clear(intp.record()), false
}

func defaultOp(intp *Intp, cmd *Command) (error, bool) {
	f, err := intp.field(cmd)
	if err != nil {
		return err, false
	}
	if len(cmd.args) < 2 {
		return fmt.Errorf("default: missing fallback for field %q", f.name), false
	}
	s, err := f.deflt(intp.record(), cmd.args[1])
	if err != nil {
		return err, false
	}
	pterm.Printf("%s or default = %s\n", f.name, s)
	return nil, false
}

func assignOp(intp *Intp, cmd *Command) (error, bool) {
	f, err := intp.field(cmd)
	if err != nil {
		return err, false
	}
	if len(cmd.args) < 2 {
		return fmt.Errorf("assign: missing value for field %q", f.name), false
	}
	return f.assign(intp.record(), cmd.args[1]), false
}

func delOp(intp *Intp, cmd *Command) (error, bool) {
	f, err := intp.field(cmd)
	if err != nil {
		return err, false
	}
	return f.remove(intp.record()), false
}

func coerceOp(intp *Intp, cmd *Command) (error, bool) {
	f, err := intp.field(cmd)
	if err != nil {
		return err, false
	}
	return f.coerce(intp.record()), false
}
