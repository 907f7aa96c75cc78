package main

import (
	"fmt"

	"github.com/pterm/pterm"
)

func fieldsOp(intp *Intp, cmd *Command) (error, bool) {
	rec := intp.record()
	data := [][]string{
		{"Field", "Type", "Present", "Value"},
	}
	for _, name := range schemaOrder {
		f := schema[name]
		s, err := f.render(rec)
		if err != nil {
			return err, false
		}
		present := "yes"
		if s == "<none>" {
			present = "no"
		}
		data = append(data, []string{f.name, f.kind, present, s})
	}
	pterm.Printf("record #%d\n", intp.current)
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func recordsOp(intp *Intp, cmd *Command) (error, bool) {
	data := [][]string{
		{"Record", "Fields set"},
	}
	for i, rec := range intp.records {
		set := 0
		for _, name := range schemaOrder {
			if s, err := schema[name].render(rec); err == nil && s != "<none>" {
				set++
			}
		}
		marker := ""
		if i == intp.current {
			marker = " *"
		}
		data = append(data, []string{fmt.Sprintf("#%d%s", i, marker), fmt.Sprintf("%d of %d", set, len(schemaOrder))})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}
