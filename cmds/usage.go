package cmds

import (
	"cmp"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	p.WriteUsage(os.Stderr)
}

func (p *Executor) WriteUsage(w io.Writer) {
	if len(p.positionals) > 0 {
		var names []string
		for _, pos := range p.positionals {
			names = append(names, "<"+pos.name+">")
		}
		fmt.Fprintf(w, "usage: %s [commands] [--] %s\n\n", os.Args[0], strings.Join(names, " "))
		for _, pos := range p.positionals {
			fmt.Fprintf(w, "  <%s>\n\t%s\n", pos.name, pos.description)
		}
		fmt.Fprintln(w)
	}
	writeCommands(w, p.commands)
}

func writeCommands(w io.Writer, commands map[string]*Command) {
	const indent = "  "
	// aliases share the command value
	names := make(map[*Command][]string)
	for name, cmd := range commands {
		names[cmd] = append(names[cmd], name)
	}
	type entry struct {
		names []string
		cmd   *Command
	}
	var entries []entry
	for cmd, ns := range names {
		slices.Sort(ns)
		entries = append(entries, entry{ns, cmd})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		return cmp.Compare(a.names[0], b.names[0])
	})

	for _, e := range entries {
		line := indent + strings.Join(e.names, ", ")
		if e.cmd == nil {
			fmt.Fprintln(w, line)
			continue
		}
		if args := e.cmd.argNames(); len(args) > 0 {
			line += " " + strings.Join(args, " ")
		}
		fmt.Fprintln(w, line)
		if e.cmd.Description != "" {
			fmt.Fprintf(w, "%s\t%s\n", indent, e.cmd.Description)
		}
	}
}
