package cmds

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"text/tabwriter"
)

func (p *Executor) PrintUsage() {
	w := tabwriter.NewWriter(p.Output, 0, 4, 2, ' ', 0)
	printCommands(w, p.commands, 0)
	if p.fallback != nil {
		fmt.Fprintf(w, "%s\t%s\n", strings.Join(p.fallback.ArgNames, " "), p.fallback.Description)
	}
	w.Flush()
}

func printCommands(w *tabwriter.Writer, commands map[string]*Command, depth int) {
	indent := strings.Repeat("  ", depth)
	printed := make(map[*Command]bool)
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		command := commands[name]
		if command == nil || printed[command] {
			continue
		}
		if slices.Contains(command.Aliases, name) {
			// listed under its primary name
			continue
		}
		printed[command] = true

		line := indent + strings.Join(append([]string{name}, command.Aliases...), ", ")
		if len(command.ArgNames) > 0 {
			line += " " + strings.Join(command.ArgNames, " ")
		}
		fmt.Fprintf(w, "%s\t%s\n", line, command.Description)

		if len(command.Subs) > 0 {
			printCommands(w, command.Subs, depth+1)
		}
	}
}
