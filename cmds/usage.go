package cmds

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	printUsage(p.output, p.commands, 0)
}

func printUsage(w io.Writer, commands map[string]*Command, depth int) {
	// aliases are printed with their command
	names := make(map[*Command][]string)
	var order []*Command
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		command := commands[name]
		if command == nil {
			continue
		}
		if _, ok := names[command]; !ok {
			order = append(order, command)
		}
		names[command] = append(names[command], name)
	}

	for _, command := range order {
		line := strings.Repeat("  ", depth) + strings.Join(names[command], ", ")
		if command.Func.IsValid() {
			fnType := command.Func.Type()
			for i := range fnType.NumIn() {
				argType := fnType.In(i)
				switch {
				case fnType.IsVariadic() && i == fnType.NumIn()-1:
					line += " <" + argType.Elem().Kind().String() + ">..."
				default:
					line += " <" + argType.Kind().String() + ">"
				}
			}
		}
		if command.Description != "" {
			line += "\t" + command.Description
		}
		fmt.Fprintln(w, line)

		if len(command.Subs) > 0 {
			printUsage(w, command.Subs, depth+1)
		}
	}
}
