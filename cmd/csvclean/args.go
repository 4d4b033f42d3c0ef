package main

import (
	"strings"

	"github.com/urfave/cli/v2"
)

// reorderArgs moves flags (and the values of non-boolean flags) ahead of
// positional arguments, so `csvclean in.csv out.csv -c name` parses the same
// as `csvclean -c name in.csv out.csv`. Flag parsing otherwise stops at the
// first positional argument. Everything after "--" stays positional.
func reorderArgs(args []string, flags []cli.Flag) []string {
	if len(args) == 0 {
		return args
	}

	takesValue := make(map[string]bool)
	for _, f := range flags {
		if _, ok := f.(*cli.BoolFlag); ok {
			continue
		}
		for _, name := range f.Names() {
			takesValue[name] = true
		}
	}

	out := []string{args[0]}
	var positional []string
	for i := 1; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			positional = append(positional, args[i+1:]...)
			break
		}
		if len(arg) < 2 || arg[0] != '-' {
			positional = append(positional, arg)
			continue
		}

		out = append(out, arg)
		name := strings.TrimLeft(arg, "-")
		if strings.Contains(name, "=") {
			continue
		}
		if takesValue[name] && i+1 < len(args) {
			i++
			out = append(out, args[i])
		}
	}

	if len(positional) > 0 {
		out = append(out, "--")
		out = append(out, positional...)
	}
	return out
}
