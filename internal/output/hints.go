package output

import (
	"fmt"
	"strings"
)

// CommandHints maps command names to related commands users might want to run next
var CommandHints = map[string][]string{
	"convert":           {"check", "tags", "snapshots list"},
	"titles":            {"check", "snapshots list"},
	"tags":              {"check"},
	"issue":             {"check", "snapshots list"},
	"check":             {"tags", "snapshots verify"},
	"config":            {"check"},
	"snapshots list":    {"snapshots verify", "snapshots restore <id>"},
	"snapshots status":  {"snapshots list", "snapshots verify"},
	"snapshots verify":  {"snapshots list"},
	"snapshots restore": {"check", "snapshots list"},
}

// PrintHints prints "See also" hints for a command. No-op in quiet mode or if command has no hints.
func (p *Printer) PrintHints(command string) {
	if p.quiet {
		return
	}
	hints, ok := CommandHints[command]
	if !ok || len(hints) == 0 {
		return
	}

	cmds := make([]string, len(hints))
	for i, h := range hints {
		cmds[i] = "recipectl " + h
	}
	fmt.Fprintf(p.out, "\nSee also: %s\n", strings.Join(cmds, ", "))
}
