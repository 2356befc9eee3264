package console

import (
	"fmt"
	"strings"
)

// Action names a user-triggered operation against a row of the active view.
// Markup-style ad-hoc handlers are replaced by this one dispatch vocabulary;
// each view binds the subset of actions it supports to resource-client calls.
type Action string

const (
	ActionAdvance  Action = "advance" // primary action: move to the vocabulary's next status
	ActionCancel   Action = "cancel"
	ActionApprove  Action = "approve"
	ActionReject   Action = "reject"
	ActionComplete Action = "complete"
	ActionDelete   Action = "delete"
	ActionAdjust   Action = "adjust"
	ActionFree     Action = "free"
	ActionOccupy   Action = "occupy"
	ActionReserve  Action = "reserve"
	ActionBlock    Action = "block"
	ActionActivate Action = "activate"
	ActionEnable   Action = "enable"
	ActionDisable  Action = "disable"
	ActionStatus   Action = "status" // explicit target status in the argument
)

// Command is one parsed input line.
type Command struct {
	Kind   CommandKind
	Action Action
	ID     string
	Arg    string
}

type CommandKind int

const (
	CmdQuit CommandKind = iota
	CmdHelp
	CmdRefresh
	CmdView    // switch active view; Arg = view name
	CmdSearch  // Arg = free text ("" clears)
	CmdFilter  // ID = field (status/category/branch), Arg = value
	CmdClear   // drop all criteria
	CmdAction  // Action + ID (+ Arg)
	CmdUnknown
)

// ParseCommand reads one dashboard input line. Row actions take the form
// "<action> <id> [arg]".
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) == 0 {
		return Command{Kind: CmdRefresh}, nil
	}

	switch fields[0] {
	case "q", "quit", "exit":
		return Command{Kind: CmdQuit}, nil
	case "h", "help":
		return Command{Kind: CmdHelp}, nil
	case "r", "refresh":
		return Command{Kind: CmdRefresh}, nil
	case "view":
		if len(fields) < 2 {
			return Command{}, fmt.Errorf("usage: view <name>")
		}
		return Command{Kind: CmdView, Arg: fields[1]}, nil
	case "find":
		return Command{Kind: CmdSearch, Arg: strings.Join(fields[1:], " ")}, nil
	case "filter":
		if len(fields) < 3 {
			return Command{}, fmt.Errorf("usage: filter <status|category|branch> <value>")
		}
		return Command{Kind: CmdFilter, ID: fields[1], Arg: fields[2]}, nil
	case "clear":
		return Command{Kind: CmdClear}, nil
	}

	if len(fields) < 2 {
		return Command{Kind: CmdUnknown, Arg: fields[0]}, fmt.Errorf("unknown command %q", fields[0])
	}
	cmd := Command{Kind: CmdAction, Action: Action(fields[0]), ID: fields[1]}
	if len(fields) > 2 {
		cmd.Arg = fields[2]
	}
	return cmd, nil
}
