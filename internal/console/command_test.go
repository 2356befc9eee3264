package console

import "testing"

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line string
		want Command
	}{
		{"", Command{Kind: CmdRefresh}},
		{"q", Command{Kind: CmdQuit}},
		{"quit", Command{Kind: CmdQuit}},
		{"help", Command{Kind: CmdHelp}},
		{"r", Command{Kind: CmdRefresh}},
		{"view orders", Command{Kind: CmdView, Arg: "orders"}},
		{"find cheese burger", Command{Kind: CmdSearch, Arg: "cheese burger"}},
		{"find", Command{Kind: CmdSearch}},
		{"filter status new", Command{Kind: CmdFilter, ID: "status", Arg: "new"}},
		{"clear", Command{Kind: CmdClear}},
		{"advance o1", Command{Kind: CmdAction, Action: ActionAdvance, ID: "o1"}},
		{"adjust i3 -5", Command{Kind: CmdAction, Action: ActionAdjust, ID: "i3", Arg: "-5"}},
		{"status s2 paused", Command{Kind: CmdAction, Action: ActionStatus, ID: "s2", Arg: "paused"}},
	}
	for _, tt := range tests {
		got, err := ParseCommand(tt.line)
		if err != nil {
			t.Errorf("ParseCommand(%q) error: %v", tt.line, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCommand(%q) = %+v, want %+v", tt.line, got, tt.want)
		}
	}
}

func TestParseCommandErrors(t *testing.T) {
	for _, line := range []string{"view", "filter status", "bogus"} {
		if _, err := ParseCommand(line); err == nil {
			t.Errorf("ParseCommand(%q) should fail", line)
		}
	}
}
