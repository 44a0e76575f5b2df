package main

import "testing"

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input string
		want  command
	}{
		{"3 4", command{kind: cmdSweep, x: 3, y: 4}},
		{"  0   0 ", command{kind: cmdSweep, x: 0, y: 0}},
		{"M 1 2", command{kind: cmdMark, x: 1, y: 2}},
		{"M -1 7", command{kind: cmdMark, x: -1, y: 7}},
		{"", command{kind: cmdHelp}},
		{"help", command{kind: cmdHelp}},
		{"M one two", command{kind: cmdHelp}},
		{"1 2 3", command{kind: cmdHelp}},
		{"m 1 2", command{kind: cmdHelp}},
		{"1", command{kind: cmdHelp}},
	}
	for _, test := range tests {
		if have := parseCommand(test.input); have != test.want {
			t.Errorf("parseCommand(%q): have %+v, want %+v", test.input, have, test.want)
		}
	}
}
