package main

import (
	"fmt"
	"strconv"
	"strings"
)

type commandKind int

const (
	cmdHelp commandKind = iota
	cmdMark
	cmdSweep
)

// command is one parsed input line: `M <x> <y>` toggles a mark,
// `<x> <y>` sweeps, anything else asks for help.
type command struct {
	kind commandKind
	x, y int
}

func parseXY(twoStrings []string) (x int, y int, err error) {
	if x, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = fmt.Errorf("first argument must be an int")
		return
	}
	if y, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = fmt.Errorf("second argument must be an int")
		return
	}
	return
}

func parseCommand(line string) command {
	fields := strings.Fields(line)
	switch {
	case len(fields) == 3 && fields[0] == "M":
		if x, y, err := parseXY(fields[1:]); err == nil {
			return command{kind: cmdMark, x: x, y: y}
		}
	case len(fields) == 2:
		if x, y, err := parseXY(fields); err == nil {
			return command{kind: cmdSweep, x: x, y: y}
		}
	}
	return command{kind: cmdHelp}
}
