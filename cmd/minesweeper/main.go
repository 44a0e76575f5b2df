package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/avansint/minesweeper/internal/mines"
)

var log = logrus.New()

func printHelpAndExit() {
	fmt.Println("Usage: minesweeper WIDTH HEIGHT MINES")
	os.Exit(0)
}

func printCommandHelp() {
	fmt.Println("Command Help")
	fmt.Println("Toggle marking:")
	fmt.Println("M [x-coordinate] [y-coordinate]")
	fmt.Println("Sweep cell:")
	fmt.Println("[x-coordinate] [y-coordinate]")
}

func main() {
	args := os.Args[1:]
	if len(args) != 3 {
		printHelpAndExit()
	}

	width, err := strconv.Atoi(args[0])
	if err != nil {
		printHelpAndExit()
	}
	height, err := strconv.Atoi(args[1])
	if err != nil {
		printHelpAndExit()
	}
	mineCount, err := strconv.Atoi(args[2])
	if err != nil {
		printHelpAndExit()
	}

	board, err := mines.NewBoard(width, height, mineCount, nil)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Print(board)
	stdin := bufio.NewScanner(os.Stdin)
	for {
		fmt.Println("Enter command:")
		fmt.Print("> ")

		if !stdin.Scan() {
			return
		}

		cmd := parseCommand(stdin.Text())
		switch cmd.kind {
		case cmdMark:
			if !board.InBounds(cmd.x, cmd.y) {
				fmt.Println("invalid cell coordinates")
				continue
			}
			if _, err := board.ToggleMark(cmd.x, cmd.y); err != nil {
				log.Fatal(err)
			}
			fmt.Print(board)
		case cmdSweep:
			if !board.InBounds(cmd.x, cmd.y) {
				fmt.Println("invalid cell coordinates")
				continue
			}
			if _, err := board.Sweep(cmd.x, cmd.y); err != nil {
				log.Fatal(err)
			}
			fmt.Print(board)
		case cmdHelp:
			printCommandHelp()
		}

		switch board.Phase() {
		case mines.Win:
			fmt.Println("You win!")
			return
		case mines.Lose:
			fmt.Println("BOOM!")
			return
		}
	}
}
