package handlers

import (
	"fmt"
	"iter"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/avansint/minesweeper/internal/mines"
)

func iterBySep(s string, sep string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		i := 0
		found := true
		var piece string
		for found {
			piece, s, found = strings.Cut(s, sep)
			if !yield(i, piece) {
				return
			}
			i += 1
		}
	}
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

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"o": 2,
	"m": 2,
	"r": 0,
}

func executeCommand(b *mines.Board, c string) error {
	parts := strings.Split(c, " ")

	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return fmt.Errorf("unknown command")
	}
	if nargs != len(parts)-1 {
		return fmt.Errorf("invalid number of arguments")
	}

	switch parts[0] {
	case "o":
		x, y, err := parseXY(parts[1:])
		if err != nil {
			return err
		}
		if !b.InBounds(x, y) {
			return fmt.Errorf("invalid cell coordinates")
		}
		_, err = b.Sweep(x, y)
		return err
	case "m":
		x, y, err := parseXY(parts[1:])
		if err != nil {
			return err
		}
		if !b.InBounds(x, y) {
			return fmt.Errorf("invalid cell coordinates")
		}
		_, err = b.ToggleMark(x, y)
		return err
	case "r":
		b.Forfeit()
		return nil
	}
	return fmt.Errorf("invalid command")
}

// ConnectWS upgrades the request and plays the session over a text
// protocol: each frame carries newline-separated commands, each frame is
// answered with the updated game as JSON.
func (g *GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	s, board, ok := g.loadGame(w, r)
	if !ok {
		return
	}
	if !g.authorize(w, r, s.ID) {
		return
	}

	c, err := g.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.log.WithError(err).Error("unable to upgrade connection")
		return
	}
	defer c.Close()

	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				g.log.WithError(err).Warn("websocket read")
			}
			return
		}
		if mt != websocket.TextMessage {
			return
		}

		text := strings.TrimSpace(string(message))
		for _, cmd := range iterBySep(text, "\n") {
			if err := executeCommand(board, cmd); err != nil {
				g.log.WithError(err).WithField("command", cmd).Error("bad command")
				return
			}
			if board.Phase().Over() {
				break
			}
		}

		// the connection is hijacked, errors can only be logged
		if board.Phase().Over() && s.EndedAt == nil {
			now := time.Now().UTC()
			s.EndedAt = &now
		}
		state, err := board.Bytes()
		if err != nil {
			g.log.WithError(err).Error("unable to serialize board")
			return
		}
		if err := g.sessions.Update(s.ID, state, s.EndedAt); err != nil {
			g.log.WithError(err).Error("unable to update session")
			return
		}

		if err := c.WriteJSON(NewGameDTO(s, board)); err != nil {
			g.log.WithError(err).Error("websocket write")
			return
		}
	}
}
