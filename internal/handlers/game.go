package handlers

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/avansint/minesweeper/internal/config"
	"github.com/avansint/minesweeper/internal/middleware"
	"github.com/avansint/minesweeper/internal/mines"
	"github.com/avansint/minesweeper/internal/session"
)

type GameHandler struct {
	log      *logrus.Logger
	sessions *session.Registry
	tokens   *config.Tokens
	ws       *config.WebSocket
	rnd      *rand.Rand
}

func NewGameHandler(
	log *logrus.Logger,
	sessions *session.Registry,
	tokens *config.Tokens,
	ws *config.WebSocket,
	rnd *rand.Rand,
) *GameHandler {
	return &GameHandler{
		log:      log,
		sessions: sessions,
		tokens:   tokens,
		ws:       ws,
		rnd:      rnd,
	}
}

func (g *GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseCreateGameDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.log, wrapError(err))
		return
	}

	board, err := mines.NewBoard(dto.Width, dto.Height, dto.MineCount, g.rnd)
	if errors.Is(err, mines.ErrInvalidDimensions) || errors.Is(err, mines.ErrTooManyMines) {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.log, wrapError(err))
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.WithError(err).Error("unable to create a board")
		return
	}

	state, err := board.Bytes()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.WithError(err).Error("unable to serialize board")
		return
	}

	s := g.sessions.Create(state)

	if err := g.tokens.Issue(w, s.ID); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.WithError(err).Error("unable to issue session token")
		return
	}

	g.log.WithFields(logrus.Fields{
		"game_id": s.ID,
		"width":   dto.Width,
		"height":  dto.Height,
		"mines":   dto.MineCount,
	}).Info("new game")

	sendJSONOrLog(w, g.log, NewGameDTO(s, board))
}

func (g *GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	s, board, ok := g.loadGame(w, r)
	if !ok {
		return
	}
	sendJSONOrLog(w, g.log, NewGameDTO(s, board))
}

func (g *GameHandler) Sweep(w http.ResponseWriter, r *http.Request) {
	g.move(w, r, func(board *mines.Board, x, y int) error {
		_, err := board.Sweep(x, y)
		return err
	})
}

func (g *GameHandler) Mark(w http.ResponseWriter, r *http.Request) {
	g.move(w, r, func(board *mines.Board, x, y int) error {
		_, err := board.ToggleMark(x, y)
		return err
	})
}

// move runs a coordinate-addressed mutation against a session's board
// and responds with the updated game.
func (g *GameHandler) move(
	w http.ResponseWriter,
	r *http.Request,
	apply func(board *mines.Board, x, y int) error,
) {
	s, board, ok := g.loadGame(w, r)
	if !ok {
		return
	}
	if !g.authorize(w, r, s.ID) {
		return
	}

	pos, err := ParsePositionDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.log, wrapError(err))
		return
	}
	if !board.InBounds(pos.X, pos.Y) {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.log, wrapError(mines.ErrOutOfBounds))
		return
	}

	if err := apply(board, pos.X, pos.Y); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.log, wrapError(err))
		return
	}

	if !g.saveGame(w, s, board) {
		return
	}
	sendJSONOrLog(w, g.log, NewGameDTO(s, board))
}

func (g *GameHandler) Forfeit(w http.ResponseWriter, r *http.Request) {
	s, board, ok := g.loadGame(w, r)
	if !ok {
		return
	}
	if !g.authorize(w, r, s.ID) {
		return
	}

	board.Forfeit()

	if !g.saveGame(w, s, board) {
		return
	}
	sendJSONOrLog(w, g.log, NewGameDTO(s, board))
}

func (g *GameHandler) Status(w http.ResponseWriter, r *http.Request) {
	sendJSONOrLog(w, g.log, map[string]int{
		"sessions": g.sessions.Count(),
	})
}

// loadGame resolves the {id} path value into a session and its decoded
// board, writing the appropriate status on failure.
func (g *GameHandler) loadGame(
	w http.ResponseWriter, r *http.Request,
) (*session.Session, *mines.Board, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, nil, false
	}

	s, err := g.sessions.Get(id)
	if errors.Is(err, session.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return nil, nil, false
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.WithError(err).Error("unable to fetch session")
		return nil, nil, false
	}

	board, err := mines.DecodeBoard(s.State)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.WithError(err).Error("registry returned an invalid board snapshot")
		return nil, nil, false
	}

	return s, board, true
}

// saveGame stamps the end of a finished game and writes the board back
// to the registry.
func (g *GameHandler) saveGame(
	w http.ResponseWriter, s *session.Session, board *mines.Board,
) bool {
	if board.Phase().Over() && s.EndedAt == nil {
		now := time.Now().UTC()
		s.EndedAt = &now
	}

	state, err := board.Bytes()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.WithError(err).Error("unable to serialize board")
		return false
	}
	if err := g.sessions.Update(s.ID, state, s.EndedAt); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.WithError(err).Error("unable to update session")
		return false
	}
	return true
}

// authorize checks that the request carries session claims matching the
// addressed game.
func (g *GameHandler) authorize(
	w http.ResponseWriter, r *http.Request, sessionID int64,
) bool {
	claims, ok := r.Context().Value(middleware.CtxSessionClaims).(*config.SessionClaims)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		sendJSONOrLog(w, g.log, wrapError(fmt.Errorf("missing session token")))
		return false
	}
	if claims.SessionID != strconv.FormatInt(sessionID, 10) {
		w.WriteHeader(http.StatusForbidden)
		sendJSONOrLog(w, g.log, wrapError(fmt.Errorf("session token does not match game")))
		return false
	}
	return true
}
