package handlers

import (
	"strconv"

	"github.com/gorilla/schema"

	"github.com/avansint/minesweeper/internal/mines"
	"github.com/avansint/minesweeper/internal/session"
)

type CreateGameDTO struct {
	Width     int `schema:"width,required"`
	Height    int `schema:"height,required"`
	MineCount int `schema:"mine_count,required"`
}

type PositionDTO struct {
	X int `schema:"x,required"`
	Y int `schema:"y,required"`
}

func ParseCreateGameDTO(src map[string][]string) (CreateGameDTO, error) {
	var dto CreateGameDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

func ParsePositionDTO(src map[string][]string) (PositionDTO, error) {
	var dto PositionDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

type GameDTO struct {
	GameID    string   `json:"game_id"`
	Width     int      `json:"width"`
	Height    int      `json:"height"`
	MineCount int      `json:"mine_count"`
	Phase     string   `json:"phase"`
	Grid      []string `json:"grid"`
	StartedAt int64    `json:"started_at"`
	EndedAt   *int64   `json:"ended_at,omitempty"`
}

func NewGameDTO(s *session.Session, b *mines.Board) *GameDTO {
	var endedAt *int64
	if s.EndedAt != nil {
		e := s.EndedAt.UnixMilli()
		endedAt = &e
	}
	return &GameDTO{
		GameID:    strconv.FormatInt(s.ID, 10),
		Width:     b.Width(),
		Height:    b.Height(),
		MineCount: b.MineCount(),
		Phase:     b.Phase().String(),
		Grid:      b.Rows(),
		StartedAt: s.StartedAt.UnixMilli(),
		EndedAt:   endedAt,
	}
}
