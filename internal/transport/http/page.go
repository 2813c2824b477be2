package http

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/connect4/server/internal/bot"
	"github.com/connect4/server/internal/game"
)

//go:embed templates/game.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/game.html"))

type cellView struct {
	Class  string
	Href   string // playable cells link to their successor state
	Newest bool
}

type difficultyLink struct {
	Href   string
	Label  string
	Active bool
}

type pageView struct {
	Cells           [][]cellView
	DifficultyLinks []difficultyLink
	CurrentPlayer   string
	Winner          string
	IsOver          bool
	IsDraw          bool
	NewGameHref     string
}

// handlePage renders the playable board. The game travels in the
// ?state query parameter; a missing or undecodable token starts a
// fresh game. When the token says it is the computer's turn, the move
// is computed and applied before rendering, so one click by the human
// produces both plies.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	play := s.initialPlayState(bot.DifficultyStrong)
	if tokenParam := r.URL.Query().Get("state"); tokenParam != "" {
		decoded, err := s.codec.Decode(tokenParam)
		if err != nil {
			log.Warn().Err(err).Msg("undecodable state token, starting fresh game")
		} else {
			play = decoded
		}
	}

	if !play.Game.IsOver() && play.Game.CurrentPlayer == game.Player2 {
		if _, next, err := s.computerMove(r.Context(), play); err == nil {
			play = next
		} else {
			log.Error().Err(err).Msg("computer move failed")
		}
	}

	view, err := s.buildPageView(play)
	if err != nil {
		log.Error().Err(err).Msg("state encoding failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, view); err != nil {
		log.Error().Err(err).Msg("template rendering failed")
	}
}

func (s *Server) buildPageView(play PlayState) (pageView, error) {
	view := pageView{
		CurrentPlayer: playerName(play.Game.CurrentPlayer),
		IsOver:        play.Game.IsOver(),
		IsDraw:        play.Game.Status == game.StatusDraw,
		NewGameHref:   "/",
	}
	if play.Game.Status == game.StatusWon {
		view.Winner = playerName(play.Game.Winner)
	}

	difficulties := []struct {
		value bot.Difficulty
		label string
	}{
		{bot.DifficultyWeak, "Weak"},
		{bot.DifficultyModerate, "Moderate"},
		{bot.DifficultyStrong, "Strong"},
	}
	for _, d := range difficulties {
		switched := play
		switched.Difficulty = d.value
		token, err := s.codec.Encode(switched)
		if err != nil {
			return pageView{}, err
		}
		view.DifficultyLinks = append(view.DifficultyLinks, difficultyLink{
			Href:   "/?state=" + token,
			Label:  d.label,
			Active: d.value == play.Difficulty,
		})
	}

	// Rows render top-down; every empty cell of a live game links to
	// the state where the human played that column.
	for row := 0; row < s.engine.Rows; row++ {
		cells := make([]cellView, 0, s.engine.Columns)
		for col := 0; col < s.engine.Columns; col++ {
			cell := cellView{Class: cellClass(play.Game.Board.Cell(col, row))}
			cell.Newest = isNewestPiece(play, col, row)

			if play.Game.Board.Cell(col, row) == game.Empty && !play.Game.IsOver() {
				next := play
				next.Game = s.engine.ApplyMove(play.Game, col)
				c := col
				next.NewestPieceColumn = &c
				next.NewestComputerColumn = nil
				token, err := s.codec.Encode(next)
				if err != nil {
					return pageView{}, err
				}
				cell.Href = "/?state=" + token
			}
			cells = append(cells, cell)
		}
		view.Cells = append(view.Cells, cells)
	}
	return view, nil
}

// isNewestPiece marks the top occupied cell of a just-played column so
// the page can highlight the landing piece.
func isNewestPiece(play PlayState, col, row int) bool {
	newest := func(marked *int) bool {
		if marked == nil || *marked != col {
			return false
		}
		board := play.Game.Board
		if board.Cell(col, row) == game.Empty {
			return false
		}
		return row == 0 || board.Cell(col, row-1) == game.Empty
	}
	return newest(play.NewestPieceColumn) || newest(play.NewestComputerColumn)
}

func playerName(p game.PlayerID) string {
	switch p {
	case game.Player1:
		return "red"
	case game.Player2:
		return "yellow"
	}
	return ""
}

func cellClass(p game.PlayerID) string {
	if name := playerName(p); name != "" {
		return name
	}
	return "empty"
}
