package handlers

import (
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/courtside/internal/boxscore"
	"github.com/mauv0809/courtside/internal/club"
	"github.com/mauv0809/courtside/internal/pubsub"
)

type gameRequest struct {
	Date     string  `json:"date"`
	Opponent string  `json:"opponent"`
	Location *string `json:"location"`
}

func ListGamesHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		games, err := store.GetAllGames(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, games)
	}
}

func CreateGameHandler(store club.ClubStore, changes Changes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req gameRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}
		req.Date = strings.TrimSpace(req.Date)
		req.Opponent = strings.TrimSpace(req.Opponent)
		if req.Date == "" || req.Opponent == "" {
			writeError(w, r, badRequest("date and opponent are required"))
			return
		}

		game, err := store.AddGame(r.Context(), club.Game{
			Date:     req.Date,
			Opponent: req.Opponent,
			Location: req.Location,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}
		log.Info("Game created", "gameID", game.ID, "date", game.Date, "opponent", game.Opponent)
		changes.Record(r.Context(), "game", pubsub.EventGameWritten, nil, &game.ID)
		respondJSON(w, http.StatusCreated, game)
	}
}

func GetGameHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "gameID")
		if err != nil {
			writeError(w, r, err)
			return
		}
		game, err := store.GetGame(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, game)
	}
}

// DeleteGameHandler removes the game together with its box score.
func DeleteGameHandler(store club.ClubStore, changes Changes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "gameID")
		if err != nil {
			writeError(w, r, err)
			return
		}
		if err := store.DeleteGame(r.Context(), id); err != nil {
			writeError(w, r, err)
			return
		}
		log.Info("Game deleted", "gameID", id)
		changes.Record(r.Context(), "game", pubsub.EventGameDeleted, nil, &id)
		respondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
	}
}

// BoxScoreHandler returns every stat line recorded for a game.
func BoxScoreHandler(store club.ClubStore, lines boxscore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "gameID")
		if err != nil {
			writeError(w, r, err)
			return
		}
		if _, err := store.GetGame(r.Context(), id); err != nil {
			writeError(w, r, err)
			return
		}
		box, err := lines.ForGame(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, box)
	}
}
