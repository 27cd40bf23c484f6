package handlers

import (
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/courtside/internal/boxscore"
	"github.com/mauv0809/courtside/internal/club"
	"github.com/mauv0809/courtside/internal/pubsub"
)

type playerRequest struct {
	Name         string  `json:"name"`
	JerseyNumber *int    `json:"jersey_number"`
	Position     *string `json:"position"`
}

func ListPlayersHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := store.GetAllPlayers(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, players)
	}
}

func CreatePlayerHandler(store club.ClubStore, changes Changes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req playerRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}
		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			writeError(w, r, badRequest("name is required"))
			return
		}

		player, err := store.AddPlayer(r.Context(), club.Player{
			Name:         req.Name,
			JerseyNumber: req.JerseyNumber,
			Position:     req.Position,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}
		log.Info("Player created", "playerID", player.ID, "name", player.Name)
		changes.Record(r.Context(), "player", pubsub.EventPlayerWritten, &player.ID, nil)
		respondJSON(w, http.StatusCreated, player)
	}
}

func GetPlayerHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "playerID")
		if err != nil {
			writeError(w, r, err)
			return
		}
		player, err := store.GetPlayer(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, player)
	}
}

// DeletePlayerHandler removes the player together with their stat lines.
func DeletePlayerHandler(store club.ClubStore, changes Changes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "playerID")
		if err != nil {
			writeError(w, r, err)
			return
		}
		if err := store.DeletePlayer(r.Context(), id); err != nil {
			writeError(w, r, err)
			return
		}
		log.Info("Player deleted", "playerID", id)
		changes.Record(r.Context(), "player", pubsub.EventPlayerDeleted, &id, nil)
		respondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
	}
}

func PlayerGameLogHandler(store club.ClubStore, lines boxscore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "playerID")
		if err != nil {
			writeError(w, r, err)
			return
		}
		if _, err := store.GetPlayer(r.Context(), id); err != nil {
			writeError(w, r, err)
			return
		}
		entries, err := lines.GameLog(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, entries)
	}
}
