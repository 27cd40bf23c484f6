package handlers

import (
	"context"
	"net/http"

	"github.com/mauv0809/courtside/internal/boxscore"
	"github.com/mauv0809/courtside/internal/club"
	"github.com/mauv0809/courtside/internal/pubsub"
	"github.com/mauv0809/courtside/internal/stats"
)

// references makes sure both ends of a stat line exist.
func references(ctx context.Context, store club.ClubStore, playerID, gameID int64) error {
	if _, err := store.GetPlayer(ctx, playerID); err != nil {
		return err
	}
	_, err := store.GetGame(ctx, gameID)
	return err
}

func decodeLine(r *http.Request) (stats.StatLine, error) {
	var line stats.StatLine
	if err := decodeStatFields(r, &line); err != nil {
		return stats.StatLine{}, err
	}
	if line.PlayerID < 1 || line.GameID < 1 {
		return stats.StatLine{}, badRequest("player_id and game_id are required")
	}
	return line, nil
}

func CreateStatLineHandler(store club.ClubStore, lines boxscore.Store, changes Changes) http.HandlerFunc {
	return writeStatLine(store, changes, http.StatusCreated, lines.Create)
}

// UpsertStatLineHandler replaces the line for the same player and game, or
// creates it.
func UpsertStatLineHandler(store club.ClubStore, lines boxscore.Store, changes Changes) http.HandlerFunc {
	return writeStatLine(store, changes, http.StatusOK, lines.Upsert)
}

func writeStatLine(store club.ClubStore, changes Changes, status int, write func(context.Context, stats.StatLine) (stats.StatLine, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		line, err := decodeLine(r)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if err := references(ctx, store, line.PlayerID, line.GameID); err != nil {
			writeError(w, r, err)
			return
		}

		saved, err := write(ctx, line)
		if err != nil {
			writeError(w, r, err)
			return
		}
		changes.Record(ctx, "stat_line", pubsub.EventStatLineWritten, &saved.PlayerID, &saved.GameID)
		respondJSON(w, status, saved)
	}
}

func lineIDs(r *http.Request) (int64, int64, error) {
	playerID, err := parseID(r, "playerID")
	if err != nil {
		return 0, 0, err
	}
	gameID, err := parseID(r, "gameID")
	if err != nil {
		return 0, 0, err
	}
	return playerID, gameID, nil
}

func GetStatLineHandler(lines boxscore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, gameID, err := lineIDs(r)
		if err != nil {
			writeError(w, r, err)
			return
		}
		line, err := lines.Get(r.Context(), playerID, gameID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, line)
	}
}

// PatchStatLineHandler applies a partial update. Keys absent from the body
// are left untouched.
func PatchStatLineHandler(lines boxscore.Store, changes Changes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		playerID, gameID, err := lineIDs(r)
		if err != nil {
			writeError(w, r, err)
			return
		}
		var patch stats.Patch
		if err := decodeStatFields(r, &patch); err != nil {
			writeError(w, r, err)
			return
		}

		line, err := lines.Patch(ctx, playerID, gameID, patch)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if !patch.IsEmpty() {
			changes.Record(ctx, "stat_line", pubsub.EventStatLineWritten, &playerID, &gameID)
		}
		respondJSON(w, http.StatusOK, line)
	}
}

func DeleteStatLineHandler(lines boxscore.Store, changes Changes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		playerID, gameID, err := lineIDs(r)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if err := lines.Delete(ctx, playerID, gameID); err != nil {
			writeError(w, r, err)
			return
		}
		changes.Record(ctx, "stat_line", pubsub.EventStatLineDeleted, &playerID, &gameID)
		respondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
	}
}
