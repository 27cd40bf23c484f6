package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/courtside/internal/analytics"
	"github.com/mauv0809/courtside/internal/club"
	"github.com/mauv0809/courtside/internal/metrics"
	slackclient "github.com/mauv0809/courtside/internal/slack"
	"github.com/mauv0809/courtside/internal/stats"
	"github.com/slack-go/slack"
)

// respondWithSlackMsg is a helper to format and write a Slack message as an HTTP response.
func respondWithSlackMsg(w http.ResponseWriter, msg slack.Message) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		log.Error("Failed to encode slack message to JSON", "error", err)
	}
}

// parseLeadersText splits the command text into an optional metric and an
// optional trailing limit. Expected formats: "", "points", "points 3", "3".
func parseLeadersText(text string) (metric string, limit int) {
	parts := strings.Fields(text)
	limit = analytics.DefaultLeaderLimit
	if len(parts) > 0 {
		if n, err := strconv.Atoi(parts[len(parts)-1]); err == nil {
			limit = n
			parts = parts[:len(parts)-1]
		}
	}
	return strings.Join(parts, "_"), limit
}

// leadersMessage renders either a single board or the summary of every board.
func leadersMessage(ctx context.Context, a Aggregates, client *slackclient.SlackClient, metric string, limit int) (slack.Message, error) {
	boards, err := a.Leaders(ctx, metric, limit)
	if err != nil {
		return slack.Message{}, err
	}
	if metric == "" {
		return client.FormatLeaderboards(boards), nil
	}
	s, _ := stats.Lookup(metric)
	return client.FormatLeaderboard(s, boards[s.Key()]), nil
}

// LeadersCommandHandler answers the leaders slash command.
func LeadersCommandHandler(a Aggregates, client *slackclient.SlackClient, m metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Failed to parse form", http.StatusBadRequest)
			log.Error("Failed to parse slack command form", "error", err)
			return
		}
		m.IncSlackCommand("leaders")
		metric, limit := parseLeadersText(r.FormValue("text"))
		log.Debug("Received leaders command", "metric", metric, "limit", limit, "user", r.FormValue("user_name"))

		msg, err := leadersMessage(r.Context(), a, client, metric, limit)
		if err != nil {
			if errors.Is(err, analytics.ErrInvalidArgument) {
				respondWithSlackMsg(w, client.FormatError(err.Error()))
				return
			}
			log.Error("Failed to build leaders response", "error", err)
			respondWithSlackMsg(w, client.FormatError("Something went wrong while fetching the leaders."))
			return
		}
		respondWithSlackMsg(w, msg)
	}
}

// PlayerStatsCommandHandler answers the player-stats slash command with the
// best roster match for the given name.
func PlayerStatsCommandHandler(a Aggregates, store club.ClubStore, client *slackclient.SlackClient, m metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Failed to parse form", http.StatusBadRequest)
			log.Error("Failed to parse slack command form", "error", err)
			return
		}
		m.IncSlackCommand("player-stats")
		ctx := r.Context()

		query := strings.TrimSpace(r.FormValue("text"))
		if query == "" {
			respondWithSlackMsg(w, client.FormatError("Please provide a player name, e.g. `/player-stats Jordan`."))
			return
		}

		matches, err := store.FindPlayers(ctx, query)
		if err != nil {
			log.Error("Failed to search players", "error", err, "query", query)
			respondWithSlackMsg(w, client.FormatError("Something went wrong while searching for the player."))
			return
		}
		if len(matches) == 0 {
			respondWithSlackMsg(w, client.FormatPlayerNotFound(query))
			return
		}

		player := matches[0].Player
		log.Debug("Resolved player for stats command", "query", query, "playerID", player.ID, "confidence", matches[0].Confidence)
		totals, err := a.record(ctx, analytics.Player(player.ID), analytics.KindTotals)
		if err != nil {
			log.Error("Failed to compute player totals", "error", err, "playerID", player.ID)
			respondWithSlackMsg(w, client.FormatError("Something went wrong while computing stats."))
			return
		}
		averages, err := a.record(ctx, analytics.Player(player.ID), analytics.KindAverages)
		if err != nil {
			log.Error("Failed to compute player averages", "error", err, "playerID", player.ID)
			respondWithSlackMsg(w, client.FormatError("Something went wrong while computing stats."))
			return
		}
		respondWithSlackMsg(w, client.FormatPlayerStats(player.Name, totals, averages))
	}
}

// AnnounceLeadersHandler posts the leaderboards to the configured channel.
func AnnounceLeadersHandler(a Aggregates, client *slackclient.SlackClient, counters metrics.CounterStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := parseIntParam(r, "limit", analytics.DefaultLeaderLimit)
		if err != nil {
			writeError(w, r, err)
			return
		}
		metric := r.URL.Query().Get("metric")
		msg, err := leadersMessage(r.Context(), a, client, metric, limit)
		if err != nil {
			writeError(w, r, err)
			return
		}

		isDryRun := IsDryRunFromContext(r)
		channel, ts, err := client.SendMessage(r.Context(), msg, counters, isDryRun)
		if err != nil {
			if errors.Is(err, slackclient.ErrNotConfigured) {
				respondError(w, http.StatusServiceUnavailable, err.Error())
				return
			}
			log.Error("Failed to announce leaders", "error", err)
			respondError(w, http.StatusBadGateway, "failed to post to Slack")
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{"channel": channel, "ts": ts, "dry_run": isDryRun})
	}
}
