package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mauv0809/courtside/internal/analytics"
	"github.com/mauv0809/courtside/internal/cache"
	"github.com/mauv0809/courtside/internal/club"
	"github.com/mauv0809/courtside/internal/metrics"
	"github.com/mauv0809/courtside/internal/stats"
)

// Aggregates serves engine results through the result cache.
type Aggregates struct {
	Engine  *analytics.Engine
	Cache   cache.Cache
	Metrics metrics.Metrics
}

// fetch serves compute through the cache. Keys carry the engine
// fingerprint so results computed under other engine options are not
// served after a configuration change.
func fetch[T any](ctx context.Context, a Aggregates, kind, key string, compute func(context.Context) (T, error)) (T, error) {
	key = a.Engine.Fingerprint() + ":" + key
	return cache.Fetch(ctx, a.Cache, a.Metrics, key, func(ctx context.Context) (T, error) {
		start := time.Now()
		defer func() {
			a.Metrics.ObserveAggregation(kind, time.Since(start).Seconds())
		}()
		return compute(ctx)
	})
}

func (a Aggregates) record(ctx context.Context, scope analytics.Scope, kind analytics.Kind) (analytics.Record, error) {
	key := fmt.Sprintf("aggregate:%s:%s", kind, scope.Key())
	return fetch(ctx, a, string(kind), key, func(ctx context.Context) (analytics.Record, error) {
		return a.Engine.Aggregate(ctx, scope, kind)
	})
}

func (a Aggregates) splits(ctx context.Context, scope analytics.Scope, kind analytics.Kind) (analytics.Splits, error) {
	key := fmt.Sprintf("splits:%s:%s", kind, scope.Key())
	return fetch(ctx, a, "splits", key, func(ctx context.Context) (analytics.Splits, error) {
		return a.Engine.Splits(ctx, scope, kind)
	})
}

func (a Aggregates) split(ctx context.Context, scope analytics.Scope, group stats.GroupBy, kind analytics.Kind) ([]analytics.Record, error) {
	key := fmt.Sprintf("split:%s:%s:%s", group, kind, scope.Key())
	return fetch(ctx, a, "splits", key, func(ctx context.Context) ([]analytics.Record, error) {
		return a.Engine.Split(ctx, scope, group, kind)
	})
}

// Leaders returns every leaderboard, or only metric's when it is set.
func (a Aggregates) Leaders(ctx context.Context, metric string, limit int) (analytics.Leaderboards, error) {
	if metric == "" {
		key := fmt.Sprintf("leaders:all:%d", limit)
		return fetch(ctx, a, "leaders", key, func(ctx context.Context) (analytics.Leaderboards, error) {
			return a.Engine.Leaders(ctx, limit)
		})
	}

	s, ok := stats.Lookup(metric)
	if !ok {
		return nil, fmt.Errorf("%w: unknown metric %q", analytics.ErrInvalidArgument, metric)
	}
	key := fmt.Sprintf("leaders:%s:%d", s.Key(), limit)
	return fetch(ctx, a, "leaders", key, func(ctx context.Context) (analytics.Leaderboards, error) {
		entries, err := a.Engine.Leader(ctx, s.Key(), limit)
		if err != nil {
			return nil, err
		}
		return analytics.Leaderboards{s.Key(): entries}, nil
	})
}

func (a Aggregates) summaries(ctx context.Context) ([]analytics.PlayerSummary, error) {
	return fetch(ctx, a, "summaries", "summaries", a.Engine.PlayerSummaries)
}

func TeamAggregateHandler(a Aggregates, kind analytics.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		record, err := a.record(r.Context(), analytics.Team(), kind)
		if err != nil {
			writeError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, record)
	}
}

func TeamSplitsHandler(a Aggregates, kind analytics.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		splits, err := a.splits(r.Context(), analytics.Team(), kind)
		if err != nil {
			writeError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, splits)
	}
}

// TeamSplitHandler serves a single grouping named by the {group} and
// {kind} route parameters.
func TeamSplitHandler(a Aggregates) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		group, err := analytics.ParseGroup(chi.URLParam(r, "group"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		kind, err := analytics.ParseKind(chi.URLParam(r, "kind"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		records, err := a.split(r.Context(), analytics.Team(), group, kind)
		if err != nil {
			writeError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, records)
	}
}

// playerScope resolves the {playerID} route parameter to an existing
// player.
func playerScope(r *http.Request, store club.ClubStore) (analytics.Scope, error) {
	id, err := parseID(r, "playerID")
	if err != nil {
		return analytics.Scope{}, err
	}
	if _, err := store.GetPlayer(r.Context(), id); err != nil {
		return analytics.Scope{}, err
	}
	return analytics.Player(id), nil
}

func PlayerAggregateHandler(a Aggregates, store club.ClubStore, kind analytics.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scope, err := playerScope(r, store)
		if err != nil {
			writeError(w, r, err)
			return
		}
		record, err := a.record(r.Context(), scope, kind)
		if err != nil {
			writeError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, record)
	}
}

func PlayerSplitsHandler(a Aggregates, store club.ClubStore, kind analytics.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scope, err := playerScope(r, store)
		if err != nil {
			writeError(w, r, err)
			return
		}
		splits, err := a.splits(r.Context(), scope, kind)
		if err != nil {
			writeError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, splits)
	}
}

func LeadersHandler(a Aggregates) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := parseIntParam(r, "limit", analytics.DefaultLeaderLimit)
		if err != nil {
			writeError(w, r, err)
			return
		}
		boards, err := a.Leaders(r.Context(), r.URL.Query().Get("metric"), limit)
		if err != nil {
			writeError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, boards)
	}
}

func PlayerSummariesHandler(a Aggregates) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summaries, err := a.summaries(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, summaries)
	}
}
