package analytics

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/courtside/internal/stats"
)

// Team plus-minus is summed over the five players on court.
const teamSize = 5

// SentinelPolicy decides what an undefined aggregate over zero rows reports.
type SentinelPolicy string

const (
	SentinelZero SentinelPolicy = "zero"
	SentinelNull SentinelPolicy = "null"
)

// ParseSentinelPolicy accepts "zero" or "null".
func ParseSentinelPolicy(s string) (SentinelPolicy, error) {
	switch SentinelPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case SentinelZero:
		return SentinelZero, nil
	case SentinelNull:
		return SentinelNull, nil
	}
	return "", fmt.Errorf("%w: unknown sentinel policy %q", ErrInvalidArgument, s)
}

// Option configures an Engine.
type Option func(*Engine)

// WithSentinel sets the value reported for aggregates over zero rows.
func WithSentinel(p SentinelPolicy) Option {
	return func(e *Engine) { e.sentinel = p }
}

// WithOREB controls whether offensive rebounds are aggregated and ranked.
func WithOREB(include bool) Option {
	return func(e *Engine) { e.tracked = stats.Tracked(include) }
}

// Engine computes totals, averages, splits and leaderboards from a
// Repository. It holds no mutable state and is safe for concurrent use.
type Engine struct {
	repo     Repository
	sentinel SentinelPolicy
	tracked  []stats.Stat
}

// New creates an Engine. By default undefined aggregates are zero and OREB
// is tracked.
func New(repo Repository, opts ...Option) *Engine {
	e := &Engine{
		repo:     repo,
		sentinel: SentinelZero,
		tracked:  stats.Tracked(true),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Fingerprint identifies the options that shape engine output, e.g.
// "zero+oreb". Results computed under different options must not be shared.
func (e *Engine) Fingerprint() string {
	oreb := "nooreb"
	for _, s := range e.tracked {
		if s == stats.StatOREB {
			oreb = "oreb"
			break
		}
	}
	return string(e.sentinel) + "+" + oreb
}

// Stats returns the statistics the engine reports, in canonical order.
func (e *Engine) Stats() []stats.Stat {
	return append([]stats.Stat(nil), e.tracked...)
}

// Totals sums every tracked statistic over the scope.
func (e *Engine) Totals(ctx context.Context, scope Scope) (Record, error) {
	return e.Aggregate(ctx, scope, KindTotals)
}

// Averages divides the scope's sums by its game count.
func (e *Engine) Averages(ctx context.Context, scope Scope) (Record, error) {
	return e.Aggregate(ctx, scope, KindAverages)
}

// Aggregate computes one record for the whole scope.
func (e *Engine) Aggregate(ctx context.Context, scope Scope, kind Kind) (Record, error) {
	if _, err := ParseKind(string(kind)); err != nil {
		return Record{}, err
	}
	lines, err := e.repo.StatLines(ctx, scope.filter())
	if err != nil {
		return Record{}, fmt.Errorf("failed to load stat lines: %w", err)
	}

	acc := newAccumulator()
	for _, l := range lines {
		if err := acc.add(l); err != nil {
			log.Error("Duplicate stat line in aggregation input", "error", err, "scope", scope.Key())
			return Record{}, err
		}
	}
	if acc.rows == 0 {
		return e.sentinelRecord(kind, nil), nil
	}
	return e.finish(acc, scope, kind, nil), nil
}

// finish turns accumulated sums into a record.
func (e *Engine) finish(acc *accumulator, scope Scope, kind Kind, label *string) Record {
	r := Record{
		Label:       label,
		Kind:        kind,
		GamesPlayed: acc.rows,
		Values:      make(map[string]*float64, len(e.tracked)),
	}

	divisor := float64(acc.rows)
	if scope.IsTeam() {
		divisor = float64(len(acc.games))
	}
	if kind == KindAverages {
		r.GamesPlayed = int(divisor)
	}

	for _, s := range e.tracked {
		sum := acc.sums[s]
		if s == stats.StatPM && scope.IsTeam() {
			sum /= teamSize
		}

		var v float64
		switch kind {
		case KindTotals:
			switch {
			case s == stats.StatMinutes:
				v = round(sum, 3)
			case s == stats.StatPM && scope.IsTeam():
				v = round(sum, 2)
			default:
				v = sum
			}
		case KindAverages:
			v = round(sum/divisor, averagePrecision(s, scope))
		}
		r.Values[s.Key()] = &v
	}
	return r
}

func averagePrecision(s stats.Stat, scope Scope) int {
	if s == stats.StatMinutes || !scope.IsTeam() {
		return 2
	}
	return 1
}

// sentinelRecord is the result over zero rows for a whole population.
func (e *Engine) sentinelRecord(kind Kind, label *string) Record {
	if e.sentinel == SentinelNull {
		r := Record{Label: label, Kind: kind, Values: make(map[string]*float64, len(e.tracked))}
		for _, s := range e.tracked {
			r.Values[s.Key()] = nil
		}
		return r
	}
	return e.zeroRecord(kind, label)
}

// zeroRecord is an all-zero record, used for empty split groups regardless
// of the sentinel policy.
func (e *Engine) zeroRecord(kind Kind, label *string) Record {
	r := Record{Label: label, Kind: kind, Values: make(map[string]*float64, len(e.tracked))}
	for _, s := range e.tracked {
		zero := 0.0
		r.Values[s.Key()] = &zero
	}
	return r
}

// round rounds half away from zero to the given number of decimals.
func round(v float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Round(v*p) / p
}

type lineKey struct {
	playerID int64
	gameID   int64
}

// accumulator sums stat lines and tracks the rows and distinct games seen.
type accumulator struct {
	sums  []float64
	rows  int
	games map[int64]struct{}
	seen  map[lineKey]struct{}
}

func newAccumulator() *accumulator {
	return &accumulator{
		sums:  make([]float64, len(stats.All())),
		games: make(map[int64]struct{}),
		seen:  make(map[lineKey]struct{}),
	}
}

func (a *accumulator) add(l stats.StatLine) error {
	key := lineKey{playerID: l.PlayerID, gameID: l.GameID}
	if _, dup := a.seen[key]; dup {
		return fmt.Errorf("%w: more than one stat line for player %d in game %d", ErrDataInconsistency, l.PlayerID, l.GameID)
	}
	a.seen[key] = struct{}{}
	a.games[l.GameID] = struct{}{}
	a.rows++
	for _, s := range stats.All() {
		a.sums[s] += s.Value(l)
	}
	return nil
}
