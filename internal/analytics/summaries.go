package analytics

import (
	"context"
	"sort"

	"github.com/mauv0809/courtside/internal/stats"
)

// PlayerSummaries returns every player's career totals and per-game
// averages, ordered by total points, then average points, both descending.
func (e *Engine) PlayerSummaries(ctx context.Context) ([]PlayerSummary, error) {
	players, sums, err := e.careerSums(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]PlayerSummary, 0, len(players))
	for _, p := range players {
		scope := Player(p.ID)
		acc := sums[p.ID]
		summary := PlayerSummary{PlayerID: p.ID, Name: p.Name, JerseyNumber: p.JerseyNumber, Position: p.Position}
		if acc.rows == 0 {
			summary.Totals = e.sentinelRecord(KindTotals, nil)
			summary.Averages = e.sentinelRecord(KindAverages, nil)
		} else {
			summary.Totals = e.finish(acc, scope, KindTotals, nil)
			summary.Averages = e.finish(acc, scope, KindAverages, nil)
		}
		out = append(out, summary)
	}

	points := func(r Record) float64 {
		if v := r.Value(stats.StatPoints); v != nil {
			return *v
		}
		return 0
	}
	sort.SliceStable(out, func(i, j int) bool {
		ti, tj := points(out[i].Totals), points(out[j].Totals)
		if ti != tj {
			return ti > tj
		}
		ai, aj := points(out[i].Averages), points(out[j].Averages)
		if ai != aj {
			return ai > aj
		}
		return out[i].PlayerID < out[j].PlayerID
	})
	return out, nil
}
