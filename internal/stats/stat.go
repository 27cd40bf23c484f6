package stats

// Stat identifies one tracked box-score statistic.
type Stat int

const (
	StatMinutes Stat = iota
	StatPoints
	StatRebounds
	StatOREB
	StatAssists
	StatSteals
	StatBlocks
	StatTurnovers
	StatFouls
	StatFG
	StatFGA
	StatFG3
	StatFGA3
	StatFT
	StatFTA
	StatPM
	numStats
)

type definition struct {
	key    string
	column string
	value  func(*StatLine) float64
	ptr    func(*StatLine) any
	arg    func(*StatLine) any
	patch  func(*Patch) (any, bool)
}

func intStat(key, column string, field func(*StatLine) *int, patched func(*Patch) *int) definition {
	return definition{
		key:    key,
		column: column,
		value:  func(l *StatLine) float64 { return float64(*field(l)) },
		ptr:    func(l *StatLine) any { return field(l) },
		arg:    func(l *StatLine) any { return *field(l) },
		patch: func(p *Patch) (any, bool) {
			if v := patched(p); v != nil {
				return *v, true
			}
			return nil, false
		},
	}
}

// definitions is ordered by Stat and drives scanning, inserts, patches and
// output keys.
var definitions = [numStats]definition{
	StatMinutes: {
		key:    "minutes",
		column: "minutes",
		value:  func(l *StatLine) float64 { return float64(l.Minutes) },
		ptr:    func(l *StatLine) any { return (*float64)(&l.Minutes) },
		arg:    func(l *StatLine) any { return l.Minutes.Rounded() },
		patch: func(p *Patch) (any, bool) {
			if p.Minutes != nil {
				return p.Minutes.Rounded(), true
			}
			return nil, false
		},
	},
	StatPoints:    intStat("points", "points", func(l *StatLine) *int { return &l.Points }, func(p *Patch) *int { return p.Points }),
	StatRebounds:  intStat("rebounds", "rebounds", func(l *StatLine) *int { return &l.Rebounds }, func(p *Patch) *int { return p.Rebounds }),
	StatOREB:      intStat("OREB", "oreb", func(l *StatLine) *int { return &l.OREB }, func(p *Patch) *int { return p.OREB }),
	StatAssists:   intStat("assists", "assists", func(l *StatLine) *int { return &l.Assists }, func(p *Patch) *int { return p.Assists }),
	StatSteals:    intStat("steals", "steals", func(l *StatLine) *int { return &l.Steals }, func(p *Patch) *int { return p.Steals }),
	StatBlocks:    intStat("blocks", "blocks", func(l *StatLine) *int { return &l.Blocks }, func(p *Patch) *int { return p.Blocks }),
	StatTurnovers: intStat("turnovers", "turnovers", func(l *StatLine) *int { return &l.Turnovers }, func(p *Patch) *int { return p.Turnovers }),
	StatFouls:     intStat("fouls", "fouls", func(l *StatLine) *int { return &l.Fouls }, func(p *Patch) *int { return p.Fouls }),
	StatFG:        intStat("FG", "fg", func(l *StatLine) *int { return &l.FG }, func(p *Patch) *int { return p.FG }),
	StatFGA:       intStat("FGA", "fga", func(l *StatLine) *int { return &l.FGA }, func(p *Patch) *int { return p.FGA }),
	StatFG3:       intStat("FG3", "fg3", func(l *StatLine) *int { return &l.FG3 }, func(p *Patch) *int { return p.FG3 }),
	StatFGA3:      intStat("FGA3", "fga3", func(l *StatLine) *int { return &l.FGA3 }, func(p *Patch) *int { return p.FGA3 }),
	StatFT:        intStat("FT", "ft", func(l *StatLine) *int { return &l.FT }, func(p *Patch) *int { return p.FT }),
	StatFTA:       intStat("FTA", "fta", func(l *StatLine) *int { return &l.FTA }, func(p *Patch) *int { return p.FTA }),
	StatPM:        intStat("PM", "pm", func(l *StatLine) *int { return &l.PM }, func(p *Patch) *int { return p.PM }),
}

// Key returns the canonical output key, e.g. "points" or "FGA3".
func (s Stat) Key() string { return definitions[s].key }

// Column returns the stat_lines column backing the statistic.
func (s Stat) Column() string { return definitions[s].column }

// Value reads the statistic from a stat line.
func (s Stat) Value(l StatLine) float64 { return definitions[s].value(&l) }

func (s Stat) String() string { return s.Key() }

// All returns every statistic in canonical order.
func All() []Stat {
	out := make([]Stat, 0, numStats)
	for s := StatMinutes; s < numStats; s++ {
		out = append(out, s)
	}
	return out
}

// Tracked returns the statistics reported by aggregations and leaderboards.
func Tracked(includeOREB bool) []Stat {
	out := make([]Stat, 0, numStats)
	for _, s := range All() {
		if s == StatOREB && !includeOREB {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Columns returns the stat_lines columns in canonical order.
func Columns() []string {
	cols := make([]string, 0, numStats)
	for _, d := range definitions {
		cols = append(cols, d.column)
	}
	return cols
}

// ScanDest returns scan destinations for every statistic column of l, in
// the order of Columns.
func ScanDest(l *StatLine) []any {
	dest := make([]any, 0, numStats)
	for _, d := range definitions {
		dest = append(dest, d.ptr(l))
	}
	return dest
}

// Args returns insert arguments for every statistic column of l, in the
// order of Columns. Minutes are rounded to storage precision.
func Args(l StatLine) []any {
	args := make([]any, 0, numStats)
	for _, d := range definitions {
		args = append(args, d.arg(&l))
	}
	return args
}
