package boxscore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/courtside/internal/database"
	"github.com/mauv0809/courtside/internal/stats"
)

// groupColumns maps each grouping to the games column holding its label.
var groupColumns = map[stats.GroupBy]string{
	stats.GroupLocation: "g.location",
	stats.GroupOpponent: "g.opponent",
}

// New creates a new stat-line Store.
func New(db *sql.DB) Store {
	return &store{
		db: db,
	}
}

func selectColumns(alias string) string {
	cols := append([]string{"id", "player_id", "game_id"}, stats.Columns()...)
	cols = append(cols, "starter")
	for i, c := range cols {
		cols[i] = alias + "." + c
	}
	return strings.Join(cols, ", ")
}

func scanLine(scanner interface{ Scan(...any) error }, extra ...any) (stats.StatLine, error) {
	var l stats.StatLine
	dest := []any{&l.ID, &l.PlayerID, &l.GameID}
	dest = append(dest, stats.ScanDest(&l)...)
	dest = append(dest, &l.Starter)
	dest = append(dest, extra...)
	if err := scanner.Scan(dest...); err != nil {
		return stats.StatLine{}, err
	}
	return l, nil
}

func insertStatement(upsert bool) string {
	cols := append([]string{"player_id", "game_id"}, stats.Columns()...)
	cols = append(cols, "starter")
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")

	var b strings.Builder
	fmt.Fprintf(&b, "INSERT INTO stat_lines (%s) VALUES (%s)", strings.Join(cols, ", "), placeholders)
	if upsert {
		b.WriteString(" ON CONFLICT(player_id, game_id) DO UPDATE SET ")
		updates := make([]string, 0, len(cols)-2)
		for _, c := range cols[2:] {
			updates = append(updates, c+" = excluded."+c)
		}
		b.WriteString(strings.Join(updates, ", "))
	}
	return b.String()
}

func insertArgs(l stats.StatLine) []any {
	args := []any{l.PlayerID, l.GameID}
	args = append(args, stats.Args(l)...)
	return append(args, l.Starter)
}

func (s *store) Create(ctx context.Context, line stats.StatLine) (stats.StatLine, error) {
	return s.write(ctx, line, false)
}

// Upsert inserts the line or replaces every statistic of the existing line
// for the same player and game.
func (s *store) Upsert(ctx context.Context, line stats.StatLine) (stats.StatLine, error) {
	return s.write(ctx, line, true)
}

func (s *store) write(ctx context.Context, line stats.StatLine, upsert bool) (stats.StatLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, insertStatement(upsert), insertArgs(line)...)
	if err != nil {
		switch {
		case database.IsUniqueViolation(err):
			return stats.StatLine{}, ErrDuplicateStatLine
		case database.IsForeignKeyViolation(err):
			return stats.StatLine{}, ErrUnknownReference
		}
		log.Error("Failed to write stat line", "error", err, "playerID", line.PlayerID, "gameID", line.GameID, "upsert", upsert)
		return stats.StatLine{}, fmt.Errorf("failed to write stat line: %w", err)
	}
	log.Debug("Wrote stat line", "playerID", line.PlayerID, "gameID", line.GameID, "upsert", upsert)
	return s.get(ctx, line.PlayerID, line.GameID)
}

func (s *store) Get(ctx context.Context, playerID, gameID int64) (stats.StatLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.get(ctx, playerID, gameID)
}

func (s *store) get(ctx context.Context, playerID, gameID int64) (stats.StatLine, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+selectColumns("sl")+" FROM stat_lines sl WHERE sl.player_id = ? AND sl.game_id = ?",
		playerID, gameID)
	l, err := scanLine(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return stats.StatLine{}, fmt.Errorf("player %d, game %d: %w", playerID, gameID, ErrStatLineNotFound)
		}
		return stats.StatLine{}, fmt.Errorf("database error: %w", err)
	}
	return l, nil
}

// Patch updates only the fields set in patch. An empty patch returns the
// line unchanged.
func (s *store) Patch(ctx context.Context, playerID, gameID int64, patch stats.Patch) (stats.StatLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	assignments := patch.Assignments()
	if len(assignments) == 0 {
		return s.get(ctx, playerID, gameID)
	}

	sets := make([]string, 0, len(assignments))
	args := make([]any, 0, len(assignments)+2)
	for _, a := range assignments {
		sets = append(sets, a.Column+" = ?")
		args = append(args, a.Value)
	}
	args = append(args, playerID, gameID)

	res, err := s.db.ExecContext(ctx,
		"UPDATE stat_lines SET "+strings.Join(sets, ", ")+" WHERE player_id = ? AND game_id = ?", args...)
	if err != nil {
		log.Error("Failed to patch stat line", "error", err, "playerID", playerID, "gameID", gameID)
		return stats.StatLine{}, fmt.Errorf("failed to patch stat line: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return stats.StatLine{}, fmt.Errorf("player %d, game %d: %w", playerID, gameID, ErrStatLineNotFound)
	}
	return s.get(ctx, playerID, gameID)
}

func (s *store) Delete(ctx context.Context, playerID, gameID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM stat_lines WHERE player_id = ? AND game_id = ?", playerID, gameID)
	if err != nil {
		return fmt.Errorf("failed to delete stat line: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("player %d, game %d: %w", playerID, gameID, ErrStatLineNotFound)
	}
	return nil
}

// ForGame returns a game's box score, starters first.
func (s *store) ForGame(ctx context.Context, gameID int64) ([]stats.StatLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queryLines(ctx,
		"SELECT "+selectColumns("sl")+" FROM stat_lines sl WHERE sl.game_id = ? ORDER BY sl.starter DESC, sl.player_id",
		gameID)
}

// GameLog returns a player's stat lines in game date order.
func (s *store) GameLog(ctx context.Context, playerID int64) ([]GameLogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+selectColumns("sl")+`, g.date, g.opponent, g.location
		FROM stat_lines sl
		JOIN games g ON g.id = sl.game_id
		WHERE sl.player_id = ?
		ORDER BY g.date, g.id`, playerID)
	if err != nil {
		log.Error("Failed to query game log", "error", err, "playerID", playerID)
		return nil, err
	}
	defer rows.Close()

	entries := []GameLogEntry{}
	for rows.Next() {
		var e GameLogEntry
		var location sql.NullString
		e.StatLine, err = scanLine(rows, &e.Date, &e.Opponent, &location)
		if err != nil {
			return nil, err
		}
		if location.Valid {
			e.Location = &location.String
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// StatLines returns the raw lines matching filter.
func (s *store) StatLines(ctx context.Context, filter stats.Filter) ([]stats.StatLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := "SELECT " + selectColumns("sl") + " FROM stat_lines sl"
	var args []any
	if filter.PlayerID != nil {
		query += " WHERE sl.player_id = ?"
		args = append(args, *filter.PlayerID)
	}
	query += " ORDER BY sl.game_id, sl.player_id"
	return s.queryLines(ctx, query, args...)
}

// GroupedStatLines returns the lines matching filter with the label of the
// requested game attribute.
func (s *store) GroupedStatLines(ctx context.Context, filter stats.Filter, group stats.GroupBy) ([]stats.GroupedStatLine, error) {
	labelColumn, ok := groupColumns[group]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedGroup, group)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	query := "SELECT " + selectColumns("sl") + ", " + labelColumn +
		" FROM stat_lines sl JOIN games g ON g.id = sl.game_id"
	var args []any
	if filter.PlayerID != nil {
		query += " WHERE sl.player_id = ?"
		args = append(args, *filter.PlayerID)
	}
	query += " ORDER BY sl.game_id, sl.player_id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("Failed to query grouped stat lines", "error", err, "group", group)
		return nil, err
	}
	defer rows.Close()

	var out []stats.GroupedStatLine
	for rows.Next() {
		var label sql.NullString
		l, err := scanLine(rows, &label)
		if err != nil {
			return nil, err
		}
		g := stats.GroupedStatLine{Line: l}
		if label.Valid {
			g.Label = &label.String
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// Players lists every roster player, with or without stat lines.
func (s *store) Players(ctx context.Context) ([]stats.PlayerRef, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, "SELECT id, name, jersey_number, position FROM players ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []stats.PlayerRef
	for rows.Next() {
		var p stats.PlayerRef
		var jersey sql.NullInt64
		var position sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &jersey, &position); err != nil {
			return nil, err
		}
		if jersey.Valid {
			n := int(jersey.Int64)
			p.JerseyNumber = &n
		}
		if position.Valid {
			p.Position = &position.String
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *store) queryLines(ctx context.Context, query string, args ...any) ([]stats.StatLine, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("Failed to query stat lines", "error", err)
		return nil, err
	}
	defer rows.Close()

	lines := []stats.StatLine{}
	for rows.Next() {
		l, err := scanLine(rows)
		if err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}
