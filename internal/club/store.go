package club

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/courtside/internal/database"
)

// New creates a new ClubStore.
func New(db *sql.DB) ClubStore {
	return &store{
		db: db,
	}
}

func (s *store) AddPlayer(ctx context.Context, player Player) (Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO players (name, jersey_number, position) VALUES (?, ?, ?)",
		player.Name, player.JerseyNumber, player.Position)
	if err != nil {
		log.Error("Failed to add player", "error", err, "name", player.Name)
		return Player{}, fmt.Errorf("failed to add player: %w", err)
	}
	player.ID, err = res.LastInsertId()
	if err != nil {
		return Player{}, err
	}
	log.Info("Added player to the roster", "playerID", player.ID, "name", player.Name)
	return player, nil
}

func (s *store) GetPlayer(ctx context.Context, id int64) (Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, "SELECT id, name, jersey_number, position FROM players WHERE id = ?", id)
	p, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Player{}, fmt.Errorf("player %d: %w", id, ErrPlayerNotFound)
		}
		log.Error("Failed to query player", "error", err, "playerID", id)
		return Player{}, fmt.Errorf("database error: %w", err)
	}
	return p, nil
}

func (s *store) GetAllPlayers(ctx context.Context) ([]Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.allPlayers(ctx)
}

func (s *store) allPlayers(ctx context.Context) ([]Player, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, jersey_number, position FROM players ORDER BY id")
	if err != nil {
		log.Error("Failed to query all players", "error", err)
		return nil, err
	}
	defer rows.Close()

	players := []Player{}
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

// FindPlayers scores every roster player against query, best first.
func (s *store) FindPlayers(ctx context.Context, query string) ([]PlayerMatch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	players, err := s.allPlayers(ctx)
	if err != nil {
		return nil, err
	}
	matches := MatchPlayers(query, players)
	log.Debug("Matched players by name", "query", query, "matches", len(matches))
	return matches, nil
}

// DeletePlayer removes a player's stat lines and then the player.
func (s *store) DeletePlayer(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleteWithStatLines(ctx, "players", "player_id", id, ErrPlayerNotFound)
}

func (s *store) AddGame(ctx context.Context, game Game) (Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO games (date, opponent, location) VALUES (?, ?, ?)",
		game.Date, game.Opponent, game.Location)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return Game{}, ErrGameExists
		}
		log.Error("Failed to add game", "error", err, "date", game.Date, "opponent", game.Opponent)
		return Game{}, fmt.Errorf("failed to add game: %w", err)
	}
	game.ID, err = res.LastInsertId()
	if err != nil {
		return Game{}, err
	}
	log.Info("Added game", "gameID", game.ID, "date", game.Date, "opponent", game.Opponent)
	return game, nil
}

func (s *store) GetGame(ctx context.Context, id int64) (Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var g Game
	var location sql.NullString
	err := s.db.QueryRowContext(ctx, "SELECT id, date, opponent, location FROM games WHERE id = ?", id).
		Scan(&g.ID, &g.Date, &g.Opponent, &location)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Game{}, fmt.Errorf("game %d: %w", id, ErrGameNotFound)
		}
		log.Error("Failed to query game", "error", err, "gameID", id)
		return Game{}, fmt.Errorf("database error: %w", err)
	}
	g.Location = nullString(location)
	return g, nil
}

func (s *store) GetAllGames(ctx context.Context) ([]Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, "SELECT id, date, opponent, location FROM games ORDER BY date, id")
	if err != nil {
		log.Error("Failed to query all games", "error", err)
		return nil, err
	}
	defer rows.Close()

	games := []Game{}
	for rows.Next() {
		var g Game
		var location sql.NullString
		if err := rows.Scan(&g.ID, &g.Date, &g.Opponent, &location); err != nil {
			return nil, err
		}
		g.Location = nullString(location)
		games = append(games, g)
	}
	return games, rows.Err()
}

// DeleteGame removes a game's stat lines and then the game.
func (s *store) DeleteGame(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleteWithStatLines(ctx, "games", "game_id", id, ErrGameNotFound)
}

// deleteWithStatLines deletes the dependent stat lines and the parent row in
// one transaction. table and fkColumn are constants supplied by this package.
func (s *store) deleteWithStatLines(ctx context.Context, table, fkColumn string, id int64, notFound error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	lines, err := tx.ExecContext(ctx, "DELETE FROM stat_lines WHERE "+fkColumn+" = ?", id)
	if err != nil {
		tx.Rollback()
		log.Error("Failed to delete stat lines", "error", err, "table", table, "id", id)
		return fmt.Errorf("failed to delete stat lines: %w", err)
	}
	res, err := tx.ExecContext(ctx, "DELETE FROM "+table+" WHERE id = ?", id)
	if err != nil {
		tx.Rollback()
		log.Error("Failed to delete row", "error", err, "table", table, "id", id)
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		tx.Rollback()
		return fmt.Errorf("%s %d: %w", table, id, notFound)
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	removed, _ := lines.RowsAffected()
	log.Info("Deleted row with its stat lines", "table", table, "id", id, "stat_lines", removed)
	return nil
}

func scanPlayer(scanner interface{ Scan(...any) error }) (Player, error) {
	var p Player
	var jersey sql.NullInt64
	var position sql.NullString
	if err := scanner.Scan(&p.ID, &p.Name, &jersey, &position); err != nil {
		return Player{}, err
	}
	if jersey.Valid {
		n := int(jersey.Int64)
		p.JerseyNumber = &n
	}
	p.Position = nullString(position)
	return p, nil
}

func nullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}
