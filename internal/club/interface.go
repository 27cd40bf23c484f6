package club

import "context"

// ClubStore defines the interface for the club's roster and fixtures.
type ClubStore interface {
	AddPlayer(ctx context.Context, player Player) (Player, error)
	GetPlayer(ctx context.Context, id int64) (Player, error)
	GetAllPlayers(ctx context.Context) ([]Player, error)
	FindPlayers(ctx context.Context, query string) ([]PlayerMatch, error)
	DeletePlayer(ctx context.Context, id int64) error
	AddGame(ctx context.Context, game Game) (Game, error)
	GetGame(ctx context.Context, id int64) (Game, error)
	GetAllGames(ctx context.Context) ([]Game, error)
	DeleteGame(ctx context.Context, id int64) error
}
