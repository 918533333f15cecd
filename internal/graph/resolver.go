package graph

import (
	"net/http"

	"github.com/graphql-go/graphql"

	"github.com/scoresense/sports-api/internal/core/authz"
	"github.com/scoresense/sports-api/internal/core/ports"
)

// Resolver exposes players and player statistics over GraphQL. Every
// resolver authorizes against the same policy the REST gate uses, keyed
// by the canonical REST route of the operation, so a caller cannot reach
// through GraphQL what the REST surface would deny.
type Resolver struct {
	players ports.PlayerService
	stats   ports.PlayerStatsService
	policy  *authz.Policy
}

func NewResolver(players ports.PlayerService, stats ports.PlayerStatsService, policy *authz.Policy) *Resolver {
	return &Resolver{players: players, stats: stats, policy: policy}
}

func (r *Resolver) authorize(p graphql.ResolveParams, method, path string) error {
	return r.policy.Authorize(method, path, authz.ClaimsFrom(p.Context))
}

func intArg(p graphql.ResolveParams, name string) (int64, bool) {
	v, ok := p.Args[name].(int)
	return int64(v), ok
}

func (r *Resolver) resolvePlayers(p graphql.ResolveParams) (interface{}, error) {
	if err := r.authorize(p, http.MethodGet, "/api/players"); err != nil {
		return nil, err
	}
	return r.players.GetAll(p.Context)
}

func (r *Resolver) resolvePlayerByID(p graphql.ResolveParams) (interface{}, error) {
	if err := r.authorize(p, http.MethodGet, "/api/players"); err != nil {
		return nil, err
	}
	id, ok := intArg(p, "id")
	if !ok {
		return nil, nil
	}
	return r.players.GetByID(p.Context, id)
}

func (r *Resolver) resolveCreatePlayer(p graphql.ResolveParams) (interface{}, error) {
	if err := r.authorize(p, http.MethodPost, "/api/players"); err != nil {
		return nil, err
	}
	teamID, _ := intArg(p, "teamId")
	in := ports.PlayerInput{
		Name:        stringArg(p, "name"),
		Position:    stringArg(p, "position"),
		Nationality: stringArg(p, "nationality"),
		TeamID:      teamID,
	}
	if age, ok := p.Args["age"].(int); ok {
		in.Age = age
	}
	if height, ok := p.Args["height"].(int); ok {
		in.Height = height
	}
	if weight, ok := p.Args["weight"].(int); ok {
		in.Weight = weight
	}
	return r.players.Create(p.Context, in)
}

func (r *Resolver) resolveUpdatePlayer(p graphql.ResolveParams) (interface{}, error) {
	if err := r.authorize(p, http.MethodPut, "/api/players"); err != nil {
		return nil, err
	}
	id, ok := intArg(p, "id")
	if !ok {
		return nil, nil
	}
	teamID, _ := intArg(p, "teamId")
	in := ports.PlayerInput{
		Name:        stringArg(p, "name"),
		Position:    stringArg(p, "position"),
		Nationality: stringArg(p, "nationality"),
		TeamID:      teamID,
	}
	if age, ok := p.Args["age"].(int); ok {
		in.Age = age
	}
	if height, ok := p.Args["height"].(int); ok {
		in.Height = height
	}
	if weight, ok := p.Args["weight"].(int); ok {
		in.Weight = weight
	}
	return r.players.Update(p.Context, id, in)
}

func (r *Resolver) resolveDeletePlayer(p graphql.ResolveParams) (interface{}, error) {
	if err := r.authorize(p, http.MethodDelete, "/api/players"); err != nil {
		return nil, err
	}
	id, ok := intArg(p, "id")
	if !ok {
		return false, nil
	}
	if err := r.players.Delete(p.Context, id); err != nil {
		return false, err
	}
	return true, nil
}

func (r *Resolver) resolveAllPlayerStats(p graphql.ResolveParams) (interface{}, error) {
	if err := r.authorize(p, http.MethodGet, "/api/player-stats"); err != nil {
		return nil, err
	}
	return r.stats.GetAll(p.Context)
}

func (r *Resolver) resolvePlayerStatsByID(p graphql.ResolveParams) (interface{}, error) {
	if err := r.authorize(p, http.MethodGet, "/api/player-stats"); err != nil {
		return nil, err
	}
	id, ok := intArg(p, "id")
	if !ok {
		return nil, nil
	}
	return r.stats.GetByID(p.Context, id)
}

func (r *Resolver) resolvePlayerStatsWithRedCards(p graphql.ResolveParams) (interface{}, error) {
	if err := r.authorize(p, http.MethodGet, "/api/player-stats"); err != nil {
		return nil, err
	}
	return r.stats.GetWithRedCards(p.Context)
}

func (r *Resolver) resolvePlayerStatsWithMinGoals(p graphql.ResolveParams) (interface{}, error) {
	if err := r.authorize(p, http.MethodGet, "/api/player-stats"); err != nil {
		return nil, err
	}
	goals, ok := p.Args["goals"].(int)
	if !ok {
		return nil, nil
	}
	return r.stats.GetWithMinGoals(p.Context, goals)
}

func (r *Resolver) resolveCreatePlayerStats(p graphql.ResolveParams) (interface{}, error) {
	if err := r.authorize(p, http.MethodPost, "/api/player-stats"); err != nil {
		return nil, err
	}
	playerID, _ := intArg(p, "playerId")
	matchID, _ := intArg(p, "matchId")
	in := ports.PlayerStatsInput{
		PlayerID: playerID,
		MatchID:  matchID,
	}
	if v, ok := p.Args["goals"].(int); ok {
		in.Goals = v
	}
	if v, ok := p.Args["assists"].(int); ok {
		in.Assists = v
	}
	if v, ok := p.Args["yellowCards"].(int); ok {
		in.YellowCards = v
	}
	if v, ok := p.Args["redCards"].(int); ok {
		in.RedCards = v
	}
	if v, ok := p.Args["minutesPlayed"].(int); ok {
		in.MinutesPlayed = v
	}
	return r.stats.Create(p.Context, in)
}

func stringArg(p graphql.ResolveParams, name string) string {
	s, _ := p.Args[name].(string)
	return s
}
