package graph

import (
	"github.com/graphql-go/graphql"
	gqlhandler "github.com/graphql-go/handler"
)

var playerType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Player",
	Fields: graphql.Fields{
		"player_id":   &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"name":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"position":    &graphql.Field{Type: graphql.String},
		"age":         &graphql.Field{Type: graphql.Int},
		"nationality": &graphql.Field{Type: graphql.String},
		"height":      &graphql.Field{Type: graphql.Int},
		"weight":      &graphql.Field{Type: graphql.Int},
		"team_id":     &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
	},
})

var playerStatsType = graphql.NewObject(graphql.ObjectConfig{
	Name: "PlayerStats",
	Fields: graphql.Fields{
		"stat_id":        &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"player_id":      &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"match_id":       &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"goals":          &graphql.Field{Type: graphql.Int},
		"assists":        &graphql.Field{Type: graphql.Int},
		"yellow_cards":   &graphql.Field{Type: graphql.Int},
		"red_cards":      &graphql.Field{Type: graphql.Int},
		"minutes_played": &graphql.Field{Type: graphql.Int},
	},
})

// NewSchema builds the executable schema around the resolver.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"players": {
				Type:    graphql.NewList(playerType),
				Resolve: r.resolvePlayers,
			},
			"playerById": {
				Type: playerType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: r.resolvePlayerByID,
			},
			"allPlayerStats": {
				Type:    graphql.NewList(playerStatsType),
				Resolve: r.resolveAllPlayerStats,
			},
			"playerStatsById": {
				Type: playerStatsType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: r.resolvePlayerStatsByID,
			},
			"playerStatsWithRedCards": {
				Type:    graphql.NewList(playerStatsType),
				Resolve: r.resolvePlayerStatsWithRedCards,
			},
			"playerStatsWithMinGoals": {
				Type: graphql.NewList(playerStatsType),
				Args: graphql.FieldConfigArgument{
					"goals": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: r.resolvePlayerStatsWithMinGoals,
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createPlayer": {
				Type: playerType,
				Args: graphql.FieldConfigArgument{
					"name":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"position":    &graphql.ArgumentConfig{Type: graphql.String},
					"age":         &graphql.ArgumentConfig{Type: graphql.Int},
					"nationality": &graphql.ArgumentConfig{Type: graphql.String},
					"height":      &graphql.ArgumentConfig{Type: graphql.Int},
					"weight":      &graphql.ArgumentConfig{Type: graphql.Int},
					"teamId":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: r.resolveCreatePlayer,
			},
			"updatePlayer": {
				Type: playerType,
				Args: graphql.FieldConfigArgument{
					"id":          &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"name":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"position":    &graphql.ArgumentConfig{Type: graphql.String},
					"age":         &graphql.ArgumentConfig{Type: graphql.Int},
					"nationality": &graphql.ArgumentConfig{Type: graphql.String},
					"height":      &graphql.ArgumentConfig{Type: graphql.Int},
					"weight":      &graphql.ArgumentConfig{Type: graphql.Int},
					"teamId":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: r.resolveUpdatePlayer,
			},
			"deletePlayer": {
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: r.resolveDeletePlayer,
			},
			"createPlayerStats": {
				Type: playerStatsType,
				Args: graphql.FieldConfigArgument{
					"playerId":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"matchId":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"goals":         &graphql.ArgumentConfig{Type: graphql.Int},
					"assists":       &graphql.ArgumentConfig{Type: graphql.Int},
					"yellowCards":   &graphql.ArgumentConfig{Type: graphql.Int},
					"redCards":      &graphql.ArgumentConfig{Type: graphql.Int},
					"minutesPlayed": &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: r.resolveCreatePlayerStats,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}

// NewHTTPHandler serves the schema over HTTP. GraphiQL is enabled so the
// schema can be explored in a browser.
func NewHTTPHandler(schema graphql.Schema) *gqlhandler.Handler {
	return gqlhandler.New(&gqlhandler.Config{
		Schema:        &schema,
		Pretty:        true,
		GraphiQL:      true,
		FormatErrorFn: formatError,
	})
}
