package main

import "github.com/scoresense/sports-api/cmd"

// @title           ScoreSense Sports API
// @version         1.0
// @description     Sports data backend: teams, players, matches, news and per-match player statistics behind a JWT/RBAC gateway.
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	cmd.Execute()
}
