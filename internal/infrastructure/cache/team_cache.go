package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/scoresense/sports-api/internal/core/domain"
)

const teamTTL = 5 * time.Minute

// TeamCache is a best-effort read-through cache for single-team reads.
// Key format: team:<team_id>. A cache failure is logged and treated as a
// miss; the store stays the source of truth. Write-path reference checks
// never go through here.
type TeamCache struct {
	client *redis.Client
	log    zerolog.Logger
}

func NewTeamCache(client *redis.Client, log zerolog.Logger) *TeamCache {
	return &TeamCache{client: client, log: log}
}

func (c *TeamCache) Get(ctx context.Context, id int64) (*domain.Team, bool) {
	raw, err := c.client.Get(ctx, teamKey(id)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Int64("team_id", id).Msg("team cache read failed")
		}
		return nil, false
	}

	var team domain.Team
	if err := json.Unmarshal(raw, &team); err != nil {
		c.log.Warn().Err(err).Int64("team_id", id).Msg("team cache entry malformed")
		return nil, false
	}
	return &team, true
}

func (c *TeamCache) Set(ctx context.Context, team *domain.Team) {
	raw, err := json.Marshal(team)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, teamKey(team.TeamID), raw, teamTTL).Err(); err != nil {
		c.log.Warn().Err(err).Int64("team_id", team.TeamID).Msg("team cache write failed")
	}
}

func (c *TeamCache) Invalidate(ctx context.Context, id int64) {
	if err := c.client.Del(ctx, teamKey(id)).Err(); err != nil {
		c.log.Warn().Err(err).Int64("team_id", id).Msg("team cache invalidation failed")
	}
}

func teamKey(id int64) string {
	return fmt.Sprintf("team:%d", id)
}
