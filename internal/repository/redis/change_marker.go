package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-attendance/internal/domain/attendance"
	"github.com/redis/go-redis/v9"
)

const ChangeMarkerKey = "hris:attendance:change_marker"

// bumpScript stores max(ARGV[1], current+1) atomically and returns it.
var bumpScript = redis.NewScript(`
local current = tonumber(redis.call('GET', KEYS[1]) or '0')
local next = tonumber(ARGV[1])
if next <= current then
	next = current + 1
end
redis.call('SET', KEYS[1], next)
return next
`)

type changeMarkerRepository struct {
	rdb *redis.Client
}

func NewChangeMarkerRepository(rdb *redis.Client) attendance.ChangeMarkerRepository {
	return &changeMarkerRepository{rdb: rdb}
}

// Bump implements attendance.ChangeMarkerRepository.
func (c *changeMarkerRepository) Bump(ctx context.Context, at time.Time) (int64, error) {
	marker, err := bumpScript.Run(ctx, c.rdb, []string{ChangeMarkerKey}, at.UnixMilli()).Int64()
	if err != nil {
		return 0, fmt.Errorf("failed to bump change marker: %w", err)
	}
	return marker, nil
}

// Get implements attendance.ChangeMarkerRepository.
func (c *changeMarkerRepository) Get(ctx context.Context) (int64, error) {
	marker, err := c.rdb.Get(ctx, ChangeMarkerKey).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get change marker: %w", err)
	}
	return marker, nil
}
