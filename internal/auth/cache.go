package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// CachedSessions keeps session lookups in redis for ttl. Redis failures
// degrade to the wrapped repository.
type CachedSessions struct {
	next   ports.SessionRepo
	client *redis.Client
	ttl    time.Duration
	log    logger.Logger
}

func NewCachedSessions(next ports.SessionRepo, client *redis.Client, ttl time.Duration, log logger.Logger) *CachedSessions {
	return &CachedSessions{next: next, client: client, ttl: ttl, log: log}
}

func sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}

func (c *CachedSessions) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	data, err := c.client.Get(ctx, sessionKey(token)).Bytes()
	switch {
	case err == nil:
		var s domain.Session
		if err = json.Unmarshal(data, &s); err == nil {
			return &s, nil
		}
		c.log.LogAttrs(ctx, logger.WarnLevel, "corrupt cached session",
			logger.String("error", err.Error()),
		)
	case !errors.Is(err, redis.Nil):
		c.log.LogAttrs(ctx, logger.WarnLevel, "session cache unavailable",
			logger.String("error", err.Error()),
		)
	}

	s, err := c.next.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	c.store(ctx, s)
	return s, nil
}

func (c *CachedSessions) store(ctx context.Context, s *domain.Session) {
	data, err := json.Marshal(s)
	if err != nil {
		return
	}

	if err = c.client.Set(ctx, sessionKey(s.Token), data, c.ttl).Err(); err != nil {
		c.log.LogAttrs(ctx, logger.WarnLevel, "cache session",
			logger.Any("user_id", s.UserID),
			logger.String("error", err.Error()),
		)
	}
}
