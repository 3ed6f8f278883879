package fiscal

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultTokenTTL срок жизни токена eKassa
const DefaultTokenTTL = time.Hour

// TokenCache хранит токен eKassa и обновляет его по истечении срока.
// Одновременные обновления схлопываются в один вызов login.
type TokenCache struct {
	login func(ctx context.Context) (string, error)
	ttl   time.Duration
	now   func() time.Time
	group singleflight.Group

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

// NewTokenCache создает новый TokenCache
func NewTokenCache(login func(ctx context.Context) (string, error), ttl time.Duration) *TokenCache {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenCache{
		login: login,
		ttl:   ttl,
		now:   time.Now,
	}
}

// Get возвращает действующий токен, при необходимости авторизуясь заново
func (c *TokenCache) Get(ctx context.Context) (string, error) {
	c.mu.Lock()
	if c.token != "" && c.now().Before(c.expiresAt) {
		token := c.token
		c.mu.Unlock()
		return token, nil
	}
	c.mu.Unlock()

	v, err, _ := c.group.Do("token", func() (any, error) {
		// Авторизация общая для всех ожидающих, отмена первого запроса ее не прерывает
		lctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loginTimeout)
		defer cancel()

		token, err := c.login(lctx)
		if err != nil {
			return "", err
		}

		c.mu.Lock()
		c.token = token
		c.expiresAt = c.now().Add(c.ttl)
		c.mu.Unlock()

		return token, nil
	})
	if err != nil {
		return "", err
	}

	return v.(string), nil
}

// Invalidate сбрасывает токен, например после ответа 401
func (c *TokenCache) Invalidate() {
	c.mu.Lock()
	c.token = ""
	c.expiresAt = time.Time{}
	c.mu.Unlock()
}
