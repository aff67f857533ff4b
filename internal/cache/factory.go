package cache

import (
	"github.com/rackhd/redfish-gateway/config"
)

// NewFromConfig builds the cache from cfg.Cache. A zero TTL disables caching.
func NewFromConfig(cfg *config.Config) *Cache {
	return New(cfg.Cache.TTL, cfg.Cache.PollerTTL)
}
