package memcache_fx

import (
	"time"

	"go.uber.org/fx"

	mem "tripmate/pkg/memcache"
)

var Module = fx.Provide(provideTTLStore)

func provideTTLStore() mem.TTLStore {
	return mem.NewTTLCache(time.Hour, 10*time.Minute)
}
