// internal/repository/market.go

package repository

import (
	"context"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"career-workers/internal/common/logger"
	"career-workers/internal/common/metrics"
	"career-workers/internal/engine/features"

	"github.com/redis/go-redis/v9"
)

// MarketSignals serves per-skill market demand from an in-memory snapshot
// of a Redis hash. Skills without a signal use the fallback source.
type MarketSignals struct {
	redis    *redis.Client
	key      string
	fallback features.MarketDemandFunc
	logger   logger.Logger
	snapshot atomic.Pointer[map[string]float64]
}

func NewMarketSignals(rdb *redis.Client, key string, fallback features.MarketDemandFunc, log logger.Logger) *MarketSignals {
	if fallback == nil {
		fallback = features.RandomMarketDemand()
	}
	m := &MarketSignals{
		redis:    rdb,
		key:      key,
		fallback: fallback,
		logger:   log.WithFields(map[string]interface{}{"component": "market-signals"}),
	}
	empty := map[string]float64{}
	m.snapshot.Store(&empty)
	return m
}

// Refresh replaces the snapshot with the current hash contents. On error the
// previous snapshot stays in place.
func (m *MarketSignals) Refresh(ctx context.Context) error {
	raw, err := m.redis.HGetAll(ctx, m.key).Result()
	if err != nil {
		metrics.MarketSignalRefreshes.WithLabelValues("error").Inc()
		return err
	}

	next := make(map[string]float64, len(raw))
	for skill, v := range raw {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			m.logger.Debug("skipping unparsable market signal", map[string]interface{}{
				"skill": skill,
				"value": v,
			})
			continue
		}
		next[normalizeSkill(skill)] = clampUnit(f)
	}

	m.snapshot.Store(&next)
	metrics.MarketSignalRefreshes.WithLabelValues("success").Inc()
	return nil
}

// Run refreshes on every tick until ctx is done.
func (m *MarketSignals) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := m.Refresh(ctx); err != nil {
				m.logger.Warn("market signal refresh failed", map[string]interface{}{
					"key":   m.key,
					"error": err.Error(),
				})
			}
		}
	}
}

// Demand implements features.MarketDemandFunc.
func (m *MarketSignals) Demand(skill string) float64 {
	if v, ok := (*m.snapshot.Load())[normalizeSkill(skill)]; ok {
		return v
	}
	return m.fallback(skill)
}

func (m *MarketSignals) Len() int {
	return len(*m.snapshot.Load())
}

func normalizeSkill(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func clampUnit(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
