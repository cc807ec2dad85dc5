// Package cache implements Redis-backed caching for computed month views.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/domain/entity"
	"github.com/budget-planner/backend/internal/domain/valueobject"
)

const (
	summaryKeyPrefix  = "summary:"
	cashFlowKeyPrefix = "cashflow:"
)

// summaryCache implements the adapter.SummaryCache interface on Redis.
// Every backend failure degrades to a cache miss: aggregation must keep
// working when Redis is down.
type summaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSummaryCache creates a new Redis-backed summary cache.
func NewSummaryCache(client *redis.Client, ttl time.Duration) adapter.SummaryCache {
	return &summaryCache{
		client: client,
		ttl:    ttl,
	}
}

// GetSummary returns the cached summary for the month, or nil on a miss.
func (c *summaryCache) GetSummary(ctx context.Context, month valueobject.MonthKey) (*entity.MonthSummary, error) {
	payload, err := c.client.Get(ctx, summaryKeyPrefix+month.String()).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("Summary cache read failed", "month", month.String(), "error", err)
		}
		return nil, nil
	}

	var summary entity.MonthSummary
	if err := json.Unmarshal(payload, &summary); err != nil {
		slog.Warn("Summary cache entry corrupt, treating as miss", "month", month.String(), "error", err)
		return nil, nil
	}
	return &summary, nil
}

// SetSummary stores the summary for the month.
func (c *summaryCache) SetSummary(ctx context.Context, summary *entity.MonthSummary) error {
	payload, err := json.Marshal(summary)
	if err != nil {
		return err
	}

	if err := c.client.Set(ctx, summaryKeyPrefix+summary.Month.String(), payload, c.ttl).Err(); err != nil {
		slog.Warn("Summary cache write failed", "month", summary.Month.String(), "error", err)
	}
	return nil
}

// GetCashFlow returns the cached cash flow for the month, or nil on a miss.
func (c *summaryCache) GetCashFlow(ctx context.Context, month valueobject.MonthKey) (*entity.CashFlow, error) {
	payload, err := c.client.Get(ctx, cashFlowKeyPrefix+month.String()).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("Cash flow cache read failed", "month", month.String(), "error", err)
		}
		return nil, nil
	}

	var flow entity.CashFlow
	if err := json.Unmarshal(payload, &flow); err != nil {
		slog.Warn("Cash flow cache entry corrupt, treating as miss", "month", month.String(), "error", err)
		return nil, nil
	}
	return &flow, nil
}

// SetCashFlow stores the cash flow for the month.
func (c *summaryCache) SetCashFlow(ctx context.Context, flow *entity.CashFlow) error {
	payload, err := json.Marshal(flow)
	if err != nil {
		return err
	}

	if err := c.client.Set(ctx, cashFlowKeyPrefix+flow.Month.String(), payload, c.ttl).Err(); err != nil {
		slog.Warn("Cash flow cache write failed", "month", flow.Month.String(), "error", err)
	}
	return nil
}

// InvalidateMonth drops all cached views for the month.
func (c *summaryCache) InvalidateMonth(ctx context.Context, month valueobject.MonthKey) error {
	keys := []string{
		summaryKeyPrefix + month.String(),
		cashFlowKeyPrefix + month.String(),
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		slog.Warn("Cache invalidation failed", "month", month.String(), "error", err)
	}
	return nil
}
