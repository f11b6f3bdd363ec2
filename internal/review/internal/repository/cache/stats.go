package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ecodeclub/careerhub/internal/review/internal/domain"
	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"
)

const statsExpiration = 10 * time.Minute

var ErrStatsNotFound = errors.New("缓存中没有评价统计")

//go:generate mockgen -source=./stats.go -destination=./mocks/stats.mock.go -package=cachemocks StatsCache
type StatsCache interface {
	Set(ctx context.Context, stats domain.Stats) error
	Get(ctx context.Context, companyId string) (domain.Stats, error)
	Delete(ctx context.Context, companyIds []string) error
}

type statsCache struct {
	ec ecache.Cache
}

func NewStatsCache(ec ecache.Cache) StatsCache {
	return &statsCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "review:stats:",
		},
	}
}

func (c *statsCache) Set(ctx context.Context, stats domain.Stats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return errors.Wrap(err, "序列化评价统计失败")
	}
	return c.ec.Set(ctx, stats.CompanyID, string(data), statsExpiration)
}

func (c *statsCache) Get(ctx context.Context, companyId string) (domain.Stats, error) {
	val := c.ec.Get(ctx, companyId)
	if val.KeyNotFound() {
		return domain.Stats{}, ErrStatsNotFound
	}
	data, err := val.String()
	if err != nil {
		return domain.Stats{}, errors.Wrap(err, "查询缓存出错")
	}
	var stats domain.Stats
	err = json.Unmarshal([]byte(data), &stats)
	if err != nil {
		return domain.Stats{}, errors.Wrap(err, "反序列化评价统计失败")
	}
	return stats, nil
}

func (c *statsCache) Delete(ctx context.Context, companyIds []string) error {
	if len(companyIds) == 0 {
		return nil
	}
	_, err := c.ec.Delete(ctx, companyIds...)
	return err
}
