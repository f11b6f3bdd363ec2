package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ecodeclub/careerhub/internal/company/internal/domain"
	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"
)

const companyExpiration = 30 * time.Minute

var ErrCompanyNotFound = errors.New("缓存中没有公司")

//go:generate mockgen -source=./company.go -destination=./mocks/company.mock.go -package=cachemocks CompanyCache
type CompanyCache interface {
	Set(ctx context.Context, c domain.Company) error
	Get(ctx context.Context, id string) (domain.Company, error)
	Delete(ctx context.Context, id string) error
}

type companyCache struct {
	ec ecache.Cache
}

func NewCompanyCache(ec ecache.Cache) CompanyCache {
	return &companyCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "company:",
		},
	}
}

func (c *companyCache) Set(ctx context.Context, company domain.Company) error {
	data, err := json.Marshal(company)
	if err != nil {
		return errors.Wrap(err, "序列化公司失败")
	}
	return c.ec.Set(ctx, company.ID, string(data), companyExpiration)
}

func (c *companyCache) Get(ctx context.Context, id string) (domain.Company, error) {
	val := c.ec.Get(ctx, id)
	if val.KeyNotFound() {
		return domain.Company{}, ErrCompanyNotFound
	}
	data, err := val.String()
	if err != nil {
		return domain.Company{}, errors.Wrap(err, "查询缓存出错")
	}
	var company domain.Company
	err = json.Unmarshal([]byte(data), &company)
	if err != nil {
		return domain.Company{}, errors.Wrap(err, "反序列化公司失败")
	}
	return company, nil
}

func (c *companyCache) Delete(ctx context.Context, id string) error {
	_, err := c.ec.Delete(ctx, id)
	return err
}
