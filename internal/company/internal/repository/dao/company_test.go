package dao

import (
	"context"
	"testing"

	"github.com/ecodeclub/careerhub/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGORMCompanyDAO(t *testing.T) {
	db := test.NewSQLiteDB(t, &Company{})
	d := NewGORMCompanyDAO(db)
	ctx := context.Background()

	id, err := d.Save(ctx, Company{Id: "c1", Name: "Acme"})
	require.NoError(t, err)
	assert.Equal(t, "c1", id)
	first, err := d.FindById(ctx, "c1")
	require.NoError(t, err)

	// 同一个 id 再保存一次就是更新，ctime 不变
	_, err = d.Save(ctx, Company{Id: "c1", Name: "Acme Inc", Website: "https://acme.dev"})
	require.NoError(t, err)
	_, err = d.Save(ctx, Company{Id: "c2", Name: "Globex"})
	require.NoError(t, err)

	c, err := d.FindById(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "Acme Inc", c.Name)
	assert.Equal(t, "https://acme.dev", c.Website)
	assert.Equal(t, first.Ctime, c.Ctime)
	assert.True(t, c.Utime >= first.Utime)

	cs, err := d.FindByIds(ctx, []string{"c1", "c2", "c3"})
	require.NoError(t, err)
	assert.Len(t, cs, 2)
	cs, err = d.FindByIds(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, cs)

	cnt, err := d.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), cnt)
	cs, err = d.List(ctx, 0, 1)
	require.NoError(t, err)
	assert.Len(t, cs, 1)

	require.NoError(t, d.DeleteById(ctx, "c1"))
	_, err = d.FindById(ctx, "c1")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}
