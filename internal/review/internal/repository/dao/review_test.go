package dao

import (
	"context"
	"fmt"
	"testing"

	"github.com/ecodeclub/careerhub/internal/test"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGORMReviewDAO_Insert(t *testing.T) {
	d := NewGORMReviewDAO(test.NewSQLiteDB(t, &Review{}))
	ctx := context.Background()

	r, err := d.Insert(ctx, Review{
		Id: 1, Uid: 100, CompanyId: "c1", Rating: 4, Title: "Good culture",
		Pros: sqlx.JsonColumn[[]string]{Val: []string{"Flexible hours"}, Valid: true},
	})
	require.NoError(t, err)
	assert.True(t, r.Ctime > 0)
	assert.Equal(t, r.Ctime, r.Utime)

	_, err = d.Insert(ctx, Review{Id: 2, Uid: 100, CompanyId: "c1", Rating: 1})
	assert.ErrorIs(t, err, ErrDuplicateReview)

	// 同一个用户评价另外一家公司没问题
	_, err = d.Insert(ctx, Review{Id: 3, Uid: 100, CompanyId: "c2", Rating: 2})
	require.NoError(t, err)

	list, err := d.List(ctx, "c1", 0, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, []string{"Flexible hours"}, list[0].Pros.Val)
}

func TestGORMReviewDAO_List(t *testing.T) {
	db := test.NewSQLiteDB(t, &Review{})
	d := NewGORMReviewDAO(db)
	ctx := context.Background()

	// ctime 由 Insert 覆盖，所以直接写库
	for i := 1; i <= 25; i++ {
		err := db.Create(&Review{
			Id: int64(i), Uid: int64(i), CompanyId: "c1",
			Title: fmt.Sprintf("review %d", i), Ctime: int64(1000 + i),
		}).Error
		require.NoError(t, err)
	}
	require.NoError(t, db.Create(&Review{Id: 99, Uid: 1, CompanyId: "c2", Ctime: 5000}).Error)

	list, err := d.List(ctx, "c1", 10, 10)
	require.NoError(t, err)
	require.Len(t, list, 10)
	for i, r := range list {
		assert.Equal(t, int64(15-i), r.Id)
	}

	list, err = d.List(ctx, "c1", 20, 10)
	require.NoError(t, err)
	assert.Len(t, list, 5)

	cnt, err := d.Count(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, int64(25), cnt)
}

func TestGORMReviewDAO_StatsAndDelete(t *testing.T) {
	d := NewGORMReviewDAO(test.NewSQLiteDB(t, &Review{}))
	ctx := context.Background()

	stats, err := d.Stats(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, Stats{}, stats)

	for _, r := range []Review{
		{Id: 1, Uid: 1, CompanyId: "c1", Rating: 4, WorkEnvironment: 5, Compensation: 2, CareerGrowth: 3},
		{Id: 2, Uid: 2, CompanyId: "c1", Rating: 2, WorkEnvironment: 3, Compensation: 4, CareerGrowth: 3},
		{Id: 3, Uid: 1, CompanyId: "c2", Rating: 5, WorkEnvironment: 5, Compensation: 5, CareerGrowth: 5},
	} {
		_, err = d.Insert(ctx, r)
		require.NoError(t, err)
	}
	stats, err = d.Stats(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, Stats{Total: 2, Rating: 3, WorkEnvironment: 4, Compensation: 3, CareerGrowth: 3}, stats)

	companyIds, err := d.DeleteByUid(ctx, 1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"c1", "c2"}, companyIds)

	cnt, err := d.Count(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), cnt)
	cnt, err = d.Count(ctx, "c2")
	require.NoError(t, err)
	assert.Equal(t, int64(0), cnt)
}
