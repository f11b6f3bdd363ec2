package dao

import (
	"context"
	"testing"

	"github.com/ecodeclub/careerhub/internal/test"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGORMApplicationDAO_InsertAndFind(t *testing.T) {
	d := NewGORMApplicationDAO(test.NewSQLiteDB(t, &Application{}))
	ctx := context.Background()

	a, err := d.Insert(ctx, Application{Id: 1, Uid: 100, JobId: "j1", Status: "applied", Notes: "via website"})
	require.NoError(t, err)
	assert.True(t, a.AppliedDate > 0)
	assert.Equal(t, a.AppliedDate, a.LastUpdated)

	_, err = d.Insert(ctx, Application{Id: 2, Uid: 100, JobId: "j1", Status: "applied"})
	assert.ErrorIs(t, err, ErrDuplicateApplication)

	found, err := d.FindById(ctx, 100, 1)
	require.NoError(t, err)
	assert.Equal(t, "via website", found.Notes)
	assert.False(t, found.Offer.Valid)

	// 别人的投递记录查不到
	_, err = d.FindById(ctx, 200, 1)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestGORMApplicationDAO_ListAndCount(t *testing.T) {
	db := test.NewSQLiteDB(t, &Application{})
	d := NewGORMApplicationDAO(db)
	ctx := context.Background()
	require.NoError(t, db.Create([]Application{
		{Id: 1, Uid: 100, JobId: "j1", Status: "applied", AppliedDate: 10, LastUpdated: 40},
		{Id: 2, Uid: 100, JobId: "j2", Status: "interviewing", AppliedDate: 20, LastUpdated: 30},
		{Id: 3, Uid: 100, JobId: "j3", Status: "applied", AppliedDate: 30, LastUpdated: 20},
		{Id: 4, Uid: 200, JobId: "j1", Status: "applied", AppliedDate: 40, LastUpdated: 10},
	}).Error)

	list, err := d.List(ctx, 100, "", "last_updated")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ids(list))

	list, err = d.List(ctx, 100, "", "applied_date")
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 2, 1}, ids(list))

	list, err = d.List(ctx, 100, "applied", "last_updated")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, ids(list))

	counts, err := d.CountByStatus(ctx, 100)
	require.NoError(t, err)
	assert.ElementsMatch(t, []StatusCount{
		{Status: "applied", Cnt: 2},
		{Status: "interviewing", Cnt: 1},
	}, counts)

	cnt, err := d.DeleteByUid(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(3), cnt)
	list, err = d.List(ctx, 100, "", "last_updated")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestGORMApplicationDAO_Update(t *testing.T) {
	db := test.NewSQLiteDB(t, &Application{})
	d := NewGORMApplicationDAO(db)
	ctx := context.Background()
	require.NoError(t, db.Create(&Application{Id: 1, Uid: 100, JobId: "j1", Status: "applied", LastUpdated: 1}).Error)

	require.NoError(t, d.UpdateStatus(ctx, 100, 1, "applied", "interviewing"))
	a, err := d.FindById(ctx, 100, 1)
	require.NoError(t, err)
	assert.Equal(t, "interviewing", a.Status)
	assert.True(t, a.LastUpdated > 1)

	// 状态已经不是 applied 了
	err = d.UpdateStatus(ctx, 100, 1, "applied", "rejected")
	assert.ErrorIs(t, err, ErrStatusChanged)
	err = d.UpdateStatus(ctx, 200, 1, "interviewing", "rejected")
	assert.ErrorIs(t, err, ErrRecordNotFound)

	err = d.Update(ctx, 100, 1, map[string]any{
		"offer": sqlx.JsonColumn[Offer]{Val: Offer{Salary: 120000, Notes: "signing bonus"}, Valid: true},
	})
	require.NoError(t, err)
	a, err = d.FindById(ctx, 100, 1)
	require.NoError(t, err)
	assert.True(t, a.Offer.Valid)
	assert.Equal(t, Offer{Salary: 120000, Notes: "signing bonus"}, a.Offer.Val)

	err = d.Update(ctx, 200, 1, map[string]any{"notes": "not mine"})
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func ids(list []Application) []int64 {
	res := make([]int64, 0, len(list))
	for _, a := range list {
		res = append(res, a.Id)
	}
	return res
}
