package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ecodeclub/careerhub/internal/application/internal/domain"
	"github.com/ecodeclub/careerhub/internal/application/internal/repository"
	"github.com/ecodeclub/careerhub/internal/application/internal/repository/dao"
	"github.com/ecodeclub/careerhub/internal/company"
	companymocks "github.com/ecodeclub/careerhub/internal/company/mocks"
	"github.com/ecodeclub/careerhub/internal/job"
	jobmocks "github.com/ecodeclub/careerhub/internal/job/mocks"
	"github.com/ecodeclub/careerhub/internal/test"
	"github.com/ecodeclub/careerhub/internal/user"
	usermocks "github.com/ecodeclub/careerhub/internal/user/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testUid int64 = 100

type seqIDGenerator struct {
	id atomic.Int64
}

func (g *seqIDGenerator) Generate() int64 {
	return g.id.Add(1)
}

type ApplicationServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	svc  ApplicationService
}

func (s *ApplicationServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	jobs := map[string]job.Job{
		"j1": {ID: "j1", CompanyID: "c1", Title: "Backend Engineer", Location: "Remote", Type: "full-time"},
		"j2": {ID: "j2", CompanyID: "c2", Title: "Frontend Engineer"},
		"j3": {ID: "j3", CompanyID: "c1", Title: "Data Analyst"},
	}
	companies := map[string]company.Company{
		"c1": {ID: "c1", Name: "Acme"},
		"c2": {ID: "c2", Name: "Globex"},
	}
	jobSvc := jobmocks.NewMockJobService(s.ctrl)
	jobSvc.EXPECT().Detail(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, id string) (job.Job, error) {
		j, ok := jobs[id]
		if !ok {
			return job.Job{}, job.ErrJobNotFound
		}
		return j, nil
	}).AnyTimes()
	jobSvc.EXPECT().GetByIds(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, ids []string) (map[string]job.Job, error) {
		res := make(map[string]job.Job, len(ids))
		for _, id := range ids {
			if j, ok := jobs[id]; ok {
				res[id] = j
			}
		}
		return res, nil
	}).AnyTimes()
	companySvc := companymocks.NewMockCompanyService(s.ctrl)
	companySvc.EXPECT().GetByIds(gomock.Any(), gomock.Any()).Return(companies, nil).AnyTimes()
	userSvc := usermocks.NewMockUserService(s.ctrl)
	userSvc.EXPECT().Profile(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, uid int64) (user.User, error) {
		switch uid {
		case 404:
			return user.User{}, user.ErrUserNotFound
		case 500:
			return user.User{}, errors.New("mock db error")
		}
		return user.User{Id: uid}, nil
	}).AnyTimes()

	db := test.NewSQLiteDB(s.T(), &dao.Application{})
	s.svc = NewApplicationService(repository.NewApplicationRepository(dao.NewGORMApplicationDAO(db)),
		jobSvc, companySvc, userSvc, &seqIDGenerator{})
}

func (s *ApplicationServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ApplicationServiceTestSuite) TestApply() {
	t := s.T()
	ctx := context.Background()

	a, err := s.svc.Apply(ctx, testUid, "j1", "Applied through company website")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApplied, a.Status)
	assert.Equal(t, a.AppliedDate, a.LastUpdated)
	assert.Equal(t, domain.Job{
		ID: "j1", Title: "Backend Engineer", Location: "Remote", Type: "full-time",
		CompanyID: "c1", CompanyName: "Acme",
	}, a.Job)

	_, err = s.svc.Apply(ctx, testUid, "j1", "")
	assert.ErrorIs(t, err, ErrDuplicateApplication)

	_, err = s.svc.Apply(ctx, testUid, "j404", "")
	assert.ErrorIs(t, err, ErrJobNotFound)

	// 别人也可以投递同一个职位
	_, err = s.svc.Apply(ctx, testUid+1, "j1", "")
	require.NoError(t, err)
}

func (s *ApplicationServiceTestSuite) TestApplyWithoutAccount() {
	t := s.T()
	ctx := context.Background()

	_, err := s.svc.Apply(ctx, 404, "j1", "")
	assert.ErrorIs(t, err, ErrAccountNotFound)

	_, err = s.svc.Apply(ctx, 500, "j1", "")
	assert.EqualError(t, err, "查询用户 500 失败: mock db error")

	apps, counts, err := s.svc.List(ctx, 404, domain.Query{})
	require.NoError(t, err)
	assert.Empty(t, apps)
	assert.Equal(t, int64(0), counts[domain.StatusApplied])
}

func (s *ApplicationServiceTestSuite) TestUpdateStatus() {
	t := s.T()
	ctx := context.Background()
	a, err := s.svc.Apply(ctx, testUid, "j1", "")
	require.NoError(t, err)

	time.Sleep(2 * time.Millisecond)
	updated, err := s.svc.UpdateStatus(ctx, testUid, a.ID, domain.StatusInterviewing)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInterviewing, updated.Status)
	assert.True(t, updated.LastUpdated > a.LastUpdated)
	assert.Equal(t, a.AppliedDate, updated.AppliedDate)

	found, err := s.svc.Detail(ctx, testUid, a.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, found)

	// 同一个状态只刷新时间
	time.Sleep(2 * time.Millisecond)
	again, err := s.svc.UpdateStatus(ctx, testUid, a.ID, domain.StatusInterviewing)
	require.NoError(t, err)
	assert.True(t, again.LastUpdated > updated.LastUpdated)

	_, err = s.svc.UpdateStatus(ctx, testUid, a.ID, domain.StatusApplied)
	assert.ErrorIs(t, err, ErrIllegalTransition)

	_, err = s.svc.UpdateStatus(ctx, testUid, a.ID, domain.StatusWithdrawn)
	require.NoError(t, err)
	_, err = s.svc.UpdateStatus(ctx, testUid, a.ID, domain.StatusAccepted)
	assert.ErrorIs(t, err, ErrIllegalTransition)

	_, err = s.svc.UpdateStatus(ctx, testUid+1, a.ID, domain.StatusWithdrawn)
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}

func (s *ApplicationServiceTestSuite) TestUpdateDetails() {
	t := s.T()
	ctx := context.Background()
	a, err := s.svc.Apply(ctx, testUid, "j2", "")
	require.NoError(t, err)

	res, err := s.svc.UpdateNotes(ctx, testUid, a.ID, "Phone interview scheduled")
	require.NoError(t, err)
	assert.Equal(t, "Phone interview scheduled", res.Notes)

	interview := time.Date(2024, 1, 25, 15, 0, 0, 0, time.UTC).UnixMilli()
	res, err = s.svc.UpdateInterview(ctx, testUid, a.ID, interview)
	require.NoError(t, err)
	assert.Equal(t, interview, res.InterviewDate)

	offer := domain.Offer{Salary: 120000, Notes: "signing bonus"}
	res, err = s.svc.UpdateOffer(ctx, testUid, a.ID, offer)
	require.NoError(t, err)
	assert.Equal(t, offer, res.Offer)
	assert.Equal(t, "Phone interview scheduled", res.Notes)
	assert.Equal(t, "Globex", res.Job.CompanyName)

	res, err = s.svc.UpdateOffer(ctx, testUid, a.ID, domain.Offer{})
	require.NoError(t, err)
	assert.True(t, res.Offer.IsZero())

	_, err = s.svc.UpdateNotes(ctx, testUid+1, a.ID, "not mine")
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}

func (s *ApplicationServiceTestSuite) TestList() {
	t := s.T()
	ctx := context.Background()
	for _, jobId := range []string{"j1", "j2", "j3"} {
		_, err := s.svc.Apply(ctx, testUid, jobId, "")
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}
	apps, _, err := s.svc.List(ctx, testUid, domain.Query{})
	require.NoError(t, err)
	require.Len(t, apps, 3)
	_, err = s.svc.UpdateStatus(ctx, testUid, apps[2].ID, domain.StatusInterviewing)
	require.NoError(t, err)

	testCases := []struct {
		name    string
		q       domain.Query
		wantJob []string
	}{
		{name: "默认按照最后更新时间", q: domain.Query{}, wantJob: []string{"j1", "j3", "j2"}},
		{name: "按照投递时间", q: domain.Query{SortBy: domain.SortByAppliedDate}, wantJob: []string{"j3", "j2", "j1"}},
		{name: "按照状态过滤", q: domain.Query{Status: domain.StatusApplied}, wantJob: []string{"j3", "j2"}},
		{name: "搜索职位名称", q: domain.Query{Search: "ENGINEER"}, wantJob: []string{"j1", "j2"}},
		{name: "搜索公司名称", q: domain.Query{Search: "acme"}, wantJob: []string{"j1", "j3"}},
		{name: "搜不到", q: domain.Query{Search: "nothing"}, wantJob: []string{}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			apps, counts, err := s.svc.List(ctx, testUid, tc.q)
			require.NoError(t, err)
			jobIds := make([]string, 0, len(apps))
			for _, a := range apps {
				jobIds = append(jobIds, a.JobID)
			}
			assert.Equal(t, tc.wantJob, jobIds)
			assert.Equal(t, map[domain.Status]int64{
				domain.StatusApplied:      2,
				domain.StatusInterviewing: 1,
				domain.StatusRejected:     0,
				domain.StatusAccepted:     0,
				domain.StatusWithdrawn:    0,
			}, counts)
		})
	}

	require.NoError(t, s.svc.DeleteByUid(ctx, testUid))
	apps, _, err = s.svc.List(ctx, testUid, domain.Query{})
	require.NoError(t, err)
	assert.Empty(t, apps)
}

func TestApplicationService(t *testing.T) {
	suite.Run(t, new(ApplicationServiceTestSuite))
}
