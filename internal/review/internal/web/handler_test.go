package web

import (
	"bytes"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/ecodeclub/careerhub/internal/pkg/validation"
	"github.com/ecodeclub/careerhub/internal/review/internal/domain"
	"github.com/ecodeclub/careerhub/internal/review/internal/service"
	reviewmocks "github.com/ecodeclub/careerhub/internal/review/mocks"
	"github.com/ecodeclub/careerhub/internal/test"
	"github.com/ecodeclub/careerhub/internal/user"
	usermocks "github.com/ecodeclub/careerhub/internal/user/mocks"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testUid int64 = 100

func newServer(svc service.ReviewService, userSvc user.Service) *gin.Engine {
	server := gin.New()
	h := NewHandler(svc, userSvc)
	h.PublicRoutes(server)
	server.Use(test.WithUid(testUid))
	h.PrivateRoutes(server)
	return server
}

const validBody = `{"companyId":"c1","rating":4,"title":"Good culture",` +
	`"content":"Twenty-plus characters of real feedback text.",` +
	`"workEnvironment":4,"compensation":3,"careerGrowth":5,"pros":["Flexible hours"],"cons":[]}`

func TestHandler_Create(t *testing.T) {
	ctime := time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC).UnixMilli()
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) service.ReviewService
		body     string
		wantCode int
		wantResp test.Result[CreateReviewResp]
	}{
		{
			name: "创建成功",
			mock: func(ctrl *gomock.Controller) service.ReviewService {
				svc := reviewmocks.NewMockReviewService(ctrl)
				svc.EXPECT().Create(gomock.Any(), domain.Review{
					Uid:             testUid,
					CompanyID:       "c1",
					Rating:          4,
					WorkEnvironment: 4,
					Compensation:    3,
					CareerGrowth:    5,
					Title:           "Good culture",
					Content:         "Twenty-plus characters of real feedback text.",
					Pros:            []string{"Flexible hours"},
					Cons:            []string{},
				}).DoAndReturn(func(_ any, r domain.Review) (domain.Review, error) {
					r.ID = 1793
					r.Ctime = ctime
					return r, nil
				})
				return svc
			},
			body:     validBody,
			wantCode: http.StatusCreated,
			wantResp: test.Result[CreateReviewResp]{
				Msg: "Review submitted successfully",
				Data: CreateReviewResp{Review: ReviewSummary{
					ID: 1793, Rating: 4, Title: "Good culture", CreatedAt: "2024-05-01T08:30:00.000Z",
				}},
			},
		},
		{
			name: "重复评价",
			mock: func(ctrl *gomock.Controller) service.ReviewService {
				svc := reviewmocks.NewMockReviewService(ctrl)
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.Review{}, service.ErrDuplicateReview)
				return svc
			},
			body:     validBody,
			wantCode: http.StatusConflict,
			wantResp: test.Result[CreateReviewResp]{Code: 504004, Msg: "You have already reviewed this company"},
		},
		{
			name: "账号已注销",
			mock: func(ctrl *gomock.Controller) service.ReviewService {
				svc := reviewmocks.NewMockReviewService(ctrl)
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.Review{}, service.ErrAccountNotFound)
				return svc
			},
			body:     validBody,
			wantCode: http.StatusUnauthorized,
			wantResp: test.Result[CreateReviewResp]{Code: 401001, Msg: "Unauthorized"},
		},
		{
			name: "公司不存在",
			mock: func(ctrl *gomock.Controller) service.ReviewService {
				svc := reviewmocks.NewMockReviewService(ctrl)
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.Review{}, service.ErrCompanyNotFound)
				return svc
			},
			body:     validBody,
			wantCode: http.StatusNotFound,
			wantResp: test.Result[CreateReviewResp]{Code: 504003, Msg: "Company not found"},
		},
		{
			name: "系统错误",
			mock: func(ctrl *gomock.Controller) service.ReviewService {
				svc := reviewmocks.NewMockReviewService(ctrl)
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.Review{}, errors.New("db down"))
				return svc
			},
			body:     validBody,
			wantCode: http.StatusInternalServerError,
			wantResp: test.Result[CreateReviewResp]{Code: 504001, Msg: "Internal server error"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newServer(tc.mock(ctrl), usermocks.NewMockUserService(ctrl))
			req := httptest.NewRequest(http.MethodPost, "/reviews", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			recorder := test.NewJSONResponseRecorder[CreateReviewResp]()
			server.ServeHTTP(recorder, req)
			assert.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func TestHandler_CreateInvalid(t *testing.T) {
	testCases := []struct {
		name      string
		body      string
		wantField string
		wantMsg   string
	}{
		{
			name:      "评分超过 5",
			body:      strings.Replace(validBody, `"rating":4`, `"rating":6`, 1),
			wantField: "rating",
			wantMsg:   "must be at most 5",
		},
		{
			name:      "没有评分",
			body:      strings.Replace(validBody, `"rating":4,`, ``, 1),
			wantField: "rating",
			wantMsg:   "must be at least 1",
		},
		{
			name:      "标题太短",
			body:      strings.Replace(validBody, `"Good culture"`, `"  Ok  "`, 1),
			wantField: "title",
			wantMsg:   "must be at least 5 characters",
		},
		{
			name:      "标题太长",
			body:      strings.Replace(validBody, `"Good culture"`, `"`+strings.Repeat("a", 201)+`"`, 1),
			wantField: "title",
			wantMsg:   "must be at most 200 characters",
		},
		{
			name:      "内容太短",
			body:      strings.Replace(validBody, `"Twenty-plus characters of real feedback text."`, `"too short"`, 1),
			wantField: "content",
			wantMsg:   "must be at least 20 characters",
		},
		{
			name:      "内容太长",
			body:      strings.Replace(validBody, `"Twenty-plus characters of real feedback text."`, `"`+strings.Repeat("a", 2001)+`"`, 1),
			wantField: "content",
			wantMsg:   "must be at most 2000 characters",
		},
		{
			name:      "优点超过 10 条",
			body:      strings.Replace(validBody, `["Flexible hours"]`, `["a","b","c","d","e","f","g","h","i","j","k"]`, 1),
			wantField: "pros",
			wantMsg:   "must contain at most 10 entries",
		},
		{
			name:      "缺点是空字符串",
			body:      strings.Replace(validBody, `"cons":[]`, `"cons":["   "]`, 1),
			wantField: "cons[0]",
			wantMsg:   "must be at least 1 characters",
		},
		{
			name:      "工作类型不对",
			body:      strings.Replace(validBody, `"cons":[]`, `"cons":[],"workType":"freelance"`, 1),
			wantField: "workType",
			wantMsg:   "must be one of: full-time, part-time, internship, contract",
		},
		{
			name:      "评分是字符串",
			body:      strings.Replace(validBody, `"rating":4`, `"rating":"4"`, 1),
			wantField: "rating",
			wantMsg:   "must be an integer",
		},
		{
			name:      "评分是小数",
			body:      strings.Replace(validBody, `"rating":4`, `"rating":4.5`, 1),
			wantField: "rating",
			wantMsg:   "must be an integer",
		},
		{
			name:      "请求体不是 JSON",
			body:      `{"companyId":`,
			wantField: "body",
			wantMsg:   "must be valid JSON",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newServer(reviewmocks.NewMockReviewService(ctrl), usermocks.NewMockUserService(ctrl))
			req := httptest.NewRequest(http.MethodPost, "/reviews", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			recorder := test.NewJSONResponseRecorder[[]validation.FieldError]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusBadRequest, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, 504002, res.Code)
			assert.Equal(t, []validation.FieldError{{Field: tc.wantField, Message: tc.wantMsg}}, res.Data)
		})
	}
}

func TestHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctime := time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC).UnixMilli()
	svc := reviewmocks.NewMockReviewService(ctrl)
	svc.EXPECT().List(gomock.Any(), "c1", 10, 10).Return([]domain.Review{
		{ID: 2, Uid: 1, CompanyID: "c1", Rating: 5, Title: "Great", Pros: []string{"pay"}, Ctime: ctime},
		{ID: 1, Uid: 2, CompanyID: "c1", Rating: 3, Title: "Meh", WorkType: domain.WorkTypeContract, Ctime: ctime},
	}, int64(21), nil)
	userSvc := usermocks.NewMockUserService(ctrl)
	userSvc.EXPECT().FindByIds(gomock.Any(), []int64{1, 2}).Return(map[int64]user.User{
		1: {Id: 1, FullName: "Jane Doe"},
	}, nil)
	server := newServer(svc, userSvc)

	recorder := test.NewJSONResponseRecorder[ListReviewResp]()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/reviews?companyId=c1&page=2&limit=10", nil))
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, ListReviewResp{
		Reviews: []ReviewVO{
			{ID: 2, CompanyID: "c1", UserID: 1, UserName: "Jane Doe", Rating: 5, Title: "Great",
				Pros: []string{"pay"}, Cons: []string{}, CreatedAt: "2024-05-01T08:30:00.000Z"},
			{ID: 1, CompanyID: "c1", UserID: 2, UserName: "Anonymous", Rating: 3, Title: "Meh",
				Pros: []string{}, Cons: []string{}, CreatedAt: "2024-05-01T08:30:00.000Z", WorkType: "contract"},
		},
		Pagination: Pagination{Page: 2, Limit: 10, Total: 21, Pages: 3},
	}, recorder.MustScan().Data)
}

func TestHandler_ListParams(t *testing.T) {
	testCases := []struct {
		name       string
		query      string
		mock       func(svc *reviewmocks.MockReviewService)
		wantCode   int
		wantPaging Pagination
	}{
		{
			name:     "缺少 companyId",
			query:    "",
			mock:     func(svc *reviewmocks.MockReviewService) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name:  "默认分页",
			query: "companyId=c1&page=abc&limit=-1",
			mock: func(svc *reviewmocks.MockReviewService) {
				svc.EXPECT().List(gomock.Any(), "c1", 0, 10).Return(nil, int64(0), nil)
			},
			wantCode:   http.StatusOK,
			wantPaging: Pagination{Page: 1, Limit: 10},
		},
		{
			name:  "limit 超过上限",
			query: "companyId=c1&page=3&limit=500",
			mock: func(svc *reviewmocks.MockReviewService) {
				svc.EXPECT().List(gomock.Any(), "c1", 200, 100).Return(nil, int64(201), nil)
			},
			wantCode:   http.StatusOK,
			wantPaging: Pagination{Page: 3, Limit: 100, Total: 201, Pages: 3},
		},
		{
			name:  "page 太大",
			query: "companyId=c1&limit=10&page=" + strconv.Itoa(math.MaxInt/10+5),
			mock: func(svc *reviewmocks.MockReviewService) {
				svc.EXPECT().List(gomock.Any(), "c1", (math.MaxInt/10-1)*10, 10).Return(nil, int64(0), nil)
			},
			wantCode:   http.StatusOK,
			wantPaging: Pagination{Page: math.MaxInt / 10, Limit: 10},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := reviewmocks.NewMockReviewService(ctrl)
			tc.mock(svc)
			server := newServer(svc, usermocks.NewMockUserService(ctrl))
			recorder := test.NewJSONResponseRecorder[ListReviewResp]()
			server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/reviews?"+tc.query, nil))
			require.Equal(t, tc.wantCode, recorder.Code)
			res := recorder.MustScan()
			if tc.wantCode != http.StatusOK {
				assert.Equal(t, 504005, res.Code)
				return
			}
			assert.Equal(t, tc.wantPaging, res.Data.Pagination)
			assert.Empty(t, res.Data.Reviews)
		})
	}
}

func TestHandler_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := reviewmocks.NewMockReviewService(ctrl)
	svc.EXPECT().Stats(gomock.Any(), "c1").Return(domain.Stats{
		CompanyID: "c1", Total: 3, Rating: 11.0 / 3, WorkEnvironment: 4, Compensation: 2.25, CareerGrowth: 1,
	}, nil)
	server := newServer(svc, usermocks.NewMockUserService(ctrl))

	recorder := test.NewJSONResponseRecorder[StatsVO]()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/reviews/stats?companyId=c1", nil))
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, StatsVO{
		CompanyID: "c1", Total: 3, Rating: 3.7, WorkEnvironment: 4, Compensation: 2.3, CareerGrowth: 1,
	}, recorder.MustScan().Data)
}
