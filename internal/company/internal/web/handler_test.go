package web

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/careerhub/internal/company/internal/domain"
	"github.com/ecodeclub/careerhub/internal/company/internal/service"
	companymocks "github.com/ecodeclub/careerhub/internal/company/mocks"
	"github.com/ecodeclub/careerhub/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandler_Detail(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) service.CompanyService
		id       string
		wantCode int
		wantResp test.Result[CompanyVO]
	}{
		{
			name: "查询成功",
			mock: func(ctrl *gomock.Controller) service.CompanyService {
				svc := companymocks.NewMockCompanyService(ctrl)
				svc.EXPECT().GetById(gomock.Any(), "c1").Return(domain.Company{
					ID: "c1", Name: "Acme", Ctime: 1, Utime: 2,
				}, nil)
				return svc
			},
			id:       "c1",
			wantCode: http.StatusOK,
			wantResp: test.Result[CompanyVO]{Data: CompanyVO{ID: "c1", Name: "Acme", Ctime: 1, Utime: 2}},
		},
		{
			name: "公司不存在",
			mock: func(ctrl *gomock.Controller) service.CompanyService {
				svc := companymocks.NewMockCompanyService(ctrl)
				svc.EXPECT().GetById(gomock.Any(), "c404").Return(domain.Company{}, service.ErrCompanyNotFound)
				return svc
			},
			id:       "c404",
			wantCode: http.StatusNotFound,
			wantResp: test.Result[CompanyVO]{Code: 502003, Msg: "Company not found"},
		},
		{
			name: "系统错误",
			mock: func(ctrl *gomock.Controller) service.CompanyService {
				svc := companymocks.NewMockCompanyService(ctrl)
				svc.EXPECT().GetById(gomock.Any(), "c1").Return(domain.Company{}, errors.New("db down"))
				return svc
			},
			id:       "c1",
			wantCode: http.StatusInternalServerError,
			wantResp: test.Result[CompanyVO]{Code: 502001, Msg: "Internal server error"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := gin.New()
			NewHandler(tc.mock(ctrl)).PublicRoutes(server)

			req := httptest.NewRequest(http.MethodGet, "/companies/"+tc.id, nil)
			recorder := test.NewJSONResponseRecorder[CompanyVO]()
			server.ServeHTTP(recorder, req)
			assert.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func TestHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := companymocks.NewMockCompanyService(ctrl)
	// limit 超过上限的时候截断
	svc.EXPECT().List(gomock.Any(), 0, 100).Return([]domain.Company{{ID: "c1", Name: "Acme"}}, int64(1), nil)
	server := gin.New()
	NewHandler(svc).PublicRoutes(server)

	req := httptest.NewRequest(http.MethodGet, "/companies?offset=-1&limit=1000", nil)
	recorder := test.NewJSONResponseRecorder[ListCompanyResp]()
	server.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, ListCompanyResp{
		Total: 1,
		List:  []CompanyVO{{ID: "c1", Name: "Acme"}},
	}, recorder.MustScan().Data)
}

func TestAdminHandler_Save(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) service.CompanyService
		body     string
		wantCode int
	}{
		{
			name: "保存成功",
			mock: func(ctrl *gomock.Controller) service.CompanyService {
				svc := companymocks.NewMockCompanyService(ctrl)
				svc.EXPECT().Save(gomock.Any(), domain.Company{ID: "c1", Name: "Acme"}).Return("c1", nil)
				return svc
			},
			body:     `{"id":" c1 ","name":"Acme"}`,
			wantCode: http.StatusOK,
		},
		{
			name: "缺少名称",
			mock: func(ctrl *gomock.Controller) service.CompanyService {
				return companymocks.NewMockCompanyService(ctrl)
			},
			body:     `{"id":"c1","name":"  "}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "官网不是合法的地址",
			mock: func(ctrl *gomock.Controller) service.CompanyService {
				return companymocks.NewMockCompanyService(ctrl)
			},
			body:     `{"id":"c1","name":"Acme","website":"acme"}`,
			wantCode: http.StatusBadRequest,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := gin.New()
			NewAdminHandler(tc.mock(ctrl)).PrivateRoutes(server)
			req := httptest.NewRequest(http.MethodPost, "/company/save", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)
			assert.Equal(t, tc.wantCode, recorder.Code)
		})
	}
}
