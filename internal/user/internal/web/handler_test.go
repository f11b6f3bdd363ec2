package web

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ecodeclub/careerhub/internal/pkg/token"
	"github.com/ecodeclub/careerhub/internal/pkg/validation"
	"github.com/ecodeclub/careerhub/internal/test"
	"github.com/ecodeclub/careerhub/internal/user/internal/domain"
	"github.com/ecodeclub/careerhub/internal/user/internal/service"
	usermocks "github.com/ecodeclub/careerhub/internal/user/mocks"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testUid int64 = 123

func newServer(svc service.UserService) *gin.Engine {
	server := gin.New()
	h := NewHandler(svc, token.NewJWTGenerator("careerhub", "test-key", time.Minute))
	h.PublicRoutes(server)
	server.Use(test.WithUid(testUid))
	h.PrivateRoutes(server)
	return server
}

func boolPtr(b bool) *bool {
	return &b
}

func TestHandler_Settings(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) service.UserService
		method   string
		path     string
		body     string
		wantCode int
		wantResp test.Result[[]validation.FieldError]
	}{
		{
			name: "修改资料成功",
			mock: func(ctrl *gomock.Controller) service.UserService {
				svc := usermocks.NewMockUserService(ctrl)
				svc.EXPECT().UpdateProfile(gomock.Any(), domain.User{
					Id: testUid, FullName: "Jane Doe", Email: "jane@example.com", Skills: "Go",
				}).Return(nil)
				return svc
			},
			method:   http.MethodPut,
			path:     "/users/profile",
			body:     `{"fullName":" Jane Doe ","email":"jane@example.com","skills":"Go"}`,
			wantCode: http.StatusOK,
			wantResp: test.Result[[]validation.FieldError]{Msg: "Profile updated successfully"},
		},
		{
			name: "资料校验失败",
			mock: func(ctrl *gomock.Controller) service.UserService {
				return usermocks.NewMockUserService(ctrl)
			},
			method:   http.MethodPut,
			path:     "/users/profile",
			body:     `{"fullName":"J","email":"not-an-email"}`,
			wantCode: http.StatusBadRequest,
			wantResp: test.Result[[]validation.FieldError]{
				Code: 501002,
				Msg:  "Validation failed",
				Data: []validation.FieldError{
					{Field: "fullName", Message: "must be at least 2 characters"},
					{Field: "email", Message: "must be a valid email address"},
				},
			},
		},
		{
			name: "邮箱被占用",
			mock: func(ctrl *gomock.Controller) service.UserService {
				svc := usermocks.NewMockUserService(ctrl)
				svc.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).Return(service.ErrDuplicateEmail)
				return svc
			},
			method:   http.MethodPut,
			path:     "/users/profile",
			body:     `{"fullName":"Jane Doe","email":"taken@example.com"}`,
			wantCode: http.StatusConflict,
			wantResp: test.Result[[]validation.FieldError]{Code: 501004, Msg: "Email is already in use"},
		},
		{
			name: "修改密码成功",
			mock: func(ctrl *gomock.Controller) service.UserService {
				svc := usermocks.NewMockUserService(ctrl)
				svc.EXPECT().ChangePassword(gomock.Any(), testUid, "old", "N3wPassword!").Return(nil)
				return svc
			},
			method:   http.MethodPut,
			path:     "/users/password",
			body:     `{"currentPassword":"old","newPassword":"N3wPassword!","confirmNewPassword":"N3wPassword!"}`,
			wantCode: http.StatusOK,
			wantResp: test.Result[[]validation.FieldError]{Msg: "Password updated successfully"},
		},
		{
			name: "新密码不符合规则",
			mock: func(ctrl *gomock.Controller) service.UserService {
				return usermocks.NewMockUserService(ctrl)
			},
			method:   http.MethodPut,
			path:     "/users/password",
			body:     `{"currentPassword":"old","newPassword":"newpassword1!","confirmNewPassword":"other"}`,
			wantCode: http.StatusBadRequest,
			wantResp: test.Result[[]validation.FieldError]{
				Code: 501002,
				Msg:  "Validation failed",
				Data: []validation.FieldError{
					{Field: "newPassword", Message: "must contain at least one uppercase letter"},
					{Field: "confirmNewPassword", Message: "does not match"},
				},
			},
		},
		{
			name: "当前密码错误",
			mock: func(ctrl *gomock.Controller) service.UserService {
				svc := usermocks.NewMockUserService(ctrl)
				svc.EXPECT().ChangePassword(gomock.Any(), testUid, "wrong", "N3wPassword!").Return(service.ErrWrongPassword)
				return svc
			},
			method:   http.MethodPut,
			path:     "/users/password",
			body:     `{"currentPassword":"wrong","newPassword":"N3wPassword!","confirmNewPassword":"N3wPassword!"}`,
			wantCode: http.StatusBadRequest,
			wantResp: test.Result[[]validation.FieldError]{
				Code: 501002,
				Msg:  "Validation failed",
				Data: []validation.FieldError{{Field: "currentPassword", Message: "is incorrect"}},
			},
		},
		{
			name: "修改通知设置",
			mock: func(ctrl *gomock.Controller) service.UserService {
				svc := usermocks.NewMockUserService(ctrl)
				svc.EXPECT().UpdateNotifications(gomock.Any(), testUid, domain.NotificationSettings{
					EmailNotifications: true, Newsletter: true,
				}).Return(nil)
				return svc
			},
			method:   http.MethodPut,
			path:     "/users/notifications",
			body:     `{"emailNotifications":true,"jobAlerts":false,"applicationUpdates":false,"newsletter":true,"marketingEmails":false}`,
			wantCode: http.StatusOK,
			wantResp: test.Result[[]validation.FieldError]{Msg: "Notification settings updated successfully"},
		},
		{
			name: "通知设置缺少字段",
			mock: func(ctrl *gomock.Controller) service.UserService {
				return usermocks.NewMockUserService(ctrl)
			},
			method:   http.MethodPut,
			path:     "/users/notifications",
			body:     `{"emailNotifications":true,"jobAlerts":false,"applicationUpdates":false,"newsletter":true}`,
			wantCode: http.StatusBadRequest,
			wantResp: test.Result[[]validation.FieldError]{
				Code: 501002,
				Msg:  "Validation failed",
				Data: []validation.FieldError{{Field: "marketingEmails", Message: "is required"}},
			},
		},
		{
			name: "修改隐私设置",
			mock: func(ctrl *gomock.Controller) service.UserService {
				svc := usermocks.NewMockUserService(ctrl)
				svc.EXPECT().UpdatePrivacy(gomock.Any(), testUid, domain.PrivacySettings{
					ProfileVisibility: domain.ProfileVisibilityPrivate, ShowResume: true,
				}).Return(nil)
				return svc
			},
			method:   http.MethodPut,
			path:     "/users/privacy",
			body:     `{"profileVisibility":"private","showEmail":false,"showResume":true,"dataSharing":false}`,
			wantCode: http.StatusOK,
			wantResp: test.Result[[]validation.FieldError]{Msg: "Privacy settings updated successfully"},
		},
		{
			name: "可见性取值不对",
			mock: func(ctrl *gomock.Controller) service.UserService {
				return usermocks.NewMockUserService(ctrl)
			},
			method:   http.MethodPut,
			path:     "/users/privacy",
			body:     `{"profileVisibility":"friends","showEmail":false,"showResume":true,"dataSharing":false}`,
			wantCode: http.StatusBadRequest,
			wantResp: test.Result[[]validation.FieldError]{
				Code: 501002,
				Msg:  "Validation failed",
				Data: []validation.FieldError{
					{Field: "profileVisibility", Message: "must be one of: public, private, connections"},
				},
			},
		},
		{
			name: "删除账号",
			mock: func(ctrl *gomock.Controller) service.UserService {
				svc := usermocks.NewMockUserService(ctrl)
				svc.EXPECT().DeleteAccount(gomock.Any(), testUid, "bye").Return(nil)
				return svc
			},
			method:   http.MethodDelete,
			path:     "/users/delete",
			body:     `{"confirmation":"DELETE","reason":" bye "}`,
			wantCode: http.StatusOK,
			wantResp: test.Result[[]validation.FieldError]{Msg: "Account deleted successfully"},
		},
		{
			name: "删除账号确认词不对",
			mock: func(ctrl *gomock.Controller) service.UserService {
				return usermocks.NewMockUserService(ctrl)
			},
			method:   http.MethodDelete,
			path:     "/users/delete",
			body:     `{"confirmation":"delete"}`,
			wantCode: http.StatusBadRequest,
			wantResp: test.Result[[]validation.FieldError]{
				Code: 501002,
				Msg:  "Validation failed",
				Data: []validation.FieldError{{Field: "confirmation", Message: `must be "DELETE"`}},
			},
		},
		{
			name: "删除账号失败",
			mock: func(ctrl *gomock.Controller) service.UserService {
				svc := usermocks.NewMockUserService(ctrl)
				svc.EXPECT().DeleteAccount(gomock.Any(), testUid, "").Return(errors.New("db down"))
				return svc
			},
			method:   http.MethodDelete,
			path:     "/users/delete",
			body:     `{"confirmation":"DELETE"}`,
			wantCode: http.StatusInternalServerError,
			wantResp: test.Result[[]validation.FieldError]{Code: 501001, Msg: "Internal server error"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newServer(tc.mock(ctrl))
			req := httptest.NewRequest(tc.method, tc.path, bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			recorder := test.NewJSONResponseRecorder[[]validation.FieldError]()
			server.ServeHTTP(recorder, req)
			assert.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func TestHandler_Login(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) service.UserService
		body     string
		wantCode int
	}{
		{
			name: "登录成功",
			mock: func(ctrl *gomock.Controller) service.UserService {
				svc := usermocks.NewMockUserService(ctrl)
				svc.EXPECT().Login(gomock.Any(), "jane@example.com", "Passw0rd!").
					Return(domain.User{Id: 7, Email: "jane@example.com"}, nil)
				return svc
			},
			body:     `{"email":"jane@example.com","password":"Passw0rd!"}`,
			wantCode: http.StatusOK,
		},
		{
			name: "密码错误",
			mock: func(ctrl *gomock.Controller) service.UserService {
				svc := usermocks.NewMockUserService(ctrl)
				svc.EXPECT().Login(gomock.Any(), "jane@example.com", "bad").
					Return(domain.User{}, service.ErrInvalidUserOrPassword)
				return svc
			},
			body:     `{"email":"jane@example.com","password":"bad"}`,
			wantCode: http.StatusUnauthorized,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newServer(tc.mock(ctrl))
			req := httptest.NewRequest(http.MethodPost, "/users/login", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			recorder := test.NewJSONResponseRecorder[LoginResp]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			if tc.wantCode != http.StatusOK {
				return
			}
			resp := recorder.MustScan().Data
			assert.Equal(t, int64(7), resp.Uid)
			uid, err := token.NewJWTVerifier("test-key").Verify(resp.AccessToken)
			require.NoError(t, err)
			assert.Equal(t, int64(7), uid)
		})
	}
}

func TestHandler_Signup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := usermocks.NewMockUserService(ctrl)
	svc.EXPECT().Signup(gomock.Any(), domain.User{
		Email: "jane@example.com", Password: "Passw0rd!", FullName: "Jane",
	}).Return(int64(9), nil)
	svc.EXPECT().Signup(gomock.Any(), gomock.Any()).Return(int64(0), service.ErrDuplicateEmail)
	server := newServer(svc)

	body := `{"email":"jane@example.com","password":"Passw0rd!","confirmPassword":"Passw0rd!","fullName":"Jane"}`
	for _, wantCode := range []int{http.StatusCreated, http.StatusConflict} {
		req := httptest.NewRequest(http.MethodPost, "/users/signup", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		server.ServeHTTP(recorder, req)
		assert.Equal(t, wantCode, recorder.Code)
	}
}

// bcrypt 按字节限制长度，72 个多字节字符已经超过上限
func TestHandler_PasswordTooManyBytes(t *testing.T) {
	pwd := "Aa1@" + strings.Repeat("é", 68)
	testCases := []struct {
		name   string
		method string
		path   string
		body   string
		field  string
	}{
		{
			name:   "注册",
			method: http.MethodPost,
			path:   "/users/signup",
			body: `{"email":"jane@example.com","password":"` + pwd + `","confirmPassword":"` + pwd +
				`","fullName":"Jane"}`,
			field: "password",
		},
		{
			name:   "修改密码",
			method: http.MethodPut,
			path:   "/users/password",
			body:   `{"currentPassword":"old","newPassword":"` + pwd + `","confirmNewPassword":"` + pwd + `"}`,
			field:  "newPassword",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			// 校验不通过，不会调用 service
			server := newServer(usermocks.NewMockUserService(ctrl))
			req := httptest.NewRequest(tc.method, tc.path, bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			recorder := test.NewJSONResponseRecorder[[]validation.FieldError]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusBadRequest, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, 501002, res.Code)
			assert.Equal(t, []validation.FieldError{{Field: tc.field, Message: "must be at most 72 bytes"}}, res.Data)
		})
	}
}

func TestHandler_Profile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := usermocks.NewMockUserService(ctrl)
	svc.EXPECT().Profile(gomock.Any(), testUid).Return(domain.User{
		Id:           testUid,
		Email:        "jane@example.com",
		Password:     "hash",
		FullName:     "Jane",
		Notification: domain.DefaultNotificationSettings(),
		Privacy:      domain.DefaultPrivacySettings(),
	}, nil)
	server := newServer(svc)
	recorder := test.NewJSONResponseRecorder[Profile]()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/users/profile", nil))
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, Profile{
		Id:       testUid,
		Email:    "jane@example.com",
		FullName: "Jane",
		Notifications: NotificationSettings{
			EmailNotifications: true,
			JobAlerts:          true,
			ApplicationUpdates: true,
		},
		Privacy: PrivacySettings{
			ProfileVisibility: "public",
			ShowResume:        true,
		},
	}, recorder.MustScan().Data)
}
