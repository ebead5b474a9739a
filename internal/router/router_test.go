package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LyKhaiNghiep/MSWT-Mobile-sub000/internal/handlers"
	"github.com/LyKhaiNghiep/MSWT-Mobile-sub000/internal/mockdata"
	"github.com/LyKhaiNghiep/MSWT-Mobile-sub000/internal/models"
)

const testSeedPassword = "mswt123456"

func newTestEngine(t *testing.T, shape handlers.LoginShape) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	Setup(engine, mockdata.NewSeeded(), Config{
		JWTSecret:  []byte("router-test-secret"),
		LoginShape: shape,
	})
	return engine
}

func doJSON(engine *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func loginAs(t *testing.T, engine *gin.Engine, userName string) string {
	t.Helper()
	rec := doJSON(engine, http.MethodPost, "/users/login", "", gin.H{
		"userName": userName,
		"password": testSeedPassword,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var envelope struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotEmpty(t, envelope.Token)
	return envelope.Token
}

func TestLogin_TokenAndUserShape(t *testing.T) {
	engine := newTestEngine(t, handlers.ShapeTokenAndUser)
	rec := doJSON(engine, http.MethodPost, "/users/login", "", gin.H{
		"userName": "anle",
		"password": testSeedPassword,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.NotEmpty(t, envelope.Token)
	assert.Equal(t, "U001", envelope.User.UserID)
	assert.Equal(t, "Lê Văn An", envelope.User.FullName)
	assert.Equal(t, models.RoleWorker, envelope.User.Role)
}

func TestLogin_BareTokenShape(t *testing.T) {
	engine := newTestEngine(t, handlers.ShapeBareToken)
	rec := doJSON(engine, http.MethodPost, "/users/login", "", gin.H{
		"userName": "anle",
		"password": testSeedPassword,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var token string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &token))
	assert.NotEmpty(t, token)
}

func TestLogin_LegacyProfileShape(t *testing.T) {
	engine := newTestEngine(t, handlers.ShapeLegacyProfile)
	rec := doJSON(engine, http.MethodPost, "/users/login", "", gin.H{
		"userName": "binhtran",
		"password": testSeedPassword,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, "U002", user.UserID)
	// The legacy shape carries no token at all.
	assert.NotContains(t, rec.Body.String(), `"token"`)
}

func TestLogin_WrongPassword(t *testing.T) {
	engine := newTestEngine(t, handlers.ShapeTokenAndUser)
	rec := doJSON(engine, http.MethodPost, "/users/login", "", gin.H{
		"userName": "anle",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sai tài khoản hoặc mật khẩu")
}

func TestLogin_LockedAccount(t *testing.T) {
	engine := newTestEngine(t, handlers.ShapeTokenAndUser)
	rec := doJSON(engine, http.MethodPost, "/users/login", "", gin.H{
		"userName": "khoa",
		"password": testSeedPassword,
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Tài khoản đã bị khóa")
}

func TestLogin_MissingFields(t *testing.T) {
	engine := newTestEngine(t, handlers.ShapeTokenAndUser)
	rec := doJSON(engine, http.MethodPost, "/users/login", "", gin.H{"userName": "anle"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	engine := newTestEngine(t, handlers.ShapeTokenAndUser)
	rec := doJSON(engine, http.MethodGet, "/scheduledetails/user/U001", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(engine, http.MethodGet, "/scheduledetails/user/U001", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSchedules_WorkerReadsOwn(t *testing.T) {
	engine := newTestEngine(t, handlers.ShapeTokenAndUser)
	token := loginAs(t, engine, "anle")

	rec := doJSON(engine, http.MethodGet, "/scheduledetails/user/U001", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var records []models.ScheduleRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	assert.NotEmpty(t, records)
	for _, rec := range records {
		assert.True(t, rec.OwnerID == "U001" || rec.SupervisorID == "U001")
	}
}

func TestSchedules_WorkerCannotReadOthers(t *testing.T) {
	engine := newTestEngine(t, handlers.ShapeTokenAndUser)
	token := loginAs(t, engine, "anle")

	rec := doJSON(engine, http.MethodGet, "/scheduledetails/user/U002", token, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSchedules_SupervisorReadsWorker(t *testing.T) {
	engine := newTestEngine(t, handlers.ShapeTokenAndUser)
	token := loginAs(t, engine, "binhtran")

	rec := doJSON(engine, http.MethodGet, "/scheduledetails/user/U001", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSchedules_StatusUpdate(t *testing.T) {
	engine := newTestEngine(t, handlers.ShapeTokenAndUser)
	token := loginAs(t, engine, "anle")

	rec := doJSON(engine, http.MethodPut, "/scheduledetails/SD004", token, gin.H{"status": "Hoàn thành"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(engine, http.MethodGet, "/scheduledetails/user/U001", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var records []models.ScheduleRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	found := false
	for _, r := range records {
		if r.ID == "SD004" {
			found = true
			assert.Equal(t, "Hoàn thành", r.Status)
		}
	}
	assert.True(t, found)
}

func TestRating_SupervisorOnly(t *testing.T) {
	engine := newTestEngine(t, handlers.ShapeTokenAndUser)

	workerToken := loginAs(t, engine, "anle")
	rec := doJSON(engine, http.MethodPut, "/scheduledetails/scheduledetails/rating/SD001", workerToken, gin.H{
		"rating": 4.0,
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	supToken := loginAs(t, engine, "binhtran")
	rec = doJSON(engine, http.MethodPut, "/scheduledetails/scheduledetails/rating/SD001", supToken, gin.H{
		"rating":  4.0,
		"comment": "Làm tốt",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRating_OutOfRangeRejected(t *testing.T) {
	engine := newTestEngine(t, handlers.ShapeTokenAndUser)
	token := loginAs(t, engine, "binhtran")

	rec := doJSON(engine, http.MethodPut, "/scheduledetails/scheduledetails/rating/SD001", token, gin.H{
		"rating": 6.0,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAssets_ListAndReportFlow(t *testing.T) {
	engine := newTestEngine(t, handlers.ShapeTokenAndUser)
	token := loginAs(t, engine, "anle")

	rec := doJSON(engine, http.MethodGet, "/restrooms", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var restrooms []models.Restroom
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &restrooms))
	assert.Len(t, restrooms, 2)

	rec = doJSON(engine, http.MethodPost, "/reports", token, gin.H{
		"reportName":  "Bóng đèn cháy",
		"description": "Khu B hành lang",
		"priority":    "Trung bình",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(engine, http.MethodGet, "/reports/user/U001", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var reports []models.IncidentReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reports))
	assert.Len(t, reports, 2)
	assert.Equal(t, "Bóng đèn cháy", reports[1].ReportName)
}

func TestLogout_Acknowledged(t *testing.T) {
	engine := newTestEngine(t, handlers.ShapeTokenAndUser)
	token := loginAs(t, engine, "anle")

	rec := doJSON(engine, http.MethodPost, "/users/logout", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Đăng xuất thành công")
}
