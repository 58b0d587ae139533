package v1

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workforce-hub/database"
	"github.com/workforce-hub/models"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	binding.EnableDecoderDisallowUnknownFields = true
	os.Exit(m.Run())
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testServer struct {
	t      *testing.T
	db     *gorm.DB
	router *gin.Engine
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)

	router := NewRouter(db, RouterOptions{
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
		Clock:     fixedClock{now: time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)},
	})
	return &testServer{t: t, db: db, router: router}
}

func (s *testServer) do(method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	s.t.Helper()
	var payload bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			payload.WriteString(b)
		default:
			require.NoError(s.t, json.NewEncoder(&payload).Encode(b))
		}
	}

	req := httptest.NewRequest(method, path, &payload)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

// login registers email and returns a token; admin promotes the account first
func (s *testServer) login(email string, admin bool) string {
	s.t.Helper()
	w, _ := s.do(http.MethodPost, "/api/v1/auth/register", "", map[string]string{"email": email, "password": "secret123"})
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())

	if admin {
		require.NoError(s.t, s.db.Model(&models.User{}).Where("email = ?", email).Update("role", models.RoleAdmin).Error)
	}

	w, env := s.do(http.MethodPost, "/api/v1/auth/login", "", map[string]string{"email": email, "password": "secret123"})
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(s.t, json.Unmarshal(env.Data, &resp))
	return resp.Token
}

func decode[T any](t *testing.T, env envelope) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(env.Data, &v))
	return v
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	w, _ := s.do(http.MethodGet, "/api/v1/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"database":"ok"`)
}

func TestProtectedRoutesNeedToken(t *testing.T) {
	s := newTestServer(t)

	w, env := s.do(http.MethodGet, "/api/v1/projects", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "error", env.Status)

	w, _ = s.do(http.MethodPost, "/api/v1/attendance/check-in", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginWithWrongPassword(t *testing.T) {
	s := newTestServer(t)
	s.login("staff@example.com", false)

	w, env := s.do(http.MethodPost, "/api/v1/auth/login", "", map[string]string{"email": "staff@example.com", "password": "nope-nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "error", env.Status)
}

func TestProjectTaskFlow(t *testing.T) {
	s := newTestServer(t)
	token := s.login("pm@example.com", false)

	w, env := s.do(http.MethodPost, "/api/v1/projects", token, map[string]string{"name": "Onboarding revamp"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	project := decode[models.Project](t, env)

	var last models.Project
	for _, title := range []string{"a", "b", "c"} {
		w, env = s.do(http.MethodPost, "/api/v1/projects/"+project.ID+"/tasks", token, map[string]string{"title": title})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		last = decode[models.Project](t, env)
	}
	require.Len(t, last.Tasks, 3)

	for _, task := range last.Tasks[1:] {
		w, env = s.do(http.MethodPost, "/api/v1/projects/"+project.ID+"/tasks/"+task.ID+"/toggle", token, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}
	toggled := decode[models.Project](t, env)
	assert.Equal(t, 3, toggled.TotalTasks)
	assert.Equal(t, 2, toggled.TasksCompleted)
	assert.Equal(t, 67, toggled.Progress)

	w, env = s.do(http.MethodDelete, "/api/v1/projects/"+project.ID+"/tasks/"+last.Tasks[0].ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 100, decode[models.Project](t, env).Progress)

	w, _ = s.do(http.MethodPost, "/api/v1/projects/"+project.ID+"/tasks/missing/toggle", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = s.do(http.MethodGet, "/api/v1/projects/missing", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = s.do(http.MethodPatch, "/api/v1/projects/"+project.ID+"/tasks/12345", token, map[string]string{"title": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, env = s.do(http.MethodGet, "/api/v1/projects/"+project.ID+"/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"completed":2`)
}

func TestDerivedFieldsAreRejected(t *testing.T) {
	s := newTestServer(t)
	token := s.login("pm@example.com", false)

	w, env := s.do(http.MethodPost, "/api/v1/projects", token, map[string]string{"name": "Counters"})
	require.Equal(t, http.StatusCreated, w.Code)
	project := decode[models.Project](t, env)

	w, _ = s.do(http.MethodPut, "/api/v1/projects/"+project.ID, token, `{"progress": 90}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = s.do(http.MethodPost, "/api/v1/projects/"+project.ID+"/tasks", token, `{"title": "x", "status": "completed"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = s.do(http.MethodPut, "/api/v1/projects/"+project.ID, token, `{"name": `)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProjectUpdateIsOwnerOnly(t *testing.T) {
	s := newTestServer(t)
	owner := s.login("owner@example.com", false)
	other := s.login("other@example.com", false)

	w, env := s.do(http.MethodPost, "/api/v1/projects", owner, map[string]string{"name": "Mine"})
	require.Equal(t, http.StatusCreated, w.Code)
	project := decode[models.Project](t, env)

	w, _ = s.do(http.MethodPut, "/api/v1/projects/"+project.ID, other, map[string]string{"name": "Theirs"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = s.do(http.MethodDelete, "/api/v1/projects/"+project.ID, owner, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAttendanceFlow(t *testing.T) {
	s := newTestServer(t)
	token := s.login("staff@example.com", false)

	w, env := s.do(http.MethodPost, "/api/v1/attendance/check-out", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", string(env.Data))

	for i := 0; i < 2; i++ {
		w, _ = s.do(http.MethodPost, "/api/v1/attendance/check-in", token, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	w, env = s.do(http.MethodPost, "/api/v1/attendance/check-out", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	record := decode[models.AttendanceRecord](t, env)
	assert.Equal(t, "2024-03-15", record.Date)
	assert.NotNil(t, record.CheckOut)

	w, env = s.do(http.MethodGet, "/api/v1/attendance", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.AttendanceRecord](t, env), 1)
}

func TestNoteCRUD(t *testing.T) {
	s := newTestServer(t)
	token := s.login("staff@example.com", false)
	other := s.login("peer@example.com", false)

	w, env := s.do(http.MethodPost, "/api/v1/notes", token, map[string]interface{}{"title": "Todo", "tags": []string{"work"}})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	note := decode[models.Note](t, env)
	assert.Equal(t, models.DefaultNoteColor, note.Color)

	w, env = s.do(http.MethodPut, "/api/v1/notes/"+note.ID, token, map[string]bool{"pinned": true})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[models.Note](t, env)
	assert.True(t, updated.Pinned)
	assert.Equal(t, "Todo", updated.Title)

	w, _ = s.do(http.MethodPut, "/api/v1/notes/"+note.ID, token, `{"owner": "someone"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = s.do(http.MethodGet, "/api/v1/notes/"+note.ID, other, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = s.do(http.MethodDelete, "/api/v1/notes/"+note.ID, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = s.do(http.MethodDelete, "/api/v1/notes/"+note.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminOnlyWrites(t *testing.T) {
	s := newTestServer(t)
	staff := s.login("staff@example.com", false)
	admin := s.login("admin@example.com", true)

	employee := map[string]interface{}{"employeeCode": "E-1", "name": "Kim", "basicSalary": 1000, "hra": 200}
	w, _ := s.do(http.MethodPost, "/api/v1/employees", staff, employee)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, env := s.do(http.MethodPost, "/api/v1/employees", admin, employee)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.InDelta(t, 1200, decode[models.Employee](t, env).GrossSalary, 0.001)

	w, _ = s.do(http.MethodGet, "/api/v1/employees", staff, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	leave := map[string]string{"type": "sick", "startDate": "2024-03-18", "endDate": "2024-03-19"}
	w, env = s.do(http.MethodPost, "/api/v1/time-off", staff, leave)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	request := decode[models.TimeOffRequest](t, env)

	w, _ = s.do(http.MethodPatch, "/api/v1/time-off/"+request.ID+"/review", staff, map[string]string{"status": "approved"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, env = s.do(http.MethodPatch, "/api/v1/time-off/"+request.ID+"/review", admin, map[string]string{"status": "approved"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, models.TimeOffApproved, decode[models.TimeOffRequest](t, env).Status)

	w, _ = s.do(http.MethodPut, "/api/v1/time-off/"+request.ID, staff, map[string]string{"status": "approved"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMalformedIDsAreNotFound(t *testing.T) {
	s := newTestServer(t)
	token := s.login("staff@example.com", false)

	for _, path := range []string{
		"/api/v1/projects/123",
		"/api/v1/projects/123/stats",
		"/api/v1/notes/123",
		"/api/v1/events/123",
		"/api/v1/users/123",
	} {
		w, env := s.do(http.MethodGet, path, token, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.Equal(t, "error", env.Status, path)
	}
}

func TestEventUpdateChecksStoredStart(t *testing.T) {
	s := newTestServer(t)
	token := s.login("staff@example.com", false)

	w, env := s.do(http.MethodPost, "/api/v1/events", token, map[string]string{"title": "Offsite", "startTime": "2024-03-15T09:00:00Z"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	event := decode[models.Event](t, env)

	w, _ = s.do(http.MethodPut, "/api/v1/events/"+event.ID, token, map[string]string{"endTime": "2024-03-13T09:00:00Z"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env = s.do(http.MethodPut, "/api/v1/events/"+event.ID, token, map[string]string{"endTime": "2024-03-15T12:00:00Z"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 12, decode[models.Event](t, env).EndTime.UTC().Hour())
}
