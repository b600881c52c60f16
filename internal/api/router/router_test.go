package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"lab-cms/internal/model"
	"lab-cms/internal/pkg/config"
	"lab-cms/internal/pkg/database"
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Detail  string          `json:"detail"`
	Data    json.RawMessage `json:"data"`
}

type testServer struct {
	t      *testing.T
	db     *gorm.DB
	engine *gin.Engine
}

func testConfig() *config.Config {
	return &config.Config{
		Server:  config.ServerConfig{Name: "lab-cms", Mode: gin.TestMode},
		CORS:    config.CORSConfig{AllowOrigins: []string{"*"}, MaxAge: 3600},
		Auth:    config.AuthConfig{PasswordEncoder: "plain", ActorHeader: "X-Admin-Username", DefaultActor: "admin"},
		Content: config.ContentConfig{SanitizeHTML: true},
	}
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	db, err := database.Open(sqlite.Open("file::memory:"), "silent")
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, database.Migrate(db))

	require.NoError(t, db.Create([]*model.User{
		{Username: "admin", Email: "admin@lab.edu", Password: "secret", Role: model.UserRoleAdmin, Status: model.UserStatusActive},
		{Username: "alice", Email: "alice@lab.edu", Password: "pw", Role: model.UserRoleUser, Status: model.UserStatusActive},
		{Username: "bob", Email: "bob@lab.edu", Password: "pw", Role: model.UserRoleUser, Status: model.UserStatusActive},
	}).Error)

	cfg := testConfig()
	services, err := NewServices(cfg, db)
	require.NoError(t, err)
	engine, err := Setup(cfg, services)
	require.NoError(t, err)

	return &testServer{t: t, db: db, engine: engine}
}

func (s *testServer) do(method, path string, body interface{}, headers ...string) (*httptest.ResponseRecorder, envelope) {
	s.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &env)
	}
	return w, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

func TestHealthAndRequestID(t *testing.T) {
	s := newTestServer(t)

	w, _ := s.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w, _ = s.do(http.MethodGet, "/health", nil, "X-Request-ID", "req-1")
	assert.Equal(t, "req-1", w.Header().Get("X-Request-ID"))
}

func TestCORSPreflightEchoesOrigin(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/posts", nil)
	req.Header.Set("Origin", "http://lab.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://lab.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPatch)
}

func TestPostLifecycle(t *testing.T) {
	s := newTestServer(t)

	w, env := s.do(http.MethodPost, "/api/posts", map[string]interface{}{
		"title":   "第一次组会",
		"content": "<p>内容</p><script>alert(1)</script>",
		"tags":    "组会,AI",
	}, "X-Admin-Username", "alice")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	created := decode[map[string]interface{}](t, env.Data)
	assert.Equal(t, "DRAFT", created["status"])
	assert.Equal(t, "alice", created["authorName"])
	assert.NotContains(t, created["content"], "script")
	id := int64(created["id"].(float64))

	// 草稿在公开接口不可见
	w, env = s.do(http.MethodGet, fmt.Sprintf("/api/posts/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "文章未发布", env.Message)

	w, _ = s.do(http.MethodGet, fmt.Sprintf("/api/posts/%d", id), nil, "X-Admin-Username", "admin")
	assert.Equal(t, http.StatusOK, w.Code)

	// 其他用户不能修改
	w, _ = s.do(http.MethodPut, fmt.Sprintf("/api/posts/%d", id), map[string]interface{}{
		"title": "改标题", "content": "c",
	}, "X-Admin-Username", "bob")
	assert.Equal(t, http.StatusForbidden, w.Code)

	// 发布
	w, env = s.do(http.MethodPatch, fmt.Sprintf("/api/posts/%d/status?status=published", id), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	published := decode[map[string]interface{}](t, env.Data)
	assert.Equal(t, "PUBLISHED", published["status"])
	assert.NotNil(t, published["publishedAt"])

	w, env = s.do(http.MethodGet, "/api/posts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	page := decode[map[string]interface{}](t, env.Data)
	assert.Equal(t, float64(1), page["totalElements"])
	assert.Equal(t, float64(0), page["number"])

	w, env = s.do(http.MethodGet, "/api/posts/tag/AI", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]interface{}](t, env.Data), 1)

	// 标签按字面量区分大小写匹配
	for _, tag := range []string{"ai", "_"} {
		_, env = s.do(http.MethodGet, "/api/posts/tag/"+tag, nil)
		assert.Empty(t, decode[[]interface{}](t, env.Data), tag)
	}

	// 删除: 管理员
	w, _ = s.do(http.MethodDelete, fmt.Sprintf("/api/posts/%d", id), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = s.do(http.MethodGet, fmt.Sprintf("/api/posts/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUnpublishedPostVisibleOnlyToAdmin(t *testing.T) {
	s := newTestServer(t)
	draft := &model.Post{Title: "草稿", Content: "c", Status: model.PostStatusDraft}
	archived := &model.Post{Title: "归档", Content: "c", Status: model.PostStatusArchived}
	require.NoError(t, s.db.Create(draft).Error)
	require.NoError(t, s.db.Create(archived).Error)

	tests := []struct {
		name    string
		headers []string
		want    int
	}{
		{"匿名", nil, http.StatusNotFound},
		{"不存在的用户", []string{"X-Admin-Username", "nobody-at-all"}, http.StatusNotFound},
		{"普通用户", []string{"X-Admin-Username", "alice"}, http.StatusNotFound},
		{"管理员", []string{"X-Admin-Username", "admin"}, http.StatusOK},
	}
	for _, post := range []*model.Post{draft, archived} {
		for _, tt := range tests {
			t.Run(string(post.Status)+"/"+tt.name, func(t *testing.T) {
				w, env := s.do(http.MethodGet, fmt.Sprintf("/api/posts/%d", post.ID), nil, tt.headers...)
				assert.Equal(t, tt.want, w.Code)
				if tt.want == http.StatusOK {
					assert.Equal(t, string(post.Status), decode[map[string]interface{}](t, env.Data)["status"])
				} else {
					assert.Equal(t, "文章未发布", env.Message)
				}
			})
		}
	}
}

func TestPostLikeUnlikeRoundTrip(t *testing.T) {
	s := newTestServer(t)
	post := &model.Post{Title: "t", Content: "c", Status: model.PostStatusPublished}
	require.NoError(t, s.db.Create(post).Error)
	path := fmt.Sprintf("/api/posts/%d/like", post.ID)

	for i := 0; i < 3; i++ {
		w, _ := s.do(http.MethodPost, path, nil)
		require.Equal(t, http.StatusOK, w.Code)
	}
	var env envelope
	for i := 0; i < 5; i++ {
		_, env = s.do(http.MethodDelete, path, nil)
	}
	resp := decode[map[string]interface{}](t, env.Data)
	assert.Equal(t, float64(0), resp["likeCount"])

	w, _ := s.do(http.MethodPost, "/api/posts/9999/like", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPostListRejectsUnknownSortField(t *testing.T) {
	s := newTestServer(t)
	w, env := s.do(http.MethodGet, "/api/posts?sortBy=password", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "不支持的排序字段", env.Message)
	assert.Equal(t, "sortBy=password", env.Detail)
}

func TestMemberCreateGetAndConflict(t *testing.T) {
	s := newTestServer(t)
	body := map[string]interface{}{
		"studentId": "20230001",
		"name":      "张三",
		"grade":     "02",
		"email":     "zhangsan@lab.edu",
		"phone":     "13800138000",
	}

	w, env := s.do(http.MethodPost, "/api/members", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	id := int64(decode[map[string]interface{}](t, env.Data)["id"].(float64))

	w, env = s.do(http.MethodGet, fmt.Sprintf("/api/members/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[map[string]interface{}](t, env.Data)
	assert.Equal(t, "20230001", got["studentId"])
	assert.Equal(t, "张三", got["name"])
	assert.Equal(t, "2", got["grade"])
	assert.Equal(t, "UNDERGRADUATE", got["role"])

	w, _ = s.do(http.MethodPost, "/api/members", body)
	assert.Equal(t, http.StatusConflict, w.Code)

	body["studentId"] = "20230002"
	body["phone"] = "12345"
	w, env = s.do(http.MethodPost, "/api/members", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Detail, "phone")

	w, env = s.do(http.MethodGet, "/api/members/student/20230001", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "张三", decode[map[string]interface{}](t, env.Data)["name"])
}

func TestProjectProgressAndBudget(t *testing.T) {
	s := newTestServer(t)

	w, env := s.do(http.MethodPost, "/api/projects", map[string]interface{}{
		"name":     "知识图谱平台",
		"status":   "ONGOING",
		"category": "RESEARCH",
		"isPublic": true,
		"budget":   20000,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	id := int64(decode[map[string]interface{}](t, env.Data)["id"].(float64))

	w, env = s.do(http.MethodPatch, fmt.Sprintf("/api/projects/%d/progress?progress=100", id), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "COMPLETED", decode[map[string]interface{}](t, env.Data)["status"])

	w, _ = s.do(http.MethodPatch, fmt.Sprintf("/api/projects/%d/progress?progress=120", id), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = s.do(http.MethodPut, fmt.Sprintf("/api/projects/%d", id), map[string]interface{}{"name": "无预算"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env = s.do(http.MethodGet, "/api/projects/completed", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]interface{}](t, env.Data), 1)

	w, _ = s.do(http.MethodGet, "/api/projects/category/UNKNOWN", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMeetingPagination(t *testing.T) {
	s := newTestServer(t)
	base := time.Date(2026, 1, 5, 14, 0, 0, 0, time.Local)
	for i := 0; i < 23; i++ {
		require.NoError(t, s.db.Create(&model.Meeting{
			Title:       fmt.Sprintf("第%d次组会", i+1),
			MeetingDate: base.AddDate(0, 0, 7*i),
			Type:        model.MeetingTypeRegular,
			Status:      model.MeetingStatusCompleted,
		}).Error)
	}

	w, env := s.do(http.MethodGet, "/api/meetings?page=2&size=10&sortBy=id&sortDirection=asc", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	page := decode[map[string]interface{}](t, env.Data)
	content := page["content"].([]interface{})
	require.Len(t, content, 3)
	assert.Equal(t, "第21次组会", content[0].(map[string]interface{})["title"])
	assert.Equal(t, float64(23), page["totalElements"])
	assert.Equal(t, true, page["last"])

	w, env = s.do(http.MethodGet, "/api/meetings/statistics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := decode[map[string]int64](t, env.Data)
	assert.Equal(t, int64(23), stats["totalMeetings"])
	assert.Equal(t, int64(23), stats["completedMeetings"])
	assert.Equal(t, int64(0), stats["typeTraining"])
}

func TestMeetingCreateSplitsAttendees(t *testing.T) {
	s := newTestServer(t)

	w, env := s.do(http.MethodPost, "/api/meetings", map[string]interface{}{
		"title":       "周例会",
		"meetingTime": time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		"attendees":   []string{"张三", "李四"},
		"createdBy":   "1",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	got := decode[map[string]interface{}](t, env.Data)
	assert.Equal(t, []interface{}{"张三", "李四"}, got["attendees"])
	assert.Equal(t, []interface{}{}, got["absentees"])
	assert.Equal(t, "SCHEDULED", got["status"])

	w, env = s.do(http.MethodGet, "/api/meetings/upcoming", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]interface{}](t, env.Data), 1)
}

func TestAuthEndpoints(t *testing.T) {
	s := newTestServer(t)

	w, env := s.do(http.MethodPost, "/api/auth/validate", map[string]string{"username": "admin", "password": "secret"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode[map[string]bool](t, env.Data)["valid"])

	_, env = s.do(http.MethodPost, "/api/auth/validate", map[string]string{"username": "alice", "password": "pw"})
	assert.Equal(t, false, decode[map[string]bool](t, env.Data)["valid"])

	_, env = s.do(http.MethodGet, "/api/auth/exists?username=bob", nil)
	assert.Equal(t, true, decode[map[string]bool](t, env.Data)["exists"])

	_, env = s.do(http.MethodGet, "/api/auth/exists?username=admin@lab.edu", nil)
	assert.Equal(t, true, decode[map[string]bool](t, env.Data)["exists"])

	_, env = s.do(http.MethodGet, "/api/auth/exists?username=ghost", nil)
	assert.Equal(t, false, decode[map[string]bool](t, env.Data)["exists"])

	w, _ = s.do(http.MethodGet, "/api/auth/exists", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStatisticsOverview(t *testing.T) {
	s := newTestServer(t)
	require.NoError(t, s.db.Create(&model.Member{StudentID: "20230001", Name: "张三", Role: model.MemberRoleTeacher, Status: model.MemberStatusActive}).Error)

	w, env := s.do(http.MethodGet, "/api/statistics", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	overview := decode[map[string]json.RawMessage](t, env.Data)

	members := decode[map[string]interface{}](t, overview["members"])
	assert.Equal(t, float64(1), members["totalMembers"])
	assert.Equal(t, float64(1), members["roleCounts"].(map[string]interface{})["TEACHER"])

	meetings := decode[map[string]int64](t, overview["meetings"])
	assert.Equal(t, int64(0), meetings["totalMeetings"])
}
