package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/dotblog/internal/db"
	"github.com/dotblog/internal/service"
	"github.com/dotblog/internal/token"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) (*API, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:handler-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	db.DB = gdb

	return NewAPI(gdb, token.NewIssuer("test-secret", time.Hour), nil), func() {
		db.DB = nil
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func newJSONContext(method, target string, payload any) (*gin.Context, *httptest.ResponseRecorder) {
	var body *bytes.Reader
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

func seedPost(t *testing.T, api *API, input service.PostInput) *service.PostDTO {
	t.Helper()
	post, err := api.posts.Create(input)
	if err != nil {
		t.Fatalf("failed to seed post: %v", err)
	}
	return post
}

func TestCreatePostWithTags(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	payload := map[string]any{
		"title":    "Test Post",
		"slug":     "test-post",
		"content":  "# Test Post\nContent",
		"status":   "PUBLISHED",
		"tagNames": []string{"Go", "Web Dev"},
	}
	c, w := newJSONContext(http.MethodPost, "/api/admin/posts", payload)

	api.CreatePost(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp service.PostDTO
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Slug != "test-post" || resp.Status != "PUBLISHED" || len(resp.Tags) != 2 {
		t.Fatalf("unexpected post: %+v", resp)
	}

	var tag db.Tag
	if err := db.DB.Where("name = ?", "Web Dev").First(&tag).Error; err != nil {
		t.Fatalf("expected Web Dev tag: %v", err)
	}
	if tag.Slug != "web-dev" {
		t.Fatalf("expected slug web-dev, got %q", tag.Slug)
	}
}

func TestCreatePostRejectsInvalidPayload(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	cases := []map[string]any{
		{"slug": "s", "content": "c"},
		{"title": "t", "slug": "s", "content": "c", "status": "ARCHIVED"},
	}
	for _, payload := range cases {
		c, w := newJSONContext(http.MethodPost, "/api/admin/posts", payload)
		api.CreatePost(c)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %v, got %d", payload, w.Code)
		}
	}
}

func TestCreatePostStatusIsCaseInsensitive(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	for i, status := range []string{"Published", "draft", ""} {
		c, w := newJSONContext(http.MethodPost, "/api/admin/posts", map[string]any{
			"title":   "Mixed case",
			"slug":    "mixed-case-" + strconv.Itoa(i),
			"content": "c",
			"status":  status,
		})
		api.CreatePost(c)

		if w.Code != http.StatusOK {
			t.Fatalf("status %q: expected 200, got %d: %s", status, w.Code, w.Body.String())
		}
		var resp service.PostDTO
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		want := "DRAFT"
		if status == "Published" {
			want = "PUBLISHED"
		}
		if resp.Status != want {
			t.Fatalf("status %q: expected stored %s, got %s", status, want, resp.Status)
		}
	}
}

func TestCreatePostDuplicateSlug(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	seedPost(t, api, service.PostInput{Title: "A", Slug: "dup", Content: "a"})

	c, w := newJSONContext(http.MethodPost, "/api/admin/posts", map[string]any{
		"title": "B", "slug": "dup", "content": "b",
	})
	api.CreatePost(c)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", w.Code)
	}
}

func TestUpdatePostNotFound(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	c, w := newJSONContext(http.MethodPut, "/api/admin/posts/42", map[string]any{
		"title": "B", "slug": "b", "content": "b",
	})
	c.Params = gin.Params{gin.Param{Key: "id", Value: "42"}}
	api.UpdatePost(c)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestGetPostBySlugCountsViews(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	seedPost(t, api, service.PostInput{Title: "Hello", Slug: "hello", Content: "c", Status: "PUBLISHED"})
	seedPost(t, api, service.PostInput{Title: "Draft", Slug: "draft", Content: "c"})

	for i := 1; i <= 2; i++ {
		c, w := newJSONContext(http.MethodGet, "/api/posts/hello", nil)
		c.Params = gin.Params{gin.Param{Key: "slug", Value: "hello"}}
		api.GetPostBySlug(c)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", w.Code)
		}
		var resp service.PostDTO
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Views != int64(i) {
			t.Fatalf("expected views=%d, got %d", i, resp.Views)
		}
	}

	c, w := newJSONContext(http.MethodGet, "/api/posts/draft", nil)
	c.Params = gin.Params{gin.Param{Key: "slug", Value: "draft"}}
	api.GetPostBySlug(c)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected draft to be 404, got %d", w.Code)
	}
}

func TestListPostsFilterPrecedence(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	seedPost(t, api, service.PostInput{Title: "Tagged", Slug: "tagged", Content: "plain", Status: "PUBLISHED", TagNames: []string{"Go"}})
	seedPost(t, api, service.PostInput{Title: "Keyword", Slug: "keyword", Content: "needle", Status: "PUBLISHED"})
	seedPost(t, api, service.PostInput{Title: "Hidden needle", Slug: "hidden", Content: "needle", TagNames: []string{"Go"}})

	tests := []struct {
		query string
		want  []string
	}{
		{query: "", want: []string{"keyword", "tagged"}},
		{query: "?search=NEEDLE", want: []string{"keyword"}},
		{query: "?tag=go", want: []string{"tagged"}},
		{query: "?tag=go&search=needle", want: []string{"tagged"}},
		{query: "?size=1&page=1", want: []string{"tagged"}},
	}

	for _, tt := range tests {
		c, w := newJSONContext(http.MethodGet, "/api/posts"+tt.query, nil)
		api.ListPosts(c)

		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected status 200, got %d", tt.query, w.Code)
		}

		var resp struct {
			Content       []service.PostDTO `json:"content"`
			TotalElements int64             `json:"totalElements"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%s: failed to decode response: %v", tt.query, err)
		}

		slugs := make([]string, 0, len(resp.Content))
		for _, post := range resp.Content {
			slugs = append(slugs, post.Slug)
		}
		if fmt.Sprint(slugs) != fmt.Sprint(tt.want) {
			t.Fatalf("%s: expected %v, got %v", tt.query, tt.want, slugs)
		}
	}
}

func TestAdminPostsIncludeDrafts(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	draft := seedPost(t, api, service.PostInput{Title: "Draft", Slug: "draft", Content: "c"})
	seedPost(t, api, service.PostInput{Title: "Live", Slug: "live", Content: "c", Status: "PUBLISHED"})

	c, w := newJSONContext(http.MethodGet, "/api/admin/posts", nil)
	api.ListAdminPosts(c)

	var resp struct {
		TotalElements int64 `json:"totalElements"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.TotalElements != 2 {
		t.Fatalf("expected 2 posts, got %d", resp.TotalElements)
	}

	c, w = newJSONContext(http.MethodGet, "/api/admin/posts/"+strconv.Itoa(int(draft.ID)), nil)
	c.Params = gin.Params{gin.Param{Key: "id", Value: strconv.Itoa(int(draft.ID))}}
	api.GetAdminPost(c)
	if w.Code != http.StatusOK {
		t.Fatalf("expected admin to read drafts by id, got %d", w.Code)
	}
}

func TestDeletePost(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	post := seedPost(t, api, service.PostInput{Title: "Bye", Slug: "bye", Content: "c"})
	id := strconv.Itoa(int(post.ID))

	c, w := newJSONContext(http.MethodDelete, "/api/admin/posts/"+id, nil)
	c.Params = gin.Params{gin.Param{Key: "id", Value: id}}
	api.DeletePost(c)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	c, w = newJSONContext(http.MethodDelete, "/api/admin/posts/"+id, nil)
	c.Params = gin.Params{gin.Param{Key: "id", Value: id}}
	api.DeletePost(c)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 on second delete, got %d", w.Code)
	}

	c, w = newJSONContext(http.MethodDelete, "/api/admin/posts/abc", nil)
	c.Params = gin.Params{gin.Param{Key: "id", Value: "abc"}}
	api.DeletePost(c)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for invalid id, got %d", w.Code)
	}
}
