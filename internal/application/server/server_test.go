package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"todo-api/internal/application/middleware"
	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/gateway/db/dbtest"
	ratelimitgateway "todo-api/internal/domain/gateway/ratelimit"
	"todo-api/internal/domain/model"
	"todo-api/internal/domain/usecase/health"
	"todo-api/internal/domain/usecase/ratelimit"
	"todo-api/internal/domain/usecase/todo"
	"todo-api/pkg/msg"
)

const (
	testAPIKey = "test-key"
	mcpAPIKey  = "mcp-key"
)

type stubDBGateway struct {
	status model.HealthStatus
}

func (gateway *stubDBGateway) Health(context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: gateway.status, Details: map[string]string{"client": "stub"}}
}

type testServer struct {
	echo    *echo.Echo
	todos   *dbtest.MemoryTodoGateway
	dbState *stubDBGateway
}

type response struct {
	Success    bool            `json:"success"`
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message"`
	Error      string          `json:"error"`
	RetryAfter int             `json:"retryAfter"`
	Stack      string          `json:"stack"`
}

func defaultConfig() Config {
	return Config{
		ContextPath:    "/api",
		BodyLimit:      "10M",
		AllowedOrigins: []string{"http://localhost:3000"},
		APIKeys:        []string{testAPIKey, mcpAPIKey},
	}
}

func newTestServer(t *testing.T, config Config, limit int) *testServer {
	t.Helper()
	todos := dbtest.NewMemoryTodoGateway()
	dbState := &stubDBGateway{status: model.StatusUp}
	rateLimitGateway := ratelimitgateway.NewMemoryRateLimitGateway(15*time.Minute, limit)

	e := New(config, UseCases{
		Todo:      todo.NewTodoUseCase(todos),
		Health:    health.NewHealthUseCase(dbState, rateLimitGateway),
		RateLimit: ratelimit.NewRateLimitUseCase(rateLimitGateway),
	})
	return &testServer{echo: e, todos: todos, dbState: dbState}
}

func (server *testServer) do(t *testing.T, method, target, body string, headers ...string) (*httptest.ResponseRecorder, response) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	server.echo.ServeHTTP(rec, req)

	var parsed response
	if rec.Body.Len() > 0 && strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		if err := json.Unmarshal(rec.Body.Bytes(), &parsed); err != nil {
			t.Fatalf("invalid response body %q: %v", rec.Body.String(), err)
		}
	}
	return rec, parsed
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		t.Fatalf("invalid data %s: %v", raw, err)
	}
	return value
}

func TestCreateAndList(t *testing.T) {
	server := newTestServer(t, defaultConfig(), 1000)

	rec, res := server.do(t, http.MethodPost, "/api/todos", `{"text":"  buy milk  "}`)
	if rec.Code != http.StatusOK || !res.Success {
		t.Fatalf("expected 200 success, got %d %s", rec.Code, rec.Body.String())
	}
	created := decode[entity.Todo](t, res.Data)
	if created.Text != "buy milk" || created.Completed {
		t.Errorf("expected trimmed active todo, got %+v", created)
	}
	if res.Message != msg.GetMessage("todo.success.created") {
		t.Errorf("expected created message, got %q", res.Message)
	}

	rec, res = server.do(t, http.MethodGet, "/api/todos", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	todos := decode[[]entity.Todo](t, res.Data)
	if len(todos) != 1 || todos[0].ID != created.ID || todos[0].Text != "buy milk" {
		t.Errorf("expected the created todo, got %+v", todos)
	}
	if rec.Header().Get("X-Total-Count") != "1" {
		t.Errorf("expected X-Total-Count 1, got %q", rec.Header().Get("X-Total-Count"))
	}
}

func TestListNewestFirst(t *testing.T) {
	server := newTestServer(t, defaultConfig(), 1000)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	server.todos.Now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}
	server.todos.Seed(false, false, false)

	_, res := server.do(t, http.MethodGet, "/api/todos", "")
	todos := decode[[]entity.Todo](t, res.Data)
	for i := 1; i < len(todos); i++ {
		if todos[i].CreatedAt.After(todos[i-1].CreatedAt) {
			t.Errorf("expected descending createdAt, got %v after %v", todos[i].CreatedAt, todos[i-1].CreatedAt)
		}
	}
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{name: "empty", body: `{"text":""}`, expected: msg.GetMessage("todo.error.empty-text")},
		{name: "blank", body: `{"text":"   "}`, expected: msg.GetMessage("todo.error.empty-text")},
		{name: "missing", body: `{}`, expected: msg.GetMessage("todo.error.empty-text")},
		{name: "too long", body: fmt.Sprintf(`{"text":%q}`, strings.Repeat("a", 256)), expected: msg.GetMessage("todo.error.too-long", 255)},
		{name: "sanitized to empty", body: `{"text":"<>"}`, expected: msg.GetMessage("todo.error.empty-text")},
		{name: "wrong type", body: `{"text":42}`, expected: msg.GetMessage("todo.error.invalid-body")},
		{name: "malformed json", body: `{"text":`, expected: msg.GetMessage("todo.error.invalid-body")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer(t, defaultConfig(), 1000)

			rec, res := server.do(t, http.MethodPost, "/api/todos", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d %s", rec.Code, rec.Body.String())
			}
			if res.Success || res.Message != tt.expected {
				t.Errorf("expected message %q, got %+v", tt.expected, res)
			}
			if server.todos.Len() != 0 {
				t.Errorf("expected nothing stored, got %d", server.todos.Len())
			}
		})
	}
}

func TestCreateAcceptsMaxLength(t *testing.T) {
	server := newTestServer(t, defaultConfig(), 1000)
	text := strings.Repeat("a", 255)

	rec, res := server.do(t, http.MethodPost, "/api/todos", fmt.Sprintf(`{"text":%q}`, text))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d %s", rec.Code, rec.Body.String())
	}
	if created := decode[entity.Todo](t, res.Data); created.Text != text {
		t.Errorf("expected the full text to be stored, got %d characters", len(created.Text))
	}
}

func TestSanitizesBody(t *testing.T) {
	server := newTestServer(t, defaultConfig(), 1000)

	_, res := server.do(t, http.MethodPost, "/api/todos", `{"text":"<script>javascript:alert(1)</script> onclick=x"}`)
	created := decode[entity.Todo](t, res.Data)
	if created.Text != "scriptalert(1)/script x" {
		t.Errorf("expected sanitized text, got %q", created.Text)
	}
}

func TestUpdate(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		body     string
		status   int
		expected string
	}{
		{name: "text", target: "/api/todos/1", body: `{"text":"renamed"}`, status: http.StatusOK, expected: msg.GetMessage("todo.success.updated")},
		{name: "completed", target: "/api/todos/1", body: `{"completed":true}`, status: http.StatusOK, expected: msg.GetMessage("todo.success.updated")},
		{name: "not found", target: "/api/todos/99", body: `{"text":"x"}`, status: http.StatusNotFound, expected: msg.GetMessage("todo.error.not-found")},
		{name: "non numeric id", target: "/api/todos/abc", body: `{"text":"x"}`, status: http.StatusNotFound, expected: msg.GetMessage("todo.error.not-found")},
		{name: "blank text", target: "/api/todos/1", body: `{"text":" "}`, status: http.StatusBadRequest, expected: msg.GetMessage("todo.error.empty-text")},
		{name: "nothing to update", target: "/api/todos/1", body: `{}`, status: http.StatusBadRequest, expected: msg.GetMessage("todo.error.nothing-to-update")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer(t, defaultConfig(), 1000)
			server.todos.Seed(false)

			rec, res := server.do(t, http.MethodPut, tt.target, tt.body)
			if rec.Code != tt.status {
				t.Fatalf("expected %d, got %d %s", tt.status, rec.Code, rec.Body.String())
			}
			if res.Message != tt.expected {
				t.Errorf("expected message %q, got %q", tt.expected, res.Message)
			}
		})
	}
}

func TestToggleTwice(t *testing.T) {
	server := newTestServer(t, defaultConfig(), 1000)
	seeded := server.todos.Seed(false)
	target := fmt.Sprintf("/api/todos/%d/toggle", seeded[0].ID)

	rec, res := server.do(t, http.MethodPatch, target, "")
	if rec.Code != http.StatusOK || !decode[entity.Todo](t, res.Data).Completed {
		t.Fatalf("expected completed todo, got %d %s", rec.Code, rec.Body.String())
	}
	if res.Message != msg.GetMessage("todo.success.completed") {
		t.Errorf("expected completed message, got %q", res.Message)
	}

	_, res = server.do(t, http.MethodPatch, target, "")
	toggled := decode[entity.Todo](t, res.Data)
	if toggled.Completed || toggled.Text != seeded[0].Text {
		t.Errorf("expected the original state back, got %+v", toggled)
	}
	if res.Message != msg.GetMessage("todo.success.reopened") {
		t.Errorf("expected reopened message, got %q", res.Message)
	}

	rec, _ = server.do(t, http.MethodPatch, "/api/todos/404/toggle", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestDelete(t *testing.T) {
	server := newTestServer(t, defaultConfig(), 1000)
	seeded := server.todos.Seed(false, true)

	rec, res := server.do(t, http.MethodDelete, fmt.Sprintf("/api/todos/%d", seeded[0].ID), "")
	if rec.Code != http.StatusOK || !res.Success || len(res.Data) != 0 {
		t.Fatalf("expected success without data, got %d %s", rec.Code, rec.Body.String())
	}

	rec, _ = server.do(t, http.MethodDelete, fmt.Sprintf("/api/todos/%d", seeded[0].ID), "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 on second delete, got %d", rec.Code)
	}

	_, res = server.do(t, http.MethodGet, "/api/todos", "")
	todos := decode[[]entity.Todo](t, res.Data)
	if len(todos) != 1 || todos[0].ID != seeded[1].ID {
		t.Errorf("expected only the other todo, got %+v", todos)
	}
}

func TestBatchCreate(t *testing.T) {
	server := newTestServer(t, defaultConfig(), 1000)

	rec, res := server.do(t, http.MethodPost, "/api/todos/batch", `{"todos":[{"text":"a"},{"text":"b"},{"text":"c"}]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d %s", rec.Code, rec.Body.String())
	}
	created := decode[[]entity.Todo](t, res.Data)
	if len(created) != 3 || created[0].Text != "a" || created[2].Text != "c" {
		t.Errorf("expected todos in request order, got %+v", created)
	}
	if res.Message != msg.GetMessage("todo.success.batch-created", 3) {
		t.Errorf("expected batch message, got %q", res.Message)
	}
}

func TestBatchCreateRollback(t *testing.T) {
	server := newTestServer(t, defaultConfig(), 1000)
	server.todos.Seed(false)

	rec, res := server.do(t, http.MethodPost, "/api/todos/batch", `{"todos":[{"text":"ok"},{"text":""},{"text":"never"}]}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d %s", rec.Code, rec.Body.String())
	}
	if res.Message != msg.GetMessage("todo.error.batch-failed") || res.Error != msg.GetMessage("todo.error.empty-text") {
		t.Errorf("expected batch failure with the validation message, got %+v", res)
	}
	if server.todos.Len() != 1 {
		t.Errorf("expected table unchanged, got %d rows", server.todos.Len())
	}
}

func TestBatchCreateShape(t *testing.T) {
	items := make([]string, 101)
	for i := range items {
		items[i] = `{"text":"item"}`
	}

	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{name: "too many", body: `{"todos":[` + strings.Join(items, ",") + `]}`, expected: msg.GetMessage("todo.error.batch-too-large", 100)},
		{name: "empty", body: `{"todos":[]}`, expected: msg.GetMessage("todo.error.invalid-batch")},
		{name: "missing", body: `{}`, expected: msg.GetMessage("todo.error.invalid-batch")},
		{name: "not an array", body: `{"todos":"a"}`, expected: msg.GetMessage("todo.error.invalid-batch")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer(t, defaultConfig(), 1000)

			rec, res := server.do(t, http.MethodPost, "/api/todos/batch", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d %s", rec.Code, rec.Body.String())
			}
			if res.Message != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, res.Message)
			}
			if server.todos.Len() != 0 {
				t.Errorf("expected no rows, got %d", server.todos.Len())
			}
		})
	}
}

func TestStatsAndClearCompleted(t *testing.T) {
	server := newTestServer(t, defaultConfig(), 1000)
	server.todos.Seed(true, false, true)

	_, res := server.do(t, http.MethodGet, "/api/todos/stats", "")
	stats := decode[model.TodoStats](t, res.Data)
	expected := model.TodoStats{Total: 3, Completed: 2, Pending: 1, CompletionRate: 67}
	if stats != expected {
		t.Errorf("expected %+v, got %+v", expected, stats)
	}

	rec, res := server.do(t, http.MethodDelete, "/api/todos/completed", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d %s", rec.Code, rec.Body.String())
	}
	if result := decode[model.ClearCompletedResult](t, res.Data); result.DeletedCount != 2 {
		t.Errorf("expected 2 deleted, got %d", result.DeletedCount)
	}

	_, res = server.do(t, http.MethodGet, "/api/todos/stats", "")
	stats = decode[model.TodoStats](t, res.Data)
	if stats.Total != 1 || stats.Completed != 0 || stats.CompletionRate != 0 {
		t.Errorf("expected one pending todo, got %+v", stats)
	}
}

func TestOptionalAuth(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		headers []string
		status  int
	}{
		{name: "anonymous", target: "/api/todos/stats", status: http.StatusOK},
		{name: "header key", target: "/api/todos/stats", headers: []string{"X-API-Key", testAPIKey}, status: http.StatusOK},
		{name: "operational key", target: "/api/todos/stats", headers: []string{"X-API-Key", mcpAPIKey}, status: http.StatusOK},
		{name: "query key", target: "/api/todos/stats?api_key=" + testAPIKey, status: http.StatusOK},
		{name: "invalid header key", target: "/api/todos/stats", headers: []string{"X-API-Key", "nope"}, status: http.StatusUnauthorized},
		{name: "invalid query key", target: "/api/todos/stats?api_key=nope", status: http.StatusUnauthorized},
		{name: "unguarded route ignores keys", target: "/api/todos", headers: []string{"X-API-Key", "nope"}, status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer(t, defaultConfig(), 1000)

			rec, res := server.do(t, http.MethodGet, tt.target, "", tt.headers...)
			if rec.Code != tt.status {
				t.Fatalf("expected %d, got %d %s", tt.status, rec.Code, rec.Body.String())
			}
			if tt.status == http.StatusUnauthorized && res.Message != msg.GetMessage("security.error.invalid-api-key") {
				t.Errorf("expected invalid key message, got %q", res.Message)
			}
		})
	}
}

func TestRequiredAuth(t *testing.T) {
	config := defaultConfig()
	config.RequireAPIKey = true
	server := newTestServer(t, config, 1000)

	rec, res := server.do(t, http.MethodGet, "/api/todos", "")
	if rec.Code != http.StatusUnauthorized || res.Message != msg.GetMessage("security.error.missing-api-key") {
		t.Errorf("expected missing key 401, got %d %+v", rec.Code, res)
	}

	rec, res = server.do(t, http.MethodGet, "/api/todos", "", "X-API-Key", "nope")
	if rec.Code != http.StatusUnauthorized || res.Message != msg.GetMessage("security.error.invalid-api-key") {
		t.Errorf("expected invalid key 401, got %d %+v", rec.Code, res)
	}

	rec, _ = server.do(t, http.MethodGet, "/api/todos", "", "X-API-Key", testAPIKey)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 with a valid key, got %d", rec.Code)
	}

	rec, _ = server.do(t, http.MethodGet, "/api/health", "")
	if rec.Code != http.StatusOK {
		t.Errorf("expected health to stay public, got %d", rec.Code)
	}
}

func TestRateLimit(t *testing.T) {
	const limit = 3
	server := newTestServer(t, defaultConfig(), limit)

	for i := 0; i < limit; i++ {
		if rec, _ := server.do(t, http.MethodGet, "/api/todos", ""); rec.Code != http.StatusOK {
			t.Fatalf("expected request %d to pass, got %d", i+1, rec.Code)
		}
	}

	rec, res := server.do(t, http.MethodGet, "/api/todos", "")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	if res.RetryAfter < 1 || res.RetryAfter > 900 {
		t.Errorf("expected retryAfter within the window, got %d", res.RetryAfter)
	}
	if rec.Header().Get(echo.HeaderRetryAfter) != fmt.Sprint(res.RetryAfter) {
		t.Errorf("expected Retry-After header %d, got %q", res.RetryAfter, rec.Header().Get(echo.HeaderRetryAfter))
	}
	if res.Message != msg.GetMessage("security.error.rate-limited") {
		t.Errorf("expected rate limit message, got %q", res.Message)
	}

	other := httptest.NewRequest(http.MethodGet, "/api/todos", nil)
	other.RemoteAddr = "198.51.100.7:4000"
	otherRec := httptest.NewRecorder()
	server.echo.ServeHTTP(otherRec, other)
	if otherRec.Code != http.StatusOK {
		t.Errorf("expected another client to pass, got %d", otherRec.Code)
	}
}

func TestSecurityHeaders(t *testing.T) {
	server := newTestServer(t, defaultConfig(), 1000)

	rec, _ := server.do(t, http.MethodGet, "/api/todos", "")
	expected := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"X-XSS-Protection":       "1; mode=block",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
	}
	for header, value := range expected {
		if got := rec.Header().Get(header); got != value {
			t.Errorf("expected %s %q, got %q", header, value, got)
		}
	}
	if rec.Header().Get("Strict-Transport-Security") != "" {
		t.Error("expected no HSTS on a plain HTTP request")
	}
	if rec.Header().Get(echo.HeaderXRequestID) == "" {
		t.Error("expected a request id")
	}
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name     string
		origins  []string
		origin   string
		expected string
	}{
		{name: "allowed origin", origins: []string{"http://localhost:3000"}, origin: "http://localhost:3000", expected: "http://localhost:3000"},
		{name: "unknown origin", origins: []string{"http://localhost:3000"}, origin: "http://evil.test", expected: ""},
		{name: "wildcard", origins: []string{"*"}, origin: "http://any.test", expected: "http://any.test"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := defaultConfig()
			config.AllowedOrigins = tt.origins
			server := newTestServer(t, config, 1000)

			rec, _ := server.do(t, http.MethodOptions, "/api/todos", "",
				echo.HeaderOrigin, tt.origin,
				echo.HeaderAccessControlRequestMethod, http.MethodPost,
			)
			if got := rec.Header().Get(echo.HeaderAccessControlAllowOrigin); got != tt.expected {
				t.Errorf("expected allow origin %q, got %q", tt.expected, got)
			}
			if tt.expected != "" && rec.Header().Get(echo.HeaderAccessControlAllowCredentials) != "true" {
				t.Error("expected credentials to be allowed")
			}
		})
	}
}

func TestCORSExposesOnlyTotalCount(t *testing.T) {
	server := newTestServer(t, defaultConfig(), 1000)

	rec, _ := server.do(t, http.MethodGet, "/api/todos", "", echo.HeaderOrigin, "http://localhost:3000")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get(echo.HeaderAccessControlExposeHeaders); got != middleware.HeaderTotalCount {
		t.Errorf("expected exposed headers %q, got %q", middleware.HeaderTotalCount, got)
	}
}

func TestStoreFailure(t *testing.T) {
	tests := []struct {
		name      string
		hardened  bool
		wantError string
	}{
		{name: "development", hardened: false, wantError: "connection refused"},
		{name: "hardened", hardened: true, wantError: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := defaultConfig()
			config.Hardened = tt.hardened
			server := newTestServer(t, config, 1000)
			server.todos.Err = errors.New("connection refused")

			rec, res := server.do(t, http.MethodGet, "/api/todos", "")
			if rec.Code != http.StatusInternalServerError {
				t.Fatalf("expected 500, got %d", rec.Code)
			}
			if res.Message != msg.GetMessage("todo.error.list-failed") {
				t.Errorf("expected list failure message, got %q", res.Message)
			}
			if res.Error != tt.wantError {
				t.Errorf("expected error %q, got %q", tt.wantError, res.Error)
			}
		})
	}
}

func TestHealth(t *testing.T) {
	server := newTestServer(t, defaultConfig(), 1000)

	rec, _ := server.do(t, http.MethodGet, "/api/health", "")
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	server.dbState.status = model.StatusDown
	rec, _ = server.do(t, http.MethodGet, "/api/health", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", rec.Code)
	}
}

func TestUnknownRoute(t *testing.T) {
	server := newTestServer(t, defaultConfig(), 1000)

	rec, res := server.do(t, http.MethodGet, "/api/nothing-here", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if res.Success || res.Message != msg.GetMessage("security.error.not-found") {
		t.Errorf("expected not found envelope, got %+v", res)
	}
}

func TestBodyLimit(t *testing.T) {
	config := defaultConfig()
	config.BodyLimit = "1K"
	server := newTestServer(t, config, 1000)

	rec, _ := server.do(t, http.MethodPost, "/api/todos", fmt.Sprintf(`{"text":%q}`, strings.Repeat("a", 2048)))
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("expected 413, got %d", rec.Code)
	}
}
