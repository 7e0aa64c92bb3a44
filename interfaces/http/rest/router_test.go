package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Adams-404/Between/application/ports/mocks"
	"github.com/Adams-404/Between/application/services"
	"github.com/Adams-404/Between/domain/core/entities"
	"github.com/Adams-404/Between/domain/questions"
	domain "github.com/Adams-404/Between/domain/services"
	"github.com/Adams-404/Between/infrastructure/config"
	"github.com/Adams-404/Between/infrastructure/observability"
	"github.com/Adams-404/Between/interfaces/http/rest/handlers"
	"github.com/Adams-404/Between/pkg/api"
	appErrors "github.com/Adams-404/Between/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testNow = time.Date(2024, time.January, 17, 9, 30, 0, 0, time.UTC)

type testServer struct {
	handler   http.Handler
	kv        *mocks.MockKeyValueStore
	collector *observability.Collector
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := zap.NewNop()
	kv := mocks.NewMockKeyValueStore()
	clock := mocks.NewFixedClock(testNow)
	dynamic := config.NewStaticSource(config.DefaultDynamicConfig())
	bank := questions.Default()
	selector := domain.NewQuestionSelector(bank)
	ids := &mocks.SequenceIDs{}

	answers := services.NewAnswerStore(kv, selector, nil, dynamic, ids, clock, logger)
	settings := services.NewSettingsService(kv, nil, logger)
	journal := services.NewJournalService(kv, nil, dynamic, ids, clock, logger)
	insights := services.NewInsightsService(answers, domain.NewAnalyzer(bank, nil), dynamic, clock)
	questionService := services.NewQuestionService(selector, clock)

	v := handlers.NewValidator()
	h := &Handlers{
		Questions: handlers.NewQuestionHandler(questionService, logger),
		Answers:   handlers.NewAnswerHandler(answers, bank, clock, v, logger),
		Insights:  handlers.NewInsightsHandler(insights, logger),
		Settings:  handlers.NewSettingsHandler(settings, v, logger),
		Journal:   handlers.NewJournalHandler(journal, clock, v, logger),
		Data:      handlers.NewDataHandler(answers, settings, logger),
	}

	cfg := config.Defaults(config.Development)
	collector := observability.NewCollector("between")
	return &testServer{
		handler:   NewRouter(h, cfg, collector, logger).Setup(),
		kv:        kv,
		collector: collector,
	}
}

func (s *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out), rec.Body.String())
}

func TestHealthAndRequestID(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	var body map[string]string
	decode(t, rec, &body)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "memory", body["storage"])
}

func TestQuestionEndpoints(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodGet, "/api/v1/questions/today", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var today handlers.QuestionResponse
	decode(t, rec, &today)
	assert.Equal(t, "2024-01-17", today.Date.String())
	assert.Equal(t, "Today", today.Label)
	assert.NotEmpty(t, today.Question.Text)

	rec = srv.do(t, http.MethodGet, "/api/v1/questions/2024-01-17", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var same handlers.QuestionResponse
	decode(t, rec, &same)
	assert.Equal(t, today.Question, same.Question)

	rec = srv.do(t, http.MethodGet, "/api/v1/questions/2024-13-01", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var apiErr api.ErrorResponse
	decode(t, rec, &apiErr)
	assert.True(t, apiErr.Error)
	assert.Equal(t, http.StatusBadRequest, apiErr.Code)
}

func TestAnswerLifecycle(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodPost, "/api/v1/answers", `{"answerText":"  Learned to slow down  "}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created handlers.AnswerView
	decode(t, rec, &created)
	assert.Equal(t, "Learned to slow down", created.AnswerText)
	assert.Equal(t, "2024-01-17", created.Date.String())
	assert.Equal(t, 4, created.WordCount)
	require.NotNil(t, created.Question)
	assert.Equal(t, created.QuestionID, created.Question.ID)

	rec = srv.do(t, http.MethodGet, "/api/v1/answers/2024-01-17", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = srv.do(t, http.MethodPost, "/api/v1/answers/"+created.ID+"/favorite", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var toggled handlers.AnswerView
	decode(t, rec, &toggled)
	assert.True(t, toggled.IsFavorite)

	rec = srv.do(t, http.MethodGet, "/api/v1/favorites", "")
	var favorites handlers.AnswerListResponse
	decode(t, rec, &favorites)
	assert.Equal(t, 1, favorites.Count)

	rec = srv.do(t, http.MethodGet, "/api/v1/answers?filter=week&q=SLOW", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list handlers.AnswerListResponse
	decode(t, rec, &list)
	assert.Equal(t, 1, list.Count)

	rec = srv.do(t, http.MethodDelete, "/api/v1/answers/"+created.ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = srv.do(t, http.MethodDelete, "/api/v1/answers/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/v1/answers/2024-01-17", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAnswerValidation(t *testing.T) {
	srv := newTestServer(t)

	cases := []struct {
		name string
		body string
	}{
		{"missing text", `{}`},
		{"blank text", `{"answerText":"   "}`},
		{"unknown field", `{"answerText":"hi","mood":"Calm"}`},
		{"not json", `answer`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := srv.do(t, http.MethodPost, "/api/v1/answers", tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}

	rec := srv.do(t, http.MethodGet, "/api/v1/answers?filter=decade", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, http.MethodPost, "/api/v1/answers/missing/favorite", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExport(t *testing.T) {
	srv := newTestServer(t)
	srv.do(t, http.MethodPost, "/api/v1/answers", `{"answerText":"one"}`)

	rec := srv.do(t, http.MethodGet, "/api/v1/export", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "between-export-2024-01-17.json")

	var exported []entities.Answer
	decode(t, rec, &exported)
	require.Len(t, exported, 1)
	assert.Equal(t, "one", exported[0].AnswerText)
}

func TestInsightsEndpoints(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodGet, "/api/v1/analysis", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var analysis domain.AnalysisResult
	decode(t, rec, &analysis)
	assert.Equal(t, 0, analysis.TotalAnswers)
	assert.Equal(t, domain.NoAnswersInsight, analysis.Insight)

	srv.do(t, http.MethodPost, "/api/v1/answers", `{"answerText":"a few words here"}`)

	rec = srv.do(t, http.MethodGet, "/api/v1/insights/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var summary domain.Summary
	decode(t, rec, &summary)
	assert.Equal(t, 1, summary.Total)
	assert.Equal(t, 1, summary.Streak)
	assert.Equal(t, 4, summary.TotalWords)
}

func TestSettingsEndpoints(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodGet, "/api/v1/settings?systemDark=true", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got handlers.SettingsResponse
	decode(t, rec, &got)
	assert.Equal(t, entities.DefaultSettings(), got.Settings)
	assert.Equal(t, entities.ThemeDark, got.ResolvedTheme)

	rec = srv.do(t, http.MethodPut, "/api/v1/settings", `{"theme":"light","notificationTime":"21:15"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decode(t, rec, &got)
	assert.Equal(t, entities.ThemeLight, got.Settings.Theme)
	assert.Equal(t, "21:15", got.Settings.NotificationTime)
	assert.Equal(t, entities.FontApple, got.Settings.FontPreference)

	stored, ok := srv.kv.Raw(services.SettingsKey)
	require.True(t, ok)
	assert.Contains(t, stored, `"theme":"light"`)

	for _, body := range []string{`{"theme":"sepia"}`, `{"notificationTime":"9:00"}`, `{"fontPreference":"serif"}`} {
		rec = srv.do(t, http.MethodPut, "/api/v1/settings", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}

	rec = srv.do(t, http.MethodGet, "/api/v1/settings?systemDark=maybe", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestJournalEndpoints(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodPost, "/api/v1/journal", `{"text":"Quiet morning","mood":"Calm"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var entry entities.JournalEntry
	decode(t, rec, &entry)
	assert.Equal(t, 2, entry.WordCount)

	rec = srv.do(t, http.MethodPost, "/api/v1/journal", `{"text":"x","mood":"Bored"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/v1/journal", "")
	var entries []entities.JournalEntry
	decode(t, rec, &entries)
	assert.Len(t, entries, 1)

	rec = srv.do(t, http.MethodGet, "/api/v1/journal?date=2024-01-16", "")
	decode(t, rec, &entries)
	assert.Empty(t, entries)

	rec = srv.do(t, http.MethodGet, "/api/v1/journal?date=yesterday", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, http.MethodDelete, "/api/v1/journal/"+entry.ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = srv.do(t, http.MethodDelete, "/api/v1/journal/"+entry.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestClearAllData(t *testing.T) {
	srv := newTestServer(t)
	srv.do(t, http.MethodPost, "/api/v1/answers", `{"answerText":"keep nothing"}`)
	srv.do(t, http.MethodPut, "/api/v1/settings", `{"theme":"dark"}`)

	rec := srv.do(t, http.MethodDelete, "/api/v1/data", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/v1/answers", "")
	var list handlers.AnswerListResponse
	decode(t, rec, &list)
	assert.Equal(t, 0, list.Count)

	rec = srv.do(t, http.MethodGet, "/api/v1/settings", "")
	var got handlers.SettingsResponse
	decode(t, rec, &got)
	assert.Equal(t, entities.ThemeAuto, got.Settings.Theme)
}

func TestStorageFailuresMapToStatus(t *testing.T) {
	srv := newTestServer(t)

	srv.kv.SetError("Get", appErrors.NewUnavailable("circuit breaker open", nil))
	rec := srv.do(t, http.MethodGet, "/api/v1/answers", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	srv.kv.SetError("Get", errors.New("disk on fire"))
	rec = srv.do(t, http.MethodGet, "/api/v1/answers", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "disk on fire")

	srv.kv.ClearErrors()
	srv.kv.Put(services.AnswersKey, "{not json")
	rec = srv.do(t, http.MethodGet, "/api/v1/answers", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	raw, _ := srv.kv.Raw(services.AnswersKey)
	assert.Equal(t, "{not json", raw)
}

func TestMetricsAndSwagger(t *testing.T) {
	srv := newTestServer(t)
	srv.do(t, http.MethodGet, "/api/v1/questions/today", "")

	rec := srv.do(t, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `between_http_requests_total{method="GET",route="/api/v1/questions/today",status="200"} 1`)

	req := httptest.NewRequest(http.MethodGet, "/swagger", nil)
	req.Header.Set("Accept", "application/json")
	rec = httptest.NewRecorder()
	srv.handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var doc map[string]interface{}
	decode(t, rec, &doc)
	assert.Equal(t, "2.0", doc["swagger"])
	assert.Contains(t, doc["paths"], "/answers")
}

