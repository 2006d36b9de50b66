package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusware/course-advisor/internal/questionnaire"
	"github.com/campusware/course-advisor/internal/service"
)

// newTestRouter builds a router backed by the rule-based path only: no
// document extractor and no enrichment service.
func newTestRouter() http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	advisor := service.NewAdvisorService(nil, nil, logger)

	return NewRouter(RouterDeps{
		Advisor:   advisor,
		Sessions:  service.NewSessionStore(),
		Bank:      questionnaire.DefaultBank,
		ModelName: "test-model",
	})
}

// client drives the router while carrying session cookies between requests,
// the way a browser would.
type client struct {
	t       *testing.T
	router  http.Handler
	cookies []*http.Cookie
}

func newClient(t *testing.T, router http.Handler) *client {
	return &client{t: t, router: router}
}

func (c *client) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	c.t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	if cookies := w.Result().Cookies(); len(cookies) > 0 {
		c.cookies = cookies
	}
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	c := newClient(t, newTestRouter())
	w := c.do(http.MethodGet, "/healthz", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "test-model", resp.Model)
}

func TestGetQuestions(t *testing.T) {
	t.Parallel()

	c := newClient(t, newTestRouter())
	w := c.do(http.MethodGet, "/api/questions", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp QuestionsResponse
	decodeBody(t, w, &resp)
	require.Len(t, resp.Questions, len(questionnaire.DefaultBank))
	assert.Equal(t, 0, resp.Questions[0].ID)
	assert.NotEmpty(t, resp.Questions[0].Question)
	assert.Contains(t, resp.Questions[0].Options, "yes")
}

func TestSampleCatalogEndpoint(t *testing.T) {
	t.Parallel()

	c := newClient(t, newTestRouter())
	w := c.do(http.MethodPost, "/api/catalog/sample", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp CatalogResponse
	decodeBody(t, w, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, 10, resp.Count)
	assert.Len(t, resp.Courses, 10)
}

func TestRecommendationsRequireCatalog(t *testing.T) {
	t.Parallel()

	c := newClient(t, newTestRouter())
	w := c.do(http.MethodPost, "/api/recommendations", nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No courses loaded")
}

func TestRecommendationFlow(t *testing.T) {
	t.Parallel()

	c := newClient(t, newTestRouter())

	// Load the sample catalog into the session.
	w := c.do(http.MethodPost, "/api/catalog/sample", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Answer the technology and mathematics questions affirmatively:
	// Computer Science 3+2, Mathematics 2, Physics 2.
	w = c.do(http.MethodPost, "/api/answers", SubmitAnswersRequest{
		Answers: []questionnaire.Answer{
			{QuestionID: 0, Answer: "yes"},
			{QuestionID: 1, Answer: "yes"},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var scoresResp InterestScoresResponse
	decodeBody(t, w, &scoresResp)
	assert.Equal(t, 5.0, scoresResp.InterestScores["Computer Science"])
	assert.Equal(t, 2.0, scoresResp.InterestScores["Mathematics"])

	// Mathematics credits still needed.
	w = c.do(http.MethodPost, "/api/requirements", map[string]interface{}{
		"requirements": map[string]interface{}{
			"categories":        map[string]int{"Mathematics": 8},
			"total_credits":     120,
			"completed_credits": 30,
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = c.do(http.MethodPost, "/api/recommendations", RecommendationsRequest{TopN: 5})
	require.Equal(t, http.StatusOK, w.Code)

	var recResp RecommendationsResponse
	decodeBody(t, w, &recResp)
	require.Len(t, recResp.Recommendations, 5)

	// CS101: 50 + 15 + 10 = 75; MATH101: 20 + 20 + 15 + 10 = 65;
	// the three 50-point CS courses keep catalog order.
	codes := make([]string, len(recResp.Recommendations))
	for i, rec := range recResp.Recommendations {
		codes[i] = rec.Course.Code
	}
	assert.Equal(t, []string{"CS101", "MATH101", "CS201", "CS301", "CS401"}, codes)
	assert.Equal(t, 75.0, recResp.Recommendations[0].Score)
	assert.NotEmpty(t, recResp.Recommendations[0].Reasons)
}

func TestRecommendationsDefaultTopN(t *testing.T) {
	t.Parallel()

	c := newClient(t, newTestRouter())
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/api/catalog/sample", nil).Code)

	// Empty body: topN defaults to 5.
	w := c.do(http.MethodPost, "/api/recommendations", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp RecommendationsResponse
	decodeBody(t, w, &resp)
	assert.Len(t, resp.Recommendations, 5)
}

func TestSubmitAnswersInvalidJSON(t *testing.T) {
	t.Parallel()

	router := newTestRouter()
	req := httptest.NewRequest(http.MethodPost, "/api/answers", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadRejectsNonPDF(t *testing.T) {
	t.Parallel()

	var body bytes.Buffer
	mw := newMultipartFile(t, &body, "pdf", "catalog.txt", []byte("CS101 Intro"))

	req := httptest.NewRequest(http.MethodPost, "/api/catalog/upload", &body)
	req.Header.Set("Content-Type", mw)
	w := httptest.NewRecorder()
	newTestRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid file type")
}

func TestUploadRequiresFile(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/api/catalog/upload", bytes.NewReader(nil))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=xyz")
	w := httptest.NewRecorder()
	newTestRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
