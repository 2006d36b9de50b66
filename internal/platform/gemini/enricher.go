package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"regexp"
	"text/template"
	"time"

	"google.golang.org/genai"

	"github.com/campusware/course-advisor/internal/config"
	"github.com/campusware/course-advisor/internal/domain"
	"github.com/campusware/course-advisor/internal/recommendation"
	"github.com/campusware/course-advisor/internal/requirements"
)

// promptTemplateText is the advisor prompt sent to the model. The reply must
// be a JSON array so it can be parsed back into recommendations.
const promptTemplateText = `You are an expert academic advisor helping students select courses. Based on the student's interests and graduation requirements, recommend the top {{.TopN}} courses.

Student Interest Scores:
{{.InterestScores}}

Graduation Requirements:
{{.Requirements}}

Available Courses:
{{.CoursesText}}

Please recommend {{.TopN}} courses that best match the student's interests and help fulfill their graduation requirements. For each course, provide:
1. Course code
2. Reason for recommendation
3. Score (0-100)

Format your response as a JSON array with objects containing: code, score, and reasons (array of strings).`

// jsonArrayPattern finds the first JSON array in the model's reply, which may
// be wrapped in prose or a markdown fence.
var jsonArrayPattern = regexp.MustCompile(`(?s)\[.*\]`)

// Enricher implements the recommendation.Enricher interface using Google's
// Gemini API to re-rank courses.
type Enricher struct {
	// logger is used for structured logging
	logger *slog.Logger

	// config contains LLM-specific configuration
	config config.LLMConfig

	// promptTemplate is the parsed template for creating prompts
	promptTemplate *template.Template

	// client is the Gemini API client for making requests
	client *genai.Client

	// model is the name of the Gemini model to use
	model string
}

// Compile-time interface check.
var _ recommendation.Enricher = (*Enricher)(nil)

// NewEnricher creates a new Enricher with the provided dependencies.
// Returns an error wrapping recommendation.ErrInvalidConfig if the
// configuration is unusable.
func NewEnricher(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Enricher, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", recommendation.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", recommendation.ErrInvalidConfig)
	}

	promptTemplate, err := template.New("advisor").Parse(promptTemplateText)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt template: %v",
			recommendation.ErrInvalidConfig, err)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			recommendation.ErrInvalidConfig, err)
	}

	return &Enricher{
		logger:         logger,
		config:         cfg,
		promptTemplate: promptTemplate,
		client:         client,
		model:          cfg.ModelName,
	}, nil
}

// Enrich asks the model to rank the courses and joins its reply back onto the
// real records. Any unreachable service, malformed reply, or reply naming no
// known course codes surfaces as an error; the caller is expected to fall
// back to the rule-based scorer.
func (e *Enricher) Enrich(
	ctx context.Context,
	records []domain.CourseRecord,
	interestScores map[string]float64,
	reqs requirements.Requirements,
	topN int,
) ([]domain.Recommendation, error) {
	if len(records) == 0 {
		return nil, nil
	}

	prompt, err := e.createPrompt(records, interestScores, reqs, topN)
	if err != nil {
		return nil, err
	}

	e.logger.DebugContext(ctx, "enrichment prompt built",
		"courses", len(records),
		"approx_tokens", recommendation.CountTokens(prompt))

	text, err := e.callModelWithRetry(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return e.parseResponse(ctx, text, records, topN)
}

// createPrompt renders the advisor prompt for one request.
func (e *Enricher) createPrompt(
	records []domain.CourseRecord,
	interestScores map[string]float64,
	reqs requirements.Requirements,
	topN int,
) (string, error) {
	scoresJSON, err := json.MarshalIndent(interestScores, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal interest scores: %w", err)
	}

	reqsJSON, err := json.MarshalIndent(reqs, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal requirements: %w", err)
	}

	data := promptData{
		TopN:           topN,
		InterestScores: string(scoresJSON),
		Requirements:   string(reqsJSON),
		CoursesText:    recommendation.RenderCourses(records),
	}

	var promptBuffer bytes.Buffer
	if err := e.promptTemplate.Execute(&promptBuffer, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}

	return promptBuffer.String(), nil
}

// callModelWithRetry makes a call to the Gemini API with exponential backoff
// retry logic. Transport errors are retried up to config.MaxRetries times;
// an empty reply is permanent and returned immediately.
func (e *Enricher) callModelWithRetry(ctx context.Context, prompt string) (string, error) {
	maxRetries := e.config.MaxRetries
	baseDelaySeconds := e.config.RetryDelaySeconds
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	if maxRetries < 0 {
		e.logger.WarnContext(ctx, "invalid max retries value, using default", "max_retries", 3)
		maxRetries = 3
	}

	if baseDelaySeconds < 1 {
		e.logger.WarnContext(ctx, "invalid retry delay value, using default", "base_delay_seconds", 2)
		baseDelaySeconds = 2
	}

	for attempt := 0; ; attempt++ {
		attemptNum := attempt + 1 // 1-based for logging
		e.logger.InfoContext(ctx, "making Gemini API call",
			"attempt", attemptNum,
			"max_attempts", maxRetries+1)

		resp, err := e.client.Models.GenerateContent(ctx, e.model, genai.Text(prompt), nil)
		if err == nil {
			text := resp.Text()
			if text == "" {
				return "", fmt.Errorf("%w: no content generated", recommendation.ErrInvalidResponse)
			}
			e.logger.InfoContext(ctx, "Gemini API call successful", "attempt", attemptNum)
			return text, nil
		}

		e.logger.ErrorContext(ctx, "Gemini API call failed",
			"attempt", attemptNum,
			"error", err)

		if attempt >= maxRetries {
			return "", fmt.Errorf("%w: exceeded maximum retry attempts (%d): %v",
				recommendation.ErrUnavailable, maxRetries, err)
		}

		// Exponential backoff with jitter:
		// delay = baseDelay * (2^attempt) * (0.5 + rand(0, 0.5))
		backoffSeconds := float64(baseDelaySeconds) * math.Pow(2, float64(attempt))
		jitterFactor := 0.5 + rng.Float64()*0.5
		delay := time.Duration(backoffSeconds * jitterFactor * float64(time.Second))

		e.logger.InfoContext(ctx, "retrying after delay",
			"attempt", attemptNum,
			"delay", delay)

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			e.logger.WarnContext(ctx, "API call cancelled during retry delay",
				"attempt", attemptNum,
				"ctx_err", ctx.Err())
			return "", fmt.Errorf("%w: %v", recommendation.ErrUnavailable, ctx.Err())
		}
	}
}

// parseResponse extracts the JSON array from the model's reply and joins each
// entry back to a real course record by code. Entries naming unknown codes
// are dropped; a reply from which nothing survives is an invalid response.
func (e *Enricher) parseResponse(
	ctx context.Context,
	text string,
	records []domain.CourseRecord,
	topN int,
) ([]domain.Recommendation, error) {
	raw := jsonArrayPattern.FindString(text)
	if raw == "" {
		return nil, fmt.Errorf("%w: no JSON array in reply", recommendation.ErrInvalidResponse)
	}

	var items []recommendationSchema
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("%w: failed to parse JSON reply: %v",
			recommendation.ErrInvalidResponse, err)
	}

	byCode := make(map[string]domain.CourseRecord, len(records))
	for _, record := range records {
		byCode[record.Code] = record
	}

	recs := make([]domain.Recommendation, 0, len(items))
	for _, item := range items {
		record, ok := byCode[item.Code]
		if !ok {
			e.logger.WarnContext(ctx, "model recommended unknown course code, dropping",
				"code", item.Code)
			continue
		}

		recs = append(recs, domain.Recommendation{
			Course:  record,
			Score:   item.Score,
			Reasons: item.Reasons,
		})
	}

	if len(recs) == 0 {
		return nil, fmt.Errorf("%w: reply named no known course codes", recommendation.ErrInvalidResponse)
	}

	if topN >= 0 && topN < len(recs) {
		recs = recs[:topN]
	}

	return recs, nil
}
