package gifterclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/munjalisha10-hub/giftgenie-backend/internal/quiz"
)

// ErrAnswersPending signals the receiver has not completed the quiz yet.
var ErrAnswersPending = errors.New("quiz not yet completed")

type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if strings.TrimSpace(e.Message) == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return e.Message
}

// HTTPClient talks to the quiz service's authoring endpoints.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPClient(baseURL string, httpClient *http.Client) *HTTPClient {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = "http://127.0.0.1:8080"
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &HTTPClient{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

type CreatedQuiz struct {
	Message       string `json:"message"`
	QuizID        string `json:"quiz_id"`
	ShareableLink string `json:"shareable_link"`
}

type Answers struct {
	QuizID    string            `json:"quiz_id"`
	Questions []quiz.Question   `json:"questions"`
	Answers   map[string]string `json:"answers"`
}

func (c *HTTPClient) CreateQuiz(ctx context.Context, details quiz.Details) (CreatedQuiz, error) {
	var created CreatedQuiz
	if _, err := c.doJSON(ctx, http.MethodPost, "/api/create_quiz", details, &created); err != nil {
		return CreatedQuiz{}, err
	}
	return created, nil
}

// GetAnswers fetches the receiver's answers, or ErrAnswersPending while the
// service still reports 202.
func (c *HTTPClient) GetAnswers(ctx context.Context, quizID string) (Answers, error) {
	if strings.TrimSpace(quizID) == "" {
		return Answers{}, errors.New("quiz_id is required")
	}

	var payload Answers
	status, err := c.doJSON(ctx, http.MethodGet, "/get_answers/"+url.PathEscape(quizID), nil, &payload)
	if err != nil {
		return Answers{}, err
	}
	if status == http.StatusAccepted {
		return Answers{}, ErrAnswersPending
	}
	return payload, nil
}

func (c *HTTPClient) doJSON(ctx context.Context, method, path string, requestBody any, responseBody any) (int, error) {
	fullURL := c.baseURL + path

	var body io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return 0, err
		}
		body = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return 0, err
	}
	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return 0, err
	}
	defer response.Body.Close()

	if response.StatusCode >= http.StatusBadRequest {
		var payload struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(response.Body).Decode(&payload)
		return response.StatusCode, &APIError{
			StatusCode: response.StatusCode,
			Message:    payload.Error,
		}
	}

	if responseBody != nil && response.StatusCode != http.StatusAccepted {
		if err := json.NewDecoder(response.Body).Decode(responseBody); err != nil {
			return response.StatusCode, err
		}
	}

	return response.StatusCode, nil
}
