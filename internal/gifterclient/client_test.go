package gifterclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// fakeQuizService mimics the quiz service's authoring endpoints.
type fakeQuizService struct {
	completed bool
}

func (f *fakeQuizService) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/create_quiz", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Questions []struct {
				ID string `json:"id"`
			} `json:"questions"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || len(payload.Questions) == 0 {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid quiz data received"})
			return
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"message":        "Quiz created successfully",
			"quiz_id":        "abc12345",
			"shareable_link": "http://127.0.0.1:8080/quiz/abc12345",
		})
	})
	mux.HandleFunc("/get_answers/{quiz_id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("quiz_id") != "abc12345" {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "quiz not found"})
			return
		}
		if !f.completed {
			w.WriteHeader(http.StatusAccepted)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "quiz not yet completed"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"quiz_id": "abc12345",
			"questions": []map[string]any{
				{"id": "q1", "q": "What season reflects you the most?", "options": []string{"Summer", "Winter"}},
			},
			"answers": map[string]string{"q1": "Summer"},
		})
	})
	return mux
}

func TestCreateQuiz(t *testing.T) {
	fake := &fakeQuizService{}
	server := httptest.NewServer(fake.handler())
	defer server.Close()

	client := NewHTTPClient(server.URL, server.Client())
	created, err := client.CreateQuiz(context.Background(), SampleDetails())
	if err != nil {
		t.Fatalf("CreateQuiz failed: %v", err)
	}
	if created.QuizID != "abc12345" {
		t.Fatalf("quiz id = %q", created.QuizID)
	}
	if !strings.Contains(created.ShareableLink, created.QuizID) {
		t.Fatalf("shareable link %q missing quiz id", created.ShareableLink)
	}
}

func TestGetAnswersPendingThenCompleted(t *testing.T) {
	fake := &fakeQuizService{}
	server := httptest.NewServer(fake.handler())
	defer server.Close()

	client := NewHTTPClient(server.URL, server.Client())

	if _, err := client.GetAnswers(context.Background(), "abc12345"); !errors.Is(err, ErrAnswersPending) {
		t.Fatalf("err = %v, want ErrAnswersPending", err)
	}

	fake.completed = true
	answers, err := client.GetAnswers(context.Background(), "abc12345")
	if err != nil {
		t.Fatalf("GetAnswers failed: %v", err)
	}
	if answers.Answers["q1"] != "Summer" {
		t.Fatalf("unexpected answers: %+v", answers.Answers)
	}
}

func TestGetAnswersUnknownQuizReturnsAPIError(t *testing.T) {
	fake := &fakeQuizService{}
	server := httptest.NewServer(fake.handler())
	defer server.Close()

	client := NewHTTPClient(server.URL, server.Client())
	_, err := client.GetAnswers(context.Background(), "missing1")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", apiErr.StatusCode, http.StatusNotFound)
	}
	if apiErr.Message != "quiz not found" {
		t.Fatalf("message = %q", apiErr.Message)
	}
}

func TestRunCreatesAndWaitsForAnswers(t *testing.T) {
	fake := &fakeQuizService{completed: true}
	server := httptest.NewServer(fake.handler())
	defer server.Close()

	var out bytes.Buffer
	err := Run(context.Background(), &out, Config{
		ServerURL:    server.URL,
		Wait:         true,
		PollInterval: 10 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "abc12345") {
		t.Fatalf("quiz id missing from output: %s", output)
	}
	if !strings.Contains(output, "Summer") {
		t.Fatalf("answers missing from output: %s", output)
	}
}

func TestRunStopsWhenContextCancelled(t *testing.T) {
	fake := &fakeQuizService{} // never completes
	server := httptest.NewServer(fake.handler())
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	var out bytes.Buffer
	err := Run(ctx, &out, Config{
		ServerURL:    server.URL,
		Wait:         true,
		PollInterval: 10 * time.Millisecond,
	})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}
}
