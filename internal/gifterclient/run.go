package gifterclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/munjalisha10-hub/giftgenie-backend/internal/quiz"
)

const (
	defaultPollInterval = 5 * time.Second
	defaultHTTPTimeout  = 5 * time.Second
)

type Config struct {
	ServerURL    string
	DetailsPath  string // JSON file with the quiz payload; empty uses the built-in sample
	Wait         bool   // poll for answers after creating
	PollInterval time.Duration
	HTTPTimeout  time.Duration
}

// Run creates a quiz against a running quiz service, prints the shareable
// link, and optionally polls until the receiver has answered.
func Run(ctx context.Context, out io.Writer, cfg Config) error {
	details, err := loadDetails(cfg.DetailsPath)
	if err != nil {
		return err
	}

	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	client := NewHTTPClient(cfg.ServerURL, &http.Client{Timeout: timeout})

	created, err := client.CreateQuiz(ctx, details)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Quiz %s created (%d questions)\n", created.QuizID, len(details.Questions))
	fmt.Fprintf(out, "Share this link with the receiver: %s\n", created.ShareableLink)

	if !cfg.Wait {
		return nil
	}

	interval := cfg.PollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}

	fmt.Fprintln(out, "Waiting for answers...")
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		answers, err := client.GetAnswers(ctx, created.QuizID)
		if errors.Is(err, ErrAnswersPending) {
			continue
		}
		if err != nil {
			return err
		}

		printAnswers(out, answers)
		return nil
	}
}

func loadDetails(path string) (quiz.Details, error) {
	if strings.TrimSpace(path) == "" {
		return SampleDetails(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return quiz.Details{}, err
	}

	var details quiz.Details
	if err := json.Unmarshal(raw, &details); err != nil {
		return quiz.Details{}, fmt.Errorf("parse quiz details %s: %w", path, err)
	}
	return details, nil
}

func printAnswers(out io.Writer, answers Answers) {
	fmt.Fprintf(out, "\nAnswers for quiz %s:\n", answers.QuizID)

	prompts := make(map[string]string, len(answers.Questions))
	for _, question := range answers.Questions {
		prompts[question.ID] = question.Prompt
	}

	ids := make([]string, 0, len(answers.Answers))
	for id := range answers.Answers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		prompt := prompts[id]
		if prompt == "" {
			prompt = id
		}
		fmt.Fprintf(out, "  %s: %s\n", prompt, answers.Answers[id])
	}
}

// SampleDetails is the demo payload used when no details file is given.
func SampleDetails() quiz.Details {
	return quiz.Details{
		Occasion: "Just Because",
		Questions: []quiz.Question{
			{ID: "q1", Prompt: "What season reflects you the most?", Options: []string{"Summer", "Autumn", "Winter", "Spring"}},
			{ID: "q2", Prompt: "Ideal day: Book & coffee OR Hiking trail?", Options: []string{"Book & coffee", "Hiking trail"}},
			{ID: "q3", Prompt: "If money wasn't an issue, what would you buy?", Options: []string{"Plane tickets", "A fancy watch", "Music equipment"}},
			{ID: "q4", Prompt: "What's your biggest pet peeve?", Options: []string{"Loud chewers", "Clutter", "Slow Wi-Fi", "Mornings"}},
			{ID: "q5", Prompt: "You prefer gifts that are...", Options: []string{"Practical/Useful", "Experiences", "Sentimental/Handmade", "High-Tech"}},
		},
	}
}
