package quiz

import (
	"context"
	"time"
)

// CreatedQuiz is what the authoring front-end receives back: the token plus
// the receiver-facing link built from it.
type CreatedQuiz struct {
	QuizID        string
	ShareableLink string
}

// Results pairs the original questions with the receiver's answers for
// downstream processing.
type Results struct {
	QuizID    string
	Questions []Question
	Answers   map[string]string
}

// Service is the quiz lifecycle controller. All state lives in the injected
// Store; the service only enforces the lifecycle rules around it.
type Service struct {
	store   Store
	baseURL string
	now     func() time.Time
}

func NewService(store Store, baseURL string) *Service {
	return &Service{
		store:   store,
		baseURL: baseURL,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// CreateQuiz validates the authored payload, assigns a token and stores a
// fresh record with a 30-day expiry.
func (s *Service) CreateQuiz(ctx context.Context, details Details) (CreatedQuiz, error) {
	if len(details.Questions) == 0 {
		return CreatedQuiz{}, ErrInvalidDetails
	}

	quizID := NewToken()
	now := s.now()
	record := Record{
		QuizID:    quizID,
		CreatedAt: now,
		ExpiresAt: now.Add(ExpiryWindow),
		Details:   details,
	}

	if err := s.store.Put(ctx, record); err != nil {
		return CreatedQuiz{}, err
	}

	return CreatedQuiz{
		QuizID:        quizID,
		ShareableLink: s.QuizLink(quizID),
	}, nil
}

// FetchQuizForDisplay returns the question list for rendering the quiz form.
// Expiry is checked here, lazily, and nowhere else: ErrQuizExpired for a
// lapsed link, ErrQuizCompleted when the receiver already submitted (caller
// redirects to the completion view).
func (s *Service) FetchQuizForDisplay(ctx context.Context, quizID string) ([]Question, error) {
	record, err := s.store.Get(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if record.ExpiredAt(s.now()) {
		return nil, ErrQuizExpired
	}
	if record.IsCompleted {
		return nil, ErrQuizCompleted
	}
	return record.Details.Questions, nil
}

// SubmitAnswers records the receiver's answers and marks the quiz completed.
// No expiry check on purpose: a receiver whose 30-day window lapses mid-quiz
// should not be blocked at submit. A second submission overwrites the first
// silently (last write wins).
func (s *Service) SubmitAnswers(ctx context.Context, quizID string, answers map[string]string) error {
	if answers == nil {
		answers = make(map[string]string)
	}

	_, err := s.store.Update(ctx, quizID, func(record *Record) error {
		record.Answers = answers
		record.IsCompleted = true
		return nil
	})
	return err
}

// GetResults returns the questions and submitted answers, or
// ErrAnswersPending when the receiver has not finished yet.
func (s *Service) GetResults(ctx context.Context, quizID string) (Results, error) {
	record, err := s.store.Get(ctx, quizID)
	if err != nil {
		return Results{}, err
	}
	if !record.IsCompleted {
		return Results{}, ErrAnswersPending
	}
	return Results{
		QuizID:    record.QuizID,
		Questions: record.Details.Questions,
		Answers:   record.Answers,
	}, nil
}

// CompletionInfo returns the results link shown on the post-submission page.
// The page is only rendered for ids that still resolve to a record.
func (s *Service) CompletionInfo(ctx context.Context, quizID string) (string, error) {
	if _, err := s.store.Get(ctx, quizID); err != nil {
		return "", err
	}
	return s.ResultsLink(quizID), nil
}

func (s *Service) QuizLink(quizID string) string {
	return s.baseURL + "/quiz/" + quizID
}

func (s *Service) ResultsLink(quizID string) string {
	return s.baseURL + "/quiz_results/" + quizID
}
