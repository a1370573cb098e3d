package quiz

import (
	"context"
	"errors"
)

var (
	ErrInvalidDetails = errors.New("quiz details are invalid")
	ErrQuizNotFound   = errors.New("quiz not found")
	ErrQuizExpired    = errors.New("quiz link expired")
	ErrQuizCompleted  = errors.New("quiz already completed")
	ErrAnswersPending = errors.New("answers not yet submitted")
)

// Store owns all quiz records. Implementations must be safe for concurrent
// request handlers: Update applies the mutator atomically so two submissions
// racing on the same quiz resolve to one whole record, not interleaved fields.
type Store interface {
	Put(ctx context.Context, record Record) error
	Get(ctx context.Context, quizID string) (Record, error)
	Update(ctx context.Context, quizID string, mutate func(*Record) error) (Record, error)
	Close() error
}
