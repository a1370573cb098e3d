package quiz

import "time"

// ExpiryWindow is the 30-day policy applied to every shareable link.
const ExpiryWindow = 30 * 24 * time.Hour

// Question is one multiple-choice entry as authored by the gifter. The `q`
// tag matches the payload the authoring front-end sends.
type Question struct {
	ID      string   `json:"id"`
	Prompt  string   `json:"q"`
	Options []string `json:"options"`
}

// Details is the creation payload. The store treats it as opaque; the only
// validation anywhere is that Questions is non-empty.
type Details struct {
	Occasion      string     `json:"occasion,omitempty"`
	Questions     []Question `json:"questions"`
	GiftingUserID string     `json:"gifting_user_id,omitempty"`
}

// Record is the sole persisted entity: one quiz, keyed by its link token.
//
// Invariant: Answers is non-nil if and only if IsCompleted is true.
type Record struct {
	QuizID      string
	CreatedAt   time.Time
	ExpiresAt   time.Time
	Details     Details
	Answers     map[string]string
	IsCompleted bool
}

// ExpiredAt reports whether the record's link has lapsed at the given time.
// Expiry is evaluated lazily on display reads; expired records stay stored.
func (r Record) ExpiredAt(now time.Time) bool {
	return now.After(r.ExpiresAt)
}

// Clone returns a deep copy so store callers never share mutable state with
// the store's own record.
func (r Record) Clone() Record {
	out := r
	if r.Answers != nil {
		out.Answers = make(map[string]string, len(r.Answers))
		for k, v := range r.Answers {
			out.Answers[k] = v
		}
	}
	if r.Details.Questions != nil {
		out.Details.Questions = make([]Question, len(r.Details.Questions))
		copy(out.Details.Questions, r.Details.Questions)
	}
	return out
}
