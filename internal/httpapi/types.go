package httpapi

import "github.com/munjalisha10-hub/giftgenie-backend/internal/quiz"

type createQuizRequest struct {
	Occasion      string          `json:"occasion"`
	Questions     []quiz.Question `json:"questions"`
	GiftingUserID string          `json:"gifting_user_id"`
}

type createQuizResponse struct {
	Message       string `json:"message"`
	QuizID        string `json:"quiz_id"`
	ShareableLink string `json:"shareable_link"`
}

type answersResponse struct {
	QuizID    string            `json:"quiz_id"`
	Questions []quiz.Question   `json:"questions"`
	Answers   map[string]string `json:"answers"`
}

type pendingResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}
