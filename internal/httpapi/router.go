package httpapi

import (
	"net/http"

	"github.com/munjalisha10-hub/giftgenie-backend/internal/logger"
	"github.com/munjalisha10-hub/giftgenie-backend/internal/quiz"
)

func NewRouter(service *quiz.Service, log *logger.Logger) http.Handler {
	api := NewAPI(service, log)

	mux := http.NewServeMux()

	// JSON API for the authoring front-end.
	mux.HandleFunc("/api/create_quiz", api.HandleCreateQuiz)
	mux.HandleFunc("/get_answers/{quiz_id}", api.HandleGetAnswers)

	// Receiver-facing HTML surface.
	mux.HandleFunc("/quiz/{quiz_id}", api.HandleQuizPage)
	mux.HandleFunc("/submit_quiz/{quiz_id}", api.HandleSubmitQuiz)
	mux.HandleFunc("/quiz_completed/{quiz_id}", api.HandleQuizCompleted)
	mux.HandleFunc("/thank_you", api.HandleThankYou)

	return withRequestLogging(api.log, mux)
}
