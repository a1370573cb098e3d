package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/munjalisha10-hub/giftgenie-backend/internal/quiz"
)

const (
	alreadyCompletedMessage = "You have already completed this quiz. Thank you!"
	completionMessage       = "Thanks for playing! Your answers are locked in."
	fallbackThankYouMessage = "Thanks for playing! Your answers will help someone you know find the perfect surprise for you. You can now close this window."
)

// HandleCreateQuiz receives the quiz structure from the authoring front-end
// and answers with the generated shareable link.
func (a *API) HandleCreateQuiz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}

	defer r.Body.Close()

	var request createQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	created, err := a.service.CreateQuiz(r.Context(), quiz.Details{
		Occasion:      request.Occasion,
		Questions:     request.Questions,
		GiftingUserID: request.GiftingUserID,
	})
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	a.log.Info("quiz created", "quiz_id", created.QuizID)
	writeJSON(w, http.StatusCreated, createQuizResponse{
		Message:       "Quiz created successfully",
		QuizID:        created.QuizID,
		ShareableLink: created.ShareableLink,
	})
}

// HandleGetAnswers lets the gifter's front-end poll for the receiver's
// answers: 202 while pending, 200 with questions+answers once completed.
func (a *API) HandleGetAnswers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}

	quizID := strings.TrimSpace(r.PathValue("quiz_id"))
	results, err := a.service.GetResults(r.Context(), quizID)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, answersResponse{
		QuizID:    results.QuizID,
		Questions: results.Questions,
		Answers:   results.Answers,
	})
}

// HandleQuizPage renders the quiz form for the receiver, or the appropriate
// terminal view for dead links.
func (a *API) HandleQuizPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}

	quizID := strings.TrimSpace(r.PathValue("quiz_id"))
	questions, err := a.service.FetchQuizForDisplay(r.Context(), quizID)
	switch {
	case err == nil:
	case errors.Is(err, quiz.ErrQuizNotFound):
		a.renderNotFound(w, http.StatusNotFound, "Link not valid or has expired.")
		return
	case errors.Is(err, quiz.ErrQuizExpired):
		a.renderNotFound(w, http.StatusGone, "This quiz link has expired after 30 days.")
		return
	case errors.Is(err, quiz.ErrQuizCompleted):
		http.Redirect(w, r, completionPath(quizID, alreadyCompletedMessage), http.StatusFound)
		return
	default:
		a.log.Error("quiz page failed", "quiz_id", quizID, "error", err)
		a.renderNotFound(w, http.StatusInternalServerError, "Something went wrong. Please try again later.")
		return
	}

	a.renderQuiz(w, quizPageData{QuizID: quizID, Questions: questions})
}

// HandleSubmitQuiz records the form-encoded answers and sends the receiver
// on to the completion page.
func (a *API) HandleSubmitQuiz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}

	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid form data"})
		return
	}

	quizID := strings.TrimSpace(r.PathValue("quiz_id"))
	answers := make(map[string]string, len(r.PostForm))
	for field, values := range r.PostForm {
		if len(values) > 0 {
			answers[field] = values[0]
		}
	}

	if err := a.service.SubmitAnswers(r.Context(), quizID, answers); err != nil {
		a.writeServiceError(w, err)
		return
	}

	a.log.Info("answers submitted", "quiz_id", quizID, "answer_count", len(answers))
	http.Redirect(w, r, completionPath(quizID, ""), http.StatusSeeOther)
}

// HandleQuizCompleted shows the post-submission page with the results link
// the receiver can share back.
func (a *API) HandleQuizCompleted(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}

	quizID := strings.TrimSpace(r.PathValue("quiz_id"))
	resultsLink, err := a.service.CompletionInfo(r.Context(), quizID)
	if err != nil {
		if errors.Is(err, quiz.ErrQuizNotFound) {
			a.renderNotFound(w, http.StatusNotFound, "Quiz data missing.")
			return
		}
		a.log.Error("completion page failed", "quiz_id", quizID, "error", err)
		a.renderNotFound(w, http.StatusInternalServerError, "Something went wrong. Please try again later.")
		return
	}

	message := strings.TrimSpace(r.URL.Query().Get("message"))
	if message == "" {
		message = completionMessage
	}

	a.renderThankYou(w, thankYouPageData{Message: message, ResultsLink: resultsLink})
}

// HandleThankYou is the generic fallback page with no results link.
func (a *API) HandleThankYou(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}

	a.renderThankYou(w, thankYouPageData{Message: fallbackThankYouMessage})
}

func completionPath(quizID, message string) string {
	path := "/quiz_completed/" + url.PathEscape(quizID)
	if message != "" {
		path += "?message=" + url.QueryEscape(message)
	}
	return path
}
