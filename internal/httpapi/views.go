package httpapi

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/munjalisha10-hub/giftgenie-backend/internal/quiz"
)

//go:embed templates/*.html
var templateFS embed.FS

var (
	quizTemplate     = template.Must(template.ParseFS(templateFS, "templates/quiz.html"))
	notFoundTemplate = template.Must(template.ParseFS(templateFS, "templates/not_found.html"))
	thankYouTemplate = template.Must(template.ParseFS(templateFS, "templates/thank_you.html"))
)

type quizPageData struct {
	QuizID    string
	Questions []quiz.Question
}

type notFoundPageData struct {
	Message string
}

type thankYouPageData struct {
	Message     string
	ResultsLink string
}

func (a *API) renderQuiz(w http.ResponseWriter, data quizPageData) {
	a.renderHTML(w, http.StatusOK, quizTemplate, data)
}

func (a *API) renderNotFound(w http.ResponseWriter, statusCode int, message string) {
	a.renderHTML(w, statusCode, notFoundTemplate, notFoundPageData{Message: message})
}

func (a *API) renderThankYou(w http.ResponseWriter, data thankYouPageData) {
	a.renderHTML(w, http.StatusOK, thankYouTemplate, data)
}

// renderHTML executes into a buffer first so a template failure never leaks
// a half-written page to the receiver.
func (a *API) renderHTML(w http.ResponseWriter, statusCode int, tmpl *template.Template, data any) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		a.log.Error("template render failed", "template", tmpl.Name(), "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = buf.WriteTo(w)
}
