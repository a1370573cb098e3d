package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/munjalisha10-hub/giftgenie-backend/internal/config"
	"github.com/munjalisha10-hub/giftgenie-backend/internal/gifterclient"
	"github.com/munjalisha10-hub/giftgenie-backend/internal/httpapi"
	"github.com/munjalisha10-hub/giftgenie-backend/internal/logger"
	"github.com/munjalisha10-hub/giftgenie-backend/internal/quiz"
)

func main() {
	// Missing .env just means config comes from the process environment.
	_ = godotenv.Load()
	cfg := config.Load()

	addr := flag.String("addr", cfg.Addr, "HTTP listen address")
	storePath := flag.String("store", cfg.StorePath, "SQLite database path (empty keeps quizzes in memory)")
	flag.Parse()

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	store, err := newStore(*storePath)
	if err != nil {
		log.Fatal("store init failed", "path", *storePath, "error", err)
	}
	defer store.Close()

	baseURL := cfg.PublicBaseURL(*addr)
	service := quiz.NewService(store, baseURL)

	if cfg.IsDevelopment() {
		seedSampleQuiz(service, log)
	}

	server := &http.Server{
		Addr:              *addr,
		Handler:           httpapi.NewRouter(service, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Info("quiz service listening", "addr", *addr, "base_url", baseURL, "env", cfg.Env)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("server failed", "error", err)
	}
}

func newStore(path string) (quiz.Store, error) {
	if strings.TrimSpace(path) == "" {
		return quiz.NewMemoryStore(), nil
	}
	return quiz.NewSQLiteStore(path)
}

// seedSampleQuiz puts one ready-made quiz in the store so a fresh dev
// instance has a clickable link straight away.
func seedSampleQuiz(service *quiz.Service, log *logger.Logger) {
	created, err := service.CreateQuiz(context.Background(), gifterclient.SampleDetails())
	if err != nil {
		log.Warn("sample quiz seed failed", "error", err)
		return
	}
	log.Info("sample quiz seeded", "quiz_id", created.QuizID, "link", created.ShareableLink)
}
