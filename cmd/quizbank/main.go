package main

import (
	"context"
	"log"
	"net/http"
	"time"

	api "github.com/mind-engage/quizbank/internal/api/http"
	"github.com/mind-engage/quizbank/internal/auth"
	"github.com/mind-engage/quizbank/internal/bank"
	"github.com/mind-engage/quizbank/internal/config"
	"github.com/mind-engage/quizbank/internal/db"
	"github.com/mind-engage/quizbank/internal/quiz"
	"github.com/mind-engage/quizbank/internal/rbac"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfg := config.FromEnv()

	// --- Question bank ---
	questions, err := bank.LoadXLSX(cfg.QuestionFile)
	if err != nil {
		log.Fatalf("load question bank %s: %v", cfg.QuestionFile, err)
	}

	var store quiz.Store
	switch cfg.DBDriver {
	case "memory":
		store = quiz.NewMemoryStore(questions)
	case "sqlite", "postgres":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
		if err != nil {
			log.Fatalf("db open failed: %v", err)
		}
		sqlStore := quiz.NewSQLStore(dbh, cfg.DBDriver)
		if err := seedIfEmpty(ctx, sqlStore, questions); err != nil {
			log.Fatalf("seed questions: %v", err)
		}
		store = sqlStore
	default:
		log.Fatalf("unsupported DB_DRIVER: %s", cfg.DBDriver)
	}
	svc := quiz.NewService(store)

	// --- Credentials ---
	creds, err := config.LoadCredentials(cfg.CredentialsFile)
	if err != nil {
		log.Fatalf("load credentials: %v", err)
	}
	credStore := auth.NewCredentialStore(creds.Users, creds.Admins)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/", api.IndexHandler())
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	// User surfaces (Basic auth against the user set)
	r.Group(func(pr chi.Router) {
		pr.Use(auth.BasicAuth(credStore, auth.RoleUser))

		pr.Get("/user", api.WhoAmIHandler())
		pr.With(rbac.Require("quiz:select")).
			Get("/user/{use}/{subject}/{mcqs}", api.QuestionnaireHandler(svc))
		pr.With(rbac.Require("answer:verify")).
			Get("/answer/{question}/{answer}", api.VerifyAnswerHandler(svc))
	})

	// Admin surfaces (Basic auth against the admin set)
	r.Group(func(pr chi.Router) {
		pr.Use(auth.BasicAuth(credStore, auth.RoleAdmin))

		pr.Get("/admin", api.WhoAmIHandler())
		pr.With(rbac.Require("question:create")).
			Post("/admin/questions", api.PostQuestionHandler(svc))
	})

	log.Printf("listening on %s (db=%s, questions=%d)", cfg.HTTPAddr, cfg.DBDriver, len(questions))
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}

// seedIfEmpty loads the backing file into the questions table on first run.
func seedIfEmpty(ctx context.Context, store quiz.Store, questions []quiz.Question) error {
	n, err := store.Count(ctx)
	if err != nil || n > 0 {
		return err
	}
	for _, q := range questions {
		if _, err := store.Append(ctx, q); err != nil {
			return err
		}
	}
	return nil
}
