package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mind-engage/quizbank/internal/auth"
	"github.com/mind-engage/quizbank/internal/quiz"
)

// IndexHandler is the only public endpoint; it just proves the API is up.
func IndexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, "Welcome to the Datascience Quiz API")
	}
}

// WhoAmIHandler echoes the authenticated identity. Mounted once behind the
// user check and once behind the admin check, so a caller can probe either
// credential class.
func WhoAmIHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{"username": auth.SubjectFromContext(r.Context())})
	}
}

// QuestionnaireHandler serves GET /user/{use}/{subject}/{mcqs}: a random
// sample of questions for the given pool and category, answers excluded.
func QuestionnaireHandler(svc *quiz.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		use := pathParam(r, "use")
		subject := pathParam(r, "subject")
		count, err := strconv.Atoi(chi.URLParam(r, "mcqs"))
		if err != nil {
			http.Error(w, quiz.ErrInvalidCount.Error(), http.StatusNotFound)
			return
		}
		qs, err := svc.Select(r.Context(), use, subject, count)
		if err != nil {
			switch {
			case errors.Is(err, quiz.ErrInvalidCount), errors.Is(err, quiz.ErrInsufficientQuestions):
				http.Error(w, err.Error(), http.StatusNotFound)
			default:
				http.Error(w, err.Error(), http.StatusInternalServerError)
			}
			return
		}
		writeJSON(w, qs)
	}
}

// VerifyAnswerHandler serves GET /answer/{question}/{answer}. Question text
// arrives percent-escaped in the path (it usually contains spaces).
func VerifyAnswerHandler(svc *quiz.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		question := pathParam(r, "question")
		candidate := pathParam(r, "answer")
		v, err := svc.Verify(r.Context(), question, candidate)
		if err != nil {
			switch {
			case errors.Is(err, quiz.ErrQuestionNotFound):
				http.Error(w, err.Error(), http.StatusNotFound)
			case errors.Is(err, quiz.ErrAmbiguousQuestion):
				http.Error(w, err.Error(), http.StatusConflict)
			default:
				http.Error(w, err.Error(), http.StatusInternalServerError)
			}
			return
		}
		writeJSON(w, v)
	}
}

// PostQuestionHandler serves POST /admin/questions: validates and appends
// one question row, echoing the stored row back.
func PostQuestionHandler(svc *quiz.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var q quiz.Question
		if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		stored, err := svc.Ingest(r.Context(), q)
		if err != nil {
			var missing *quiz.MissingFieldError
			if errors.As(err, &missing) {
				http.Error(w, err.Error(), http.StatusUnprocessableEntity)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, stored)
	}
}

// pathParam returns a route value with percent-escapes decoded. chi captures
// params from the raw path when the two differ.
func pathParam(r *http.Request, key string) string {
	v := chi.URLParam(r, key)
	if u, err := url.PathUnescape(v); err == nil {
		return u
	}
	return v
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
