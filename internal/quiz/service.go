package quiz

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"
	"unicode"
)

// allowedCounts are the only questionnaire sizes a caller may request.
var allowedCounts = map[int]bool{5: true, 10: true, 15: true}

// Service implements questionnaire selection, answer verification and
// question ingestion on top of a Store.
type Service struct {
	store Store

	// rand.Rand is not safe for concurrent use.
	mu  sync.Mutex
	rng *rand.Rand
}

// NewService builds a Service drawing samples from a time-seeded source,
// so repeated selections over the same pool differ between calls.
func NewService(store Store) *Service {
	return NewServiceWithSource(store, rand.NewSource(time.Now().UnixNano()))
}

// NewServiceWithSource allows a caller (tests, mostly) to pin the sampling
// source.
func NewServiceWithSource(store Store, src rand.Source) *Service {
	return &Service{store: store, rng: rand.New(src)}
}

// Select returns count distinct questions drawn uniformly at random, without
// replacement, from the rows matching the use tag and containing subject in
// their category value. Answer keys are never part of the result.
func (s *Service) Select(ctx context.Context, use, subject string, count int) ([]QuestionPublic, error) {
	if !allowedCounts[count] {
		return nil, ErrInvalidCount
	}
	pool, err := s.store.Filter(ctx, use, subject)
	if err != nil {
		return nil, err
	}
	if len(pool) < count {
		return nil, ErrInsufficientQuestions
	}

	s.mu.Lock()
	perm := s.rng.Perm(len(pool))
	s.mu.Unlock()

	out := make([]QuestionPublic, 0, count)
	for _, idx := range perm[:count] {
		out = append(out, pool[idx].Public())
	}
	return out, nil
}

// Verify looks up the unique question with the given text and reports
// whether the candidate answer is among its accepted labels. Candidates are
// normalized to the stored label convention ("a" -> "A") before matching.
func (s *Service) Verify(ctx context.Context, questionText, candidate string) (Verification, error) {
	matches, err := s.store.FindByText(ctx, questionText)
	if err != nil {
		return Verification{}, err
	}
	switch {
	case len(matches) == 0:
		return Verification{}, ErrQuestionNotFound
	case len(matches) > 1:
		return Verification{}, ErrAmbiguousQuestion
	}

	q := matches[0]
	labels := q.CorrectLabels()
	if len(labels) == 0 {
		return Verification{Question: q.Question}, nil
	}

	norm := capitalize(candidate)
	for _, l := range labels {
		if l == norm {
			return Verification{Question: q.Question, HasAnswer: true, Match: true}, nil
		}
	}
	return Verification{Question: q.Question, HasAnswer: true}, nil
}

// Ingest validates required fields and appends the row to the bank.
// Duplicate question text is allowed; the verifier rejects it as ambiguous
// at lookup time instead.
func (s *Service) Ingest(ctx context.Context, q Question) (Question, error) {
	for _, f := range []struct{ name, val string }{
		{"question", q.Question},
		{"subject", q.Subject},
		{"use", q.Use},
		{"responseA", q.ResponseA},
		{"responseB", q.ResponseB},
	} {
		if strings.TrimSpace(f.val) == "" {
			return Question{}, &MissingFieldError{Field: f.name}
		}
	}
	return s.store.Append(ctx, q)
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(strings.ToLower(s))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
