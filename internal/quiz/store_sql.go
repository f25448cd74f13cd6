package quiz

import (
	"context"
	"database/sql"
)

// SQLStore is a Store backed by a questions table (sqlite or postgres).
// Rows keep insertion order via the serial id column.
type SQLStore struct {
	db     *sql.DB
	driver string // "sqlite" or "postgres"
}

func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

const questionCols = `question, subject, use, correct, response_a, response_b, response_c, response_d, remark`

// containsExpr is the driver-specific substring test for the subject column.
// LIKE is avoided: sqlite LIKE is case-insensitive for ASCII, which would
// diverge from the in-memory store's matching.
func (s *SQLStore) containsExpr() string {
	if s.driver == "postgres" {
		return `position($2 in subject) > 0`
	}
	return `instr(subject, $2) > 0`
}

func (s *SQLStore) Filter(ctx context.Context, use, subject string) ([]Question, error) {
	q := `SELECT ` + questionCols + ` FROM questions WHERE use = $1 AND ` + s.containsExpr() + ` ORDER BY id`
	rows, err := s.db.QueryContext(ctx, q, use, subject)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanQuestions(rows)
}

func (s *SQLStore) FindByText(ctx context.Context, text string) ([]Question, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+questionCols+` FROM questions WHERE question = $1 ORDER BY id`, text)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanQuestions(rows)
}

func (s *SQLStore) Append(ctx context.Context, q Question) (Question, error) {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO questions (`+questionCols+`) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		q.Question, q.Subject, q.Use, q.Correct,
		q.ResponseA, q.ResponseB, q.ResponseC, q.ResponseD, q.Remark)
	if err != nil {
		return Question{}, err
	}
	return q, nil
}

func (s *SQLStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM questions`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func scanQuestions(rows *sql.Rows) ([]Question, error) {
	var out []Question
	for rows.Next() {
		var q Question
		if err := rows.Scan(&q.Question, &q.Subject, &q.Use, &q.Correct,
			&q.ResponseA, &q.ResponseB, &q.ResponseC, &q.ResponseD, &q.Remark); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}
