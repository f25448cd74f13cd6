package quiz

import "context"

// Store holds the question bank. It is populated once at startup and then
// mutated only by Append; Filter and FindByText are the read paths.
// Implementations must keep reads consistent with a concurrent Append
// (no partially visible rows).
type Store interface {
	// Filter returns every row whose use tag equals use and whose subject
	// value contains subject, in insertion order.
	Filter(ctx context.Context, use, subject string) ([]Question, error)

	// FindByText returns every row whose question text equals text exactly,
	// in insertion order.
	FindByText(ctx context.Context, text string) ([]Question, error)

	// Append adds one row to the end of the bank and returns it as stored.
	Append(ctx context.Context, q Question) (Question, error)

	// Count reports the number of rows in the bank.
	Count(ctx context.Context) (int, error)
}
