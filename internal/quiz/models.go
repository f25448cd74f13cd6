package quiz

import "strings"

// Question is one row of the question bank. Question text doubles as the
// lookup identifier for answer verification.
type Question struct {
	Question  string `json:"question"`
	Subject   string `json:"subject"`
	Use       string `json:"use"`
	Correct   string `json:"correct,omitempty"` // accepted labels, comma-separated (e.g. "A" or "A,C"); empty = no answer on file
	ResponseA string `json:"responseA"`
	ResponseB string `json:"responseB"`
	ResponseC string `json:"responseC,omitempty"`
	ResponseD string `json:"responseD,omitempty"`
	Remark    string `json:"remark,omitempty"`
}

// CorrectLabels splits the stored correct field into individual labels.
// Returns nil when no answer is on file.
func (q Question) CorrectLabels() []string {
	if strings.TrimSpace(q.Correct) == "" {
		return nil
	}
	parts := strings.Split(q.Correct, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// QuestionPublic is the questionnaire view of a row: prompt and options
// only, never the answer key.
type QuestionPublic struct {
	Question  string `json:"question"`
	ResponseA string `json:"responseA"`
	ResponseB string `json:"responseB"`
	ResponseC string `json:"responseC,omitempty"`
	ResponseD string `json:"responseD,omitempty"`
}

// Public strips a row down to its questionnaire view.
func (q Question) Public() QuestionPublic {
	return QuestionPublic{
		Question:  q.Question,
		ResponseA: q.ResponseA,
		ResponseB: q.ResponseB,
		ResponseC: q.ResponseC,
		ResponseD: q.ResponseD,
	}
}

// Verification is the outcome of checking a candidate answer.
type Verification struct {
	Question  string `json:"question"`
	HasAnswer bool   `json:"has_answer"`
	Match     bool   `json:"match"`
}
