package assessment

import (
	"fmt"
	"sort"
)

const (
	MsgRequired      = "This field is required"
	MsgInvalidNumber = "Must be a valid number"
)

// Errors maps question ids to a single user-facing message. An empty map
// means the answers are valid.
type Errors map[string]string

func (e Errors) Valid() bool { return len(e) == 0 }

// QuestionIDs returns the failing question ids sorted for stable output.
func (e Errors) QuestionIDs() []string {
	ids := make([]string, 0, len(e))
	for id := range e {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Validate checks every visible question of a against answers. Hidden
// questions are skipped even when required. When several rules fail for one
// question the last one checked is kept: required, then numeric bounds, then
// length.
func Validate(a Assessment, answers Answers) Errors {
	errs := Errors{}
	for _, q := range a.Questions() {
		if !IsVisible(q, answers) {
			continue
		}
		if msg, failed := checkQuestion(q, answers[q.ID]); failed {
			errs[q.ID] = msg
		}
	}
	return errs
}

func checkQuestion(q Question, ans Answer) (string, bool) {
	var (
		msg    string
		failed bool
	)
	fail := func(m string) { msg, failed = m, true }

	if q.Required && ans.IsZeroLength() {
		fail(MsgRequired)
	}

	switch q.Type {
	case Numeric:
		if ans.IsZeroLength() {
			break
		}
		v, ok := ans.Float()
		if !ok {
			fail(MsgInvalidNumber)
			break
		}
		if q.Min != nil && v < *q.Min {
			fail(fmt.Sprintf("Value must be at least %s", formatNumber(*q.Min)))
		}
		if q.Max != nil && v > *q.Max {
			fail(fmt.Sprintf("Value must be at most %s", formatNumber(*q.Max)))
		}
	case ShortText, LongText:
		if ans.IsZeroLength() || q.MaxLength == nil || *q.MaxLength <= 0 {
			break
		}
		if ans.Length() > *q.MaxLength {
			fail(fmt.Sprintf("Maximum %d characters", *q.MaxLength))
		}
	}
	return msg, failed
}

// Submit validates answers and, when they pass, builds the response that
// should be stored: only visible questions that were answered, in evaluation
// order. SubmittedAt is left for the caller to stamp.
func Submit(a Assessment, candidateID string, answers Answers) (Response, Errors) {
	if errs := Validate(a, answers); !errs.Valid() {
		return Response{}, errs
	}
	resp := Response{
		CandidateID:  candidateID,
		AssessmentID: a.ID,
		Responses:    []ResponseItem{},
	}
	for _, q := range VisibleQuestions(a, answers) {
		ans, ok := answers[q.ID]
		if !ok || ans.IsZeroLength() {
			continue
		}
		resp.Responses = append(resp.Responses, ResponseItem{QuestionID: q.ID, Answer: ans})
	}
	return resp, nil
}
