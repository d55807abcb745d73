package assessment

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// AnswerKind tags which field of an Answer carries the value.
type AnswerKind uint8

const (
	KindNone AnswerKind = iota
	KindText
	KindChoices
	KindNumber
	KindFile
)

func (k AnswerKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindChoices:
		return "choices"
	case KindNumber:
		return "number"
	case KindFile:
		return "file"
	default:
		return "none"
	}
}

// FileRef points at an uploaded file. Only the name is required.
type FileRef struct {
	Name        string `json:"name"`
	Size        int64  `json:"size,omitempty"`
	ContentType string `json:"contentType,omitempty"`
	URL         string `json:"url,omitempty"`
}

// Answer is a candidate's value for one question. The zero value is the
// absent answer.
type Answer struct {
	Kind    AnswerKind
	Text    string
	Choices []string
	Number  float64
	File    FileRef
}

func Text(s string) Answer          { return Answer{Kind: KindText, Text: s} }
func Choices(v ...string) Answer    { return Answer{Kind: KindChoices, Choices: append([]string{}, v...)} }
func Number(f float64) Answer       { return Answer{Kind: KindNumber, Number: f} }
func File(ref FileRef) Answer       { return Answer{Kind: KindFile, File: ref} }
func (a Answer) Present() bool      { return a.Kind != KindNone }
func (a Answer) IsZeroLength() bool { return a.Kind == KindNone || a.isEmpty() }

func (a Answer) isEmpty() bool {
	switch a.Kind {
	case KindText:
		return a.Text == ""
	case KindChoices:
		return len(a.Choices) == 0
	case KindFile:
		return a.File.Name == ""
	case KindNumber:
		return false
	}
	return true
}

// Float reads the answer as a number. Text is parsed, which is how numeric
// inputs usually arrive from a form.
func (a Answer) Float() (float64, bool) {
	switch a.Kind {
	case KindNumber:
		return a.Number, true
	case KindText:
		return parseNumber(a.Text)
	}
	return 0, false
}

// String renders scalar answers as text. Choice lists are joined with ", ".
func (a Answer) String() string {
	switch a.Kind {
	case KindText:
		return a.Text
	case KindNumber:
		return formatNumber(a.Number)
	case KindChoices:
		return strings.Join(a.Choices, ", ")
	case KindFile:
		return a.File.Name
	}
	return ""
}

// Length counts code points of the textual form.
func (a Answer) Length() int {
	return utf8.RuneCountInString(a.String())
}

// Equal is strict equality against a rule value: text only matches text and
// numbers only match numbers.
func (a Answer) Equal(v RuleValue) bool {
	switch a.Kind {
	case KindText:
		return !v.IsNumber && a.Text == v.Text
	case KindNumber:
		return v.IsNumber && a.Number == v.Number
	}
	return false
}

// Contains reports whether a choice list holds v or text includes it.
func (a Answer) Contains(v RuleValue) bool {
	needle := v.String()
	switch a.Kind {
	case KindChoices:
		for _, c := range a.Choices {
			if c == needle {
				return true
			}
		}
	case KindText:
		return strings.Contains(a.Text, needle)
	}
	return false
}

func (a Answer) MarshalJSON() ([]byte, error) {
	switch a.Kind {
	case KindText:
		return json.Marshal(a.Text)
	case KindChoices:
		if a.Choices == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(a.Choices)
	case KindNumber:
		return json.Marshal(a.Number)
	case KindFile:
		return json.Marshal(a.File)
	}
	return []byte("null"), nil
}

// UnmarshalJSON infers the kind from the JSON token. Use DecodeAnswer when
// the question is known.
func (a *Answer) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = Answer{}
		return nil
	}
	var err error
	switch data[0] {
	case '"':
		var s string
		if err = json.Unmarshal(data, &s); err == nil {
			*a = Text(s)
		}
	case '[':
		var list []string
		if err = json.Unmarshal(data, &list); err == nil {
			*a = Choices(list...)
		}
	case '{':
		var ref FileRef
		if err = json.Unmarshal(data, &ref); err == nil {
			*a = File(ref)
		}
	default:
		var f float64
		if err = json.Unmarshal(data, &f); err == nil {
			*a = Number(f)
		}
	}
	if err != nil {
		return fmt.Errorf("unsupported answer value: %w", err)
	}
	return nil
}

var ErrAnswerShape = errors.New("answer does not match question type")

// DecodeAnswer reads a raw JSON value into the variant expected by the
// question type. Numeric questions keep string input as text so the
// validator can report unparseable values; a bare string for a file upload
// is taken as the file name.
func DecodeAnswer(q Question, raw json.RawMessage) (Answer, error) {
	var a Answer
	if err := a.UnmarshalJSON(raw); err != nil {
		return Answer{}, err
	}
	if !a.Present() {
		return a, nil
	}
	switch q.Type {
	case ShortText, LongText, SingleChoice:
		switch a.Kind {
		case KindText:
			return a, nil
		case KindNumber:
			return Text(formatNumber(a.Number)), nil
		}
	case MultiChoice:
		switch a.Kind {
		case KindChoices:
			return a, nil
		case KindText:
			if a.Text == "" {
				return Choices(), nil
			}
			return Choices(a.Text), nil
		}
	case Numeric:
		if a.Kind == KindNumber || a.Kind == KindText {
			return a, nil
		}
	case FileUpload:
		switch a.Kind {
		case KindFile:
			return a, nil
		case KindText:
			return File(FileRef{Name: a.Text}), nil
		}
	default:
		return a, nil
	}
	return Answer{}, fmt.Errorf("%w: %s answer for %s question %q", ErrAnswerShape, a.Kind, q.Type, q.ID)
}

// Answers maps question ids to the current answers.
type Answers map[string]Answer

// DecodeAnswers converts a raw answer map using the assessment's question
// types. Answers for unknown questions are decoded by shape alone.
func DecodeAnswers(a Assessment, raw map[string]json.RawMessage) (Answers, error) {
	out := make(Answers, len(raw))
	for id, value := range raw {
		q, ok := a.FindQuestion(id)
		if !ok {
			var ans Answer
			if err := ans.UnmarshalJSON(value); err != nil {
				return nil, fmt.Errorf("question %q: %w", id, err)
			}
			out[id] = ans
			continue
		}
		ans, err := DecodeAnswer(q, value)
		if err != nil {
			return nil, err
		}
		out[id] = ans
	}
	return out, nil
}

type ResponseItem struct {
	QuestionID string `json:"questionId"`
	Answer     Answer `json:"answer"`
}

// Response is a candidate's submission for one assessment.
type Response struct {
	CandidateID  string         `json:"candidateId"`
	AssessmentID string         `json:"assessmentId"`
	Responses    []ResponseItem `json:"responses"`
	SubmittedAt  *time.Time     `json:"submittedAt,omitempty"`
}

// Answers indexes the response items by question id. Later items win.
func (r Response) Answers() Answers {
	out := make(Answers, len(r.Responses))
	for _, item := range r.Responses {
		out[item.QuestionID] = item.Answer
	}
	return out
}
