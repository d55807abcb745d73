// Package assessment holds the definition model of job assessments and the
// pure rules that operate on it: builder mutations, conditional visibility
// and response validation. Nothing in this package performs I/O.
package assessment

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

type QuestionType string

const (
	ShortText    QuestionType = "short-text"
	LongText     QuestionType = "long-text"
	SingleChoice QuestionType = "single-choice"
	MultiChoice  QuestionType = "multi-choice"
	Numeric      QuestionType = "numeric"
	FileUpload   QuestionType = "file-upload"
)

var questionTypes = []QuestionType{ShortText, LongText, SingleChoice, MultiChoice, Numeric, FileUpload}

// QuestionTypes lists every supported question type in display order.
func QuestionTypes() []QuestionType {
	out := make([]QuestionType, len(questionTypes))
	copy(out, questionTypes)
	return out
}

func (t QuestionType) Valid() bool {
	for _, qt := range questionTypes {
		if qt == t {
			return true
		}
	}
	return false
}

// IsText reports whether maxLength applies to the type.
func (t QuestionType) IsText() bool { return t == ShortText || t == LongText }

// IsChoice reports whether options apply to the type.
func (t QuestionType) IsChoice() bool { return t == SingleChoice || t == MultiChoice }

type Operator string

const (
	OpEquals      Operator = "equals"
	OpNotEquals   Operator = "not-equals"
	OpContains    Operator = "contains"
	OpGreaterThan Operator = "greater-than"
	OpLessThan    Operator = "less-than"
)

// RuleValue is the right-hand side of a conditional rule. It is either a
// string or a number, never both.
type RuleValue struct {
	Text     string
	Number   float64
	IsNumber bool
}

func TextValue(s string) RuleValue    { return RuleValue{Text: s} }
func NumberValue(f float64) RuleValue { return RuleValue{Number: f, IsNumber: true} }

// Float returns the numeric reading of the value. Text values are parsed.
func (v RuleValue) Float() (float64, bool) {
	if v.IsNumber {
		return v.Number, true
	}
	return parseNumber(v.Text)
}

func (v RuleValue) String() string {
	if v.IsNumber {
		return formatNumber(v.Number)
	}
	return v.Text
}

func (v RuleValue) MarshalJSON() ([]byte, error) {
	if v.IsNumber {
		return json.Marshal(v.Number)
	}
	return json.Marshal(v.Text)
}

func (v *RuleValue) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*v = NumberValue(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("conditional value must be a string or a number: %w", err)
	}
	*v = TextValue(s)
	return nil
}

type ConditionalRule struct {
	DependsOn string    `json:"dependsOn"`
	Operator  Operator  `json:"operator"`
	Value     RuleValue `json:"value"`
}

type Question struct {
	ID          string           `json:"id"`
	Type        QuestionType     `json:"type"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Required    bool             `json:"required"`
	Order       int              `json:"order"`
	Options     []string         `json:"options,omitempty"`
	Min         *float64         `json:"min,omitempty"`
	Max         *float64         `json:"max,omitempty"`
	MaxLength   *int             `json:"maxLength,omitempty"`
	Conditional *ConditionalRule `json:"conditional,omitempty"`
}

type Section struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Order       int        `json:"order"`
	Questions   []Question `json:"questions"`
}

type Assessment struct {
	ID        string    `json:"id"`
	JobID     string    `json:"jobId"`
	Title     string    `json:"title"`
	Sections  []Section `json:"sections"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Clone returns a deep copy that shares no memory with q.
func (q Question) Clone() Question {
	out := q
	if q.Options != nil {
		out.Options = append([]string(nil), q.Options...)
	}
	if q.Min != nil {
		v := *q.Min
		out.Min = &v
	}
	if q.Max != nil {
		v := *q.Max
		out.Max = &v
	}
	if q.MaxLength != nil {
		v := *q.MaxLength
		out.MaxLength = &v
	}
	if q.Conditional != nil {
		c := *q.Conditional
		out.Conditional = &c
	}
	return out
}

func (s Section) Clone() Section {
	out := s
	if s.Questions != nil {
		out.Questions = make([]Question, len(s.Questions))
		for i, q := range s.Questions {
			out.Questions[i] = q.Clone()
		}
	}
	return out
}

func (a Assessment) Clone() Assessment {
	out := a
	if a.Sections != nil {
		out.Sections = make([]Section, len(a.Sections))
		for i, s := range a.Sections {
			out.Sections[i] = s.Clone()
		}
	}
	return out
}

// OrderedSections returns the sections sorted by Order. Ties keep list
// position, and gaps left by deletions are expected.
func (a Assessment) OrderedSections() []Section {
	out := make([]Section, len(a.Sections))
	copy(out, a.Sections)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

func (s Section) OrderedQuestions() []Question {
	out := make([]Question, len(s.Questions))
	copy(out, s.Questions)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// Questions flattens the assessment in evaluation order.
func (a Assessment) Questions() []Question {
	var out []Question
	for _, s := range a.OrderedSections() {
		out = append(out, s.OrderedQuestions()...)
	}
	return out
}

// FindQuestion looks a question up by id across all sections.
func (a Assessment) FindQuestion(id string) (Question, bool) {
	for _, s := range a.Sections {
		for _, q := range s.Questions {
			if q.ID == id {
				return q, true
			}
		}
	}
	return Question{}, false
}

func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
