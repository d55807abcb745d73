package assessment

import (
	"fmt"

	"github.com/google/uuid"
)

// NewID generates ids for sections and questions created by the builder.
var NewID = uuid.NewString

// Result reports what a builder mutation did. Applied is false when the
// referenced section, question or option does not exist; the returned
// snapshot is then equal to the input. ID carries the id of a created entity.
type Result struct {
	Applied bool
	ID      string
}

var noMatch = Result{}

type SectionPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

type QuestionPatch struct {
	Type        *QuestionType             `json:"type,omitempty"`
	Title       *string                   `json:"title,omitempty"`
	Description *string                   `json:"description,omitempty"`
	Required    *bool                     `json:"required,omitempty"`
	Options     *[]string                 `json:"options,omitempty"`
	Min         Nullable[float64]         `json:"min"`
	Max         Nullable[float64]         `json:"max"`
	MaxLength   Nullable[int]             `json:"maxLength"`
	Conditional Nullable[ConditionalRule] `json:"conditional"`
}

// New returns an empty assessment for a job.
func New(jobID, title string) Assessment {
	return Assessment{JobID: jobID, Title: title, Sections: []Section{}}
}

func AddSection(a Assessment) (Assessment, Result) {
	out := a.Clone()
	s := Section{
		ID:        NewID(),
		Title:     fmt.Sprintf("Section %d", len(a.Sections)+1),
		Order:     len(a.Sections),
		Questions: []Question{},
	}
	out.Sections = append(out.Sections, s)
	return out, Result{Applied: true, ID: s.ID}
}

func UpdateSection(a Assessment, sectionID string, patch SectionPatch) (Assessment, Result) {
	i := sectionIndex(a, sectionID)
	if i < 0 {
		return a, noMatch
	}
	out := a.Clone()
	s := &out.Sections[i]
	if patch.Title != nil {
		s.Title = *patch.Title
	}
	if patch.Description != nil {
		s.Description = *patch.Description
	}
	return out, Result{Applied: true, ID: sectionID}
}

// DeleteSection removes a section. Remaining orders are left as they are.
func DeleteSection(a Assessment, sectionID string) (Assessment, Result) {
	i := sectionIndex(a, sectionID)
	if i < 0 {
		return a, noMatch
	}
	out := a.Clone()
	out.Sections = append(out.Sections[:i], out.Sections[i+1:]...)
	return out, Result{Applied: true, ID: sectionID}
}

func AddQuestion(a Assessment, sectionID string) (Assessment, Result) {
	i := sectionIndex(a, sectionID)
	if i < 0 {
		return a, noMatch
	}
	out := a.Clone()
	s := &out.Sections[i]
	q := Question{
		ID:       NewID(),
		Type:     ShortText,
		Title:    "New Question",
		Required: false,
		Order:    len(s.Questions),
	}
	s.Questions = append(s.Questions, q)
	return out, Result{Applied: true, ID: q.ID}
}

func UpdateQuestion(a Assessment, sectionID, questionID string, patch QuestionPatch) (Assessment, Result) {
	return editQuestion(a, sectionID, questionID, func(q *Question) bool {
		applyQuestionPatch(q, patch)
		return true
	})
}

// DeleteQuestion removes a question. Remaining orders are left as they are.
func DeleteQuestion(a Assessment, sectionID, questionID string) (Assessment, Result) {
	si, qi := questionIndex(a, sectionID, questionID)
	if qi < 0 {
		return a, noMatch
	}
	out := a.Clone()
	qs := out.Sections[si].Questions
	out.Sections[si].Questions = append(qs[:qi], qs[qi+1:]...)
	return out, Result{Applied: true, ID: questionID}
}

// AddOption appends "Option N" where N is the new option count.
func AddOption(a Assessment, sectionID, questionID string) (Assessment, Result) {
	return editQuestion(a, sectionID, questionID, func(q *Question) bool {
		q.Options = append(q.Options, fmt.Sprintf("Option %d", len(q.Options)+1))
		return true
	})
}

func UpdateOption(a Assessment, sectionID, questionID string, index int, value string) (Assessment, Result) {
	return editQuestion(a, sectionID, questionID, func(q *Question) bool {
		if index < 0 || index >= len(q.Options) {
			return false
		}
		q.Options[index] = value
		return true
	})
}

func DeleteOption(a Assessment, sectionID, questionID string, index int) (Assessment, Result) {
	return editQuestion(a, sectionID, questionID, func(q *Question) bool {
		if index < 0 || index >= len(q.Options) {
			return false
		}
		q.Options = append(q.Options[:index], q.Options[index+1:]...)
		return true
	})
}

// editQuestion clones a and runs fn on the matching question. When fn
// declines, the original snapshot is returned untouched.
func editQuestion(a Assessment, sectionID, questionID string, fn func(*Question) bool) (Assessment, Result) {
	si, qi := questionIndex(a, sectionID, questionID)
	if qi < 0 {
		return a, noMatch
	}
	out := a.Clone()
	if !fn(&out.Sections[si].Questions[qi]) {
		return a, noMatch
	}
	return out, Result{Applied: true, ID: questionID}
}

func applyQuestionPatch(q *Question, p QuestionPatch) {
	if p.Type != nil {
		q.Type = *p.Type
	}
	if p.Title != nil {
		q.Title = *p.Title
	}
	if p.Description != nil {
		q.Description = *p.Description
	}
	if p.Required != nil {
		q.Required = *p.Required
	}
	if p.Options != nil {
		q.Options = append([]string{}, (*p.Options)...)
	}
	p.Min.apply(&q.Min)
	p.Max.apply(&q.Max)
	p.MaxLength.apply(&q.MaxLength)
	p.Conditional.apply(&q.Conditional)
}

func sectionIndex(a Assessment, sectionID string) int {
	for i, s := range a.Sections {
		if s.ID == sectionID {
			return i
		}
	}
	return -1
}

func questionIndex(a Assessment, sectionID, questionID string) (int, int) {
	si := sectionIndex(a, sectionID)
	if si < 0 {
		return -1, -1
	}
	for qi, q := range a.Sections[si].Questions {
		if q.ID == questionID {
			return si, qi
		}
	}
	return si, -1
}
