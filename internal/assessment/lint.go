package assessment

import "fmt"

type IssueCode string

const (
	IssueUnknownType      IssueCode = "unknown_type"
	IssueDuplicateID      IssueCode = "duplicate_id"
	IssueSelfReference    IssueCode = "self_reference"
	IssueUnknownTarget    IssueCode = "unknown_target"
	IssueForwardReference IssueCode = "forward_reference"
	IssueUnknownOperator  IssueCode = "unknown_operator"
)

// Issue is a structural problem in an assessment definition.
type Issue struct {
	QuestionID string    `json:"questionId"`
	Code       IssueCode `json:"code"`
	Message    string    `json:"message"`
}

func (i Issue) Error() string { return fmt.Sprintf("question %s: %s", i.QuestionID, i.Message) }

// Blocking reports whether the issue should stop the definition from being
// saved. Unknown operators are not blocking.
func (i Issue) Blocking() bool { return i.Code != IssueUnknownOperator }

// CheckConditionals walks the questions in evaluation order and reports
// rules that cannot be evaluated safely: a question depending on itself, on
// a question that does not exist, or on one that only comes later. Because
// every rule must point backwards, an assessment without issues has no
// dependency cycles. Unknown operators are reported too even though the
// evaluator treats them as visible.
func CheckConditionals(a Assessment) []Issue {
	var issues []Issue
	seen := map[string]bool{}
	all := map[string]bool{}
	for _, q := range a.Questions() {
		all[q.ID] = true
	}

	for _, q := range a.Questions() {
		if seen[q.ID] {
			issues = append(issues, Issue{q.ID, IssueDuplicateID, "question id is used more than once"})
		}
		if !q.Type.Valid() {
			issues = append(issues, Issue{q.ID, IssueUnknownType, fmt.Sprintf("unknown question type %q", q.Type)})
		}
		if rule := q.Conditional; rule != nil {
			switch {
			case rule.DependsOn == q.ID:
				issues = append(issues, Issue{q.ID, IssueSelfReference, "conditional rule depends on the question itself"})
			case !all[rule.DependsOn]:
				issues = append(issues, Issue{q.ID, IssueUnknownTarget, fmt.Sprintf("conditional rule depends on unknown question %q", rule.DependsOn)})
			case !seen[rule.DependsOn]:
				issues = append(issues, Issue{q.ID, IssueForwardReference, fmt.Sprintf("conditional rule depends on later question %q", rule.DependsOn)})
			}
			if !knownOperator(rule.Operator) {
				issues = append(issues, Issue{q.ID, IssueUnknownOperator, fmt.Sprintf("unknown operator %q", rule.Operator)})
			}
		}
		seen[q.ID] = true
	}
	return issues
}

func knownOperator(op Operator) bool {
	switch op {
	case OpEquals, OpNotEquals, OpContains, OpGreaterThan, OpLessThan:
		return true
	}
	return false
}
