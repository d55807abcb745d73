package assessment

// IsVisible reports whether q should be shown given the current answers.
// Questions without a rule are always visible and so are rules with an
// operator this package does not know. A rule pointing at the question
// itself is ignored.
func IsVisible(q Question, answers Answers) bool {
	rule := q.Conditional
	if rule == nil || rule.DependsOn == q.ID {
		return true
	}
	dep := answers[rule.DependsOn]

	switch rule.Operator {
	case OpEquals:
		return dep.Equal(rule.Value)
	case OpNotEquals:
		return !dep.Equal(rule.Value)
	case OpContains:
		return dep.Contains(rule.Value)
	case OpGreaterThan, OpLessThan:
		got, ok := dep.Float()
		if !ok {
			return false
		}
		want, ok := rule.Value.Float()
		if !ok {
			return false
		}
		if rule.Operator == OpGreaterThan {
			return got > want
		}
		return got < want
	default:
		return true
	}
}

// VisibleQuestions returns the questions shown for answers, in evaluation
// order.
func VisibleQuestions(a Assessment, answers Answers) []Question {
	var out []Question
	for _, q := range a.Questions() {
		if IsVisible(q, answers) {
			out = append(out, q)
		}
	}
	return out
}
