// Package pipeline describes the hiring stages a candidate moves through.
package pipeline

import (
	"fmt"
	"strings"
)

type Stage string

const (
	Applied  Stage = "applied"
	Screen   Stage = "screen"
	Tech     Stage = "tech"
	Offer    Stage = "offer"
	Hired    Stage = "hired"
	Rejected Stage = "rejected"
)

// Stages is the board order used for kanban columns.
var Stages = []Stage{Applied, Screen, Tech, Offer, Hired, Rejected}

func (s Stage) Valid() bool { return s.Index() >= 0 }

// Index returns the column position of s, or -1 for an unknown stage.
func (s Stage) Index() int {
	for i, st := range Stages {
		if st == s {
			return i
		}
	}
	return -1
}

// Terminal reports whether s is the rejected end state. It is reachable from
// every stage and, like every other stage, can still be left.
func (s Stage) Terminal() bool { return s == Rejected }

func Parse(raw string) (Stage, error) {
	s := Stage(strings.ToLower(strings.TrimSpace(raw)))
	if !s.Valid() {
		return "", fmt.Errorf("unknown stage %q", raw)
	}
	return s, nil
}

// CanTransition reports whether a candidate may move from one stage to
// another. Any known stage may move to any other known stage.
func CanTransition(from, to Stage) bool {
	return from.Valid() && to.Valid()
}
