package assessment

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAnswer(t *testing.T) {
	tests := []struct {
		name    string
		qtype   QuestionType
		raw     string
		want    Answer
		wantErr bool
	}{
		{"text", ShortText, `"hello"`, Text("hello"), false},
		{"number into text", LongText, `42`, Text("42"), false},
		{"single choice", SingleChoice, `"Yes"`, Text("Yes"), false},
		{"multi choice", MultiChoice, `["a","b"]`, Choices("a", "b"), false},
		{"multi choice from one string", MultiChoice, `"a"`, Choices("a"), false},
		{"numeric number", Numeric, `7.5`, Number(7.5), false},
		{"numeric string stays text", Numeric, `"7"`, Text("7"), false},
		{"file object", FileUpload, `{"name":"cv.pdf","size":10}`, File(FileRef{Name: "cv.pdf", Size: 10}), false},
		{"file name", FileUpload, `"cv.pdf"`, File(FileRef{Name: "cv.pdf"}), false},
		{"null is absent", ShortText, `null`, Answer{}, false},
		{"list for text", ShortText, `["a"]`, Answer{}, true},
		{"object for numeric", Numeric, `{"name":"x"}`, Answer{}, true},
		{"bool", ShortText, `true`, Answer{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeAnswer(Question{ID: "q", Type: tt.qtype}, json.RawMessage(tt.raw))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeAnswers(t *testing.T) {
	a := oneSection(
		Question{ID: "age", Type: Numeric},
		Question{ID: "skills", Type: MultiChoice},
	)

	answers, err := DecodeAnswers(a, map[string]json.RawMessage{
		"age":    json.RawMessage(`"31"`),
		"skills": json.RawMessage(`["Go"]`),
		"extra":  json.RawMessage(`3`),
	})

	require.NoError(t, err)
	assert.Equal(t, Text("31"), answers["age"])
	assert.Equal(t, Choices("Go"), answers["skills"])
	assert.Equal(t, Number(3), answers["extra"])

	_, err = DecodeAnswers(a, map[string]json.RawMessage{"skills": json.RawMessage(`{"name":"x"}`)})
	assert.ErrorIs(t, err, ErrAnswerShape)
}

func TestResponse_JSONRoundTripKeepsAnswerShapes(t *testing.T) {
	in := Response{
		CandidateID:  "c1",
		AssessmentID: "a1",
		Responses: []ResponseItem{
			{QuestionID: "q1", Answer: Text("hi")},
			{QuestionID: "q2", Answer: Choices("a", "b")},
			{QuestionID: "q3", Answer: Number(4)},
			{QuestionID: "q4", Answer: File(FileRef{Name: "cv.pdf"})},
		},
	}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"candidateId":"c1","assessmentId":"a1","responses":[
		{"questionId":"q1","answer":"hi"},
		{"questionId":"q2","answer":["a","b"]},
		{"questionId":"q3","answer":4},
		{"questionId":"q4","answer":{"name":"cv.pdf"}}]}`, string(data))

	var out Response
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
	assert.Equal(t, Number(4), out.Answers()["q3"])
}

func TestRuleValue_JSON(t *testing.T) {
	var rule ConditionalRule
	require.NoError(t, json.Unmarshal([]byte(`{"dependsOn":"a","operator":"equals","value":"Yes"}`), &rule))
	assert.Equal(t, TextValue("Yes"), rule.Value)

	require.NoError(t, json.Unmarshal([]byte(`{"dependsOn":"a","operator":"less-than","value":10}`), &rule))
	assert.Equal(t, NumberValue(10), rule.Value)

	data, err := json.Marshal(rule)
	require.NoError(t, err)
	assert.JSONEq(t, `{"dependsOn":"a","operator":"less-than","value":10}`, string(data))

	assert.Error(t, json.Unmarshal([]byte(`{"value":[1]}`), &rule))
}
