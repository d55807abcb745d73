package seed

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"talentflow/internal/assessment"
)

//go:embed template.yaml
var defaultTemplate []byte

// Template describes an assessment in YAML. Questions refer to each other by
// key; ids are generated when the template is instantiated.
type Template struct {
	Title    string            `yaml:"title"`
	Sections []SectionTemplate `yaml:"sections"`
}

type SectionTemplate struct {
	Title       string             `yaml:"title"`
	Description string             `yaml:"description"`
	Questions   []QuestionTemplate `yaml:"questions"`
}

type QuestionTemplate struct {
	Key         string             `yaml:"key"`
	Type        string             `yaml:"type"`
	Title       string             `yaml:"title"`
	Description string             `yaml:"description"`
	Required    bool               `yaml:"required"`
	Options     []string           `yaml:"options"`
	Min         *float64           `yaml:"min"`
	Max         *float64           `yaml:"max"`
	MaxLength   *int               `yaml:"max_length"`
	Conditional *ConditionTemplate `yaml:"conditional"`
}

type ConditionTemplate struct {
	DependsOn string `yaml:"depends_on"`
	Operator  string `yaml:"operator"`
	Value     any    `yaml:"value"`
}

func DefaultTemplate() (*Template, error) {
	return ParseTemplate(defaultTemplate)
}

func ParseTemplate(data []byte) (*Template, error) {
	var t Template
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to unmarshal assessment template: %w", err)
	}
	return &t, nil
}

// Build turns the template into an assessment for jobID. The result is
// checked with CheckConditionals so a broken template fails loudly.
func (t *Template) Build(jobID, jobTitle string) (assessment.Assessment, error) {
	a := assessment.New(jobID, fmt.Sprintf(t.Title, jobTitle))
	ids := map[string]string{}

	for si, st := range t.Sections {
		section := assessment.Section{
			ID:          assessment.NewID(),
			Title:       st.Title,
			Description: st.Description,
			Order:       si,
			Questions:   make([]assessment.Question, 0, len(st.Questions)),
		}
		for qi, qt := range st.Questions {
			q := assessment.Question{
				ID:          assessment.NewID(),
				Type:        assessment.QuestionType(qt.Type),
				Title:       qt.Title,
				Description: qt.Description,
				Required:    qt.Required,
				Order:       qi,
				Options:     append([]string(nil), qt.Options...),
				Min:         qt.Min,
				Max:         qt.Max,
				MaxLength:   qt.MaxLength,
			}
			if qt.Key != "" {
				ids[qt.Key] = q.ID
			}
			if c := qt.Conditional; c != nil {
				dep, ok := ids[c.DependsOn]
				if !ok {
					return assessment.Assessment{}, fmt.Errorf("question %q depends on unknown key %q", qt.Key, c.DependsOn)
				}
				value, err := ruleValue(c.Value)
				if err != nil {
					return assessment.Assessment{}, fmt.Errorf("question %q: %w", qt.Key, err)
				}
				q.Conditional = &assessment.ConditionalRule{
					DependsOn: dep,
					Operator:  assessment.Operator(c.Operator),
					Value:     value,
				}
			}
			section.Questions = append(section.Questions, q)
		}
		a.Sections = append(a.Sections, section)
	}

	if issues := assessment.CheckConditionals(a); len(issues) > 0 {
		return assessment.Assessment{}, fmt.Errorf("invalid template: %w", issues[0])
	}
	return a, nil
}

func ruleValue(v any) (assessment.RuleValue, error) {
	switch x := v.(type) {
	case string:
		return assessment.TextValue(x), nil
	case int:
		return assessment.NumberValue(float64(x)), nil
	case float64:
		return assessment.NumberValue(x), nil
	default:
		return assessment.RuleValue{}, fmt.Errorf("unsupported rule value %v", v)
	}
}
