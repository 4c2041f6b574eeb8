package segment

import (
	"fmt"
	"strings"
)

type AnswerType string

const (
	AnswerTypeChoice  AnswerType = "choice"
	AnswerTypeChoices AnswerType = "choices"
	AnswerTypeText    AnswerType = "text"
)

// Operators supported by rule conditions.
const (
	OperatorIn          = "in"
	OperatorNotContains = "not_contains"
	OperatorContains    = "contains"
	OperatorContainsAny = "contains_any"
	OperatorEquals      = "equals"
)

var validStatuses = map[string]bool{
	"pending":     true,
	"in_progress": true,
	"completed":   true,
	"terminated":  true,
	"failed":      true,
}

// QuestionMapping resolves a raw survey question to an internal key.
// PartialTitle is matched against raw question titles by case-insensitive
// substring containment.
type QuestionMapping struct {
	Key          string     `yaml:"key"`
	PartialTitle string     `yaml:"partial_title"`
	Type         AnswerType `yaml:"type"`
}

type Condition struct {
	Operator string   `yaml:"operator"`
	Values   []string `yaml:"values"`
	Exclude  []string `yaml:"exclude"`
}

// Rule maps a conjunction of conditions to a (segment, status) outcome.
type Rule struct {
	Segment    string               `yaml:"segment"`
	Status     string               `yaml:"status"`
	Conditions map[string]Condition `yaml:"conditions"`
}

type Segmentation struct {
	Rules          []Rule `yaml:"rules"`
	DefaultSegment string `yaml:"default_segment"`
	DefaultStatus  string `yaml:"default_status"`
}

// InterviewCopy is presentation copy served to the client as-is.
type InterviewCopy struct {
	Title             string `yaml:"title"`
	Description       string `yaml:"description"`
	CompletionMessage string `yaml:"completion_message"`
}

// SurveyConfig is the full rule configuration document. It is loaded once at
// startup and treated as immutable afterwards.
type SurveyConfig struct {
	Questions    []QuestionMapping `yaml:"questions"`
	Segmentation Segmentation      `yaml:"segmentation"`
	Interview    InterviewCopy     `yaml:"interview"`
}

// Validate rejects configurations that would make rule evaluation undefined at
// runtime. A failure here is fatal: the service must not start with a broken
// rule set.
func (c *SurveyConfig) Validate() error {
	if len(c.Questions) == 0 {
		return fmt.Errorf("at least one question mapping is required")
	}

	seenKeys := make(map[string]bool)
	for i, q := range c.Questions {
		if q.Key == "" {
			return fmt.Errorf("question mapping %d has an empty key", i)
		}
		if seenKeys[q.Key] {
			return fmt.Errorf("duplicate question key %q", q.Key)
		}
		seenKeys[q.Key] = true

		if strings.TrimSpace(q.PartialTitle) == "" {
			return fmt.Errorf("question %q has an empty partial_title", q.Key)
		}
		switch q.Type {
		case AnswerTypeChoice, AnswerTypeChoices, AnswerTypeText:
		default:
			return fmt.Errorf("question %q has unknown answer type %q", q.Key, q.Type)
		}
	}

	// Ambiguous partial titles would make answer extraction order-dependent:
	// if one partial contains another, both could match the same raw title.
	for i, a := range c.Questions {
		for j, b := range c.Questions {
			if i == j {
				continue
			}
			if strings.Contains(strings.ToLower(a.PartialTitle), strings.ToLower(b.PartialTitle)) {
				return fmt.Errorf("ambiguous partial titles: %q (question %q) contains %q (question %q)",
					a.PartialTitle, a.Key, b.PartialTitle, b.Key)
			}
		}
	}

	for i, rule := range c.Segmentation.Rules {
		if rule.Segment == "" {
			return fmt.Errorf("rule %d has an empty segment name", i)
		}
		if !validStatuses[rule.Status] {
			return fmt.Errorf("rule %d (%s) has unknown status %q", i, rule.Segment, rule.Status)
		}
		if len(rule.Conditions) == 0 {
			return fmt.Errorf("rule %d (%s) has no conditions", i, rule.Segment)
		}
		for key, cond := range rule.Conditions {
			if !seenKeys[key] {
				return fmt.Errorf("rule %d (%s) references unmapped question key %q", i, rule.Segment, key)
			}
			switch cond.Operator {
			case OperatorNotContains:
				if len(cond.Exclude) == 0 {
					return fmt.Errorf("rule %d (%s): not_contains condition on %q needs a non-empty exclude list", i, rule.Segment, key)
				}
			case OperatorIn, OperatorContains, OperatorContainsAny, OperatorEquals:
				if len(cond.Values) == 0 {
					return fmt.Errorf("rule %d (%s): %s condition on %q needs a non-empty values list", i, rule.Segment, cond.Operator, key)
				}
			default:
				return fmt.Errorf("rule %d (%s): unknown operator %q on %q", i, rule.Segment, cond.Operator, key)
			}
		}
	}

	if c.Segmentation.DefaultSegment == "" {
		return fmt.Errorf("default_segment is required")
	}
	if !validStatuses[c.Segmentation.DefaultStatus] {
		return fmt.Errorf("unknown default_status %q", c.Segmentation.DefaultStatus)
	}

	return nil
}
