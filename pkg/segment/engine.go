package segment

// Evaluate runs the ordered segmentation rules against a set of answers and
// returns the first fully matching rule's (segment, status). When no rule
// matches it falls back to the configured defaults, so evaluation is total:
// every answer set, including the empty one, yields exactly one outcome.
//
// Pure function: no I/O, no shared state, no error paths. Malformed
// configurations are rejected by SurveyConfig.Validate at startup.
func Evaluate(answers AnswerSet, cfg *SurveyConfig) (segment string, status string) {
	for _, rule := range cfg.Segmentation.Rules {
		if ruleMatches(answers, rule.Conditions) {
			return rule.Segment, rule.Status
		}
	}
	return cfg.Segmentation.DefaultSegment, cfg.Segmentation.DefaultStatus
}

// ruleMatches requires every condition to hold (conjunction).
func ruleMatches(answers AnswerSet, conditions map[string]Condition) bool {
	for key, cond := range conditions {
		if !conditionMatches(answers, key, cond) {
			return false
		}
	}
	return true
}

func conditionMatches(answers AnswerSet, key string, cond Condition) bool {
	answer, ok := answers[key]

	// not_contains is the one operator satisfied by an absent answer: rule
	// authors use it to mean "absent or not in the exclude list".
	if cond.Operator == OperatorNotContains {
		if !ok {
			return true
		}
		for _, excluded := range cond.Exclude {
			if answer.containsSubstring(excluded) {
				return false
			}
		}
		return true
	}

	// Every other operator fails closed on a missing answer.
	if !ok {
		return false
	}

	switch cond.Operator {
	case OperatorIn:
		for _, v := range cond.Values {
			if answer.Scalar == v {
				return true
			}
		}
		return false

	case OperatorContains, OperatorContainsAny:
		// Non-empty intersection between the answer list and the expected
		// values. contains is the single-value case of contains_any.
		for _, v := range cond.Values {
			for _, m := range answer.members() {
				if m == v {
					return true
				}
			}
		}
		return false

	case OperatorEquals:
		return answer.Scalar == cond.Values[0]
	}

	// Unknown operators are rejected at config validation.
	return false
}
