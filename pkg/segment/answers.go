package segment

import "strings"

// Answer is a resolved survey answer: either a scalar string or an ordered
// list of strings, depending on the question's answer type.
type Answer struct {
	Scalar string
	List   []string
	IsList bool
}

func ScalarAnswer(value string) Answer {
	return Answer{Scalar: value}
}

func ListAnswer(values []string) Answer {
	return Answer{List: values, IsList: true}
}

// AnswerSet maps internal question keys to resolved answers. Unmapped raw
// questions are discarded during extraction; missing keys are simply absent.
type AnswerSet map[string]Answer

// members returns the answer as a list: the list itself, or the scalar as a
// single-element list.
func (a Answer) members() []string {
	if a.IsList {
		return a.List
	}
	return []string{a.Scalar}
}

// containsSubstring reports whether any part of the answer contains the given
// substring. Used by not_contains, which mirrors the source system's
// substring semantics rather than exact membership.
func (a Answer) containsSubstring(sub string) bool {
	for _, m := range a.members() {
		if strings.Contains(m, sub) {
			return true
		}
	}
	return false
}
