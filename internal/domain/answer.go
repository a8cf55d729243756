package domain

import (
	"encoding/json"
	"fmt"
)

// AnswerKind distinguishes single-choice answers from multi-select answers.
type AnswerKind string

const (
	AnswerSingle AnswerKind = "single"
	AnswerMulti  AnswerKind = "multi"
)

// Answer is a tagged union: either one selected value or a set of selected
// options, matching the multiplicity declared by the question it answers.
type Answer struct {
	Kind   AnswerKind
	Value  string
	Values []string
}

// SingleAnswer builds a single-choice answer.
func SingleAnswer(value string) Answer {
	return Answer{Kind: AnswerSingle, Value: value}
}

// MultiAnswer builds a multi-select answer.
func MultiAnswer(values ...string) Answer {
	return Answer{Kind: AnswerMulti, Values: values}
}

// IsEmpty reports whether the answer carries no selection. An empty string or
// an empty set does not count as an answer.
func (a Answer) IsEmpty() bool {
	switch a.Kind {
	case AnswerSingle:
		return a.Value == ""
	case AnswerMulti:
		return len(a.Values) == 0
	default:
		return true
	}
}

// Contains reports whether a multi-select answer includes option.
func (a Answer) Contains(option string) bool {
	for _, v := range a.Values {
		if v == option {
			return true
		}
	}
	return false
}

// Toggle returns the answer with option added if absent or removed if present.
func (a Answer) Toggle(option string) Answer {
	out := Answer{Kind: AnswerMulti}
	removed := false
	for _, v := range a.Values {
		if v == option {
			removed = true
			continue
		}
		out.Values = append(out.Values, v)
	}
	if !removed {
		out.Values = append(out.Values, option)
	}
	return out
}

// MarshalJSON encodes a single answer as a string and a multi answer as an
// array, so stored payloads mirror the question multiplicity.
func (a Answer) MarshalJSON() ([]byte, error) {
	if a.Kind == AnswerMulti {
		if a.Values == nil {
			return json.Marshal([]string{})
		}
		return json.Marshal(a.Values)
	}
	return json.Marshal(a.Value)
}

// UnmarshalJSON decodes either a string or an array of strings.
func (a *Answer) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*a = SingleAnswer(single)
		return nil
	}
	var multi []string
	if err := json.Unmarshal(data, &multi); err == nil {
		*a = MultiAnswer(multi...)
		return nil
	}
	return fmt.Errorf("answer must be a string or an array of strings: %s", data)
}
