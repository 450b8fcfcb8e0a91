package v1

import (
	"encoding/json"
	"strings"
)

// StringList accepts either a JSON array of strings or a single string with
// newline-separated items. Clients historically sent both shapes for job
// qualifications and responsibilities, so both normalize to the same list.
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*s = trimNonEmpty(items)
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	*s = trimNonEmpty(strings.Split(text, "\n"))
	return nil
}

func trimNonEmpty(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
