package question

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"
)

// Parse extracts a Question from a raw model reply. The reply may be wrapped
// in a markdown code fence; unknown extra fields are ignored. Parse never
// trusts the payload shape: every structural problem is reported as
// ErrNotJSON, an UnknownKindError or a MissingFieldError.
func Parse(raw string) (Question, error) {
	cleaned := stripCodeFence(raw)

	var payload map[string]any
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return Question{}, fmt.Errorf("%w: %v", ErrNotJSON, err)
	}

	rawKind, _ := payload["question_type"].(string)
	kind := Kind(rawKind)
	if !kind.Valid() {
		return Question{}, &UnknownKindError{Kind: rawKind}
	}

	text, ok := payload["question_text"].(string)
	if !ok {
		return Question{}, &MissingFieldError{Field: "question_text"}
	}

	id := fmt.Sprintf("q_%d", time.Now().Unix())

	var q Question
	switch kind {
	case MultipleChoice:
		items, ok := payload["options"].([]any)
		if !ok {
			return Question{}, &MissingFieldError{Field: "options"}
		}
		options := make([]string, 0, len(items))
		for _, item := range items {
			if s, ok := item.(string); ok {
				options = append(options, s)
			}
		}
		q = NewMultipleChoice(id, text, options)
	case YesNo:
		q = NewYesNo(id, text)
	case RatingScale:
		min, max, ok := scaleBounds(payload["scale"])
		if !ok {
			return Question{}, &MissingFieldError{Field: "scale"}
		}
		q = NewRatingScale(id, text, min, max)
	case FreeText:
		q = NewFreeText(id, text)
	}

	if help, ok := payload["help_text"].(string); ok {
		q = q.WithHelpText(help)
	}
	return q, nil
}

// scaleBounds reads the first two entries of a scale array. Both must be
// non-negative integers; the ordering of min and max is not checked.
func scaleBounds(v any) (min, max int, ok bool) {
	items, isArray := v.([]any)
	if !isArray || len(items) < 2 {
		return 0, 0, false
	}
	min, ok = asNonNegativeInt(items[0])
	if !ok {
		return 0, 0, false
	}
	max, ok = asNonNegativeInt(items[1])
	if !ok {
		return 0, 0, false
	}
	return min, max, true
}

func asNonNegativeInt(v any) (int, bool) {
	f, ok := v.(float64)
	if !ok || f < 0 || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	return strings.TrimSpace(text)
}
