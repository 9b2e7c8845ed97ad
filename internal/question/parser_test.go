package question

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_YesNo(t *testing.T) {
	raw := `{"question_type": "YesNo", "question_text": "Will the assistant need user accounts?"}`

	q, err := Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, YesNo, q.Kind)
	assert.Equal(t, "Will the assistant need user accounts?", q.Text)
	assert.Equal(t, []string{"Yes", "No"}, q.Options)
	assert.Nil(t, q.Scale)
	assert.True(t, strings.HasPrefix(q.ID, "q_"))
}

func TestParse_FencedPayload(t *testing.T) {
	plain := `{"question_type": "YesNo", "question_text": "Ship it?"}`
	fenced := "```json\n" + plain + "\n```"

	direct, err := Parse(plain)
	require.NoError(t, err)
	wrapped, err := Parse(fenced)
	require.NoError(t, err)

	assert.Equal(t, direct.Kind, wrapped.Kind)
	assert.Equal(t, direct.Text, wrapped.Text)
	assert.Equal(t, direct.Options, wrapped.Options)
}

func TestParse_MultipleChoice(t *testing.T) {
	t.Run("Valid options", func(t *testing.T) {
		q, err := Parse(`{
			"question_type": "MultipleChoice",
			"question_text": "Which deployment target?",
			"options": ["Cloud", "On-premise", "Hybrid"],
			"help_text": "Pick the closest match."
		}`)
		require.NoError(t, err)
		assert.Equal(t, MultipleChoice, q.Kind)
		assert.Equal(t, []string{"Cloud", "On-premise", "Hybrid"}, q.Options)
		assert.Equal(t, "Pick the closest match.", q.HelpText)
	})

	t.Run("Non-string options filtered", func(t *testing.T) {
		q, err := Parse(`{
			"question_type": "MultipleChoice",
			"question_text": "Which one?",
			"options": ["A", 2, null, "B"]
		}`)
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B"}, q.Options)
	})

	t.Run("Missing options", func(t *testing.T) {
		_, err := Parse(`{"question_type": "MultipleChoice", "question_text": "Which one?"}`)
		var missing *MissingFieldError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "options", missing.Field)
	})
}

func TestParse_RatingScale(t *testing.T) {
	t.Run("Valid scale", func(t *testing.T) {
		q, err := Parse(`{
			"question_type": "RatingScale",
			"question_text": "How important is latency?",
			"scale": [1, 5]
		}`)
		require.NoError(t, err)
		require.NotNil(t, q.Scale)
		assert.Equal(t, 1, q.Scale.Min)
		assert.Equal(t, 5, q.Scale.Max)
	})

	t.Run("Inverted bounds accepted", func(t *testing.T) {
		// Ordering of min and max is deliberately not validated.
		q, err := Parse(`{
			"question_type": "RatingScale",
			"question_text": "Rate it",
			"scale": [5, 1]
		}`)
		require.NoError(t, err)
		assert.Equal(t, 5, q.Scale.Min)
		assert.Equal(t, 1, q.Scale.Max)
	})

	t.Run("Short array rejected", func(t *testing.T) {
		_, err := Parse(`{"question_type": "RatingScale", "question_text": "Rate it", "scale": [3]}`)
		var missing *MissingFieldError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "scale", missing.Field)
	})

	t.Run("Negative bound rejected", func(t *testing.T) {
		_, err := Parse(`{"question_type": "RatingScale", "question_text": "Rate it", "scale": [-1, 5]}`)
		var missing *MissingFieldError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "scale", missing.Field)
	})

	t.Run("Fractional bound rejected", func(t *testing.T) {
		_, err := Parse(`{"question_type": "RatingScale", "question_text": "Rate it", "scale": [1.5, 5]}`)
		var missing *MissingFieldError
		require.ErrorAs(t, err, &missing)
	})
}

func TestParse_BadPayloads(t *testing.T) {
	t.Run("Not JSON", func(t *testing.T) {
		_, err := Parse("Sure! Here is my next question for you.")
		assert.ErrorIs(t, err, ErrNotJSON)
	})

	t.Run("Unknown kind", func(t *testing.T) {
		_, err := Parse(`{"question_type": "Essay", "question_text": "Describe it"}`)
		var unknown *UnknownKindError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "Essay", unknown.Kind)
	})

	t.Run("Absent kind", func(t *testing.T) {
		_, err := Parse(`{"question_text": "Describe it"}`)
		var unknown *UnknownKindError
		require.ErrorAs(t, err, &unknown)
		assert.Empty(t, unknown.Kind)
	})

	t.Run("Missing question text", func(t *testing.T) {
		_, err := Parse(`{"question_type": "FreeText"}`)
		var missing *MissingFieldError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "question_text", missing.Field)
	})

	t.Run("Non-string question text", func(t *testing.T) {
		_, err := Parse(`{"question_type": "FreeText", "question_text": 42}`)
		var missing *MissingFieldError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "question_text", missing.Field)
	})

	t.Run("Non-string help text ignored", func(t *testing.T) {
		q, err := Parse(`{"question_type": "FreeText", "question_text": "Notes?", "help_text": 7}`)
		require.NoError(t, err)
		assert.Empty(t, q.HelpText)
	})
}

func TestParse_ErrorsAreBranchable(t *testing.T) {
	_, err := Parse("not json at all")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotJSON))

	var unknown *UnknownKindError
	assert.False(t, errors.As(err, &unknown))
}
