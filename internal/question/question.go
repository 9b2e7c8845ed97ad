package question

// Kind identifies the shape of a question and the kind of answer it expects.
type Kind string

const (
	MultipleChoice Kind = "MultipleChoice"
	YesNo          Kind = "YesNo"
	RatingScale    Kind = "RatingScale"
	FreeText       Kind = "FreeText"
)

func (k Kind) String() string {
	switch k {
	case MultipleChoice:
		return "Multiple Choice"
	case YesNo:
		return "Yes/No"
	case RatingScale:
		return "Rating Scale"
	case FreeText:
		return "Free Text"
	default:
		return string(k)
	}
}

// Valid reports whether k is one of the recognized kinds.
func (k Kind) Valid() bool {
	switch k {
	case MultipleChoice, YesNo, RatingScale, FreeText:
		return true
	}
	return false
}

// Scale is the inclusive answer range of a rating question.
type Scale struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Question is a single prompt put to the user during an interview.
// Options is populated only for MultipleChoice and YesNo questions,
// Scale only for RatingScale questions.
type Question struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Kind     Kind     `json:"question_type"`
	Options  []string `json:"options,omitempty"`
	Scale    *Scale   `json:"scale,omitempty"`
	HelpText string   `json:"help_text,omitempty"`
}

// NewMultipleChoice builds a question answered by picking one of options.
func NewMultipleChoice(id, text string, options []string) Question {
	return Question{
		ID:      id,
		Text:    text,
		Kind:    MultipleChoice,
		Options: options,
	}
}

// NewYesNo builds a binary question. The options are always Yes and No.
func NewYesNo(id, text string) Question {
	return Question{
		ID:      id,
		Text:    text,
		Kind:    YesNo,
		Options: []string{"Yes", "No"},
	}
}

// NewRatingScale builds a question answered on the inclusive range min..max.
func NewRatingScale(id, text string, min, max int) Question {
	return Question{
		ID:    id,
		Text:  text,
		Kind:  RatingScale,
		Scale: &Scale{Min: min, Max: max},
	}
}

// NewFreeText builds a question answered with arbitrary text.
func NewFreeText(id, text string) Question {
	return Question{
		ID:   id,
		Text: text,
		Kind: FreeText,
	}
}

// WithHelpText returns a copy of q with the given help text attached.
func (q Question) WithHelpText(help string) Question {
	q.HelpText = help
	return q
}
