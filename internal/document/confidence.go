package document

// ConfidenceLevel grades how well a section of the generated definition is
// backed by the user's answers, on a 1..5 scale.
type ConfidenceLevel int

const (
	VeryLow  ConfidenceLevel = 1
	Low      ConfidenceLevel = 2
	Medium   ConfidenceLevel = 3
	High     ConfidenceLevel = 4
	VeryHigh ConfidenceLevel = 5
)

// FromValue converts a numeric score to a ConfidenceLevel.
func FromValue(value int) (ConfidenceLevel, bool) {
	if value < 1 || value > 5 {
		return 0, false
	}
	return ConfidenceLevel(value), true
}

// Emoji returns the marker rendered next to a section title.
func (c ConfidenceLevel) Emoji() string {
	switch c {
	case VeryLow:
		return "⚠️"
	case Low:
		return "🔸"
	case Medium:
		return "🔶"
	case High:
		return "✅"
	case VeryHigh:
		return "⭐"
	default:
		return ""
	}
}

func (c ConfidenceLevel) String() string {
	switch c {
	case VeryLow:
		return "Very Low"
	case Low:
		return "Low"
	case Medium:
		return "Medium"
	case High:
		return "High"
	case VeryHigh:
		return "Very High"
	default:
		return "Unknown"
	}
}
