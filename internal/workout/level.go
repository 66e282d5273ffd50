package workout

import "strings"

// FitnessLevel selects the cardio and strength lists and their labels.
// The zero value is not a valid level.
type FitnessLevel int

const (
	Beginner FitnessLevel = iota + 1
	Intermediate
	Advanced
)

// Levels lists every supported level in increasing order of intensity.
var Levels = []FitnessLevel{Beginner, Intermediate, Advanced}

func (l FitnessLevel) String() string {
	switch l {
	case Beginner:
		return "beginner"
	case Intermediate:
		return "intermediate"
	case Advanced:
		return "advanced"
	}
	return "unknown"
}

// ParseFitnessLevel matches s case-insensitively against the known levels.
func ParseFitnessLevel(s string) (FitnessLevel, error) {
	lower := strings.ToLower(s)
	for _, l := range Levels {
		if l.String() == lower {
			return l, nil
		}
	}
	return 0, &InvalidFitnessLevelError{Level: s}
}
