package workout

import "slices"

// LevelCatalog holds the level-specific lists and the labels attached to them.
type LevelCatalog struct {
	Cardio   []string
	Strength []string
	Duration string
	Reps     string
}

// Catalog is the fixed set of exercise lists a plan is drawn from.
// DefaultCatalog, NewGenerator and Generator.Catalog each take a deep copy,
// so edits to a returned Catalog never reach a running generator.
type Catalog struct {
	Warmup      []string
	Flexibility []string
	Cooldown    []string
	Levels      map[FitnessLevel]LevelCatalog
}

// Level returns the lists for level, or an InvalidFitnessLevelError when the
// catalog has no cardio and no strength entries for it.
func (c Catalog) Level(level FitnessLevel) (LevelCatalog, error) {
	lc, ok := c.Levels[level]
	if !ok || (len(lc.Cardio) == 0 && len(lc.Strength) == 0) {
		return LevelCatalog{}, &InvalidFitnessLevelError{Level: level.String()}
	}
	return lc, nil
}

var defaultCatalog = Catalog{
	Warmup: []string{"Jumping Jacks", "Arm Circles", "Leg Swings", "High Knees", "Butt Kicks"},
	Flexibility: []string{
		"Hamstring Stretch", "Quad Stretch", "Shoulder Stretch", "Cat-Cow Pose", "Child's Pose",
	},
	Cooldown: []string{"Walking", "Deep Breathing", "Full Body Stretch", "Foam Rolling"},
	Levels: map[FitnessLevel]LevelCatalog{
		Beginner: {
			Cardio:   []string{"Brisk Walking", "Light Jogging", "Dancing", "Cycling (easy pace)"},
			Strength: []string{"Wall Push-ups", "Bodyweight Squats", "Lunges", "Plank (knees down)"},
			Duration: "5-7 minutes",
			Reps:     "10-12 reps",
		},
		Intermediate: {
			Cardio:   []string{"Running", "Jump Rope", "Burpees", "Mountain Climbers", "Boxing"},
			Strength: []string{"Push-ups", "Squats", "Lunges", "Plank", "Crunches", "Dumbbell Rows"},
			Duration: "7-10 minutes",
			Reps:     "12-15 reps",
		},
		Advanced: {
			Cardio:   []string{"Sprint Intervals", "HIIT Sprints", "Plyometric Jumps", "Battle Ropes"},
			Strength: []string{"Weighted Squats", "Pull-ups", "Pistol Squats", "Burpees", "Deadlifts"},
			Duration: "10-15 minutes",
			Reps:     "15-20 reps",
		},
	},
}

// DefaultCatalog returns a copy of the built-in exercise catalog.
func DefaultCatalog() Catalog {
	return defaultCatalog.clone()
}

func (c Catalog) clone() Catalog {
	out := Catalog{
		Warmup:      slices.Clone(c.Warmup),
		Flexibility: slices.Clone(c.Flexibility),
		Cooldown:    slices.Clone(c.Cooldown),
		Levels:      make(map[FitnessLevel]LevelCatalog, len(c.Levels)),
	}
	for l, lc := range c.Levels {
		lc.Cardio = slices.Clone(lc.Cardio)
		lc.Strength = slices.Clone(lc.Strength)
		out.Levels[l] = lc
	}
	return out
}

var motivationalMessages = []string{
	"💪 You're taking the first step to a healthier you!",
	"🌟 Great things never come from comfort zones!",
	"🔥 The only bad workout is the one you didn't do!",
	"✨ Your body can do it, it's your mind you need to convince!",
}
