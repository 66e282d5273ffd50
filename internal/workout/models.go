package workout

type Profile struct {
	Name         string
	AgeRange     string
	Gender       string
	HeightCm     float64
	WeightKg     float64
	FitnessLevel string
}

type Category string

const (
	CategoryUnderweight Category = "Underweight"
	CategoryNormal      Category = "Normal weight"
	CategoryOverweight  Category = "Overweight"
	CategoryObese       Category = "Obese"
)

type PlanProfile struct {
	Name         string   `json:"name"`
	AgeRange     string   `json:"age_range"`
	Gender       string   `json:"gender"`
	BMI          float64  `json:"bmi"`
	Category     Category `json:"category"`
	FitnessLevel string   `json:"fitness_level"`
}

type CardioBlock struct {
	Exercises []string `json:"exercises"`
	Duration  string   `json:"duration"`
}

type StrengthBlock struct {
	Exercises []string `json:"exercises"`
	Reps      string   `json:"reps"`
}

type Plan struct {
	Profile     PlanProfile   `json:"profile"`
	Motivation  string        `json:"motivation"`
	Warmup      []string      `json:"warmup"`
	Cardio      CardioBlock   `json:"cardio"`
	Strength    StrengthBlock `json:"strength"`
	Flexibility []string      `json:"flexibility"`
	Cooldown    []string      `json:"cooldown"`
}
