// Package workout builds randomized workout plans from a fixed exercise
// catalog and a person's basic biometrics.
package workout

const (
	warmupCount      = 3
	cardioCount      = 3
	strengthCount    = 4
	flexibilityCount = 3
	cooldownCount    = 2
)

type Generator struct {
	catalog  Catalog
	sampler  Sampler
	messages []string
}

func NewGenerator(catalog Catalog, sampler Sampler) *Generator {
	return &Generator{
		catalog:  catalog.clone(),
		sampler:  sampler,
		messages: motivationalMessages,
	}
}

// Catalog returns a copy of the catalog plans are drawn from.
func (g *Generator) Catalog() Catalog {
	return g.catalog.clone()
}

// GeneratePlan classifies the profile's BMI and draws each exercise group
// independently without replacement. An unknown fitness level yields an
// InvalidFitnessLevelError and no plan.
//
// HeightCm and WeightKg must already be validated as positive.
func (g *Generator) GeneratePlan(p Profile) (*Plan, error) {
	level, err := ParseFitnessLevel(p.FitnessLevel)
	if err != nil {
		return nil, err
	}
	lc, err := g.catalog.Level(level)
	if err != nil {
		return nil, &InvalidFitnessLevelError{Level: p.FitnessLevel}
	}

	bmi, category := ClassifyBMI(p.HeightCm, p.WeightKg)

	return &Plan{
		Profile: PlanProfile{
			Name:         p.Name,
			AgeRange:     p.AgeRange,
			Gender:       p.Gender,
			BMI:          bmi,
			Category:     category,
			FitnessLevel: p.FitnessLevel,
		},
		Motivation: g.sampler.Choice(g.messages),
		Warmup:     g.sampler.Sample(g.catalog.Warmup, warmupCount),
		Cardio: CardioBlock{
			Exercises: g.sampler.Sample(lc.Cardio, cardioCount),
			Duration:  lc.Duration,
		},
		Strength: StrengthBlock{
			Exercises: g.sampler.Sample(lc.Strength, strengthCount),
			Reps:      lc.Reps,
		},
		Flexibility: g.sampler.Sample(g.catalog.Flexibility, flexibilityCount),
		Cooldown:    g.sampler.Sample(g.catalog.Cooldown, cooldownCount),
	}, nil
}
