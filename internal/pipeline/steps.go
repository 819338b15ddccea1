package pipeline

import "fmt"

// Step names reported in progress events.
const (
	StepIngestJob       = "ingest_job"
	StepExtractKeywords = "extract_keywords"
	StepLoadResume      = "load_resume"
	StepScoreResume     = "score_resume"
	StepOptimizeResume  = "optimize_resume"
	StepCompare         = "compare"
	StepSuggestions     = "suggestions"
	StepDisplay         = "display"
)

// Step categories.
const (
	CategoryIngestion    = "ingestion"
	CategoryResume       = "resume"
	CategoryScoring      = "scoring"
	CategoryOptimization = "optimization"
	CategoryOutput       = "output"
)

// StepDefinition defines metadata for a pipeline step
type StepDefinition struct {
	Name         string
	Category     string
	Dependencies []string
}

// StepRegistry holds every step in execution order. The job and resume
// branches have no dependency on each other and run concurrently.
var StepRegistry = []StepDefinition{
	{Name: StepIngestJob, Category: CategoryIngestion},
	{Name: StepExtractKeywords, Category: CategoryIngestion, Dependencies: []string{StepIngestJob}},
	{Name: StepLoadResume, Category: CategoryResume},
	{Name: StepScoreResume, Category: CategoryScoring, Dependencies: []string{StepExtractKeywords, StepLoadResume}},
	{Name: StepOptimizeResume, Category: CategoryOptimization, Dependencies: []string{StepScoreResume}},
	{Name: StepCompare, Category: CategoryScoring, Dependencies: []string{StepOptimizeResume}},
	{Name: StepSuggestions, Category: CategoryOptimization, Dependencies: []string{StepExtractKeywords, StepLoadResume}},
	{Name: StepDisplay, Category: CategoryOutput, Dependencies: []string{StepOptimizeResume}},
}

// GetStepDefinition returns the definition of a step.
func GetStepDefinition(name string) (StepDefinition, error) {
	for _, def := range StepRegistry {
		if def.Name == name {
			return def, nil
		}
	}
	return StepDefinition{}, fmt.Errorf("unknown step: %s", name)
}

// categoryOf returns the category of a registered step.
func categoryOf(name string) string {
	def, err := GetStepDefinition(name)
	if err != nil {
		return ""
	}
	return def.Category
}

// ValidateDependencies checks that every dependency of step is in completed.
func ValidateDependencies(step string, completed map[string]bool) error {
	def, err := GetStepDefinition(step)
	if err != nil {
		return err
	}
	var missing []string
	for _, dep := range def.Dependencies {
		if !completed[dep] {
			missing = append(missing, dep)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("step %s is missing dependencies: %v", step, missing)
	}
	return nil
}
