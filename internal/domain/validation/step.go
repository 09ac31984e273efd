package validation

// Step identifies one stage of the linear proposal wizard.
type Step string

const (
	StepClient  Step = "client"
	StepItems   Step = "items"
	StepTerms   Step = "terms"
	StepSummary Step = "summary"
)

var stepOrder = []Step{StepClient, StepItems, StepTerms, StepSummary}

// Steps returns the wizard steps in navigation order.
func Steps() []Step {
	out := make([]Step, len(stepOrder))
	copy(out, stepOrder)
	return out
}

// Index returns the position of the step in navigation order, or -1 for an
// unknown step.
func (s Step) Index() int {
	for i, step := range stepOrder {
		if step == s {
			return i
		}
	}
	return -1
}

// Valid reports whether s is a known wizard step.
func (s Step) Valid() bool {
	return s.Index() >= 0
}

// Next returns the step after s. The second return is false when s is the
// last step or unknown.
func (s Step) Next() (Step, bool) {
	i := s.Index()
	if i < 0 || i == len(stepOrder)-1 {
		return s, false
	}
	return stepOrder[i+1], true
}
