package scoring

// DefaultMinDice is the smallest roll the evaluator scores by default
const DefaultMinDice = 5

// Evaluator runs the full rule set against a roll
type Evaluator struct {
	minDice int
}

// NewEvaluator creates an evaluator that ignores rolls shorter than minDice.
// A negative minDice behaves like zero.
func NewEvaluator(minDice int) *Evaluator {
	return &Evaluator{minDice: max(minDice, 0)}
}

// MinDice returns the configured minimum roll length
func (e *Evaluator) MinDice() int {
	return e.minDice
}

// Evaluate returns every qualifying score for roll, at most one per category.
// Rolls shorter than the minimum are not scoreable and yield nothing.
func (e *Evaluator) Evaluate(roll Roll) []Score {
	if len(roll) < e.minDice {
		return []Score{}
	}

	scores := make([]Score, 0, len(ruleSet))
	for _, cr := range ruleSet {
		if score, ok := cr.Rule(roll); ok {
			scores = append(scores, score)
		}
	}
	return scores
}
