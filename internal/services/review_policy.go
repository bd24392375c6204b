package services

// Decision is the outcome of the confidence gate
type Decision string

const (
	DecisionAutoAccept    Decision = "auto_accept"
	DecisionRequireReview Decision = "require_review"
)

// RequiresReview reports whether the user must confirm before saving
func (d Decision) RequiresReview() bool {
	return d == DecisionRequireReview
}

// reviewPolicy implements ReviewPolicyInterface
type reviewPolicy struct {
	threshold float64
}

// NewReviewPolicy creates a review policy with the given confidence
// threshold.
func NewReviewPolicy(threshold float64) ReviewPolicyInterface {
	return &reviewPolicy{threshold: threshold}
}

// Evaluate gates a draft on its confidence score. A score below the
// threshold asks for review; a score at or above it, or no score at all,
// passes straight through. The decision only controls the review
// affordance, it never blocks a save.
func (p *reviewPolicy) Evaluate(confidence *float64) Decision {
	if confidence != nil && *confidence < p.threshold {
		return DecisionRequireReview
	}
	return DecisionAutoAccept
}
