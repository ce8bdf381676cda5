package detection

import "fmt"

// MatchPolicy selects how a window is compared against the catalog.
type MatchPolicy int

const (
	// FirstMatch tests every template in catalog order and reports the
	// first exact match.
	FirstMatch MatchPolicy = iota

	// FirstTemplateOnly compares each window against the first template and
	// stops there, whatever the outcome. Only the first catalog entry can
	// ever be reported. Kept for comparing output with the legacy canvas.
	FirstTemplateOnly
)

// String returns the policy's configuration name.
func (p MatchPolicy) String() string {
	switch p {
	case FirstMatch:
		return "first-match"
	case FirstTemplateOnly:
		return "first-template-only"
	default:
		return fmt.Sprintf("MatchPolicy(%d)", int(p))
	}
}

// ParsePolicy converts a configuration name into a MatchPolicy.
// The empty string selects FirstMatch.
func ParsePolicy(name string) (MatchPolicy, error) {
	switch name {
	case "", "first-match":
		return FirstMatch, nil
	case "first-template-only":
		return FirstTemplateOnly, nil
	default:
		return FirstMatch, fmt.Errorf("unknown match policy: %s", name)
	}
}

// Classifier matches 3x3 windows against an ordered template list.
type Classifier struct {
	templates []Template
	policy    MatchPolicy
}

// NewClassifier creates a classifier over the given templates. The slice is
// copied; a nil or empty slice never matches.
func NewClassifier(templates []Template, policy MatchPolicy) *Classifier {
	t := make([]Template, len(templates))
	copy(t, templates)
	return &Classifier{templates: t, policy: policy}
}

// Policy returns the classifier's match policy.
func (c *Classifier) Policy() MatchPolicy {
	return c.policy
}

// Classify returns the name of the template that window matches exactly.
// ok is false when no template matches, which is the normal outcome for most
// windows.
func (c *Classifier) Classify(window Matrix) (name string, ok bool) {
	for _, t := range c.templates {
		if window == t.Matrix {
			return t.Name, true
		}
		if c.policy == FirstTemplateOnly {
			break
		}
	}
	return "", false
}

var defaultClassifier = NewClassifier(catalog, FirstMatch)

// Classify matches window against the catalog with the FirstMatch policy.
func Classify(window Matrix) (string, bool) {
	return defaultClassifier.Classify(window)
}

// IsEmpty reports whether every cell of window is background.
func IsEmpty(window Matrix) bool {
	return window == Matrix{}
}
