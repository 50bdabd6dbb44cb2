package runner

// Rule maps one upstream status and message to a local error.
// An empty Message matches any message returned with Status.
type Rule struct {
	Status  int
	Message string
	Err     func(message string) error
}

// Classifier is an ordered rule table for one operation
type Classifier []Rule

// Classify returns the error of the first matching rule, or nil when no rule matches
func (c Classifier) Classify(status int, message string) error {
	for _, rule := range c {
		if rule.Status != status {
			continue
		}
		if rule.Message == "" || rule.Message == message {
			return rule.Err(message)
		}
	}
	return nil
}

// With returns a new classifier holding the rules of c followed by rules
func (c Classifier) With(rules ...Rule) Classifier {
	combined := make(Classifier, 0, len(c)+len(rules))
	combined = append(combined, c...)
	return append(combined, rules...)
}
