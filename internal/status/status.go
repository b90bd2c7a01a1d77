// Package status maps a resource kind and its free-text status onto a small
// fixed label vocabulary.
//
// Pods and every other kind use separate ordered rule tables; the first rule
// whose substring matches the lower-cased status wins and anything unmatched
// becomes LabelWarning. The two tables deliberately differ in order and
// vocabulary, e.g. "crash" is only an error outside pods.
package status

import "strings"

// Label is the classified status of a resource.
type Label string

const (
	LabelRunning Label = "running"
	LabelPending Label = "pending"
	LabelError   Label = "error"
	LabelWarning Label = "warning"
)

// Valid reports whether l is one of the four known labels.
func (l Label) Valid() bool {
	switch l {
	case LabelRunning, LabelPending, LabelError, LabelWarning:
		return true
	default:
		return false
	}
}

// podKind is matched case-insensitively against ResourceShape.Kind.
const podKind = "pod"

// ResourceShape is an observed resource's kind and raw status text.
type ResourceShape struct {
	Kind   string `yaml:"kind" json:"kind"`
	Status string `yaml:"status" json:"status"`
}

// Rule assigns Label when the status contains any of the Contains needles.
type Rule struct {
	Contains []string `yaml:"contains"`
	Label    Label    `yaml:"label"`
}

func (r Rule) matches(status string) bool {
	for _, needle := range r.Contains {
		if needle != "" && strings.Contains(status, needle) {
			return true
		}
	}
	return false
}

// Table is an ordered rule list evaluated first-match-wins.
type Table []Rule

func (t Table) classify(status string) Label {
	for _, rule := range t {
		if rule.matches(status) {
			return rule.Label
		}
	}
	return LabelWarning
}

// PodRules returns the default pod table.
func PodRules() Table {
	return Table{
		{Contains: []string{"running"}, Label: LabelRunning},
		{Contains: []string{"pending"}, Label: LabelPending},
		{Contains: []string{"failed", "error"}, Label: LabelError},
	}
}

// OtherRules returns the default table for every non-pod kind.
func OtherRules() Table {
	return Table{
		{Contains: []string{"error", "crash"}, Label: LabelError},
		{Contains: []string{"pending"}, Label: LabelPending},
		{Contains: []string{"running", "ready"}, Label: LabelRunning},
	}
}

// Classifier holds the pod and non-pod tables. It is immutable once built
// and safe for concurrent use.
type Classifier struct {
	pod   Table
	other Table
}

// NewClassifier builds a Classifier; a nil table falls back to the default.
func NewClassifier(pod, other Table) *Classifier {
	if pod == nil {
		pod = PodRules()
	}
	if other == nil {
		other = OtherRules()
	}
	return &Classifier{pod: pod, other: other}
}

// DefaultClassifier returns a Classifier using the built-in tables.
func DefaultClassifier() *Classifier {
	return NewClassifier(nil, nil)
}

// Classify labels the status of a resource of the given kind. It never fails.
func (c *Classifier) Classify(kind, status string) Label {
	normalized := strings.ToLower(status)
	if strings.EqualFold(kind, podKind) {
		return c.pod.classify(normalized)
	}
	return c.other.classify(normalized)
}

// Shape labels a ResourceShape.
func (c *Classifier) Shape(shape ResourceShape) Label {
	return c.Classify(shape.Kind, shape.Status)
}

var defaultClassifier = DefaultClassifier()

// Classify labels status using the built-in tables.
func Classify(kind, status string) Label {
	return defaultClassifier.Classify(kind, status)
}
