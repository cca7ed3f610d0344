package domain

// Key identifies the arcs leaving State on the Input symbol.
type Key struct {
	State string `json:"state"`
	Input string `json:"input"`
}

// Arc is the target half of a transition: where to go and what to emit.
type Arc struct {
	Target string `json:"target"`
	Output string `json:"output"`
}

// Transition is the expanded form of one arc, in AT&T column order.
type Transition struct {
	From   string `json:"from" yaml:"from"`
	To     string `json:"to" yaml:"to"`
	Input  string `json:"input" yaml:"input"`
	Output string `json:"output" yaml:"output"`
}

// IsEpsilon reports whether the transition consumes no input.
func (t Transition) IsEpsilon() bool {
	return t.Input == Epsilon
}
