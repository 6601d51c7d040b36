package domain

// StateID is an opaque identifier of a state.
type StateID string

// Trigger is an opaque identifier of an external input event.
type Trigger string

// Rule is a (trigger, target-state) pair scoped to one source state.
type Rule struct {
	Trigger Trigger `json:"trigger" yaml:"trigger" mapstructure:"trigger"`
	To      StateID `json:"to" yaml:"to" mapstructure:"to"`
}
