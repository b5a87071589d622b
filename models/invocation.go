package models

import "encoding/json"

// NamedParameter is one element of the sequence form of agent parameters
type NamedParameter struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ParameterSet is the normalized name-to-value mapping for an invocation.
// The agent protocol sends parameters either as an ordered list of
// {name, value} pairs or as a plain object; both decode into the same map.
type ParameterSet map[string]string

// UnmarshalJSON accepts the pair-sequence form (last value wins when a name
// repeats), the plain mapping form, or anything else as an empty set. An
// unexpected shape is never a decode error; absent values surface later as
// failed required-field validation.
func (p *ParameterSet) UnmarshalJSON(data []byte) error {
	var pairs []NamedParameter
	if err := json.Unmarshal(data, &pairs); err == nil {
		set := make(ParameterSet, len(pairs))
		for _, pair := range pairs {
			set[pair.Name] = pair.Value
		}
		*p = set
		return nil
	}

	var mapping map[string]string
	if err := json.Unmarshal(data, &mapping); err == nil {
		if mapping == nil {
			mapping = map[string]string{}
		}
		*p = mapping
		return nil
	}

	*p = ParameterSet{}
	return nil
}

// Get returns the value for name, or "" when absent
func (p ParameterSet) Get(name string) string {
	return p[name]
}

// InvocationRequest is the inbound agent action payload
type InvocationRequest struct {
	ActionGroup string       `json:"actionGroup"`
	Function    string       `json:"function"`
	Parameters  ParameterSet `json:"parameters,omitempty"`
}
