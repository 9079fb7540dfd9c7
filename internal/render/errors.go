package render

import (
	"errors"
	"fmt"
)

// Sentinels matched by the typed errors below through errors.Is.
var (
	// ErrConfiguration is matched by errors caused by missing or empty input.
	ErrConfiguration = errors.New("entsql: configuration error")

	// ErrUnsupportedOperator is matched by errors for expressions with no SQL mapping.
	ErrUnsupportedOperator = errors.New("entsql: unsupported operator")

	// ErrAliasMismatch is matched when a bound parameter name is not a declared alias.
	ErrAliasMismatch = errors.New("entsql: alias mismatch")
)

// ConfigurationError indicates a required input is missing or empty.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e ConfigurationError) Error() string {
	return fmt.Sprintf("entsql: %s: %s", e.Field, e.Reason)
}

// Is reports whether target is ErrConfiguration.
func (ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// NewConfigurationError creates a new configuration error.
func NewConfigurationError(field, reason string) error {
	return ConfigurationError{Field: field, Reason: reason}
}

// UnsupportedOperatorError indicates an operator or node kind the translator cannot render.
type UnsupportedOperatorError struct {
	Operator string
	Node     string
	Hint     string
}

func (e UnsupportedOperatorError) Error() string {
	var msg string
	if e.Operator != "" {
		msg = fmt.Sprintf("entsql: operator %q in %s expression is not supported", e.Operator, e.Node)
	} else {
		msg = fmt.Sprintf("entsql: %s expression is not supported", e.Node)
	}
	if e.Hint != "" {
		return msg + ": " + e.Hint
	}
	return msg
}

// Is reports whether target is ErrUnsupportedOperator.
func (UnsupportedOperatorError) Is(target error) bool {
	return target == ErrUnsupportedOperator
}

// NewUnsupportedOperatorError creates a new unsupported operator error.
func NewUnsupportedOperatorError(node, operator string, hint ...string) error {
	err := UnsupportedOperatorError{Operator: operator, Node: node}
	if len(hint) > 0 {
		err.Hint = hint[0]
	}
	return err
}

// AliasMismatchError indicates a member was reached through a parameter name
// that is not declared as an alias anywhere in the query.
type AliasMismatchError struct {
	Param string
	Shape string
}

func (e AliasMismatchError) Error() string {
	return fmt.Sprintf("entsql: parameter %q used for %s is not a declared alias", e.Param, e.Shape)
}

// Is reports whether target is ErrAliasMismatch or ErrConfiguration.
func (AliasMismatchError) Is(target error) bool {
	return target == ErrAliasMismatch || target == ErrConfiguration
}
