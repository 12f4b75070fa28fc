package ir

import (
	"errors"
	"fmt"
)

// ViolationKind classifies an InvariantError.
type ViolationKind int

const (
	// UnboundVariable is a variable reference missing from the
	// environment during Apply.
	UnboundVariable ViolationKind = iota
	// Unreified is an attempt to lower a node that still refers to
	// variables or quantifiers.
	Unreified
	// Uncompilable is an attempt to compile a node that only exists
	// after Apply.
	Uncompilable
)

func (k ViolationKind) String() string {
	switch k {
	case UnboundVariable:
		return "unbound variable"
	case Unreified:
		return "unreified node"
	case Uncompilable:
		return "uncompilable node"
	}
	return fmt.Sprintf("ViolationKind(%d)", int(k))
}

// InvariantError reports misuse of the instrumented grammar. It always
// indicates a bug in the construction of the search, never bad input.
type InvariantError struct {
	Kind   ViolationKind
	Node   Node
	Detail string
}

func (e *InvariantError) Error() string {
	msg := fmt.Sprintf("invariant violation: %s", e.Kind)
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	if e.Node != nil {
		msg = fmt.Sprintf("%s (at %s)", msg, e.Node)
	}
	return msg
}

// IsInvariantViolation reports whether err is or wraps an
// *InvariantError.
func IsInvariantViolation(err error) bool {
	var ie *InvariantError
	return errors.As(err, &ie)
}
