package ir

import (
	"github.com/operator-framework/label-synthesizer/pkg/geometry"
	"github.com/operator-framework/label-synthesizer/pkg/synthesis/ast"
)

// Binding is the object a variable stands for.
type Binding struct {
	Box   geometry.Box
	Label string
}

// Env maps variables to bindings. The zero value is empty. Bind never
// modifies its receiver, so environments can be extended along
// different branches of a quantifier without copying.
type Env struct {
	head *entry
}

type entry struct {
	v    ast.ObjectVariable
	b    Binding
	next *entry
}

// Bind returns an environment with v bound to b, shadowing any earlier
// binding of v.
func (e Env) Bind(v ast.ObjectVariable, b Binding) Env {
	return Env{head: &entry{v: v, b: b, next: e.head}}
}

// Lookup returns the innermost binding of v.
func (e Env) Lookup(v ast.ObjectVariable) (Binding, bool) {
	for n := e.head; n != nil; n = n.next {
		if n.v == v {
			return n.b, true
		}
	}
	return Binding{}, false
}
