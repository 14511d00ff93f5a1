/*
File   : spylang/scope/scope.go

Package scope implements SpyLang's lexical environment: a chain of
variable tables linked to a parent, the same shape as the teacher's
Scope (see go-mix/scope/scope.go's Variables map + Parent pointer),
narrowed to what SpyLang's grammar needs — one flat binding map per
scope, no const/let distinctions since `assign` is SpyLang's only
declaration form.
*/
package scope

import "spylang/values"

// Scope is one link in the lexical environment chain. The global
// (root) scope has a nil Parent.
type Scope struct {
	vars   map[string]values.Value
	Parent *Scope
}

// New creates a scope nested inside parent. Pass nil to create the
// root scope.
func New(parent *Scope) *Scope {
	return &Scope{vars: make(map[string]values.Value), Parent: parent}
}

// LookUp searches this scope and every enclosing scope for name,
// innermost first, implementing standard lexical shadowing.
func (s *Scope) LookUp(name string) (values.Value, bool) {
	v, ok := s.vars[name]
	if ok {
		return v, true
	}
	if s.Parent != nil {
		return s.Parent.LookUp(name)
	}
	return nil, false
}

// Declare binds name to v in this scope only (an `assign` statement),
// shadowing any binding of the same name in an enclosing scope.
func (s *Scope) Declare(name string, v values.Value) {
	s.vars[name] = v
}

// Assign mutates an existing binding of name, found by walking the
// scope chain outward from s, and reports whether one was found. A
// bare `name = expr` (Declare: false in VarAssignNode) uses this: it
// is an error to assign to a name that was never declared.
func (s *Scope) Assign(name string, v values.Value) bool {
	if _, ok := s.vars[name]; ok {
		s.vars[name] = v
		return true
	}
	if s.Parent != nil {
		return s.Parent.Assign(name, v)
	}
	return false
}
