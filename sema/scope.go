package sema

import "cleric/arena"

// Symbol binds a source name to the temporary ID and decorated name the
// validator assigned it.
type Symbol struct {
	Name      string
	TempID    int
	Decorated string
}

// Scope is one lexical level's declarations, in declaration order.
type Scope = arena.List[Symbol]

// scopeStack resolves identifiers by walking from the innermost scope
// outward, and enforces that a name may be declared at most once per
// scope (shadowing an outer scope is fine; redeclaring within the same
// one is not). Both the stack of scopes and each scope's own symbol list
// are arena.List, matching every other growable sequence in this pipeline.
type scopeStack struct {
	scopes *arena.List[*Scope]
}

func (s *scopeStack) push() {
	if s.scopes == nil {
		s.scopes = arena.NewList[*Scope](4)
	}
	s.scopes.Append(arena.NewList[Symbol](4))
}

func (s *scopeStack) pop() {
	s.scopes.Truncate(s.scopes.Len() - 1)
}

// declareInCurrent inserts sym into the innermost scope, failing if a
// symbol with the same name already lives there.
func (s *scopeStack) declareInCurrent(sym Symbol) bool {
	current := s.scopes.At(s.scopes.Len() - 1)
	for i := 0; i < current.Len(); i++ {
		if current.At(i).Name == sym.Name {
			return false
		}
	}
	current.Append(sym)
	return true
}

func (s *scopeStack) resolve(name string) (Symbol, bool) {
	for i := s.scopes.Len() - 1; i >= 0; i-- {
		scope := s.scopes.At(i)
		for j := scope.Len() - 1; j >= 0; j-- {
			if sym := scope.At(j); sym.Name == name {
				return sym, true
			}
		}
	}
	return Symbol{}, false
}
