package calc

import "sync"

// Scope is an immutable chain of name bindings. Binding a name creates a child
// scope, so scopes captured by closures never observe later bindings. The nil
// *Scope is the empty scope.
type Scope struct {
	parent *Scope
	name   string
	b      *binding
}

// binding is a lazily evaluated value: an expression and the scope to
// evaluate it in. The result is memoized on first successful use. Contexts
// cloned from one another share bindings, so the memo is guarded.
type binding struct {
	n     *node
	scope *Scope

	mu  sync.Mutex
	val Value
}

// nested creates a child scope binding name to the unevaluated expression n
// in scope in.
func (s *Scope) nested(name string, n *node, in *Scope) *Scope {
	return &Scope{parent: s, name: name, b: &binding{n: n, scope: in}}
}

// recursive creates a child scope binding name to n evaluated in the child
// itself, so that n can refer to name.
func (s *Scope) recursive(name string, n *node) *Scope {
	c := s.nested(name, n, nil)
	c.b.scope = c
	return c
}

// bind creates a child scope binding name to an evaluated value.
func (s *Scope) bind(name string, v Value) *Scope {
	return &Scope{parent: s, name: name, b: &binding{val: v}}
}

// lookup finds the innermost binding of name.
func (s *Scope) lookup(name string) *binding {
	for ; s != nil; s = s.parent {
		if s.name == name {
			return s.b
		}
	}
	return nil
}

// get evaluates the binding if it has not been already. Concurrent first uses
// may each evaluate the expression, and the first result stored is kept.
func (b *binding) get(ev *evaluator) (Value, error) {
	b.mu.Lock()
	v := b.val
	b.mu.Unlock()
	if v != nil {
		return v, nil
	}
	v, err := b.n.eval(ev, b.scope)
	if err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.val == nil {
		b.val = v
	}
	return b.val, nil
}
