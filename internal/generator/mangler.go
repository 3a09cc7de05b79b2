package generator

import "fmt"

// Mangler assigns each decorated entity a stable `name_N` target
// identifier the first time it is referenced, keyed by entity identity
// rather than source name, during a single forward pass over the tree.
type Mangler struct {
	names map[interface{}]string
	next  int
}

// NewMangler returns an empty Mangler.
func NewMangler() *Mangler {
	return &Mangler{names: make(map[interface{}]string)}
}

// Name returns entity's mangled target name, assigning one from
// sourceName on first reference. Two distinct entities sharing a source
// name always get distinct mangled names.
func (m *Mangler) Name(entity interface{}, sourceName string) string {
	if n, ok := m.names[entity]; ok {
		return n
	}
	m.next++
	n := fmt.Sprintf("%s_%d", sourceName, m.next)
	m.names[entity] = n
	return n
}

// Fresh returns a new `prefix_N` name with no entity backing it, for
// synthesized loop counters introduced during Repeat lowering.
func (m *Mangler) Fresh(prefix string) string {
	m.next++
	return fmt.Sprintf("%s_%d", prefix, m.next)
}
