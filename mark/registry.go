package mark

import "fmt"

// Registry holds named marks declared by a definition file.
type Registry struct {
	marks map[string]Mark
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{marks: make(map[string]Mark)}
}

func (r *Registry) put(m Mark) {
	r.marks[m.Name] = m
}

// Get returns the mark registered under name.
func (r *Registry) Get(name string) (Mark, bool) {
	m, ok := r.marks[name]
	return m, ok
}

// Has returns true if a mark is registered under name.
func (r *Registry) Has(name string) bool {
	_, ok := r.marks[name]
	return ok
}

// Len returns the number of registered marks.
func (r *Registry) Len() int {
	return len(r.marks)
}

// Resolve maps mark names to their registered marks, in the given order.
// An unregistered name is an error.
func (r *Registry) Resolve(names ...string) ([]Mark, error) {
	if len(names) == 0 {
		return nil, nil
	}

	marks := make([]Mark, 0, len(names))

	for _, name := range names {
		m, ok := r.marks[name]
		if !ok {
			return nil, fmt.Errorf("mark %q is not registered", name)
		}

		marks = append(marks, m)
	}

	return marks, nil
}
