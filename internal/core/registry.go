package core

// Registry is the ordered collection of bodies in a simulation. Insertion
// order is preserved and affects display only; the pairwise forces are
// symmetric, so physics never depends on it.
type Registry struct {
	bodies []*Body
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry { return &Registry{} }

// Add appends a body in insertion order.
func (r *Registry) Add(b *Body) { r.bodies = append(r.bodies, b) }

// Len reports the number of bodies.
func (r *Registry) Len() int { return len(r.bodies) }

// At returns the body at index i in insertion order.
func (r *Registry) At(i int) *Body { return r.bodies[i] }

// Bodies exposes the backing slice so callers can iterate directly.
func (r *Registry) Bodies() []*Body { return r.bodies }

// LogRadiusRange reduces the current contents to the minimum and maximum
// log-radius. The reduction runs on every call rather than being cached;
// body counts are small and this keeps Add free of invalidation duties.
// An empty registry reports (0, 0).
func (r *Registry) LogRadiusRange() (min, max float64) {
	if len(r.bodies) == 0 {
		return 0, 0
	}
	min = r.bodies[0].LogRadius()
	max = min
	for _, b := range r.bodies[1:] {
		lr := b.LogRadius()
		if lr < min {
			min = lr
		}
		if lr > max {
			max = lr
		}
	}
	return min, max
}
