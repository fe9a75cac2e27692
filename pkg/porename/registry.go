package porename

// NameRegistry is the state of one finalize pass: the next occurrence index of
// each candidate base name, and the inputs still waiting to be finalized.
// It is not safe for concurrent use.
type NameRegistry struct {
	next map[string]int

	// Pending inputs, both ways: original path to current path and back
	current  map[string]string
	original map[string]string
}

// NewNameRegistry returns an empty registry
func NewNameRegistry() *NameRegistry {
	return &NameRegistry{}
}

// NextIndex returns the first index of base not yet handed out, 0 on first use
func (r *NameRegistry) NextIndex(base string) int {
	return r.next[base]
}

// commit records that base was given index n. Indexes below n that were
// skipped stay skipped.
func (r *NameRegistry) commit(base string, n int) {
	if r.next == nil {
		r.next = make(map[string]int)
	}
	if n+1 > r.next[base] {
		r.next[base] = n + 1
	}
}

// track registers the inputs of the pass, before any of them is renamed
func (r *NameRegistry) track(paths ...string) {
	if r.current == nil {
		r.current = make(map[string]string, len(paths))
		r.original = make(map[string]string, len(paths))
	}
	for _, path := range paths {
		r.current[path] = path
		r.original[path] = path
	}
}

// currentPath returns where the input listed as path is now
func (r *NameRegistry) currentPath(path string) string {
	if cur, ok := r.current[path]; ok {
		return cur
	}
	return path
}

// pending reports whether the file at path is an input not yet finalized
func (r *NameRegistry) pending(path string) bool {
	_, ok := r.original[path]
	return ok
}

// moved records that a pending input was renamed from one path to another
func (r *NameRegistry) moved(from, to string) {
	orig, ok := r.original[from]
	if !ok {
		return
	}
	delete(r.original, from)
	r.original[to] = orig
	r.current[orig] = to
}

// done removes the input now at path from the pending set
func (r *NameRegistry) done(path string) {
	orig, ok := r.original[path]
	if !ok {
		return
	}
	delete(r.original, path)
	delete(r.current, orig)
}
