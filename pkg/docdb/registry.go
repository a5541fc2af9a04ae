package docdb

import "sync"

// Registry is the process-wide, mutex-protected set of named databases,
// per spec §4.D. Grounded on the teacher's cozy Instance registry pattern
// (model/instance/service.go) generalized from a disk-backed instance
// list to an in-memory map of Database handles.
type Registry struct {
	mu    sync.Mutex
	dbs   map[string]*Database
	idGen *IdGen
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		dbs:   make(map[string]*Database),
		idGen: NewIdGen(),
	}
}

// Create registers a new, empty-but-seeded database under name.
func (r *Registry) Create(name string) error {
	if err := ValidateDBName(name); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.dbs[name]; exists {
		return newErr(TagDBExists, name)
	}
	r.dbs[name] = newDatabase(name, r.idGen)
	return nil
}

// Drop removes a database and discards all of its documents.
func (r *Registry) Drop(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.dbs[name]; !exists {
		return newErr(TagDBNotFound, name)
	}
	delete(r.dbs, name)
	return nil
}

// Get resolves a database handle by name.
func (r *Registry) Get(name string) (*Database, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	db, exists := r.dbs[name]
	if !exists {
		return nil, newErr(TagDBNotFound, name)
	}
	return db, nil
}

// List returns every registered database name. Order is unspecified.
func (r *Registry) List() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.dbs))
	for name := range r.dbs {
		names = append(names, name)
	}
	return names
}
