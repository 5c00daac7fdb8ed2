package serial

import (
	"errors"
	"fmt"
	"sync"

	"github.com/npillmayer/markup/dom"
)

// ErrSealed is flagged for registrations after a registry has been sealed.
var ErrSealed = errors.New("registry is sealed")

// Constructor creates a specialized element. tag is the tag found in the
// serialized form, or "" if there is none.
type Constructor func(tag string) *dom.Element

// Registry maps kind discriminators onto constructors. It is used to
// reconstruct specialized elements from their serialized form.
//
// Registries are populated during initialization and sealed afterwards;
// a sealed registry is read-only.
type Registry struct {
	mx     sync.RWMutex
	ctors  map[string]Constructor
	sealed bool
}

// NewRegistry creates a registry holding the built-in kinds
// dom.KindFragment and dom.KindDocument.
func NewRegistry() *Registry {
	r := &Registry{ctors: make(map[string]Constructor)}
	r.ctors[dom.KindFragment] = func(string) *dom.Element { return dom.NewFragment() }
	r.ctors[dom.KindDocument] = func(string) *dom.Element { return dom.NewDocument() }
	return r
}

// Register adds a constructor for kind, replacing an existing one.
func (r *Registry) Register(kind string, c Constructor) error {
	if kind == "" || c == nil {
		return fmt.Errorf("%w: registration needs a kind and a constructor", dom.ErrValidation)
	}
	r.mx.Lock()
	defer r.mx.Unlock()
	if r.sealed {
		return fmt.Errorf("%w: cannot register %q", ErrSealed, kind)
	}
	tracer().Debugf("registering kind %q", kind)
	r.ctors[kind] = c
	return nil
}

// Lookup returns the constructor for kind.
func (r *Registry) Lookup(kind string) (Constructor, bool) {
	r.mx.RLock()
	defer r.mx.RUnlock()
	c, ok := r.ctors[kind]
	return c, ok
}

// Seal makes the registry read-only.
func (r *Registry) Seal() {
	r.mx.Lock()
	defer r.mx.Unlock()
	r.sealed = true
}

var defaultRegistry = sync.OnceValue(NewRegistry)

// DefaultRegistry returns the process-wide registry, used if no registry is
// configured with WithRegistry. Clients register their kinds in init
// functions and may seal it afterwards.
func DefaultRegistry() *Registry {
	return defaultRegistry()
}
