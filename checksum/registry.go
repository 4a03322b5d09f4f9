package checksum

import (
	"fmt"
	"slices"
	"sync"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/oy3o/wire"
)

// Service is the type-erased face of an algorithm: just its unique name.
type Service interface {
	Algorithm() string
}

// Algorithm computes an integrity value of type Out from an input of type In.
// Implementations are stateless and safe for concurrent use.
type Algorithm[In, Out any] interface {
	Service
	Calc(data In) Out
}

// Registry is a concurrent-safe set of algorithms keyed by name.
type Registry struct {
	services *xsync.Map[string, Service]
}

func NewRegistry() *Registry {
	return &Registry{services: xsync.NewMap[string, Service]()}
}

// Register adds s under s.Algorithm(). A name that is already taken is
// rejected with ErrDuplicate and the existing entry is kept.
func (r *Registry) Register(s Service) error {
	if s == nil {
		return ErrNilService
	}
	name := s.Algorithm()
	if _, loaded := r.services.LoadOrStore(name, s); loaded {
		wire.Logger().Warn().Str("algorithm", name).Msg("checksum: duplicate registration rejected")
		return fmt.Errorf("%w: %s", ErrDuplicate, name)
	}
	wire.Logger().Debug().Str("algorithm", name).Msg("checksum: algorithm registered")
	return nil
}

// Unregister removes the algorithm called name, if present.
func (r *Registry) Unregister(name string) {
	if _, loaded := r.services.LoadAndDelete(name); loaded {
		wire.Logger().Debug().Str("algorithm", name).Msg("checksum: algorithm unregistered")
	}
}

// Service returns the type-erased algorithm called name.
func (r *Registry) Service(name string) (Service, error) {
	s, ok := r.services.Load(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return s, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, r.services.Size())
	r.services.Range(func(name string, _ Service) bool {
		names = append(names, name)
		return true
	})
	slices.Sort(names)
	return names
}

// Get looks up name and checks that it computes Out from In.
func Get[In, Out any](r *Registry, name string) (Algorithm[In, Out], error) {
	s, err := r.Service(name)
	if err != nil {
		return nil, err
	}
	alg, ok := s.(Algorithm[In, Out])
	if !ok {
		var (
			in  In
			out Out
		)
		return nil, fmt.Errorf("%w: %s is %T, not %T -> %T", ErrTypeMismatch, name, s, in, out)
	}
	return alg, nil
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry. The first call registers
// Builtins in table order; later calls return the same registry.
func Default() *Registry {
	defaultOnce.Do(func() {
		r := NewRegistry()
		for _, s := range Builtins() {
			if err := r.Register(s); err != nil {
				panic(err)
			}
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// Lookup is Get on the default registry.
func Lookup[In, Out any](name string) (Algorithm[In, Out], error) {
	return Get[In, Out](Default(), name)
}
