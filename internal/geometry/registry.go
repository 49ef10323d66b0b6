package geometry

import (
	"sort"
	"sync"
)

// ============================================================
// Registry
// ============================================================

// Registry сопоставляет тип розетки генератору.
// Незарегистрированные типы обслуживает fallback.
type Registry struct {
	mu         sync.RWMutex
	generators map[string]Generator
	fallback   Generator
}

func NewRegistry(fallback Generator) *Registry {
	return &Registry{
		generators: make(map[string]Generator),
		fallback:   fallback,
	}
}

// DefaultRegistry: все типы из каталога по умолчанию.
func DefaultRegistry() *Registry {
	r := NewRegistry(PlateGenerator{})
	for _, t := range []string{"NEMA_5-15R", "BS_1363", "CEE_7/4", "AS_3112", "JIS_C_8303", "GFCI", "USB_C"} {
		r.Register(t, PlateGenerator{})
	}
	r.Register("USB_A", ConnectorGenerator{})
	return r
}

func (r *Registry) Register(outletType string, g Generator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.generators[outletType] = g
}

func (r *Registry) Lookup(outletType string) Generator {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if g, ok := r.generators[outletType]; ok {
		return g
	}
	return r.fallback
}

// Types возвращает зарегистрированные типы в отсортированном порядке.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]string, 0, len(r.generators))
	for t := range r.generators {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Build выбирает генератор по spec.OutletType.
func (r *Registry) Build(spec GeometrySpec, arrangement ArrangementConfig, opts BuildOptions) (*Mesh, error) {
	return r.Lookup(spec.OutletType).Build(spec, arrangement, opts)
}
