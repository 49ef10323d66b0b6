package geometry

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation: вырожденные входные данные (неположительные размеры и т.п.).
	ErrValidation = errors.New("geometry: validation failed")
	// ErrUpstreamLookup: источник метаданных недоступен. Отсутствие ключа сюда не относится.
	ErrUpstreamLookup = errors.New("geometry: profile lookup failed")
)

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Validate проверяет спецификацию перед построением.
// Толщина стенки >= min(width,height)/2 не отклоняется: см. DegenerateShell.
func (s GeometrySpec) Validate() error {
	d := s.Dimensions
	if d.Width <= 0 || d.Height <= 0 || d.Depth <= 0 {
		return validationError("non-positive dimensions %gx%gx%g", d.Width, d.Height, d.Depth)
	}
	if s.WallThickness < 0 {
		return validationError("negative wall thickness %g", s.WallThickness)
	}
	for i, h := range s.Holes {
		if h.Diameter <= 0 {
			return validationError("hole %d: non-positive diameter %g", i, h.Diameter)
		}
	}
	if c := s.Connector; c != nil && (c.Width <= 0 || c.Height <= 0 || c.Depth <= 0) {
		return validationError("non-positive connector %gx%gx%g", c.Width, c.Height, c.Depth)
	}
	return nil
}

func (o BuildOptions) Validate() error {
	if n := o.segments(); n < 3 || n > MaxSegments {
		return validationError("segments must be in [3,%d], got %d", MaxSegments, n)
	}
	return nil
}
