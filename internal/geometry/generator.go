package geometry

import (
	"math"

	"golang.org/x/sync/errgroup"
)

// ============================================================
// Generators
// ============================================================

// Generator строит меш для разрешенной спецификации и раскладки.
type Generator interface {
	Build(spec GeometrySpec, arrangement ArrangementConfig, opts BuildOptions) (*Mesh, error)
}

// PlateGenerator строит обобщенную рамку: полый корпус и цилиндры отверстий,
// юниты раскладываются вдоль X.
type PlateGenerator struct{}

func (PlateGenerator) Build(spec GeometrySpec, arrangement ArrangementConfig, opts BuildOptions) (*Mesh, error) {
	if err := validate(spec, opts); err != nil {
		return nil, err
	}
	d := spec.Dimensions
	segments := opts.segments()

	return buildUnits(arrangement.Offsets(), func(offset float64) []Part {
		origin := Vertex{X: offset}
		parts := make([]Part, 0, 1+len(spec.Holes))
		parts = append(parts, BuildBody(d.Width, d.Height, d.Depth, spec.WallThickness, origin))
		for _, hole := range spec.Holes {
			parts = append(parts, CutHole(hole, origin, d.Depth, segments))
		}
		return parts
	})
}

// ConnectorGenerator строит рамку USB: сплошной короб без полости,
// юниты раскладываются вдоль Y. Гнездо разъема (короб с нормалями внутрь)
// добавляется только при BuildOptions.ConnectorCavity.
type ConnectorGenerator struct{}

func (ConnectorGenerator) Build(spec GeometrySpec, arrangement ArrangementConfig, opts BuildOptions) (*Mesh, error) {
	if err := validate(spec, opts); err != nil {
		return nil, err
	}
	d := spec.Dimensions

	return buildUnits(arrangement.Offsets(), func(offset float64) []Part {
		origin := Vertex{Y: offset}
		parts := []Part{BuildBox(d.Width, d.Height, d.Depth, origin, false)}
		if c := spec.Connector; c != nil && opts.ConnectorCavity {
			parts = append(parts, BuildBox(c.Width, c.Height, math.Min(c.Depth, d.Depth), origin, true))
		}
		return parts
	})
}

func validate(spec GeometrySpec, opts BuildOptions) error {
	if err := spec.Validate(); err != nil {
		return err
	}
	return opts.Validate()
}

// buildUnits строит юниты параллельно и склеивает их строго по порядку.
func buildUnits(offsets []float64, unit func(offset float64) []Part) (*Mesh, error) {
	units := make([][]Part, len(offsets))

	var g errgroup.Group
	for i, offset := range offsets {
		g.Go(func() error {
			units[i] = unit(offset)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	asm := NewAssembler()
	for _, parts := range units {
		for _, p := range parts {
			if _, err := asm.Append(p); err != nil {
				return nil, err
			}
		}
	}

	mesh := asm.Mesh()
	if err := mesh.CheckIndices(); err != nil {
		return nil, err
	}
	return mesh, nil
}
