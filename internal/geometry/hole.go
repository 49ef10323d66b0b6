package geometry

import "math"

// ============================================================
// Hole Cutter
// ============================================================

// CutHole строит открытый цилиндр (только боковая стенка) для отверстия.
// Это не булево вычитание: поверхность просто накладывается на корпус.
//
// Вершины чередуются: 2*i на передней окружности (z=0), 2*i+1 на задней (z=-depth).
func CutHole(hole HoleSpec, offset Vertex, depth float64, segments int) Part {
	radius := hole.Diameter / 2
	cx := hole.X + offset.X
	cy := hole.Y + offset.Y

	part := Part{
		Vertices: make([]Vertex, 0, 2*segments),
		Faces:    make([]Face, 0, 2*segments),
	}
	for i := 0; i < segments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		x := cx + radius*math.Cos(angle)
		y := cy + radius*math.Sin(angle)
		part.Vertices = append(part.Vertices,
			Vertex{X: x, Y: y, Z: offset.Z},
			Vertex{X: x, Y: y, Z: offset.Z - depth},
		)
	}
	for i := 0; i < segments; i++ {
		next := (i + 1) % segments
		part.Faces = append(part.Faces,
			Face{2 * i, 2 * next, 2*next + 1},
			Face{2 * i, 2*next + 1, 2*i + 1},
		)
	}
	return part
}
