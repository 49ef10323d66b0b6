package geometry

// ============================================================
// Outlet Body Builder
// ============================================================

// Индексы 0..7: внешний короб, 8..15: внутренняя полость.
// Порядок углов: низ-лево, низ-право, верх-право, верх-лево; сначала передние, потом задние.

var outerFaces = [12]Face{
	{0, 1, 2}, {0, 2, 3}, // front
	{4, 7, 6}, {4, 6, 5}, // back
	{0, 3, 7}, {0, 7, 4}, // left
	{1, 5, 6}, {1, 6, 2}, // right
	{3, 2, 6}, {3, 6, 7}, // top
	{0, 4, 5}, {0, 5, 1}, // bottom
}

var innerFaces = [12]Face{
	{8, 11, 10}, {8, 10, 9},
	{12, 13, 14}, {12, 14, 15},
	{8, 9, 13}, {8, 13, 12},
	{9, 10, 14}, {9, 14, 13},
	{10, 11, 15}, {10, 15, 14},
	{11, 8, 12}, {11, 12, 15},
}

// BuildBody строит полый корпус одного юнита.
//
// Внутренняя полость не сшита с внешним коробом у передней грани (z=0),
// поэтому тело не является замкнутым многообразием.
func BuildBody(width, height, depth, wallThickness float64, offset Vertex) Part {
	w, h, d, wt := width/2, height/2, depth, wallThickness

	part := Part{
		Vertices: make([]Vertex, 0, 16),
		Faces:    make([]Face, 0, 24),
	}
	part.Vertices = append(part.Vertices, boxCorners(-w, w, -h, h, 0, -d, offset)...)
	part.Vertices = append(part.Vertices, boxCorners(-w+wt, w-wt, -h+wt, h-wt, -wt, -d+wt, offset)...)
	part.Faces = append(part.Faces, outerFaces[:]...)
	part.Faces = append(part.Faces, innerFaces[:]...)
	return part
}

// BuildBox строит сплошной короб (8 вершин, 12 граней).
// inward=true разворачивает обход, нормали смотрят внутрь.
func BuildBox(width, height, depth float64, offset Vertex, inward bool) Part {
	w, h := width/2, height/2
	part := Part{
		Vertices: boxCorners(-w, w, -h, h, 0, -depth, offset),
		Faces:    make([]Face, 0, 12),
	}
	for _, f := range outerFaces {
		if inward {
			f[1], f[2] = f[2], f[1]
		}
		part.Faces = append(part.Faces, f)
	}
	return part
}

func boxCorners(x0, x1, y0, y1, zFront, zBack float64, offset Vertex) []Vertex {
	corners := []Vertex{
		{X: x0, Y: y0, Z: zFront},
		{X: x1, Y: y0, Z: zFront},
		{X: x1, Y: y1, Z: zFront},
		{X: x0, Y: y1, Z: zFront},
		{X: x0, Y: y0, Z: zBack},
		{X: x1, Y: y0, Z: zBack},
		{X: x1, Y: y1, Z: zBack},
		{X: x0, Y: y1, Z: zBack},
	}
	for i := range corners {
		corners[i].X += offset.X
		corners[i].Y += offset.Y
		corners[i].Z += offset.Z
	}
	return corners
}
