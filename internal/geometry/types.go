package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// ============================================================
// Spec
// ============================================================

type Dimension struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
}

// HoleSpec: монтажное или штепсельное отверстие относительно центра юнита.
type HoleSpec struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Diameter float64 `json:"diameter"`
}

// Connector: блок разъема (USB-A / USB-C).
type Connector struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
}

// GeometrySpec: полностью разрешенная спецификация одного юнита.
// После Resolve не изменяется.
type GeometrySpec struct {
	OutletType     string
	Dimensions     Dimension
	Holes          []HoleSpec
	WallThickness  float64
	MountingScrews string
	Connector      *Connector
}

// DegenerateShell сообщает, что стенка толще половины меньшей стороны
// и внутренняя полость выворачивается.
func (s GeometrySpec) DegenerateShell() bool {
	return s.WallThickness >= math.Min(s.Dimensions.Width, s.Dimensions.Height)/2
}

// ============================================================
// Mesh primitives
// ============================================================

// Vertex: X ширина, Y высота, Z глубина (корпус уходит в -Z).
type Vertex = r3.Vec

// Face: тройка индексов вершин, обход против часовой стрелки снаружи.
type Face [3]int

// Part: локальный буфер одного под-билдера с индексами от нуля.
type Part struct {
	Vertices []Vertex
	Faces    []Face
}

type Mesh struct {
	Vertices []Vertex
	Faces    []Face
}

func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// Triangle возвращает три вершины грани i в порядке обхода.
func (m *Mesh) Triangle(i int) (Vertex, Vertex, Vertex) {
	f := m.Faces[i]
	return m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]
}

// Bounds возвращает axis-aligned bounding box меша.
func (m *Mesh) Bounds() (min, max Vertex) {
	if len(m.Vertices) == 0 {
		return Vertex{}, Vertex{}
	}
	min = Vertex{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	max = Vertex{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	for _, v := range m.Vertices {
		min.X, max.X = math.Min(min.X, v.X), math.Max(max.X, v.X)
		min.Y, max.Y = math.Min(min.Y, v.Y), math.Max(max.Y, v.Y)
		min.Z, max.Z = math.Min(min.Z, v.Z), math.Max(max.Z, v.Z)
	}
	return min, max
}

// BuildOptions: параметры тесселяции.
// ConnectorCavity добавляет гнездо разъема в USB-рамку.
type BuildOptions struct {
	Segments        int
	ConnectorCavity bool
}

const (
	DefaultSegments = 12
	MaxSegments     = 256
)

func (o BuildOptions) segments() int {
	if o.Segments == 0 {
		return DefaultSegments
	}
	return o.Segments
}
