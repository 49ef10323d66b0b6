package stl_test

import (
	"bytes"
	"context"
	"encoding/binary"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"outlet-forge/internal/geometry"
	"outlet-forge/internal/stl"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func buildMesh(t *testing.T, arrangement string) *geometry.Mesh {
	t.Helper()
	res, err := geometry.NewResolver(geometry.StaticProfiles{}).Resolve(context.Background(), geometry.DefaultOutletType, geometry.Overrides{})
	require.NoError(t, err)
	mesh, err := geometry.DefaultRegistry().Build(res.Spec, geometry.Plan(arrangement), geometry.BuildOptions{})
	require.NoError(t, err)
	return mesh
}

func TestNormal(t *testing.T) {
	n := stl.Normal(r3.Vec{}, r3.Vec{X: 2}, r3.Vec{Y: 3})
	require.InDelta(t, 0, n.X, 1e-12)
	require.InDelta(t, 0, n.Y, 1e-12)
	require.InDelta(t, 1, n.Z, 1e-12)

	// вырожденный треугольник
	n = stl.Normal(r3.Vec{}, r3.Vec{X: 1}, r3.Vec{X: 2})
	require.Equal(t, r3.Vec{}, n)
	n = stl.Normal(r3.Vec{X: 1}, r3.Vec{X: 1}, r3.Vec{X: 1})
	require.Equal(t, r3.Vec{}, n)
}

func TestEncode_Layout(t *testing.T) {
	mesh := &geometry.Mesh{
		Vertices: []geometry.Vertex{{}, {X: 1}, {Y: 1}, {X: 5}},
		Faces:    []geometry.Face{{0, 1, 2}, {0, 1, 3}},
	}

	var buf bytes.Buffer
	require.NoError(t, stl.Encode(&buf, "test header", mesh))
	data := buf.Bytes()

	require.Len(t, data, int(stl.Size(2)))
	require.Equal(t, "test header", string(bytes.TrimRight(data[:80], "\x00")))
	require.Equal(t, uint32(2), binary.LittleEndian.Uint32(data[80:84]))

	f32 := func(off int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(data[off:]))
	}

	rec := data[84:]
	require.Equal(t, float32(0), f32(84))
	require.Equal(t, float32(0), f32(88))
	require.Equal(t, float32(1), f32(92))
	// вершина 1 первого треугольника
	require.Equal(t, float32(1), f32(84+24))
	require.Equal(t, uint16(0), binary.LittleEndian.Uint16(rec[48:50]))

	// второй треугольник вырожденный: нулевая нормаль
	second := 84 + stl.RecordSize
	require.Equal(t, [3]float32{0, 0, 0}, [3]float32{f32(second), f32(second + 4), f32(second + 8)})
	require.Equal(t, uint16(0), binary.LittleEndian.Uint16(data[second+48:]))
}

func TestEncode_LongHeaderTruncated(t *testing.T) {
	long := string(bytes.Repeat([]byte("x"), 200))
	var buf bytes.Buffer
	require.NoError(t, stl.Encode(&buf, long, &geometry.Mesh{}))
	require.Len(t, buf.Bytes(), 84)
}

func TestRoundTrip(t *testing.T) {
	mesh := buildMesh(t, "triple")

	var buf bytes.Buffer
	require.NoError(t, stl.Encode(&buf, "outlet-forge", mesh))

	model, err := stl.Read(&buf)
	require.NoError(t, err)
	require.Equal(t, "outlet-forge", model.Header)
	require.Len(t, model.Triangles, mesh.TriangleCount())

	for i, tri := range model.Triangles {
		v0, v1, v2 := mesh.Triangle(i)
		for j, v := range []geometry.Vertex{v0, v1, v2} {
			got := tri.Vertices[j]
			for k, want := range []float64{v.X, v.Y, v.Z} {
				require.InDelta(t, want, float64(got[k]), 1e-5*math.Max(1, math.Abs(want)), "triangle %d vertex %d", i, j)
			}
		}
	}
}

func TestRead_Truncated(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, stl.Encode(&buf, "", buildMesh(t, "single")))
	data := buf.Bytes()

	_, err := stl.Read(bytes.NewReader(data[:len(data)-10]))
	require.Error(t, err)
	_, err = stl.Read(bytes.NewReader(data[:40]))
	require.Error(t, err)
}

func TestRead_CountExceedsData(t *testing.T) {
	data := make([]byte, stl.HeaderSize+4)
	binary.LittleEndian.PutUint32(data[stl.HeaderSize:], 0x7FFFFFFF)

	_, err := stl.Read(bytes.NewReader(data))
	require.ErrorIs(t, err, io.EOF)

	// один полный треугольник при заявленных двух
	var buf bytes.Buffer
	require.NoError(t, stl.Encode(&buf, "", &geometry.Mesh{
		Vertices: []geometry.Vertex{{}, {X: 1}, {Y: 1}},
		Faces:    []geometry.Face{{0, 1, 2}},
	}))
	data = buf.Bytes()
	binary.LittleEndian.PutUint32(data[stl.HeaderSize:], 2)
	_, err = stl.Read(bytes.NewReader(data))
	require.ErrorIs(t, err, io.EOF)
}

func TestWriteFile_Deterministic(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.stl")
	b := filepath.Join(dir, "b.stl")

	require.NoError(t, stl.WriteFile(a, "outlet-forge NEMA_5-15R quad", buildMesh(t, "quad")))
	require.NoError(t, stl.WriteFile(b, "outlet-forge NEMA_5-15R quad", buildMesh(t, "quad")))

	da, err := os.ReadFile(a)
	require.NoError(t, err)
	db, err := os.ReadFile(b)
	require.NoError(t, err)
	require.Equal(t, da, db)

	model, err := stl.ReadFile(a)
	require.NoError(t, err)
	require.Len(t, model.Triangles, 4*72)
}

func TestWriteFile_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.stl")
	err := stl.WriteFile(path, "", buildMesh(t, "single"))
	require.ErrorIs(t, err, stl.ErrWrite)
}
