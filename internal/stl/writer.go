// Package stl пишет и читает бинарный STL.
//
// Формат: 80 байт заголовка, uint32 LE число треугольников, затем по 50 байт
// на треугольник: нормаль (3×float32), три вершины (9×float32), uint16 = 0.
package stl

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"outlet-forge/internal/geometry"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	HeaderSize = 80
	RecordSize = 50

	// normalEpsilon: ниже этой длины векторного произведения нормаль нулевая.
	normalEpsilon = 1e-12
)

// ErrWrite: файл назначения не удалось создать или записать.
var ErrWrite = errors.New("stl: write failed")

// ============================================================
// Encoding
// ============================================================

// Normal возвращает единичную нормаль треугольника по правилу правой руки.
// Для вырожденного треугольника: нулевой вектор.
func Normal(v0, v1, v2 r3.Vec) r3.Vec {
	n := r3.Cross(r3.Sub(v1, v0), r3.Sub(v2, v0))
	l := r3.Norm(n)
	if l < normalEpsilon {
		return r3.Vec{}
	}
	return r3.Scale(1/l, n)
}

// Encode пишет меш в w.
func Encode(w io.Writer, header string, mesh *geometry.Mesh) error {
	bw := bufio.NewWriter(w)

	var head [HeaderSize + 4]byte
	copy(head[:HeaderSize], header)
	binary.LittleEndian.PutUint32(head[HeaderSize:], uint32(mesh.TriangleCount()))
	if _, err := bw.Write(head[:]); err != nil {
		return err
	}

	var rec [RecordSize]byte
	for i := 0; i < mesh.TriangleCount(); i++ {
		v0, v1, v2 := mesh.Triangle(i)
		putVec(rec[0:], Normal(v0, v1, v2))
		putVec(rec[12:], v0)
		putVec(rec[24:], v1)
		putVec(rec[36:], v2)
		binary.LittleEndian.PutUint16(rec[48:], 0)
		if _, err := bw.Write(rec[:]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func putVec(b []byte, v r3.Vec) {
	binary.LittleEndian.PutUint32(b[0:], math.Float32bits(float32(v.X)))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(float32(v.Y)))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(float32(v.Z)))
}

// WriteFile создает файл и пишет в него меш.
// При ошибке частично записанный файл остается; удалять его: задача вызывающего.
func WriteFile(path, header string, mesh *geometry.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", ErrWrite, path, err)
	}
	if err := Encode(f, header, mesh); err != nil {
		f.Close()
		return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", ErrWrite, path, err)
	}
	return nil
}

// Size: ожидаемый размер файла для n треугольников.
func Size(n int) int64 {
	return int64(HeaderSize + 4 + RecordSize*n)
}
