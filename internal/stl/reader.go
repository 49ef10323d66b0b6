package stl

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
)

// ============================================================
// Decoding
// ============================================================

// Triangle: запись STL как есть, в float32.
type Triangle struct {
	Normal   [3]float32
	Vertices [3][3]float32
}

// maxPrealloc: верхняя граница предвыделения по счетчику из заголовка.
const maxPrealloc = 1 << 16

type Model struct {
	Header    string
	Triangles []Triangle
}

// Read разбирает бинарный STL.
func Read(r io.Reader) (*Model, error) {
	var head [HeaderSize + 4]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	count := binary.LittleEndian.Uint32(head[HeaderSize:])

	m := &Model{
		Header:    strings.TrimRight(string(head[:HeaderSize]), "\x00 "),
		Triangles: make([]Triangle, 0, min(count, maxPrealloc)),
	}

	var rec [RecordSize]byte
	for i := uint32(0); i < count; i++ {
		if _, err := io.ReadFull(r, rec[:]); err != nil {
			return nil, fmt.Errorf("read triangle %d: %w", i, err)
		}
		var t Triangle
		t.Normal = getVec(rec[0:])
		for v := range t.Vertices {
			t.Vertices[v] = getVec(rec[12+12*v:])
		}
		m.Triangles = append(m.Triangles, t)
	}
	return m, nil
}

// ReadFile открывает и разбирает файл.
func ReadFile(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

func getVec(b []byte) [3]float32 {
	return [3]float32{
		math.Float32frombits(binary.LittleEndian.Uint32(b[0:])),
		math.Float32frombits(binary.LittleEndian.Uint32(b[4:])),
		math.Float32frombits(binary.LittleEndian.Uint32(b[8:])),
	}
}
