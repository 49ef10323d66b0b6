package geometry

// ============================================================
// Mesh Assembler
// ============================================================

// Assembler работает как арена вершин: каждая вставка получает стабильный базовый индекс,
// грани части сдвигаются на него.
type Assembler struct {
	mesh Mesh
}

func NewAssembler() *Assembler {
	return &Assembler{}
}

// Next: индекс, который получит первая вершина следующей части.
func (a *Assembler) Next() int {
	return len(a.mesh.Vertices)
}

// Append добавляет часть и возвращает ее базовый индекс.
// Часть с локальным индексом вне диапазона отклоняется целиком.
func (a *Assembler) Append(p Part) (int, error) {
	for i, f := range p.Faces {
		for _, idx := range f {
			if idx < 0 || idx >= len(p.Vertices) {
				return 0, validationError("part face %d index %d out of range [0,%d)", i, idx, len(p.Vertices))
			}
		}
	}

	base := a.Next()
	a.mesh.Vertices = append(a.mesh.Vertices, p.Vertices...)
	for _, f := range p.Faces {
		a.mesh.Faces = append(a.mesh.Faces, Face{f[0] + base, f[1] + base, f[2] + base})
	}
	return base, nil
}

// Mesh возвращает собранный меш. Ассемблер после этого не используется.
func (a *Assembler) Mesh() *Mesh {
	m := a.mesh
	return &m
}

// CheckIndices проверяет, что все индексы граней меньше числа вершин.
func (m *Mesh) CheckIndices() error {
	n := len(m.Vertices)
	for i, f := range m.Faces {
		for _, idx := range f {
			if idx < 0 || idx >= n {
				return validationError("face %d index %d out of range [0,%d)", i, idx, n)
			}
		}
	}
	return nil
}
