package geometry

// ============================================================
// Arrangement Planner
// ============================================================

type Layout string

const (
	LayoutSingle     Layout = "single"
	LayoutHorizontal Layout = "horizontal"
	// LayoutGrid зарезервирован под 2-D раскладку, но пока тайлится по одной оси.
	LayoutGrid Layout = "grid"
)

type ArrangementConfig struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Spacing float64 `json:"spacing"`
	Layout  Layout  `json:"layout"`
}

var arrangements = map[string]ArrangementConfig{
	"single": {Name: "single", Count: 1, Spacing: 0, Layout: LayoutSingle},
	"double": {Name: "double", Count: 2, Spacing: 80, Layout: LayoutHorizontal},
	"triple": {Name: "triple", Count: 3, Spacing: 60, Layout: LayoutHorizontal},
	"quad":   {Name: "quad", Count: 4, Spacing: 50, Layout: LayoutGrid},
}

// Arrangements возвращает имена раскладок в порядке возрастания количества.
func Arrangements() []string {
	return []string{"single", "double", "triple", "quad"}
}

// Plan возвращает конфигурацию раскладки; для неизвестного имени single.
func Plan(name string) ArrangementConfig {
	if cfg, ok := arrangements[name]; ok {
		return cfg
	}
	return arrangements["single"]
}

// Offsets: смещения центров юнитов вдоль оси тайлинга, симметрично вокруг нуля.
func (a ArrangementConfig) Offsets() []float64 {
	if a.Count <= 1 {
		return []float64{0}
	}
	offsets := make([]float64, a.Count)
	mid := float64(a.Count-1) / 2
	for i := range offsets {
		offsets[i] = (float64(i) - mid) * a.Spacing
	}
	return offsets
}
