package geometry

import (
	"context"
	"fmt"
)

// ============================================================
// Profiles
// ============================================================

const (
	DefaultOutletType    = "NEMA_5-15R"
	DefaultDepth         = 20.0
	DefaultWallThickness = 2.0
)

// Profile: то, что отдает хранилище метаданных по типу розетки.
type Profile struct {
	OutletType     string
	Name           string
	Description    string
	Dimensions     Dimension
	Holes          []HoleSpec
	MountingScrews string
	Connector      *Connector
	GFCI           bool
}

// ProfileSource: read-only хранилище профилей.
// ok=false означает отсутствие ключа и не является ошибкой.
type ProfileSource interface {
	Profile(ctx context.Context, outletType string) (p Profile, ok bool, err error)
}

// DefaultProfile: стандартная одноместная прямоугольная рамка (NEMA 5-15R).
// Используется, если хранилище не знает даже DefaultOutletType.
func DefaultProfile() Profile {
	return Profile{
		OutletType:  DefaultOutletType,
		Name:        "NEMA 5-15R Standard Socket",
		Description: "Standard US household wall socket",
		Dimensions:  Dimension{Width: 114.3, Height: 69.9, Depth: 44.5},
		Holes: []HoleSpec{
			{X: 0, Y: 10, Diameter: 6.35},
			{X: 0, Y: -10, Diameter: 6.35},
		},
		MountingScrews: "M3.5x32mm",
	}
}

// ============================================================
// Resolver
// ============================================================

// Overrides: пользовательские опции; nil означает значение по умолчанию.
type Overrides struct {
	Depth         *float64
	WallThickness *float64
}

// Resolution: результат разрешения.
//
// Fallback=true: запрошенный тип неизвестен и вместо него подставлен
// DefaultOutletType. Это намеренное поведение совместимости, а не ошибка;
// вызывающий код может показать предупреждение, но не должен падать.
type Resolution struct {
	Spec      GeometrySpec
	Profile   Profile
	Requested string
	Fallback  bool
}

type Resolver struct {
	source ProfileSource
}

func NewResolver(source ProfileSource) *Resolver {
	return &Resolver{source: source}
}

// Resolve превращает идентификатор типа и опции в GeometrySpec.
func (r *Resolver) Resolve(ctx context.Context, outletType string, opts Overrides) (Resolution, error) {
	res := Resolution{Requested: outletType}

	profile, ok, err := r.lookup(ctx, outletType)
	if err != nil {
		return res, err
	}
	if !ok {
		res.Fallback = true
		profile, ok, err = r.lookup(ctx, DefaultOutletType)
		if err != nil {
			return res, err
		}
		if !ok {
			profile = DefaultProfile()
		}
	}

	depth := DefaultDepth
	if opts.Depth != nil {
		depth = *opts.Depth
	}
	wall := DefaultWallThickness
	if opts.WallThickness != nil {
		wall = *opts.WallThickness
	}

	holes := make([]HoleSpec, len(profile.Holes))
	copy(holes, profile.Holes)

	var connector *Connector
	if profile.Connector != nil {
		c := *profile.Connector
		connector = &c
	}

	res.Profile = profile
	res.Spec = GeometrySpec{
		OutletType: profile.OutletType,
		Dimensions: Dimension{
			Width:  profile.Dimensions.Width,
			Height: profile.Dimensions.Height,
			Depth:  depth,
		},
		Holes:          holes,
		WallThickness:  wall,
		MountingScrews: profile.MountingScrews,
		Connector:      connector,
	}
	return res, nil
}

func (r *Resolver) lookup(ctx context.Context, outletType string) (Profile, bool, error) {
	if r.source == nil || outletType == "" {
		return Profile{}, false, nil
	}
	p, ok, err := r.source.Profile(ctx, outletType)
	if err != nil {
		return Profile{}, false, fmt.Errorf("%w: %s: %v", ErrUpstreamLookup, outletType, err)
	}
	return p, ok, nil
}

// ============================================================
// Static source
// ============================================================

// StaticProfiles: ProfileSource в памяти.
type StaticProfiles map[string]Profile

func (s StaticProfiles) Profile(_ context.Context, outletType string) (Profile, bool, error) {
	p, ok := s[outletType]
	return p, ok, nil
}
