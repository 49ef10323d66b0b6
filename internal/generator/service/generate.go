package service

import (
	"context"
	"fmt"
	"log"

	"outlet-forge/internal/geometry"
	"outlet-forge/internal/stl"
)

// ============================================================
// Generation Service
// ============================================================

// Options: пользовательские опции запроса (custom_options).
// ConnectorCavity включает гнездо разъема для USB-рамок.
type Options struct {
	Depth           *float64 `json:"depth,omitempty"`
	WallThickness   *float64 `json:"wall_thickness,omitempty"`
	Segments        int      `json:"segments,omitempty"`
	ConnectorCavity bool     `json:"connector_cavity,omitempty"`
}

type Request struct {
	SessionID   string
	OutletType  string
	Arrangement string
	Options     Options
}

type Result struct {
	SessionID     string                     `json:"session_id"`
	OutletType    string                     `json:"outlet_type"`
	Requested     string                     `json:"requested_type"`
	Fallback      bool                       `json:"fallback"`
	Arrangement   geometry.ArrangementConfig `json:"arrangement"`
	Filename      string                     `json:"filename"`
	Path          string                     `json:"-"`
	VertexCount   int                        `json:"vertices"`
	TriangleCount int                        `json:"triangles"`
	Size          int64                      `json:"size"`
}

type Service struct {
	resolver        *geometry.Resolver
	registry        *geometry.Registry
	storage         *FileStorage
	defaultSegments int
}

func New(resolver *geometry.Resolver, registry *geometry.Registry, storage *FileStorage, defaultSegments int) *Service {
	return &Service{
		resolver:        resolver,
		registry:        registry,
		storage:         storage,
		defaultSegments: defaultSegments,
	}
}

func (s *Service) Storage() *FileStorage {
	return s.storage
}

// Build разрешает спецификацию и строит меш без записи на диск.
func (s *Service) Build(ctx context.Context, req Request) (*geometry.Mesh, geometry.Resolution, geometry.ArrangementConfig, error) {
	res, err := s.resolver.Resolve(ctx, req.OutletType, geometry.Overrides{
		Depth:         req.Options.Depth,
		WallThickness: req.Options.WallThickness,
	})
	if err != nil {
		return nil, res, geometry.ArrangementConfig{}, err
	}
	if res.Fallback {
		log.Printf("[GENERATOR] Unknown outlet type %q, using %s", req.OutletType, res.Spec.OutletType)
	}
	if res.Spec.DegenerateShell() {
		log.Printf("[GENERATOR] Wall thickness %g >= half of %gx%g, inner shell will be inverted",
			res.Spec.WallThickness, res.Spec.Dimensions.Width, res.Spec.Dimensions.Height)
	}

	arrangement := geometry.Plan(req.Arrangement)

	segments := req.Options.Segments
	if segments == 0 {
		segments = s.defaultSegments
	}

	mesh, err := s.registry.Build(res.Spec, arrangement, geometry.BuildOptions{
		Segments:        segments,
		ConnectorCavity: req.Options.ConnectorCavity,
	})
	if err != nil {
		return nil, res, arrangement, fmt.Errorf("build %s: %w", res.Spec.OutletType, err)
	}
	return mesh, res, arrangement, nil
}

// Generate строит меш и пишет его в каталог сессии.
// Меш строится полностью до создания файла; при ошибке записи файл удаляется.
func (s *Service) Generate(ctx context.Context, req Request) (*Result, error) {
	if err := ValidateSession(req.SessionID); err != nil {
		return nil, err
	}

	mesh, res, arrangement, err := s.Build(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := s.storage.EnsureSessionDir(req.SessionID); err != nil {
		return nil, fmt.Errorf("%w: %v", stl.ErrWrite, err)
	}
	filename := MeshFilename(res.Spec.OutletType, arrangement.Name)
	path := s.storage.MeshPath(req.SessionID, filename)

	header := fmt.Sprintf("outlet-forge %s %s", res.Spec.OutletType, arrangement.Name)
	if err := stl.WriteFile(path, header, mesh); err != nil {
		if rmErr := s.storage.Remove(path); rmErr != nil {
			log.Printf("[GENERATOR] Failed to remove partial file %s: %v", path, rmErr)
		}
		return nil, err
	}

	log.Printf("[GENERATOR] Wrote %s (%d vertices, %d triangles)", path, mesh.VertexCount(), mesh.TriangleCount())

	return &Result{
		SessionID:     req.SessionID,
		OutletType:    res.Spec.OutletType,
		Requested:     res.Requested,
		Fallback:      res.Fallback,
		Arrangement:   arrangement,
		Filename:      filename,
		Path:          path,
		VertexCount:   mesh.VertexCount(),
		TriangleCount: mesh.TriangleCount(),
		Size:          stl.Size(mesh.TriangleCount()),
	}, nil
}
