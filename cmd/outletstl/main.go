package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"outlet-forge/internal/catalog/repository"
	"outlet-forge/internal/common/config"
	"outlet-forge/internal/generator/service"
	"outlet-forge/internal/geometry"
	"outlet-forge/internal/stl"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// ============================================================
// Outlet STL CLI
// ============================================================

type outletSTL struct {
	outletType, arrangement string
	output, inspect         string
	segments                int
	options                 service.Options
}

var cli outletSTL

func floatPtr(dst **float64) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*dst = &v
		return nil
	}
}

func init() {
	flag.StringVar(&cli.outletType, "type", geometry.DefaultOutletType, "outlet type")
	flag.StringVar(&cli.arrangement, "arrangement", "single", "single, double, triple or quad")
	flag.StringVar(&cli.output, "output", "outlet.stl", "output file")
	flag.StringVar(&cli.inspect, "inspect", "", "print a summary of an existing STL file and exit")
	flag.IntVar(&cli.segments, "segments", 0, "hole tessellation segments (0 = MESH_SEGMENTS)")
	flag.BoolVar(&cli.options.ConnectorCavity, "cavity", false, "add the connector socket to USB plates")
	flag.Func("depth", "body depth in mm (default 20)", floatPtr(&cli.options.Depth))
	flag.Func("wall", "wall thickness in mm (default 2)", floatPtr(&cli.options.WallThickness))
}

func main() {
	flag.Parse()

	if cli.inspect != "" {
		if err := inspect(cli.inspect); err != nil {
			log.Fatalf("inspect: %v", err)
		}
		return
	}

	cfg := config.Load()

	db, err := repository.OpenSQLite(cfg.CatalogDBPath)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	repo := repository.New(db)
	ctx := context.Background()
	if err := repo.Init(ctx); err != nil {
		log.Fatalf("init db: %v", err)
	}

	cli.options.Segments = cli.segments
	svc := service.New(geometry.NewResolver(repo), geometry.DefaultRegistry(), nil, cfg.MeshSegments)
	mesh, res, arrangement, err := svc.Build(ctx, service.Request{
		OutletType:  cli.outletType,
		Arrangement: cli.arrangement,
		Options:     cli.options,
	})
	if err != nil {
		log.Fatalf("generate: %v", err)
	}

	header := fmt.Sprintf("outlet-forge %s %s", res.Spec.OutletType, arrangement.Name)
	if err := stl.WriteFile(cli.output, header, mesh); err != nil {
		os.Remove(cli.output)
		log.Fatalf("write: %v", err)
	}

	if res.Fallback {
		fmt.Printf("Unknown type %q, generated %s\n", res.Requested, res.Spec.OutletType)
	}
	fmt.Printf("%s: %d vertices, %d triangles (%s x%d)\n",
		cli.output, mesh.VertexCount(), mesh.TriangleCount(), arrangement.Name, arrangement.Count)
}

func inspect(path string) error {
	model, err := stl.ReadFile(path)
	if err != nil {
		return err
	}

	fmt.Println("Header    : " + model.Header)
	fmt.Printf("Triangles : %d\n", len(model.Triangles))

	var mesh geometry.Mesh
	for _, t := range model.Triangles {
		for _, v := range t.Vertices {
			mesh.Vertices = append(mesh.Vertices, geometry.Vertex{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])})
		}
	}
	min, max := mesh.Bounds()
	fmt.Printf("Bounds min: %+v\n", min)
	fmt.Printf("Bounds max: %+v\n", max)
	return nil
}
