package repository

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"outlet-forge/internal/catalog/models"
	"outlet-forge/internal/geometry"
)

// ============================================================
// SQLite Repository
// ============================================================

var ErrNotFound = errors.New("catalog: not found")

//go:embed migrations/001_init_outlets.sql
var initMigration string

type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Init применяет миграцию и досеивает стандартные типы розеток.
func (r *Repository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, initMigration); err != nil {
		return fmt.Errorf("apply migration: %w", err)
	}
	if err := r.seed(ctx); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	log.Printf("[CATALOG] Database initialized")
	return nil
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *Repository) GetProduct(ctx context.Context, outletType string) (*models.Outlet, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT id, outlet_type, name, description, country_code, voltage,
               current_rating, frequency, plug_type, natural_image_url, product_image_url
        FROM outlets
        WHERE outlet_type = ?
    `, outletType)

	var o models.Outlet
	var description, country, voltage, current, frequency, plug, natural, product sql.NullString
	if err := row.Scan(&o.ID, &o.OutletType, &o.Name, &description, &country, &voltage,
		&current, &frequency, &plug, &natural, &product); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	o.Description = description.String
	o.CountryCode = country.String
	o.Voltage = voltage.String
	o.CurrentRating = current.String
	o.Frequency = frequency.String
	o.PlugType = plug.String
	o.NaturalImageURL = natural.String
	o.ProductImageURL = product.String
	return &o, nil
}

func (r *Repository) GetSpecification(ctx context.Context, outletType string) (*models.Specification, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT os.outlet_type, os.width, os.height, os.depth, os.hole_diameter, os.hole_spacing,
               os.mounting_screws, os.geometry_data, o.name, o.description
        FROM outlet_specifications os
        JOIN outlets o ON os.outlet_type = o.outlet_type
        WHERE os.outlet_type = ?
    `, outletType)

	var s models.Specification
	var width, height, depth, holeDiameter, holeSpacing sql.NullFloat64
	var screws, geometryData, description sql.NullString
	if err := row.Scan(&s.OutletType, &width, &height, &depth, &holeDiameter, &holeSpacing,
		&screws, &geometryData, &s.Name, &description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	s.Dimensions = models.Dimensions{Width: width.Float64, Height: height.Float64, Depth: depth.Float64}
	if holeDiameter.Valid {
		s.HoleDiameter = &holeDiameter.Float64
	}
	if holeSpacing.Valid {
		s.HoleSpacing = &holeSpacing.Float64
	}
	s.MountingScrews = screws.String
	s.Description = description.String
	if geometryData.String != "" {
		if err := json.Unmarshal([]byte(geometryData.String), &s.GeometryData); err != nil {
			return nil, fmt.Errorf("decode geometry_data for %s: %w", outletType, err)
		}
	}
	return &s, nil
}

func (r *Repository) ListOutletTypes(ctx context.Context) ([]models.OutletTypeSummary, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT outlet_type, name FROM outlets ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := []models.OutletTypeSummary{}
	for rows.Next() {
		var t models.OutletTypeSummary
		if err := rows.Scan(&t.Type, &t.Name); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

// AddOutletType добавляет тип и его спецификацию в одной транзакции.
func (r *Repository) AddOutletType(ctx context.Context, outlet models.Outlet, spec models.Specification) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if err = insertOutlet(ctx, tx, "INSERT", outlet); err != nil {
		return fmt.Errorf("insert outlet %s: %w", outlet.OutletType, err)
	}
	spec.OutletType = outlet.OutletType
	if err = insertSpecification(ctx, tx, "INSERT", spec); err != nil {
		return fmt.Errorf("insert specification %s: %w", outlet.OutletType, err)
	}
	return tx.Commit()
}

// ============================================================
// Profile source
// ============================================================

// Profile реализует geometry.ProfileSource; для отсутствующего ключа ok=false без ошибки.
func (r *Repository) Profile(ctx context.Context, outletType string) (geometry.Profile, bool, error) {
	s, err := r.GetSpecification(ctx, outletType)
	if errors.Is(err, ErrNotFound) {
		return geometry.Profile{}, false, nil
	}
	if err != nil {
		return geometry.Profile{}, false, err
	}

	p := geometry.Profile{
		OutletType:     s.OutletType,
		Name:           s.Name,
		Description:    s.Description,
		Dimensions:     geometry.Dimension{Width: s.Dimensions.Width, Height: s.Dimensions.Height, Depth: s.Dimensions.Depth},
		MountingScrews: s.MountingScrews,
		GFCI:           s.GeometryData.GFCI,
	}
	for _, h := range s.GeometryData.Holes {
		p.Holes = append(p.Holes, geometry.HoleSpec{X: h.X, Y: h.Y, Diameter: h.Diameter})
	}
	if c := s.GeometryData.Connector; c != nil {
		p.Connector = &geometry.Connector{Width: c.Width, Height: c.Height, Depth: c.Depth}
	}
	return p, true, nil
}

// ============================================================
// Seeding
// ============================================================

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (r *Repository) seed(ctx context.Context) error {
	for _, o := range seedOutlets {
		if err := insertOutlet(ctx, r.db, "INSERT OR IGNORE", o); err != nil {
			return fmt.Errorf("seed outlet %s: %w", o.OutletType, err)
		}
	}
	for _, s := range seedSpecs {
		if err := insertSpecification(ctx, r.db, "INSERT OR IGNORE", s); err != nil {
			return fmt.Errorf("seed specification %s: %w", s.OutletType, err)
		}
	}
	return nil
}

func insertOutlet(ctx context.Context, db execer, verb string, o models.Outlet) error {
	_, err := db.ExecContext(ctx, verb+` INTO outlets
        (outlet_type, name, description, country_code, voltage, current_rating, frequency, plug_type, natural_image_url, product_image_url)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `,
		o.OutletType, o.Name, o.Description, o.CountryCode, o.Voltage,
		o.CurrentRating, o.Frequency, o.PlugType, o.NaturalImageURL, o.ProductImageURL,
	)
	return err
}

func insertSpecification(ctx context.Context, db execer, verb string, s models.Specification) error {
	data, err := json.Marshal(s.GeometryData)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, verb+` INTO outlet_specifications
        (outlet_type, width, height, depth, hole_diameter, hole_spacing, mounting_screws, geometry_data)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)
    `,
		s.OutletType, s.Dimensions.Width, s.Dimensions.Height, s.Dimensions.Depth,
		s.HoleDiameter, s.HoleSpacing, s.MountingScrews, string(data),
	)
	return err
}

// OpenSQLite открывает sqlite по указанному пути.
func OpenSQLite(dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?cache=shared&mode=rwc&_pragma=busy_timeout=5000", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return db, nil
}
