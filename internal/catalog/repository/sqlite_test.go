package repository_test

import (
	"context"
	"path/filepath"
	"testing"

	"outlet-forge/internal/catalog/models"
	"outlet-forge/internal/catalog/repository"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
	"github.com/stretchr/testify/require"
)

func openRepo(t *testing.T) *repository.Repository {
	t.Helper()
	db, err := repository.OpenSQLite(filepath.Join(t.TempDir(), "catalog", "outlets.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := repository.New(db)
	require.NoError(t, repo.Init(context.Background()))
	return repo
}

func TestInit_Idempotent(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Init(ctx))
	require.NoError(t, repo.Ping(ctx))

	types, err := repo.ListOutletTypes(ctx)
	require.NoError(t, err)
	require.Len(t, types, 8)
}

func TestListOutletTypes_OrderedByName(t *testing.T) {
	repo := openRepo(t)

	types, err := repo.ListOutletTypes(context.Background())
	require.NoError(t, err)
	require.Equal(t, models.OutletTypeSummary{Type: "AS_3112", Name: "AS 3112 Australian Socket"}, types[0])
	require.Equal(t, "USB_C", types[len(types)-1].Type)
}

func TestGetProduct(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	o, err := repo.GetProduct(ctx, "BS_1363")
	require.NoError(t, err)
	require.Equal(t, "UK", o.CountryCode)
	require.Equal(t, "Type G", o.PlugType)
	require.NotZero(t, o.ID)

	_, err = repo.GetProduct(ctx, "NOPE")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGetSpecification(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	s, err := repo.GetSpecification(ctx, "AS_3112")
	require.NoError(t, err)
	require.Equal(t, models.Dimensions{Width: 80, Height: 110, Depth: 55}, s.Dimensions)
	require.Len(t, s.GeometryData.Holes, 3)
	require.Equal(t, models.Hole{X: -16, Y: -16, Diameter: 8}, s.GeometryData.Holes[1])
	require.NotNil(t, s.HoleDiameter)
	require.Equal(t, 8.0, *s.HoleDiameter)

	usb, err := repo.GetSpecification(ctx, "USB_C")
	require.NoError(t, err)
	require.Nil(t, usb.HoleDiameter)
	require.Nil(t, usb.HoleSpacing)
	require.Empty(t, usb.GeometryData.Holes)
	require.Equal(t, &models.Connector{Width: 8.5, Height: 2.6, Depth: 14}, usb.GeometryData.Connector)

	gfci, err := repo.GetSpecification(ctx, "GFCI")
	require.NoError(t, err)
	require.True(t, gfci.GeometryData.GFCI)

	_, err = repo.GetSpecification(ctx, "NOPE")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProfile(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	p, ok, err := repo.Profile(ctx, "CEE_7/4")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "CEE 7/4 Schuko Socket", p.Name)
	require.Equal(t, 84.0, p.Dimensions.Width)
	require.Len(t, p.Holes, 2)
	require.Nil(t, p.Connector)

	usb, ok, err := repo.Profile(ctx, "USB_A")
	require.NoError(t, err)
	require.True(t, ok)
	require.NotNil(t, usb.Connector)
	require.Equal(t, 12.0, usb.Connector.Width)

	_, ok, err = repo.Profile(ctx, "NOPE")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestAddOutletType(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	outlet := models.Outlet{OutletType: "SEV_1011", Name: "SEV 1011 Swiss Socket", CountryCode: "CH", Voltage: "230V"}
	spec := models.Specification{
		Dimensions:   models.Dimensions{Width: 80, Height: 80, Depth: 40},
		GeometryData: models.GeometryData{Holes: []models.Hole{{X: -9.5, Y: 0, Diameter: 4}, {X: 9.5, Y: 0, Diameter: 4}}},
	}
	require.NoError(t, repo.AddOutletType(ctx, outlet, spec))

	s, err := repo.GetSpecification(ctx, "SEV_1011")
	require.NoError(t, err)
	require.Equal(t, "SEV 1011 Swiss Socket", s.Name)
	require.Len(t, s.GeometryData.Holes, 2)

	types, err := repo.ListOutletTypes(ctx)
	require.NoError(t, err)
	require.Len(t, types, 9)

	// повторная вставка откатывается целиком
	require.Error(t, repo.AddOutletType(ctx, outlet, spec))
	types, err = repo.ListOutletTypes(ctx)
	require.NoError(t, err)
	require.Len(t, types, 9)
}

func TestAddOutletType_ExistingTypeUntouched(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	err := repo.AddOutletType(ctx, models.Outlet{OutletType: "NEMA_5-15R", Name: "dup"}, models.Specification{})
	require.Error(t, err)

	o, err := repo.GetProduct(ctx, "NEMA_5-15R")
	require.NoError(t, err)
	require.Equal(t, "NEMA 5-15R Standard Socket", o.Name)
}
