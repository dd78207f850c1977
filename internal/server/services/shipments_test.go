package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/airlineadmin/internal/common"
	"github.com/dmitrijs2005/airlineadmin/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cargoFixture struct {
	flights   *FlightService
	shipments *ShipmentService
}

func newCargoFixture(t *testing.T, enforce bool) cargoFixture {
	t.Helper()
	db, m := newStore(t)
	cfg := testConfig(enforce)
	f := cargoFixture{
		flights:   NewFlightService(db, m, cfg),
		shipments: NewShipmentService(db, m, cfg),
	}
	for _, no := range []string{"BT101", "BT202"} {
		_, err := f.flights.Create(context.Background(), flightInput(no))
		require.NoError(t, err)
	}
	return f
}

func books(flightNo string) ShipmentInput {
	return ShipmentInput{Contents: "Books", WeightKg: "10", Category: "Paper", FlightNo: flightNo, CostPerKg: "5", HandlingFee: "10"}
}

func TestShipments_TotalCostOnRead(t *testing.T) {
	f := newCargoFixture(t, true)
	ctx := context.Background()

	sh, err := f.shipments.Create(ctx, ShipmentInput{
		Contents: "Machine parts", WeightKg: "120.5", Category: "Industrial",
		IsInsured: true, FlightNo: "BT101", CostPerKg: "4", HandlingFee: "25",
	})
	require.NoError(t, err)

	got, err := f.shipments.Get(ctx, sh.ID)
	require.NoError(t, err)
	assert.True(t, got.IsInsured)
	assert.InDelta(t, 120.5*4+25, got.TotalCost(), 1e-9)

	in := books("BT101")
	in.WeightKg = "3"
	_, err = f.shipments.Update(ctx, sh.ID, in)
	require.NoError(t, err)

	list, err := f.shipments.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.InDelta(t, 3*5+10, list[0].TotalCost(), 1e-9)
	assert.False(t, list[0].IsInsured)
}

func TestShipments_Defaults(t *testing.T) {
	f := newCargoFixture(t, true)

	in := books("BT101")
	in.CostPerKg, in.HandlingFee = "", " "
	sh, err := f.shipments.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultCostPerKg, sh.CostPerKg)
	assert.Equal(t, models.DefaultHandlingFee, sh.HandlingFee)
	assert.InDelta(t, 60.0, sh.TotalCost(), 1e-9)
}

func TestShipments_InvalidNumericPersistsNothing(t *testing.T) {
	f := newCargoFixture(t, true)
	ctx := context.Background()

	bad := []func(*ShipmentInput){
		func(in *ShipmentInput) { in.WeightKg = "heavy" },
		func(in *ShipmentInput) { in.WeightKg = "" },
		func(in *ShipmentInput) { in.CostPerKg = "5 EUR" },
		func(in *ShipmentInput) { in.HandlingFee = "NaN" },
		func(in *ShipmentInput) { in.HandlingFee = "Inf" },
	}
	for _, mutate := range bad {
		in := books("BT101")
		mutate(&in)
		_, err := f.shipments.Create(ctx, in)
		assert.ErrorIs(t, err, common.ErrInvalidNumeric, "%+v", in)
	}

	list, err := f.shipments.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestShipments_ListNewestFirst(t *testing.T) {
	f := newCargoFixture(t, true)
	ctx := context.Background()

	first, err := f.shipments.Create(ctx, books("BT101"))
	require.NoError(t, err)
	second, err := f.shipments.Create(ctx, books("BT202"))
	require.NoError(t, err)

	list, err := f.shipments.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestShipments_NotFound(t *testing.T) {
	f := newCargoFixture(t, true)
	ctx := context.Background()

	_, err := f.shipments.Get(ctx, 404)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = f.shipments.Update(ctx, 404, books("BT101"))
	assert.ErrorIs(t, err, common.ErrorNotFound)

	assert.ErrorIs(t, f.shipments.Delete(ctx, 404), common.ErrorNotFound)
}

func TestShipments_EnforcedReferences(t *testing.T) {
	f := newCargoFixture(t, true)
	ctx := context.Background()

	_, err := f.shipments.Create(ctx, books("ZZ999"))
	assert.ErrorIs(t, err, common.ErrInvalidFlightReference)
	assert.ErrorIs(t, err, common.ErrReferentialViolation)

	sh, err := f.shipments.Create(ctx, books("BT101"))
	require.NoError(t, err)

	_, err = f.shipments.Update(ctx, sh.ID, books("ZZ999"))
	assert.ErrorIs(t, err, common.ErrInvalidFlightReference)

	// re-pointing to an existing flight is fine
	_, err = f.shipments.Update(ctx, sh.ID, books("BT202"))
	require.NoError(t, err)

	err = f.flights.Delete(ctx, "BT202")
	assert.ErrorIs(t, err, common.ErrFlightInUse)
	_, err = f.flights.Get(ctx, "BT202")
	require.NoError(t, err, "flight kept")

	require.NoError(t, f.flights.Delete(ctx, "BT101"), "flight without shipments can go")

	require.NoError(t, f.shipments.Delete(ctx, sh.ID))
	require.NoError(t, f.flights.Delete(ctx, "BT202"))
}

func TestShipments_UncheckedReferences(t *testing.T) {
	f := newCargoFixture(t, false)
	ctx := context.Background()

	dangling, err := f.shipments.Create(ctx, books("ZZ999"))
	require.NoError(t, err)
	assert.Equal(t, "ZZ999", dangling.FlightNo)

	sh, err := f.shipments.Create(ctx, books("BT101"))
	require.NoError(t, err)

	require.NoError(t, f.flights.Delete(ctx, "BT101"))

	// the shipment survives with a dangling flight number
	got, err := f.shipments.Get(ctx, sh.ID)
	require.NoError(t, err)
	assert.Equal(t, "BT101", got.FlightNo)

	_, err = f.shipments.Update(ctx, sh.ID, books("NOPE1"))
	require.NoError(t, err)
}
