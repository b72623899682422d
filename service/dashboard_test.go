package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tech-karippilly/drybros-app-sub006/internal/cache"
	"github.com/tech-karippilly/drybros-app-sub006/storage/model"
)

func newDashboardBackends() model.Backends {
	drivers := newFakeDrivers(
		&model.Driver{ID: "d1", FranchiseID: "f1", Status: model.DriverActive},
		&model.Driver{ID: "d2", FranchiseID: "f1", Status: model.DriverTerminated},
		&model.Driver{ID: "d3", FranchiseID: "f2", Status: model.DriverActive},
	)
	staff := newFakeStaff(
		&model.Staff{ID: "s1", FranchiseID: "f1", Status: model.StaffActive},
	)
	warnings := newFakeWarnings()
	_ = warnings.Create(&model.Warning{DriverID: strPtr("d1"), FranchiseID: "f1", Reason: "late"})
	_ = warnings.Create(&model.Warning{DriverID: strPtr("d3"), FranchiseID: "f2", Reason: "late"})
	complaints := newFakeComplaints()
	_ = complaints.Create(
		&model.Complaint{
			DriverID: strPtr("d1"), FranchiseID: "f1",
			Title: "t", Description: "d", Status: model.ComplaintOpen,
		},
	)
	_ = complaints.Create(
		&model.Complaint{
			DriverID: strPtr("d1"), FranchiseID: "f1",
			Title: "t", Description: "d", Status: model.ComplaintResolved,
		},
	)
	return model.Backends{
		Franchises: newFakeFranchises(&model.Franchise{ID: "f1", Name: "Kochi", Active: true}),
		Drivers:    drivers,
		Staff:      staff,
		Warnings:   warnings,
		Complaints: complaints,
	}
}

func TestDashboardMetrics(t *testing.T) {
	backs := newDashboardBackends()
	svc := NewDashboardService(backs, cache.NewMemory(), time.Minute)

	m, err := svc.Metrics("f1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, m.Drivers)
	assert.EqualValues(t, 1, m.Staff)
	assert.EqualValues(t, 1, m.Warnings)
	assert.EqualValues(t, 1, m.OpenComplaints)
	assert.EqualValues(t, 1, m.FiredDrivers30d)
	assert.False(t, m.GeneratedAt.IsZero())
}

func TestDashboardMetricsUnknownFranchise(t *testing.T) {
	svc := NewDashboardService(newDashboardBackends(), cache.NewMemory(), time.Minute)

	_, err := svc.Metrics("nope")
	var nf model.NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestDashboardMetricsCached(t *testing.T) {
	backs := newDashboardBackends()
	svc := NewDashboardService(backs, cache.NewMemory(), time.Minute)

	first, err := svc.Metrics("f1")
	require.NoError(t, err)

	// A write after the first read must not show up while the cache entry is
	// fresh.
	require.NoError(
		t, backs.Drivers.Create(&model.Driver{FranchiseID: "f1", Status: model.DriverActive}),
	)
	second, err := svc.Metrics("f1")
	require.NoError(t, err)
	assert.Equal(t, first.Drivers, second.Drivers)
	assert.Equal(t, first.GeneratedAt.Unix(), second.GeneratedAt.Unix())
}

func TestDashboardMetricsWithoutCache(t *testing.T) {
	backs := newDashboardBackends()
	svc := NewDashboardService(backs, nil, time.Minute)

	first, err := svc.Metrics("f1")
	require.NoError(t, err)
	require.NoError(
		t, backs.Drivers.Create(&model.Driver{FranchiseID: "f1", Status: model.DriverActive}),
	)
	second, err := svc.Metrics("f1")
	require.NoError(t, err)
	assert.Equal(t, first.Drivers+1, second.Drivers)
}
