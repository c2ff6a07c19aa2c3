//go:build integration

package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	attendanceModel "hrms/internal/attendance/models"
	"hrms/internal/dashboard/cache"
	"hrms/internal/dashboard/models"
	"hrms/pkg/testutil/containers"
)

func sampleStats() *models.Stats {
	return &models.Stats{
		TotalEmployees:  3,
		TotalAttendance: 7,
		PresentToday:    2,
		AbsentToday:     1,
		Departments: []models.DepartmentCount{
			{Name: "Eng", Count: 2},
			{Name: "Sales", Count: 1},
		},
		RecentAttendance: []models.RecentEntry{
			{EmployeeID: "E1", EmployeeName: "Ann", Date: "2024-03-15", Status: attendanceModel.StatusPresent},
		},
	}
}

func TestRedisCacheMiss(t *testing.T) {
	rc := containers.NewRedisContainer(t)
	c := cache.NewRedis(rc.Client, time.Minute)

	got, err := c.Get(context.Background())
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestRedisCacheRoundTrip(t *testing.T) {
	rc := containers.NewRedisContainer(t)
	c := cache.NewRedis(rc.Client, time.Minute)
	ctx := context.Background()

	want := sampleStats()
	require.NoError(t, c.Set(ctx, want))

	got, err := c.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestRedisCacheExpires(t *testing.T) {
	rc := containers.NewRedisContainer(t)
	c := cache.NewRedis(rc.Client, 500*time.Millisecond)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, sampleStats()))

	got, err := c.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)

	time.Sleep(time.Second)

	got, err = c.Get(ctx)
	require.NoError(t, err)
	require.Nil(t, got)
}
