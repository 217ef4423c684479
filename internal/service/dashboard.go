package service

import (
	"context"
	"fmt"
	"math"

	"github.com/taskvault/taskvault/internal/domain"
	"github.com/taskvault/taskvault/internal/store"
)

// Stat is one dashboard tile.
type Stat struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Value  string `json:"value"`
	Change string `json:"change"`
	Type   string `json:"type"`
}

// DashboardStats is the aggregate payload for the dashboard page.
type DashboardStats struct {
	Total        int
	Completed    int
	Active       int
	Productivity int // completed/total as a rounded percentage, 0 when empty
	Stats        []Stat
}

type DashboardService struct {
	Store store.Store
}

// Stats aggregates the caller's task counts into the dashboard tiles.
func (s *DashboardService) Stats(ctx context.Context, owner domain.User) (DashboardStats, error) {
	total, completed, err := s.Store.Tasks().CountByOwner(ctx, owner.ID)
	if err != nil {
		return DashboardStats{}, err
	}

	active := total - completed
	productivity := 0
	if total > 0 {
		productivity = int(math.Round(float64(completed) / float64(total) * 100))
	}

	return DashboardStats{
		Total:        total,
		Completed:    completed,
		Active:       active,
		Productivity: productivity,
		Stats: []Stat{
			{ID: 1, Name: "Total Tasks", Value: fmt.Sprint(total), Change: "Live", Type: "increase"},
			{ID: 2, Name: "Completed", Value: fmt.Sprint(completed), Change: "Live", Type: "increase"},
			{ID: 3, Name: "Active Tasks", Value: fmt.Sprint(active), Change: "Live", Type: "increase"},
			{ID: 4, Name: "Productivity", Value: fmt.Sprintf("%d%%", productivity), Change: "Live", Type: "increase"},
		},
	}, nil
}
