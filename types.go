package maylng

import (
	"time"

	"github.com/maylng/mayl-sdk/internal/api"
)

// Page holds one page of a list query.
type Page[T any] struct {
	Items       []T
	Page        int
	Limit       int
	Total       int
	TotalPages  int
	HasNext     bool
	HasPrevious bool
}

// pageFromAPI maps a wire page through a per-item conversion.
func pageFromAPI[T, U any](p *api.Page[U], conv func(*U) T) *Page[T] {
	items := make([]T, 0, len(p.Items))
	for i := range p.Items {
		items = append(items, conv(&p.Items[i]))
	}
	return &Page[T]{
		Items:       items,
		Page:        p.Page,
		Limit:       p.Limit,
		Total:       p.Total,
		TotalPages:  p.TotalPages,
		HasNext:     p.HasNext,
		HasPrevious: p.HasPrevious,
	}
}

// AccountInfo describes account usage and plan limits.
type AccountInfo struct {
	AccountID           string
	Plan                string
	EmailAddressLimit   int
	EmailAddressUsed    int
	EmailLimitPerMonth  int
	EmailsSentThisMonth int
	CreatedAt           time.Time
}

// HealthStatus is the result of a liveness probe.
type HealthStatus struct {
	Status    string
	Message   string
	Timestamp *time.Time
}

// Health status values.
const (
	HealthStatusHealthy   = "healthy"
	HealthStatusUnhealthy = "unhealthy"
)
