package response

import (
	"time"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
)

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type LoginResponse struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expiresAt"`
	User      *UserResponse `json:"user"`
}

type AuditLogResponse struct {
	ID         string         `json:"id"`
	ActorID    string         `json:"actorId"`
	ActorName  string         `json:"actorName,omitempty"`
	Action     string         `json:"action"`
	TargetType string         `json:"targetType"`
	TargetID   string         `json:"targetId"`
	Meta       map[string]any `json:"meta,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
}

type DashboardResponse struct {
	Totals            domain.DashboardTotals `json:"totals"`
	RevenueLast30Days int64                  `json:"revenueLast30Days"`
	RecentOrders      []*OrderResponse       `json:"recentOrders"`
	LowStockVariants  []*VariantResponse     `json:"lowStockVariants"`
}

func NewUser(u *domain.User) *UserResponse {
	return &UserResponse{ID: u.ID, Email: u.Email, Name: u.Name, Role: string(u.Role)}
}

func NewAuditLogs(logs []*domain.AuditLog) []*AuditLogResponse {
	out := make([]*AuditLogResponse, 0, len(logs))
	for _, l := range logs {
		entry := &AuditLogResponse{
			ID:         l.ID,
			ActorID:    l.ActorID,
			Action:     l.Action,
			TargetType: l.TargetType,
			TargetID:   l.TargetID,
			Meta:       l.Meta,
			CreatedAt:  l.CreatedAt,
		}
		if l.Actor != nil {
			entry.ActorName = l.Actor.Name
		}
		out = append(out, entry)
	}
	return out
}

func NewDashboard(s *domain.DashboardSnapshot) *DashboardResponse {
	return &DashboardResponse{
		Totals:            s.Totals,
		RevenueLast30Days: s.RevenueLast30Days,
		RecentOrders:      NewOrders(s.RecentOrders),
		LowStockVariants:  NewVariants(s.LowStockVariants),
	}
}

// PageOf maps a page of domain items to its response shape.
type PageOf[T any] struct {
	Items    []T   `json:"items"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
}
