package services

import (
	"context"
	"sort"
	"time"

	"rentmart/internal/models"
	"rentmart/internal/repositories"

	"github.com/google/uuid"
)

type RankingEntry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type StatsSummary struct {
	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`

	OrderCount      int     `json:"order_count"`
	SalonEventCount int     `json:"salon_event_count"`
	Revenue         float64 `json:"revenue"`
	SalonRevenue    float64 `json:"salon_revenue"`
	AverageTicket   float64 `json:"average_ticket"`

	// Growth percentages against the immediately preceding window of the
	// same length.
	OrderGrowth   float64 `json:"order_growth"`
	RevenueGrowth float64 `json:"revenue_growth"`

	TopVenues    []RankingEntry `json:"top_venues"`
	TopCustomers []RankingEntry `json:"top_customers"`
	TopProducts  []RankingEntry `json:"top_products"`
}

type StatsService interface {
	Summary(ctx context.Context, start, end time.Time) (*StatsSummary, error)
}

type statsService struct {
	orderRepo     repositories.OrderRepository
	orderItemRepo repositories.OrderItemRepository
	salonRepo     repositories.SalonEventRepository
}

func NewStatsService(orderRepo repositories.OrderRepository, orderItemRepo repositories.OrderItemRepository, salonRepo repositories.SalonEventRepository) StatsService {
	return &statsService{
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		salonRepo:     salonRepo,
	}
}

const rankingSize = 5

func (s *statsService) Summary(ctx context.Context, start, end time.Time) (*StatsSummary, error) {
	orders, err := s.orderRepo.ListByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	salonEvents, err := s.salonRepo.ListByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	summary := &StatsSummary{PeriodStart: start, PeriodEnd: end}

	venueCounts := make(map[string]int)
	customerCounts := make(map[string]int)
	var orderIDs []uuid.UUID
	for _, order := range orders {
		if order.Status == models.OrderStatusCancelled {
			continue
		}
		summary.OrderCount++
		summary.Revenue += order.Total
		venueCounts[order.Venue]++
		customerCounts[order.CustomerName]++
		orderIDs = append(orderIDs, order.ID)
	}
	if summary.OrderCount > 0 {
		summary.AverageTicket = summary.Revenue / float64(summary.OrderCount)
	}

	for _, event := range salonEvents {
		if event.Status == models.SalonEventStatusCancelled {
			continue
		}
		summary.SalonEventCount++
		summary.SalonRevenue += event.Price
	}

	productCounts := make(map[string]int)
	if len(orderIDs) > 0 {
		items, err := s.orderItemRepo.ListByOrderIDs(ctx, orderIDs)
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			// component artifacts would double-count their bundle
			if item.IsBundleComponent {
				continue
			}
			productCounts[item.ProductName] += item.Quantity
		}
	}

	summary.TopVenues = topEntries(venueCounts, rankingSize)
	summary.TopCustomers = topEntries(customerCounts, rankingSize)
	summary.TopProducts = topEntries(productCounts, rankingSize)

	// previous window of the same length, ending the day before this one starts
	length := end.Sub(start)
	prevStart := start.Add(-length - 24*time.Hour)
	prevEnd := start.Add(-24 * time.Hour)

	prevOrders, err := s.orderRepo.ListByDateRange(ctx, prevStart, prevEnd)
	if err != nil {
		return nil, err
	}
	prevCount := 0
	prevRevenue := 0.0
	for _, order := range prevOrders {
		if order.Status == models.OrderStatusCancelled {
			continue
		}
		prevCount++
		prevRevenue += order.Total
	}
	summary.OrderGrowth = growthPercent(float64(summary.OrderCount), float64(prevCount))
	summary.RevenueGrowth = growthPercent(summary.Revenue, prevRevenue)

	return summary, nil
}

func growthPercent(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return (current - previous) / previous * 100
}

func topEntries(counts map[string]int, n int) []RankingEntry {
	entries := make([]RankingEntry, 0, len(counts))
	for name, count := range counts {
		entries = append(entries, RankingEntry{Name: name, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Name < entries[j].Name
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
