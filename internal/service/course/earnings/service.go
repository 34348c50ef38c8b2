package earnings

import (
	"context"
	"sort"

	"github.com/rezaali07/NextLearn-backend/internal/models"
	"github.com/rezaali07/NextLearn-backend/pkg/logger"
)

const topSellingLimit = 5

type salesRepo interface {
	ListCourseSales(ctx context.Context) ([]models.CourseSales, error)
}

type Service struct {
	log       logger.Log
	salesRepo salesRepo
}

func NewService(l logger.Log, r salesRepo) *Service {
	return &Service{
		log:       l,
		salesRepo: r,
	}
}

func (s *Service) Summary(ctx context.Context) (models.EarningsReport, error) {
	sales, err := s.salesRepo.ListCourseSales(ctx)
	if err != nil {
		return models.EarningsReport{}, err
	}
	return Compute(sales), nil
}

// Compute derives the earnings report from a snapshot of course sales. It is
// a pure function: revenue per course is purchaseCount * price, totals run
// over every course including those with zero purchases, CourseStats keeps
// the input enumeration order, and TopSelling takes the five highest purchase
// counts with ties resolved by input order (stable sort, first seen wins).
func Compute(sales []models.CourseSales) models.EarningsReport {
	stats := make([]models.CourseStat, 0, len(sales))
	report := models.EarningsReport{}

	for _, sale := range sales {
		revenue := float64(sale.PurchaseCount) * sale.Price
		report.TotalRevenue += revenue
		report.TotalSales += sale.PurchaseCount
		stats = append(stats, models.CourseStat{
			CourseID:      sale.ID,
			Title:         sale.Title,
			PurchaseCount: sale.PurchaseCount,
			Revenue:       revenue,
		})
	}

	top := make([]models.CourseStat, len(stats))
	copy(top, stats)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].PurchaseCount > top[j].PurchaseCount
	})
	if len(top) > topSellingLimit {
		top = top[:topSellingLimit]
	}

	report.CourseStats = stats
	report.TopSelling = top
	return report
}
