package models

import "github.com/google/uuid"

type CourseStat struct {
	CourseID      uuid.UUID `json:"course_id"`
	Title         string    `json:"title"`
	PurchaseCount int       `json:"purchase_count"`
	Revenue       float64   `json:"revenue"`
}

type EarningsReport struct {
	TotalRevenue float64      `json:"total_revenue"`
	TotalSales   int          `json:"total_sales"`
	CourseStats  []CourseStat `json:"course_stats"`
	TopSelling   []CourseStat `json:"top_selling"`
}
