package service

import (
	"github.com/rezaali07/NextLearn-backend/internal/service/auth"
	"github.com/rezaali07/NextLearn-backend/internal/service/category"
	"github.com/rezaali07/NextLearn-backend/internal/service/course/access"
	"github.com/rezaali07/NextLearn-backend/internal/service/course/earnings"
	"github.com/rezaali07/NextLearn-backend/internal/service/course/engagement"
	"github.com/rezaali07/NextLearn-backend/internal/service/course/management"
	"github.com/rezaali07/NextLearn-backend/internal/service/course/purchase"
	"github.com/rezaali07/NextLearn-backend/internal/service/course/query"
	"github.com/rezaali07/NextLearn-backend/internal/service/progress"
)

type Collection struct {
	Auth       *auth.AuthService
	Access     *access.Service
	Engagement *engagement.Service
	Purchase   *purchase.Service
	Earnings   *earnings.Service
	Management *management.Service
	Query      *query.Service
	Progress   *progress.Service
	Category   *category.Service
}
