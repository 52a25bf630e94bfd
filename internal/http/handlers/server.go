package handlers

import (
	"github.com/ravikant-sharma/shopledger/internal/redissvc"
	repo "github.com/ravikant-sharma/shopledger/internal/repo"
)

var (
	productRepo repo.ProductRepository
	ledgerRepo  repo.LedgerRepository
	reportRepo  repo.ReportRepository
	userRepo    repo.UserRepository

	redisService *redissvc.RedisService
)

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetLedgerRepo(r repo.LedgerRepository) {
	ledgerRepo = r
}

func SetReportRepo(r repo.ReportRepository) {
	reportRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

// SetRedisService enables the report cache. Handlers work without it; a nil
// service means every report is computed from the database.
func SetRedisService(rs *redissvc.RedisService) {
	redisService = rs
}

func cachedReport(key string, dest any) bool {
	if redisService == nil {
		return false
	}
	return redisService.GetReport(key, dest)
}

func cacheReport(key string, value any) {
	if redisService != nil {
		redisService.SetReport(key, value)
	}
}

func invalidateReports() {
	if redisService != nil {
		redisService.InvalidateReports()
	}
}
