package usecase

import (
	"media-watchlist/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Watchlist WatchlistService
	Search    SearchService
	User      UserService
	Review    ReviewService
	Stats     StatsService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Watchlist: NewWatchlistService(repo, log),
		Search:    NewSearchService(repo, log),
		User:      NewUserService(repo.User, log),
		Review:    NewReviewService(repo.Review, log),
		Stats:     NewStatsService(repo.Stats, log),
	}
}
