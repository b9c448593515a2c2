package usecase

import (
	"context"
	"fmt"

	"media-watchlist/internal/data/repository"
	"media-watchlist/internal/dto/response"

	"go.uber.org/zap"
)

type StatsService interface {
	TopRatedMedia(ctx context.Context) ([]response.TopRatedMediaResponse, error)
	TopUsersCompleted(ctx context.Context) ([]response.TopUserCompletedResponse, error)
	TopMediaCompletions(ctx context.Context) ([]response.TopMediaCompletionsResponse, error)
	AvgRatingPerGenre(ctx context.Context) ([]response.GenreAvgRatingResponse, error)
	UsersRatedHigh(ctx context.Context) ([]response.UserResponse, error)
	LowRatedRecent(ctx context.Context) ([]response.LowRatedRecentResponse, error)
}

type statsService struct {
	repo repository.StatsRepository
	log  *zap.Logger
}

func NewStatsService(repo repository.StatsRepository, log *zap.Logger) StatsService {
	return &statsService{
		repo: repo,
		log:  log.With(zap.String("service", "stats")),
	}
}

func (s *statsService) TopRatedMedia(ctx context.Context) ([]response.TopRatedMediaResponse, error) {
	rows, err := s.repo.TopRatedMedia(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryExecution, err)
	}

	results := make([]response.TopRatedMediaResponse, len(rows))
	for i, row := range rows {
		results[i] = response.TopRatedMediaResponse{
			MediaType: row.MediaType,
			MediaName: row.MediaName,
			AvgRating: row.AvgRating,
		}
	}
	return results, nil
}

func (s *statsService) TopUsersCompleted(ctx context.Context) ([]response.TopUserCompletedResponse, error) {
	rows, err := s.repo.TopUsersCompleted(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryExecution, err)
	}

	results := make([]response.TopUserCompletedResponse, len(rows))
	for i, row := range rows {
		results[i] = response.TopUserCompletedResponse{
			FirstName: row.FirstName,
			LastName:  row.LastName,
			MediaDone: row.MediaDone,
		}
	}
	return results, nil
}

func (s *statsService) TopMediaCompletions(ctx context.Context) ([]response.TopMediaCompletionsResponse, error) {
	rows, err := s.repo.TopMediaCompletions(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryExecution, err)
	}

	results := make([]response.TopMediaCompletionsResponse, len(rows))
	for i, row := range rows {
		results[i] = response.TopMediaCompletionsResponse{
			MediaName:       row.MediaName,
			UserCompletions: row.UserCompletions,
		}
	}
	return results, nil
}

func (s *statsService) AvgRatingPerGenre(ctx context.Context) ([]response.GenreAvgRatingResponse, error) {
	rows, err := s.repo.AvgRatingPerGenre(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryExecution, err)
	}

	results := make([]response.GenreAvgRatingResponse, len(rows))
	for i, row := range rows {
		results[i] = response.GenreAvgRatingResponse{
			GenreName: row.GenreName,
			AvgRating: row.AvgRating,
		}
	}
	return results, nil
}

func (s *statsService) UsersRatedHigh(ctx context.Context) ([]response.UserResponse, error) {
	rows, err := s.repo.UsersRatedHigh(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryExecution, err)
	}

	results := make([]response.UserResponse, len(rows))
	for i, row := range rows {
		results[i] = response.UserToResponse(row)
	}
	return results, nil
}

func (s *statsService) LowRatedRecent(ctx context.Context) ([]response.LowRatedRecentResponse, error) {
	rows, err := s.repo.LowRatedRecent(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryExecution, err)
	}

	results := make([]response.LowRatedRecentResponse, len(rows))
	for i, row := range rows {
		results[i] = response.LowRatedRecentResponse{
			MediaName:   row.MediaName,
			MediaType:   row.MediaType,
			ReleaseYear: row.ReleaseYear,
			Rating:      row.Rating,
		}
	}
	return results, nil
}
