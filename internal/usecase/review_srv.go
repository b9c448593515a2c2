package usecase

import (
	"context"
	"errors"
	"fmt"

	"media-watchlist/internal/data/entity"
	"media-watchlist/internal/data/repository"
	"media-watchlist/internal/dto/request"
	"media-watchlist/internal/dto/response"
	"media-watchlist/pkg/utils"

	"go.uber.org/zap"
)

type ReviewService interface {
	CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	UpdateReview(ctx context.Context, reviewID int64, req *request.UpdateReviewRequest) (*response.ReviewResponse, error)
	DeleteReview(ctx context.Context, reviewID int64) error
}

type reviewService struct {
	repo repository.ReviewRepository
	log  *zap.Logger
}

func NewReviewService(repo repository.ReviewRepository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	review := &entity.Review{
		UserID:     req.UserID,
		MediaID:    req.MediaID,
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
		Status:     entity.WatchStatus(req.Status),
	}

	id, err := s.repo.Create(ctx, review)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryExecution, err)
	}
	review.ReviewID = id

	s.log.Info("Review created",
		zap.Int64("review_id", id),
		zap.Int64("user_id", req.UserID),
		zap.Int64("media_id", req.MediaID),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, reviewID int64, req *request.UpdateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.FindByID(ctx, reviewID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryExecution, err)
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: review %d", ErrNotFound, reviewID)
	}

	existing.Rating = req.Rating
	existing.ReviewText = req.ReviewText
	existing.Status = entity.WatchStatus(req.Status)

	if err := s.repo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: review %d", ErrNotFound, reviewID)
		}
		return nil, fmt.Errorf("%w: %v", ErrQueryExecution, err)
	}

	s.log.Info("Review updated", zap.Int64("review_id", reviewID))

	resp := response.ReviewToResponse(existing)
	return &resp, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, reviewID int64) error {
	if err := s.repo.Delete(ctx, reviewID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: review %d", ErrNotFound, reviewID)
		}
		return fmt.Errorf("%w: %v", ErrQueryExecution, err)
	}

	return nil
}
