package usecase

import (
	"context"
	"fmt"

	"media-watchlist/internal/data/entity"
	"media-watchlist/internal/data/repository"
	"media-watchlist/internal/dto/request"
	"media-watchlist/internal/dto/response"
	"media-watchlist/pkg/utils"

	"go.uber.org/zap"
)

type WatchlistService interface {
	// Submit resolves or creates the user, genre, platform and media named
	// by the request and upserts the review and watchlist entry, all inside
	// one transaction. Re-submitting the same entry converges instead of
	// duplicating rows.
	Submit(ctx context.Context, req *request.SubmitWatchlistEntryRequest) (*response.SubmitWatchlistEntryResponse, error)

	GetUserWatchlist(ctx context.Context, userID int64, req *request.PaginatedRequest) (*response.PaginatedResponse[response.WatchlistItemResponse], error)
}

type watchlistService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewWatchlistService(repo *repository.Repository, log *zap.Logger) WatchlistService {
	return &watchlistService{
		repo: repo,
		log:  log.With(zap.String("service", "watchlist")),
	}
}

func (s *watchlistService) Submit(ctx context.Context, req *request.SubmitWatchlistEntryRequest) (*response.SubmitWatchlistEntryResponse, error) {
	// Validation is a precondition: nothing touches the store until the
	// request is known to be well-formed.
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Submit validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	status := entity.WatchStatus(req.Status)
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, req.Status)
	}

	tx, err := s.repo.DB.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to begin submission transaction", zap.Error(err))
		return nil, fmt.Errorf("%w: begin: %v", ErrSubmission, err)
	}
	// No-op after a successful commit; otherwise nothing of the submission
	// remains visible.
	defer tx.Rollback(ctx)

	// Resolution order is fixed: media needs the genre and platform
	// identities, the review needs the user and media identities.
	userID, err := s.repo.User.ResolveID(ctx, tx, &entity.User{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		ProfileName: req.ProfileName,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSubmission, err)
	}

	genreID, err := s.repo.Genre.ResolveID(ctx, tx, req.GenreName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSubmission, err)
	}

	platformID, err := s.repo.Platform.ResolveID(ctx, tx, req.PlatformName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSubmission, err)
	}

	mediaID, err := s.repo.Media.ResolveID(ctx, tx, &entity.Media{
		MediaName:   req.MediaName,
		MediaType:   req.MediaType,
		ReleaseYear: req.ReleaseYear,
		GenreID:     genreID,
		PlatformID:  platformID,
		Description: req.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSubmission, err)
	}

	review := &entity.Review{
		UserID:     userID,
		MediaID:    mediaID,
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
		Status:     status,
	}
	created, err := s.repo.Review.Upsert(ctx, tx, review)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSubmission, err)
	}

	// The watchlist entry mirrors the review status; writing it in the same
	// transaction keeps the two tables from diverging.
	entry := &entity.WatchlistEntry{
		UserID:  userID,
		MediaID: mediaID,
		Status:  status,
	}
	if err := s.repo.Watchlist.Upsert(ctx, tx, entry); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSubmission, err)
	}

	if err := tx.Commit(ctx); err != nil {
		s.log.Error("Failed to commit submission transaction", zap.Error(err))
		return nil, fmt.Errorf("%w: commit: %v", ErrSubmission, err)
	}

	s.log.Info("Watchlist entry submitted",
		zap.Int64("user_id", userID),
		zap.Int64("media_id", mediaID),
		zap.Int64("review_id", review.ReviewID),
		zap.Bool("review_created", created),
		zap.String("profile_name", req.ProfileName),
		zap.String("media_name", req.MediaName),
	)

	return &response.SubmitWatchlistEntryResponse{
		UserID:        userID,
		MediaID:       mediaID,
		ReviewID:      review.ReviewID,
		ReviewCreated: created,
	}, nil
}

func (s *watchlistService) GetUserWatchlist(ctx context.Context, userID int64, req *request.PaginatedRequest) (*response.PaginatedResponse[response.WatchlistItemResponse], error) {
	items, err := s.repo.Watchlist.FindByUserID(ctx, userID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get user watchlist",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("%w: %v", ErrQueryExecution, err)
	}

	total, err := s.repo.Watchlist.CountByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to count user watchlist", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrQueryExecution, err)
	}

	itemResponses := make([]response.WatchlistItemResponse, len(items))
	for i, item := range items {
		itemResponses[i] = response.WatchlistItemToResponse(item)
	}

	return response.NewPaginatedResponse(itemResponses, req.Page, req.PerPage, total), nil
}
