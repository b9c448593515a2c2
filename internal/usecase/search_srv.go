package usecase

import (
	"context"
	"fmt"
	"strings"

	"media-watchlist/internal/data/entity"
	"media-watchlist/internal/data/repository"
	"media-watchlist/internal/dto/request"
	"media-watchlist/internal/dto/response"

	"go.uber.org/zap"
)

type SearchService interface {
	// Search runs the category's fixed template with the free text bound as
	// the only parameter. An unrecognized sort key degrades to no explicit
	// ordering; an unrecognized category is rejected.
	Search(ctx context.Context, req *request.SearchRequest) (any, error)
}

type searchService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewSearchService(repo *repository.Repository, log *zap.Logger) SearchService {
	return &searchService{
		repo: repo,
		log:  log.With(zap.String("service", "search")),
	}
}

func (s *searchService) Search(ctx context.Context, req *request.SearchRequest) (any, error) {
	category := entity.SearchCategory(strings.ToLower(strings.TrimSpace(req.Category)))
	sort := entity.SearchSort(req.Sort)

	switch category {
	case entity.SearchCategoryMedia:
		rows, err := s.repo.Search.SearchMedia(ctx, req.Query, sort)
		if err != nil {
			s.log.Error("Media search failed", zap.Error(err), zap.String("query", req.Query))
			return nil, fmt.Errorf("%w: %v", ErrQueryExecution, err)
		}
		results := make([]response.MediaSearchResponse, len(rows))
		for i, row := range rows {
			results[i] = response.MediaSearchToResponse(row)
		}
		return results, nil

	case entity.SearchCategoryUser:
		rows, err := s.repo.Search.SearchUsers(ctx, req.Query, sort)
		if err != nil {
			s.log.Error("User search failed", zap.Error(err), zap.String("query", req.Query))
			return nil, fmt.Errorf("%w: %v", ErrQueryExecution, err)
		}
		results := make([]response.UserSearchResponse, len(rows))
		for i, row := range rows {
			results[i] = response.UserSearchToResponse(row)
		}
		return results, nil

	case entity.SearchCategoryGenre:
		rows, err := s.repo.Search.SearchGenres(ctx, req.Query, sort)
		if err != nil {
			s.log.Error("Genre search failed", zap.Error(err), zap.String("query", req.Query))
			return nil, fmt.Errorf("%w: %v", ErrQueryExecution, err)
		}
		results := make([]response.GenreSearchResponse, len(rows))
		for i, row := range rows {
			results[i] = response.GenreSearchToResponse(row)
		}
		return results, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, req.Category)
	}
}
