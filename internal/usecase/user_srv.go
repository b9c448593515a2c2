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

type UserService interface {
	CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error)
	GetUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
	GetUserByID(ctx context.Context, userID int64) (*response.UserResponse, error)
	UpdateUser(ctx context.Context, userID int64, req *request.UpdateUserRequest) (*response.UserResponse, error)
	DeleteUser(ctx context.Context, userID int64) error
}

type userService struct {
	repo repository.UserRepository
	log  *zap.Logger
}

func NewUserService(repo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create user validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	user := &entity.User{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		ProfileName: req.ProfileName,
	}

	id, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryExecution, err)
	}
	user.UserID = id

	s.log.Info("User created",
		zap.Int64("user_id", id),
		zap.String("profile_name", req.ProfileName),
	)

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) GetUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	users, err := s.repo.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryExecution, err)
	}

	total, err := s.repo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryExecution, err)
	}

	userResponses := make([]response.UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = response.UserToResponse(user)
	}

	return response.NewPaginatedResponse(userResponses, req.Page, req.PerPage, total), nil
}

func (s *userService) GetUserByID(ctx context.Context, userID int64) (*response.UserResponse, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryExecution, err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID int64, req *request.UpdateUserRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update user validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	user := &entity.User{
		UserID:      userID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		ProfileName: req.ProfileName,
	}

	if err := s.repo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
		}
		return nil, fmt.Errorf("%w: %v", ErrQueryExecution, err)
	}

	s.log.Info("User updated", zap.Int64("user_id", userID))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID int64) error {
	if err := s.repo.Delete(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: user %d", ErrNotFound, userID)
		}
		return fmt.Errorf("%w: %v", ErrQueryExecution, err)
	}

	return nil
}
