package request

type CreateReviewRequest struct {
	UserID     int64   `json:"user_id" validate:"required,min=1"`
	MediaID    int64   `json:"media_id" validate:"required,min=1"`
	Rating     int     `json:"rating" validate:"required,min=1,max=5"`
	ReviewText *string `json:"review_text,omitempty" validate:"omitempty,max=1000"`
	Status     string  `json:"status" validate:"required,oneof=Planning Watching Completed 'Havent Watched'"`
}

type UpdateReviewRequest struct {
	Rating     int     `json:"rating" validate:"required,min=1,max=5"`
	ReviewText *string `json:"review_text,omitempty" validate:"omitempty,max=1000"`
	Status     string  `json:"status" validate:"required,oneof=Planning Watching Completed 'Havent Watched'"`
}
