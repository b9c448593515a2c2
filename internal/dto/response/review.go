package response

import (
	"media-watchlist/internal/data/entity"
)

type ReviewResponse struct {
	ReviewID   int64   `json:"review_id"`
	UserID     int64   `json:"user_id"`
	MediaID    int64   `json:"media_id"`
	Rating     int     `json:"rating"`
	ReviewText *string `json:"review_text,omitempty"`
	Status     string  `json:"status"`
}

// Helper converter
func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ReviewID:   review.ReviewID,
		UserID:     review.UserID,
		MediaID:    review.MediaID,
		Rating:     review.Rating,
		ReviewText: review.ReviewText,
		Status:     string(review.Status),
	}
}
