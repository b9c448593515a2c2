package response

import (
	"media-watchlist/internal/data/entity"
)

// SubmitWatchlistEntryResponse reports the resolved identities of one
// submission so callers can tell which rows were reused.
type SubmitWatchlistEntryResponse struct {
	UserID        int64 `json:"user_id"`
	MediaID       int64 `json:"media_id"`
	ReviewID      int64 `json:"review_id"`
	ReviewCreated bool  `json:"review_created"`
}

type WatchlistItemResponse struct {
	MediaID     int64  `json:"media_id"`
	MediaName   string `json:"media_name"`
	MediaType   string `json:"media_type"`
	ReleaseYear int    `json:"release_year"`
	Status      string `json:"status"`
	Rating      *int   `json:"rating,omitempty"`
}

// Helper converter
func WatchlistItemToResponse(item *entity.WatchlistItem) WatchlistItemResponse {
	return WatchlistItemResponse{
		MediaID:     item.MediaID,
		MediaName:   item.MediaName,
		MediaType:   item.MediaType,
		ReleaseYear: item.ReleaseYear,
		Status:      string(item.Status),
		Rating:      item.Rating,
	}
}
