package response

import (
	"media-watchlist/internal/data/entity"
)

type MediaSearchResponse struct {
	MediaID      int64    `json:"media_id"`
	MediaName    string   `json:"media_name"`
	MediaType    string   `json:"media_type"`
	ReleaseYear  int      `json:"release_year"`
	GenreName    *string  `json:"genre_name,omitempty"`
	PlatformName *string  `json:"platform_name,omitempty"`
	AvgRating    *float64 `json:"avg_rating,omitempty"`
	ReviewCount  int64    `json:"review_count"`
}

type UserSearchResponse struct {
	UserID      int64  `json:"user_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	ProfileName string `json:"profile_name"`
	ReviewCount int64  `json:"review_count"`
}

type GenreSearchResponse struct {
	GenreID    int64    `json:"genre_id"`
	GenreName  string   `json:"genre_name"`
	MediaCount int64    `json:"media_count"`
	AvgRating  *float64 `json:"avg_rating,omitempty"`
}

func MediaSearchToResponse(res *entity.MediaSearchResult) MediaSearchResponse {
	return MediaSearchResponse{
		MediaID:      res.MediaID,
		MediaName:    res.MediaName,
		MediaType:    res.MediaType,
		ReleaseYear:  res.ReleaseYear,
		GenreName:    res.GenreName,
		PlatformName: res.PlatformName,
		AvgRating:    res.AvgRating,
		ReviewCount:  res.ReviewCount,
	}
}

func UserSearchToResponse(res *entity.UserSearchResult) UserSearchResponse {
	return UserSearchResponse{
		UserID:      res.UserID,
		FirstName:   res.FirstName,
		LastName:    res.LastName,
		ProfileName: res.ProfileName,
		ReviewCount: res.ReviewCount,
	}
}

func GenreSearchToResponse(res *entity.GenreSearchResult) GenreSearchResponse {
	return GenreSearchResponse{
		GenreID:    res.GenreID,
		GenreName:  res.GenreName,
		MediaCount: res.MediaCount,
		AvgRating:  res.AvgRating,
	}
}
