package request

// SubmitWatchlistEntryRequest bundles one full submission: profile identity,
// media descriptor, genre/platform names and the review content. Rating and
// status bounds are enforced here, before any store access.
type SubmitWatchlistEntryRequest struct {
	FirstName   string `json:"first_name" validate:"required,max=100"`
	LastName    string `json:"last_name" validate:"required,max=100"`
	ProfileName string `json:"profile_name" validate:"required,max=100"`

	MediaName   string  `json:"media_name" validate:"required,max=255"`
	MediaType   string  `json:"media_type" validate:"required,max=50"`
	ReleaseYear int     `json:"release_year" validate:"required,min=1800,max=2100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1000"`

	GenreName    string `json:"genre_name" validate:"required,max=100"`
	PlatformName string `json:"platform_name" validate:"required,max=100"`

	Rating     int     `json:"rating" validate:"required,min=1,max=5"`
	ReviewText *string `json:"review_text,omitempty" validate:"omitempty,max=1000"`
	Status     string  `json:"status" validate:"required,oneof=Planning Watching Completed 'Havent Watched'"`
}
