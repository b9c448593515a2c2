package response

type TopRatedMediaResponse struct {
	MediaType string  `json:"media_type"`
	MediaName string  `json:"media_name"`
	AvgRating float64 `json:"avg_rating"`
}

type TopUserCompletedResponse struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	MediaDone int64  `json:"media_done"`
}

type TopMediaCompletionsResponse struct {
	MediaName       string `json:"media_name"`
	UserCompletions int64  `json:"user_completions"`
}

type GenreAvgRatingResponse struct {
	GenreName string  `json:"genre_name"`
	AvgRating float64 `json:"avg_rating"`
}

type LowRatedRecentResponse struct {
	MediaName   string `json:"media_name"`
	MediaType   string `json:"media_type"`
	ReleaseYear int    `json:"release_year"`
	Rating      int    `json:"rating"`
}
