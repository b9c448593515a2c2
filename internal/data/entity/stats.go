package entity

// Read models for the fixed reporting queries.

type TopRatedMedia struct {
	MediaType string  `db:"MediaType"`
	MediaName string  `db:"MediaName"`
	AvgRating float64 `db:"AvgRating"`
}

type TopUserCompleted struct {
	FirstName string `db:"FirstName"`
	LastName  string `db:"LastName"`
	MediaDone int64  `db:"media_done"`
}

type TopMediaCompletions struct {
	MediaName       string `db:"MediaName"`
	UserCompletions int64  `db:"user_completions"`
}

type GenreAvgRating struct {
	GenreName string  `db:"GenreName"`
	AvgRating float64 `db:"avg_rating"`
}

type LowRatedRecent struct {
	MediaName   string `db:"MediaName"`
	MediaType   string `db:"MediaType"`
	ReleaseYear int    `db:"ReleaseYear"`
	Rating      int    `db:"Rating"`
}
