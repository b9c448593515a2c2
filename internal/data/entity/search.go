package entity

// SearchCategory selects which search template runs. Anything outside this
// enumeration is rejected at the boundary.
type SearchCategory string

const (
	SearchCategoryMedia SearchCategory = "media"
	SearchCategoryUser  SearchCategory = "user"
	SearchCategoryGenre SearchCategory = "genre"
)

// SearchSort keys match the selector values the frontend sends. An
// unrecognized key degrades to no explicit ordering.
type SearchSort string

const (
	SortNameAsc    SearchSort = "az"
	SortNameDesc   SearchSort = "za"
	SortRatingAsc  SearchSort = "rating_asc"
	SortRatingDesc SearchSort = "rating_desc"
	SortYearAsc    SearchSort = "year_asc"
	SortYearDesc   SearchSort = "year_desc"
	SortCountAsc   SearchSort = "count_asc"
	SortCountDesc  SearchSort = "count_desc"
)

// MediaSearchResult is one media row with its review aggregates.
type MediaSearchResult struct {
	MediaID      int64    `db:"MediaId"`
	MediaName    string   `db:"MediaName"`
	MediaType    string   `db:"MediaType"`
	ReleaseYear  int      `db:"ReleaseYear"`
	GenreName    *string  `db:"GenreName"`
	PlatformName *string  `db:"PlatformName"`
	AvgRating    *float64 `db:"AvgRating"`
	ReviewCount  int64    `db:"ReviewCount"`
}

// UserSearchResult is one user row with its review count.
type UserSearchResult struct {
	UserID      int64  `db:"UserId"`
	FirstName   string `db:"FirstName"`
	LastName    string `db:"LastName"`
	ProfileName string `db:"ProfileName"`
	ReviewCount int64  `db:"ReviewCount"`
}

// GenreSearchResult is one genre row with media/rating aggregates.
type GenreSearchResult struct {
	GenreID    int64    `db:"GenreId"`
	GenreName  string   `db:"GenreName"`
	MediaCount int64    `db:"MediaCount"`
	AvgRating  *float64 `db:"AvgRating"`
}
