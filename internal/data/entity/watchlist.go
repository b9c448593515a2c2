package entity

// WatchlistEntry mirrors the review status per (UserId, MediaId); both rows
// are written in the same transaction so they cannot diverge.
type WatchlistEntry struct {
	WatchlistID int64       `db:"WatchlistId"`
	UserID      int64       `db:"UserId"`
	MediaID     int64       `db:"MediaId"`
	Status      WatchStatus `db:"Status"`
}

// WatchlistItem is the read model for a user's watchlist listing.
type WatchlistItem struct {
	MediaID     int64       `db:"MediaId"`
	MediaName   string      `db:"MediaName"`
	MediaType   string      `db:"MediaType"`
	ReleaseYear int         `db:"ReleaseYear"`
	Status      WatchStatus `db:"Status"`
	Rating      *int        `db:"Rating"`
}
