package entity

type WatchStatus string

const (
	StatusPlanning      WatchStatus = "Planning"
	StatusWatching      WatchStatus = "Watching"
	StatusCompleted     WatchStatus = "Completed"
	StatusHaventWatched WatchStatus = "Havent Watched"
)

// Valid reports whether s is one of the recognized watch statuses.
func (s WatchStatus) Valid() bool {
	switch s {
	case StatusPlanning, StatusWatching, StatusCompleted, StatusHaventWatched:
		return true
	}
	return false
}

// Review holds at most one row per (UserId, MediaId) pair; the resolver
// updates in place on re-submission.
type Review struct {
	ReviewID   int64       `db:"ReviewId"`
	UserID     int64       `db:"UserId"`
	MediaID    int64       `db:"MediaId"`
	Rating     int         `db:"Rating"` // 1-5
	ReviewText *string     `db:"ReviewText"`
	Status     WatchStatus `db:"Status"`
}
