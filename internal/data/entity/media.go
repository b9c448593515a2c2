package entity

// Media is deduplicated on the composite (MediaName, MediaType, ReleaseYear).
type Media struct {
	MediaID     int64   `db:"MediaId"`
	MediaName   string  `db:"MediaName"`
	MediaType   string  `db:"MediaType"`
	ReleaseYear int     `db:"ReleaseYear"`
	GenreID     int64   `db:"GenreId"`
	PlatformID  int64   `db:"PlatformId"`
	Description *string `db:"Description"`
}
