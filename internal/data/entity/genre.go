package entity

type Genre struct {
	GenreID   int64  `db:"GenreId"`
	GenreName string `db:"GenreName"` // natural dedup key
}
