package entity

type User struct {
	UserID      int64  `db:"UserId"`
	FirstName   string `db:"FirstName"`
	LastName    string `db:"LastName"`
	ProfileName string `db:"ProfileName"` // natural dedup key
}
