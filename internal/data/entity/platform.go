package entity

type Platform struct {
	PlatformID   int64  `db:"PlatformId"`
	PlatformName string `db:"PlatformName"` // natural dedup key
}
