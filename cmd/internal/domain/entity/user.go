package entity

// User is the only record kept by the service.
// Timestamps are UTC epoch millis.
type User struct {
	ID        string `gorm:"primaryKey;type:text"`
	Name      string `gorm:"not null"`
	Email     string `gorm:"not null;uniqueIndex"`
	Admin     bool   `gorm:"not null;default:false"`
	CreatedAt int64  `gorm:"not null;autoCreateTime:false"`
	UpdatedAt int64  `gorm:"not null;autoUpdateTime:false"`
}

// Clone returns a detached copy, so callers never share a record with the store.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	cp := *u
	return &cp
}
