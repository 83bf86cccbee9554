package model

import "time"

// Feedback is a rating and/or comment left on an insight.
type Feedback struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    *uint     `gorm:"index"`
	InsightID uint      `gorm:"not null;index"`
	Rating    *int      `gorm:"check:check_rating_range,rating BETWEEN 1 AND 5 OR rating IS NULL"`
	Comment   *string   `gorm:"size:512"`
	CreatedAt time.Time `gorm:"column:created_date"`
	UpdatedAt time.Time `gorm:"column:modified_date"`

	// Relations
	User    *User    `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
	Insight *Insight `gorm:"foreignKey:InsightID;constraint:OnDelete:CASCADE"`
}

// AuthorName returns the author's username, or nil once the author is gone.
func (f *Feedback) AuthorName() *string {
	if f.User == nil {
		return nil
	}
	name := f.User.Username
	return &name
}
