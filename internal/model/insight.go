package model

import "time"

// Insight is a user-submitted point of interest.
type Insight struct {
	ID           uint      `gorm:"primaryKey"`
	Title        string    `gorm:"size:128;not null"`
	Description  *string   `gorm:"size:1024"`
	Longitude    float64   `gorm:"not null;check:longitude_range_check,longitude >= -180 AND longitude <= 180"`
	Latitude     float64   `gorm:"not null;check:latitude_range_check,latitude >= -90 AND latitude <= 90"`
	Image        *string   `gorm:"size:128"`
	CreatedAt    time.Time `gorm:"column:created_date"`
	UpdatedAt    time.Time `gorm:"column:modified_date"`
	CreatorID    *uint     `gorm:"column:creator;index"`
	Category     *string   `gorm:"size:64;index"`
	Subcategory  *string   `gorm:"size:64;check:subcategory_check,subcategory IS NULL OR category IS NOT NULL"`
	ExternalLink *string   `gorm:"size:512"`
	Address      *string   `gorm:"size:128"`

	// Relations
	Creator *User `gorm:"foreignKey:CreatorID;constraint:OnDelete:SET NULL"`
}

// CreatorName returns the creator's username, or nil for anonymous insights.
func (i *Insight) CreatorName() *string {
	if i.Creator == nil {
		return nil
	}
	name := i.Creator.Username
	return &name
}

// RatingStats aggregates the non-null feedback ratings of one insight.
type RatingStats struct {
	Sum   int64
	Count int64
}
