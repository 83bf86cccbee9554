package model

// ApiKey is a bearer credential. Only the SHA-256 digest of the token is kept.
type ApiKey struct {
	KeyHash string `gorm:"column:key;size:64;primaryKey"`
	UserID  *uint  `gorm:"uniqueIndex"`
	Admin   bool   `gorm:"default:false"`

	// Relations
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName keeps the table name stable regardless of the Go type name.
func (ApiKey) TableName() string {
	return "api_keys"
}
