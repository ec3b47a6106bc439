package models

// User represents a registered account.
type User struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Email string `json:"email" gorm:"uniqueIndex;type:varchar(255)"`
	// Password holds the bcrypt hash, never the plaintext. No json tag value
	// other than "-" so it can never leak into a response.
	Password string `json:"-" gorm:"type:varchar(255)"`
}
