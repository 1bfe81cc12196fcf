package models

import "time"

// Doctor represents the doctors table. Doctor records are managed by the
// practitioner administration service; this backend only reads them.
type Doctor struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Picture   string    `gorm:"size:255" json:"picture,omitempty"`
	Email     string    `gorm:"size:255;uniqueIndex" json:"email"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName specifies the table name for Doctor model
func (Doctor) TableName() string {
	return "doctors"
}
