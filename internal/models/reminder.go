package models

// Reminder keeps the table name "remainder" used by the existing
// clients and database.
type Reminder struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	UserID  uint   `gorm:"index;not null" json:"user_id"`
	MedName string `gorm:"not null" json:"med_name"`
	Dosage  string `gorm:"not null" json:"dosage"`
	MedType string `gorm:"not null" json:"med_type"`
	MedTime string `gorm:"not null" json:"med_time"`
}

func (Reminder) TableName() string {
	return "remainder"
}
