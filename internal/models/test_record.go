package models

type TestRecord struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	UserID        uint   `gorm:"index" json:"user_id"`
	TestName      string `gorm:"size:255;not null" json:"test_name"`
	DoctorName    string `gorm:"size:255;not null" json:"doctor_name"`
	TestForPerson string `gorm:"size:255;not null" json:"test_for_person"`
	Date          string `gorm:"not null" json:"date"`
	LabName       string `gorm:"size:255;not null" json:"lab_name"`
}

func (TestRecord) TableName() string {
	return "tests"
}
