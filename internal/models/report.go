package models

type Report struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	UserID     uint    `gorm:"index" json:"user_id"`
	ReportName string  `gorm:"size:255;not null" json:"report_name"`
	DoctorName string  `gorm:"size:255;not null" json:"doctor_name"`
	ReportDate string  `gorm:"not null" json:"report_date"`
	LabName    string  `gorm:"size:255;not null" json:"lab_name"`
	PDFPath    *string `gorm:"size:255" json:"pdf_path"`
}

func (Report) TableName() string {
	return "reports"
}
