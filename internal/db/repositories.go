package db

import "gorm.io/gorm"

type Repositories struct {
	Users       *UserRepository
	Medications *MedicationRepository
	Reminders   *ReminderRepository
	Reports     *ReportRepository
	TestRecords *TestRecordRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(database),
		Medications: NewMedicationRepository(database),
		Reminders:   NewReminderRepository(database),
		Reports:     NewReportRepository(database),
		TestRecords: NewTestRecordRepository(database),
	}
}
