// file: internals/seeds/seeds.go
package seeds

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	planModel "gymku_backend/internals/features/membership/plans/model"
	seriesModel "gymku_backend/internals/features/schedule/series/model"
	studentModel "gymku_backend/internals/features/users/students/model"
	trainerModel "gymku_backend/internals/features/users/trainers/model"
	helper "gymku_backend/internals/helpers"
)

// RunSeeds mengisi data demo: trainer, student, plan, dan beberapa
// series. Idempoten lewat cek email/slug sebelum insert.
func RunSeeds(db *gorm.DB) {
	seedTrainers(db)
	seedStudents(db)
	seedPlans(db)
	seedSeries(db)
}

func seedTrainers(db *gorm.DB) {
	rows := []trainerModel.TrainerModel{
		{TrainerName: "Andi Prasetyo", TrainerEmail: "andi@gymku.id"},
		{TrainerName: "Sari Wulandari", TrainerEmail: "sari@gymku.id"},
	}
	for _, r := range rows {
		var count int64
		db.Model(&trainerModel.TrainerModel{}).
			Where("trainer_email = ?", r.TrainerEmail).
			Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&r).Error; err != nil {
			log.Printf("[SEED] trainer %s gagal: %v", r.TrainerEmail, err)
		}
	}
}

func seedStudents(db *gorm.DB) {
	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia123"), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[SEED] bcrypt gagal: %v", err)
		return
	}
	rows := []studentModel.StudentModel{
		{StudentName: "Budi Santoso", StudentEmail: "budi@example.com", StudentPassword: string(hash)},
		{StudentName: "Rina Maulida", StudentEmail: "rina@example.com", StudentPassword: string(hash)},
	}
	for _, r := range rows {
		var count int64
		db.Model(&studentModel.StudentModel{}).
			Where("student_email = ?", r.StudentEmail).
			Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&r).Error; err != nil {
			log.Printf("[SEED] student %s gagal: %v", r.StudentEmail, err)
		}
	}
}

func seedPlans(db *gorm.DB) {
	rows := []planModel.MembershipPlanModel{
		{
			MembershipPlanName:         "Basic",
			MembershipPlanSlug:         "basic",
			MembershipPlanMaxDays:      2,
			MembershipPlanDurationDays: 30,
			MembershipPlanPrice:        150000,
			MembershipPlanPerks:        []string{"akses gym", "2 hari kelas per minggu"},
		},
		{
			MembershipPlanName:         "Pro",
			MembershipPlanSlug:         "pro",
			MembershipPlanMaxDays:      5,
			MembershipPlanDurationDays: 30,
			MembershipPlanPrice:        300000,
			MembershipPlanPerks:        []string{"akses gym", "5 hari kelas per minggu", "locker"},
		},
	}
	for _, r := range rows {
		var count int64
		db.Model(&planModel.MembershipPlanModel{}).
			Where("membership_plan_slug = ?", r.MembershipPlanSlug).
			Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&r).Error; err != nil {
			log.Printf("[SEED] plan %s gagal: %v", r.MembershipPlanSlug, err)
		}
	}
}

func seedSeries(db *gorm.DB) {
	var trainer trainerModel.TrainerModel
	if err := db.Where("trainer_email = ?", "andi@gymku.id").First(&trainer).Error; err != nil {
		log.Printf("[SEED] trainer untuk series tidak ditemukan: %v", err)
		return
	}

	rows := []seriesModel.ClassSeriesModel{
		{
			ClassSeriesTrainerID:     trainer.TrainerID,
			ClassSeriesName:          "Yoga Basics",
			ClassSeriesDayOfWeek:     5, // Jumat
			ClassSeriesStartTime:     "09:00",
			ClassSeriesDurationMin:   60,
			ClassSeriesEffectiveFrom: time.Now().AddDate(0, -1, 0),
		},
		{
			ClassSeriesTrainerID:     trainer.TrainerID,
			ClassSeriesName:          "HIIT Cardio",
			ClassSeriesDayOfWeek:     1, // Senin
			ClassSeriesStartTime:     "18:00",
			ClassSeriesDurationMin:   45,
			ClassSeriesEffectiveFrom: time.Now().AddDate(0, -1, 0),
		},
	}
	for _, r := range rows {
		slug := helper.Slugify(r.ClassSeriesName, 100)
		var count int64
		db.Model(&seriesModel.ClassSeriesModel{}).
			Where("class_series_trainer_id = ? AND class_series_day_of_week = ?", r.ClassSeriesTrainerID, r.ClassSeriesDayOfWeek).
			Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&r).Error; err != nil {
			log.Printf("[SEED] series %s gagal: %v", slug, err)
		}
	}
}
