// database/migrate.go - Database Migration Runner
package database

import (
	"log"

	"bookbound/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RunMigrations runs all database migrations
func RunMigrations() {
	db := GetDB()
	log.Println("🔄 Running database migrations...")

	if err := db.AutoMigrate(
		&models.User{},
		&models.Streak{},
		&models.Activity{},
		&models.ThemedDay{},
		&models.DailyChallenge{},
		&models.SpicySurprise{},
		&models.UnlockedReward{},
	); err != nil {
		log.Fatalf("❌ Failed to run core migrations: %v", err)
	}

	log.Println("✅ Core migrations completed")

	if err := SeedReferenceData(db); err != nil {
		log.Fatalf("❌ Failed to seed reference data: %v", err)
	}

	createCoreIndexes()

	log.Println("✅ All migrations completed successfully")
}

// SeedReferenceData upserts the static themed-day table and reward
// catalog. Safe to run on every startup; rows are matched by slug.
func SeedReferenceData(db *gorm.DB) error {
	days := models.DefaultThemedDays()
	if err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "day_of_week", "theme_color", "icon", "description",
			"reading_points", "spicy_scene_points", "sharing_points",
			"exclusive_voice_lines", "exclusive_scripts",
		}),
	}).Create(&days).Error; err != nil {
		return err
	}

	catalog := models.DefaultRewardCatalog()
	if err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"content_type", "content_data", "rarity", "is_nsfw",
			"streak_days", "activity_points", "themed_day",
		}),
	}).Create(&catalog).Error; err != nil {
		return err
	}

	log.Printf("✅ Seeded %d themed days and %d reward definitions", len(days), len(catalog))
	return nil
}

// createCoreIndexes creates indexes for core tables
func createCoreIndexes() {
	db := GetDB()
	log.Println("Creating core indexes...")

	// User indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_username ON users(username)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_guest ON users(is_guest)")

	// Activity indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_activities_date ON activities(activity_date)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_activities_created ON activities(created_at DESC)")

	// Streak indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_streaks_user ON streaks(user_id)")

	// Challenge indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_challenges_date ON daily_challenges(challenge_date)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_challenges_active ON daily_challenges(is_active)")

	// Reward indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_unlocked_rewards_user ON unlocked_rewards(user_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_unlocked_rewards_claimed ON unlocked_rewards(is_claimed)")

	log.Println("✅ Core indexes created successfully")
}
