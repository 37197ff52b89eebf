// File: /database/database.go
package database

import (
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tampa-blades-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Warn),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Event{},
		&models.SkateSpot{},
		&models.SpotReview{},
		&models.SpotPhoto{},
		&models.GalleryPhoto{},
		&models.PhotoLike{},
		&models.PhotoComment{},
		&models.Message{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := addCustomIndexes(db); err != nil {
		return fmt.Errorf("failed to add custom indexes: %w", err)
	}

	if err := addDatabaseConstraints(db); err != nil {
		return fmt.Errorf("failed to add database constraints: %w", err)
	}

	return nil
}

func addCustomIndexes(db *gorm.DB) error {
	// Map-bounds queries filter approved spots by coordinate ranges
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_skate_spots_approved_coords ON skate_spots(approved, latitude, longitude)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for skate_spots coords: %v\n", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_skate_spots_rating ON skate_spots(rating DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for skate_spots rating: %v\n", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_events_approved_date ON events(approved, date)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for events: %v\n", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_messages_receiver_read ON messages(receiver_id, `read`)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for messages: %v\n", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_gallery_photos_public_created ON gallery_photos(is_public, created_at DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for gallery_photos: %v\n", err)
	}

	return nil
}

func addDatabaseConstraints(db *gorm.DB) error {
	// A user holds at most one like per photo
	if err := db.Exec("ALTER TABLE photo_likes ADD CONSTRAINT uk_photo_likes_photo_user UNIQUE (photo_id, user_id)").Error; err != nil {
		// Ignore error if constraint already exists
		fmt.Printf("Warning: Could not add unique constraint for photo_likes: %v\n", err)
	}

	// Review ratings stay within the 1-5 scale
	if err := db.Exec("ALTER TABLE spot_reviews ADD CONSTRAINT ck_spot_reviews_rating CHECK (rating >= 1 AND rating <= 5)").Error; err != nil {
		fmt.Printf("Warning: Could not add check constraint for spot_reviews: %v\n", err)
	}

	return nil
}

// SeedData populates the database with a bootstrap super admin and a sample
// spot for development. Skipped when users already exist.
func SeedData(db *gorm.DB) error {
	var userCount int64
	db.Model(&models.User{}).Count(&userCount)

	if userCount > 0 {
		fmt.Println("Database already has data, skipping seed")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		ID:       uuid.New().String(),
		Username: "admin",
		Email:    "admin@tampablades.com",
		Password: string(hash),
		Role:     models.RoleSuperAdmin,
		Verified: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		fmt.Printf("Warning: Could not create admin user: %v\n", err)
	}

	sampleSpot := models.SkateSpot{
		ID:          uuid.New().String(),
		Name:        "Tampa Skate Park",
		Type:        "park",
		Difficulty:  "intermediate",
		Latitude:    27.9506,
		Longitude:   -82.4572,
		Description: "Popular skate park with ramps, bowls, and street obstacles",
		Features:    models.StringSlice{"Lighting", "Water Fountain", "Restrooms", "Parking"},
		Hours:       "6 AM - 10 PM",
		Rating:      4.5,
		Reviews:     127,
		CrowdLevel:  "medium",
		Approved:    true,
	}
	if err := db.Create(&sampleSpot).Error; err != nil {
		fmt.Printf("Warning: Could not create sample spot %s: %v\n", sampleSpot.Name, err)
	}

	fmt.Println("Database seeded with bootstrap admin and sample spot")
	return nil
}
