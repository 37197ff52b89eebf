package repositories

import (
	"math"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tampa-blades-api/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(&models.User{}, &models.SkateSpot{}, &models.SpotReview{}, &models.SpotPhoto{})
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := models.User{
		ID:       uuid.New().String(),
		Username: username,
		Email:    username + "@example.com",
		Password: "hash",
		Role:     models.RoleUser,
		Verified: true,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return &user
}

func createTestSpot(t *testing.T, db *gorm.DB, name string, lat, lng float64, approved bool) *models.SkateSpot {
	t.Helper()

	spot := models.SkateSpot{
		ID:         uuid.New().String(),
		Name:       name,
		Type:       "park",
		Difficulty: "intermediate",
		Latitude:   lat,
		Longitude:  lng,
		Approved:   approved,
	}
	if err := db.Create(&spot).Error; err != nil {
		t.Fatalf("failed to create test spot: %v", err)
	}
	return &spot
}

func TestApplyRatingRunningMean(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSpotRepository(db)

	spot := createTestSpot(t, db, "Downtown Bowl", 27.95, -82.46, true)
	db.Model(spot).Updates(map[string]interface{}{"rating": 4.0, "reviews": 10})

	newRating, newReviews, err := repo.ApplyRating(spot.ID, 5)
	if err != nil {
		t.Fatalf("ApplyRating failed: %v", err)
	}

	if newReviews != 11 {
		t.Errorf("newReviews = %d, want 11", newReviews)
	}
	want := (4.0*10 + 5) / 11
	if math.Abs(newRating-want) > 1e-9 {
		t.Errorf("newRating = %v, want %v", newRating, want)
	}

	// The update must be persisted, not just returned.
	stored, err := repo.Get(spot.ID)
	if err != nil {
		t.Fatalf("Get after rating failed: %v", err)
	}
	if stored.Reviews != 11 || math.Abs(stored.Rating-want) > 1e-9 {
		t.Errorf("stored rating/reviews = %v/%d, want %v/11", stored.Rating, stored.Reviews, want)
	}
}

func TestApplyRatingFirstRating(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSpotRepository(db)

	spot := createTestSpot(t, db, "Fresh Spot", 27.95, -82.46, true)

	newRating, newReviews, err := repo.ApplyRating(spot.ID, 3)
	if err != nil {
		t.Fatalf("ApplyRating failed: %v", err)
	}
	if newRating != 3.0 || newReviews != 1 {
		t.Errorf("first rating = %v/%d, want 3.0/1", newRating, newReviews)
	}
}

func TestApplyRatingMissingSpot(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSpotRepository(db)

	if _, _, err := repo.ApplyRating("no-such-id", 5); err != ErrSpotNotFound {
		t.Errorf("ApplyRating on missing spot = %v, want ErrSpotNotFound", err)
	}
}

func TestListInBounds(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSpotRepository(db)

	inside := createTestSpot(t, db, "Inside", 27.95, -82.46, true)
	onEdge := createTestSpot(t, db, "On Edge", 28.00, -82.40, true)
	createTestSpot(t, db, "North Of", 28.01, -82.46, true)
	createTestSpot(t, db, "West Of", 27.95, -82.51, true)
	createTestSpot(t, db, "Unapproved Inside", 27.96, -82.45, false)

	spots, err := repo.ListInBounds(28.00, 27.90, -82.40, -82.50)
	if err != nil {
		t.Fatalf("ListInBounds failed: %v", err)
	}

	if len(spots) != 2 {
		t.Fatalf("got %d spots, want 2", len(spots))
	}
	found := map[string]bool{}
	for _, s := range spots {
		found[s.ID] = true
	}
	if !found[inside.ID] || !found[onEdge.ID] {
		t.Error("bounds query missed an in-bounds approved spot; boundary must be inclusive")
	}
}

func TestListApprovedOrderedByRating(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSpotRepository(db)

	low := createTestSpot(t, db, "Low", 27.90, -82.40, true)
	high := createTestSpot(t, db, "High", 27.91, -82.41, true)
	db.Model(low).Update("rating", 2.0)
	db.Model(high).Update("rating", 4.8)
	createTestSpot(t, db, "Pending", 27.92, -82.42, false)

	spots, err := repo.ListApproved()
	if err != nil {
		t.Fatalf("ListApproved failed: %v", err)
	}
	if len(spots) != 2 {
		t.Fatalf("got %d spots, want 2", len(spots))
	}
	if spots[0].ID != high.ID {
		t.Error("approved spots should be ordered best rated first")
	}
}

func TestAddReviewResyncsAggregate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSpotRepository(db)

	user := createTestUser(t, db, "reviewer")
	spot := createTestSpot(t, db, "Reviewed Spot", 27.95, -82.46, true)

	for _, rating := range []int{5, 3} {
		review := models.SpotReview{
			ID:      uuid.New().String(),
			SpotID:  spot.ID,
			UserID:  user.ID,
			Rating:  rating,
			Comment: "solid ledges",
		}
		if err := repo.AddReview(&review); err != nil {
			t.Fatalf("AddReview failed: %v", err)
		}
	}

	stored, err := repo.Get(spot.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if stored.Reviews != 2 {
		t.Errorf("reviews = %d, want 2", stored.Reviews)
	}
	if math.Abs(stored.Rating-4.0) > 1e-9 {
		t.Errorf("rating = %v, want 4.0", stored.Rating)
	}

	reviews, err := repo.ListReviews(spot.ID)
	if err != nil {
		t.Fatalf("ListReviews failed: %v", err)
	}
	if len(reviews) != 2 {
		t.Fatalf("got %d reviews, want 2", len(reviews))
	}
	if reviews[0].Username != "reviewer" {
		t.Errorf("review username = %q, want reviewer", reviews[0].Username)
	}
}
