// File: /repositories/spot_repository.go
package repositories

import (
	"errors"

	"gorm.io/gorm"

	"tampa-blades-api/models"
)

var ErrSpotNotFound = errors.New("skate spot not found")

type SpotRepository struct {
	db *gorm.DB
}

func NewSpotRepository(db *gorm.DB) *SpotRepository {
	return &SpotRepository{db: db}
}

// ListApproved returns approved spots ordered by rating.
func (r *SpotRepository) ListApproved() ([]models.SkateSpot, error) {
	var spots []models.SkateSpot
	err := r.db.Where("approved = ?", true).Order("rating DESC").Find(&spots).Error
	return spots, err
}

// ListApprovedByType returns approved spots of one type ordered by rating.
func (r *SpotRepository) ListApprovedByType(spotType string) ([]models.SkateSpot, error) {
	var spots []models.SkateSpot
	err := r.db.Where("type = ? AND approved = ?", spotType, true).
		Order("rating DESC").Find(&spots).Error
	return spots, err
}

// ListInBounds returns approved spots inside a map viewport. Bounds are
// inclusive on all four edges.
func (r *SpotRepository) ListInBounds(north, south, east, west float64) ([]models.SkateSpot, error) {
	var spots []models.SkateSpot
	err := r.db.Where("approved = ?", true).
		Where("latitude BETWEEN ? AND ?", south, north).
		Where("longitude BETWEEN ? AND ?", west, east).
		Order("rating DESC").
		Find(&spots).Error
	return spots, err
}

// ListPending returns unapproved spots, newest first.
func (r *SpotRepository) ListPending() ([]models.SkateSpot, error) {
	var spots []models.SkateSpot
	err := r.db.Where("approved = ?", false).Order("created_at DESC").Find(&spots).Error
	return spots, err
}

func (r *SpotRepository) Get(id string) (*models.SkateSpot, error) {
	var spot models.SkateSpot
	if err := r.db.First(&spot, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSpotNotFound
		}
		return nil, err
	}
	return &spot, nil
}

func (r *SpotRepository) Create(spot *models.SkateSpot) error {
	return r.db.Create(spot).Error
}

func (r *SpotRepository) Approve(id string) error {
	return r.db.Model(&models.SkateSpot{}).Where("id = ?", id).
		Update("approved", true).Error
}

func (r *SpotRepository) Delete(id string) error {
	return r.db.Delete(&models.SkateSpot{}, "id = ?", id).Error
}

// ApplyRating folds one rating into the spot's running mean and bumps the
// review counter. The two writes land in one UPDATE, but the read-modify-write
// pair is not guarded against concurrent raters.
func (r *SpotRepository) ApplyRating(id string, rating int) (newRating float64, newReviews int, err error) {
	spot, err := r.Get(id)
	if err != nil {
		return 0, 0, err
	}

	newReviews = spot.Reviews + 1
	newRating = (spot.Rating*float64(spot.Reviews) + float64(rating)) / float64(newReviews)

	err = r.db.Model(&models.SkateSpot{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"rating":  newRating,
			"reviews": newReviews,
		}).Error
	if err != nil {
		return 0, 0, err
	}
	return newRating, newReviews, nil
}

// AddReview inserts a review row, then resynchronizes the parent spot's
// rating and review count from the full review aggregate. Note this differs
// from ApplyRating, which folds single ratings into the running mean without
// creating review rows; spots rated through both paths can drift.
func (r *SpotRepository) AddReview(review *models.SpotReview) error {
	if err := r.db.Create(review).Error; err != nil {
		return err
	}

	var agg struct {
		AvgRating   float64
		ReviewCount int64
	}
	err := r.db.Model(&models.SpotReview{}).
		Select("AVG(rating) as avg_rating, COUNT(*) as review_count").
		Where("spot_id = ?", review.SpotID).
		Scan(&agg).Error
	if err != nil {
		// Review row exists; the parent resync is best-effort
		return nil
	}

	r.db.Model(&models.SkateSpot{}).Where("id = ?", review.SpotID).
		Updates(map[string]interface{}{
			"rating":  agg.AvgRating,
			"reviews": agg.ReviewCount,
		})
	return nil
}

// ListReviews returns a spot's reviews joined with usernames, newest first.
func (r *SpotRepository) ListReviews(spotID string) ([]models.SpotReviewWithAuthor, error) {
	var reviews []models.SpotReviewWithAuthor
	err := r.db.Model(&models.SpotReview{}).
		Select("spot_reviews.*, users.username").
		Joins("JOIN users ON spot_reviews.user_id = users.id").
		Where("spot_reviews.spot_id = ?", spotID).
		Order("spot_reviews.created_at DESC").
		Scan(&reviews).Error
	return reviews, err
}

func (r *SpotRepository) AddPhoto(photo *models.SpotPhoto) error {
	return r.db.Create(photo).Error
}

// ListPhotos returns a spot's photos, newest first.
func (r *SpotRepository) ListPhotos(spotID string) ([]models.SpotPhoto, error) {
	var photos []models.SpotPhoto
	err := r.db.Where("spot_id = ?", spotID).Order("created_at DESC").Find(&photos).Error
	return photos, err
}
