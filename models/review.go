package models

import "time"

// MaxReviewLength caps review text, matching the submission form limit.
const MaxReviewLength = 1000

// UserSummary is the reviewer snapshot embedded in a review.
type UserSummary struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// ReviewProject is the minimal project snapshot attached to reviews in the
// admin moderation listing.
type ReviewProject struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Review is a student review of a project. Reviews are created unapproved and
// become visible once an admin approves them.
type Review struct {
	ID         string         `json:"id"`
	ProjectID  string         `json:"project_id"`
	UserID     string         `json:"user_id"`
	Rating     int            `json:"rating"`
	ReviewText string         `json:"review_text"`
	IsApproved bool           `json:"is_approved"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	User       UserSummary    `json:"user"`
	Project    *ReviewProject `json:"project,omitempty"`
}

// RatingStats is the aggregate rating payload for a project.
type RatingStats struct {
	AverageRating      float64        `json:"average_rating"`
	TotalRatings       int            `json:"total_ratings"`
	RatingDistribution map[string]int `json:"rating_distribution"`
}
