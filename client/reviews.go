package client

import (
	"context"
	"net/http"
	"strings"

	"github.com/projxchange/marketplace-client/errs"
	"github.com/projxchange/marketplace-client/models"
)

// ReviewsPage is the public review listing for one project.
type ReviewsPage struct {
	Reviews []models.Review `json:"reviews"`
	Total   int             `json:"total"`
}

type submitReviewRequest struct {
	Rating     int    `json:"rating"`
	ReviewText string `json:"review_text"`
	IsApproved bool   `json:"is_approved"`
}

type projectsResponse struct {
	Data []models.Project `json:"data"`
}

// FetchReviews lists the reviews for a project. No session is required.
func (c *Client) FetchReviews(ctx context.Context, projectID string) (ReviewsPage, error) {
	var page ReviewsPage
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/reviews/" + projectID,
		action:   "load reviews",
		fallback: "Failed to load reviews",
		out:      &page,
	})
	return page, err
}

// SubmitReview posts a review for a project. Validation happens before any
// request is issued: text must be non-empty and within the length cap, rating
// within 1..5. Submissions always go in unapproved; an admin makes them
// visible.
func (c *Client) SubmitReview(ctx context.Context, projectID string, rating int, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return errs.NewValidationError("review_text", "Please enter your review")
	}
	if len(text) > models.MaxReviewLength {
		return errs.NewValidationError("review_text", "Review must be at most 1000 characters")
	}
	if rating < 1 || rating > 5 {
		return errs.NewValidationError("rating", "Rating must be between 1 and 5")
	}

	return c.do(ctx, request{
		method: http.MethodPost,
		path:   "/reviews/" + projectID,
		body: submitReviewRequest{
			Rating:     rating,
			ReviewText: text,
			IsApproved: false,
		},
		auth:     true,
		action:   "submit a review",
		fallback: "Failed to submit review",
	})
}

// FetchRatingStats retrieves the aggregate rating for a project. No session
// is required.
func (c *Client) FetchRatingStats(ctx context.Context, projectID string) (models.RatingStats, error) {
	var stats models.RatingStats
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/projects/" + projectID + "/ratings",
		action:   "load rating stats",
		fallback: "Failed to load rating stats",
		out:      &stats,
	})
	return stats, err
}

// FetchProjects retrieves the full project catalog.
func (c *Client) FetchProjects(ctx context.Context) ([]models.Project, error) {
	var resp projectsResponse
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/projects",
		auth:     true,
		action:   "browse projects",
		fallback: "Failed to load projects",
		out:      &resp,
	})
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}
