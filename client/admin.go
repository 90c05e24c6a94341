package client

import (
	"context"
	"net/http"

	"github.com/projxchange/marketplace-client/models"
)

// Admin operations require a bearer token belonging to an admin account.
// The backend enforces the role; the client only supplies the token.

type adminReviewsResponse struct {
	Reviews []models.Review `json:"reviews"`
}

type adminUsersResponse struct {
	Users []models.User `json:"users"`
}

type adminTransactionsResponse struct {
	Transactions []models.Transaction `json:"transactions"`
}

type reviewApprovalRequest struct {
	IsApproved bool `json:"is_approved"`
}

type userUpdateRequest struct {
	VerificationStatus string `json:"verification_status"`
	EmailVerified      bool   `json:"email_verified"`
}

// ProjectUpdate is the admin mutation applied to a listing.
type ProjectUpdate struct {
	Status     string `json:"status"`
	IsFeatured bool   `json:"is_featured"`
}

// AdminListReviews lists every review, approved or not, for moderation.
func (c *Client) AdminListReviews(ctx context.Context) ([]models.Review, error) {
	var resp adminReviewsResponse
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/admin/reviews",
		auth:     true,
		action:   "moderate reviews",
		fallback: "Failed to fetch reviews",
		out:      &resp,
	})
	if err != nil {
		return nil, err
	}
	return resp.Reviews, nil
}

// AdminSetReviewApproval approves or rejects one review.
func (c *Client) AdminSetReviewApproval(ctx context.Context, reviewID string, approved bool) error {
	return c.do(ctx, request{
		method:   http.MethodPatch,
		path:     "/admin/reviews/" + reviewID,
		body:     reviewApprovalRequest{IsApproved: approved},
		auth:     true,
		action:   "moderate reviews",
		fallback: "Failed to update review status",
	})
}

// AdminDeleteReview removes a review permanently.
func (c *Client) AdminDeleteReview(ctx context.Context, reviewID string) error {
	return c.do(ctx, request{
		method:   http.MethodDelete,
		path:     "/admin/reviews/" + reviewID,
		auth:     true,
		action:   "moderate reviews",
		fallback: "Failed to delete review",
	})
}

// AdminListUsers lists every platform account.
func (c *Client) AdminListUsers(ctx context.Context) ([]models.User, error) {
	var resp adminUsersResponse
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/admin/users",
		auth:     true,
		action:   "manage users",
		fallback: "Failed to fetch users",
		out:      &resp,
	})
	if err != nil {
		return nil, err
	}
	return resp.Users, nil
}

// AdminUpdateUser sets a user's verification state.
func (c *Client) AdminUpdateUser(ctx context.Context, userID, verificationStatus string, emailVerified bool) error {
	return c.do(ctx, request{
		method: http.MethodPatch,
		path:   "/admin/users/" + userID,
		body: userUpdateRequest{
			VerificationStatus: verificationStatus,
			EmailVerified:      emailVerified,
		},
		auth:     true,
		action:   "manage users",
		fallback: "Failed to update user",
	})
}

// AdminUpdateProject sets a listing's review status and featured flag.
func (c *Client) AdminUpdateProject(ctx context.Context, projectID string, update ProjectUpdate) error {
	return c.do(ctx, request{
		method:   http.MethodPatch,
		path:     "/admin/projects/" + projectID,
		body:     update,
		auth:     true,
		action:   "manage projects",
		fallback: "Failed to update project",
	})
}

// AdminListTransactions lists purchase records for the dashboard.
func (c *Client) AdminListTransactions(ctx context.Context) ([]models.Transaction, error) {
	var resp adminTransactionsResponse
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/admin/transactions",
		auth:     true,
		action:   "view transactions",
		fallback: "Failed to fetch transactions",
		out:      &resp,
	})
	if err != nil {
		return nil, err
	}
	return resp.Transactions, nil
}
