package models

import "time"

// User is a platform account as seen by the admin back-office.
type User struct {
	ID                 string    `json:"id"`
	FullName           string    `json:"full_name"`
	Email              string    `json:"email"`
	UserType           string    `json:"user_type"`
	Status             string    `json:"status"`
	VerificationStatus string    `json:"verification_status"`
	EmailVerified      bool      `json:"email_verified"`
	CreatedAt          time.Time `json:"created_at"`
}
