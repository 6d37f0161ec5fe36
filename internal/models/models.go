package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const (
	RoleUser  = "user"
	RoleOwner = "owner"
	RoleAdmin = "admin"
)

const (
	StatusPending  = "pending"
	StatusVerified = "verified"
	StatusRejected = "rejected"
)

// ValidReviewStatus reports whether a status is one an admin review may
// assign. Pending is only ever set at creation, never by review.
func ValidReviewStatus(status string) bool {
	return status == StatusVerified || status == StatusRejected
}

type CustomClaims struct {
	UserId string `json:"userId"`
	jwt.RegisteredClaims
}

type Account struct {
	Id              string    `json:"id"`
	Email           string    `json:"email"`
	Name            string    `json:"name"`
	PasswordHash    string    `json:"-"`
	Phone           string    `json:"phone"`
	Address         string    `json:"address"`
	Role            string    `json:"role"`
	Suspended       bool      `json:"suspended"`
	ProfileComplete bool      `json:"profileComplete"`
	CreatedAt       time.Time `json:"created_at"`
}

// CheckProfileComplete recomputes the derived flag from the current profile
// fields. Callers must not trust a previously stored value.
func (a *Account) CheckProfileComplete() bool {
	return a.Name != "" && a.Phone != "" && a.Address != ""
}

// AccountView is the projection of an Account returned by the auth
// endpoints. The password hash never crosses this boundary.
type AccountView struct {
	Id              string `json:"id"`
	Email           string `json:"email"`
	Name            string `json:"name"`
	ProfileComplete bool   `json:"profileComplete"`
}

func (a *Account) View() AccountView {
	return AccountView{
		Id:              a.Id,
		Email:           a.Email,
		Name:            a.Name,
		ProfileComplete: a.ProfileComplete,
	}
}

type Property struct {
	Id               string    `json:"id"`
	OwnerId          string    `json:"ownerId"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	City             string    `json:"city"`
	Address          string    `json:"address"`
	PricePerNight    int64     `json:"pricePerNight"`
	Status           string    `json:"status"`
	VerificationNote string    `json:"verificationNote,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	ReviewedAt       time.Time `json:"reviewed_at,omitempty"`
}

type AuthResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Token   string      `json:"token,omitempty"`
	User    AccountView `json:"user"`
}
