package storage

import (
	"errors"

	"rentahome/internal/models"
)

// ErrNotFound is returned when a record does not exist. ErrDuplicate is
// returned on a unique-constraint violation (one Account per email).
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

type Database interface {
	CreateAccount(account models.Account) (models.Account, error)
	GetOrCreateAccountByEmail(account models.Account) (models.Account, error)
	GetAccountByEmail(email string) (models.Account, error)
	GetAccountById(id string) (models.Account, error)
	UpdateProfileComplete(id string, complete bool) error
	SetAccountSuspended(id string, suspended bool) error

	CreateProperty(property models.Property) (models.Property, error)
	UpdateProperty(property models.Property) (models.Property, error)
	GetPropertyById(id string) (models.Property, error)
	GetVerifiedProperties(city string) ([]models.Property, error)
	GetPropertiesByOwner(ownerId string) ([]models.Property, error)
	GetPendingProperties() ([]models.Property, error)
	ReviewProperty(id, status, note string) (models.Property, error)
}

type Cache interface {
	GetVerifiedProperties(city string) ([]byte, error)
	PutVerifiedProperties(properties []models.Property, city string) error
	DeleteVerifiedProperties(city string)
}
