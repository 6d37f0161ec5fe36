package postgres

import (
	"database/sql"
	"errors"
	"time"

	"rentahome/internal/models"
	"rentahome/internal/storage"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Storage struct {
	Db *sql.DB
}

func New(databaseURL string) (*Storage, error) {
	database, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, err
	}

	if err := database.Ping(); err != nil {
		return nil, err
	}

	return &Storage{Db: database}, nil
}

const accountColumns = `id, email, name, password_hash, phone, address, role, suspended, profile_complete, created_at`

func (s *Storage) scanAccount(row *sql.Row) (models.Account, error) {
	var account models.Account
	err := row.Scan(&account.Id, &account.Email, &account.Name, &account.PasswordHash,
		&account.Phone, &account.Address, &account.Role, &account.Suspended,
		&account.ProfileComplete, &account.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return account, storage.ErrNotFound
	}

	return account, err
}

func (s *Storage) CreateAccount(account models.Account) (models.Account, error) {
	account.Id = uuid.New().String()
	account.CreatedAt = time.Now().UTC()

	if account.Role == "" {
		account.Role = models.RoleUser
	}

	query := `INSERT INTO accounts (id, email, name, password_hash, phone, address, role, suspended, profile_complete, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := s.Db.Exec(query, account.Id, account.Email, account.Name, account.PasswordHash,
		account.Phone, account.Address, account.Role, account.Suspended,
		account.ProfileComplete, account.CreatedAt)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == `23505` {
		return account, storage.ErrDuplicate
	}

	if err != nil {
		return account, err
	}

	return account, nil
}

// GetOrCreateAccountByEmail inserts the account and falls back to reading
// the existing row when the unique email index reports a conflict. Two
// concurrent first-time logins for the same email therefore create at most
// one account.
func (s *Storage) GetOrCreateAccountByEmail(account models.Account) (models.Account, error) {
	account.Id = uuid.New().String()
	account.CreatedAt = time.Now().UTC()

	if account.Role == "" {
		account.Role = models.RoleUser
	}

	query := `INSERT INTO accounts (id, email, name, password_hash, phone, address, role, suspended, profile_complete, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	ON CONFLICT (email) DO NOTHING
	RETURNING id`

	err := s.Db.QueryRow(query, account.Id, account.Email, account.Name, account.PasswordHash,
		account.Phone, account.Address, account.Role, account.Suspended,
		account.ProfileComplete, account.CreatedAt).Scan(&account.Id)

	if errors.Is(err, sql.ErrNoRows) {
		return s.GetAccountByEmail(account.Email)
	}

	if err != nil {
		return account, err
	}

	return account, nil
}

func (s *Storage) GetAccountByEmail(email string) (models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email = $1`
	return s.scanAccount(s.Db.QueryRow(query, email))
}

func (s *Storage) GetAccountById(id string) (models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	return s.scanAccount(s.Db.QueryRow(query, id))
}

func (s *Storage) UpdateProfileComplete(id string, complete bool) error {
	query := `UPDATE accounts SET profile_complete = $1 WHERE id = $2`
	_, err := s.Db.Exec(query, complete, id)

	return err
}

func (s *Storage) SetAccountSuspended(id string, suspended bool) error {
	query := `UPDATE accounts SET suspended = $1 WHERE id = $2`
	result, err := s.Db.Exec(query, suspended, id)
	if err != nil {
		return err
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return storage.ErrNotFound
	}

	return nil
}

const propertyColumns = `id, owner_id, title, description, city, address, price_per_night, status, verification_note, created_at, reviewed_at`

func scanProperty(row interface{ Scan(...interface{}) error }) (models.Property, error) {
	var property models.Property
	var note sql.NullString
	var reviewedAt sql.NullTime

	err := row.Scan(&property.Id, &property.OwnerId, &property.Title, &property.Description,
		&property.City, &property.Address, &property.PricePerNight, &property.Status,
		&note, &property.CreatedAt, &reviewedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return property, storage.ErrNotFound
	}

	property.VerificationNote = note.String
	if reviewedAt.Valid {
		property.ReviewedAt = reviewedAt.Time
	}

	return property, err
}

func (s *Storage) CreateProperty(property models.Property) (models.Property, error) {
	property.Id = uuid.New().String()
	property.Status = models.StatusPending
	property.CreatedAt = time.Now().UTC()

	query := `INSERT INTO properties (id, owner_id, title, description, city, address, price_per_night, status, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := s.Db.Exec(query, property.Id, property.OwnerId, property.Title, property.Description,
		property.City, property.Address, property.PricePerNight, property.Status, property.CreatedAt)

	return property, err
}

// UpdateProperty rewrites the owner-editable fields and sends the listing
// back to pending for re-review.
func (s *Storage) UpdateProperty(property models.Property) (models.Property, error) {
	query := `UPDATE properties
	SET title = $1, description = $2, city = $3, address = $4, price_per_night = $5, status = $6, verification_note = NULL
	WHERE id = $7
	RETURNING ` + propertyColumns

	row := s.Db.QueryRow(query, property.Title, property.Description, property.City,
		property.Address, property.PricePerNight, models.StatusPending, property.Id)

	return scanProperty(row)
}

func (s *Storage) GetPropertyById(id string) (models.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1`
	return scanProperty(s.Db.QueryRow(query, id))
}

func (s *Storage) queryProperties(query string, args ...interface{}) ([]models.Property, error) {
	rows, err := s.Db.Query(query, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var properties []models.Property

	for rows.Next() {
		property, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}

		properties = append(properties, property)
	}

	return properties, rows.Err()
}

func (s *Storage) GetVerifiedProperties(city string) ([]models.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE status = $1`
	args := []interface{}{models.StatusVerified}

	if city != "" {
		query += ` AND city = $2`
		args = append(args, city)
	}

	query += ` ORDER BY created_at DESC`

	return s.queryProperties(query, args...)
}

func (s *Storage) GetPropertiesByOwner(ownerId string) ([]models.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE owner_id = $1 ORDER BY created_at DESC`
	return s.queryProperties(query, ownerId)
}

func (s *Storage) GetPendingProperties() ([]models.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE status = $1 ORDER BY created_at`
	return s.queryProperties(query, models.StatusPending)
}

// ReviewProperty is the only write path that moves a listing out of
// pending. Re-review between verified and rejected goes through here too.
func (s *Storage) ReviewProperty(id, status, note string) (models.Property, error) {
	query := `UPDATE properties
	SET status = $1, verification_note = NULLIF($2, ''), reviewed_at = $3
	WHERE id = $4
	RETURNING ` + propertyColumns

	return scanProperty(s.Db.QueryRow(query, status, note, time.Now().UTC(), id))
}
