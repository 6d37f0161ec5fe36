package postgres

import (
	"fmt"
	"os"
	"sync"
	"testing"

	"rentahome/internal/models"
	"rentahome/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStorage connects to the database named by TEST_DATABASE_URL and
// starts from empty tables. Tests are skipped when the variable is unset.
func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	databaseURL := os.Getenv("TEST_DATABASE_URL")
	if databaseURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	require.NoError(t, RunMigrations(databaseURL))

	s, err := New(databaseURL)
	require.NoError(t, err)

	truncate := func() {
		s.Db.Exec(`DELETE FROM properties`)
		s.Db.Exec(`DELETE FROM accounts`)
	}
	truncate()

	t.Cleanup(func() {
		truncate()
		s.Db.Close()
	})

	return s
}

func (s *Storage) countAccountsByEmail(t *testing.T, email string) int {
	t.Helper()

	var count int
	require.NoError(t, s.Db.QueryRow(`SELECT COUNT(*) FROM accounts WHERE email = $1`, email).Scan(&count))
	return count
}

func TestGetOrCreateAccountByEmailConcurrent(t *testing.T) {
	s := newTestStorage(t)

	const callers = 16
	results := make([]models.Account, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = s.GetOrCreateAccountByEmail(models.Account{
				Email:        `race@x.com`,
				Name:         fmt.Sprintf(`Caller %d`, i),
				PasswordHash: `$2a$04$placeholder`,
			})
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		assert.NoError(t, errs[i])
		// Every caller resolves to the same account, whichever insert won.
		assert.Equal(t, results[0].Id, results[i].Id)
	}

	assert.Equal(t, 1, s.countAccountsByEmail(t, `race@x.com`))
}

func TestGetOrCreateAccountByEmailExisting(t *testing.T) {
	s := newTestStorage(t)

	first, err := s.GetOrCreateAccountByEmail(models.Account{Email: `a@x.com`, Name: `Alice`, PasswordHash: `h1`})
	require.NoError(t, err)

	second, err := s.GetOrCreateAccountByEmail(models.Account{Email: `a@x.com`, Name: `Impostor`, PasswordHash: `h2`})
	require.NoError(t, err)

	assert.Equal(t, first.Id, second.Id)
	assert.Equal(t, `Alice`, second.Name)
	assert.Equal(t, 1, s.countAccountsByEmail(t, `a@x.com`))
}

func TestCreateAccountDuplicateEmail(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.CreateAccount(models.Account{Email: `a@x.com`, Name: `Alice`, PasswordHash: `h1`})
	require.NoError(t, err)

	_, err = s.CreateAccount(models.Account{Email: `a@x.com`, Name: `Alice Again`, PasswordHash: `h2`})
	assert.ErrorIs(t, err, storage.ErrDuplicate)
	assert.Equal(t, 1, s.countAccountsByEmail(t, `a@x.com`))
}

func TestReviewProperty(t *testing.T) {
	s := newTestStorage(t)

	owner, err := s.CreateAccount(models.Account{Email: `o@x.com`, Name: `Owner`, PasswordHash: `h`, Role: models.RoleOwner})
	require.NoError(t, err)

	property, err := s.CreateProperty(models.Property{OwnerId: owner.Id, Title: `Sea flat`, City: `Lisbon`})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, property.Status)

	rejected, err := s.ReviewProperty(property.Id, models.StatusRejected, `missing proof`)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, rejected.Status)
	assert.Equal(t, `missing proof`, rejected.VerificationNote)
	assert.False(t, rejected.ReviewedAt.IsZero())

	// Re-review without a note clears the previous one (NULLIF path).
	verified, err := s.ReviewProperty(property.Id, models.StatusVerified, ``)
	require.NoError(t, err)
	assert.Equal(t, models.StatusVerified, verified.Status)
	assert.Empty(t, verified.VerificationNote)

	_, err = s.ReviewProperty(`no-such-id`, models.StatusVerified, ``)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestGetVerifiedPropertiesFilters(t *testing.T) {
	s := newTestStorage(t)

	owner, err := s.CreateAccount(models.Account{Email: `o@x.com`, Name: `Owner`, PasswordHash: `h`, Role: models.RoleOwner})
	require.NoError(t, err)

	pending, err := s.CreateProperty(models.Property{OwnerId: owner.Id, Title: `Pending flat`, City: `Lisbon`})
	require.NoError(t, err)

	approved, err := s.CreateProperty(models.Property{OwnerId: owner.Id, Title: `Verified flat`, City: `Lisbon`})
	require.NoError(t, err)
	_, err = s.ReviewProperty(approved.Id, models.StatusVerified, ``)
	require.NoError(t, err)

	browsable, err := s.GetVerifiedProperties(`Lisbon`)
	require.NoError(t, err)
	require.Len(t, browsable, 1)
	assert.Equal(t, approved.Id, browsable[0].Id)

	mine, err := s.GetPropertiesByOwner(owner.Id)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	// The pending listing never appears on the public path.
	for _, p := range browsable {
		assert.NotEqual(t, pending.Id, p.Id)
	}
}
