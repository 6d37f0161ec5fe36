package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"

	"rentahome/internal/apperr"
	"rentahome/internal/auth"
	"rentahome/internal/models"
	"rentahome/internal/storage"

	"golang.org/x/crypto/bcrypt"
)

// randomPassword returns a throwaway credential for OAuth-created
// accounts. The plaintext is discarded immediately after hashing, so
// password login for these accounts can never succeed.
func randomPassword() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func issueAndRespond(w http.ResponseWriter, sessions *auth.SessionIssuer, account models.Account, status int, message string) {
	token, err := sessions.Issue(account.Id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, status, models.AuthResponse{
		Success: true,
		Message: message,
		Token:   token,
		User:    account.View(),
	})
}

func GoogleLoginHandler(db storage.Database, verifier auth.Verifier, sessions *auth.SessionIssuer, bcryptCost int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Token string `json:"token"`
		}

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Token == "" {
			writeError(w, apperr.New(apperr.CodeValidation, "No Google token provided"))
			return
		}

		payload, err := verifier.Verify(r.Context(), req.Token)
		if err != nil {
			writeError(w, err)
			return
		}

		placeholder, err := randomPassword()
		if err != nil {
			writeError(w, err)
			return
		}

		placeholderHash, err := bcrypt.GenerateFromPassword([]byte(placeholder), bcryptCost)
		if err != nil {
			writeError(w, err)
			return
		}

		account, err := db.GetOrCreateAccountByEmail(models.Account{
			Email:        payload.Email,
			Name:         payload.Name,
			PasswordHash: string(placeholderHash),
			Role:         models.RoleUser,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		if account.Suspended {
			writeError(w, apperr.New(apperr.CodeInvalidGoogleToken, "Invalid Google token"))
			return
		}

		account.ProfileComplete = account.CheckProfileComplete()
		if err := db.UpdateProfileComplete(account.Id, account.ProfileComplete); err != nil {
			writeError(w, err)
			return
		}

		issueAndRespond(w, sessions, account, http.StatusOK, "Google login successful")
	})
}

func RegisterHandler(db storage.Database, sessions *auth.SessionIssuer, bcryptCost int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email           string `json:"email"`
			Password        string `json:"password"`
			ConfirmPassword string `json:"confirmPassword"`
			Name            string `json:"name"`
		}

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, apperr.New(apperr.CodeValidation, "Invalid request body"))
			return
		}

		if req.Email == "" || req.Password == "" || req.ConfirmPassword == "" || req.Name == "" {
			writeError(w, apperr.New(apperr.CodeValidation, "All fields are required"))
			return
		}

		if req.Password != req.ConfirmPassword {
			writeError(w, apperr.New(apperr.CodeValidation, "Passwords do not match"))
			return
		}

		if len(req.Password) < 6 {
			writeError(w, apperr.New(apperr.CodeValidation, "Password must be at least 6 characters long"))
			return
		}

		passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
		if err != nil {
			writeError(w, err)
			return
		}

		account, err := db.CreateAccount(models.Account{
			Email:        req.Email,
			Name:         req.Name,
			PasswordHash: string(passwordHash),
			Role:         models.RoleUser,
		})
		if err != nil {
			if errors.Is(err, storage.ErrDuplicate) {
				writeError(w, apperr.New(apperr.CodeDuplicateAccount, "User already exists with this email"))
				return
			}
			writeError(w, err)
			return
		}

		issueAndRespond(w, sessions, account, http.StatusCreated, "User registered successfully")
	})
}

func LoginHandler(db storage.Database, sessions *auth.SessionIssuer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
			writeError(w, apperr.New(apperr.CodeValidation, "Email and password are required"))
			return
		}

		// Unknown email, wrong password and suspended account all answer
		// with the same message so the endpoint cannot be used to probe
		// which emails are registered.
		account, err := db.GetAccountByEmail(req.Email)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				writeError(w, apperr.New(apperr.CodeInvalidCredential, "Invalid email or password"))
				return
			}
			writeError(w, err)
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
			writeError(w, apperr.New(apperr.CodeInvalidCredential, "Invalid email or password"))
			return
		}

		if account.Suspended {
			writeError(w, apperr.New(apperr.CodeInvalidCredential, "Invalid email or password"))
			return
		}

		account.ProfileComplete = account.CheckProfileComplete()
		if err := db.UpdateProfileComplete(account.Id, account.ProfileComplete); err != nil {
			writeError(w, err)
			return
		}

		issueAndRespond(w, sessions, account, http.StatusOK, "Login successful")
	})
}

// VerifyHandler answers GET /auth/verify. The middleware has already
// validated the token, resolved the account and refreshed profileComplete.
func VerifyHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		account, ok := AccountFromContext(r.Context())
		if !ok {
			writeError(w, apperr.New(apperr.CodeInvalidSession, "Invalid token"))
			return
		}

		writeJSON(w, http.StatusOK, map[string]models.AccountView{"user": account.View()})
	})
}
