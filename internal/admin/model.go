package admin

import (
	"net/http"
	"time"

	"github.com/penzionapp/guesthouse-booking-backend/internal/pkg/apperror"
)

type Admin struct {
	ID           string
	Username     string
	PasswordHash string
	Email        string
	CreatedAt    time.Time
}

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "admin not found")
	ErrInvalidCredentials = apperror.New(http.StatusUnauthorized, "invalid username or password")
	ErrUsernameTaken      = apperror.New(http.StatusConflict, "username already exists")
)
