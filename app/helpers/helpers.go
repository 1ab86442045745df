package helpers

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gosimple/slug"
	"golang.org/x/crypto/bcrypt"
)

var (
	idMu   sync.Mutex
	lastID int64
)

// NewID synthesizes a prefixed timestamp id, e.g. "cat_1714988182304".
// Matches the ids the admin forms have always produced, so ids minted before
// a database was configured stay valid after one is. The counter is bumped
// when two calls land on the same millisecond, so ids never collide within
// a process.
func NewID(prefix string) string {
	idMu.Lock()
	ms := time.Now().UnixMilli()
	if ms <= lastID {
		ms = lastID + 1
	}
	lastID = ms
	idMu.Unlock()
	return fmt.Sprintf("%s_%d", prefix, ms)
}

// GenerateSlug is idempotent: slugifying an already-slugified string yields
// the same string.
func GenerateSlug(s string) string {
	return slug.Make(s)
}

func FormatValidationErrors(errs validator.ValidationErrors) map[string]string {
	errorMessages := make(map[string]string)
	for _, err := range errs {
		field := strings.ToLower(err.Field())
		switch err.Tag() {
		case "required":
			errorMessages[field] = fmt.Sprintf("%s is required.", err.Field())
		case "email":
			errorMessages[field] = fmt.Sprintf("%s must be a valid email address.", err.Field())
		case "gt":
			errorMessages[field] = fmt.Sprintf("%s must be greater than %s.", err.Field(), err.Param())
		case "min":
			errorMessages[field] = fmt.Sprintf("%s must be at least %s characters/value.", err.Field(), err.Param())
		case "max":
			errorMessages[field] = fmt.Sprintf("%s must be at most %s characters/value.", err.Field(), err.Param())
		case "oneof":
			errorMessages[field] = fmt.Sprintf("%s must be one of: %s.", err.Field(), err.Param())
		default:
			errorMessages[field] = fmt.Sprintf("Validation %s failed on field %s.", err.Tag(), err.Field())
		}
	}
	return errorMessages
}

func PasswordCompare(hashPass string, password []byte) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashPass), password)
	if err != nil {
		log.Printf("PasswordCompare: password does not match or error: %v", err)
		return false
	}
	return true
}

func HashPassword(password string) string {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return ""
	}
	return string(bytes)
}
