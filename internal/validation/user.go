package validation

import (
	"regexp"

	"gorm.io/gorm"

	"github.com/recipedex/backend/internal/models"
)

// RegisterInput is the candidate record for user registration
type RegisterInput struct {
	Username string
	Password string
	Email    string
}

var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// UserRule checks one aspect of a registration candidate against the store
type UserRule func(db *gorm.DB, in RegisterInput, errs Errors)

// registrationRules run in order, each collecting into the shared error map.
// The cross-field stage below only runs when all of these pass.
var registrationRules = []UserRule{
	usernameUnique,
	emailUnique,
	emailFormat,
	passwordLength,
}

// ValidateRegistration runs the full ordered rule list for a registration
// payload. Field rules all run and collect; the cross-field email presence
// check runs only on an otherwise clean payload.
func ValidateRegistration(db *gorm.DB, in RegisterInput) Errors {
	errs := Errors{}
	for _, rule := range registrationRules {
		rule(db, in, errs)
	}
	if errs.Empty() {
		emailRequired(in, errs)
	}
	return errs
}

func usernameUnique(db *gorm.DB, in RegisterInput, errs Errors) {
	if in.Username == "" {
		return
	}
	var count int64
	db.Model(&models.User{}).Where("username = ?", in.Username).Count(&count)
	if count > 0 {
		errs.Add("username", "This username is already taken.")
	}
}

func emailUnique(db *gorm.DB, in RegisterInput, errs Errors) {
	if in.Email == "" {
		return
	}
	var count int64
	db.Model(&models.User{}).Where("email = ?", in.Email).Count(&count)
	if count > 0 {
		errs.Add("email", "This email is already registered.")
	}
}

func emailFormat(_ *gorm.DB, in RegisterInput, errs Errors) {
	if in.Email == "" {
		return
	}
	if !emailPattern.MatchString(in.Email) {
		errs.Add("email", "Please enter a valid email address.")
	}
}

func passwordLength(_ *gorm.DB, in RegisterInput, errs Errors) {
	if len(in.Password) < 8 {
		errs.Add("password", "Password must be at least 8 characters long.")
	}
}

// emailRequired is the cross-field stage: a blank email is rejected even
// though the column itself is nullable
func emailRequired(in RegisterInput, errs Errors) {
	if in.Email == "" {
		errs.Add(NonFieldErrors, "Please enter your email address.")
	}
}
