package entities

import (
	"errors"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	UsernameMaxLength = 150
	NameMaxLength     = 50
)

type User struct {
	Id          uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Username    string
	Password    string
	FirstName   string
	LastName    string
	DateJoined  time.Time
	IsSeller    bool
	IsActive    bool
	IsSuperuser bool
}

func NewUser(username, password, firstName, lastName string, isSeller bool) *User {
	now := time.Now().UTC()
	return &User{
		Id:         uuid.New(),
		CreatedAt:  now,
		UpdatedAt:  now,
		Username:   username,
		Password:   password,
		FirstName:  firstName,
		LastName:   lastName,
		DateJoined: now,
		IsSeller:   isSeller,
		IsActive:   true,
	}
}

// NewSuperuser returns an active seller with administrative rights.
func NewSuperuser(username, password, firstName, lastName string) *User {
	u := NewUser(username, password, firstName, lastName, true)
	u.IsSuperuser = true
	return u
}

func (u *User) validate() error {
	if u.Username == "" {
		return errors.New("username must not be empty")
	}
	if utf8.RuneCountInString(u.Username) > UsernameMaxLength {
		return errors.New("username is too long")
	}
	if u.Password == "" {
		return errors.New("password must not be empty")
	}
	if utf8.RuneCountInString(u.FirstName) > NameMaxLength || utf8.RuneCountInString(u.LastName) > NameMaxLength {
		return errors.New("names must not exceed 50 characters")
	}
	if u.CreatedAt.After(u.UpdatedAt) {
		return errors.New("created_at must be before updated_at")
	}
	return nil
}

func (u *User) HashPassword() error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
}

// SetPassword replaces the stored hash with a hash of raw.
func (u *User) SetPassword(raw string) error {
	u.Password = raw
	if err := u.HashPassword(); err != nil {
		return err
	}
	u.UpdatedAt = time.Now().UTC()
	return nil
}

// ProfileChanges holds the owner-editable fields; nil means unchanged.
type ProfileChanges struct {
	Username  *string
	FirstName *string
	LastName  *string
	IsSeller  *bool
}

func (u *User) UpdateProfile(changes ProfileChanges) error {
	if changes.Username != nil {
		u.Username = *changes.Username
	}
	if changes.FirstName != nil {
		u.FirstName = *changes.FirstName
	}
	if changes.LastName != nil {
		u.LastName = *changes.LastName
	}
	if changes.IsSeller != nil {
		u.IsSeller = *changes.IsSeller
	}
	u.UpdatedAt = time.Now().UTC()
	return u.validate()
}

func (u *User) SetActive(active bool) {
	u.IsActive = active
	u.UpdatedAt = time.Now().UTC()
}
