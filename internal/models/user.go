// ABOUTME: User model with gender enum and registration validation.
// ABOUTME: Username is the unique login name; passwords are stored hashed.
package models

import (
	"strings"
	"time"
)

// Gender is one of a small fixed set of values.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// AllGenders lists the accepted gender values.
var AllGenders = []Gender{GenderMale, GenderFemale, GenderOther}

// ParseGender matches s case-insensitively against AllGenders.
func ParseGender(s string) (Gender, bool) {
	for _, g := range AllGenders {
		if strings.EqualFold(string(g), strings.TrimSpace(s)) {
			return g, true
		}
	}
	return "", false
}

const (
	MaxUsernameLen = 50
	MinAge         = 1
	MaxAge         = 150
)

// User is an account owning workouts and measurements.
type User struct {
	ID           int64     `json:"id" yaml:"id"`
	Username     string    `json:"username" yaml:"username"`
	PasswordHash string    `json:"-" yaml:"-"`
	Age          int       `json:"age" yaml:"age"`
	Gender       Gender    `json:"gender" yaml:"gender"`
	CreatedAt    time.Time `json:"created_at" yaml:"created_at"`
}

// NewUser creates an unsaved User. The password hash is set by the caller.
func NewUser(username string, age int, gender Gender) *User {
	return &User{
		Username:  strings.TrimSpace(username),
		Age:       age,
		Gender:    gender,
		CreatedAt: time.Now().UTC(),
	}
}

func (u *User) Key() int64   { return u.ID }
func (u *User) Kind() string { return "user" }

// Validate checks the registration fields, excluding the password.
func (u *User) Validate() error {
	if u.Username == "" {
		return invalid("username", "username is required")
	}
	if len(u.Username) > MaxUsernameLen {
		return invalid("username", "username must be at most %d characters", MaxUsernameLen)
	}
	if u.Age < MinAge || u.Age > MaxAge {
		return invalid("age", "please enter a valid age between %d and %d", MinAge, MaxAge)
	}
	if _, ok := ParseGender(string(u.Gender)); !ok {
		return invalid("gender", "gender must be one of Male, Female, Other")
	}
	return nil
}
