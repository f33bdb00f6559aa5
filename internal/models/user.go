package models

import (
	"errors"
	"fmt"
	"strings"
)

const (
	RoleAdmin   = "Admin"
	RoleStudent = "Student"
	RoleTeacher = "Teacher"
)

// Standards and Subjects are the fixed sets the portal serves.
var (
	Standards = []string{"1", "2", "3", "4", "5", "6", "7"}
	Subjects  = []string{"Maths", "Marathi", "English", "GK"}
)

// ErrMalformedRecord marks a stored record that fails decode-time
// validation. It surfaces at the repository boundary instead of as a
// missing-field fault deep in a handler.
var ErrMalformedRecord = errors.New("malformed record in store")

type User struct {
	ID         string `bson:"_id,omitempty" json:"id"`
	Name       string `bson:"name" json:"name"`
	Username   string `bson:"username" json:"username"`
	Password   string `bson:"password" json:"-"`
	Contact    string `bson:"contact" json:"contact"`
	Role       string `bson:"role" json:"role"`
	ParentName string `bson:"parent_name" json:"parent_name,omitempty"`
	Standard   string `bson:"standard" json:"standard,omitempty"`
}

func (u *User) Validate() error {
	if u.Username == "" || u.Role == "" {
		return fmt.Errorf("%w: user %q missing username or role", ErrMalformedRecord, u.ID)
	}
	return nil
}

// DeriveUsername builds a login name from a person's name: lowercase,
// spaces stripped. Students log in under their parent's name, teachers
// under their own. No uniqueness is enforced anywhere.
func DeriveUsername(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", ""))
}

func ValidStandard(standard string) bool {
	for _, s := range Standards {
		if s == standard {
			return true
		}
	}
	return false
}

func ValidSubject(subject string) bool {
	for _, s := range Subjects {
		if s == subject {
			return true
		}
	}
	return false
}
