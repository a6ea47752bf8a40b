package domain

import "strings"

// passwordHashPrefix marks a stored password as an argon2id hash.
const passwordHashPrefix = "$argon2id$"

// User is a registered community member.
//
// Password holds an argon2id hash for accounts created by this server.
// Documents written by the legacy server may still carry plain-text values;
// those are upgraded to a hash on the next successful login.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Name     string `json:"name"`
	Contact  string `json:"contact"`
	Bio      string `json:"bio"`
}

// Public returns a copy of the user with the password removed.
func (u User) Public() User {
	u.Password = ""
	return u
}

// HasLegacyPassword reports whether the stored password is not a hash.
func (u *User) HasLegacyPassword() bool {
	return u.Password != "" && !strings.HasPrefix(u.Password, passwordHashPrefix)
}

// PublicUsers strips passwords from every user in the slice.
func PublicUsers(users []User) []User {
	out := make([]User, len(users))
	for i, u := range users {
		out[i] = u.Public()
	}
	return out
}
