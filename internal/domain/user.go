package domain

import (
	"encoding/json"
	"regexp"
	"slices"
	"time"
	"unicode/utf8"
)

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleManager   Role = "manager"
	RoleDeveloper Role = "developer"
	RoleTester    Role = "tester"
	RoleViewer    Role = "viewer"
)

var Roles = []Role{RoleAdmin, RoleManager, RoleDeveloper, RoleTester, RoleViewer}

const maxUsernameLength = 100

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type User struct {
	ID        *int64
	Username  string
	Email     string
	FullName  string
	Role      Role
	CreatedAt *time.Time
	UpdatedAt *time.Time
}

func NormalizeUser(b Bag) User {
	return User{
		ID:        b.idField("id"),
		Username:  b.stringField("", "username"),
		Email:     b.stringField("", "email"),
		FullName:  b.stringField("", "fullName", "full_name"),
		Role:      Role(b.stringField(string(RoleDeveloper), "role")),
		CreatedAt: b.timeField("createdAt", "created_at"),
		UpdatedAt: b.timeField("updatedAt", "updated_at"),
	}
}

func ValidateUser(u User) ValidationResult {
	var errs []string

	if isBlank(u.Username) {
		errs = append(errs, "Username is required")
	}

	if utf8.RuneCountInString(u.Username) > maxUsernameLength {
		errs = append(errs, "Username must be 100 characters or less")
	}

	if isBlank(u.Email) {
		errs = append(errs, "Email is required")
	}

	if u.Email != "" && !emailPattern.MatchString(u.Email) {
		errs = append(errs, "Email must be a valid email address")
	}

	if u.Role != "" && !slices.Contains(Roles, u.Role) {
		errs = append(errs, oneOfMessage("Role", Roles))
	}

	return newValidationResult(errs)
}

func UserToStorage(u User) map[string]any {
	return map[string]any{
		"username":  u.Username,
		"email":     u.Email,
		"full_name": u.FullName,
		"role":      string(u.Role),
	}
}

func UserToWire(u User) map[string]any {
	return map[string]any{
		"id":        derefInt64(u.ID),
		"username":  u.Username,
		"email":     u.Email,
		"fullName":  u.FullName,
		"role":      string(u.Role),
		"createdAt": derefTime(u.CreatedAt),
		"updatedAt": derefTime(u.UpdatedAt),
	}
}

func (u User) MarshalJSON() ([]byte, error) {
	return json.Marshal(UserToWire(u))
}
