package entities

import "time"

// DisplayPreference selects how a user's sheets are rendered
type DisplayPreference string

// Supported display preferences
const (
	DisplayLight DisplayPreference = "light"
	DisplayDark  DisplayPreference = "dark"
)

// DefaultDisplayPreference is assigned at registration
const DefaultDisplayPreference = DisplayLight

// DisplayPreferences lists the accepted values
func DisplayPreferences() []string {
	return []string{string(DisplayLight), string(DisplayDark)}
}

// User is a registered account
type User struct {
	ID                int64             `json:"id"`
	Username          string            `json:"username"`
	PasswordHash      string            `json:"-"`
	IsAdmin           bool              `json:"is_admin"`
	DisplayPreference DisplayPreference `json:"display_preference"`
	CreatedAt         time.Time         `json:"created_at"`
}

// Actor is the authenticated caller of a core operation. The session layer
// builds it once per request and passes it in explicitly.
type Actor struct {
	UserID            int64             `json:"user_id"`
	Username          string            `json:"username"`
	IsAdmin           bool              `json:"is_admin"`
	DisplayPreference DisplayPreference `json:"display_preference"`
}

// ActorFor builds the actor for a loaded user
func ActorFor(u *User) Actor {
	return Actor{
		UserID:            u.ID,
		Username:          u.Username,
		IsAdmin:           u.IsAdmin,
		DisplayPreference: u.DisplayPreference,
	}
}
