package domain

// UserProfile is the slice of the storefront user record the support system
// cares about. The profile store itself belongs to another subsystem; only the
// display language is consulted here.
type UserProfile struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Language string `json:"language"`
}

// UserDocument mirrors the user directory file.
type UserDocument struct {
	Users []UserProfile `json:"users"`
}
