package models

// Profile is the public-facing author profile attached to a user account.
type Profile struct {
	// UserID is the owning user.
	UserID int64 `json:"userId"`

	// Username is denormalized into the profile for page rendering.
	Username string `json:"username"`

	// Bio is the author's free-form description. May be empty.
	Bio string `json:"bio"`

	// AvatarURL points at the author's avatar image. The URL is stored
	// as-is; image upload and transformation happen outside this service.
	AvatarURL string `json:"avatar"`
}

// ProfileUpdate describes a partial profile update. Nil fields are left
// untouched.
type ProfileUpdate struct {
	Bio       *string `json:"bio"`
	AvatarURL *string `json:"avatar"`
}

// TableName returns the name of the database table
// associated with the Profile model.
func (p Profile) TableName() string {
	return "user_profiles"
}
