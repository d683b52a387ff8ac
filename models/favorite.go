package models

// Favorite links a user to a story they bookmarked.
type Favorite struct {
	ID      int64 `json:"-"`
	UserID  int64 `json:"userId"`
	StoryID int64 `json:"storyId"`
}

// TableName returns the name of the database table
// associated with the Favorite model.
func (f Favorite) TableName() string {
	return "favorites"
}
