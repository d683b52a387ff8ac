package models

// Comment is a reader comment attached to a story.
type Comment struct {
	// ID is the internal unique identifier of the comment.
	ID int64 `json:"id"`

	// StoryID is the story the comment belongs to.
	StoryID int64 `json:"storyId"`

	// CreatorID is the commenting user.
	CreatorID int64 `json:"-"`

	// Username is the commenting user's name, joined in for display.
	Username string `json:"username,omitempty"`

	// Content is the comment text.
	Content string `json:"content"`
}

// UserComment is a comment joined with the story it was left on, as shown
// on the commenter's own profile page.
type UserComment struct {
	ID         int64  `json:"id"`
	StoryID    int64  `json:"storyId"`
	StoryTitle string `json:"storyTitle"`
	Content    string `json:"content"`
}

// TableName returns the name of the database table
// associated with the Comment model.
func (c Comment) TableName() string {
	return "comments"
}
