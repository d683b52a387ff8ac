package models

// Story is a serialized story owned by a single author. Chapters are stored
// separately and ordered by their sort position.
type Story struct {
	// ID is the internal unique identifier of the story.
	ID int64 `json:"id"`

	// UserID is the authoring user.
	UserID int64 `json:"-"`

	// Title is the story title shown in listings.
	Title string `json:"title"`

	// Description is the short blurb shown in listings and overviews.
	Description string `json:"description"`

	// CoverImageURL points at the story cover. Stored as-is.
	CoverImageURL string `json:"coverImg,omitempty"`
}

// StoryListing is a story row joined with its author's username, as shown
// on the public stories index.
type StoryListing struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// StoryOverview aggregates a story with its author and chapter count for
// the overview page.
type StoryOverview struct {
	StoryID          int64  `json:"storyId"`
	Author           string `json:"author"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	NumberOfChapters int64  `json:"numberOfChapters"`
}

// Chapter is one installment of a story.
type Chapter struct {
	// ID is the internal unique identifier of the chapter.
	ID int64 `json:"id"`

	// StoryID is the owning story.
	StoryID int64 `json:"storyId"`

	// Heading is the chapter title.
	Heading string `json:"heading"`

	// Content is the chapter body text.
	Content string `json:"content"`

	// SortPosition orders chapters within a story, ascending.
	SortPosition int64 `json:"sortPosition"`
}

// TableName returns the name of the database table
// associated with the Story model.
func (s Story) TableName() string {
	return "stories"
}

// TableName returns the name of the database table
// associated with the Chapter model.
func (c Chapter) TableName() string {
	return "chapters"
}
