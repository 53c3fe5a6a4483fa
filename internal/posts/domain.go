package posts

import "time"

// Post is a piece of content owned by an account.
type Post struct {
	ID        int64
	Title     string
	Body      string
	AuthorID  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UpdatePost is the explicit allow-list of mutable post fields.
type UpdatePost struct {
	Title *string
	Body  *string
}

// ListFilter bounds a post listing.
type ListFilter struct {
	AuthorID int64
	Offset   int
	Limit    int
}
