package models

// Post represents a post written by a user.
type Post struct {
	UserID int    `json:"userId"`
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// PostsPage holds everything the posts view renders.
type PostsPage struct {
	Route    string       `json:"route,omitempty"`
	AuthorID *int         `json:"authorId,omitempty"`
	Query    string       `json:"query,omitempty"`
	Users    []User       `json:"users"`
	Posts    []Post       `json:"posts"`
	Authors  map[int]User `json:"-"`
	BasePath string       `json:"-"`
}

// AuthorName returns the display name of the author of a post.
func (p PostsPage) AuthorName(userID int) string {
	if u, ok := p.Authors[userID]; ok {
		return u.Name
	}
	return ""
}

// Selected reports whether the page is filtered to the given author.
func (p PostsPage) Selected(userID int) bool {
	return p.AuthorID != nil && *p.AuthorID == userID
}
