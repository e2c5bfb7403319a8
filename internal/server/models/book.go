package models

// Book is a catalog record. Reviews maps a username to that user's review
// text, at most one entry per username. The books repository owns and
// mutates Reviews; callers always receive copies.
type Book struct {
	ISBN    string            `json:"isbn"`
	Title   string            `json:"title"`
	Author  string            `json:"author"`
	Reviews map[string]string `json:"reviews,omitempty"`
}

// Review is a single (username, text) entry of a book's review mapping,
// in the shape the HTTP boundary exposes.
type Review struct {
	Username string `json:"username"`
	Review   string `json:"review"`
}
