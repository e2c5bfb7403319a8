// Package models contains the client-side view of the bookshop API payloads.
package models

// Book is a catalog record as the API returns it. Reviews is only present
// on the single-book endpoint.
type Book struct {
	ISBN    string            `json:"isbn"`
	Title   string            `json:"title"`
	Author  string            `json:"author"`
	Reviews map[string]string `json:"reviews,omitempty"`
}

// Review is one entry of a book's review listing.
type Review struct {
	Username string `json:"username"`
	Review   string `json:"review"`
}

// ReviewsPage is the response of GET /books/{isbn}/review.
type ReviewsPage struct {
	ISBN    string   `json:"isbn"`
	Title   string   `json:"title"`
	Reviews []Review `json:"reviews"`
}
