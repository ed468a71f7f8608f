// Package filter narrows down fetched posts for display.
package filter

import (
	"strings"

	"github.com/EO-DataHub/eodhp-posts-filter/models"
)

// Posts returns the posts whose title or body contains query, ignoring case.
// An empty query returns posts unchanged.
func Posts(posts []models.Post, query string) []models.Post {
	query = strings.TrimSpace(query)
	if query == "" {
		return posts
	}

	needle := strings.ToLower(query)
	matched := []models.Post{}
	for _, p := range posts {
		if strings.Contains(strings.ToLower(p.Title), needle) ||
			strings.Contains(strings.ToLower(p.Body), needle) {
			matched = append(matched, p)
		}
	}
	return matched
}

// Authors indexes users by id.
func Authors(users []models.User) map[int]models.User {
	index := make(map[int]models.User, len(users))
	for _, u := range users {
		index[u.ID] = u
	}
	return index
}
