package es

import "time"

// BlogES is the blog post document indexed for full-text search.
type BlogES struct {
	ID          uint64    `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Content     string    `json:"content"`
	Tags        []string  `json:"tags"`
	AIGenerated bool      `json:"ai_generated"`
	PublishedAt time.Time `json:"published_at"`
}
