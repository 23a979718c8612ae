// Package model defines the core memory data types.
package model

import "time"

// Memory is a single stored fact about a user. Topics carry the classifier
// labels in score order; an untagged memory has an empty slice, never nil.
type Memory struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	Topics    []string  `json:"topics"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UnknownTopic is the sentinel label assigned when classification finds
// no category above its confidence threshold.
const UnknownTopic = "unknown"
