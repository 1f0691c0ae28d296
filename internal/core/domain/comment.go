package domain

import "time"

// AnonymousAuthor is used when a comment is posted without an author name.
const AnonymousAuthor = "Anônimo"

// Comment belongs to a News article. Comments are write-once: the design
// has no update or delete operation for individual comments.
type Comment struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	NewsID    string    `json:"newsId"`
	CreatedAt time.Time `json:"created_at"`
}
