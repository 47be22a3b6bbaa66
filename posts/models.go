// Package posts owns user content: creating, listing, and deleting posts,
// with an ownership check on deletion and a fixed-TTL response cache over
// listing.
package posts

// Post is a piece of user content. UserID references the owning user; every
// post has exactly one owner and only the owner may delete it.
type Post struct {
	ID     int    `json:"id"`
	Text   string `json:"text"`
	UserID int    `json:"user_id"`
}

// CreatePostRequest is the create-post payload. The text is capped at
// 1,000,000 bytes of UTF-8, measured after encoding.
type CreatePostRequest struct {
	Text string `json:"text" example:"hello"`
}

// CreatePostResponse returns the storage-assigned id of the new post.
type CreatePostResponse struct {
	PostID int `json:"postID" example:"1"`
}

// DeletePostResponse confirms a deletion.
type DeletePostResponse struct {
	Message string `json:"message" example:"Post deleted successfully"`
}
