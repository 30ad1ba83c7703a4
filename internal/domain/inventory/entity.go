package inventory

// Category groups inventory items. Deleting a category also deletes every
// item referencing it.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Item is a borrowable piece of office equipment
type Item struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	CategoryID string `json:"categoryId"`
	ImageURL   string `json:"imageUrl"`
	Note       string `json:"note,omitempty"`
}
