package model

// Item is the domain model for a todo entry.
// Only Done changes after creation; everything else is fixed by the
// add transition that built the item.
type Item struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Done        bool   `json:"done"`
	CreatedAt   int64  `json:"createdAt"`   // epoch milliseconds
	DisplayTime string `json:"displayTime"` // rendered once, at creation
}
