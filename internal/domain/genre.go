package domain

// Genre is a catalog genre with a unique name.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
