package models

// Gender is reference data used as a user attribute.
type Gender struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
