package entities

// Question is one entry of the static question bank.
type Question struct {
	ID       int    `json:"id"`
	Text     string `json:"text"`
	Category string `json:"category"`
}
