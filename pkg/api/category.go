package api

type Category struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type Style struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	CategoryID uint      `json:"categoryId"`
	Category   *Category `json:"category,omitempty"`
}
