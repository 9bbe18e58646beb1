package models

// Category describes one of the fixed product categories shown on the
// storefront. The list is hardcoded, not derived from the catalog.
type Category struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
}

// Categories returns the fixed set of storefront categories.
func Categories() []Category {
	return []Category{
		{
			ID:          "resume",
			Name:        "Resume Templates",
			Description: "Professional resume templates for job seekers",
			Price:       5.0,
			ImageURL:    "https://images.unsplash.com/photo-1743385779347-1549dabf1320",
		},
		{
			ID:          "ebook",
			Name:        "Learning eBooks",
			Description: "Educational ebooks for toddlers learning to count and read",
			Price:       5.0,
			ImageURL:    "https://images.unsplash.com/photo-1718353097521-e47e1d67edc2",
		},
		{
			ID:          "storybook",
			Name:        "Story Books",
			Description: "Engaging storybooks for bedtime and learning",
			Price:       10.0,
			ImageURL:    "https://images.pexels.com/photos/7946399/pexels-photo-7946399.jpeg",
		},
	}
}
