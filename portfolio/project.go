package portfolio

// Project is a portfolio entry as returned by the backend.
// Records are displayed in the order the backend sends them.
type Project struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Testimonial string `json:"testimonial"`
	VideoURL    string `json:"videoUrl"`
	WebsiteURL  string `json:"websiteUrl"`
	CreatedAt   string `json:"createdAt"`
}
