package models

// Website content records managed from the admin dashboard. Image fields hold
// URLs; the upload relay lives outside this service.

type About struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	ImageURL  string `json:"imageUrl"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type Brand struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Tagline   string `json:"tagline"`
	LogoURL   string `json:"logoUrl"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type Counter struct {
	ID        int64  `json:"id"`
	Label     string `json:"label"`
	Value     int64  `json:"value"`
	Icon      string `json:"icon"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type FAQ struct {
	ID        int64  `json:"id"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	SortOrder int64  `json:"sortOrder"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type GalleryItem struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	ImageURL  string `json:"imageUrl"`
	SortOrder int64  `json:"sortOrder"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type Testimonial struct {
	ID        int64  `json:"id"`
	Author    string `json:"author"`
	Company   string `json:"company"`
	Quote     string `json:"quote"`
	AvatarURL string `json:"avatarUrl"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}
