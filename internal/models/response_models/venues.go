package response_models

type Location struct {
	Address   string   `json:"address"`
	City      string   `json:"city"`
	State     string   `json:"state"`
	ZipCode   string   `json:"zip_code"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

type Capacity struct {
	Seated   int `json:"seated"`
	Standing int `json:"standing"`
}

// Price in dollars; the store keeps cents.
type Price struct {
	Hourly float64 `json:"hourly"`
	Daily  float64 `json:"daily"`
}

// Venue is the marketplace shape, images included.
type Venue struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Location    Location `json:"location"`
	Capacity    Capacity `json:"capacity"`
	Price       Price    `json:"price"`
	Amenities   []string `json:"amenities"`
	Images      []string `json:"images"`
	Category    string   `json:"category"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`

	Availability bool   `json:"availability"`
	Featured     bool   `json:"featured"`
	Status       string `json:"status"`
}

// AgentVenue is the payload handed to the external agent platform. Image
// URLs are deliberately left out to keep agent payloads small; the
// similarity score is only present when the semantic step actually ran.
type AgentVenue struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Location    Location `json:"location"`
	Capacity    Capacity `json:"capacity"`
	Price       Price    `json:"price"`
	Amenities   []string `json:"amenities"`
	Category    string   `json:"category"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`

	Availability bool `json:"availability"`
	Featured     bool `json:"featured"`

	SimilarityScore *float32 `json:"similarity_score,omitempty"`
}

type Review struct {
	ID      string `json:"id"`
	VenueID string `json:"venue_id"`
	Author  string `json:"author"`
	Comment string `json:"comment"`
	Rating  int    `json:"rating"`
}
