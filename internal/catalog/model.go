package catalog

// Property is a bookable listing. Catalog data is immutable reference data
// owned upstream; this service loads it wholesale and never mutates it.
type Property struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Location    string   `json:"location"`
	Price       int      `json:"price"`
	Rating      float64  `json:"rating"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Amenities   []string `json:"amenities"`
	Host        Host     `json:"host"`
}

// Host is the person listed on a property. It has no lifecycle of its own
// here; it only renders on the detail page.
type Host struct {
	Name         string  `json:"name"`
	Rating       float64 `json:"rating"`
	ResponseTime string  `json:"responseTime"`
	Image        string  `json:"image"`
}
