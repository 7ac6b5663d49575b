package model

// Image is a reference to a remote picture. The URL is emitted verbatim;
// loading it is left to the browser.
type Image struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// Hero is the banner shown at the top of a page: a heading over a background image.
type Hero struct {
	Title string `json:"title"`
	Image Image  `json:"image"`
}

// Card is a self-contained visual block. Text and Items are both optional.
type Card struct {
	Title string   `json:"title"`
	Image Image    `json:"image"`
	Text  string   `json:"text,omitempty"`
	Items []string `json:"items,omitempty"`
}

// Application describes one domain where phase-change materials are used.
type Application struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Examples    []string `json:"examples"`
	Image       string   `json:"image"`
}

// PageInfo is a navigation entry.
type PageInfo struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
	Path  string `json:"path"`
}
