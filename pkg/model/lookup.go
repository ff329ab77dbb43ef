package model

// BeerLookup and BreweryLookup carry external-catalog search results used
// to prefill admin create forms. They are never persisted; the admin
// decides what to keep before the usual create path runs.
type BeerLookup struct {
	Name        string   `json:"name"`
	Brewery     string   `json:"brewery"`
	Style       string   `json:"style"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
	ABV         *float64 `json:"abv"`
	IBU         *uint64  `json:"ibu"`
	ExternalID  *uint64  `json:"externalId"`
	Source      string   `json:"source"`
	Rating      *float64 `json:"rating"`
}

type BreweryLookup struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
	Locality    string   `json:"locality"`
	Region      string   `json:"region"`
	ExternalID  *uint64  `json:"externalId"`
	Source      string   `json:"source"`
	Rating      *float64 `json:"rating"`
}
