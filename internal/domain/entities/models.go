package entities

// Entity is the normalized shape exposed by the service. Field names and order
// are a wire contract with existing consumers.
type Entity struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Height         int      `json:"height"`
	Weight         int      `json:"weight"`
	Abilities      []string `json:"abilities"`
	Types          []string `json:"types"`
	BaseExperience int      `json:"base_experience"`
	SpriteURL      *string  `json:"sprite_url"`
	Moves          []string `json:"moves"`
}

// RootResponse is returned by the service root endpoint.
type RootResponse struct {
	Message string `json:"message"`
}
