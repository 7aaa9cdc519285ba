package transform

// upstreamEntity mirrors the subset of the upstream payload the service reads.
// Pointers distinguish absent or null values from zero values.
type upstreamEntity struct {
	ID             *int             `json:"id"`
	Name           *string          `json:"name"`
	Height         *int             `json:"height"`
	Weight         *int             `json:"weight"`
	Abilities      *[]abilityRecord `json:"abilities"`
	Types          *[]typeRecord    `json:"types"`
	BaseExperience *int             `json:"base_experience"`
	Sprites        *spriteSection   `json:"sprites"`
	Moves          *[]moveRecord    `json:"moves"`
}

type namedResource struct {
	Name *string `json:"name"`
}

type abilityRecord struct {
	Ability *namedResource `json:"ability"`
}

type typeRecord struct {
	Type *namedResource `json:"type"`
}

type moveRecord struct {
	Move *namedResource `json:"move"`
}

type spriteSection struct {
	FrontDefault *string `json:"front_default"`
}
