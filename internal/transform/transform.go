// Package transform maps the upstream entity payload onto the service's
// normalized schema.
package transform

import (
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/preston-bernstein/pokemon-gateway/internal/domain/entities"
	"github.com/preston-bernstein/pokemon-gateway/internal/providers"
)

// Entity decodes payload and projects it onto entities.Entity. List order and
// duplicates are preserved. A null or absent sprites.front_default yields a nil
// SpriteURL. Any other missing or mistyped field fails with an error matching
// providers.ErrMalformedPayload.
func Entity(payload providers.Payload) (entities.Entity, error) {
	var raw upstreamEntity
	if err := sonic.ConfigStd.Unmarshal(payload, &raw); err != nil {
		return entities.Entity{}, &FieldError{Path: "$", Reason: "invalid json", Err: err}
	}

	if raw.ID == nil {
		return entities.Entity{}, missing("id")
	}
	if raw.Name == nil {
		return entities.Entity{}, missing("name")
	}
	if raw.Height == nil {
		return entities.Entity{}, missing("height")
	}
	if raw.Weight == nil {
		return entities.Entity{}, missing("weight")
	}
	if raw.BaseExperience == nil {
		return entities.Entity{}, missing("base_experience")
	}
	if raw.Sprites == nil {
		return entities.Entity{}, missing("sprites")
	}

	abilities, err := projectNames("abilities", "ability", raw.Abilities, func(r abilityRecord) *namedResource { return r.Ability })
	if err != nil {
		return entities.Entity{}, err
	}
	types, err := projectNames("types", "type", raw.Types, func(r typeRecord) *namedResource { return r.Type })
	if err != nil {
		return entities.Entity{}, err
	}
	moves, err := projectNames("moves", "move", raw.Moves, func(r moveRecord) *namedResource { return r.Move })
	if err != nil {
		return entities.Entity{}, err
	}

	return entities.Entity{
		ID:             *raw.ID,
		Name:           *raw.Name,
		Height:         *raw.Height,
		Weight:         *raw.Weight,
		Abilities:      abilities,
		Types:          types,
		BaseExperience: *raw.BaseExperience,
		SpriteURL:      raw.Sprites.FrontDefault,
		Moves:          moves,
	}, nil
}

// projectNames flattens a record list into the nested name of each record.
func projectNames[R any](listPath, field string, records *[]R, nested func(R) *namedResource) ([]string, error) {
	if records == nil {
		return nil, missing(listPath)
	}
	names := make([]string, 0, len(*records))
	for i, rec := range *records {
		res := nested(rec)
		if res == nil {
			return nil, missing(fmt.Sprintf("%s[%d].%s", listPath, i, field))
		}
		if res.Name == nil {
			return nil, missing(fmt.Sprintf("%s[%d].%s.name", listPath, i, field))
		}
		names = append(names, *res.Name)
	}
	return names, nil
}
