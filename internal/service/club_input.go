// internal/service/club_input.go
package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dangerclosesec/clubmap/internal/model"
	"github.com/dangerclosesec/clubmap/internal/validation"
)

// Coordinates accepts both {"longitude": x, "latitude": y} and the [x, y]
// pair used by the public clubs.json.
type Coordinates struct {
	Longitude *float64 `json:"longitude" validate:"required"`
	Latitude  *float64 `json:"latitude" validate:"required"`
}

func (c *Coordinates) UnmarshalJSON(b []byte) error {
	if trimmed := bytes.TrimSpace(b); len(trimmed) > 0 && trimmed[0] == '[' {
		var pair []*float64
		if err := json.Unmarshal(trimmed, &pair); err != nil {
			return err
		}
		if len(pair) != 2 {
			return errors.New("coordinates must be [longitude, latitude]")
		}
		c.Longitude, c.Latitude = pair[0], pair[1]
		return nil
	}

	type plain Coordinates
	return json.Unmarshal(b, (*plain)(c))
}

// ClubFields are the editable club fields accepted from clients.
// ExternalLinks is kept generic so its shape can be checked with the
// permissive link rules rather than failing JSON decoding.
type ClubFields struct {
	Name             *string      `json:"name" validate:"required,max=100"`
	School           *string      `json:"school" validate:"required,max=200"`
	Province         string       `json:"province" validate:"required,max=50"`
	City             string       `json:"city" validate:"max=50"`
	Coordinates      *Coordinates `json:"coordinates" validate:"required"`
	Logo             string       `json:"logo" validate:"max=500"`
	ShortDescription string       `json:"shortDescription" validate:"max=200"`
	Description      string       `json:"description" validate:"max=5000"`
	Tags             []string     `json:"tags" validate:"max=20,dive,max=30"`
	ExternalLinks    any          `json:"externalLinks"`
}

// clubData normalizes and sanitizes the fields into the stored shape and
// runs the club validators on the result.
func (f ClubFields) clubData() (model.ClubData, error) {
	links, err := validation.ToExternalLinks(f.ExternalLinks)
	if err != nil {
		return model.ClubData{}, err
	}
	for i := range links {
		links[i].Type = strings.TrimSpace(links[i].Type)
		links[i].URL = strings.TrimSpace(links[i].URL)
	}

	data := model.ClubData{
		Name:             validation.SanitizeText(validation.NormalizeName(f.Name)),
		School:           validation.SanitizeText(validation.NormalizeSchool(f.School)),
		Province:         validation.SanitizeText(f.Province),
		City:             validation.SanitizeText(f.City),
		Logo:             strings.TrimSpace(f.Logo),
		ShortDescription: validation.SanitizeText(f.ShortDescription),
		Description:      validation.SanitizeText(f.Description),
		Tags:             model.Tags(validation.SanitizeList(f.Tags)),
		ExternalLinks:    links,
	}
	if f.Coordinates != nil && f.Coordinates.Longitude != nil && f.Coordinates.Latitude != nil {
		data.Longitude = *f.Coordinates.Longitude
		data.Latitude = *f.Coordinates.Latitude
	}

	if err := validation.ValidateClubData(data); err != nil {
		return model.ClubData{}, err
	}
	return data, nil
}

// ClubRef names the club an edit targets: a numeric id, or a "name|school"
// key as sent by the public edit form.
type ClubRef string

func (r *ClubRef) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}

	switch t := v.(type) {
	case nil:
		*r = ""
	case json.Number:
		*r = ClubRef(t.String())
	case string:
		*r = ClubRef(strings.TrimSpace(t))
	default:
		return fmt.Errorf("editingClubId must be a number or a string, got %T", v)
	}
	return nil
}
