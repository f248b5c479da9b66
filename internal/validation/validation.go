// Package validation holds the pure input checks shared by the intake and
// review paths. Nothing here touches storage.
package validation

import (
	"math"
	"strings"

	"github.com/dangerclosesec/clubmap/internal/domain"
	"github.com/dangerclosesec/clubmap/internal/model"
)

// ValidateCoordinates fails when longitude is outside [-180, 180] or latitude
// is outside [-90, 90].
func ValidateCoordinates(longitude, latitude float64) error {
	if math.IsNaN(longitude) || longitude < -180 || longitude > 180 {
		return domain.NewValidationError("longitude", "longitude must be within [-180, 180]")
	}
	if math.IsNaN(latitude) || latitude < -90 || latitude > 90 {
		return domain.NewValidationError("latitude", "latitude must be within [-90, 90]")
	}
	return nil
}

// NormalizeName trims surrounding whitespace; nil becomes "".
func NormalizeName(value *string) string {
	if value == nil {
		return ""
	}
	return strings.TrimSpace(*value)
}

// NormalizeSchool trims surrounding whitespace; nil becomes "".
func NormalizeSchool(value *string) string {
	return NormalizeName(value)
}

// ValidateExternalLinks checks a decoded externalLinks value. nil is
// accepted. Otherwise it must be a list of objects with string "type" and
// "url" and, when present and non-null, a string "qrcode". Extra keys are
// allowed.
func ValidateExternalLinks(value any) error {
	if value == nil {
		return nil
	}

	items, ok := value.([]any)
	if !ok {
		return linkError("externalLinks must be a list")
	}

	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return linkError("externalLinks items must be objects")
		}

		typ, hasType := obj["type"]
		url, hasURL := obj["url"]
		if !hasType || !hasURL {
			return linkError("externalLinks items must include 'type' and 'url'")
		}
		if _, ok := typ.(string); !ok {
			return linkError("externalLinks 'type' and 'url' must be strings")
		}
		if _, ok := url.(string); !ok {
			return linkError("externalLinks 'type' and 'url' must be strings")
		}

		if qr, present := obj["qrcode"]; present && qr != nil {
			if _, ok := qr.(string); !ok {
				return linkError("externalLinks 'qrcode' must be a string when present")
			}
		}
	}

	return nil
}

// ToExternalLinks converts a value accepted by ValidateExternalLinks into
// the typed form.
func ToExternalLinks(value any) (model.ExternalLinks, error) {
	if err := ValidateExternalLinks(value); err != nil {
		return nil, err
	}

	links := model.ExternalLinks{}
	items, _ := value.([]any)
	for _, item := range items {
		obj := item.(map[string]any)
		link := model.ExternalLink{
			Type: obj["type"].(string),
			URL:  obj["url"].(string),
		}
		if qr, ok := obj["qrcode"].(string); ok {
			link.QRCode = &qr
		}
		links = append(links, link)
	}
	return links, nil
}

// ValidateClubData checks the fields every stored club must satisfy. Blank
// required fields are always reported together as ValidationErrors.
func ValidateClubData(data model.ClubData) error {
	var errs domain.ValidationErrors
	if data.Name == "" {
		errs = append(errs, domain.NewValidationError("name", "name is required"))
	}
	if data.School == "" {
		errs = append(errs, domain.NewValidationError("school", "school is required"))
	}
	if data.Province == "" {
		errs = append(errs, domain.NewValidationError("province", "province is required"))
	}
	if len(errs) > 0 {
		return errs
	}

	if err := ValidateCoordinates(data.Longitude, data.Latitude); err != nil {
		return err
	}

	for _, link := range data.ExternalLinks {
		if link.Type == "" || link.URL == "" {
			return linkError("externalLinks items must include 'type' and 'url'")
		}
	}
	return nil
}

func linkError(msg string) error {
	return domain.NewValidationError("externalLinks", msg)
}
