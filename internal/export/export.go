// Package export renders the published directory as the static clubs.json
// consumed by the public site.
package export

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/dangerclosesec/clubmap/internal/model"
)

// Link is an external link as published.
type Link struct {
	Type   string  `json:"type"`
	URL    string  `json:"url"`
	QRCode *string `json:"qrcode,omitempty"`
}

// Club is one entry of clubs.json. Coordinates are [longitude, latitude].
type Club struct {
	ID               int64      `json:"id"`
	Name             string     `json:"name"`
	School           string     `json:"school"`
	City             string     `json:"city"`
	Province         string     `json:"province"`
	Coordinates      [2]float64 `json:"coordinates"`
	Logo             string     `json:"logo"`
	ShortDescription string     `json:"shortDescription"`
	Description      string     `json:"description"`
	Tags             []string   `json:"tags"`
	ExternalLinks    []Link     `json:"externalLinks"`
	VerifiedBy       string     `json:"verifiedBy,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// FromModel converts a stored club to its published form.
func FromModel(c *model.Club) Club {
	out := Club{
		ID:               c.ID,
		Name:             c.Name,
		School:           c.School,
		City:             c.City,
		Province:         c.Province,
		Coordinates:      [2]float64{c.Longitude, c.Latitude},
		Logo:             c.Logo,
		ShortDescription: c.ShortDescription,
		Description:      c.Description,
		Tags:             append([]string{}, c.Tags...),
		ExternalLinks:    make([]Link, 0, len(c.ExternalLinks)),
		CreatedAt:        c.CreatedAt.UTC(),
		UpdatedAt:        c.UpdatedAt.UTC(),
	}
	for _, l := range c.ExternalLinks {
		out.ExternalLinks = append(out.ExternalLinks, Link{Type: l.Type, URL: l.URL, QRCode: l.QRCode})
	}
	if c.VerifiedBy != nil {
		out.VerifiedBy = *c.VerifiedBy
	}
	return out
}

// WriteClubs writes clubs as an indented JSON array ordered by sort index,
// then id.
func WriteClubs(ctx context.Context, clubs []*model.Club, w io.Writer) error {
	ordered := slices.Clone(clubs)
	slices.SortStableFunc(ordered, func(a, b *model.Club) int {
		if c := cmp.Compare(a.SortIndex, b.SortIndex); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	out := make([]Club, 0, len(ordered))
	for _, c := range ordered {
		if err := ctx.Err(); err != nil {
			return err
		}
		out = append(out, FromModel(c))
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding clubs: %w", err)
	}
	return nil
}

// WriteFile writes clubs to path, replacing any previous export only once
// the new one is complete.
func WriteFile(ctx context.Context, clubs []*model.Club, path string) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating export directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".clubs-*.json")
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err := WriteClubs(ctx, clubs, tmp); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing export file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("setting export permissions: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing export: %w", err)
	}
	return nil
}
