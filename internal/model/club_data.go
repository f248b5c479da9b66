// internal/model/club_data.go
package model

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/dangerclosesec/clubmap/internal/codec"
)

// ClubData is the editable shape of a club. Submissions carry it as the
// proposed data and, for edits, as the snapshot of the club at intake.
type ClubData struct {
	Name             string        `json:"name"`
	School           string        `json:"school"`
	Province         string        `json:"province"`
	City             string        `json:"city"`
	Longitude        float64       `json:"longitude"`
	Latitude         float64       `json:"latitude"`
	Logo             string        `json:"logo"`
	ShortDescription string        `json:"shortDescription"`
	Description      string        `json:"description"`
	Tags             Tags          `json:"tags"`
	ExternalLinks    ExternalLinks `json:"externalLinks"`
	SortIndex        int           `json:"sortIndex"`
}

// Value implements the driver.Valuer interface
func (d ClubData) Value() (driver.Value, error) {
	if d.Tags == nil {
		d.Tags = Tags{}
	}
	if d.ExternalLinks == nil {
		d.ExternalLinks = ExternalLinks{}
	}
	return codec.Encode(d)
}

// Scan implements the sql.Scanner interface. Malformed text scans as the
// zero value.
func (d *ClubData) Scan(value interface{}) error {
	text, err := scanText(value)
	if err != nil {
		return err
	}
	*d = codec.Decode(text, ClubData{})
	return nil
}

// NullClubData is a ClubData column that may be NULL. It encodes as JSON
// null when not Valid.
type NullClubData struct {
	Data  ClubData
	Valid bool
}

// SnapshotOf returns a valid NullClubData holding d.
func SnapshotOf(d ClubData) NullClubData {
	return NullClubData{Data: d, Valid: true}
}

// Value implements the driver.Valuer interface
func (n NullClubData) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Data.Value()
}

// Scan implements the sql.Scanner interface
func (n *NullClubData) Scan(value interface{}) error {
	if value == nil {
		*n = NullClubData{}
		return nil
	}
	n.Valid = true
	return n.Data.Scan(value)
}

func (n NullClubData) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Data)
}

func (n *NullClubData) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*n = NullClubData{}
		return nil
	}
	n.Valid = true
	return json.Unmarshal(b, &n.Data)
}
