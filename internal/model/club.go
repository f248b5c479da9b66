// internal/model/club.go
package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/dangerclosesec/clubmap/internal/codec"
)

// Club is a published directory entry.
type Club struct {
	ID                 int64         `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	SortIndex          int           `gorm:"column:sort_index;not null" json:"sortIndex"`
	Name               string        `gorm:"column:name;type:text;not null" json:"name"`
	School             string        `gorm:"column:school;type:text;not null" json:"school"`
	Province           string        `gorm:"column:province;type:text;not null" json:"province"`
	City               string        `gorm:"column:city;type:text;not null" json:"city"`
	Longitude          float64       `gorm:"column:longitude;not null" json:"longitude"`
	Latitude           float64       `gorm:"column:latitude;not null" json:"latitude"`
	Logo               string        `gorm:"column:logo;type:text;not null" json:"logo"`
	ShortDescription   string        `gorm:"column:short_description;type:text;not null" json:"shortDescription"`
	Description        string        `gorm:"column:description;type:text;not null" json:"description"`
	Tags               Tags          `gorm:"column:tags_json;type:text;not null" json:"tags"`
	ExternalLinks      ExternalLinks `gorm:"column:external_links_json;type:text;not null" json:"externalLinks"`
	CreatedAt          time.Time     `gorm:"column:created_at;not null" json:"createdAt"`
	UpdatedAt          time.Time     `gorm:"column:updated_at;not null" json:"updatedAt"`
	SourceSubmissionID *int64        `gorm:"column:source_submission_id" json:"sourceSubmissionId,omitempty"`
	VerifiedBy         *string       `gorm:"column:verified_by;type:text" json:"verifiedBy,omitempty"`
}

// TableName specifies the table name for Club
func (Club) TableName() string {
	return "clubs"
}

// ClubFromData builds an unsaved club from proposed data.
func ClubFromData(data ClubData, at time.Time) *Club {
	c := &Club{CreatedAt: at}
	c.Apply(data, at)
	return c
}

// Apply overwrites every editable field from data. ID, CreatedAt and the
// provenance fields are left alone.
func (c *Club) Apply(data ClubData, at time.Time) {
	c.SortIndex = data.SortIndex
	c.Name = data.Name
	c.School = data.School
	c.Province = data.Province
	c.City = data.City
	c.Longitude = data.Longitude
	c.Latitude = data.Latitude
	c.Logo = data.Logo
	c.ShortDescription = data.ShortDescription
	c.Description = data.Description
	c.Tags = append(Tags{}, data.Tags...)
	c.ExternalLinks = append(ExternalLinks{}, data.ExternalLinks...)
	c.UpdatedAt = at
}

// Data returns the editable fields of the club, used for edit snapshots.
func (c *Club) Data() ClubData {
	return ClubData{
		SortIndex:        c.SortIndex,
		Name:             c.Name,
		School:           c.School,
		Province:         c.Province,
		City:             c.City,
		Longitude:        c.Longitude,
		Latitude:         c.Latitude,
		Logo:             c.Logo,
		ShortDescription: c.ShortDescription,
		Description:      c.Description,
		Tags:             append(Tags{}, c.Tags...),
		ExternalLinks:    append(ExternalLinks{}, c.ExternalLinks...),
	}
}

// Tags is an ordered list of labels stored as encoded text.
type Tags []string

// Value implements the driver.Valuer interface
func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		t = Tags{}
	}
	return codec.Encode([]string(t))
}

// Scan implements the sql.Scanner interface. Malformed text scans as empty.
func (t *Tags) Scan(value interface{}) error {
	text, err := scanText(value)
	if err != nil {
		return err
	}
	*t = codec.Decode(text, Tags{})
	if *t == nil {
		*t = Tags{}
	}
	return nil
}

// ExternalLink points at a club's presence elsewhere (QQ group, Discord,
// website, ...). QRCode is an optional image reference.
type ExternalLink struct {
	Type   string  `json:"type"`
	URL    string  `json:"url"`
	QRCode *string `json:"qrcode,omitempty"`
}

// ExternalLinks is stored as encoded text.
type ExternalLinks []ExternalLink

// Value implements the driver.Valuer interface
func (l ExternalLinks) Value() (driver.Value, error) {
	if l == nil {
		l = ExternalLinks{}
	}
	return codec.Encode([]ExternalLink(l))
}

// Scan implements the sql.Scanner interface. Malformed text scans as empty.
func (l *ExternalLinks) Scan(value interface{}) error {
	text, err := scanText(value)
	if err != nil {
		return err
	}
	*l = codec.Decode(text, ExternalLinks{})
	if *l == nil {
		*l = ExternalLinks{}
	}
	return nil
}

// scanText normalizes the driver representations of a TEXT column.
func scanText(value interface{}) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("unsupported Scan, storing driver.Value type %T into text column", value)
	}
}
