package validation_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/dangerclosesec/clubmap/internal/domain"
	"github.com/dangerclosesec/clubmap/internal/model"
	"github.com/dangerclosesec/clubmap/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCoordinates(t *testing.T) {
	valid := [][2]float64{
		{0, 0}, {-180, -90}, {180, 90}, {120.1, 30.2}, {-73.9857, 40.7484},
	}
	for _, c := range valid {
		assert.NoError(t, validation.ValidateCoordinates(c[0], c[1]), "%v", c)
	}

	invalid := []struct {
		lng, lat float64
		field    string
	}{
		{180.0001, 0, "longitude"},
		{-181, 0, "longitude"},
		{0, 90.5, "latitude"},
		{0, -91, "latitude"},
		{math.NaN(), 0, "longitude"},
		{0, math.Inf(1), "latitude"},
	}
	for _, c := range invalid {
		err := validation.ValidateCoordinates(c.lng, c.lat)
		var verr *domain.ValidationError
		if assert.ErrorAs(t, err, &verr, "%v", c) {
			assert.Equal(t, c.field, verr.Field)
		}
	}
}

func TestNormalize(t *testing.T) {
	name := "  Foo Club \n"
	assert.Equal(t, "Foo Club", validation.NormalizeName(&name))
	assert.Equal(t, "", validation.NormalizeName(nil))
	assert.Equal(t, "", validation.NormalizeSchool(nil))

	school := "\tX High"
	assert.Equal(t, "X High", validation.NormalizeSchool(&school))
}

func decode(t *testing.T, text string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(text), &v))
	return v
}

func TestValidateExternalLinks(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"null", `null`, ""},
		{"empty list", `[]`, ""},
		{"minimal", `[{"type":"discord","url":"https://x"}]`, ""},
		{"null qrcode", `[{"type":"qq","url":"1","qrcode":null}]`, ""},
		{"extra fields", `[{"type":"qq","url":"1","qrcode":"a.png","label":"x"}]`, ""},
		{"not a list", `"not a list"`, "externalLinks must be a list"},
		{"object", `{"type":"qq"}`, "externalLinks must be a list"},
		{"item not object", `["https://x"]`, "externalLinks items must be objects"},
		{"missing url", `[{"type":"discord"}]`, "externalLinks items must include 'type' and 'url'"},
		{"missing type", `[{"url":"https://x"}]`, "externalLinks items must include 'type' and 'url'"},
		{"numeric url", `[{"type":"qq","url":123}]`, "externalLinks 'type' and 'url' must be strings"},
		{"null type", `[{"type":null,"url":"x"}]`, "externalLinks 'type' and 'url' must be strings"},
		{"numeric qrcode", `[{"type":"qq","url":"1","qrcode":5}]`, "externalLinks 'qrcode' must be a string when present"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.ValidateExternalLinks(decode(t, tt.input))
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "externalLinks", verr.Field)
			assert.Equal(t, tt.wantErr, verr.Message)
		})
	}

	assert.NoError(t, validation.ValidateExternalLinks(nil))
}

func TestToExternalLinks(t *testing.T) {
	links, err := validation.ToExternalLinks(decode(t, `[{"type":"discord","url":"https://x"},{"type":"qq","url":"1","qrcode":"q.png"}]`))
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Nil(t, links[0].QRCode)
	assert.Equal(t, "q.png", *links[1].QRCode)

	links, err = validation.ToExternalLinks(nil)
	require.NoError(t, err)
	assert.Equal(t, model.ExternalLinks{}, links)

	_, err = validation.ToExternalLinks("nope")
	assert.Error(t, err)
}

func TestValidateClubData(t *testing.T) {
	data := model.ClubData{Name: "Foo", School: "X", Province: "Zhejiang", Longitude: 120, Latitude: 30}
	assert.NoError(t, validation.ValidateClubData(data))

	bad := data
	bad.Latitude = 100
	assert.ErrorIs(t, validation.ValidateClubData(bad), domain.ErrInvalidInput)

	bad = data
	bad.Name = ""
	var one domain.ValidationErrors
	require.ErrorAs(t, validation.ValidateClubData(bad), &one)
	require.Len(t, one, 1)
	assert.Equal(t, "name", one[0].Field)

	bad = model.ClubData{}
	var all domain.ValidationErrors
	require.ErrorAs(t, validation.ValidateClubData(bad), &all)
	assert.Len(t, all, 3)

	bad = data
	bad.ExternalLinks = model.ExternalLinks{{Type: "qq"}}
	assert.Error(t, validation.ValidateClubData(bad))
}

type Contact struct {
	Phone string `json:"phone" validate:"required"`
}

type signup struct {
	Contact
	Email string `json:"submitterEmail" validate:"required,email"`
	Type  string `json:"submissionType" validate:"oneof=new edit"`
	Inner struct {
		Name string `json:"name" validate:"required"`
	} `json:"coordinates"`
}

func TestValidateStruct(t *testing.T) {
	var in signup
	in.Type = "delete"
	in.Email = "nope"

	err := validation.ValidateStruct(in)
	var all domain.ValidationErrors
	require.ErrorAs(t, err, &all)

	fields := map[string]string{}
	for _, e := range all {
		fields[e.Field] = e.Message
	}
	assert.Equal(t, "must be a valid email address", fields["submitterEmail"])
	assert.Equal(t, "must be one of: new edit", fields["submissionType"])
	assert.Equal(t, "is required", fields["coordinates.name"])
	assert.Equal(t, "is required", fields["phone"], "embedded fields are flattened")

	in.Email = "a@b.co"
	in.Type = "new"
	in.Inner.Name = "x"
	in.Phone = "555"
	assert.NoError(t, validation.ValidateStruct(in))
}

func TestSanitizeText(t *testing.T) {
	assert.Equal(t, "hi", validation.SanitizeText("<script>alert(1)</script>hi"))
	assert.Equal(t, "Bold & more", validation.SanitizeText(" <b>Bold</b> & more "))
	assert.Equal(t, "Tom's 游戏社", validation.SanitizeText("Tom's 游戏社"))
	assert.Equal(t, []string{"a", "b"}, validation.SanitizeList([]string{" a", "<i></i>", "b"}))
	assert.Equal(t, "1 < 2", validation.SanitizeText("1 < 2"))
}

func TestSanitizeTextDecodesEntitiesSafely(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"encoded tag", "&lt;img src=x onerror=alert(1)&gt;Club", "Club"},
		{"encoded script", "&lt;script&gt;alert(1)&lt;/script&gt;Chess", "Chess"},
		{"double encoded", "&amp;lt;b&amp;gt;Go&amp;lt;/b&amp;gt;", "Go"},
		{"plain entity", "Tea &amp; Games", "Tea & Games"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := validation.SanitizeText(tt.in)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "<")
		})
	}
}
