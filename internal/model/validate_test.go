package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_PartialKeepsDefaults(t *testing.T) {
	doc, err := Decode([]byte(`{"personalInfo":{"fullName":"Grace Hopper"}}`))
	require.NoError(t, err)

	assert.Equal(t, "Grace Hopper", doc.PersonalInfo.FullName)
	assert.Equal(t, TemplateModern, doc.Meta.TemplateID)
	assert.Equal(t, "#2563eb", doc.Meta.ThemeColor)
	assert.NotNil(t, doc.Skills)
}

func TestDecode_AbsentColorFollowsTemplate(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{`{"meta":{"templateId":"modern"}}`, "#2563eb"},
		{`{"meta":{"templateId":"classic"}}`, "#111827"},
		{`{"experience":[{"id":"1","jobTitle":"Engineer"}],"meta":{"templateId":"creative"}}`, "#8b5cf6"},
		{`{"meta":{"templateId":"classic","themeColor":""}}`, "#111827"},
		{`{"meta":{"templateId":"brutalist"}}`, ""},
		{`{}`, "#2563eb"},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			doc, err := Decode([]byte(tc.raw))
			require.NoError(t, err)
			assert.Equal(t, tc.want, doc.Meta.ThemeColor)
		})
	}
}

func TestDecode_ExplicitColorWins(t *testing.T) {
	doc, err := Decode([]byte(`{"meta":{"templateId":"creative","themeColor":"#123456"}}`))
	require.NoError(t, err)
	assert.Equal(t, "#123456", doc.Meta.ThemeColor)
}

func TestDecode_FullDocument(t *testing.T) {
	raw := `{
		"personalInfo": {"fullName": "A", "email": "a@example.com", "phone": "", "address": "", "summary": "s"},
		"experience": [{"id": "1", "jobTitle": "Engineer", "company": "Acme", "location": "", "startDate": "2020-01", "endDate": "2022-06", "isCurrent": false, "description": ""}],
		"education": [],
		"skills": [{"id": "2", "name": "Go", "level": "Expert"}],
		"projects": [],
		"meta": {"templateId": "creative", "themeColor": "#000000"}
	}`
	doc, err := Decode([]byte(raw))
	require.NoError(t, err)
	require.Len(t, doc.Experience, 1)
	assert.Equal(t, "Acme", doc.Experience[0].Company)
	assert.Equal(t, LevelExpert, doc.Skills[0].Level)
	assert.Equal(t, TemplateCreative, doc.Meta.TemplateID)
}

func TestValidate_RejectsWrongShape(t *testing.T) {
	cases := map[string]string{
		"experience not array": `{"experience": {"id": "1"}}`,
		"isCurrent not bool":   `{"experience": [{"id": "1", "isCurrent": "yes"}]}`,
		"name not string":      `{"personalInfo": {"fullName": 42}}`,
		"root not object":      `[1, 2]`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			err := Validate([]byte(raw))
			assert.ErrorIs(t, err, ErrInvalidDocument)
		})
	}
}

func TestValidate_MalformedJSON(t *testing.T) {
	_, err := Decode([]byte(`{"personalInfo":`))
	assert.ErrorIs(t, err, ErrInvalidDocument)
}

func TestValidate_UnknownTemplateIsAccepted(t *testing.T) {
	doc, err := Decode([]byte(`{"meta": {"templateId": "brutalist"}}`))
	require.NoError(t, err)
	assert.Equal(t, TemplateID("brutalist"), doc.Meta.TemplateID)
}
