package model

import (
	"encoding/json"
	"testing"

	"github.com/mwatts/anytype-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIconRoundTrip(t *testing.T) {
	cases := []Icon{
		{Format: IconFormatEmoji, Emoji: "📎"},
		{Format: IconFormatFile, File: "file123"},
		{Format: IconFormatIcon, Name: "star", Color: "yellow"},
	}
	for _, c := range cases {
		data, err := json.Marshal(c)
		require.NoError(t, err)
		var out Icon
		require.NoError(t, json.Unmarshal(data, &out))
		assert.Equal(t, c, out)
	}
}

func TestIconUnknownVariantRejected(t *testing.T) {
	var out Icon
	err := json.Unmarshal([]byte(`{"format":"sparkle"}`), &out)
	require.Error(t, err)
	assert.True(t, anytype.IsKind(err, anytype.KindDecode))
}

func TestPropertyValueRoundTrip(t *testing.T) {
	cases := []PropertyValue{
		{Format: FormatText, Text: "hello"},
		{Format: FormatNumber, Number: 42.5},
		{Format: FormatSelect, TagID: "tag1"},
		{Format: FormatMultiSelect, TagIDs: []string{"tag1", "tag2"}},
		{Format: FormatDate, Date: "2026-01-01"},
		{Format: FormatFiles, FileIDs: []string{"f1"}},
		{Format: FormatCheckbox, Checked: true},
		{Format: FormatURL, Text: "https://example.com"},
		{Format: FormatEmail, Text: "a@example.com"},
		{Format: FormatPhone, Text: "+15555550100"},
		{Format: FormatObjects, ObjectID: []string{"o1", "o2"}},
	}
	for _, c := range cases {
		data, err := json.Marshal(c)
		require.NoError(t, err)
		var out PropertyValue
		require.NoError(t, json.Unmarshal(data, &out))
		assert.Equal(t, c, out)
	}
}

func TestPropertyValueUnknownVariantRejected(t *testing.T) {
	var out PropertyValue
	err := json.Unmarshal([]byte(`{"format":"bogus"}`), &out)
	require.Error(t, err)
	assert.True(t, anytype.IsKind(err, anytype.KindDecode))
}

func TestPropertyValueValidateRejectsMismatch(t *testing.T) {
	v := PropertyValue{Format: FormatSelect} // missing TagID
	require.Error(t, v.Validate())
}

func TestObjectDisplayNameFallback(t *testing.T) {
	assert.Equal(t, "Spec", Object{Name: "Spec", Snippet: "snip", ID: "O1"}.DisplayName())
	assert.Equal(t, "snip", Object{Snippet: "snip", ID: "O1"}.DisplayName())
	assert.Equal(t, "O1", Object{ID: "O1"}.DisplayName())
}

func TestPaginationValid(t *testing.T) {
	p := Pagination{Offset: 0, Limit: 10, Total: 25, HasMore: true}
	assert.True(t, p.Valid(10))

	p2 := Pagination{Offset: 20, Limit: 10, Total: 25, HasMore: false}
	assert.True(t, p2.Valid(5))

	bad := Pagination{Offset: 0, Limit: 10, Total: 25, HasMore: false}
	assert.False(t, bad.Valid(10)) // has_more should be true here

	assert.False(t, Pagination{Offset: -1, Limit: 10}.Valid(0))
	assert.False(t, Pagination{Offset: 0, Limit: 0}.Valid(0))
}

func TestObjectRoundTripWithProperties(t *testing.T) {
	o := Object{
		ID:      "O1",
		Name:    "Spec",
		SpaceID: "SP1",
		TypeID:  "T1",
		TypeKey: "ot_task",
		Properties: map[string]PropertyValue{
			"status": {Format: FormatSelect, TagID: "done"},
		},
	}
	data, err := json.Marshal(o)
	require.NoError(t, err)
	var out Object
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, o, out)
}
