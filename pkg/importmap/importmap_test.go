package importmap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mwatts/anytype-go/pkg/model"
)

func testProperties() []model.Property {
	return []model.Property{
		{Name: "Status", Key: "status", Format: model.FormatSelect},
		{Name: "Tags", Key: "tags", Format: model.FormatMultiSelect},
		{Name: "Due", Key: "due", Format: model.FormatDate},
		{Name: "Done", Key: "done", Format: model.FormatCheckbox},
		{Name: "Priority", Key: "priority", Format: model.FormatNumber},
	}
}

func TestMapFrontmatter_HappyPath(t *testing.T) {
	fm := map[string]any{
		"Status":   "in-progress",
		"tags":     []any{"urgent", "bug"},
		"Due":      "2026-08-01",
		"Done":     false,
		"Priority": 2,
	}

	values, unmapped, errs := MapFrontmatter(testProperties(), fm)
	require.Empty(t, errs)
	require.Empty(t, unmapped)

	require.Equal(t, "in-progress", values["status"].TagID)
	require.Equal(t, []string{"urgent", "bug"}, values["tags"].TagIDs)
	require.Equal(t, "2026-08-01", values["due"].Date)
	require.False(t, values["done"].Checked)
	require.Equal(t, float64(2), values["priority"].Number)
}

func TestMapFrontmatter_UnmappedKeyPassesThrough(t *testing.T) {
	fm := map[string]any{"unknown_field": "some value"}
	values, unmapped, errs := MapFrontmatter(testProperties(), fm)
	require.Empty(t, errs)
	require.Empty(t, values)
	require.Equal(t, "some value", unmapped["unknown_field"])
}

func TestMapFrontmatter_CollectsErrorsWithoutAbortingDocument(t *testing.T) {
	fm := map[string]any{
		"Priority": "not-a-number",
		"Done":     true,
	}
	values, _, errs := MapFrontmatter(testProperties(), fm)
	require.Len(t, errs, 1)
	require.True(t, values["done"].Checked, "a conversion failure on one key must not prevent others from mapping")
	_, hasPriority := values["priority"]
	require.False(t, hasPriority)
}

func TestMapFrontmatter_KeyOrNameBothResolve(t *testing.T) {
	fm := map[string]any{"status": "blocked"}
	values, _, errs := MapFrontmatter(testProperties(), fm)
	require.Empty(t, errs)
	require.Equal(t, "blocked", values["status"].TagID)
}
