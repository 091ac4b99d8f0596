// Package importmap specifies the contract a markdown/YAML-frontmatter
// importer must satisfy to hand the core typed property values. Parsing
// markdown or YAML itself is out of scope (spec §1 Non-goals); this
// package starts from an already-decoded map[string]any frontmatter and
// ends at model.PropertyValue, the same closed value set the client
// sends on the wire.
package importmap

import (
	"fmt"

	"github.com/mwatts/anytype-go/pkg/model"
)

// MapFrontmatter converts frontmatter scalars/lists to the closed
// property-value set of spec §4.1, type-checked against each matching
// Property.Format. It does not fail fast: a document maps partially,
// with every per-key conversion failure collected into the returned
// error slice. Unknown keys (no matching Property.Name or Key) pass
// through untouched in the Unmapped side channel for the caller to
// decide what to do with.
func MapFrontmatter(props []model.Property, frontmatter map[string]any) (values map[string]model.PropertyValue, unmapped map[string]any, errs []error) {
	byName := make(map[string]model.Property, len(props)*2)
	for _, p := range props {
		byName[p.Name] = p
		byName[p.Key] = p
	}

	values = make(map[string]model.PropertyValue, len(frontmatter))
	unmapped = make(map[string]any)

	for key, raw := range frontmatter {
		prop, ok := byName[key]
		if !ok {
			unmapped[key] = raw
			continue
		}
		pv, err := convert(prop.Format, raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
			continue
		}
		values[prop.Key] = pv
	}
	return values, unmapped, errs
}

func convert(format model.PropertyFormat, raw any) (model.PropertyValue, error) {
	pv := model.PropertyValue{Format: format}
	switch format {
	case model.FormatText, model.FormatURL, model.FormatEmail, model.FormatPhone:
		s, ok := raw.(string)
		if !ok {
			return pv, fmt.Errorf("expected a string, got %T", raw)
		}
		pv.Text = s
	case model.FormatNumber:
		n, err := toFloat(raw)
		if err != nil {
			return pv, err
		}
		pv.Number = n
	case model.FormatCheckbox:
		b, ok := raw.(bool)
		if !ok {
			return pv, fmt.Errorf("expected a bool, got %T", raw)
		}
		pv.Checked = b
	case model.FormatDate:
		s, ok := raw.(string)
		if !ok {
			return pv, fmt.Errorf("expected an ISO-8601 string, got %T", raw)
		}
		pv.Date = s
	case model.FormatSelect:
		s, ok := raw.(string)
		if !ok {
			return pv, fmt.Errorf("expected a single tag value, got %T", raw)
		}
		pv.TagID = s
	case model.FormatMultiSelect:
		ss, err := toStringSlice(raw)
		if err != nil {
			return pv, err
		}
		pv.TagIDs = ss
	case model.FormatFiles:
		ss, err := toStringSlice(raw)
		if err != nil {
			return pv, err
		}
		pv.FileIDs = ss
	case model.FormatObjects:
		ss, err := toStringSlice(raw)
		if err != nil {
			return pv, err
		}
		pv.ObjectID = ss
	default:
		return pv, fmt.Errorf("unsupported property format %q", format)
	}
	if err := pv.Validate(); err != nil {
		return pv, err
	}
	return pv, nil
}

func toFloat(raw any) (float64, error) {
	switch n := raw.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("expected a number, got %T", raw)
	}
}

func toStringSlice(raw any) ([]string, error) {
	items, ok := raw.([]any)
	if !ok {
		if s, ok := raw.(string); ok {
			return []string{s}, nil
		}
		return nil, fmt.Errorf("expected a list, got %T", raw)
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("expected list items to be strings, got %T", item)
		}
		out = append(out, s)
	}
	return out, nil
}
