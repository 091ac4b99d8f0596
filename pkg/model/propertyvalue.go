package model

import (
	"encoding/json"
	"fmt"

	"github.com/mwatts/anytype-go"
)

// PropertyFormat is the closed set of property value shapes the service
// supports (spec §6.2). Any other value observed on the wire is a
// decode error, never a silent default.
type PropertyFormat string

const (
	FormatText        PropertyFormat = "text"
	FormatNumber      PropertyFormat = "number"
	FormatSelect      PropertyFormat = "select"
	FormatMultiSelect PropertyFormat = "multi_select"
	FormatDate        PropertyFormat = "date"
	FormatFiles       PropertyFormat = "files"
	FormatCheckbox    PropertyFormat = "checkbox"
	FormatURL         PropertyFormat = "url"
	FormatEmail       PropertyFormat = "email"
	FormatPhone       PropertyFormat = "phone"
	FormatObjects     PropertyFormat = "objects"
)

func validPropertyFormat(f PropertyFormat) bool {
	switch f {
	case FormatText, FormatNumber, FormatSelect, FormatMultiSelect, FormatDate,
		FormatFiles, FormatCheckbox, FormatURL, FormatEmail, FormatPhone, FormatObjects:
		return true
	default:
		return false
	}
}

// PropertyValue is a discriminated union over the closed property
// format set. Only the field matching Format is meaningful; the rest
// are zero. Type-checked encoding (spec §4.1) is enforced by Validate.
type PropertyValue struct {
	Format PropertyFormat

	Text     string   // text, url, email, phone
	Number   float64  // number
	TagID    string   // select
	TagIDs   []string // multi_select
	Date     string   // date, ISO-8601
	FileIDs  []string // files
	Checked  bool     // checkbox
	ObjectID []string // objects
}

type propertyValueWire struct {
	Format   PropertyFormat `json:"format"`
	Text     *string        `json:"text,omitempty"`
	Number   *float64       `json:"number,omitempty"`
	TagID    *string        `json:"tag,omitempty"`
	TagIDs   []string       `json:"tags,omitempty"`
	Date     *string        `json:"date,omitempty"`
	FileIDs  []string       `json:"files,omitempty"`
	Checked  *bool          `json:"checkbox,omitempty"`
	ObjectID []string       `json:"objects,omitempty"`
}

// Validate enforces the format's type-checked encoding contract: a
// select value needs exactly a TagID, a checkbox needs a bool, and so
// on. Called before every property-value update request (spec §4.1).
func (v PropertyValue) Validate() error {
	if !validPropertyFormat(v.Format) {
		return fmt.Errorf("anytype/model: property value: unknown format %q", v.Format)
	}
	switch v.Format {
	case FormatSelect:
		if v.TagID == "" {
			return fmt.Errorf("anytype/model: property value: select requires a tag id")
		}
	case FormatMultiSelect:
		if len(v.TagIDs) == 0 {
			return fmt.Errorf("anytype/model: property value: multi_select requires at least one tag id")
		}
	case FormatObjects:
		if len(v.ObjectID) == 0 {
			return fmt.Errorf("anytype/model: property value: objects requires at least one object id")
		}
	case FormatDate:
		if v.Date == "" {
			return fmt.Errorf("anytype/model: property value: date requires an ISO-8601 string")
		}
	}
	return nil
}

func (v PropertyValue) MarshalJSON() ([]byte, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	w := propertyValueWire{Format: v.Format}
	switch v.Format {
	case FormatText, FormatURL, FormatEmail, FormatPhone:
		w.Text = &v.Text
	case FormatNumber:
		w.Number = &v.Number
	case FormatSelect:
		w.TagID = &v.TagID
	case FormatMultiSelect:
		w.TagIDs = v.TagIDs
	case FormatDate:
		w.Date = &v.Date
	case FormatFiles:
		w.FileIDs = v.FileIDs
	case FormatCheckbox:
		w.Checked = &v.Checked
	case FormatObjects:
		w.ObjectID = v.ObjectID
	}
	return json.Marshal(w)
}

func (v *PropertyValue) UnmarshalJSON(data []byte) error {
	var w propertyValueWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if !validPropertyFormat(w.Format) {
		return &anytype.Error{
			Kind:   anytype.KindDecode,
			Entity: "property_value",
			Op:     "decode_property_value",
			Err:    fmt.Errorf("unknown property format %q", w.Format),
		}
	}
	out := PropertyValue{Format: w.Format}
	if w.Text != nil {
		out.Text = *w.Text
	}
	if w.Number != nil {
		out.Number = *w.Number
	}
	if w.TagID != nil {
		out.TagID = *w.TagID
	}
	out.TagIDs = w.TagIDs
	if w.Date != nil {
		out.Date = *w.Date
	}
	out.FileIDs = w.FileIDs
	if w.Checked != nil {
		out.Checked = *w.Checked
	}
	out.ObjectID = w.ObjectID
	*v = out
	return nil
}
