package model

import (
	"encoding/json"
	"fmt"

	"github.com/mwatts/anytype-go"
)

// IconFormat is the closed discriminator set for Icon.
type IconFormat string

const (
	IconFormatEmoji IconFormat = "emoji"
	IconFormatFile  IconFormat = "file"
	IconFormatIcon  IconFormat = "icon"
)

// Icon is a discriminated union: exactly one of Emoji, File, or a named
// Icon with an optional color. The discriminator field on the wire is
// "format"; it must round-trip exactly (spec §4.1 contract).
type Icon struct {
	Format IconFormat

	Emoji string // set when Format == IconFormatEmoji

	File string // set when Format == IconFormatFile

	Name  string // set when Format == IconFormatIcon
	Color string // optional, only meaningful when Format == IconFormatIcon
}

type iconWire struct {
	Format IconFormat `json:"format"`
	Emoji  string     `json:"emoji,omitempty"`
	File   string     `json:"file,omitempty"`
	Name   string     `json:"name,omitempty"`
	Color  string     `json:"color,omitempty"`
}

// MarshalJSON omits fields that don't belong to the active variant, so
// an Emoji icon never serializes a stray "name" or "color" key.
func (i Icon) MarshalJSON() ([]byte, error) {
	w := iconWire{Format: i.Format}
	switch i.Format {
	case IconFormatEmoji:
		w.Emoji = i.Emoji
	case IconFormatFile:
		w.File = i.File
	case IconFormatIcon:
		w.Name = i.Name
		w.Color = i.Color
	default:
		return nil, fmt.Errorf("anytype/model: icon: unknown format %q", i.Format)
	}
	return json.Marshal(w)
}

func (i *Icon) UnmarshalJSON(data []byte) error {
	var w iconWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	switch w.Format {
	case IconFormatEmoji, IconFormatFile, IconFormatIcon:
		// known, fall through
	default:
		return &anytype.Error{
			Kind:   anytype.KindDecode,
			Entity: "icon",
			Op:     "decode_icon",
			Err:    fmt.Errorf("unknown icon format %q", w.Format),
		}
	}
	i.Format = w.Format
	i.Emoji = w.Emoji
	i.File = w.File
	i.Name = w.Name
	i.Color = w.Color
	return nil
}
