package model

import (
	"encoding/json"
	"fmt"
)

type CustomOptionsKind string

const (
	CustomOptionsKindImage CustomOptionsKind = "image"
	CustomOptionsKindText  CustomOptionsKind = "text"
)

// CustomOptions describes a shopper's print customization. The payload is
// a tagged variant: an uploaded design image or a rendered text design.
// Rows store it as raw JSONB; this type is the validated boundary shape.
type CustomOptions struct {
	Kind          CustomOptionsKind `json:"kind"`
	PrintLocation string            `json:"printLocation"`
	RushOrder     bool              `json:"rushOrder,omitempty"`

	// image kind
	DesignURL string `json:"designUrl,omitempty"`

	// text kind
	Text       string `json:"text,omitempty"`
	TextColor  string `json:"textColor,omitempty"`
	FontSize   string `json:"fontSize,omitempty"`
	FontFamily string `json:"fontFamily,omitempty"`
}

var printLocations = map[string]bool{
	"front": true,
	"back":  true,
}

func (o *CustomOptions) Validate() error {
	if !printLocations[o.PrintLocation] {
		return fmt.Errorf("unknown print location %q", o.PrintLocation)
	}

	switch o.Kind {
	case CustomOptionsKindImage:
		if o.DesignURL == "" {
			return fmt.Errorf("image options require a design url")
		}
		return nil
	case CustomOptionsKindText:
		if o.Text == "" {
			return fmt.Errorf("text options require text")
		}
		return nil
	default:
		return fmt.Errorf("unknown custom options kind %q", o.Kind)
	}
}

// ParseCustomOptions decodes and validates a raw custom options payload.
func ParseCustomOptions(raw json.RawMessage) (*CustomOptions, error) {
	var opts CustomOptions
	if err := json.Unmarshal(raw, &opts); err != nil {
		return nil, fmt.Errorf("decode custom options: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &opts, nil
}
