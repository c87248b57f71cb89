package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// SubEntryKind is the wire tag of a sub-entry variant.
type SubEntryKind string

const (
	KindCV       SubEntryKind = "CV"
	KindCUV      SubEntryKind = "CUV"
	KindLiveArea SubEntryKind = "Live Area"
)

// Kinds lists every variant in the order the editor offers them.
var Kinds = []SubEntryKind{KindCV, KindCUV, KindLiveArea}

var (
	ErrUnknownSubEntryType = errors.New("unknown sub-entry type")
	ErrUnknownField        = errors.New("unknown field")
)

// ParseKind accepts the canonical tags case-insensitively, plus the
// shorthands "live", "livearea" and "live-area" for Live Area.
func ParseKind(s string) (SubEntryKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cv":
		return KindCV, nil
	case "cuv":
		return KindCUV, nil
	case "live area", "live", "livearea", "live-area", "live_area":
		return KindLiveArea, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSubEntryType, s)
}

// Slug is the lower-case, dash-separated form used for local identifiers.
func (k SubEntryKind) Slug() string {
	return strings.ReplaceAll(strings.ToLower(string(k)), " ", "-")
}

// SubEntry is one inspected configuration under a URN. The set of
// implementations is closed: *CV, *CUV and *LiveArea.
type SubEntry interface {
	Kind() SubEntryKind
	// Fields returns the variant-specific inputs in form order.
	Fields() []Field
	// SetField assigns one of the inputs returned by Fields.
	SetField(name, value string) error
	Image() *ImagePreview
	SetImage(p *ImagePreview)

	sealed()
}

// previewSlot carries the local-only image preview shared by all variants.
type previewSlot struct {
	preview *ImagePreview
}

func (p *previewSlot) Image() *ImagePreview     { return p.preview }
func (p *previewSlot) SetImage(v *ImagePreview) { p.preview = v }

// CV is a camera view; it records the camera it was inspected on.
type CV struct {
	previewSlot
	CameraID string
}

// CUV records the location, engine and camera of the inspected unit.
type CUV struct {
	previewSlot
	LocationCode string
	EngineID     string
	CameraID     string
}

// LiveArea has no inputs of its own.
type LiveArea struct {
	previewSlot
}

func (*CV) Kind() SubEntryKind       { return KindCV }
func (*CUV) Kind() SubEntryKind      { return KindCUV }
func (*LiveArea) Kind() SubEntryKind { return KindLiveArea }

func (*CV) sealed()       {}
func (*CUV) sealed()      {}
func (*LiveArea) sealed() {}

func (e *CV) Fields() []Field {
	return []Field{{Name: "camera_id", Label: "Camera ID", Value: e.CameraID}}
}

func (e *CUV) Fields() []Field {
	return []Field{
		{Name: "location_code", Label: "Location Code", Value: e.LocationCode},
		{Name: "engine_id", Label: "Engine ID", Value: e.EngineID},
		{Name: "camera_id", Label: "Camera ID", Value: e.CameraID},
	}
}

func (*LiveArea) Fields() []Field { return nil }

func (e *CV) SetField(name, value string) error {
	if name != "camera_id" {
		return fmt.Errorf("%w %q for %s", ErrUnknownField, name, KindCV)
	}
	e.CameraID = value
	return nil
}

func (e *CUV) SetField(name, value string) error {
	switch name {
	case "location_code":
		e.LocationCode = value
	case "engine_id":
		e.EngineID = value
	case "camera_id":
		e.CameraID = value
	default:
		return fmt.Errorf("%w %q for %s", ErrUnknownField, name, KindCUV)
	}
	return nil
}

func (*LiveArea) SetField(name, _ string) error {
	return fmt.Errorf("%w %q for %s", ErrUnknownField, name, KindLiveArea)
}

// NewSubEntry returns an empty sub-entry of the given kind.
func NewSubEntry(kind SubEntryKind) (SubEntry, error) {
	switch kind {
	case KindCV:
		return &CV{}, nil
	case KindCUV:
		return &CUV{}, nil
	case KindLiveArea:
		return &LiveArea{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSubEntryType, kind)
}

type cvWire struct {
	Type     SubEntryKind `json:"type"`
	CameraID string       `json:"camera_id"`
}

type cuvWire struct {
	Type         SubEntryKind `json:"type"`
	LocationCode string       `json:"location_code"`
	EngineID     string       `json:"engine_id"`
	CameraID     string       `json:"camera_id"`
}

type liveAreaWire struct {
	Type SubEntryKind `json:"type"`
}

func (e *CV) MarshalJSON() ([]byte, error) {
	return json.Marshal(cvWire{Type: KindCV, CameraID: e.CameraID})
}

func (e *CUV) MarshalJSON() ([]byte, error) {
	return json.Marshal(cuvWire{Type: KindCUV, LocationCode: e.LocationCode, EngineID: e.EngineID, CameraID: e.CameraID})
}

func (e *LiveArea) MarshalJSON() ([]byte, error) {
	return json.Marshal(liveAreaWire{Type: KindLiveArea})
}

// DecodeSubEntry decodes one tagged sub-entry. Fields that do not belong to
// the tagged variant are ignored.
func DecodeSubEntry(b []byte) (SubEntry, error) {
	var tag liveAreaWire
	if err := json.Unmarshal(b, &tag); err != nil {
		return nil, err
	}

	switch tag.Type {
	case KindCV:
		var w cvWire
		if err := json.Unmarshal(b, &w); err != nil {
			return nil, err
		}
		return &CV{CameraID: w.CameraID}, nil
	case KindCUV:
		var w cuvWire
		if err := json.Unmarshal(b, &w); err != nil {
			return nil, err
		}
		return &CUV{LocationCode: w.LocationCode, EngineID: w.EngineID, CameraID: w.CameraID}, nil
	case KindLiveArea:
		return &LiveArea{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSubEntryType, tag.Type)
}
