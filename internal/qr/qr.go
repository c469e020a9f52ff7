// Package qr encodes equipment labels as QR payloads and decodes scanned
// text back into an equipment id. Decoding tolerates three shapes: the
// structured JSON payload this package produces, a URL containing
// /equipment/<id> or /scan/<id>, and a bare numeric id.
package qr

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// ErrNotRecognized is returned when scanned text matches none of the
// supported payload shapes.
var ErrNotRecognized = errors.New("unable to parse QR code data")

// Payload is the structured label content printed on equipment tags.
type Payload struct {
	Type     string `json:"type"`
	ID       int64  `json:"id"`
	Name     string `json:"name,omitempty"`
	Category string `json:"category,omitempty"`
	URL      string `json:"url,omitempty"`
	ScanURL  string `json:"scan_url,omitempty"`
}

// ScanResult identifies the equipment a scanned text refers to and which
// shape the text arrived in.
type ScanResult struct {
	EquipmentID int64  `json:"equipment_id"`
	Name        string `json:"name,omitempty"`
	Category    string `json:"category,omitempty"`
	Shape       string `json:"shape"` // "payload", "url", "scan_url" or "id"
}

type Codec struct {
	baseURL string
}

func NewCodec(baseURL string) *Codec {
	return &Codec{baseURL: strings.TrimRight(baseURL, "/")}
}

// Encode builds the JSON label payload for one equipment item.
func (c *Codec) Encode(id int64, name, category string) (string, error) {
	p := Payload{
		Type:     "equipment",
		ID:       id,
		Name:     name,
		Category: category,
		URL:      fmt.Sprintf("%s/equipment/%d", c.baseURL, id),
		ScanURL:  fmt.Sprintf("%s/scan/%d", c.baseURL, id),
	}
	data, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// EncodePNG renders the label payload as a PNG image of the given size.
func (c *Codec) EncodePNG(id int64, name, category string, size int) ([]byte, error) {
	payload, err := c.Encode(id, name, category)
	if err != nil {
		return nil, err
	}
	return qrcode.Encode(payload, qrcode.Low, size)
}

// Decode parses arbitrary scanned text into a ScanResult.
func Decode(text string) (*ScanResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrNotRecognized
	}

	var p Payload
	if err := json.Unmarshal([]byte(text), &p); err == nil && p.Type == "equipment" && p.ID > 0 {
		return &ScanResult{EquipmentID: p.ID, Name: p.Name, Category: p.Category, Shape: "payload"}, nil
	}

	if strings.HasPrefix(text, "http") {
		if id, ok := idFromURL(text, "/equipment/"); ok {
			return &ScanResult{EquipmentID: id, Shape: "url"}, nil
		}
		if id, ok := idFromURL(text, "/scan/"); ok {
			return &ScanResult{EquipmentID: id, Shape: "scan_url"}, nil
		}
	}

	if id, err := strconv.ParseInt(text, 10, 64); err == nil && id > 0 {
		return &ScanResult{EquipmentID: id, Shape: "id"}, nil
	}

	return nil, ErrNotRecognized
}

func idFromURL(url, marker string) (int64, bool) {
	idx := strings.LastIndex(url, marker)
	if idx < 0 {
		return 0, false
	}
	rest := url[idx+len(marker):]
	// strip query string and any trailing path segments
	if i := strings.IndexAny(rest, "?/"); i >= 0 {
		rest = rest[:i]
	}
	id, err := strconv.ParseInt(rest, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
