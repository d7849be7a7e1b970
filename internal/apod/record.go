package apod

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MediaTypeImage is the media type of downloadable picture records. Other
// values (video, interactive pages) carry no image asset.
const MediaTypeImage = "image"

// Record is one APOD entry. Immutable once decoded.
type Record struct {
	Date      string `json:"date"`
	Title     string `json:"title"`
	MediaType string `json:"media_type"`
	URL       string `json:"url"`
	HDURL     string `json:"hdurl"`

	// Raw is the record's payload exactly as returned by the API.
	Raw json.RawMessage `json:"-"`
}

// AssetURL returns the URL to download for this record, preferring the
// high-resolution variant. Empty when the record carries neither.
func (r Record) AssetURL() string {
	if r.HDURL != "" {
		return r.HDURL
	}
	return r.URL
}

// decodeRecord decodes one JSON object into a Record, retaining the
// verbatim payload.
func decodeRecord(raw json.RawMessage) (Record, error) {
	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return Record{}, fmt.Errorf("decode record: %w", err)
	}
	rec.Raw = raw
	return rec, nil
}

// normalize turns an API response body into records regardless of whether
// the API answered with a single object or an array.
func normalize(body json.RawMessage) ([]Record, error) {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty response body")
	}

	if trimmed[0] != '[' {
		rec, err := decodeRecord(body)
		if err != nil {
			return nil, err
		}
		return []Record{rec}, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("decode record list: %w", err)
	}

	recs := make([]Record, 0, len(items))
	for _, item := range items {
		rec, err := decodeRecord(item)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, nil
}
