package archive

import (
	"net/url"
	"path"
	"strings"
	"unicode"

	"github.com/apodgrab/apodgrab/internal/apod"
)

// defaultExt is used when the asset URL's path carries no extension.
const defaultExt = ".jpg"

// MetadataExt is the extension of metadata sibling objects.
const MetadataExt = ".json"

// AssetName derives the deterministic archive key for a record's asset:
// {date}_{sanitized_title}{ext}. Pure string work, no I/O.
func AssetName(rec apod.Record) string {
	return rec.Date + "_" + sanitizeTitle(rec.Title) + assetExt(rec.AssetURL())
}

// MetadataName returns the metadata sibling key for an asset key, sharing
// its stem.
func MetadataName(assetKey string) string {
	ext := path.Ext(assetKey)
	return strings.TrimSuffix(assetKey, ext) + MetadataExt
}

// assetExt extracts the file extension from the URL's path component.
func assetExt(assetURL string) string {
	u, err := url.Parse(assetURL)
	if err != nil {
		return defaultExt
	}
	if ext := path.Ext(u.Path); ext != "" {
		return ext
	}
	return defaultExt
}

// sanitizeTitle makes a title filesystem-safe: every rune outside
// [letter, digit, space, hyphen, underscore] becomes an underscore, then
// spaces become underscores.
func sanitizeTitle(title string) string {
	var b strings.Builder
	b.Grow(len(title))
	for _, r := range title {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '-' || r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('_')
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
