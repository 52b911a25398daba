package media

import (
	"path/filepath"
	"strings"
)

// Format is a decodable sound asset container.
type Format string

const (
	WAV  Format = "wav"
	MP3  Format = "mp3"
	OGG  Format = "ogg"
	FLAC Format = "flac"
)

var assetExts = map[string]Format{
	".wav":  WAV,
	".wave": WAV,
	".mp3":  MP3,
	".ogg":  OGG,
	".oga":  OGG,
	".flac": FLAC,
}

// FormatOf returns the asset format for path based on its extension.
func FormatOf(path string) (Format, bool) {
	f, ok := assetExts[strings.ToLower(filepath.Ext(path))]
	return f, ok
}

// IsSupportedExt returns true if the extension is a decodable sound asset.
func IsSupportedExt(ext string) bool {
	_, ok := assetExts[strings.ToLower(ext)]
	return ok
}

// SupportedExtsList returns a human-readable list of supported asset formats.
func SupportedExtsList() string {
	return ".wav, .mp3, .ogg, .flac"
}
