package constants

import "strings"

// AllowedExtensions holds the raw-extraction file extensions picked up by ingest.
var AllowedExtensions = map[string]struct{}{
	"json": {},
	"yaml": {},
	"yml":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsYAMLExt reports whether a normalized extension holds YAML.
func IsYAMLExt(ext string) bool {
	ext = NormalizeExt(ext)
	return ext == "yaml" || ext == "yml"
}
