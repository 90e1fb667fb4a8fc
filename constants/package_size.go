package constants

import "strings"

// PackageSize is the shelf-size bucket used at check-in.
type PackageSize string

const (
	SizeLetter PackageSize = "letter"
	SizePack   PackageSize = "pack"
	SizeSmall  PackageSize = "small"
	SizeMedium PackageSize = "medium"
	SizeLarge  PackageSize = "large"
	SizeXLarge PackageSize = "xlarge"
)

var sizeAliases = map[string]PackageSize{
	"letter":   SizeLetter,
	"envelope": SizeLetter,
	"flat":     SizeLetter,

	"pack":          SizePack,
	"softpak":       SizePack,
	"bubble mailer": SizePack,
	"polybag":       SizePack,

	"small": SizeSmall,
	"sm":    SizeSmall,

	"medium": SizeMedium,
	"med":    SizeMedium,
	"md":     SizeMedium,

	"large": SizeLarge,
	"lg":    SizeLarge,
	"big":   SizeLarge,

	"xlarge":      SizeXLarge,
	"extra large": SizeXLarge,
	"xl":          SizeXLarge,
	"oversized":   SizeXLarge,
	"oversize":    SizeXLarge,
	"huge":        SizeXLarge,
}

// NormalizePackageSize maps a size guess onto a bucket. Empty and
// unrecognized input both fall back to medium.
func NormalizePackageSize(input string) PackageSize {
	s, _ := LookupPackageSize(input)
	return s
}

// LookupPackageSize is NormalizePackageSize that also reports whether the
// input was a known alias.
func LookupPackageSize(input string) (PackageSize, bool) {
	cleaned := strings.ToLower(strings.TrimSpace(input))
	if s, ok := sizeAliases[cleaned]; ok {
		return s, true
	}
	return SizeMedium, false
}

func (p PackageSize) String() string { return string(p) }
