package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/joseph-ayodele/label-intake/internal/common"
)

// Format defines the encoding for CLI and watch-mode output.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
)

// ParseFormat maps a flag or config value onto a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatYAML, FormatJSON, FormatXLSX:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", common.NewAppError("BAD_FORMAT", fmt.Sprintf("unknown output format %q", s), common.ErrInvalidInput)
	}
}

// Ext is the file extension results are written under.
func (f Format) Ext() string { return string(f) }

// Encode writes v to w as YAML or JSON.
func Encode(w io.Writer, format Format, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			_ = enc.Close()
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("encode: unsupported format %q", format)
	}
}
