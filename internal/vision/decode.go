// Package vision is the boundary with the upstream vision model: the prompt
// and schema it is given, and lenient decoding of what it sends back into
// extract.RawExtraction records.
package vision

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/joseph-ayodele/label-intake/constants"
	"github.com/joseph-ayodele/label-intake/internal/common"
	"github.com/joseph-ayodele/label-intake/internal/extract"
)

// ErrInvalidPayload marks input that cannot be read as label objects at all.
// Missing or odd fields inside a label are not errors.
var ErrInvalidPayload = fmt.Errorf("invalid vision payload: %w", common.ErrInvalidInput)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForExt picks the payload format from a file extension; anything
// that is not YAML is read as JSON.
func FormatForExt(ext string) Format {
	if constants.IsYAMLExt(ext) {
		return FormatYAML
	}
	return FormatJSON
}

type Decoder struct {
	logger   *slog.Logger
	validate bool
}

type DecoderOption func(*Decoder)

func WithDecodeLogger(l *slog.Logger) DecoderOption {
	return func(d *Decoder) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithSchemaValidation toggles the LabelSchema check on each sanitized label.
func WithSchemaValidation(on bool) DecoderOption {
	return func(d *Decoder) { d.validate = on }
}

func NewDecoder(opts ...DecoderOption) *Decoder {
	d := &Decoder{logger: slog.Default(), validate: true}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Decode reads a single label object, an array of them, or an object with a
// "labels" array. Markdown code fences around the payload are tolerated.
func (d *Decoder) Decode(data []byte, format Format) ([]extract.RawExtraction, error) {
	data = stripFences(data)
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrInvalidPayload)
	}

	var doc any
	switch format {
	case FormatYAML:
		var root yaml.Node
		if err := yaml.Unmarshal(data, &root); err != nil {
			return nil, fmt.Errorf("%w: yaml: %v", ErrInvalidPayload, err)
		}
		v, err := fromYAMLNode(&root)
		if err != nil {
			return nil, fmt.Errorf("%w: yaml: %v", ErrInvalidPayload, err)
		}
		doc = v
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: json: %v", ErrInvalidPayload, err)
		}
	}

	items, err := unwrap(doc)
	if err != nil {
		return nil, err
	}

	out := make([]extract.RawExtraction, 0, len(items))
	for i, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: label %d is %T, want object", ErrInvalidPayload, i, item)
		}
		clean, notes := Sanitize(m)
		if len(notes) > 0 {
			d.logger.Warn("vision.decode.sanitize", "index", i, "notes", notes)
		}
		if d.validate {
			if err := validateLabel(clean); err != nil {
				return nil, fmt.Errorf("label %d: %w", i, err)
			}
		}
		out = append(out, toRaw(clean))
	}

	d.logger.Debug("vision.decode.ok", "format", format, "labels", len(out))
	return out, nil
}

func unwrap(doc any) ([]any, error) {
	switch t := doc.(type) {
	case []any:
		return t, nil
	case map[string]any:
		if labels, ok := t["labels"]; ok {
			arr, ok := labels.([]any)
			if !ok {
				return nil, fmt.Errorf("%w: labels is %T, want array", ErrInvalidPayload, labels)
			}
			return arr, nil
		}
		return []any{t}, nil
	case nil:
		return nil, fmt.Errorf("%w: empty payload", ErrInvalidPayload)
	default:
		return nil, fmt.Errorf("%w: top level is %T, want object or array", ErrInvalidPayload, doc)
	}
}

// fromYAMLNode builds the same generic tree json.Decoder.UseNumber would:
// numeric scalars stay json.Number holding their source text, so a long
// unquoted tracking number keeps every digit.
func fromYAMLNode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case 0:
		return nil, nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return fromYAMLNode(n.Content[0])
	case yaml.AliasNode:
		return fromYAMLNode(n.Alias)
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := fromYAMLNode(c)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.MappingNode:
		out := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			v, err := fromYAMLNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			out[n.Content[i].Value] = v
		}
		return out, nil
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!int", "!!float":
			return json.Number(n.Value), nil
		}
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, fmt.Errorf("unsupported node kind %v", n.Kind)
	}
}

func stripFences(data []byte) []byte {
	s := strings.TrimSpace(string(data))
	if !strings.HasPrefix(s, "```") {
		return data
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:] // drop the language tag line
	} else {
		s = ""
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return []byte(s)
}

func toRaw(m map[string]any) extract.RawExtraction {
	str := func(k string) string {
		s, _ := m[k].(string)
		return s
	}
	raw := extract.RawExtraction{
		Carrier:          str(KeyCarrier),
		TrackingNumber:   str(KeyTrackingNumber),
		SenderName:       str(KeySenderName),
		SenderAddress:    str(KeySenderAddress),
		RecipientName:    str(KeyRecipientName),
		RecipientAddress: str(KeyRecipientAddress),
		PMBNumber:        str(KeyPMBNumber),
		PackageSize:      str(KeyPackageSize),
		RawLabelText:     NormalizeLabelText(str(KeyRawLabelText)),
	}
	if f, ok := m[KeyConfidence].(float64); ok {
		raw.Confidence = &f
	}
	return raw
}
