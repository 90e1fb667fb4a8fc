package vision

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
)

// keySynonyms maps a folded key (lowercase, no separators) to its canonical
// name. Models drift between camelCase, snake_case and the "Guess" names of
// older prompts.
var keySynonyms = map[string]string{
	"carrier":      KeyCarrier,
	"carrierguess": KeyCarrier,
	"carriername":  KeyCarrier,
	"courier":      KeyCarrier,

	"trackingnumber":      KeyTrackingNumber,
	"trackingnumberguess": KeyTrackingNumber,
	"tracking":            KeyTrackingNumber,
	"trackingno":          KeyTrackingNumber,
	"trackingid":          KeyTrackingNumber,
	"barcode":             KeyTrackingNumber,

	"sendername": KeySenderName,
	"sender":     KeySenderName,
	"shipper":    KeySenderName,
	"from":       KeySenderName,

	"senderaddress": KeySenderAddress,
	"fromaddress":   KeySenderAddress,
	"returnaddress": KeySenderAddress,

	"recipientname":      KeyRecipientName,
	"recipientnameguess": KeyRecipientName,
	"recipient":          KeyRecipientName,
	"shipto":             KeyRecipientName,
	"deliverto":          KeyRecipientName,

	"recipientaddress":      KeyRecipientAddress,
	"recipientaddressguess": KeyRecipientAddress,
	"shiptoaddress":         KeyRecipientAddress,
	"deliveryaddress":       KeyRecipientAddress,

	"pmbnumber": KeyPMBNumber,
	"pmbguess":  KeyPMBNumber,
	"pmb":       KeyPMBNumber,
	"suite":     KeyPMBNumber,
	"mailbox":   KeyPMBNumber,

	"packagesize":      KeyPackageSize,
	"packagesizeguess": KeyPackageSize,
	"size":             KeyPackageSize,

	"rawlabeltext": KeyRawLabelText,
	"labeltext":    KeyRawLabelText,
	"rawtext":      KeyRawLabelText,
	"ocrtext":      KeyRawLabelText,
	"text":         KeyRawLabelText,

	"confidence": KeyConfidence,
	"score":      KeyConfidence,
}

func foldKey(k string) string {
	k = strings.ToLower(strings.TrimSpace(k))
	return strings.NewReplacer("_", "", "-", "", " ", "").Replace(k)
}

// Sanitize maps a loosely shaped label object onto the canonical keys:
// synonyms are renamed, text fields are coerced to trimmed strings, the
// confidence is parsed into a number in [0,1], and nulls, empties and
// unknown keys are dropped. The input map is not modified. The returned notes
// list every rename ("from->to") and drop ("key(reason)").
func Sanitize(in map[string]any) (map[string]any, []string) {
	out := make(map[string]any, len(in))
	notes := make([]string, 0, 4)

	// Exact canonical keys first so a synonym never overrides them; then the
	// rest in sorted order so conflicts resolve the same way every time.
	keys := slices.Sorted(maps.Keys(in))
	slices.SortStableFunc(keys, func(a, b string) int {
		return boolRank(keySynonyms[foldKey(a)] != a) - boolRank(keySynonyms[foldKey(b)] != b)
	})

	for _, k := range keys {
		canon, ok := keySynonyms[foldKey(k)]
		if !ok {
			notes = append(notes, k+"(unknown)")
			continue
		}
		if _, exists := out[canon]; exists {
			notes = append(notes, k+"(duplicate)")
			continue
		}

		var (
			v      any
			reason string
		)
		if canon == KeyConfidence {
			v, reason = coerceConfidence(in[k])
		} else {
			v, reason = coerceText(in[k])
		}
		if reason != "" {
			notes = append(notes, k+"("+reason+")")
			continue
		}
		if k != canon {
			notes = append(notes, k+"->"+canon)
		}
		out[canon] = v
	}
	return out, notes
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

func coerceText(v any) (any, string) {
	switch t := v.(type) {
	case nil:
		return nil, "null"
	case string:
		s := strings.TrimSpace(t)
		if s == "" || strings.EqualFold(s, "null") || strings.EqualFold(s, "n/a") {
			return nil, "empty"
		}
		return s, ""
	case json.Number:
		return t.String(), ""
	case float64:
		// past 2^53 a float no longer holds every digit of an identifier
		if math.Abs(t) > 1<<53 {
			return nil, "precision"
		}
		return strconv.FormatFloat(t, 'f', -1, 64), ""
	case int:
		return strconv.Itoa(t), ""
	case int64:
		return strconv.FormatInt(t, 10), ""
	case uint64:
		return strconv.FormatUint(t, 10), ""
	case bool:
		return strconv.FormatBool(t), ""
	case []any:
		// A list of lines, e.g. an address block.
		lines := make([]string, 0, len(t))
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				return nil, "type"
			}
			if s = strings.TrimSpace(s); s != "" {
				lines = append(lines, s)
			}
		}
		if len(lines) == 0 {
			return nil, "empty"
		}
		return strings.Join(lines, "\n"), ""
	default:
		return nil, "type"
	}
}

func coerceConfidence(v any) (any, string) {
	var f float64
	switch t := v.(type) {
	case nil:
		return nil, "null"
	case json.Number:
		parsed, err := t.Float64()
		if err != nil {
			return nil, "unparseable"
		}
		f = parsed
	case float64:
		f = t
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return nil, "empty"
		}
		pct := strings.HasSuffix(s, "%")
		parsed, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(s, "%")), 64)
		if err != nil {
			return nil, "unparseable"
		}
		f = parsed
		if pct {
			f /= 100
		}
	default:
		return nil, "type"
	}

	// Models sometimes answer on a 0-100 scale.
	if f > 1 && f <= 100 {
		f /= 100
	}
	if math.IsNaN(f) || f < 0 || f > 1 {
		return nil, fmt.Sprintf("range %v", f)
	}
	return f, ""
}
