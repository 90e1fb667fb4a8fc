package tracking

// ExtractFromText returns tracking-number candidates found in a blob of label
// text, carrier-prefixed formats first, de-duplicated in first-seen order.
func ExtractFromText(text string) []string {
	if text == "" {
		return nil
	}

	var candidates []string
	seen := make(map[string]struct{})
	for _, re := range textPatterns {
		for _, m := range re.FindAllString(text, -1) {
			if _, dup := seen[m]; dup {
				continue
			}
			seen[m] = struct{}{}
			candidates = append(candidates, m)
		}
	}
	return candidates
}
