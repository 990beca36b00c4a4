package validation

import "golang.org/x/text/message"

// Translate turns violations into localized messages keyed by Path. A
// message is looked up by "field.tag" first, then by "tag". Violations
// without a message keep the rule name so they are never silently dropped.
func Translate(p *message.Printer, violations []Violation, messages map[string]string) map[string]string {
	out := make(map[string]string, len(violations))
	for _, v := range violations {
		key, ok := messages[v.Field+"."+v.Tag]
		if !ok {
			key, ok = messages[v.Tag]
		}
		if !ok {
			out[v.Path] = v.Tag
			continue
		}
		out[v.Path] = p.Sprintf(key)
	}
	return out
}
