// Package instruct translates free-form natural-language instructions
// ("put simulator files in my sim folder") into candidate rules. Parsing is
// three independent extractors — verb, destination, subject — each of which
// fails with the specific element it could not find, so callers can ask the
// user for exactly the missing piece. The parser only proposes a rule; it
// never touches the rule store.
package instruct

import (
	"strings"

	"cleanify/internal/errors"
	"cleanify/pkg/types"
)

// actionVerbs are the verbs that make an instruction actionable.
var actionVerbs = map[string]bool{
	"move":     true,
	"put":      true,
	"send":     true,
	"organize": true,
	"organise": true,
	"sort":     true,
	"take":     true,
	"stick":    true,
	"transfer": true,
	"relocate": true,
	"file":     true,
}

// destinationPrepositions introduce the destination phrase.
var destinationPrepositions = map[string]bool{
	"to":     true,
	"into":   true,
	"in":     true,
	"inside": true,
	"under":  true,
	"onto":   true,
}

// destinationFillers are dropped from the destination phrase: "in my sim
// folder" names a folder called "sim", not "my sim folder".
var destinationFillers = map[string]bool{
	"a":         true,
	"an":        true,
	"the":       true,
	"my":        true,
	"our":       true,
	"new":       true,
	"own":       true,
	"folder":    true,
	"folders":   true,
	"directory": true,
	"dir":       true,
	"called":    true,
	"named":     true,
}

// subjectFillers are dropped from the subject phrase before classifying the
// remaining tokens as categories, extensions, or keywords.
var subjectFillers = map[string]bool{
	"all":        true,
	"any":        true,
	"some":       true,
	"every":      true,
	"each":       true,
	"the":        true,
	"my":         true,
	"of":         true,
	"those":      true,
	"these":      true,
	"file":       true,
	"files":      true,
	"stuff":      true,
	"things":     true,
	"everything": true,
	"please":     true,
}

// Parse converts an instruction into a candidate rule. The returned rule is
// already normalized and satisfies the store invariants; on failure the
// error is a ParseError naming the missing element.
func Parse(instruction string) (types.Rule, error) {
	tokens := tokenize(instruction)

	verbIdx, err := extractVerb(instruction, tokens)
	if err != nil {
		return types.Rule{}, err
	}

	destination, prepIdx, err := extractDestination(instruction, tokens, verbIdx)
	if err != nil {
		return types.Rule{}, err
	}

	match, err := extractSubject(instruction, tokens, verbIdx, prepIdx)
	if err != nil {
		return types.Rule{}, err
	}

	return types.Rule{
		Name:        ruleName(destination, match),
		Match:       match,
		Destination: destination,
	}, nil
}

// token keeps the original casing for destination folder names alongside
// the lowercase form used for recognition.
type token struct {
	raw   string
	lower string
}

// tokenize trims, collapses whitespace, and strips surrounding punctuation.
// A leading dot survives so explicit extension mentions (".png") stay
// recognizable.
func tokenize(instruction string) []token {
	var tokens []token
	for _, field := range strings.Fields(strings.TrimSpace(instruction)) {
		raw := strings.Trim(field, `"'!?,;:`)
		raw = strings.TrimRight(raw, ".")
		if raw == "" {
			continue
		}
		tokens = append(tokens, token{raw: raw, lower: strings.ToLower(raw)})
	}
	return tokens
}

// extractVerb finds the first action verb and returns its position.
func extractVerb(instruction string, tokens []token) (int, error) {
	for i, tok := range tokens {
		if actionVerbs[tok.lower] {
			return i, nil
		}
	}
	return 0, errors.NewParseError("no action verb (move, put, send, ...)", instruction, errors.MissingVerb)
}

// extractDestination finds the destination phrase after the verb. The last
// preposition wins so "take everything in downloads to Archive" lands in
// Archive. Filler words are stripped; the remaining words keep their
// original casing and become the folder name.
func extractDestination(instruction string, tokens []token, verbIdx int) (string, int, error) {
	prepIdx := -1
	for i := verbIdx + 1; i < len(tokens); i++ {
		if destinationPrepositions[tokens[i].lower] && i+1 < len(tokens) {
			prepIdx = i
		}
	}
	if prepIdx < 0 {
		return "", 0, errors.NewParseError("no destination phrase (to ..., into ...)", instruction, errors.MissingDestination)
	}

	var words []string
	for _, tok := range tokens[prepIdx+1:] {
		if destinationFillers[tok.lower] {
			continue
		}
		words = append(words, tok.raw)
	}
	if len(words) == 0 {
		return "", 0, errors.NewParseError("destination phrase names no folder", instruction, errors.MissingDestination)
	}

	destination := strings.Join(words, " ")
	if strings.HasPrefix(destination, "/") || strings.HasPrefix(destination, "\\") ||
		destination == ".." || strings.Contains(destination, "../") || strings.Contains(destination, "..\\") {
		return "", 0, errors.NewParseError("destination must stay under the organized folder", instruction, errors.MissingDestination)
	}

	return destination, prepIdx, nil
}

// extractSubject classifies the tokens between the verb and the destination
// preposition. Category mentions populate extensions, explicit extension
// mentions add single extensions, and anything else becomes a contains
// keyword. A category and a keyword in the same instruction AND together —
// even when that over-constrains the rule into matching nothing, the user
// said both and both are kept.
func extractSubject(instruction string, tokens []token, verbIdx, prepIdx int) (types.MatchSpec, error) {
	var match types.MatchSpec

	for _, tok := range tokens[verbIdx+1 : prepIdx] {
		if subjectFillers[tok.lower] {
			continue
		}

		if exts, ok := lookupCategory(tok.lower); ok {
			match.Extensions = appendUnique(match.Extensions, exts...)
			continue
		}

		if ext, ok := lookupExtension(tok.lower); ok {
			match.Extensions = appendUnique(match.Extensions, types.NormalizeExt(ext))
			continue
		}

		keyword, _ := trimPlural(tok.lower)
		match.Contains = appendUnique(match.Contains, keyword)
	}

	if match.Empty() {
		return types.MatchSpec{}, errors.NewParseError("nothing describes what to move", instruction, errors.MissingSubject)
	}

	return match, nil
}

// ruleName derives a display name for the generated rule from the
// destination, falling back to the first subject keyword.
func ruleName(destination string, match types.MatchSpec) string {
	if destination != "" {
		return destination
	}
	if len(match.Contains) > 0 {
		return match.Contains[0]
	}
	return "unnamed"
}

func appendUnique(list []string, values ...string) []string {
	for _, value := range values {
		seen := false
		for _, existing := range list {
			if existing == value {
				seen = true
				break
			}
		}
		if !seen {
			list = append(list, value)
		}
	}
	return list
}
