// Package matching derives name/publisher token bags from canonical
// uninstall entries and scores them against app-data root folder names to
// attribute folders to the owning application.
package matching

import (
	"strings"

	"github.com/cy-infamous/appsize/internal/textkey"
)

// Tokens is the derived matching key for one canonical entry.
type Tokens struct {
	AppID              string
	NameTokens         []string
	PublisherTokens    []string
	AllowPublisherOnly bool
}

var nameStopWords = map[string]bool{
	"windows": true, "update": true, "installer": true, "setup": true,
	"runtime": true, "redistributable": true, "driver": true, "tool": true,
	"tools": true, "plugin": true, "service": true, "sdk": true,
	"for": true, "and": true, "the": true, "app": true,
}

var publisherStopWords = map[string]bool{
	"microsoft": true, "nvidia": true, "corporation": true, "corp": true,
	"inc": true, "ltd": true, "llc": true, "co": true, "company": true,
	"limited": true, "gmbh": true, "sarl": true, "pty": true, "plc": true,
	"software": true, "systems": true, "system": true, "technologies": true,
	"technology": true, "solution": true, "solutions": true,
}

// BuildTokens derives the matching key for one canonical entry's name and
// optional publisher.
func BuildTokens(appID, name string, publisher *string) Tokens {
	nameTokens := buildNameTokens(name)
	var publisherTokens []string
	if publisher != nil {
		publisherTokens = buildPublisherTokens(*publisher)
	}
	return Tokens{
		AppID:              appID,
		NameTokens:         nameTokens,
		PublisherTokens:    publisherTokens,
		AllowPublisherOnly: len(nameTokens) == 0,
	}
}

func buildNameTokens(name string) []string {
	var tokens []string

	key := textkey.Normalize(name)
	if len(key) >= 3 {
		tokens = append(tokens, key)
	}

	for _, t := range splitTokens(name) {
		if len(t) >= 3 && !nameStopWords[t] && !allDigits(t) && !contains(tokens, t) {
			tokens = append(tokens, t)
		}
	}

	return tokens
}

func buildPublisherTokens(publisher string) []string {
	var tokens []string
	for _, t := range splitTokens(publisher) {
		if len(t) >= 4 && !publisherStopWords[t] && !allDigits(t) && !contains(tokens, t) {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// splitTokens replaces every non-ASCII-alphanumeric rune with a space, then
// splits on whitespace and lowercases each piece.
func splitTokens(s string) []string {
	b := make([]rune, 0, len(s))
	for _, r := range s {
		if textkey.IsASCIIAlnum(r) {
			b = append(b, r)
		} else {
			b = append(b, ' ')
		}
	}
	fields := strings.Fields(string(b))
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = strings.ToLower(f)
	}
	return out
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
