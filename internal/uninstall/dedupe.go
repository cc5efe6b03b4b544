package uninstall

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cy-infamous/appsize/internal/envutil"
	"github.com/cy-infamous/appsize/internal/textkey"
)

// Dedupe merges duplicate Entry values that arise from 32/64-bit registry
// redirection and per-user/per-machine registration. Entries are expected
// to already be sorted by name ascending so the first-seen ordering (and
// therefore which entry's fields win ties in entryQuality) is deterministic
// across runs of the same registry snapshot.
func Dedupe(entries []Entry) []Entry {
	order := make([]string, 0, len(entries))
	byKey := make(map[string]*Entry)

	for i := range entries {
		e := entries[i]
		nameKey := textkey.Normalize(stripVersionSuffix(e.Name))
		publisherKey := ""
		if e.Publisher != nil {
			publisherKey = textkey.Normalize(*e.Publisher)
		}
		installKey := ""
		if hint := GetInstallDirHint(e); hint != "" {
			installKey = textkey.FoldASCII(hint)
		}

		baseKey := nameKey + "|" + publisherKey
		fullKey := baseKey
		if installKey != "" {
			fullKey = baseKey + "|" + installKey
		}

		if installKey != "" {
			if _, exists := byKey[fullKey]; !exists {
				if existing, ok := byKey[baseKey]; ok {
					merge(existing, e)
					delete(byKey, baseKey)
					byKey[fullKey] = existing
					order = append(order, fullKey)
					continue
				}
			}
		}

		if existing, ok := byKey[fullKey]; ok {
			merge(existing, e)
			continue
		}

		cp := e
		byKey[fullKey] = &cp
		order = append(order, fullKey)
	}

	out := make([]Entry, 0, len(byKey))
	seen := make(map[string]bool, len(byKey))
	for _, k := range order {
		if seen[k] {
			continue
		}
		seen[k] = true
		if e, ok := byKey[k]; ok {
			out = append(out, *e)
		}
	}
	return out
}

func merge(existing *Entry, incoming Entry) {
	if incoming.EstimatedBytes > existing.EstimatedBytes {
		existing.EstimatedBytes = incoming.EstimatedBytes
	}
	if existing.InstallLocation == nil {
		existing.InstallLocation = incoming.InstallLocation
	}
	if existing.DisplayIcon == nil {
		existing.DisplayIcon = incoming.DisplayIcon
	}
	if entryQuality(incoming) > entryQuality(*existing) {
		existing.Name = incoming.Name
		existing.Publisher = incoming.Publisher
	}
}

func entryQuality(e Entry) int {
	score := 0
	if e.InstallLocation != nil {
		score += 1000
	}
	if e.DisplayIcon != nil {
		score += 200
	}
	if e.EstimatedBytes > 0 {
		score += 50
	}
	n := len(e.Name)
	if n > 64 {
		n = 64
	}
	score += n
	return score
}

// stripVersionSuffix removes a trailing version marker from a display name:
// a bracketed "(...)"/"[...]" group whose interior is version-like, then a
// trailing version-like token, or a "v"/"ver"/"version" + version-like pair.
func stripVersionSuffix(name string) string {
	out := strings.TrimSpace(name)
	if out == "" {
		return out
	}

	if i := strings.LastIndex(out, "("); i >= 0 {
		right := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(out[i+1:]), ")"))
		if isVersionLike(right) {
			out = strings.TrimSpace(out[:i])
		}
	}

	if i := strings.LastIndex(out, "["); i >= 0 {
		right := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(out[i+1:]), "]"))
		if isVersionLike(right) {
			out = strings.TrimSpace(out[:i])
		}
	}

	parts := strings.Fields(out)
	if len(parts) >= 2 {
		last := parts[len(parts)-1]
		if isVersionLike(last) {
			out = strings.Join(parts[:len(parts)-1], " ")
		} else if len(parts) >= 3 {
			prev := strings.ToLower(parts[len(parts)-2])
			if (prev == "v" || prev == "ver" || prev == "version") && isVersionLike(last) {
				out = strings.Join(parts[:len(parts)-2], " ")
			}
		}
	}

	return strings.TrimSpace(out)
}

// isVersionLike reports whether s, after optionally stripping a leading v/V,
// is non-empty, composed solely of digits/./_/-, contains at least one digit
// and at least one dot.
func isVersionLike(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	s = strings.TrimPrefix(strings.TrimPrefix(s, "v"), "V")
	if s == "" {
		return false
	}
	hasDigit := false
	hasDot := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case r == '.':
			hasDot = true
		case r == '_' || r == '-':
			// allowed separator, contributes neither digit nor dot
		default:
			return false
		}
	}
	return hasDigit && hasDot
}

// GetInstallDirHint resolves the directory that best represents where an
// entry is installed: the InstallLocation if it names an existing
// directory, else a directory parsed out of DisplayIcon.
func GetInstallDirHint(e Entry) string {
	if e.InstallLocation != nil {
		loc := envutil.ExpandWindowsEnv(*e.InstallLocation)
		if info, err := os.Stat(loc); err == nil && info.IsDir() {
			return loc
		}
	}
	if e.DisplayIcon != nil {
		return parseDisplayIconToDir(*e.DisplayIcon)
	}
	return ""
}

// parseDisplayIconToDir strips surrounding quotes and, only when the path
// up to the last comma contains a drive letter ("C:\"), drops a trailing
// ",<index>" suffix. Non-drive-letter forms keep the comma and index in
// place, which then fails the existence checks below — this asymmetry is
// inherited from the source registry convention and is intentionally not
// "fixed" with a more general icon-path parser.
func parseDisplayIconToDir(displayIcon string) string {
	s := strings.TrimSpace(envutil.ExpandWindowsEnv(displayIcon))
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		s = s[1 : len(s)-1]
	}

	if i := strings.LastIndex(s, ","); i >= 0 {
		candidate := strings.Trim(strings.TrimSpace(s[:i]), `"`)
		if strings.Contains(candidate, `:\`) {
			s = candidate
		}
	}

	s = strings.TrimSpace(s)
	if info, err := os.Stat(s); err == nil {
		if info.IsDir() {
			return s
		}
		return filepath.Dir(s)
	}
	return ""
}
