// Package uninstall reads per-program metadata from the Windows registry's
// uninstall subkeys and canonicalizes it into a deduplicated app list.
package uninstall

import (
	"strings"

	"golang.org/x/sys/windows/registry"
)

// Entry is a canonicalized (or raw, pre-dedupe) record of one installed
// program, keyed by the registry view and subkey it was read from.
type Entry struct {
	// ID is "<view>:<subkey>", view one of hklm64, hklm32, hkcu.
	ID              string
	Name            string
	Publisher       *string
	EstimatedBytes  uint64
	InstallLocation *string
	DisplayIcon     *string
}

// registrySource describes one uninstall-key location plus the access
// flags needed to read that specific registry view.
type registrySource struct {
	root     registry.Key
	path     string
	flags    uint32
	idPrefix string
}

var uninstallSources = []registrySource{
	{
		root:     registry.LOCAL_MACHINE,
		path:     `SOFTWARE\Microsoft\Windows\CurrentVersion\Uninstall`,
		flags:    registry.ENUMERATE_SUB_KEYS | registry.QUERY_VALUE | registry.WOW64_64KEY,
		idPrefix: "hklm64",
	},
	{
		root:     registry.LOCAL_MACHINE,
		path:     `SOFTWARE\WOW6432Node\Microsoft\Windows\CurrentVersion\Uninstall`,
		flags:    registry.ENUMERATE_SUB_KEYS | registry.QUERY_VALUE | registry.WOW64_32KEY,
		idPrefix: "hklm32",
	},
	{
		root:     registry.CURRENT_USER,
		path:     `SOFTWARE\Microsoft\Windows\CurrentVersion\Uninstall`,
		flags:    registry.ENUMERATE_SUB_KEYS | registry.QUERY_VALUE,
		idPrefix: "hkcu",
	},
}

var releaseTypesToSkip = map[string]bool{
	"Update":          true,
	"Hotfix":          true,
	"Security Update": true,
}

// Scan reads the three uninstall-key locations and returns one Entry per
// subkey that passes the required-field and filter checks. A missing or
// unreadable subkey, or an unreadable whole view (e.g. WOW6432Node absent
// on a 32-bit host), silently contributes nothing rather than failing.
func Scan() []Entry {
	var out []Entry
	for _, src := range uninstallSources {
		out = append(out, readSource(src)...)
	}
	return out
}

func readSource(src registrySource) []Entry {
	key, err := registry.OpenKey(src.root, src.path, src.flags)
	if err != nil {
		return nil
	}
	defer key.Close()

	names, err := key.ReadSubKeyNames(-1)
	if err != nil {
		return nil
	}

	var out []Entry
	for _, name := range names {
		entry, ok := readSubKey(src.root, src.path+`\`+name, src.flags, src.idPrefix+":"+name)
		if ok {
			out = append(out, entry)
		}
	}
	return out
}

func readSubKey(root registry.Key, path string, flags uint32, id string) (Entry, bool) {
	key, err := registry.OpenKey(root, path, flags)
	if err != nil {
		return Entry{}, false
	}
	defer key.Close()

	name, err := getString(key, "DisplayName")
	if err != nil {
		return Entry{}, false
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Entry{}, false
	}

	if systemComponent, _, err := key.GetIntegerValue("SystemComponent"); err == nil && systemComponent == 1 {
		return Entry{}, false
	}

	if releaseType, err := getString(key, "ReleaseType"); err == nil && releaseTypesToSkip[releaseType] {
		return Entry{}, false
	}

	if _, err := getString(key, "ParentKeyName"); err == nil {
		return Entry{}, false
	}
	if _, err := getString(key, "ParentDisplayName"); err == nil {
		return Entry{}, false
	}

	entry := Entry{ID: id, Name: name}

	if publisher, err := getString(key, "Publisher"); err == nil {
		if p := strings.TrimSpace(publisher); p != "" {
			entry.Publisher = &p
		}
	}

	if kb, _, err := key.GetIntegerValue("EstimatedSize"); err == nil {
		entry.EstimatedBytes = kb * 1024
	}

	if loc, err := getString(key, "InstallLocation"); err == nil {
		if l := strings.TrimSpace(loc); l != "" {
			entry.InstallLocation = &l
		}
	}

	if icon, err := getString(key, "DisplayIcon"); err == nil {
		if i := strings.TrimSpace(icon); i != "" {
			entry.DisplayIcon = &i
		}
	}

	return entry, true
}

func getString(key registry.Key, name string) (string, error) {
	v, _, err := key.GetStringValue(name)
	return v, err
}
