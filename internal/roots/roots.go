// Package roots enumerates the Windows app-data root directories and lists
// their immediate subdirectories, keyed by a case-folded name.
package roots

import (
	"os"
	"path/filepath"

	"github.com/cy-infamous/appsize/internal/textkey"
)

// RootFolders maps a case-folded immediate-child directory name to its
// absolute path (original case preserved) under one app-data root.
type RootFolders struct {
	Folders map[string]string
}

// Roots holds the four app-data roots the matcher attributes folders
// against. Each is nil when its environment variable is unset or does not
// name an existing directory.
type Roots struct {
	Local       *RootFolders
	Roaming     *RootFolders
	LocalLow    *RootFolders
	ProgramData *RootFolders
}

// Build reads LOCALAPPDATA, APPDATA, USERPROFILE\AppData\LocalLow, and
// PROGRAMDATA, enumerating the immediate children of whichever exist.
func Build() Roots {
	return Roots{
		Local:       fromEnvDir("LOCALAPPDATA"),
		Roaming:     fromEnvDir("APPDATA"),
		LocalLow:    fromEnvJoin("USERPROFILE", "AppData", "LocalLow"),
		ProgramData: fromEnvDir("PROGRAMDATA"),
	}
}

func fromEnvDir(envVar string) *RootFolders {
	v, ok := os.LookupEnv(envVar)
	if !ok || v == "" {
		return nil
	}
	return listIfDir(v)
}

func fromEnvJoin(envVar string, parts ...string) *RootFolders {
	v, ok := os.LookupEnv(envVar)
	if !ok || v == "" {
		return nil
	}
	return listIfDir(filepath.Join(append([]string{v}, parts...)...))
}

func listIfDir(path string) *RootFolders {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return nil
	}
	return listRootFolders(path)
}

// listRootFolders performs a single directory read and keeps only the
// entries that are directories. A failed read yields empty folders, not an
// error: the enclosing root is still considered "present".
func listRootFolders(root string) *RootFolders {
	folders := make(map[string]string)

	entries, err := os.ReadDir(root)
	if err != nil {
		return &RootFolders{Folders: folders}
	}

	for _, e := range entries {
		if !e.IsDir() {
			// Files and other non-directory entries are silently skipped.
			continue
		}
		name := e.Name()
		folders[textkey.FoldASCII(name)] = filepath.Join(root, name)
	}

	return &RootFolders{Folders: folders}
}
