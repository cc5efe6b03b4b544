package matching

import (
	"sort"
	"strings"

	"github.com/cy-infamous/appsize/internal/roots"
)

// AssignedFolders groups the app-data folders attributed to each app ID,
// one map per root kind.
type AssignedFolders struct {
	Local       map[string][]string
	Roaming     map[string][]string
	LocalLow    map[string][]string
	ProgramData map[string][]string
}

// AssignFolders scores each root folder whose key equals one of an app's
// candidate folder keys against that app's token set, and attributes each
// such folder to its single best-scoring owner.
func AssignFolders(r roots.Roots, tokens []Tokens) AssignedFolders {
	return AssignedFolders{
		Local:       assignForRoot(r.Local, tokens),
		Roaming:     assignForRoot(r.Roaming, tokens),
		LocalLow:    assignForRoot(r.LocalLow, tokens),
		ProgramData: assignForRoot(r.ProgramData, tokens),
	}
}

type ownerScore struct {
	score int
	appID string
}

// computeOwners scores every candidate folder key generated from every
// app's tokens against the folders actually present in root, keeping the
// single best-scoring owner per folder key. Ties keep whichever owner was
// recorded first, so callers must pass tokens built from an already
// deterministically ordered entry list.
func computeOwners(root *roots.RootFolders, tokens []Tokens) map[string]ownerScore {
	owners := make(map[string]ownerScore)
	if root == nil {
		return owners
	}

	for _, app := range tokens {
		for _, c := range BuildCandidateFolderKeys(app) {
			if _, ok := root.Folders[c]; !ok {
				continue
			}
			score := ScoreFolder(c, app)
			if score <= 0 {
				continue
			}
			if existing, ok := owners[c]; ok && existing.score >= score {
				continue
			}
			owners[c] = ownerScore{score: score, appID: app.AppID}
		}
	}

	return owners
}

func assignForRoot(root *roots.RootFolders, tokens []Tokens) map[string][]string {
	assigned := make(map[string][]string)
	if root == nil {
		return assigned
	}

	owners := computeOwners(root, tokens)

	keys := make([]string, 0, len(owners))
	for k := range owners {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, folderKey := range keys {
		o := owners[folderKey]
		if p, ok := root.Folders[folderKey]; ok {
			assigned[o.appID] = append(assigned[o.appID], p)
		}
	}

	return assigned
}

// BuildOwnerKeys returns the folder-key -> owning-app-ID map for root,
// used by audit reporting to compute assigned/unassigned folder counts
// without materializing the full path lists AssignFolders produces.
func BuildOwnerKeys(root *roots.RootFolders, tokens []Tokens) map[string]string {
	owners := computeOwners(root, tokens)
	out := make(map[string]string, len(owners))
	for k, o := range owners {
		out[k] = o.appID
	}
	return out
}

// BuildCandidateFolderKeys lists the folder-name keys a folder key must equal
// exactly to be considered a candidate for ownership by the app described by
// tokens; ScoreFolder then scores the candidate by token containment.
func BuildCandidateFolderKeys(tokens Tokens) []string {
	var out []string

	for _, t := range tokens.NameTokens {
		if len(t) >= 3 && len(t) <= 32 {
			out = append(out, t)
		}
	}

	for _, t := range tokens.PublisherTokens {
		if len(t) >= 3 && len(t) <= 32 {
			out = append(out, t)
		}
	}

	if len(tokens.PublisherTokens) >= 2 {
		joined2 := tokens.PublisherTokens[0] + tokens.PublisherTokens[1]
		if len(joined2) >= 4 && len(joined2) <= 32 {
			out = append(out, joined2)
		}
	}
	if len(tokens.PublisherTokens) >= 3 {
		joined3 := tokens.PublisherTokens[0] + tokens.PublisherTokens[1] + tokens.PublisherTokens[2]
		if len(joined3) >= 5 && len(joined3) <= 32 {
			out = append(out, joined3)
		}
	}

	sort.Strings(out)
	return dedupeSorted(out)
}

func dedupeSorted(in []string) []string {
	if len(in) == 0 {
		return in
	}
	out := in[:1]
	for _, s := range in[1:] {
		if s != out[len(out)-1] {
			out = append(out, s)
		}
	}
	return out
}

// ScoreFolder scores folderKey against tokens' name and publisher token
// bags. A name match must clear a combined (name*100 + publisher) total of
// at least 300 to count; a publisher-only match (only reached when the app
// has no usable name tokens) must clear publisher*50 >= 200.
func ScoreFolder(folderKey string, tokens Tokens) int {
	nameScore := 0
	for _, t := range tokens.NameTokens {
		if strings.Contains(folderKey, t) {
			nameScore += len(t)
		}
	}

	publisherScore := 0
	for _, t := range tokens.PublisherTokens {
		if strings.Contains(folderKey, t) {
			publisherScore += len(t)
		}
	}

	if nameScore > 0 {
		total := nameScore*100 + publisherScore
		if total >= 300 {
			return total
		}
		return 0
	}

	if tokens.AllowPublisherOnly && publisherScore > 0 {
		total := publisherScore * 50
		if total >= 200 {
			return total
		}
	}

	return 0
}
