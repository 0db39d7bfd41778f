package logscan

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// expandGlob expands a path, directory, or glob pattern into an ordered,
// deduplicated list of regular files.
//
// "**" matches across directory levels (doublestar), so a pattern such as
// "/var/log/**/*.log" reaches rotated logs kept in per-day subdirectories,
// which the spec's plain "glob pattern" wording leaves room for but does
// not itself require.
func expandGlob(pattern string) ([]string, error) {
	fi, err := os.Stat(pattern)
	if err == nil {
		if fi.IsDir() {
			return expandGlob(filepath.Join(pattern, "**", "*"))
		}
		abs, err := filepath.Abs(pattern)
		if err != nil {
			abs = pattern
		}
		return []string{abs}, nil
	}

	base, cleanPattern := doublestar.SplitPattern(pattern)
	fsys := os.DirFS(base)
	relPattern := filepath.ToSlash(cleanPattern)
	matches, err := doublestar.Glob(fsys, relPattern)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(matches))
	var out []string
	for _, m := range matches {
		full := filepath.Join(base, filepath.FromSlash(m))
		info, err := os.Stat(full)
		if err != nil || info.IsDir() {
			continue
		}
		abs, err := filepath.Abs(full)
		if err != nil {
			abs = full
		}
		if _, ok := seen[abs]; ok {
			continue
		}
		seen[abs] = struct{}{}
		out = append(out, abs)
	}
	sort.Strings(out)
	return out, nil
}
