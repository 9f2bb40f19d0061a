package barbarian

import (
	"errors"
	"os"
	"path/filepath"
	"sort"

	"github.com/bfgroup/barbarian/internal/fs"
)

// RecipeConanfile is the file that identifies a recipe directory.
const RecipeConanfile = "conanfile.py"

// DiscoverRecipeDirs returns the directories below the repository root that
// contain a conanfile.py and match one of the configured recipe_dirs glob
// patterns.
// The returned paths are absolute and sorted.
func (r *Repository) DiscoverRecipeDirs() ([]string, error) {
	seen := map[string]struct{}{}

	for _, pattern := range r.Cfg.Discover.RecipeDirs {
		matches, err := fs.FileGlob(filepath.Join(r.Path, pattern, RecipeConanfile))
		if err != nil {
			// a pattern whose static prefix does not exist simply
			// matches nothing
			if errors.Is(err, os.ErrNotExist) {
				continue
			}

			return nil, err
		}

		for _, m := range matches {
			seen[filepath.Dir(m)] = struct{}{}
		}
	}

	result := make([]string, 0, len(seen))
	for dir := range seen {
		result = append(result, dir)
	}

	sort.Strings(result)

	return result, nil
}
