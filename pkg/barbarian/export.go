package barbarian

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bfgroup/barbarian/internal/log"
	"github.com/bfgroup/barbarian/pkg/conan"
)

// ExportRecipe exports the recipe into the repository-local Conan cache.
//
// Export data of previous exports of the same name and version is removed
// first, the cache directory is added to the repository's .gitignore and the
// conandata.yml in the export is reduced to the entries of the exported
// version.
func (r *Repository) ExportRecipe(ctx context.Context, recipe *Recipe) error {
	if recipe.Dir == "" {
		return fmt.Errorf("recipe %s has no directory, nothing to export", recipe)
	}

	log.Debugf("export: removing old export data in %q\n", recipe.DataDir())
	if err := os.RemoveAll(recipe.DataDir()); err != nil {
		return fmt.Errorf("removing old export data failed: %w", err)
	}

	if err := r.EnsureCacheIsGitIgnored(); err != nil {
		return fmt.Errorf("updating .gitignore failed: %w", err)
	}

	if err := conan.Export(ctx, recipe.Dir, recipe.Ref.String(), r.Path); err != nil {
		return err
	}

	conandataPath := filepath.Join(recipe.ExportedFilesDir(), conan.ConanDataFile)
	if err := conan.FilterConanDataFile(conandataPath, recipe.Ref.Version); err != nil {
		return fmt.Errorf("cleaning conandata.yml failed: %w", err)
	}

	return nil
}
