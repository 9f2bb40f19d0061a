package barbarian

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/bfgroup/barbarian/internal/fs"
	"github.com/bfgroup/barbarian/internal/log"
	"github.com/bfgroup/barbarian/internal/vcs/git"
	"github.com/bfgroup/barbarian/pkg/conan"
)

// Uploader publishes exported recipe revisions to the repository's upload
// branch.
type Uploader struct {
	repo *Repository
}

// NewUploader returns an Uploader for the repository.
func NewUploader(repo *Repository) *Uploader {
	return &Uploader{repo: repo}
}

// UploadRecipe publishes the latest exported revision of recipe.
//
// The revision data is committed to the upload branch in the layout the
// Barbarian server serves and the branch is pushed to the configured remote.
// The upload branch is created when it does not exist yet.
// It returns the published recipe revision.
//
// The recipe must have been exported before, see Repository.ExportRecipe.
func (u *Uploader) UploadRecipe(ctx context.Context, recipe *Recipe) (string, error) {
	if !fs.DirExists(recipe.ExportDir()) {
		return "", fmt.Errorf("%s was not exported, missing directory: %s", recipe, recipe.ExportDir())
	}

	revision, err := conan.ReadExportedRevision(recipe.ExportDir())
	if err != nil {
		return "", fmt.Errorf("reading exported revision failed, was the recipe exported?: %w", err)
	}

	branch := u.repo.Cfg.Upload.Branch
	remote := u.repo.Cfg.Upload.Remote

	log.Debugf("upload: publishing revision %s of %s to branch %q\n", revision, recipe, branch)

	if err := git.CreateOrphanBranch(u.repo.Path, branch, UploadBranchMessage); err != nil {
		return "", fmt.Errorf("creating upload branch %q failed: %w", branch, err)
	}

	worktreeDir := filepath.Join(u.repo.Path, UploadWorktreeDir)
	if err := git.WorktreeAdd(u.repo.Path, worktreeDir, branch); err != nil {
		return "", fmt.Errorf("checking out upload branch %q failed: %w", branch, err)
	}

	defer func() {
		if rmErr := git.WorktreeRemove(u.repo.Path, worktreeDir); rmErr != nil {
			log.Errorf("removing upload worktree %q failed: %s\n", worktreeDir, rmErr)
		}
	}()

	revisionDir := recipe.RevisionDir(revision)
	if err := createRevisionData(recipe.ExportedFilesDir(), revisionDir); err != nil {
		return "", err
	}

	if err := writeLatest(recipe.PublishDir(), revision); err != nil {
		return "", err
	}

	if err := git.Add(worktreeDir, "."); err != nil {
		return "", err
	}

	commitMsg := fmt.Sprintf("Upload %s/%s revision %s.", recipe.Ref.Name, recipe.Ref.Version, revision)
	if err := git.Commit(worktreeDir, commitMsg); err != nil {
		return "", err
	}

	if err := git.Push(worktreeDir, remote, branch); err != nil {
		return "", fmt.Errorf("pushing upload branch %q to %q failed: %w", branch, remote, err)
	}

	return revision, nil
}
