// Package barbarian manages Conan recipes for the Barbarian package server.
//
// A barbarian repository is a git repository containing one or more Conan
// recipes. Recipes are exported into a repository-local Conan cache
// (.conan/data/), packaged into the static file layout the Barbarian server
// serves and published by pushing an orphan git branch.
package barbarian

const (
	// ConanCacheDir is the directory below the repository root that is
	// used as repository-local Conan cache.
	ConanCacheDir = ".conan"

	// UploadWorktreeDir is the directory below the repository root into
	// that the upload branch is checked out while publishing.
	UploadWorktreeDir = ".barbarian_upload"

	// UploadBranchMessage is the commit message of the root commit of a
	// newly created upload branch.
	UploadBranchMessage = "Barbarian upload branch."
)
