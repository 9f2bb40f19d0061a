// Package fs provides file system utility functions.
package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// IsFile returns true if path is a regular file.
// If the path does not exist an error is returned.
func IsFile(path string) (bool, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return false, err
	}

	return fi.Mode().IsRegular(), nil
}

// FileExists returns true if path exist and is a file.
func FileExists(path string) bool {
	ret, _ := IsFile(path)

	return ret
}

// IsDir returns true if the path is a directory.
// If the directory does not exist, the error from os.Stat() is returned.
func IsDir(path string) (bool, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return false, err
	}

	return fi.IsDir(), nil
}

// DirExists returns true if path exists and is a directory.
func DirExists(path string) bool {
	ret, _ := IsDir(path)

	return ret
}

// FindFileInParentDirs finds a file in startPath or its parent directories.
// The function starts looking for a file called filename in startPath and then
// checks recursively its parent directories.
// It returns the absolute path of the first match.
// If it reaches the root directory without finding the file it returns
// os.ErrNotExist.
func FindFileInParentDirs(startPath, filename string) (string, error) {
	return findInParentDirs(startPath, filename, func(fi os.FileInfo) bool {
		return !fi.IsDir()
	})
}

// FindDirInParentDirs finds a directory called dirname in startPath or its
// parent directories.
// It returns the absolute path of the first match.
// If it reaches the root directory without finding the directory it returns
// os.ErrNotExist.
func FindDirInParentDirs(startPath, dirname string) (string, error) {
	return findInParentDirs(startPath, dirname, os.FileInfo.IsDir)
}

func findInParentDirs(startPath, name string, match func(os.FileInfo) bool) (string, error) {
	// filepath.Clean() is called to remove excessive PathSeparators from
	// the end. If this does not happen, the search might be aborted too
	// early because a path ending in a Separator is interpreted as the
	// root directory.
	searchDir := filepath.Clean(startPath)

	for {
		p := filepath.Join(searchDir, name)

		fi, err := os.Stat(p)
		if err == nil && match(fi) {
			abs, err := filepath.Abs(p)
			if err != nil {
				return "", fmt.Errorf("could not get absolute path of %v: %w", p, err)
			}

			return abs, nil
		}

		if err != nil && !os.IsNotExist(err) {
			return "", err
		}

		if searchDir[len(searchDir)-1] == os.PathSeparator {
			return "", os.ErrNotExist
		}

		searchDir = filepath.Dir(searchDir)
	}
}

// Mkdir creates recursively directories.
func Mkdir(path string) error {
	return os.MkdirAll(path, os.FileMode(0755))
}

// RealPath resolves all symlinks and returns the absolute path.
func RealPath(path string) (string, error) {
	path, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", fmt.Errorf("resolving symlinks in path failed: %w", err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("computing absolute path of %q failed: %w", path, err)
	}

	return absPath, nil
}

// CopyFile copies the regular file src to dst, the file mode is preserved.
func CopyFile(src, dst string) error {
	srcFi, err := os.Stat(src)
	if err != nil {
		return err
	}

	if !srcFi.Mode().IsRegular() {
		return fmt.Errorf("%q is not a regular file", src)
	}

	srcFd, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFd.Close()

	dstFd, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, srcFi.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(dstFd, srcFd); err != nil {
		_ = dstFd.Close()
		return fmt.Errorf("copying %q to %q failed: %w", src, dst, err)
	}

	return dstFd.Close()
}

// CopyDir copies the directory src recursively to dst.
// dst and missing parent directories are created.
func CopyDir(src, dst string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	if err := Mkdir(dst); err != nil {
		return err
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := CopyDir(srcPath, dstPath); err != nil {
				return err
			}

			continue
		}

		if err := CopyFile(srcPath, dstPath); err != nil {
			return err
		}
	}

	return nil
}
