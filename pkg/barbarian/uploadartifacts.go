package barbarian

import (
	"archive/tar"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/bfgroup/barbarian/internal/digest/md5"
	"github.com/bfgroup/barbarian/internal/fs"
)

// File names of the static layout that the Barbarian server serves per recipe
// revision.
const (
	conanExportTgz   = "conan_export.tgz"
	conanManifest    = "conanmanifest.txt"
	conanfile        = "conanfile.py"
	snapshotJSONFile = "snapshot.json"
	filesJSONFile    = "files.json"
	latestJSONFile   = "latest.json"
)

// createRevisionData populates revisionDir with the layout that the Barbarian
// server serves for a single recipe revision:
//
//	files/          copy of the conan export (plus conan_export.tgz)
//	snapshot.json   file name -> md5 map, the Conan v1 download index
//	files.json      file name set, the Conan v2 download index
//
// exportFilesDir is the export directory that conan export produced.
func createRevisionData(exportFilesDir, revisionDir string) error {
	filesDir := filepath.Join(revisionDir, "files")

	if err := os.RemoveAll(revisionDir); err != nil {
		return fmt.Errorf("removing old revision data failed: %w", err)
	}

	if err := fs.CopyDir(exportFilesDir, filesDir); err != nil {
		return fmt.Errorf("copying export data failed: %w", err)
	}

	downloadable := []string{conanManifest, conanfile}

	conandata := filepath.Join(filesDir, "conandata.yml")
	if fs.FileExists(conandata) {
		if err := createTgz(conandata, filepath.Join(filesDir, conanExportTgz)); err != nil {
			return fmt.Errorf("creating %s failed: %w", conanExportTgz, err)
		}

		downloadable = append([]string{conanExportTgz}, downloadable...)
	}

	snapshot := map[string]string{}
	files := map[string]map[string]struct{}{"files": {}}

	for _, name := range downloadable {
		d, err := md5.File(filepath.Join(filesDir, name))
		if err != nil {
			return fmt.Errorf("digesting %s failed: %w", name, err)
		}

		snapshot[name] = d.Hex()
		files["files"][name] = struct{}{}
	}

	if err := writeJSONFile(filepath.Join(revisionDir, snapshotJSONFile), snapshot); err != nil {
		return err
	}

	return writeJSONFile(filepath.Join(revisionDir, filesJSONFile), files)
}

// writeLatest records revision as the latest published revision of the
// recipe, with the current UTC time.
func writeLatest(publishDir, revision string) error {
	latest := struct {
		Revision string `json:"revision"`
		Time     string `json:"time"`
	}{
		Revision: revision,
		Time:     time.Now().UTC().Format("2006-01-02T15:04:05.000000") + "+0000",
	}

	return writeJSONFile(filepath.Join(publishDir, latestJSONFile), latest)
}

// createTgz writes a gzipped tar archive to tgzPath, containing the file at
// srcPath as its only entry, stored under its base name.
func createTgz(srcPath, tgzPath string) error {
	src, err := os.Open(srcPath)
	if err != nil {
		return err
	}
	defer src.Close()

	fi, err := src.Stat()
	if err != nil {
		return err
	}

	out, err := os.Create(tgzPath)
	if err != nil {
		return err
	}

	gz := gzip.NewWriter(out)
	tw := tar.NewWriter(gz)

	hdr, err := tar.FileInfoHeader(fi, "")
	if err == nil {
		hdr.Name = filepath.Base(srcPath)
		err = tw.WriteHeader(hdr)
	}
	if err == nil {
		_, err = io.Copy(tw, src)
	}

	for _, closer := range []io.Closer{tw, gz, out} {
		if closeErr := closer.Close(); err == nil {
			err = closeErr
		}
	}

	if err != nil {
		_ = os.Remove(tgzPath)
		return err
	}

	return nil
}

func writeJSONFile(path string, data any) error {
	content, err := json.Marshal(data)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("writing %s failed: %w", path, err)
	}

	return nil
}
