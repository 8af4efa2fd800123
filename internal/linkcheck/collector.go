package linkcheck

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	foundationerrors "git.home.luguber.info/inful/doclinkcheck/internal/foundation/errors"
)

// DocExtension is the suffix that marks a markdown document.
const DocExtension = ".md"

// IsDocFile returns true if the name carries the markdown suffix.
func IsDocFile(path string) bool {
	return strings.HasSuffix(path, DocExtension)
}

// CollectDocuments returns the absolute path of every markdown file beneath
// root, at any depth, in lexical walk order. Hidden directories are not skipped.
// Symlinks are included when they point at a regular file; other special
// files are skipped.
func CollectDocuments(root string) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, foundationerrors.WrapError(err, foundationerrors.CategoryFileSystem, "failed to resolve docs root").
			Fatal().
			WithContext("root", root).
			Build()
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, foundationerrors.NotFoundError("docs root does not exist").
				WithCause(err).
				WithContext("root", absRoot).
				Build()
		}
		return nil, foundationerrors.WrapError(err, foundationerrors.CategoryFileSystem, "failed to stat docs root").
			Fatal().
			WithContext("root", absRoot).
			Build()
	}
	if !info.IsDir() {
		return nil, foundationerrors.FileSystemError("docs root is not a directory").
			WithContext("root", absRoot).
			Build()
	}

	var docs []string
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !IsDocFile(d.Name()) {
			return nil
		}
		if !d.Type().IsRegular() && !isRegularFile(path) {
			return nil
		}
		docs = append(docs, path)
		return nil
	})
	if err != nil {
		return nil, foundationerrors.WrapError(err, foundationerrors.CategoryFileSystem, "failed to walk docs root").
			Fatal().
			WithContext("root", absRoot).
			Build()
	}

	return docs, nil
}
