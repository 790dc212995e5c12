package pipeline

import (
	"context"
	"os"
	"path/filepath"

	vnerrors "github.com/matzehuels/vonneumann/pkg/errors"
)

// Write stores artifacts under dir, creating it when needed. Existing files
// with the same name are replaced. It returns the written paths in order and
// stops at the first failure or when ctx is cancelled.
func Write(ctx context.Context, dir string, artifacts []Artifact) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, vnerrors.Wrap(vnerrors.ErrCodeExportFailure, err, "create %s", dir)
	}

	paths := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		if err := ctx.Err(); err != nil {
			return paths, err
		}
		path := filepath.Join(dir, a.File)
		if err := os.WriteFile(path, a.Data, 0o644); err != nil {
			return paths, vnerrors.Wrap(vnerrors.ErrCodeExportFailure, err, "write %s", path)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
