package sat

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// candidates are the glucose layouts probed next to the equicut binary
// before falling back to $PATH.
var candidates = []string{
	"glucose",
	filepath.Join("glucose-main", "simp", "glucose"),
	filepath.Join("glucose-main", "glucose"),
}

// Discover finds a glucose binary: first next to the running executable,
// then on $PATH. It returns ErrUnavailable when none is found, which is not
// fatal for callers that can fall back to an embedded backend.
func Discover(log *zap.Logger) (string, error) {
	log = logOr(log)
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Dir(exe)
		for _, rel := range candidates {
			path := filepath.Join(dir, rel)
			if isExecutable(path) {
				log.Debug("found solver next to the executable", zap.String("path", path))
				return path, nil
			}
		}
	}
	if path, err := exec.LookPath("glucose"); err == nil {
		log.Debug("found solver on PATH", zap.String("path", path))
		return path, nil
	}
	return "", errors.Wrap(ErrUnavailable, "no glucose binary found")
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular() && info.Mode().Perm()&0o111 != 0
}
