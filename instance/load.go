package instance

import (
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/pkg/errors"
)

// Load reads an instance from a file. Files ending in .bz2 or .gz are
// decompressed on the fly.
func Load(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not open instance")
	}
	defer f.Close()
	var r io.Reader = f
	switch {
	case strings.HasSuffix(path, ".bz2"):
		bz, err := bzip2.NewReader(f, nil)
		if err != nil {
			return nil, errors.Wrapf(err, "could not read bzip2 stream from %q", path)
		}
		defer bz.Close()
		r = bz
	case strings.HasSuffix(path, ".gz"):
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, errors.Wrapf(err, "could not read gzip stream from %q", path)
		}
		defer gz.Close()
		r = gz
	}
	inst, err := Parse(r)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse %q", path)
	}
	return inst, nil
}
