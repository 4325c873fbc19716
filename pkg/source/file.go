package source

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/zhengshuai-xiao/hd/internal"
)

type fileSource struct {
	*os.File
	size int64
}

// OpenFile opens a local file. A missing path is reported as ErrNotFound
// before anything is opened.
func OpenFile(path string) (Source, error) {
	fi, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, internal.ErrNotFound)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("%s is a directory: %w", path, internal.ErrUsage)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if err := adviseSequential(f, fi.Size()); err != nil {
		logger.Debugf("fadvise %s: %v", path, err)
	}
	return &fileSource{File: f, size: fi.Size()}, nil
}

func (s *fileSource) Size() int64 {
	return s.size
}
