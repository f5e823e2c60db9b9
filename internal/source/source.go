// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package source opens data files that may be compressed. The compression
// format is chosen by file extension:
//   - .gz: gzip
//   - .dz: dictzip
//   - .xz: xz
package source

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ianlewis/go-dictzip"
	"github.com/ulikunitz/xz"
)

// ErrUnsupported indicates an unsupported compression format.
var ErrUnsupported = errors.New("unsupported compression")

// Compression is a compression format.
type Compression int

const (
	// None is uncompressed data.
	None Compression = iota

	// Gzip is gzip compressed data.
	Gzip

	// DictZip is dictzip compressed data.
	DictZip

	// XZ is xz compressed data.
	XZ
)

// CompressionOf returns the compression format for path based on its file
// extension.
func CompressionOf(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		return Gzip
	case ".dz":
		return DictZip
	case ".xz":
		return XZ
	default:
		return None
	}
}

// BaseExt returns the file extension of path ignoring any compression
// extension, e.g. ".html" for "poem.html.gz".
func BaseExt(path string) string {
	if CompressionOf(path) != None {
		path = strings.TrimSuffix(path, filepath.Ext(path))
	}
	return strings.ToLower(filepath.Ext(path))
}

// File is an open, possibly compressed, data file. Reads return the
// uncompressed data.
type File struct {
	r io.Reader
	c []io.Closer
}

// Read implements io.Reader.
func (f *File) Read(p []byte) (int, error) {
	//nolint:wrapcheck // error should not be wrapped
	return f.r.Read(p)
}

// Close closes the file and any decompressor.
func (f *File) Close() error {
	var errs []error
	for i := len(f.c) - 1; i >= 0; i-- {
		if err := f.c[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("closing file: %w", err)
	}
	return nil
}

// Open opens the file at path. The File should be closed with the Close
// method.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}

	file, err := NewFile(f, CompressionOf(path))
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	file.c = append([]io.Closer{f}, file.c...)
	return file, nil
}

// NewFile returns a File reading data compressed with c from r. r must
// implement io.ReadSeeker for DictZip. Closing the File does not close r.
func NewFile(r io.Reader, c Compression) (*File, error) {
	switch c {
	case None:
		return &File{r: r}, nil
	case Gzip:
		z, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("creating gzip reader: %w", err)
		}
		return &File{r: z, c: []io.Closer{z}}, nil
	case DictZip:
		rs, ok := r.(io.ReadSeeker)
		if !ok {
			return nil, fmt.Errorf("%w: dictzip requires a seekable reader", ErrUnsupported)
		}
		z, err := dictzip.NewReader(rs)
		if err != nil {
			return nil, fmt.Errorf("creating dictzip reader: %w", err)
		}
		return &File{r: z, c: []io.Closer{z}}, nil
	case XZ:
		z, err := xz.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("creating xz reader: %w", err)
		}
		return &File{r: z}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupported, int(c))
	}
}
