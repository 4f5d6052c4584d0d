// Package fs implements the storage driver over a local filesystem root.
package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sphynkx/ytstorage/driver"
)

// tmpPattern marks in-flight uploads. Temp files live beside their
// destination so the final rename stays on one filesystem, and listings
// must skip them.
const tmpPattern = ".ytstorage-put-*"

// Driver stores objects as plain files under a root directory.
// Keys map to relative paths; puts are write-then-rename, so a partially
// written object is never visible under its key.
type Driver struct {
	root string
}

// New creates the driver, creating root if it does not exist.
func New(root string) (*Driver, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("%w: resolve root %q: %v", driver.ErrInternal, root, err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create root %q: %v", driver.ErrUnavailable, abs, err)
	}
	return &Driver{root: abs}, nil
}

// Kind implements driver.Driver.
func (d *Driver) Kind() string { return "fs" }

// Root returns the absolute storage root.
func (d *Driver) Root() string { return d.root }

func (d *Driver) fullPath(key string) (string, error) {
	key, err := driver.NormalizeKey(key)
	if err != nil {
		return "", err
	}
	return filepath.Join(d.root, filepath.FromSlash(key)), nil
}

// Put implements driver.Driver.
func (d *Driver) Put(ctx context.Context, key string, r io.Reader, size int64, opts driver.PutOptions) error {
	dst, err := d.fullPath(key)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("%w: mkdir for %q: %v", driver.ErrWriteFailed, key, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), tmpPattern)
	if err != nil {
		return fmt.Errorf("%w: create temp for %q: %v", driver.ErrWriteFailed, key, err)
	}
	defer func() {
		// The temp file only survives a successful rename.
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if _, err := io.Copy(tmp, contextReader{ctx: ctx, r: r}); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return fmt.Errorf("%w: write %q: %v", driver.ErrWriteFailed, key, err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("%w: sync %q: %v", driver.ErrWriteFailed, key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: close %q: %v", driver.ErrWriteFailed, key, err)
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return fmt.Errorf("%w: commit %q: %v", driver.ErrWriteFailed, key, err)
	}
	return nil
}

// Get implements driver.Driver.
func (d *Driver) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	path, err := d.fullPath(key)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", driver.ErrNotFound, key)
		}
		return nil, fmt.Errorf("%w: open %q: %v", driver.ErrReadFailed, key, err)
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: stat %q: %v", driver.ErrReadFailed, key, err)
	}
	if st.IsDir() {
		// Directories are an fs artifact, not objects.
		f.Close()
		return nil, fmt.Errorf("%w: %s", driver.ErrNotFound, key)
	}
	return f, nil
}

// Delete implements driver.Driver.
func (d *Driver) Delete(ctx context.Context, key string) error {
	path, err := d.fullPath(key)
	if err != nil {
		return err
	}

	st, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return fmt.Errorf("%w: %s", driver.ErrNotFound, key)
		}
		return fmt.Errorf("%w: stat %q: %v", driver.ErrReadFailed, key, err)
	}
	if st.IsDir() {
		return fmt.Errorf("%w: %s", driver.ErrNotFound, key)
	}
	if err := os.Remove(path); err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return fmt.Errorf("%w: %s", driver.ErrNotFound, key)
		}
		return fmt.Errorf("%w: remove %q: %v", driver.ErrWriteFailed, key, err)
	}
	// Empty parent directories are left in place; they are invisible at
	// the key level and the migration tool copies files only.
	return nil
}

// Exists implements driver.Driver.
func (d *Driver) Exists(ctx context.Context, key string) (bool, error) {
	path, err := d.fullPath(key)
	if err != nil {
		return false, err
	}
	st, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("%w: stat %q: %v", driver.ErrReadFailed, key, err)
	}
	return !st.IsDir(), nil
}

// Stat implements driver.Driver. Content type is not tracked by this
// backend and is reported absent.
func (d *Driver) Stat(ctx context.Context, key string) (driver.ObjectInfo, error) {
	path, err := d.fullPath(key)
	if err != nil {
		return driver.ObjectInfo{}, err
	}
	st, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return driver.ObjectInfo{}, fmt.Errorf("%w: %s", driver.ErrNotFound, key)
		}
		return driver.ObjectInfo{}, fmt.Errorf("%w: stat %q: %v", driver.ErrReadFailed, key, err)
	}
	if st.IsDir() {
		return driver.ObjectInfo{}, fmt.Errorf("%w: %s", driver.ErrNotFound, key)
	}
	normKey, _ := driver.NormalizeKey(key)
	return driver.ObjectInfo{
		Key:          normKey,
		Size:         st.Size(),
		LastModified: st.ModTime().UTC(),
	}, nil
}

// List implements driver.Driver. filepath.WalkDir visits entries in
// lexical order, which is exactly the portable ordering guarantee.
func (d *Driver) List(ctx context.Context, prefix string, fn driver.ListFunc) error {
	prefix = driver.CleanPrefix(prefix)

	err := filepath.WalkDir(d.root, func(path string, entry iofs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, iofs.ErrNotExist) {
				return nil
			}
			return fmt.Errorf("%w: walk %q: %v", driver.ErrReadFailed, path, err)
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, relErr := filepath.Rel(d.root, path)
		if relErr != nil {
			return fmt.Errorf("%w: %v", driver.ErrInternal, relErr)
		}
		key := filepath.ToSlash(rel)

		if entry.IsDir() {
			if key == "." {
				return nil
			}
			// Prune subtrees that can no longer match the prefix.
			if !strings.HasPrefix(key+"/", prefix) && !strings.HasPrefix(prefix, key+"/") {
				return iofs.SkipDir
			}
			return nil
		}
		if matched, _ := filepath.Match(tmpPattern, entry.Name()); matched {
			return nil
		}
		if !strings.HasPrefix(key, prefix) {
			return nil
		}
		return fn(key)
	})
	return err
}

// contextReader aborts long copies when the caller goes away.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
