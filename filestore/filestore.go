// Package filestore implements the storekit.Client contract on a local
// filesystem tree.
//
// Overview:
//   - Responsibility: One-file-per-key object storage under root/<type>/<key>
//   - Key Types: Client, functional Options
//   - Concurrency Model: Safe for concurrent use; concurrent puts to one key race, last writer wins
//   - Error Semantics: Absence reported as false; failures carry op, key, and type context
//
// The root directory is created eagerly at construction; per-type partitions
// are created explicitly via CreateObjectDir before first use. Put never
// auto-creates a partition. File contents are exactly the configured
// format's bytes, with no header or framing.
package filestore

import (
	"context"
	"io/fs"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/keelworks/storekit"
	"github.com/keelworks/storekit/errors"
	"github.com/keelworks/storekit/log"
)

// ObjectDirFunc names the partition directory for an object type. The
// default is storekit.DefaultObjectDir.
type ObjectDirFunc func(storekit.Object) string

// Options holds construction options for the filesystem client.
type Options struct {
	Logger    log.Logger    // Logger for mutating operations (default: discard)
	ObjectDir ObjectDirFunc // Partition naming rule (default: the type name)
}

// Option configures the filesystem client.
type Option func(*Options)

// WithLogger sets the logger used for mutating operations.
func WithLogger(logger log.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithObjectDirFunc overrides the partition naming rule, e.g. to pluralize
// or namespace type names.
func WithObjectDirFunc(fn ObjectDirFunc) Option {
	return func(o *Options) {
		o.ObjectDir = fn
	}
}

// Client is a filesystem-backed storage client.
type Client struct {
	root      string
	format    storekit.Format
	logger    log.Logger
	objectDir ObjectDirFunc
}

var (
	_ storekit.Client = (*Client)(nil)
	_ storekit.Store  = (*Client)(nil)
)

// New creates a filesystem client rooted at rawURL, which is either a
// file:// URL or a plain path. The root directory is created eagerly, so
// construction is a fallible I/O operation, not a pure value construction.
// An address without a path component fails with a CONFIG error before any
// I/O is attempted.
func New(rawURL string, f storekit.Format, opts ...Option) (*Client, error) {
	if f == nil {
		return nil, errors.New(errors.CodeConfig, "storage format is required")
	}

	root, err := rootPath(rawURL)
	if err != nil {
		return nil, err
	}

	options := Options{
		Logger:    log.Nop(),
		ObjectDir: storekit.DefaultObjectDir,
	}
	for _, opt := range opts {
		opt(&options)
	}
	if options.Logger == nil {
		options.Logger = log.Nop()
	}
	if options.ObjectDir == nil {
		options.ObjectDir = storekit.DefaultObjectDir
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, errors.Wrapf(errors.CodeIO, "filestore.new", err, "create root %q", root)
	}

	c := &Client{
		root:      root,
		format:    f,
		logger:    options.Logger,
		objectDir: options.ObjectDir,
	}

	c.logger.Debug("filestore opened", log.Str("root", root), log.Str("format", f.ContentType()))
	return c, nil
}

// rootPath resolves the store address to a local path. The address must
// carry a non-empty path component.
func rootPath(rawURL string) (string, error) {
	raw := rawURL
	if strings.Contains(rawURL, "://") {
		u, err := url.Parse(rawURL)
		if err != nil {
			return "", errors.Wrapf(errors.CodeConfig, "filestore.new", err, "parse store address %q", rawURL)
		}
		raw = u.Path
	}
	if raw == "" {
		return "", errors.Newf(errors.CodeConfig, "store address %q has no path", rawURL)
	}
	return filepath.Clean(raw), nil
}

// Dir returns the configured root directory.
func (c *Client) Dir() string {
	return c.root
}

// ObjectDir returns the partition directory name for the object's type.
func (c *Client) ObjectDir(obj storekit.Object) string {
	return c.objectDir(obj)
}

// ObjectPath builds the full file path for (type, key). Pure string join,
// no I/O; validation happens in the operations that touch the filesystem.
func (c *Client) ObjectPath(obj storekit.Object, key string) string {
	return path.Join(c.root, c.ObjectDir(obj), key)
}

// CreateObjectDir idempotently creates the partition directory for the
// object's type.
func (c *Client) CreateObjectDir(ctx context.Context, obj storekit.Object) error {
	dir := c.ObjectDir(obj)
	if err := storekit.ValidateSegment("type name", dir); err != nil {
		return err
	}

	if err := os.MkdirAll(path.Join(c.root, dir), 0o755); err != nil {
		return errors.Wrapf(errors.CodeIO, "filestore.create_object_dir", err, "type %q", obj.ObjectType())
	}

	c.logger.Debug("partition created", log.Str("type", obj.ObjectType()), log.Str("dir", dir))
	return nil
}

// Get loads the value stored under key into out. Absent keys report false
// with no error.
func (c *Client) Get(ctx context.Context, key string, out storekit.Object) (bool, error) {
	if err := c.validateAddress(out, key); err != nil {
		return false, err
	}

	p := c.ObjectPath(out, key)
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, errors.Wrapf(errors.CodeIO, "filestore.get", err, "key %q type %q", key, out.ObjectType())
	}

	if err := c.format.Unmarshal(data, out); err != nil {
		return false, errors.Wrapf(errors.CodeSerialization, "filestore.get", err, "key %q type %q", key, out.ObjectType())
	}
	return true, nil
}

// Put stores obj under key, overwriting unconditionally. The payload is
// written to a temporary file in the partition and renamed over the
// destination, so a crash mid-write never leaves a truncated object behind.
// The partition must already exist; see CreateObjectDir.
func (c *Client) Put(ctx context.Context, key string, obj storekit.Object) error {
	if err := c.validateAddress(obj, key); err != nil {
		return err
	}

	data, err := c.format.Marshal(obj)
	if err != nil {
		return errors.Wrapf(errors.CodeSerialization, "filestore.put", err, "key %q type %q", key, obj.ObjectType())
	}

	dir := path.Join(c.root, c.ObjectDir(obj))
	tmp, err := os.CreateTemp(dir, "."+key+".*")
	if err != nil {
		return errors.Wrapf(errors.CodeIO, "filestore.put", err, "key %q type %q", key, obj.ObjectType())
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.Wrapf(errors.CodeIO, "filestore.put", err, "key %q type %q", key, obj.ObjectType())
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrapf(errors.CodeIO, "filestore.put", err, "key %q type %q", key, obj.ObjectType())
	}

	if err := os.Rename(tmp.Name(), c.ObjectPath(obj, key)); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrapf(errors.CodeIO, "filestore.put", err, "key %q type %q", key, obj.ObjectType())
	}

	c.logger.Debug("object stored",
		log.Str("type", obj.ObjectType()), log.Str("key", key), log.Int("bytes", len(data)))
	return nil
}

// Delete removes the value stored under key. Absent keys report false with
// no error.
func (c *Client) Delete(ctx context.Context, obj storekit.Object, key string) (bool, error) {
	if err := c.validateAddress(obj, key); err != nil {
		return false, err
	}

	err := os.Remove(c.ObjectPath(obj, key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, errors.Wrapf(errors.CodeIO, "filestore.delete", err, "key %q type %q", key, obj.ObjectType())
	}

	c.logger.Debug("object deleted", log.Str("type", obj.ObjectType()), log.Str("key", key))
	return true, nil
}

// DeleteObjectDir removes the type's whole partition. An absent partition
// reports false with no error.
func (c *Client) DeleteObjectDir(ctx context.Context, obj storekit.Object) (bool, error) {
	dir := c.ObjectDir(obj)
	if err := storekit.ValidateSegment("type name", dir); err != nil {
		return false, err
	}

	p := path.Join(c.root, dir)
	if _, err := os.Stat(p); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, errors.Wrapf(errors.CodeIO, "filestore.delete_object_dir", err, "type %q", obj.ObjectType())
	}

	if err := os.RemoveAll(p); err != nil {
		return false, errors.Wrapf(errors.CodeIO, "filestore.delete_object_dir", err, "type %q", obj.ObjectType())
	}

	c.logger.Debug("partition deleted", log.Str("type", obj.ObjectType()), log.Str("dir", dir))
	return true, nil
}

// DeleteAll removes the entire store, root directory included.
func (c *Client) DeleteAll(ctx context.Context) error {
	if err := os.RemoveAll(c.root); err != nil {
		return errors.Wrapf(errors.CodeIO, "filestore.delete_all", err, "root %q", c.root)
	}

	c.logger.Debug("store deleted", log.Str("root", c.root))
	return nil
}

// Ping checks that the root directory is reachable.
func (c *Client) Ping(ctx context.Context) error {
	info, err := os.Stat(c.root)
	if err != nil {
		return errors.Wrapf(errors.CodeIO, "filestore.ping", err, "root %q", c.root)
	}
	if !info.IsDir() {
		return errors.Newf(errors.CodeIO, "filestore.ping: root %q is not a directory", c.root)
	}
	return nil
}

// Close releases nothing; the filesystem client holds no open resources.
func (c *Client) Close() error {
	return nil
}

// validateAddress applies the segment policy to the type name and key before
// any I/O, so keys cannot escape their partition.
func (c *Client) validateAddress(obj storekit.Object, key string) error {
	if err := storekit.ValidateSegment("type name", c.ObjectDir(obj)); err != nil {
		return err
	}
	return storekit.ValidateSegment("key", key)
}
