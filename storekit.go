package storekit

import (
	"context"
	"strings"

	"github.com/keelworks/storekit/errors"
	"github.com/keelworks/storekit/schema"
)

// Object is a persistable domain value. Implementations are supplied by the
// application, not owned by the storage layer.
type Object interface {
	// ObjectType returns the stable type name, unique per logical category.
	// It is used as the directory or table name for the type's partition
	// and must not change for the lifetime of the application.
	ObjectType() string

	// ObjectKey returns the instance identity within the object's type.
	ObjectKey() string
}

// Schemed is the optional capability of objects that carry a column layout
// for relational use.
type Schemed interface {
	Object

	// StorageSchema returns the column layout for the object's type.
	StorageSchema() schema.Schema
}

// Format is a stateless codec converting between an object and its persisted
// byte representation. A format is backend-agnostic; the same format may be
// reused across backends whenever payloads are stored whole.
//
// Round-trip law: Unmarshal(Marshal(x)) is field-wise equal to x for any
// value of a type the format supports.
type Format interface {
	// Marshal encodes a value into its persisted byte form. It never
	// changes the value's semantic content.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes persisted bytes into v, which must be a pointer.
	// It fails when the bytes are malformed or do not match v's shape.
	Unmarshal(data []byte, v any) error

	// ContentType returns the MIME type of the encoded form.
	ContentType() string
}

// Client performs addressed CRUD and partition lifecycle operations against
// one backend. Within one Client, (type name, key) identifies at most one
// stored value. Implementations must be safe for concurrent use; concurrent
// puts to the same key race at the underlying store, last writer wins.
type Client interface {
	// Dir returns the configured root address of the store.
	Dir() string

	// ObjectDir returns the partition name for the object's type. The
	// default rule is the type name itself; backends may override it via
	// a construction option.
	ObjectDir(obj Object) string

	// ObjectPath builds the full address for (type, key) in the backend's
	// own addressing scheme: the filesystem backend renders
	// Dir()/ObjectDir(obj)/key, the relational backend table/key. It is a
	// pure string function and performs no I/O or validation.
	ObjectPath(obj Object, key string) string

	// CreateObjectDir idempotently ensures the type's partition exists.
	// It fails only on genuine I/O error, never on "already exists".
	CreateObjectDir(ctx context.Context, obj Object) error

	// Get loads the value stored under key into out. It returns false with
	// no error when the key is absent, a Serialization error when the
	// stored bytes cannot be decoded as out's type, and an IO error for
	// any other access failure.
	Get(ctx context.Context, key string, out Object) (bool, error)

	// Put stores obj under key, overwriting unconditionally. There is no
	// compare-and-swap and no optimistic concurrency.
	Put(ctx context.Context, key string, obj Object) error

	// Delete removes the value stored under key. It returns true if
	// something was removed and false, with no error, if the key was
	// already absent.
	Delete(ctx context.Context, obj Object, key string) (bool, error)

	// DeleteObjectDir removes the type's whole partition with the same
	// absent-is-false idempotence as Delete.
	DeleteObjectDir(ctx context.Context, obj Object) (bool, error)

	// DeleteAll removes the entire store.
	DeleteAll(ctx context.Context) error
}

// Store is the health and lifecycle capability of a backend, consumed by
// the Registry. Both backends implement it alongside Client.
type Store interface {
	// Ping checks that the backend is reachable and healthy.
	Ping(ctx context.Context) error

	// Close releases the backend's resources.
	Close() error
}

// DefaultObjectDir is the default partition naming rule: the object's type
// name, unchanged.
func DefaultObjectDir(obj Object) string {
	return obj.ObjectType()
}

// ValidateSegment checks a key or type name against the address policy:
// segments must be non-empty, must not contain path separators, and must not
// be "." or "..". Operations apply it before any I/O so that keys cannot
// escape their partition.
func ValidateSegment(kind, segment string) error {
	switch {
	case segment == "":
		return errors.Newf(errors.CodeInvalidArgument, "%s is empty", kind)
	case segment == "." || segment == "..":
		return errors.Newf(errors.CodeInvalidArgument, "%s %q is reserved", kind, segment)
	case strings.ContainsAny(segment, `/\`):
		return errors.Newf(errors.CodeInvalidArgument, "%s %q contains a path separator", kind, segment)
	}
	return nil
}

// Get is a typed convenience over Client.Get. It allocates a fresh O,
// decodes into it, and returns nil when the key is absent.
func Get[O any, P interface {
	Object
	*O
}](ctx context.Context, c Client, key string) (*O, error) {
	var v O
	found, err := c.Get(ctx, key, P(&v))
	if err != nil || !found {
		return nil, err
	}
	return &v, nil
}

// Put is the typed companion of Get, dispatching through Client.Put.
func Put[O Object](ctx context.Context, c Client, key string, v O) error {
	return c.Put(ctx, key, v)
}
