// Package schema describes column layouts for persisted object types.
//
// Overview:
//   - Responsibility: Scalar type vocabularies and per-type column layouts
//   - Key Types: NativeType and SQLType vocabularies, Standard and Postgres schema variants
//   - Concurrency Model: All values are immutable after construction
//   - Error Semantics: Validate reports invalid layouts; rendering never fails
//
// The two vocabularies are kept structurally parallel but independently
// extensible: a backend with its own type system adds a third vocabulary and
// a third Schema variant rather than overloading these.
package schema

import (
	"github.com/keelworks/storekit/errors"
)

// NativeType enumerates language-native scalar column types, used when a
// backend stores whole-object payloads rather than per-column values.
type NativeType int

// Language-native scalar types.
const (
	Bool NativeType = iota
	Int
	Int8
	Int16
	Int32
	Int64
	Uint
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
	String
	Bytes
	DateTime
)

var nativeNames = map[NativeType]string{
	Bool:     "bool",
	Int:      "int",
	Int8:     "int8",
	Int16:    "int16",
	Int32:    "int32",
	Int64:    "int64",
	Uint:     "uint",
	Uint8:    "uint8",
	Uint16:   "uint16",
	Uint32:   "uint32",
	Uint64:   "uint64",
	Float32:  "float32",
	Float64:  "float64",
	String:   "string",
	Bytes:    "bytes",
	DateTime: "datetime",
}

// String returns the lower-case name of the native type.
func (t NativeType) String() string {
	if name, ok := nativeNames[t]; ok {
		return name
	}
	return "unknown"
}

// Column is one named column of a Standard schema. Column order within a
// schema is significant.
type Column struct {
	Name string
	Type NativeType
}

// SQLColumn is one named column of a Postgres schema. Column order within a
// schema is significant and determines DDL column order.
type SQLColumn struct {
	Name string
	Type SQLType
}

// Schema is the column layout for one object type. Exactly two variants
// exist today: Standard (language-native types) and Postgres (SQL types).
type Schema interface {
	// PrimaryKey returns the name of the primary key column.
	PrimaryKey() string

	// Validate checks that the layout is well formed: at least one column,
	// no empty column names, and a primary key naming a present column.
	Validate() error

	sealed()
}

// Standard is the Schema variant over language-native scalar types.
type Standard struct {
	Columns []Column
	Primary string
}

// PrimaryKey returns the name of the primary key column.
func (s Standard) PrimaryKey() string { return s.Primary }

// Validate checks the layout invariants.
func (s Standard) Validate() error {
	names := make([]string, len(s.Columns))
	for i, col := range s.Columns {
		names[i] = col.Name
	}
	return validateLayout(names, s.Primary)
}

func (Standard) sealed() {}

// Postgres is the Schema variant over SQL scalar types, consumed by the
// relational backend's DDL generation.
type Postgres struct {
	Columns []SQLColumn
	Primary string
}

// PrimaryKey returns the name of the primary key column.
func (s Postgres) PrimaryKey() string { return s.Primary }

// Validate checks the layout invariants.
func (s Postgres) Validate() error {
	names := make([]string, len(s.Columns))
	for i, col := range s.Columns {
		names[i] = col.Name
	}
	return validateLayout(names, s.Primary)
}

func (Postgres) sealed() {}

func validateLayout(columns []string, primary string) error {
	if len(columns) == 0 {
		return errors.New(errors.CodeInvalidArgument, "schema has no columns")
	}
	for _, name := range columns {
		if name == "" {
			return errors.New(errors.CodeInvalidArgument, "schema has a column with an empty name")
		}
	}
	if primary == "" {
		return errors.New(errors.CodeInvalidArgument, "schema has no primary key")
	}
	for _, name := range columns {
		if name == primary {
			return nil
		}
	}
	return errors.Newf(errors.CodeInvalidArgument, "primary key %q is not a schema column", primary)
}
