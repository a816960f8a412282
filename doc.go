// Package storekit defines capability contracts for generic object
// persistence and a registry for managing backends.
//
// # Overview
//
// storekit models persistence behind three small contracts: Object (identity
// and optional schema), Format (byte codec), and Client (addressed CRUD plus
// partition lifecycle against one backend). Objects are partitioned by their
// stable type name; within one backend, (type name, key) identifies at most
// one stored value. Concrete backends live in the filestore and pgstore
// packages, codecs in the format package.
//
// # Usage
//
//	store, err := filestore.New("file:///var/data/app", format.JSON{})
//	if err != nil {
//		return err
//	}
//	if err := store.CreateObjectDir(ctx, User{}); err != nil {
//		return err
//	}
//	if err := store.Put(ctx, "u-1", User{ID: "u-1", Name: "Ada"}); err != nil {
//		return err
//	}
//	user, err := storekit.Get[User](ctx, store, "u-1")
//
// # Error semantics
//
// Absence is never an error: Get reports false, Delete reports false. All
// failures carry a code from the errors package (IO, SERIALIZATION, CONFIG,
// SCHEMA_MISMATCH, INVALID_ARGUMENT, UNIMPLEMENTED) plus the failing
// operation and key/type context. No operation retries.
//
// # Concurrency
//
// Every operation is an independent I/O call; this layer adds no locking of
// its own. Concurrent puts to the same key race at the underlying store and
// the last writer wins.
package storekit
