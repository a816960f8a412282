// Package pgstore implements the storekit.Client contract against a
// relational database.
//
// # Overview
//
// pgstore maps each object type to one table named by the type's stable
// name. Its realized core is DDL generation: a Postgres-variant schema is
// rendered to a CREATE TABLE IF NOT EXISTS statement, column order matching
// the schema's declaration order, and executed by CreateObjectDir. Row-level
// get/put/delete are declared by the contract but not realized at this
// design point; they are a defined extension surface over the exposed GORM
// handle, not a silently dropped feature.
//
// # Construction
//
// New validates the connection string synchronously and prepares the pool
// lazily; no network round-trip happens until the first statement or Ping.
// The postgres driver is the default; mysql and sqlite dialects are
// selectable for the pool, while the DDL vocabulary stays Postgres.
//
// # Usage
//
//	store, err := pgstore.New("postgres://app@db:5432/app",
//		pgstore.WithPoolLimits(10, 100))
//	if err != nil {
//		return err
//	}
//	if err := store.CreateObjectDir(ctx, User{}); err != nil {
//		return err
//	}
package pgstore
