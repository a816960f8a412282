package pgstore

import (
	"fmt"
	"strings"

	"github.com/keelworks/storekit"
	"github.com/keelworks/storekit/errors"
	"github.com/keelworks/storekit/schema"
)

// TableDDL generates the CREATE TABLE statement for an object type:
//
//	CREATE TABLE IF NOT EXISTS <type_name> (<col> <TYPE>, ..., PRIMARY KEY (<pk>))
//
// Columns are rendered in the schema's declaration order. The object must
// carry a Postgres-variant schema, otherwise a SCHEMA_MISMATCH error is
// reported.
func TableDDL(obj storekit.Object) (string, error) {
	return tableDDL(obj.ObjectType(), obj)
}

func tableDDL(table string, obj storekit.Object) (string, error) {
	sc, ok := obj.(storekit.Schemed)
	if !ok {
		return "", errors.Newf(errors.CodeSchemaMismatch, "type %q carries no schema", obj.ObjectType())
	}

	pg, ok := sc.StorageSchema().(schema.Postgres)
	if !ok {
		return "", errors.Newf(errors.CodeSchemaMismatch,
			"schema of type %q is not the Postgres variant", obj.ObjectType())
	}

	if err := pg.Validate(); err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (", table)
	for _, col := range pg.Columns {
		b.WriteString(col.Name)
		b.WriteByte(' ')
		b.WriteString(col.Type.SQL())
		b.WriteString(", ")
	}
	fmt.Fprintf(&b, "PRIMARY KEY (%s))", pg.Primary)
	return b.String(), nil
}

// Row-level statements for the single-payload-column layout. They seed the
// declared-but-unrealized CRUD surface and are not executed yet.

func selectQuery(table string) string {
	return fmt.Sprintf("SELECT value FROM %s WHERE key = $1", table)
}

func upsertQuery(table string) string {
	return fmt.Sprintf(
		"INSERT INTO %s (key, value) VALUES ($1, $2) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value",
		table)
}

func deleteQuery(table string) string {
	return fmt.Sprintf("DELETE FROM %s WHERE key = $1", table)
}
