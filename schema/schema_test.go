package schema

import (
	"testing"

	"github.com/keelworks/storekit/errors"
)

func TestSQLTypeRendering(t *testing.T) {
	tests := []struct {
		name string
		typ  SQLType
		want string
	}{
		{"smallint", SmallInt, "SMALLINT"},
		{"integer", Integer, "INTEGER"},
		{"bigint", BigInt, "BIGINT"},
		{"decimal", Decimal, "DECIMAL"},
		{"numeric plain", Numeric, "NUMERIC"},
		{"numeric with precision", NumericWith(10, 2), "NUMERIC(10,2)"},
		{"real", Real, "REAL"},
		{"double precision", DoublePrecision, "DOUBLE PRECISION"},
		{"smallserial", SmallSerial, "SMALLSERIAL"},
		{"serial", Serial, "SERIAL"},
		{"bigserial", BigSerial, "BIGSERIAL"},
		{"varchar", VarChar(255), "VARCHAR(255)"},
		{"char", Char(8), "CHAR(8)"},
		{"bpchar plain", BPChar, "BPCHAR"},
		{"bpchar with length", BPCharWith(16), "BPCHAR(16)"},
		{"text", Text, "TEXT"},
		{"bytea", Bytea, "BYTEA"},
		{"date", Date, "DATE"},
		{"boolean", Boolean, "BOOLEAN"},
		{"timestamp", Timestamp, "TIMESTAMP WITHOUT TIME ZONE"},
		{"timestamp tz", TimestampTZ, "TIMESTAMP WITH TIME ZONE"},
		{"time", Time, "TIME WITHOUT TIME ZONE"},
		{"time tz", TimeTZ, "TIME WITH TIME ZONE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.SQL(); got != tt.want {
				t.Errorf("SQL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPostgresValidate(t *testing.T) {
	tests := []struct {
		name    string
		schema  Postgres
		wantErr bool
	}{
		{
			name: "valid",
			schema: Postgres{
				Columns: []SQLColumn{{Name: "key", Type: Integer}, {Name: "value", Type: VarChar(255)}},
				Primary: "key",
			},
		},
		{
			name:    "no columns",
			schema:  Postgres{Primary: "key"},
			wantErr: true,
		},
		{
			name: "empty column name",
			schema: Postgres{
				Columns: []SQLColumn{{Name: "", Type: Text}},
				Primary: "key",
			},
			wantErr: true,
		},
		{
			name: "missing primary key",
			schema: Postgres{
				Columns: []SQLColumn{{Name: "key", Type: Integer}},
			},
			wantErr: true,
		},
		{
			name: "primary key not a column",
			schema: Postgres{
				Columns: []SQLColumn{{Name: "key", Type: Integer}},
				Primary: "id",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.schema.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.IsCode(err, errors.CodeInvalidArgument) {
				t.Errorf("Validate() code = %s, want %s", errors.CodeOf(err), errors.CodeInvalidArgument)
			}
		})
	}
}

func TestStandardValidate(t *testing.T) {
	valid := Standard{
		Columns: []Column{{Name: "id", Type: Int64}, {Name: "name", Type: String}},
		Primary: "id",
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}

	invalid := Standard{
		Columns: []Column{{Name: "id", Type: Int64}},
		Primary: "missing",
	}
	if err := invalid.Validate(); err == nil {
		t.Error("Validate() should reject a primary key that is not a column")
	}
}

func TestNativeTypeString(t *testing.T) {
	if got := Int64.String(); got != "int64" {
		t.Errorf("String() = %q, want %q", got, "int64")
	}
	if got := DateTime.String(); got != "datetime" {
		t.Errorf("String() = %q, want %q", got, "datetime")
	}
	if got := NativeType(99).String(); got != "unknown" {
		t.Errorf("String() = %q, want %q", got, "unknown")
	}
}

func TestPrimaryKeyAccessor(t *testing.T) {
	var s Schema = Postgres{
		Columns: []SQLColumn{{Name: "key", Type: Integer}},
		Primary: "key",
	}
	if s.PrimaryKey() != "key" {
		t.Errorf("PrimaryKey() = %q, want %q", s.PrimaryKey(), "key")
	}
}
