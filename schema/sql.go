package schema

import "strconv"

// sqlKind discriminates the SQL scalar vocabulary.
type sqlKind uint8

const (
	kindSmallInt sqlKind = iota
	kindInteger
	kindBigInt
	kindDecimal
	kindNumeric
	kindReal
	kindDoublePrecision
	kindSmallSerial
	kindSerial
	kindBigSerial
	kindVarChar
	kindChar
	kindBPChar
	kindText
	kindBytea
	kindDate
	kindBoolean
	kindTimestamp
	kindTime
)

// SQLType is one SQL scalar type, possibly parameterized with a length,
// precision/scale, or time zone flag. Values are constructed from the
// package variables and constructor functions below.
type SQLType struct {
	kind         sqlKind
	length       int
	hasLength    bool
	precision    int
	scale        int
	hasPrecision bool
	withTZ       bool
}

// Unparameterized SQL scalar types.
var (
	SmallInt        = SQLType{kind: kindSmallInt}
	Integer         = SQLType{kind: kindInteger}
	BigInt          = SQLType{kind: kindBigInt}
	Decimal         = SQLType{kind: kindDecimal}
	Numeric         = SQLType{kind: kindNumeric}
	Real            = SQLType{kind: kindReal}
	DoublePrecision = SQLType{kind: kindDoublePrecision}
	SmallSerial     = SQLType{kind: kindSmallSerial}
	Serial          = SQLType{kind: kindSerial}
	BigSerial       = SQLType{kind: kindBigSerial}
	BPChar          = SQLType{kind: kindBPChar}
	Text            = SQLType{kind: kindText}
	Bytea           = SQLType{kind: kindBytea}
	Date            = SQLType{kind: kindDate}
	Boolean         = SQLType{kind: kindBoolean}
	Timestamp       = SQLType{kind: kindTimestamp}
	TimestampTZ     = SQLType{kind: kindTimestamp, withTZ: true}
	Time            = SQLType{kind: kindTime}
	TimeTZ          = SQLType{kind: kindTime, withTZ: true}
)

// NumericWith returns a NUMERIC type with explicit precision and scale.
func NumericWith(precision, scale int) SQLType {
	return SQLType{kind: kindNumeric, precision: precision, scale: scale, hasPrecision: true}
}

// VarChar returns a VARCHAR type with the given length.
func VarChar(n int) SQLType {
	return SQLType{kind: kindVarChar, length: n, hasLength: true}
}

// Char returns a CHAR type with the given length.
func Char(n int) SQLType {
	return SQLType{kind: kindChar, length: n, hasLength: true}
}

// BPCharWith returns a BPCHAR type with an explicit length.
func BPCharWith(n int) SQLType {
	return SQLType{kind: kindBPChar, length: n, hasLength: true}
}

// SQL renders the type as it appears in generated DDL.
func (t SQLType) SQL() string {
	switch t.kind {
	case kindSmallInt:
		return "SMALLINT"
	case kindInteger:
		return "INTEGER"
	case kindBigInt:
		return "BIGINT"
	case kindDecimal:
		return "DECIMAL"
	case kindNumeric:
		if t.hasPrecision {
			return "NUMERIC(" + strconv.Itoa(t.precision) + "," + strconv.Itoa(t.scale) + ")"
		}
		return "NUMERIC"
	case kindReal:
		return "REAL"
	case kindDoublePrecision:
		return "DOUBLE PRECISION"
	case kindSmallSerial:
		return "SMALLSERIAL"
	case kindSerial:
		return "SERIAL"
	case kindBigSerial:
		return "BIGSERIAL"
	case kindVarChar:
		return "VARCHAR(" + strconv.Itoa(t.length) + ")"
	case kindChar:
		return "CHAR(" + strconv.Itoa(t.length) + ")"
	case kindBPChar:
		if t.hasLength {
			return "BPCHAR(" + strconv.Itoa(t.length) + ")"
		}
		return "BPCHAR"
	case kindText:
		return "TEXT"
	case kindBytea:
		return "BYTEA"
	case kindDate:
		return "DATE"
	case kindBoolean:
		return "BOOLEAN"
	case kindTimestamp:
		if t.withTZ {
			return "TIMESTAMP WITH TIME ZONE"
		}
		return "TIMESTAMP WITHOUT TIME ZONE"
	case kindTime:
		if t.withTZ {
			return "TIME WITH TIME ZONE"
		}
		return "TIME WITHOUT TIME ZONE"
	default:
		return "UNKNOWN"
	}
}

// String returns the rendered SQL form.
func (t SQLType) String() string {
	return t.SQL()
}
