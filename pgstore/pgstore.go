package pgstore

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/keelworks/storekit"
	"github.com/keelworks/storekit/errors"
	"github.com/keelworks/storekit/log"
)

// TableFunc names the table for an object type. The default is
// storekit.DefaultObjectDir, i.e. the type name itself.
type TableFunc func(storekit.Object) string

// Options holds construction options for the relational client.
type Options struct {
	Driver          string        // Database driver: postgres (default), mysql, sqlite
	MaxIdleConns    int           // Maximum number of idle connections
	MaxOpenConns    int           // Maximum number of open connections
	ConnMaxLifetime time.Duration // Maximum connection lifetime
	Logger          log.Logger    // Logger for database operations (default: discard)
	Table           TableFunc     // Table naming rule (default: the type name)
}

// Option configures the relational client.
type Option func(*Options)

// WithDriver selects the database driver.
func WithDriver(driver string) Option {
	return func(o *Options) {
		o.Driver = driver
	}
}

// WithPoolLimits sets the idle and open connection limits.
func WithPoolLimits(maxIdle, maxOpen int) Option {
	return func(o *Options) {
		o.MaxIdleConns = maxIdle
		o.MaxOpenConns = maxOpen
	}
}

// WithConnMaxLifetime sets the maximum connection lifetime.
func WithConnMaxLifetime(d time.Duration) Option {
	return func(o *Options) {
		o.ConnMaxLifetime = d
	}
}

// WithLogger sets the logger used for database operations.
func WithLogger(logger log.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithTableFunc overrides the table naming rule.
func WithTableFunc(fn TableFunc) Option {
	return func(o *Options) {
		o.Table = fn
	}
}

// Client is a relational storage client. Construction prepares a connection
// pool lazily; no round-trip is made until the first statement or Ping.
type Client struct {
	dsn    string
	db     *gorm.DB
	logger log.Logger
	table  TableFunc
}

var (
	_ storekit.Client = (*Client)(nil)
	_ storekit.Store  = (*Client)(nil)
)

// New creates a relational client for the given connection string. An empty
// or unparseable address fails with a CONFIG error before any connection is
// prepared.
func New(dsn string, opts ...Option) (*Client, error) {
	if dsn == "" {
		return nil, errors.New(errors.CodeConfig, "connection string is required")
	}
	if strings.Contains(dsn, "://") {
		if _, err := url.Parse(dsn); err != nil {
			return nil, errors.Wrapf(errors.CodeConfig, "pgstore.new", err, "parse connection string")
		}
	}

	options := Options{
		Driver:          "postgres",
		MaxIdleConns:    10,
		MaxOpenConns:    100,
		ConnMaxLifetime: time.Hour,
		Table:           storekit.DefaultObjectDir,
	}
	for _, opt := range opts {
		opt(&options)
	}
	if options.Table == nil {
		options.Table = storekit.DefaultObjectDir
	}

	dialector, err := dialectorFor(options.Driver, dsn)
	if err != nil {
		return nil, err
	}

	var gl gormlogger.Interface
	if options.Logger != nil {
		gl = &gormLogAdapter{logger: options.Logger}
	} else {
		gl = gormlogger.Default.LogMode(gormlogger.Silent)
	}

	// Automatic ping is disabled so construction stays a pure pool setup.
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:               gl,
		DisableAutomaticPing: true,
	})
	if err != nil {
		return nil, errors.Wrapf(errors.CodeConfig, "pgstore.new", err, "open %s pool", options.Driver)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(errors.CodeConfig, "pgstore.new", err)
	}
	sqlDB.SetMaxIdleConns(options.MaxIdleConns)
	sqlDB.SetMaxOpenConns(options.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(options.ConnMaxLifetime)

	logger := options.Logger
	if logger == nil {
		logger = log.Nop()
	}

	return &Client{
		dsn:    dsn,
		db:     db,
		logger: logger,
		table:  options.Table,
	}, nil
}

// dialectorFor returns the GORM dialector for the given driver name. The
// mysql dialector skips its version probe so that construction performs no
// network round-trip.
func dialectorFor(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case "postgres":
		return postgres.Open(dsn), nil
	case "mysql":
		return mysql.New(mysql.Config{DSN: dsn, SkipInitializeWithVersion: true}), nil
	case "sqlite":
		return sqlite.Open(dsn), nil
	default:
		return nil, errors.Newf(errors.CodeConfig, "unsupported driver %q", driver)
	}
}

// Dir returns the configured connection string.
func (c *Client) Dir() string {
	return c.dsn
}

// DB returns the underlying GORM handle, the extension surface for realizing
// row-level operations.
func (c *Client) DB() *gorm.DB {
	return c.db
}

// ObjectDir returns the table name for the object's type.
func (c *Client) ObjectDir(obj storekit.Object) string {
	return c.table(obj)
}

// ObjectPath describes the relational address for (type, key): the table
// plus the row matched by the primary-key value.
func (c *Client) ObjectPath(obj storekit.Object, key string) string {
	return c.ObjectDir(obj) + "/" + key
}

// CreateObjectDir idempotently creates the table for the object's type by
// executing its generated DDL. The object's schema must be the Postgres
// variant, otherwise a SCHEMA_MISMATCH error is reported.
func (c *Client) CreateObjectDir(ctx context.Context, obj storekit.Object) error {
	ddl, err := tableDDL(c.ObjectDir(obj), obj)
	if err != nil {
		return err
	}

	if err := c.db.WithContext(ctx).Exec(ddl).Error; err != nil {
		return errors.Wrapf(errors.CodeIO, "pgstore.create_object_dir", err, "type %q", obj.ObjectType())
	}

	c.logger.Debug("table created", log.Str("type", obj.ObjectType()), log.Str("table", c.ObjectDir(obj)))
	return nil
}

// Get is declared by the contract but not realized for the relational
// backend; see selectQuery for the statement it will execute.
func (c *Client) Get(ctx context.Context, key string, out storekit.Object) (bool, error) {
	return false, errors.Newf(errors.CodeUnimplemented,
		"pgstore.get: relational get is not realized, key %q type %q", key, out.ObjectType())
}

// Put is declared by the contract but not realized for the relational
// backend; see upsertQuery for the statement it will execute.
func (c *Client) Put(ctx context.Context, key string, obj storekit.Object) error {
	return errors.Newf(errors.CodeUnimplemented,
		"pgstore.put: relational put is not realized, key %q type %q", key, obj.ObjectType())
}

// Delete is declared by the contract but not realized for the relational
// backend; see deleteQuery for the statement it will execute.
func (c *Client) Delete(ctx context.Context, obj storekit.Object, key string) (bool, error) {
	return false, errors.Newf(errors.CodeUnimplemented,
		"pgstore.delete: relational delete is not realized, key %q type %q", key, obj.ObjectType())
}

// DeleteObjectDir is declared by the contract but not realized for the
// relational backend (table drop).
func (c *Client) DeleteObjectDir(ctx context.Context, obj storekit.Object) (bool, error) {
	return false, errors.Newf(errors.CodeUnimplemented,
		"pgstore.delete_object_dir: table drop is not realized, type %q", obj.ObjectType())
}

// DeleteAll is declared by the contract but not realized for the relational
// backend.
func (c *Client) DeleteAll(ctx context.Context) error {
	return errors.New(errors.CodeUnimplemented, "pgstore.delete_all: store drop is not realized")
}

// Ping checks the pooled connection, establishing it on first use.
func (c *Client) Ping(ctx context.Context) error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return errors.Wrap(errors.CodeIO, "pgstore.ping", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.Wrap(errors.CodeIO, "pgstore.ping", err)
	}
	return nil
}

// Close closes the connection pool.
func (c *Client) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return errors.Wrap(errors.CodeIO, "pgstore.close", err)
	}
	if err := sqlDB.Close(); err != nil {
		return errors.Wrap(errors.CodeIO, "pgstore.close", err)
	}
	return nil
}

// gormLogAdapter bridges GORM's logger interface to log.Logger. GORM passes
// printf-style templates, so messages are formatted before they reach the
// structured logger.
type gormLogAdapter struct {
	logger log.Logger
}

func (l *gormLogAdapter) LogMode(gormlogger.LogLevel) gormlogger.Interface {
	return l
}

func (l *gormLogAdapter) Info(ctx context.Context, msg string, data ...any) {
	l.logger.Info(fmt.Sprintf(msg, data...))
}

func (l *gormLogAdapter) Warn(ctx context.Context, msg string, data ...any) {
	l.logger.Warn(fmt.Sprintf(msg, data...))
}

func (l *gormLogAdapter) Error(ctx context.Context, msg string, data ...any) {
	l.logger.Error(nil, fmt.Sprintf(msg, data...))
}

func (l *gormLogAdapter) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	sql, rows := fc()
	if err != nil {
		l.logger.Error(err, "statement failed", log.Str("sql", sql))
		return
	}
	l.logger.Debug("statement executed",
		log.Str("sql", sql), log.Int("rows", int(rows)), log.Dur("duration", time.Since(begin)))
}
