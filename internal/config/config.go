// Package config loads the YAML configuration of the omemeta tools and
// applies OMEMETA_* environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Driver identifies a document store backend.
type Driver string

const (
	DriverMemory   Driver = "memory"   // in-process only
	DriverSQLite   Driver = "sqlite"   // embedded sqlite file
	DriverPostgres Driver = "postgres" // PostgreSQL server
	DriverBadger   Driver = "badger"   // BadgerDB directory
	DriverBolt     Driver = "bolt"     // bbolt file
	DriverRedis    Driver = "redis"    // redis hash per document
	DriverBlob     Driver = "blob"     // xz snapshot archive in a blob store
)

// Drivers lists every supported store driver.
func Drivers() []Driver {
	return []Driver{DriverMemory, DriverSQLite, DriverPostgres, DriverBadger, DriverBolt, DriverRedis, DriverBlob}
}

// Valid reports whether d names a supported driver.
func (d Driver) Valid() bool {
	for _, known := range Drivers() {
		if d == known {
			return true
		}
	}
	return false
}

// Config is the top-level configuration of omeconvert.
type Config struct {
	Source      Store   `yaml:"source"`
	Destination Store   `yaml:"destination"`
	Filter      bool    `yaml:"filter"`
	LogLevel    string  `yaml:"log_level,omitempty"`
	Metrics     Metrics `yaml:"metrics,omitempty"`
}

// Store selects and configures one document store.
type Store struct {
	Driver   Driver `yaml:"driver"`
	Document string `yaml:"document,omitempty"`
	// MaxIndex bounds index positions accepted on write; 0 keeps the default.
	MaxIndex int `yaml:"max_index,omitempty"`

	SQLite   SQLite   `yaml:"sqlite,omitempty"`
	Postgres Postgres `yaml:"postgres,omitempty"`
	Badger   Badger   `yaml:"badger,omitempty"`
	Bolt     Bolt     `yaml:"bolt,omitempty"`
	Redis    Redis    `yaml:"redis,omitempty"`
	Blob     Blob     `yaml:"blob,omitempty"`
}

// SQLite configures the sqlite driver.
type SQLite struct {
	Path string `yaml:"path,omitempty"`
}

// Postgres configures the postgres driver.
type Postgres struct {
	DSN string `yaml:"dsn,omitempty"`
}

// Badger configures the badger driver.
type Badger struct {
	Path     string `yaml:"path,omitempty"`
	InMemory bool   `yaml:"in_memory,omitempty"`
}

// Bolt configures the bolt driver.
type Bolt struct {
	Path string `yaml:"path,omitempty"`
}

// Redis configures the redis driver.
type Redis struct {
	URL            string `yaml:"url,omitempty"`
	Addr           string `yaml:"addr,omitempty"`
	ConnectTimeout string `yaml:"connect_timeout,omitempty"`
}

// Timeout parses ConnectTimeout, defaulting to five seconds.
func (r Redis) Timeout() time.Duration {
	d, err := time.ParseDuration(r.ConnectTimeout)
	if err != nil || d <= 0 {
		return 5 * time.Second
	}
	return d
}

// Blob configures the blob driver and the blob store holding archives.
type Blob struct {
	Driver string `yaml:"driver,omitempty"` // fs|s3|memory
	Root   string `yaml:"root,omitempty"`   // fs root directory
	Prefix string `yaml:"prefix,omitempty"` // archive key prefix
	S3     S3     `yaml:"s3,omitempty"`
}

// S3 configures the s3 blob driver.
type S3 struct {
	Bucket    string `yaml:"bucket,omitempty"`
	Region    string `yaml:"region,omitempty"`
	Endpoint  string `yaml:"endpoint,omitempty"`
	PathStyle bool   `yaml:"path_style,omitempty"`
}

// Metrics configures metric export.
type Metrics struct {
	// Listen serves /metrics (Prometheus) and /debug/vars (expvar) when set.
	Listen string `yaml:"listen,omitempty"`
	// TraceFile receives JSON trace lines when set.
	TraceFile string `yaml:"trace_file,omitempty"`
}

// Default returns the configuration used when no file is given: a sqlite
// document archived into the local blob store.
func Default() Config {
	return Config{
		Source:      Store{Driver: DriverSQLite},
		Destination: Store{Driver: DriverBlob, Blob: Blob{Driver: "fs"}},
		LogLevel:    "info",
	}
}

// Load reads path (when non-empty) over the defaults, then applies the
// environment and validates the result.
func Load(path string) (Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Read is Load without validation, for callers that apply further
// overrides before calling Validate.
func Read(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := Decode(bytes.NewReader(data), &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	ApplyEnv(&cfg, os.Getenv)
	return cfg, nil
}

// Decode reads YAML from r over cfg, rejecting unknown keys.
func Decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// ApplyEnv overlays environment variables onto cfg:
//
//	OMEMETA_SOURCE_DRIVER, OMEMETA_DEST_DRIVER: store drivers
//	OMEMETA_SOURCE_DOCUMENT, OMEMETA_DEST_DOCUMENT: document names
//	OMEMETA_SQLITE_PATH, OMEMETA_POSTGRES_DSN, OMEMETA_BADGER_PATH,
//	OMEMETA_BOLT_PATH, OMEMETA_REDIS_URL, OMEMETA_REDIS_ADDR: fill the
//	  matching setting of either store when it is empty
//	OMEMETA_BLOB_DRIVER, OMEMETA_BLOB_FS_ROOT, OMEMETA_BLOB_S3_BUCKET,
//	OMEMETA_BLOB_S3_REGION, OMEMETA_BLOB_S3_ENDPOINT,
//	OMEMETA_BLOB_S3_PATH_STYLE: likewise for blob settings
//	OMEMETA_FILTER: true|false
//	OMEMETA_LOG_LEVEL: logrus level name
//	OMEMETA_METRICS_LISTEN: metrics listen address
func ApplyEnv(cfg *Config, getenv func(string) string) {
	if v := getenv("OMEMETA_SOURCE_DRIVER"); v != "" {
		cfg.Source.Driver = Driver(strings.ToLower(v))
	}
	if v := getenv("OMEMETA_DEST_DRIVER"); v != "" {
		cfg.Destination.Driver = Driver(strings.ToLower(v))
	}
	if v := getenv("OMEMETA_SOURCE_DOCUMENT"); v != "" {
		cfg.Source.Document = v
	}
	if v := getenv("OMEMETA_DEST_DOCUMENT"); v != "" {
		cfg.Destination.Document = v
	}
	for _, s := range []*Store{&cfg.Source, &cfg.Destination} {
		fill(&s.SQLite.Path, getenv("OMEMETA_SQLITE_PATH"))
		fill(&s.Postgres.DSN, getenv("OMEMETA_POSTGRES_DSN"))
		fill(&s.Badger.Path, getenv("OMEMETA_BADGER_PATH"))
		fill(&s.Bolt.Path, getenv("OMEMETA_BOLT_PATH"))
		fill(&s.Redis.URL, getenv("OMEMETA_REDIS_URL"))
		fill(&s.Redis.Addr, getenv("OMEMETA_REDIS_ADDR"))
		fill(&s.Blob.Driver, getenv("OMEMETA_BLOB_DRIVER"))
		fill(&s.Blob.Root, getenv("OMEMETA_BLOB_FS_ROOT"))
		fill(&s.Blob.S3.Bucket, getenv("OMEMETA_BLOB_S3_BUCKET"))
		fill(&s.Blob.S3.Region, getenv("OMEMETA_BLOB_S3_REGION"))
		fill(&s.Blob.S3.Endpoint, getenv("OMEMETA_BLOB_S3_ENDPOINT"))
		if b, err := strconv.ParseBool(getenv("OMEMETA_BLOB_S3_PATH_STYLE")); err == nil && b {
			s.Blob.S3.PathStyle = true
		}
	}
	if b, err := strconv.ParseBool(getenv("OMEMETA_FILTER")); err == nil {
		cfg.Filter = b
	}
	if v := getenv("OMEMETA_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := getenv("OMEMETA_METRICS_LISTEN"); v != "" {
		cfg.Metrics.Listen = v
	}
}

func fill(dst *string, v string) {
	if *dst == "" && v != "" {
		*dst = v
	}
}

// Validate checks driver names and driver-specific requirements.
func (c Config) Validate() error {
	var errs []error
	for _, side := range []struct {
		name string
		s    Store
	}{{"source", c.Source}, {"destination", c.Destination}} {
		if err := side.s.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", side.name, err))
		}
	}
	return errors.Join(errs...)
}

// Validate checks one store section.
func (s Store) Validate() error {
	if !s.Driver.Valid() {
		return fmt.Errorf("unknown storage driver %q", s.Driver)
	}
	if s.MaxIndex < 0 {
		return fmt.Errorf("max_index must not be negative")
	}
	switch s.Driver {
	case DriverBadger:
		if s.Badger.Path == "" && !s.Badger.InMemory {
			return fmt.Errorf("badger: path or in_memory required")
		}
	case DriverBolt:
		if s.Bolt.Path == "" {
			return fmt.Errorf("bolt: path required")
		}
	case DriverBlob:
		switch s.Blob.Driver {
		case "", "fs", "memory":
		case "s3":
			if s.Blob.S3.Bucket == "" {
				return fmt.Errorf("blob: s3 bucket required")
			}
		default:
			return fmt.Errorf("blob: unknown driver %q", s.Blob.Driver)
		}
	}
	return nil
}
