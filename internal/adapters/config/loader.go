// Package config provides the configuration loader for dbfetch.
package config

import (
	"fmt"
	"os"

	"go.trai.ch/dbfetch/internal/core/domain"
	"go.trai.ch/dbfetch/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Default directories used when the config leaves them out.
const (
	defaultQueryDir    = "queries"
	defaultCacheDir    = "cache"
	defaultDatadumpDir = "datadump"
)

const (
	defaultMySQLPort    = 3306
	defaultPostgresPort = 5432
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{logger: log}
}

// Load reads a configuration file from the given path and returns the job.
// The configured directories are created when missing.
func (l *Loader) Load(path string) (*domain.Job, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	var file ProjectFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	job, err := l.build(&file)
	if err != nil {
		return nil, err
	}

	if err := l.ensureDirectories(job.Directories); err != nil {
		return nil, err
	}

	return job, nil
}

func (l *Loader) build(file *ProjectFile) (*domain.Job, error) {
	if file.LoadQuery == "" {
		return nil, missingField("load_query")
	}
	if file.IndexColumns < 0 {
		return nil, zerr.With(zerr.New("index_columns must not be negative"),
			"index_columns", file.IndexColumns)
	}
	load, err := buildConnection("load", file.Load, defaultMySQLPort)
	if err != nil {
		return nil, err
	}

	job := &domain.Job{
		Directories:  buildDirectories(file.Directories),
		Load:         load,
		QueryName:    file.LoadQuery,
		IndexColumns: file.IndexColumns,
		UseCache:     file.UseCache,
		DumpCSV:      file.DumpCSV,
	}

	if file.Store == nil {
		// Matches the reference behavior: a missing store section is not an
		// error, exports are simply unavailable.
		l.logger.Debug("no store section in config, export disabled")
		return job, nil
	}

	store, err := buildStore(file.Store)
	if err != nil {
		return nil, err
	}
	job.Store = store

	return job, nil
}

func buildDirectories(d DirectoriesDTO) domain.Directories {
	dirs := domain.Directories{
		QueryDir:    d.QueryDir,
		CacheDir:    d.CacheDir,
		DatadumpDir: d.DatadumpDir,
	}
	if dirs.QueryDir == "" {
		dirs.QueryDir = defaultQueryDir
	}
	if dirs.CacheDir == "" {
		dirs.CacheDir = defaultCacheDir
	}
	if dirs.DatadumpDir == "" {
		dirs.DatadumpDir = defaultDatadumpDir
	}
	return dirs
}

func buildConnection(section string, c ConnectionDTO, defaultPort int) (domain.Connection, error) {
	conn := domain.Connection{
		Host:     c.Host,
		Port:     c.Port,
		Username: c.Username,
		Password: c.Password,
		Database: c.Database,
	}
	if conn.Host == "" {
		return conn, missingField(section + ".host")
	}
	if conn.Username == "" {
		return conn, missingField(section + ".username")
	}
	if conn.Database == "" {
		return conn, missingField(section + ".database")
	}
	if conn.Port == 0 {
		conn.Port = defaultPort
	}
	return conn, nil
}

func buildStore(s *StoreDTO) (*domain.Store, error) {
	var defaultPort int
	switch domain.StoreDriver(s.DriverName) {
	case domain.DriverMySQL:
		defaultPort = defaultMySQLPort
	case domain.DriverPostgres:
		defaultPort = defaultPostgresPort
	default:
		return nil, zerr.With(zerr.New("store drivername must be mysql or postgres"),
			"drivername", s.DriverName)
	}

	if s.Table == "" {
		return nil, missingField("store.table")
	}

	conn, err := buildConnection("store", ConnectionDTO{
		Host:     s.Host,
		Port:     s.Port,
		Username: s.Username,
		Password: s.Password,
		Database: s.Database,
	}, defaultPort)
	if err != nil {
		return nil, err
	}

	mode := domain.WriteMode(s.IfExists)
	if mode == "" {
		mode = domain.WriteModeFail
	}
	switch mode {
	case domain.WriteModeFail, domain.WriteModeReplace, domain.WriteModeAppend:
	default:
		return nil, zerr.With(zerr.New("if_exists must be fail, replace or append"),
			"if_exists", s.IfExists)
	}

	return &domain.Store{
		Driver:     domain.StoreDriver(s.DriverName),
		Connection: conn,
		Encoding:   s.Encoding,
		Table:      s.Table,
		IfExists:   mode,
	}, nil
}

func (l *Loader) ensureDirectories(dirs domain.Directories) error {
	for _, dir := range []string{dirs.QueryDir, dirs.CacheDir, dirs.DatadumpDir} {
		if _, err := os.Stat(dir); err == nil {
			l.logger.Debug(fmt.Sprintf("directory %s already exists", dir))
			continue
		}
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to create directory"), "dir", dir)
		}
		l.logger.Debug(fmt.Sprintf("directory %s created", dir))
	}
	return nil
}

func missingField(name string) error {
	return zerr.With(zerr.New("missing required config field"), "field", name)
}
