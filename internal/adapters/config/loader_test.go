package config_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dbfetch/internal/adapters/config"
	"go.trai.ch/dbfetch/internal/adapters/logger"
	"go.trai.ch/dbfetch/internal/core/domain"
)

func newLoader() *config.Loader {
	log := logger.New()
	log.SetOutput(io.Discard)
	return config.NewLoader(log)
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "project_config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Success(t *testing.T) {
	tmpDir := t.TempDir()
	content := `
directories:
  query_dir: ` + filepath.Join(tmpDir, "queries") + `
  cache_dir: ` + filepath.Join(tmpDir, "cache") + `
  datadump_dir: ` + filepath.Join(tmpDir, "datadump") + `
load:
  host: db.example.edu
  port: 3307
  username: student
  password: secret
  database: lectures
load_query: attendance
index_columns: 2
use_cache: true
store:
  drivername: postgres
  host: warehouse.example.edu
  username: student
  password: secret
  database: results
  table: attendance_adjusted
  if_exists: replace
`
	path := writeConfig(t, tmpDir, content)

	job, err := newLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "attendance", job.QueryName)
	assert.Equal(t, 2, job.IndexColumns)
	assert.True(t, job.UseCache)
	assert.Equal(t, "db.example.edu", job.Load.Host)
	assert.Equal(t, 3307, job.Load.Port)

	require.True(t, job.HasStore())
	assert.Equal(t, domain.DriverPostgres, job.Store.Driver)
	assert.Equal(t, domain.WriteModeReplace, job.Store.IfExists)
	// store port defaults by driver
	assert.Equal(t, 5432, job.Store.Connection.Port)

	// Directories are created as a side effect of loading.
	for _, dir := range []string{"queries", "cache", "datadump"} {
		info, err := os.Stat(filepath.Join(tmpDir, dir))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestLoad_DirectoryDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	content := `
load:
  host: localhost
  username: u
  database: d
load_query: q
`
	path := writeConfig(t, tmpDir, content)

	// Run from the temp dir so default relative directories land there.
	originalWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	defer func() { _ = os.Chdir(originalWd) }()

	job, err := newLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "queries", job.Directories.QueryDir)
	assert.Equal(t, "cache", job.Directories.CacheDir)
	assert.Equal(t, "datadump", job.Directories.DatadumpDir)
	assert.Equal(t, 3306, job.Load.Port)
	assert.False(t, job.HasStore())
}

func TestLoad_MissingLoadQuery(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeConfig(t, tmpDir, `
load:
  host: localhost
  username: u
  database: d
`)

	_, err := newLoader().Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required config field")
}

func TestLoad_MissingLoadHost(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeConfig(t, tmpDir, `
load:
  username: u
  database: d
load_query: q
`)

	_, err := newLoader().Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required config field")
}

func TestLoad_InvalidStoreDriver(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeConfig(t, tmpDir, `
load:
  host: localhost
  username: u
  database: d
load_query: q
store:
  drivername: oracle
  host: h
  username: u
  database: d
`)

	_, err := newLoader().Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "drivername must be mysql or postgres")
}

func TestLoad_InvalidIfExists(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeConfig(t, tmpDir, `
load:
  host: localhost
  username: u
  database: d
load_query: q
store:
  drivername: mysql
  host: h
  username: u
  database: d
  table: out
  if_exists: upsert
`)

	_, err := newLoader().Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "if_exists must be fail, replace or append")
}

// A store section without a table would silently disable the export, so it
// is rejected at load time.
func TestLoad_MissingStoreTable(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeConfig(t, tmpDir, `
load:
  host: localhost
  username: u
  database: d
load_query: q
store:
  drivername: mysql
  host: h
  username: u
  database: d
`)

	_, err := newLoader().Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required config field")
}

func TestLoad_IfExistsDefaultsToFail(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeConfig(t, tmpDir, `
directories:
  query_dir: `+filepath.Join(tmpDir, "q")+`
  cache_dir: `+filepath.Join(tmpDir, "c")+`
  datadump_dir: `+filepath.Join(tmpDir, "dd")+`
load:
  host: localhost
  username: u
  database: d
load_query: q
store:
  drivername: mysql
  host: h
  username: u
  database: d
  table: out
`)

	job, err := newLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, domain.WriteModeFail, job.Store.IfExists)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := newLoader().Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoad_MalformedYAML(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeConfig(t, tmpDir, "load: [not a mapping")

	_, err := newLoader().Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoad_NegativeIndexColumns(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeConfig(t, tmpDir, `
load:
  host: localhost
  username: u
  database: d
load_query: q
index_columns: -1
`)

	_, err := newLoader().Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "index_columns must not be negative")
}
