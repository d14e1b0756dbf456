package domain

// Directories holds the working directories of a job. They are created at
// startup when missing.
type Directories struct {
	QueryDir    string
	CacheDir    string
	DatadumpDir string
}

// Connection holds the parameters needed to reach a SQL database.
type Connection struct {
	Host     string
	Port     int
	Username string
	Password string
	Database string
}

// StoreDriver identifies the database/sql driver used for the export store.
type StoreDriver string

const (
	// DriverMySQL selects the go-sql-driver/mysql driver.
	DriverMySQL StoreDriver = "mysql"
	// DriverPostgres selects the lib/pq driver.
	DriverPostgres StoreDriver = "postgres"
)

// WriteMode controls what happens when the export table already exists.
type WriteMode string

const (
	// WriteModeFail aborts the export when the table exists.
	WriteModeFail WriteMode = "fail"
	// WriteModeReplace drops and recreates the table.
	WriteModeReplace WriteMode = "replace"
	// WriteModeAppend inserts into the existing table, creating it when absent.
	WriteModeAppend WriteMode = "append"
)

// Store describes the optional export destination.
type Store struct {
	Driver     StoreDriver
	Connection Connection
	Encoding   string
	Table      string
	IfExists   WriteMode
}

// Job is the configuration record for a single run. It is created once at
// startup and read-only afterwards.
type Job struct {
	Directories  Directories
	Load         Connection
	QueryName    string
	IndexColumns int
	UseCache     bool
	DumpCSV      bool
	Store        *Store
}

// HasStore reports whether an export destination is configured.
func (j *Job) HasStore() bool {
	return j.Store != nil && j.Store.Table != ""
}
