package config

// ProjectFile represents the structure of the project_config.yaml file.
type ProjectFile struct {
	Directories  DirectoriesDTO `yaml:"directories"`
	Load         ConnectionDTO  `yaml:"load"`
	LoadQuery    string         `yaml:"load_query"`
	IndexColumns int            `yaml:"index_columns"`
	UseCache     bool           `yaml:"use_cache"`
	DumpCSV      bool           `yaml:"dump_csv"`
	Store        *StoreDTO      `yaml:"store"`
}

// DirectoriesDTO holds the working directories of the job.
type DirectoriesDTO struct {
	QueryDir    string `yaml:"query_dir"`
	CacheDir    string `yaml:"cache_dir"`
	DatadumpDir string `yaml:"datadump_dir"`
}

// ConnectionDTO holds connection parameters for the load database.
type ConnectionDTO struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

// StoreDTO holds the optional export destination.
type StoreDTO struct {
	DriverName string `yaml:"drivername"`
	Host       string `yaml:"host"`
	Port       int    `yaml:"port"`
	Username   string `yaml:"username"`
	Password   string `yaml:"password"`
	Database   string `yaml:"database"`
	Encoding   string `yaml:"encoding"`
	Table      string `yaml:"table"`
	IfExists   string `yaml:"if_exists"`
}
