package config

// Supported gorm engines.
const (
	GormEngineMySQL    = "mysql"
	GormEnginePostgres = "postgres"
	GormEngineSQLite   = "sqlite"
)

// DB holds the database configuration settings.
type DB struct {
	Extras     string // driver specific DSN suffix (mysql query string, postgres key=value pairs)
	Host       string
	Port       int
	User       string
	Password   string
	Name       string
	GormEngine string // mysql, postgres or sqlite
	Path       string // sqlite database file, only used with GormEngine sqlite
	LogLevel   string // gorm log level: silent, error, warn, info
}
