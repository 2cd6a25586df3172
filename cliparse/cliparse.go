package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Supported database backends
const (
	DatabasePostgres = "postgres"
	DatabaseSQLite   = "sqlite"
	DatabaseMongo    = "mongo"
)

// Default listen ports
const (
	CandidatesPort = 3006
	VotersPort     = 3002
)

type Config struct {
	Port           int
	DatabaseURL    string
	DatabaseType   string
	DatabaseName   string
	SeedCandidates []string
}

// ParseFlags parses the flags of the named service. defaultPort is used when
// neither -p nor PORT is set.
func ParseFlags(service string, defaultPort int, args []string) (Config, error) {
	var cfg Config
	var envFile, seed string

	fs := flag.NewFlagSet(service, flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (postgres, sqlite or mongo)")
	fs.StringVar(&cfg.DatabaseName, "db-name", "", "Database name (mongo only)")
	fs.StringVar(&seed, "seed", "", "Comma separated candidate names to seed")
	fs.StringVar(&envFile, "env", ".env", "Path to a .env file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := loadEnvFile(envFile); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = defaultPort
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("MONGODB_URI")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = inferDatabaseType(cfg.DatabaseURL)
	}
	switch cfg.DatabaseType {
	case DatabasePostgres, DatabaseSQLite, DatabaseMongo:
	default:
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.DatabaseName == "" {
		cfg.DatabaseName = os.Getenv("DATABASE_NAME")
		if cfg.DatabaseName == "" {
			cfg.DatabaseName = "voting"
		}
	}

	if seed == "" {
		seed = os.Getenv("SEED_CANDIDATES")
	}
	cfg.SeedCandidates = splitNames(seed)

	return cfg, nil
}

// loadEnvFile loads variables from path without overriding the environment.
// A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func inferDatabaseType(url string) string {
	switch {
	case strings.HasPrefix(url, "mongodb://"), strings.HasPrefix(url, "mongodb+srv://"):
		return DatabaseMongo
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return DatabasePostgres
	default:
		return DatabaseSQLite
	}
}

func splitNames(s string) []string {
	var names []string
	for _, name := range strings.Split(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}
