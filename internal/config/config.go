package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTPAddr string

	DBDriver string // memory|sqlite|postgres
	DBDSN    string

	// QuestionFile is the xlsx question bank loaded once at startup.
	QuestionFile string

	// CredentialsFile optionally overrides the built-in credential sets.
	CredentialsFile string

	CORSOrigins []string
}

func FromEnv() Config {
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return Config{
		HTTPAddr:        addr,
		DBDriver:        envOr("DB_DRIVER", "memory"),
		DBDSN:           envOr("DB_DSN", ""),
		QuestionFile:    envOr("QUESTION_FILE", "./data/questions_en.xlsx"),
		CredentialsFile: os.Getenv("CREDENTIALS_FILE"),
		CORSOrigins:     csvOr("CORS_ORIGINS", "http://localhost:3000"),
	}
}

// Credentials are the two static identity sets. The user set must contain
// every admin identity; LoadCredentials enforces that by folding admins in.
type Credentials struct {
	Users  map[string]string `yaml:"users"`
	Admins map[string]string `yaml:"admins"`
}

// DefaultCredentials mirrors the fixture accounts the service ships with.
func DefaultCredentials() Credentials {
	return Credentials{
		Users: map[string]string{
			"admin":      "4dm1N",
			"alice":      "wonderland",
			"bob":        "builder",
			"clementine": "mandarine",
		},
		Admins: map[string]string{
			"admin": "4dm1N",
		},
	}
}

// LoadCredentials reads a YAML credentials file, or falls back to the
// defaults when path is empty. Admin identities are merged into the user
// set so every admin can use the user surfaces.
func LoadCredentials(path string) (Credentials, error) {
	creds := DefaultCredentials()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return Credentials{}, err
		}
		defer f.Close()
		creds = Credentials{}
		if err := yaml.NewDecoder(f).Decode(&creds); err != nil {
			return Credentials{}, err
		}
	}
	if creds.Users == nil {
		creds.Users = map[string]string{}
	}
	for name, secret := range creds.Admins {
		if _, ok := creds.Users[name]; !ok {
			creds.Users[name] = secret
		}
	}
	return creds, nil
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
