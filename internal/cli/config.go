package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoSession is returned when a command needs a session and none is selected
var ErrNoSession = errors.New("no current session: run 'frogfen session new' or pass --session")

// Config holds CLI configuration
type Config struct {
	ServerURL   string
	Session     string
	SessionFile string
	Output      string
	Verbose     bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL:   getEnvOrDefault("FROGFEN_SERVER", "http://localhost:8080"),
		Session:     os.Getenv("FROGFEN_SESSION"),
		SessionFile: getEnvOrDefault("FROGFEN_SESSION_FILE", defaultSessionFile()),
		Output:      "text",
		Verbose:     false,
	}
}

// LoadSession loads the current session ID from file if not already set
func (c *Config) LoadSession() error {
	if c.Session != "" {
		return nil
	}

	data, err := os.ReadFile(c.SessionFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // No session file is fine
		}
		return err
	}

	c.Session = strings.TrimSpace(string(data))
	return nil
}

// SaveSession makes id the current session and saves it to the session file
func (c *Config) SaveSession(id string) error {
	c.Session = id

	dir := filepath.Dir(c.SessionFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	return os.WriteFile(c.SessionFile, []byte(id), 0600)
}

// ClearSession forgets the current session
func (c *Config) ClearSession() error {
	c.Session = ""
	if err := os.Remove(c.SessionFile); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// RequireSession returns the current session ID or ErrNoSession
func (c *Config) RequireSession() (string, error) {
	if c.Session == "" {
		return "", ErrNoSession
	}
	return c.Session, nil
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".frogfen/session"
	}
	return filepath.Join(home, ".frogfen", "session")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
