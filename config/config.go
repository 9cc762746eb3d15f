package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration holds every static setting the application needs. It is
// constructed once in cmd/server and passed into component constructors;
// nothing else reads the environment.
type Configuration struct {
	Address               string `env:"ADDRESS" envDefault:":8080"`                // Listen address
	JwtSecret             string `env:"JWT_SECRET,required"`                       // HS256 signing secret
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`           // MongoDB connection string
	MongoDB_DBName        string `env:"MONGODB_DBNAME,required"`                   // Database name
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Allowed origins (comma separated, * = all)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Allow credentials
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`           // Max requests per window (0 = disabled)
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`         // Window length (seconds)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`      // Toggle rate limiting

	// External field-tracking source (Unolo)
	UnoloBaseURL  string `env:"UNOLO_BASE_URL" envDefault:"https://api-lb-ext.unolo.com"` // API base URL
	UnoloAPIID    string `env:"UNOLO_API_ID,required"`                                    // "id" auth header
	UnoloAPIToken string `env:"UNOLO_API_TOKEN,required"`                                 // "token" auth header

	// Webhook ingestion
	WebhookSecret          string `env:"WEBHOOK_SECRET"`                             // Shared secret for X-Webhook-Secret (empty = gate disabled)
	WebhookAllFailedStatus int    `env:"WEBHOOK_ALL_FAILED_STATUS" envDefault:"200"` // Status when every item in a batch fails

	// Accounts synthesized during employee sync
	DefaultUserDomain   string `env:"DEFAULT_USER_DOMAIN" envDefault:"@brinda.com"` // Email suffix for synthesized logins
	DefaultUserPassword string `env:"DEFAULT_USER_PASSWORD" envDefault:"admin123"`  // Initial password for synthesized logins
	DefaultAdminEmail   string `env:"DEFAULT_ADMIN_EMAIL"`                          // Bootstrap admin account (optional)
	DefaultAdminPass    string `env:"DEFAULT_ADMIN_PASSWORD"`                       // Bootstrap admin password

	// Sync failure alerts (optional, disabled when SMTP_HOST is empty)
	SMTPHost        string `env:"SMTP_HOST"`
	SMTPPort        int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername    string `env:"SMTP_USERNAME"`
	SMTPPassword    string `env:"SMTP_PASSWORD"`
	SMTPFrom        string `env:"SMTP_FROM"`
	AlertRecipients string `env:"ALERT_RECIPIENTS"` // Comma separated

	// TLS/HTTPS
	EnableTLS   bool   `env:"ENABLE_TLS" envDefault:"false"`
	TLSCertFile string `env:"TLS_CERT_FILE"`
	TLSKeyFile  string `env:"TLS_KEY_FILE"`
}

// ListenAddress returns the TCP address to bind. ADDRESS may be a full
// host:port or a bare port; a bare port binds all interfaces.
func (c *Configuration) ListenAddress() string {
	if strings.Contains(c.Address, ":") {
		return c.Address
	}
	return ":" + c.Address
}

// getEnvPath returns the env file path for the current GO_ENV.
func getEnvPath() string {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		fmt.Printf("could not determine working directory: %v\n", err)
		return ""
	}

	// Walk upwards until a config/env directory is found
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", env))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig loads the env file for the current environment and parses it
// into a Configuration. Returns nil when parsing fails; fmt is used for
// output because the logger may not be initialized yet.
func NewConfig() *Configuration {
	envPath := getEnvPath()
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Printf("could not load env file at %s: %v\n", envPath, err)
		}
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		fmt.Printf("error parsing configuration: %+v\n", err)
		return nil
	}

	return &cfg
}
