package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"travel-vlogs/pkg/models"
)

// Config holds all configuration for the application
type Config struct {
	Port            string
	DatasetPath     string
	BucketName      string
	DatasetPrefix   string
	ViewsDir        string
	LogLevel        string
	LogFormat       string
	NotificationTTL time.Duration
	ChatDelay       time.Duration
	AllowOrigins    []string
	CurrentUser     *models.Author
}

// Keys understood by Load, with the environment variable each one reads
const (
	KeyPort            = "port"
	KeyDataset         = "dataset"
	KeyBucket          = "bucket"
	KeyDatasetPrefix   = "dataset-prefix"
	KeyViewsDir        = "views-dir"
	KeyLogLevel        = "log-level"
	KeyLogFormat       = "log-format"
	KeyNotificationTTL = "notification-ttl"
	KeyChatDelay       = "chat-delay"
	KeyAllowOrigins    = "allow-origins"
	KeyUserName        = "user.name"
	KeyUserLocation    = "user.location"
	KeyUserAvatar      = "user.avatar"
)

var envNames = map[string]string{
	KeyPort:            "PORT",
	KeyDataset:         "DATASET_PATH",
	KeyBucket:          "BUCKET_NAME",
	KeyDatasetPrefix:   "DATASET_PREFIX",
	KeyViewsDir:        "VIEWS_DIR",
	KeyLogLevel:        "LOG_LEVEL",
	KeyLogFormat:       "LOG_FORMAT",
	KeyNotificationTTL: "NOTIFICATION_TTL",
	KeyChatDelay:       "CHAT_DELAY",
	KeyAllowOrigins:    "ALLOW_ORIGINS",
	KeyUserName:        "USER_NAME",
	KeyUserLocation:    "USER_LOCATION",
	KeyUserAvatar:      "USER_AVATAR",
}

// ErrPortInvalid is returned when PORT is not a usable TCP port
var ErrPortInvalid = errors.New("PORT must be a number between 1 and 65535")

// ErrNotificationTTLInvalid is returned when NOTIFICATION_TTL is not positive
var ErrNotificationTTLInvalid = errors.New("NOTIFICATION_TTL must be a positive duration")

// New returns a viper instance with defaults, environment bindings and an
// optional config.yaml from the working directory
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyPort, "8080")
	v.SetDefault(KeyDatasetPrefix, "vlogs/")
	v.SetDefault(KeyViewsDir, "./views")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyNotificationTTL, "3s")
	v.SetDefault(KeyChatDelay, "1s")

	for key, env := range envNames {
		_ = v.BindEnv(key, env)
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	return v
}

// Load reads configuration from v. A missing config file is not an error.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	port := strings.TrimSpace(v.GetString(KeyPort))
	if n, err := strconv.Atoi(port); err != nil || n < 1 || n > 65535 {
		return nil, ErrPortInvalid
	}

	ttl := v.GetDuration(KeyNotificationTTL)
	if ttl <= 0 {
		return nil, ErrNotificationTTLInvalid
	}

	cfg := &Config{
		Port:            port,
		DatasetPath:     v.GetString(KeyDataset),
		BucketName:      v.GetString(KeyBucket),
		DatasetPrefix:   v.GetString(KeyDatasetPrefix),
		ViewsDir:        v.GetString(KeyViewsDir),
		LogLevel:        v.GetString(KeyLogLevel),
		LogFormat:       v.GetString(KeyLogFormat),
		NotificationTTL: ttl,
		ChatDelay:       v.GetDuration(KeyChatDelay),
		AllowOrigins:    splitList(v.GetStringSlice(KeyAllowOrigins)),
	}

	if name := v.GetString(KeyUserName); name != "" {
		cfg.CurrentUser = &models.Author{
			Name:      name,
			Location:  v.GetString(KeyUserLocation),
			AvatarURL: v.GetString(KeyUserAvatar),
			Kind:      models.AuthorTraveler,
		}
	}

	return cfg, nil
}

// splitList accepts both repeated values and a single comma separated string
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// ServerAddress returns the server address with port
func (c *Config) ServerAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

// DatasetSource describes where the seed dataset will be read from
func (c *Config) DatasetSource() string {
	switch {
	case c.DatasetPath != "":
		return "file " + c.DatasetPath
	case c.BucketName != "":
		return fmt.Sprintf("gs://%s/%s", c.BucketName, c.DatasetPrefix)
	}
	return "embedded dataset"
}

// PrintServerStartMessage prints a message when the server starts
func (c *Config) PrintServerStartMessage() {
	fmt.Printf("Starting server at port %s\n", c.Port)
	fmt.Printf("Gallery URL: http://localhost:%s/\n", c.Port)
	fmt.Printf("API URL: http://localhost:%s/api/vlogs\n", c.Port)
	fmt.Printf("Dataset: %s\n", c.DatasetSource())
}
