package config

import "fmt"

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// TelegramConfig holds the bot credentials and the reply allow-list.
type TelegramConfig struct {
	BotToken       string  `mapstructure:"bot_token"`
	WebhookSecret  string  `mapstructure:"webhook_secret"`
	AllowedChatIDs []int64 `mapstructure:"allowed_chat_ids"`
	LeaderChatID   int64   `mapstructure:"leader_chat_id"`
	LeaderName     string  `mapstructure:"leader_name"`
}

// IsAllowed reports whether chatID may answer alert prompts.
// The leader chat id is always allowed.
func (t *TelegramConfig) IsAllowed(chatID int64) bool {
	if chatID == t.LeaderChatID {
		return true
	}
	for _, id := range t.AllowedChatIDs {
		if id == chatID {
			return true
		}
	}
	return false
}

// AlertConfig holds lifecycle engine settings. Timezone is the civil
// timezone used for every deadline comparison and for display.
type AlertConfig struct {
	Timezone string `mapstructure:"timezone"`
}

type AutoAlertConfig struct {
	Enabled         bool `mapstructure:"enabled"`
	IntervalMinutes int  `mapstructure:"interval_minutes"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}
