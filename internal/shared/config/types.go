package config

import "fmt"

type ServerConfig struct {
	Host           string   `mapstructure:"host" yaml:"host"`
	Port           int      `mapstructure:"port" yaml:"port"`
	Mode           string   `mapstructure:"mode" yaml:"mode"`
	BaseURL        string   `mapstructure:"base_url" yaml:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins" yaml:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver" yaml:"driver"`
	Host            string `mapstructure:"host" yaml:"host"`
	Port            int    `mapstructure:"port" yaml:"port"`
	Username        string `mapstructure:"username" yaml:"username"`
	Password        string `mapstructure:"password" yaml:"password"`
	Database        string `mapstructure:"database" yaml:"database"`
	Path            string `mapstructure:"path" yaml:"path"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns" yaml:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns" yaml:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime" yaml:"conn_max_lifetime"`
}

// GetDSN returns the MySQL DSN. Times are parsed in UTC and converted to the
// business timezone by the mappers.
func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

func (d *DatabaseConfig) IsSQLite() bool {
	return d.Driver == "sqlite"
}

type LoggerConfig struct {
	Level      string `mapstructure:"level" yaml:"level"`
	Format     string `mapstructure:"format" yaml:"format"`
	OutputPath string `mapstructure:"output_path" yaml:"output_path"`
}

type PasswordConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost" yaml:"bcrypt_cost"`
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret" yaml:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes" yaml:"access_exp_minutes"`
}

type AuthConfig struct {
	Password PasswordConfig `mapstructure:"password" yaml:"password"`
	JWT      JWTConfig      `mapstructure:"jwt" yaml:"jwt"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host" yaml:"host"`
	Port     int    `mapstructure:"port" yaml:"port"`
	Password string `mapstructure:"password" yaml:"password"`
	DB       int    `mapstructure:"db" yaml:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// Enabled reports whether a Redis host is configured.
func (r *RedisConfig) Enabled() bool {
	return r.Host != ""
}

type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host" yaml:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port" yaml:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user" yaml:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password" yaml:"smtp_password"`
	FromAddress  string `mapstructure:"from_address" yaml:"from_address"`
	FromName     string `mapstructure:"from_name" yaml:"from_name"`
}

func (e *EmailConfig) Enabled() bool {
	return e.SMTPHost != "" && e.FromAddress != ""
}

// WhatsAppTemplates holds the approved template names used for outbound
// notifications outside the 24h customer service window.
type WhatsAppTemplates struct {
	StatusUpdate   string `mapstructure:"status_update" yaml:"status_update"`
	TicketUpdate   string `mapstructure:"ticket_update" yaml:"ticket_update"`
	TicketAssigned string `mapstructure:"ticket_assigned" yaml:"ticket_assigned"`
	JobCardLink    string `mapstructure:"job_card_link" yaml:"job_card_link"`
	Language       string `mapstructure:"language" yaml:"language"`
}

type WhatsAppConfig struct {
	APIBaseURL     string            `mapstructure:"api_base_url" yaml:"api_base_url"`
	PhoneNumberID  string            `mapstructure:"phone_number_id" yaml:"phone_number_id"`
	AccessToken    string            `mapstructure:"access_token" yaml:"access_token"`
	VerifyToken    string            `mapstructure:"verify_token" yaml:"verify_token"`
	AppSecret      string            `mapstructure:"app_secret" yaml:"app_secret"`
	TimeoutSeconds int               `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
	Templates      WhatsAppTemplates `mapstructure:"templates" yaml:"templates"`
}

type BusinessConfig struct {
	Timezone               string `mapstructure:"timezone" yaml:"timezone"`
	PublicBaseURL          string `mapstructure:"public_base_url" yaml:"public_base_url"`
	ReassignLimit          int    `mapstructure:"reassign_limit" yaml:"reassign_limit"`
	DuplicateWindowSeconds int    `mapstructure:"duplicate_window_seconds" yaml:"duplicate_window_seconds"`
	CategoryTimeoutSeconds int    `mapstructure:"category_timeout_seconds" yaml:"category_timeout_seconds"`
	PINAttemptsPerHour     int    `mapstructure:"pin_attempts_per_hour" yaml:"pin_attempts_per_hour"`
}
