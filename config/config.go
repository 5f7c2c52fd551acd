package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig
	DB     DBConfig
	Redis  RedisConfig
	JWT    JWTConfig
	Clinic ClinicConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// ClinicConfig holds the business constants of the scheduling rules.
//
// The daily-limit window is configured separately from the operating window:
// the operating window governs which times are bookable, the daily-limit
// window defines what counts as "the same clinic day" for a patient.
type ClinicConfig struct {
	OpenHour              int
	CloseHour             int
	ClosedWeekday         time.Weekday
	MinSchedulingNotice   time.Duration
	MinCancellationNotice time.Duration
	DailyLimitStartHour   int
	DailyLimitEndHour     int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	viper.SetDefault("CLINIC_OPEN_HOUR", 7)
	viper.SetDefault("CLINIC_CLOSE_HOUR", 18)
	viper.SetDefault("CLINIC_CLOSED_WEEKDAY", int(time.Sunday))
	viper.SetDefault("CLINIC_MIN_SCHEDULING_NOTICE", "30m")
	viper.SetDefault("CLINIC_MIN_CANCELLATION_NOTICE", "24h")
	viper.SetDefault("CLINIC_DAILY_LIMIT_START_HOUR", 7)
	viper.SetDefault("CLINIC_DAILY_LIMIT_END_HOUR", 18)

	schedulingNotice, err := time.ParseDuration(viper.GetString("CLINIC_MIN_SCHEDULING_NOTICE"))
	if err != nil {
		schedulingNotice = 30 * time.Minute
	}

	cancellationNotice, err := time.ParseDuration(viper.GetString("CLINIC_MIN_CANCELLATION_NOTICE"))
	if err != nil {
		cancellationNotice = 24 * time.Hour
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		Clinic: ClinicConfig{
			OpenHour:              viper.GetInt("CLINIC_OPEN_HOUR"),
			CloseHour:             viper.GetInt("CLINIC_CLOSE_HOUR"),
			ClosedWeekday:         time.Weekday(viper.GetInt("CLINIC_CLOSED_WEEKDAY")),
			MinSchedulingNotice:   schedulingNotice,
			MinCancellationNotice: cancellationNotice,
			DailyLimitStartHour:   viper.GetInt("CLINIC_DAILY_LIMIT_START_HOUR"),
			DailyLimitEndHour:     viper.GetInt("CLINIC_DAILY_LIMIT_END_HOUR"),
		},
	}

	return config, nil
}
