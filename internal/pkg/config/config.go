package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultKakaoBaseURL    = "https://dapi.kakao.com"
	defaultGeocoderTimeout = 4 * time.Second
)

type (
	Tasks struct {
		OrderStatusMetricsInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter refill per second
		RateLimiterBurst int           // middleware rate limiter bucket size
		PprofEnabled     bool
		PprofPort        string
		GRPCHealthPort   string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	Geocoder struct {
		BaseURL string
		APIKey  string
		Timeout time.Duration
	}

	Auth struct {
		JWTSecret   string
		JWTIssuer   string
		JWTAudience string
	}

	Admin struct {
		Emails       []string
		EmailDomains []string
		Names        []string
		UserIDs      []string
	}

	Kafka struct {
		Enabled bool
		Brokers string
		Topic   string
		Sarama  Sarama
	}

	Sarama struct {
		Version string
	}

	Config struct {
		Tasks    Tasks
		Server   HTTPServer
		Database Database
		Geocoder Geocoder
		Auth     Auth
		Admin    Admin
		Kafka    Kafka
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	metricsInterval, err := osGetEnvDuration("BACKGROUND_ORDER_STATUS_METRICS_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	geocoderTimeout, err := osGetEnvDuration("GEOCODER_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if geocoderTimeout == 0 {
		geocoderTimeout = defaultGeocoderTimeout
	}

	kafkaEnabled, err := osGetBool("KAFKA_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	kakaoBaseURL := os.Getenv("KAKAO_LOCAL_BASE_URL")
	if kakaoBaseURL == "" {
		kakaoBaseURL = defaultKakaoBaseURL
	}

	return &Config{
		Tasks: Tasks{
			OrderStatusMetricsInterval: metricsInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
			GRPCHealthPort:   os.Getenv("GRPC_HEALTH_PORT"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		Geocoder: Geocoder{
			BaseURL: strings.TrimRight(kakaoBaseURL, "/"),
			APIKey:  os.Getenv("KAKAO_REST_API_KEY"),
			Timeout: geocoderTimeout,
		},
		Auth: Auth{
			JWTSecret:   os.Getenv("AUTH_JWT_SECRET"),
			JWTIssuer:   os.Getenv("AUTH_JWT_ISSUER"),
			JWTAudience: os.Getenv("AUTH_JWT_AUDIENCE"),
		},
		Admin: Admin{
			Emails:       osGetList("ADMIN_EMAILS"),
			EmailDomains: osGetList("ADMIN_EMAIL_DOMAINS"),
			Names:        osGetList("ADMIN_NAMES"),
			UserIDs:      osGetList("ADMIN_USER_IDS"),
		},
		Kafka: Kafka{
			Enabled: kafkaEnabled,
			Brokers: os.Getenv("KAFKA_BROKERS"),
			Topic:   os.Getenv("KAFKA_TOPIC"),
			Sarama: Sarama{
				Version: os.Getenv("KAFKA_SARAMA_VERSION"),
			},
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}
	if cfg.Server.GRPCHealthPort == "" {
		return errors.New("GRPC_HEALTH_PORT is required")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Geocoder.APIKey == "" {
		return errors.New("KAKAO_REST_API_KEY is required")
	}

	if cfg.Auth.JWTSecret == "" {
		return errors.New("AUTH_JWT_SECRET is required")
	}

	if cfg.Tasks.OrderStatusMetricsInterval == time.Duration(0) {
		return errors.New("BACKGROUND_ORDER_STATUS_METRICS_INTERVAL is required")
	}

	if cfg.Kafka.Enabled {
		if cfg.Kafka.Brokers == "" {
			return errors.New("KAFKA_BROKERS is required when KAFKA_ENABLED=true")
		}
		if cfg.Kafka.Topic == "" {
			return errors.New("KAFKA_TOPIC is required when KAFKA_ENABLED=true")
		}
		if cfg.Kafka.Sarama.Version == "" {
			return errors.New("KAFKA_SARAMA_VERSION is required when KAFKA_ENABLED=true")
		}
	}

	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

// osGetList читает список через запятую, пустые элементы отбрасываются.
func osGetList(s string) []string {
	val := os.Getenv(s)
	if val == "" {
		return nil
	}

	var res []string
	for _, item := range strings.Split(val, ",") {
		if item = strings.TrimSpace(item); item != "" {
			res = append(res, item)
		}
	}
	return res
}
