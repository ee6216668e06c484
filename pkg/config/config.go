package config

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	JWT         JWTConfig `mapstructure:"jwt"`
	Log         LogConfig
	Redis       RedisConfig
	CORS        CORSConfig
	Preferences PreferencesConfig
	Domain      DomainConfig
	Document    DocumentConfig
	Report      ReportConfig
}

type ServerConfig struct {
	Port string
	Mode string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type JWTConfig struct {
	SecretKey     string `mapstructure:"secret_key"`     // JWT密钥
	TokenDuration string `mapstructure:"token_duration"` // 会话令牌有效期，如 "24h"
}

type LogConfig struct {
	Level      string
	FilePath   string
	MaxSize    int    // MB
	MaxBackups int    // 保留的备份文件数
	MaxAge     int    // 保留天数
	Compress   bool   // 是否压缩
	Format     string // json 或 text
}

type RedisConfig struct {
	Host     string // Redis主机地址
	Port     int    // Redis端口
	Password string // Redis密码
	DB       int    // Redis数据库编号
	Prefix   string // 偏好键前缀
}

type CORSConfig struct {
	AllowOrigins     []string // 允许的源
	AllowMethods     []string // 允许的HTTP方法
	AllowHeaders     []string // 允许的请求头
	ExposeHeaders    []string // 暴露的响应头
	AllowCredentials bool     // 是否允许携带凭证
	MaxAge           int      // 预检请求缓存时间（小时）
}

// PreferencesConfig 偏好设置的持久化配置
type PreferencesConfig struct {
	Backend        string // sqlite / postgres / redis / memory
	SQLitePath     string // 本地设备存储文件
	PersistProfile bool   // 是否持久化用户资料（默认关闭，与原行为一致）
}

// DomainConfig 领域数据相关配置
type DomainConfig struct {
	NameMode      string        // snapshot: 保留创建时的租客姓名副本; resolve: 读取时按ID解析
	CurrentMonth  string        // 电费账单"本月"标签
	NoticeDismiss time.Duration // 成功提示自动消失时间
}

// DocumentConfig 身份证明文件存储配置
type DocumentConfig struct {
	Backend         string // local / gcs
	Dir             string
	Bucket          string
	CredentialsJSON string // GCS服务账号JSON，为空时使用默认凭证
	MaxSizeBytes    int64
}

// ReportConfig 报表快照配置
type ReportConfig struct {
	SnapshotCron string // 为空时不启动快照任务
}

// 存储后端常量
const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendMemory   = "memory"
)

// 全局配置实例和同步锁
var (
	globalConfig *Config
	once         sync.Once
)

func GetConfig() *Config {
	once.Do(func() {
		var err error
		globalConfig, err = LoadConfig()
		if err != nil {
			panic("Failed to load config: " + err.Error())
		}
	})
	return globalConfig
}

// 获取环境变量，如果不存在则使用默认值
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// 获取环境变量转换为int
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// 获取环境变量转换为bool
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return strings.ToLower(value) == "true"
	}
	return defaultValue
}

// 获取环境变量转换为时长，解析失败使用默认值
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// 获取环境变量转换为字符串数组（逗号分隔）
func getEnvAsStringArray(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		result := make([]string, 0, len(parts))
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed != "" {
				result = append(result, trimmed)
			}
		}
		return result
	}
	return defaultValue
}

func LoadConfig() (*Config, error) {
	// .env 文件可选
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Mode: getEnv("SERVER_MODE", "debug"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "rentdesk"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			SecretKey:     getEnv("JWT_SECRET_KEY", "default-secret-change-me"),
			TokenDuration: getEnv("JWT_TOKEN_DURATION", "24h"),
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			FilePath:   getEnv("LOG_FILE_PATH", "logs/app.log"),
			MaxSize:    getEnvAsInt("LOG_MAX_SIZE", 100),
			MaxBackups: getEnvAsInt("LOG_MAX_BACKUPS", 7),
			MaxAge:     getEnvAsInt("LOG_MAX_AGE", 30),
			Compress:   getEnvAsBool("LOG_COMPRESS", true),
			Format:     getEnv("LOG_FORMAT", "json"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvAsInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			Prefix:   getEnv("REDIS_PREFIX", "rentdesk:prefs"),
		},
		CORS: CORSConfig{
			AllowOrigins:     getEnvAsStringArray("CORS_ALLOW_ORIGINS", []string{"*"}),
			AllowMethods:     getEnvAsStringArray("CORS_ALLOW_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"}),
			AllowHeaders:     getEnvAsStringArray("CORS_ALLOW_HEADERS", []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Requested-With"}),
			ExposeHeaders:    getEnvAsStringArray("CORS_EXPOSE_HEADERS", []string{"Content-Length", "Content-Type", "Content-Disposition"}),
			AllowCredentials: getEnvAsBool("CORS_ALLOW_CREDENTIALS", false),
			MaxAge:           getEnvAsInt("CORS_MAX_AGE", 12),
		},
		Preferences: PreferencesConfig{
			Backend:        strings.ToLower(getEnv("PREFS_BACKEND", BackendSQLite)),
			SQLitePath:     getEnv("PREFS_SQLITE_PATH", "data/preferences.db"),
			PersistProfile: getEnvAsBool("PREFS_PERSIST_PROFILE", false),
		},
		Domain: DomainConfig{
			NameMode:      strings.ToLower(getEnv("DOMAIN_NAME_MODE", "snapshot")),
			CurrentMonth:  getEnv("DOMAIN_CURRENT_MONTH", "November 2025"),
			NoticeDismiss: getEnvAsDuration("NOTICE_DISMISS_AFTER", 1500*time.Millisecond),
		},
		Document: DocumentConfig{
			Backend:         strings.ToLower(getEnv("DOCUMENT_BACKEND", "local")),
			Dir:             getEnv("DOCUMENT_DIR", "uploads"),
			Bucket:          getEnv("GCS_BUCKET", ""),
			CredentialsJSON: getEnv("GCS_CREDENTIALS_JSON", ""),
			MaxSizeBytes:    int64(getEnvAsInt("DOCUMENT_MAX_SIZE", 5*1024*1024)),
		},
		Report: ReportConfig{
			SnapshotCron: os.Getenv("REPORT_SNAPSHOT_CRON"),
		},
	}

	if _, set := os.LookupEnv("REPORT_SNAPSHOT_CRON"); !set {
		config.Report.SnapshotCron = "@daily"
	}

	return config, nil
}
