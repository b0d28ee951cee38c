package config

// Config is the root configuration body.
type Config struct {
	Server             ServerConfig          `mapstructure:"server"`
	DB                 DBConfig              `mapstructure:"database"`
	Redis              RedisConfig           `mapstructure:"redis"`
	Mongo              MongoConfig           `mapstructure:"mongo"`
	Elastic            ElasticConfig         `mapstructure:"elastic"`
	MinIO              MinIOConfig           `mapstructure:"minio"`
	LLM                LLMConfig             `mapstructure:"llm"`
	Logstash           LogstashConfig        `mapstructure:"logstash"`
	Kafka              KafkaConfig           `mapstructure:"kafka"`
	KafkaUsageConsumer KafkaUsageConsumer    `mapstructure:"kafka_usage_consumer"`
	Usage              UsageConfig           `mapstructure:"usage"`
	Plans              map[string]PlanLimits `mapstructure:"plans"`
	AutoBlog           AutoBlogConfig        `mapstructure:"auto_blog"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
	// Env selects how much error detail leaks to clients ("dev" | "prod").
	Env string `mapstructure:"env"`
}

// DBConfig database configuration
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

type MongoConfig struct {
	URL      string `mapstructure:"url"`
	Database string `mapstructure:"database"`
}

// ElasticConfig Elastic connection and index names
type ElasticConfig struct {
	Address  string         `mapstructure:"address"`
	Username string         `mapstructure:"username"`
	Password string         `mapstructure:"password"`
	Indices  ElasticIndices `mapstructure:"indices"`
}

type ElasticIndices struct {
	BlogIndex string `mapstructure:"blog_index"`
}

// MinIOConfig MinIO configuration
type MinIOConfig struct {
	InternalEndpoint string `mapstructure:"internal_endpoint"`
	ExternalEndpoint string `mapstructure:"external_endpoint"`
	AccessKey        string `mapstructure:"access_key"`
	SecretKey        string `mapstructure:"secret_key"`
	MainBucket       string `mapstructure:"main_bucket"`
	InternalUseSSL   bool   `mapstructure:"internal_use_ssl"`
	UsePublicLink    bool   `mapstructure:"use_public_link"`
}

// LLMConfig upstream model configuration. An empty ApiKey switches the
// whole chat surface to the canned demo client.
type LLMConfig struct {
	URL       string `mapstructure:"url"`
	ApiKey    string `mapstructure:"api_key"`
	TextModel string `mapstructure:"text_model"`
	// SearchGateway is an optional outbound proxy for the web search/fetch tools.
	SearchGateway string `mapstructure:"search_gateway"`
}

type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

type KafkaConfig struct {
	Brokers  []string       `mapstructure:"brokers"`
	Sasl     SaslConfig     `mapstructure:"sasl"`
	Consumer ConsumerConfig `mapstructure:"consumer"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type ConsumerConfig struct {
	SessionTimeout    int `mapstructure:"session_timeout"`
	HeartbeatInterval int `mapstructure:"heartbeat_interval"`
	RebalanceTimeout  int `mapstructure:"rebalance_timeout"`
	MaxProcessingTime int `mapstructure:"max_processing_time"`
}

type KafkaUsageConsumer struct {
	Topic   string `mapstructure:"topic"`
	GroupID string `mapstructure:"group_id"`
}

// UsageConfig metering policy.
// StrictEnforcement=false keeps the fail-open behaviour: a store error
// during the limit check lets the request through.
type UsageConfig struct {
	StrictEnforcement bool `mapstructure:"strict_enforcement"`
}

// PlanLimits per-tier quota. -1 means unlimited.
type PlanLimits struct {
	Messages int64 `mapstructure:"messages"`
	Tokens   int64 `mapstructure:"tokens"`
}

// AutoBlogConfig drives the scheduled draft generator.
type AutoBlogConfig struct {
	Enable bool     `mapstructure:"enable"`
	Spec   string   `mapstructure:"spec"`
	Topics []string `mapstructure:"topics"`
	// SourceURLs optional article URLs used as grounding material for drafts.
	SourceURLs []string `mapstructure:"source_urls"`
}
