package config

// RedisConfig contains Redis configuration.
type RedisConfig struct {
	URI                string   `env:"URI"                  envDefault:"localhost:6379"`
	Password           string   `env:"PASSWORD"             envDefault:""`
	DB                 int      `env:"DB"                   envDefault:"0"`
	SentinelNodes      []string `env:"SENTINEL_NODES"       envDefault:"localhost:26379"`
	SentinelMasterName string   `env:"SENTINEL_MASTER_NAME" envDefault:"mymaster"`
	SentinelPassword   string   `env:"SENTINEL_PASSWORD"    envDefault:""`
	UseSentinel        bool     `env:"USE_SENTINEL"         envDefault:"false"`
	ClusterNodes       []string `env:"CLUSTER_NODES"        envDefault:""`
	UseCluster         bool     `env:"USE_CLUSTER"          envDefault:"false"`

	// Key prefixes for the two records this service keeps.
	SessionPrefix    string `env:"SESSION_PREFIX"    envDefault:"session:"`
	PreferencePrefix string `env:"PREFERENCE_PREFIX" envDefault:"prefs:"`
}

// Sanitize applies guardrails to Redis configuration values.
func (r *RedisConfig) Sanitize() {
	if r.DB < 0 {
		r.DB = 0
	}
	if r.SessionPrefix == "" {
		r.SessionPrefix = "session:"
	}
	if r.PreferencePrefix == "" {
		r.PreferencePrefix = "prefs:"
	}
}
