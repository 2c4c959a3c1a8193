package config

import (
	"runtime"
	"time"
)

// Default tier sizes and scheduling constants. These mirror the tunables
// exposed through CacheConfig and HealthConfig; a zero value in the loaded
// file means "use the default".
const (
	DefaultMemoryCacheSize = 1000
	DefaultDiskCacheSize   = 10000

	DefaultHealthInterval = 5 * time.Minute
	DefaultProbeTimeout   = 10 * time.Second

	DefaultListenAddr = "127.0.0.1:8135"

	DefaultOpenRouterModel = "openai/gpt-4o-mini"
	DefaultOpenAIModel     = "gpt-4o-mini"
	DefaultAnthropicModel  = "claude-sonnet-4-0"

	DefaultUsageRetentionDays = 90
	DefaultCleanupInterval    = 24 * time.Hour
)

// DefaultMaxConcurrentProbes bounds parallel health probes.
func DefaultMaxConcurrentProbes() int {
	return runtime.NumCPU() * 4
}

// defaults returns the baseline configuration that user files are merged
// over.
func defaults() Config {
	return Config{
		DataDir: DefaultDataDir(),
		Cache: CacheConfig{
			MemorySize: DefaultMemoryCacheSize,
			DiskSize:   DefaultDiskCacheSize,
		},
		Metadata: MetadataConfig{
			Backend: "sqlite",
		},
		Health: HealthConfig{
			Interval:      DefaultHealthInterval,
			ProbeTimeout:  DefaultProbeTimeout,
			MaxConcurrent: DefaultMaxConcurrentProbes(),
		},
		Retention: RetentionConfig{
			UsageRetentionDays: DefaultUsageRetentionDays,
			Interval:           DefaultCleanupInterval,
		},
		API: APIConfig{
			ListenAddr: DefaultListenAddr,
		},
	}
}
