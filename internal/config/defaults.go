package config

import "time"

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Ranking.Damping == 0 {
		cfg.Ranking.Damping = 0.85
	}
	if cfg.Ranking.Epsilon == 0 {
		cfg.Ranking.Epsilon = 1e-9
	}
	if cfg.Ranking.Method == "" {
		cfg.Ranking.Method = "auto"
	}
	if cfg.Ranking.DenseLimit == 0 {
		cfg.Ranking.DenseLimit = 1500
	}
	if cfg.Ranking.MaxIterations == 0 {
		cfg.Ranking.MaxIterations = 1000
	}
	if cfg.Ranking.Tolerance == 0 {
		cfg.Ranking.Tolerance = 1e-12
	}
	if cfg.Ranking.Timeout == 0 {
		cfg.Ranking.Timeout = 30 * time.Second
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = "file"
	}
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = "./data/graphs"
	}
	if cfg.Storage.GraphName == "" {
		cfg.Storage.GraphName = "default"
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = 60 * time.Second
	}
	if cfg.Search.DefaultLimit == 0 {
		cfg.Search.DefaultLimit = 10
	}
	if cfg.Search.MaxLimit == 0 {
		cfg.Search.MaxLimit = 250
	}
	if cfg.Watch.Debounce == 0 {
		cfg.Watch.Debounce = 400 * time.Millisecond
	}
}

// Default returns a config with every default applied.
func Default() *Config {
	var cfg Config
	ApplyDefaults(&cfg)
	return &cfg
}
