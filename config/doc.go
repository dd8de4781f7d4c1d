// Package config loads restkit configuration with Viper.
//
// Values are read from a config.yml (found under ./cmd/<service>/, ./config/
// or the working directory) and overridden by environment variables, which
// may also come from a .env file loaded with godotenv.
//
// # Usage
//
//	var cfg Config
//	err := config.LoadConfig("restkit", &cfg, config.WithEnvPrefix("RESTKIT"))
//
// With the RESTKIT prefix, RESTKIT_CLIENT_BASE_URL sets client.base_url.
package config
