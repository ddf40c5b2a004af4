// Package config loads enumkit configuration from YAML files, .env files and
// environment variables using Viper and godotenv.
//
// Sources are applied in order: the YAML file, then the process environment,
// then a .env file (which may add variables). Environment keys are matched by
// prefix: with name "plan", PLAN_LOGGING_LEVEL sets logging.level.
//
// # Usage
//
//	var cfg plan.Config
//	err := config.Load("plan", &cfg, config.WithConfigFile("plan.yml"))
package config
