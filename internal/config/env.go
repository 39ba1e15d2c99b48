package config

import (
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// LoadEnv applies the environment layer on top of defaults: an optional
// .env file in the working directory is loaded first (missing file is not
// an error), then any VOXPREP_* variables are read into cfg. CLI flags are
// parsed afterwards and win over both.
func LoadEnv(cfg *Config) error {
	_ = godotenv.Load()
	return cleanenv.ReadEnv(cfg)
}
