package env

import (
	"os"
)

const defaultConfigPath = "./infra/configs/config.yaml"

// PodName example: k8ssta-anft-api-6868d88fbd-bz8zv
func PodName() string {
	return os.Getenv("PODNAME")
}

// EnvName example: staging
func EnvName() string {
	return os.Getenv("ENV_NAME")
}

// ConfigPath is CONFIG_PATH, or the bundled yaml when unset
func ConfigPath() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return defaultConfigPath
}
