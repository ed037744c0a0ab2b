package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

var (
	// EnvVars are the secrets every deployment must provide
	EnvVars = []string{
		"TELEGRAM_BOT_TOKEN",
		"ALIEXPRESS_APP_KEY",
		"ALIEXPRESS_APP_SECRET",
	}

	// SessionEnvVar is optional; setting it switches the API client to
	// the keyed detail endpoints
	SessionEnvVar = "ALIEXPRESS_ACCESS_TOKEN"
)

type apiConfig struct {
	BaseURL       string  `yaml:"baseURL"`
	Currency      string  `yaml:"currency"`
	Language      string  `yaml:"language"`
	ShipToCountry string  `yaml:"shipToCountry"`
	TaxRate       float64 `yaml:"taxRate"`
	PageSize      int     `yaml:"pageSize"`
	appKey        string
	appSecret     string
	session       string
}

type botConfig struct {
	// DestinationLabel is the localized name of the ship-to country for
	// the shipping section
	DestinationLabel string `yaml:"destinationLabel"`
	token            string
}

// File contains all settings for one bot instance. Secrets come from the
// environment, everything else from the yaml file. Construct once at
// startup and pass by reference; components never read the environment
// themselves.
type File struct {
	API apiConfig `yaml:"aliexpress"`
	Bot botConfig `yaml:"bot"`
}

// New returns a pointer to a config object
func New(filePath string) (cfg *File, err error) {
	cfg = new(File)

	yamlFile, err := os.ReadFile(filePath)
	if err != nil {
		return cfg, err
	}

	err = yaml.Unmarshal(yamlFile, cfg)
	if err != nil {
		return cfg, err
	}

	cfg.applyDefaults()

	envs, err := getEnvs(EnvVars)
	if err != nil {
		return cfg, err
	}

	cfg.Bot.token = envs["TELEGRAM_BOT_TOKEN"]
	cfg.API.appKey = envs["ALIEXPRESS_APP_KEY"]
	cfg.API.appSecret = envs["ALIEXPRESS_APP_SECRET"]
	cfg.API.session = os.Getenv(SessionEnvVar)

	return cfg, nil
}

func (cfg *File) applyDefaults() {
	if cfg.API.Currency == "" {
		cfg.API.Currency = "USD"
	}
	if cfg.API.Language == "" {
		cfg.API.Language = "AR"
	}
	if cfg.API.ShipToCountry == "" {
		cfg.API.ShipToCountry = "DZ"
	}
	if cfg.API.TaxRate == 0 {
		cfg.API.TaxRate = 0.1
	}
	if cfg.API.PageSize == 0 {
		cfg.API.PageSize = 10
	}
	if cfg.Bot.DestinationLabel == "" {
		cfg.Bot.DestinationLabel = "الجزائر"
	}
}

// GetTelegram returns the bot token
func (cfg *File) GetTelegram() (token string, err error) {
	if cfg.Bot.token == "" {
		return token, fmt.Errorf("Telegram token not set")
	}
	return cfg.Bot.token, nil
}

// GetAPI returns app key, app secret, and the optional session token
func (cfg *File) GetAPI() (key, secret, session string, err error) {
	if cfg.API.appKey == "" || cfg.API.appSecret == "" {
		return key, secret, session, fmt.Errorf("API credentials not set")
	}
	return cfg.API.appKey, cfg.API.appSecret, cfg.API.session, nil
}

func getEnvs(names []string) (map[string]string, error) {
	variables := make(map[string]string, len(names))
	for _, n := range names {
		variables[n] = os.Getenv(n)
		if variables[n] == "" {
			return variables, fmt.Errorf("Couldn't find env variable: %s", n)
		}
	}
	return variables, nil
}
