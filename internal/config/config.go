package config

import (
	"flag"
	"os"

	httpapp "studentInfoBot/internal/app/http"
	"studentInfoBot/internal/repository/gsheets"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env      string         `yaml:"env" env:"ENV" env-default:"local"`
	Telegram TelegramConfig `yaml:"telegram"`
	Contacts ContactsConfig `yaml:"contacts"`
	Sheets   gsheets.Config `yaml:"google_sheets"`
	HTTP     httpapp.Config `yaml:"http_server"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"BOT_TOKEN" env-required:"true"`
}

type ContactsConfig struct {
	AdminUsername string `yaml:"admin_username" env:"ADMIN_USERNAME" env-default:"admin"`
	OfficePhone   string `yaml:"office_phone" env:"OFFICE_PHONE"`
}

// MustLoad читает конфигурацию из файла, если путь задан, иначе из переменных окружения
func MustLoad() *Config {
	return MustLoadPath(fetchConfigPath())
}

func MustLoadPath(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic("cannot read config: " + err.Error())
	}

	return cfg
}

// Load читает конфигурацию; переменные окружения перекрывают значения из файла
func Load(configPath string) (*Config, error) {
	var cfg Config

	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	if _, err := os.Stat(configPath); err != nil {
		return nil, err
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// fetchConfigPath fetches config path from command line flag or environment variable.
// Priority: flag > env > default.
// Default value is empty string.
func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
