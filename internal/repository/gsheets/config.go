package gsheets

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

var ErrNoCredentials = errors.New("google service account credentials are not configured")

type Config struct {
	SpreadsheetID   string        `yaml:"spreadsheet_id" env:"GOOGLE_SPREADSHEET_ID" env-required:"true"`
	Range           string        `yaml:"range" env:"GOOGLE_SHEET_RANGE" env-default:"A:ZZ"`
	CredentialsFile string        `yaml:"credentials_file" env:"GOOGLE_CREDENTIALS_FILE" env-default:"credentials/service-account.json"`
	Timeout         time.Duration `yaml:"timeout" env:"SHEETS_TIMEOUT" env-default:"10s"`
	Retries         uint64        `yaml:"retries" env:"SHEETS_RETRIES" env-default:"0"`
	RetryBackoff    time.Duration `yaml:"retry_backoff" env:"SHEETS_RETRY_BACKOFF" env-default:"200ms"`

	// Hosted задан на хостинге (Railway): ключ собирается из переменных окружения
	Hosted       string `yaml:"-" env:"RAILWAY_ENVIRONMENT"`
	ProjectID    string `yaml:"project_id" env:"GOOGLE_PROJECT_ID"`
	PrivateKeyID string `yaml:"private_key_id" env:"GOOGLE_PRIVATE_KEY_ID"`
	PrivateKey   string `yaml:"private_key" env:"GOOGLE_PRIVATE_KEY"`
	ClientEmail  string `yaml:"client_email" env:"GOOGLE_CLIENT_EMAIL"`
	ClientID     string `yaml:"client_id" env:"GOOGLE_CLIENT_ID"`
}

type serviceAccount struct {
	Type                    string `json:"type"`
	ProjectID               string `json:"project_id"`
	PrivateKeyID            string `json:"private_key_id"`
	PrivateKey              string `json:"private_key"`
	ClientEmail             string `json:"client_email"`
	ClientID                string `json:"client_id"`
	AuthURI                 string `json:"auth_uri"`
	TokenURI                string `json:"token_uri"`
	AuthProviderX509CertURL string `json:"auth_provider_x509_cert_url"`
	ClientX509CertURL       string `json:"client_x509_cert_url"`
}

// CredentialsJSON возвращает JSON ключа сервисного аккаунта: из переменных
// окружения на хостинге или из локального файла при разработке.
func (c *Config) CredentialsJSON() ([]byte, error) {
	const op = "gsheets.CredentialsJSON"

	if c.Hosted == "" {
		b, err := os.ReadFile(c.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return b, nil
	}

	if c.PrivateKey == "" || c.ClientEmail == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrNoCredentials)
	}

	b, err := json.Marshal(serviceAccount{
		Type:                    "service_account",
		ProjectID:               c.ProjectID,
		PrivateKeyID:            c.PrivateKeyID,
		PrivateKey:              strings.ReplaceAll(c.PrivateKey, `\n`, "\n"),
		ClientEmail:             c.ClientEmail,
		ClientID:                c.ClientID,
		AuthURI:                 "https://accounts.google.com/o/oauth2/auth",
		TokenURI:                "https://oauth2.googleapis.com/token",
		AuthProviderX509CertURL: "https://www.googleapis.com/oauth2/v1/certs",
		ClientX509CertURL:       "https://www.googleapis.com/robot/v1/metadata/x509/" + c.ClientEmail,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return b, nil
}
