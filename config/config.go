/*
 * Copyright © 2025 Vulcan Systems Ltd., All rights reserved.
 */

// Package config loads client configuration from the environment (with optional
// .env file) or from a YAML file. Credentials are always supplied this way or by
// the caller directly; the library never embeds defaults.
package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/vulcansys/tablestore/errors"
)

// Environment variable names recognized by FromEnv.
const (
	EnvAccountName = "TABLESTORE_ACCOUNT"
	EnvAccessKey   = "TABLESTORE_ACCESS_KEY"
	EnvEndpoint    = "TABLESTORE_ENDPOINT"
	EnvPageSize    = "TABLESTORE_PAGE_SIZE"
)

// Config holds the connection settings of a Client.
type Config struct {
	// AccountName is the name of the storage account.
	AccountName string `yaml:"accountName" validate:"required"`
	// AccessKey is the access key of the storage account.
	AccessKey string `yaml:"accessKey" validate:"required"`
	// Endpoint overrides the service endpoint derived from the account name.
	Endpoint string `yaml:"endpoint" validate:"omitempty,url"`
	// PageSize is the default number of records per query result page.
	PageSize int32 `yaml:"pageSize" validate:"omitempty,gt=0"`
}

// FromEnv builds a Config from environment variables, loading a .env file first
// when one is present.
func FromEnv() (*Config, error) {
	// A missing .env file is fine; real environment variables take over.
	_ = godotenv.Load()

	cfg := &Config{
		AccountName: os.Getenv(EnvAccountName),
		AccessKey:   os.Getenv(EnvAccessKey),
		Endpoint:    os.Getenv(EnvEndpoint),
	}

	if raw := os.Getenv(EnvPageSize); raw != "" {
		size, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return nil, errors.NewInvalidArgumentError(EnvPageSize, "must be a positive integer")
		}
		cfg.PageSize = int32(size)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromFile builds a Config from a YAML file.
func FromFile(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the config against its struct tags, translating the first
// failure into an InvalidArgumentError.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if stderrors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		return errors.NewInvalidArgumentError(first.Field(),
			fmt.Sprintf("failed validation rule %q", first.Tag()))
	}
	return err
}
