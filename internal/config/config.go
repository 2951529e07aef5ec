package config

import (
	"fmt"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Convert ConvertConfig `mapstructure:"convert"`
}

type ConvertConfig struct {
	Extension        string  `mapstructure:"extension" validate:"required,extension"`
	HeaderLines      int     `mapstructure:"header_lines" validate:"gte=0"`
	Format           string  `mapstructure:"format" validate:"oneof=default alt"`
	RussianThreshold float64 `mapstructure:"russian_threshold" validate:"gte=0,lt=1"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("bkrs2json")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/bkrs2json")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("convert.extension", ".dsl")
	v.SetDefault("convert.header_lines", 3)
	v.SetDefault("convert.format", "default")
	v.SetDefault("convert.russian_threshold", 0.1)

	if err := v.BindEnv("convert.format", "BKRS2JSON_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind BKRS2JSON_FORMAT environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
