package main

import (
	"fmt"
	"time"

	"github.com/dmitrymomot/signup/pkg/logger"
)

type appConfig struct {
	Env      string `env:"SIGNUP_ENV" envDefault:"development"`
	LogLevel string `env:"SIGNUP_LOG_LEVEL"`
	Timezone string `env:"SIGNUP_TIMEZONE" envDefault:"Local"`
}

func (c appConfig) location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("SIGNUP_TIMEZONE: %w", err)
	}
	return loc, nil
}

func (c appConfig) loggerOptions() ([]logger.Option, error) {
	opts := []logger.Option{logger.WithEnvironment(c.Env, "signupcheck")}
	if c.LogLevel == "" {
		return opts, nil
	}

	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("SIGNUP_LOG_LEVEL: %w", err)
	}
	return append(opts, logger.WithLevel(level)), nil
}
