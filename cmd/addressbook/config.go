package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vortex-fintech/go-addressbook/logger"
)

// Config is read from flags or the environment.
type Config struct {
	Env     string `help:"Logger environment (development, debug, production)." env:"ADDRESSBOOK_ENV" default:"production"`
	Service string `help:"Logger name." env:"ADDRESSBOOK_SERVICE" default:"addressbook"`
}

var errEmptyService = errors.New("config: service name is required")

func (c Config) Validate() error {
	if !logger.ValidEnv(c.Env) {
		return fmt.Errorf("config: unknown environment %q", c.Env)
	}
	if strings.TrimSpace(c.Service) == "" {
		return errEmptyService
	}
	return nil
}
