package app

import (
	"errors"

	"github.com/wtdcode/dissectctl/internal/decodeas"
	"github.com/wtdcode/dissectctl/internal/dissect"
	"github.com/wtdcode/dissectctl/internal/krb"
	"github.com/wtdcode/dissectctl/internal/resolv"
	"github.com/wtdcode/dissectctl/internal/timestamp"
)

// Config holds everything an App instance needs to run: the tool-level
// settings plus the dissection configuration assembled during flag
// parsing.
type Config struct {
	ProtocolsPath string // protocol manifest directory

	LogFormat string
	LogLevel  string

	Dissect     *dissect.Options
	Resolver    *resolv.Resolver
	Display     *timestamp.Display
	DecodeRules *decodeas.Book
	Keytabs     *krb.Loader
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.ProtocolsPath == "" {
		return nil, errors.New("ProtocolsPath is a required configuration field and cannot be empty")
	}
	if cfg.Dissect == nil {
		return nil, errors.New("Dissect is a required configuration field and cannot be nil")
	}

	return &cfg, nil
}
