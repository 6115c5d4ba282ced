package commands

import (
	"fmt"

	"github.com/MacroPower/lexpath/pkg/lexpath"
)

// RootArgs holds the persistent arguments shared by every command.
type RootArgs struct {
	logLevel    *string
	logFormat   *string
	platform    *string
	doubleSlash *string
	configFile  *string
}

func NewRootArgs() *RootArgs {
	return &RootArgs{
		logLevel:    new(string),
		logFormat:   new(string),
		platform:    new(string),
		doubleSlash: new(string),
		configFile:  new(string),
	}
}

func (a *RootArgs) GetLogLevel() string {
	return *a.logLevel
}

func (a *RootArgs) GetLogFormat() string {
	return *a.logFormat
}

func (a *RootArgs) GetPlatform() string {
	return *a.platform
}

func (a *RootArgs) GetDoubleSlash() string {
	return *a.doubleSlash
}

func (a *RootArgs) GetConfigFile() string {
	return *a.configFile
}

// Platform resolves the selected platform grammar.
func (a *RootArgs) Platform() (lexpath.Platform, error) {
	p, err := lexpath.ParsePlatform(a.GetPlatform())
	if err != nil {
		return p, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return p, nil
}

// ParseOptions resolves the parse options implied by the arguments.
func (a *RootArgs) ParseOptions() ([]lexpath.ParseOption, error) {
	policy, err := lexpath.ParseDoubleSlashPolicy(a.GetDoubleSlash())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return []lexpath.ParseOption{lexpath.WithDoubleSlash(policy)}, nil
}

// ParsePath parses raw under the selected platform and policy.
func (a *RootArgs) ParsePath(raw string) (lexpath.Path, error) {
	platform, err := a.Platform()
	if err != nil {
		return lexpath.Path{}, err
	}

	opts, err := a.ParseOptions()
	if err != nil {
		return lexpath.Path{}, err
	}

	return lexpath.Parse(platform, raw, opts...), nil
}
