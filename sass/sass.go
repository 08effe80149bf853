// Package sass compiles SCSS with Dart Sass over its embedded protocol.
// One sass process is started on first use and kept for later compiles.
package sass

import (
	"errors"
	"fmt"
	"os/exec"
	"sync"

	"github.com/bep/godartsass/v2"
	"github.com/rs/zerolog"
)

var ErrNotInstalled = errors.New("sass executable not found")

type Compiler struct {
	Command      string   // Dart Sass executable, run as "<command> --embedded"
	IncludePaths []string // load paths for @use and @import
	Logger       zerolog.Logger

	mu         sync.Mutex
	transpiler *godartsass.Transpiler
}

func New(command string, includePaths []string, logger zerolog.Logger) *Compiler {
	return &Compiler{Command: command, IncludePaths: includePaths, Logger: logger}
}

// Compile turns one SCSS source into expanded CSS.
func (c *Compiler) Compile(src string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	t, err := c.start()
	if err != nil {
		return "", err
	}
	res, err := t.Execute(godartsass.Args{
		Source:       src,
		SourceSyntax: godartsass.SourceSyntaxSCSS,
		OutputStyle:  godartsass.OutputStyleExpanded,
		IncludePaths: c.IncludePaths,
	})
	if err != nil {
		return "", fmt.Errorf("sass error: %w", err)
	}
	return res.CSS, nil
}

func (c *Compiler) start() (*godartsass.Transpiler, error) {
	if c.transpiler != nil {
		return c.transpiler, nil
	}
	fn, err := exec.LookPath(c.Command)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotInstalled, c.Command)
	}
	t, err := godartsass.Start(godartsass.Options{
		DartSassEmbeddedFilename: fn,
		LogEventHandler:          c.logEvent,
	})
	if err != nil {
		return nil, fmt.Errorf("starting %s: %w", fn, err)
	}
	c.transpiler = t
	return t, nil
}

func (c *Compiler) logEvent(ev godartsass.LogEvent) {
	switch ev.Type {
	case godartsass.LogEventTypeDebug:
		c.Logger.Debug().Str("source", "sass").Msg(ev.Message)
	default:
		c.Logger.Warn().Str("source", "sass").Msg(ev.Message)
	}
}

// Close stops the sass process, if one was started.
func (c *Compiler) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.transpiler == nil {
		return nil
	}
	err := c.transpiler.Close()
	c.transpiler = nil
	return err
}
