package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/adnsv/flagship/compose"
	"github.com/adnsv/flagship/inspect"
	"github.com/adnsv/flagship/minify"
	"github.com/adnsv/flagship/model"
	"github.com/adnsv/flagship/sass"
	"github.com/adnsv/flagship/scaffold"
	"github.com/adnsv/flagship/watch"
	filesystem "github.com/adnsv/go-utils/fs"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	cli "github.com/jawher/mow.cli"
	"github.com/rs/zerolog"
)

const defaultConfigFN = "builder.yml"

// state is shared by all commands once the global options are parsed.
type state struct {
	fs     billy.Filesystem
	volume string
	cfg    *model.Config
	mini   minify.Minifier
	sass   *sass.Compiler
	logger zerolog.Logger
}

func main() {
	app := cli.App("flagship", "Component based static page builder")
	cfgFN := app.StringOpt("c config", defaultConfigFN, "yaml configuration file")
	srcDir := app.StringOpt("src", "", "source root holding the projects (overrides config)")
	distDir := app.StringOpt("dist", "", "root of the default output directories (overrides config)")
	minifier := app.StringOpt("minifier", "", "pim minifier: naive or standard (overrides config)")
	noSass := app.BoolOpt("no-sass", false, "do not compile SCSS")
	verbose := app.BoolOpt("v verbose", false, "log every fragment and copied file")

	st := &state{}

	app.Before = func() {
		st.logger = newLogger(*verbose)

		wd, err := os.Getwd()
		if err != nil {
			fatal(st.logger, err, "cannot determine working directory")
		}
		st.volume = filepath.VolumeName(wd)
		st.fs = osfs.New(st.volume + string(filepath.Separator))

		st.cfg, err = st.loadConfig(*cfgFN)
		if err != nil {
			fatal(st.logger, err, "invalid configuration")
		}
		if *srcDir != "" {
			st.cfg.SrcDir = *srcDir
		}
		if *distDir != "" {
			st.cfg.DistDir = *distDir
		}
		if *minifier != "" {
			st.cfg.Minifier = *minifier
		}
		if *noSass {
			st.cfg.Sass.Disabled = true
		}
		if err = st.cfg.Validate(); err != nil {
			fatal(st.logger, err, "invalid configuration")
		}
		st.cfg.SrcDir = st.absPath(st.cfg.SrcDir)
		st.cfg.DistDir = st.absPath(st.cfg.DistDir)

		st.mini, err = minify.ByName(st.cfg.Minifier)
		if err != nil {
			fatal(st.logger, err, "invalid configuration")
		}
	}

	app.After = func() {
		if st.sass != nil {
			st.sass.Close()
		}
	}

	app.Command("run", "build all variants of a project, or a single variant", func(cmd *cli.Cmd) {
		cmd.Spec = "[-o] PROJECT [VARIANT [OUTDIR]]"
		outOpt := cmd.StringOpt("o out", "", "output directory, also used when building all variants")
		project := cmd.StringArg("PROJECT", "", "project name under the source root")
		variant := cmd.StringArg("VARIANT", "", "template name, e.g. index, index-rtl, index-pim (all variants when omitted)")
		outDir := cmd.StringArg("OUTDIR", "", "output directory (default <dist>/<PROJECT>)")

		cmd.Action = func() {
			b := st.builder()
			prj := st.project(b, *project)
			out := st.outputDir(*project, *outDir, *outOpt)

			if *variant == "" {
				rep, err := b.BuildAll(prj, out)
				logReport(st.logger, rep)
				if err != nil {
					fatal(st.logger, err, "build failed")
				}
				st.logger.Info().Str("project", prj.Name).Msg("build completed")
				return
			}

			if strings.ContainsAny(*variant, `/\`) {
				fatal(st.logger, fmt.Errorf("variant %q must be a template name", *variant), "build failed")
			}
			v := model.Variant(*variant)
			var err error
			if v == model.VariantPim {
				_, err = b.BuildPim(prj, out)
			} else {
				_, err = b.BuildVariant(prj, v, out)
			}
			if err != nil {
				fatal(st.logger, err, "build failed")
			}
			st.logger.Info().Str("project", prj.Name).Str("variant", *variant).Msg("build completed")
		}
	})

	app.Command("create", "create a project from the source root's skeleton project", func(cmd *cli.Cmd) {
		cmd.Spec = "[NAME]"
		name := cmd.StringArg("NAME", "", "new project name (prompted for when omitted)")

		cmd.Action = func() {
			n := strings.TrimSpace(*name)
			if n == "" {
				n = prompt("Enter project name: ")
			}
			_, err := scaffold.Create(st.fs, st.cfg.SrcDir, st.cfg.TemplateDir, n, st.logger)
			if err != nil {
				fatal(st.logger, err, "cannot create project")
			}
			fmt.Printf("Project creation complete: %s\n", n)
		}
	})

	app.Command("inspect", "check the placeholder regions of a project template", func(cmd *cli.Cmd) {
		cmd.Spec = "PROJECT [VARIANT]"
		project := cmd.StringArg("PROJECT", "", "project name under the source root")
		variant := cmd.StringArg("VARIANT", string(model.VariantIndex), "template name")

		cmd.Action = func() {
			b := st.builder()
			prj := st.project(b, *project)
			fn := prj.TemplatePath(model.Variant(*variant))

			buf, err := util.ReadFile(st.fs, fn)
			if err != nil {
				fatal(st.logger, err, "cannot read template")
			}
			rep, err := inspect.Inspect(string(buf), b.Splicer)
			if err != nil {
				fatal(st.logger, err, "cannot parse template")
			}

			fmt.Printf("%s\n", fn)
			for _, r := range rep.Regions {
				if p := r.Problem(); p != "" {
					fmt.Printf("  %-8s %s\n", r.Region, p)
				} else {
					fmt.Printf("  %-8s ok at %s\n", r.Region, r.Location)
				}
				if r.Line != "" {
					fmt.Printf("           %s\n", strings.TrimSpace(r.Line))
				}
			}
			if !rep.OK() {
				cli.Exit(1)
			}
		}
	})

	app.Command("watch", "build a project and rebuild it whenever its sources change", func(cmd *cli.Cmd) {
		cmd.Spec = "PROJECT [OUTDIR]"
		project := cmd.StringArg("PROJECT", "", "project name under the source root")
		outDir := cmd.StringArg("OUTDIR", "", "output directory (default <dist>/<PROJECT>)")

		cmd.Action = func() {
			b := st.builder()
			prj := st.project(b, *project)
			out := st.outputDir(*project, *outDir)

			build := func() error {
				rep, err := b.BuildAll(prj, out)
				logReport(st.logger, rep)
				return err
			}
			if err := build(); err != nil {
				st.logger.Error().Err(err).Msg("initial build failed")
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			w := &watch.Watcher{
				Root:   st.osPath(prj.Dir),
				Delay:  watch.DefaultDelay,
				Build:  build,
				Logger: st.logger,
			}
			if err := w.Run(ctx); err != nil {
				fatal(st.logger, err, "watch failed")
			}
		}
	})

	app.Command("version", "print the flagship version", func(cmd *cli.Cmd) {
		cmd.Action = func() {
			fmt.Printf("flagship %s\n", appVersion())
		}
	})

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}

func newLogger(verbose bool) zerolog.Logger {
	lvl := zerolog.InfoLevel
	if verbose {
		lvl = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		Level(lvl).
		With().Timestamp().Logger()
}

func fatal(logger zerolog.Logger, err error, msg string) {
	logger.Error().Err(err).Msg(msg)
	cli.Exit(1)
}

// loadConfig reads fn when it exists. The default file is optional, an
// explicitly named one is not.
func (st *state) loadConfig(fn string) (*model.Config, error) {
	if !filesystem.FileExists(fn) {
		if fn != defaultConfigFN {
			return nil, fmt.Errorf("missing %s", fn)
		}
		return model.DefaultConfig(), nil
	}
	st.logger.Debug().Str("path", fn).Msg("loading configuration")
	return model.LoadConfig(st.fs, st.absPath(fn))
}

// absPath turns a command line path into a slash path on st.fs.
func (st *state) absPath(p string) string {
	a, err := filepath.Abs(p)
	if err != nil {
		a = p
	}
	return filepath.ToSlash(strings.TrimPrefix(a, filepath.VolumeName(a)))
}

func (st *state) osPath(p string) string {
	return filepath.Join(st.volume+string(filepath.Separator), filepath.FromSlash(p))
}

func (st *state) builder() *compose.Builder {
	includes := make([]string, 0, len(st.cfg.Sass.IncludePaths))
	for _, p := range st.cfg.Sass.IncludePaths {
		includes = append(includes, st.osPath(st.absPath(p)))
	}
	st.sass = sass.New(st.cfg.Sass.Command, includes, st.logger)
	return compose.NewBuilder(st.fs, st.cfg, st.sass, st.mini, st.logger)
}

func (st *state) project(b *compose.Builder, name string) *model.Project {
	if err := scaffold.ValidateName(name); err != nil {
		fatal(st.logger, err, "unknown project")
	}
	prj := b.Project(name)
	if fi, err := st.fs.Stat(prj.Dir); err != nil || !fi.IsDir() {
		fatal(st.logger, fmt.Errorf("%s is not a directory", st.osPath(prj.Dir)), "unknown project")
	}
	return prj
}

// outputDir returns the first non-empty candidate as an absolute path, or
// the configured default for project.
func (st *state) outputDir(project string, candidates ...string) string {
	for _, d := range candidates {
		if d != "" {
			return st.absPath(d)
		}
	}
	return st.cfg.OutputDir(project)
}

func logReport(logger zerolog.Logger, rep *compose.Report) {
	if rep == nil {
		return
	}
	for _, s := range rep.Steps {
		ev := logger.Info()
		if s.Status == compose.StepFailed {
			ev = logger.Warn()
		}
		if s.Err != nil && !errors.Is(s.Err, compose.ErrTemplateNotFound) {
			ev = ev.Err(s.Err)
		}
		ev.Str("project", rep.Project).Str("step", s.Name).Str("status", s.Status.String()).Str("path", s.Output).Msg("")
	}
}

func prompt(label string) string {
	fmt.Print(label)
	line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	return strings.TrimSpace(line)
}
