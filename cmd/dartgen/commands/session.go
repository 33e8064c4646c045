package commands

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/teranos/dartpoet/config"
	"github.com/teranos/dartpoet/dart/spec"
	"github.com/teranos/dartpoet/errors"
	"github.com/teranos/dartpoet/logger"
	"github.com/teranos/dartpoet/model"
	"github.com/teranos/dartpoet/output"
	"github.com/teranos/dartpoet/typegen"
	"github.com/teranos/dartpoet/typegen/dart"
)

// session holds the configuration and sinks of one command run.
type session struct {
	cfg        *config.Config
	configArg  string
	configPath string
	log        *zap.SugaredLogger

	// out receives generated Dart when there is no output directory,
	// status receives progress messages
	out    io.Writer
	status io.Writer
}

func newSession(cmd *cobra.Command, global *GlobalOptions, component string) (*session, error) {
	cfg, err := config.Load(global.ConfigPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}
	s := &session{
		cfg:        cfg,
		configArg:  global.ConfigPath,
		configPath: config.Path(global.ConfigPath),
		log:        logger.ComponentLogger(component),
		out:        cmd.OutOrStdout(),
		status:     cmd.ErrOrStderr(),
	}
	s.log.Debugw("Config loaded", logger.FieldConfig, s.configPath)
	return s, nil
}

// reload re-reads the configuration, keeping the current one on failure.
func (s *session) reload() error {
	cfg, err := config.Load(s.configArg)
	if err != nil {
		return errors.Wrap(err, "failed to reload config, keeping the previous one")
	}
	s.cfg = cfg
	return nil
}

// typeFiles generates one Dart file per Go package.
func (s *session) typeFiles(patterns []string) ([]*spec.File, error) {
	nullSafe, err := s.cfg.NullSafe()
	if err != nil {
		return nil, err
	}
	gen := dart.NewGenerator(dart.Options{
		Header:           s.cfg.Output.Header,
		Indent:           s.cfg.Output.Indent,
		JSONSerializable: s.cfg.Typegen.JSONSerializable,
		NullSafe:         nullSafe,
	})

	files := make([]*spec.File, 0, len(patterns))
	for _, pattern := range patterns {
		result, err := typegen.LoadPackage(pattern)
		if err != nil {
			return nil, err
		}
		result.Exclude(s.cfg.Typegen.Exclude)
		if result.IsEmpty() {
			s.log.Warnw("Package has no exported types, skipping", logger.FieldPackage, pattern)
			continue
		}
		file, err := gen.GenerateFile(result)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to generate Dart for %s", pattern)
		}
		s.log.Debugw("Generated types",
			logger.FieldPackage, result.ImportPath,
			logger.FieldFile, file.Name(),
			logger.FieldCount, len(result.TypeNames()))
		files = append(files, file)
	}
	return files, nil
}

// modelFiles builds the files described by model documents. Indent and
// header fall back to the configuration.
func (s *session) modelFiles(paths []string) ([]*spec.File, error) {
	var files []*spec.File
	for _, path := range paths {
		doc, err := model.Load(path)
		if err != nil {
			return nil, err
		}
		if doc.Indent == "" {
			doc.Indent = s.cfg.Output.Indent
		}
		if len(doc.Header) == 0 {
			doc.Header = s.cfg.Output.Header
		}
		built, err := doc.Build()
		if err != nil {
			return nil, errors.Wrapf(err, "model %s", path)
		}
		s.log.Debugw("Model built", logger.FieldModel, path, logger.FieldCount, len(built))
		files = append(files, built...)
	}
	return files, nil
}

// emit renders files to dir, or to out when dir is empty.
func (s *session) emit(ctx context.Context, files []*spec.File, dir string) error {
	rendered, err := output.Render(ctx, files)
	if err != nil {
		return err
	}
	if dir == "" {
		return output.Print(s.out, rendered)
	}

	paths, err := output.Write(dir, rendered)
	if err != nil {
		return err
	}
	if err := s.format(ctx, paths); err != nil {
		return err
	}
	for _, path := range paths {
		pterm.Success.WithWriter(s.status).Printfln("Generated %s", path)
	}
	return nil
}

func (s *session) format(ctx context.Context, paths []string) error {
	if !s.cfg.Format.Enabled {
		return nil
	}
	command, err := s.cfg.FormatCommand()
	if err != nil {
		return err
	}
	return output.Format(ctx, command, paths)
}

// watch runs rebuild whenever inputs or the config file change, until ctx
// is done. Changes to Dart files are ignored so that an output directory
// inside a watched directory does not retrigger itself.
func (s *session) watch(ctx context.Context, inputs []string, rebuild func(context.Context) error) error {
	paths := append([]string(nil), inputs...)
	if s.configPath != "" {
		paths = append(paths, s.configPath)
	}
	debounce := time.Duration(s.cfg.Watch.DebounceMS) * time.Millisecond
	w, err := config.NewWatcher(debounce, paths...)
	if err != nil {
		return err
	}

	configAbs, _ := filepath.Abs(s.configPath)
	w.OnChange(func(changed []string) error {
		relevant := changed[:0:0]
		for _, path := range changed {
			if !strings.HasSuffix(path, ".dart") {
				relevant = append(relevant, path)
			}
		}
		if len(relevant) == 0 {
			return nil
		}
		for _, path := range relevant {
			if s.configPath != "" && path == configAbs {
				if err := s.reload(); err != nil {
					PrintError(s.status, err)
				}
				break
			}
		}

		s.log.Infow("Rebuilding", logger.FieldCount, len(relevant))
		if err := rebuild(ctx); err != nil {
			PrintError(s.status, err)
			return err
		}
		return nil
	})

	pterm.Info.WithWriter(s.status).Printfln("Watching %d inputs, press Ctrl+C to stop", len(paths))
	return w.Run(ctx)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
