package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"strings"

	"github.com/ezerfernandes/codetabs/internal/codetabs"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	fileMode = 0o600
	dirMode  = 0o750

	stdinName = "-"

	keySync   = "sync"
	keyBase   = "base"
	keyLabels = "labels"

	envPrefix  = "CODETABS"
	configName = ".codetabs"
)

type statusFunc func(format string, args ...interface{})

type options struct {
	config     string
	syncFlag   string
	labelFlags map[string]string
	baseFlag   string
	verbose    bool

	sync   codetabs.Sync
	labels map[string]string
	base   string

	quiet bool
	dir   string
	keep  bool

	lang   []string
	meta   map[string]string
	filter filterFunc

	status statusFunc
	log    zerolog.Logger
}

func configFlags(cmd *cobra.Command, opts *options) {
	flags := cmd.PersistentFlags()

	flags.StringVar(&opts.config, "config", "", "config file (default ./"+configName+".toml)")
	flags.StringVar(&opts.syncFlag, keySync, "false", "synchronize tab sets: false, true (same labels) or all")
	flags.Lookup(keySync).NoOptDefVal = "true"
	flags.StringToStringVar(&opts.labelFlags, "label", nil, "tab label for a language, as lang=Label")
	flags.StringVar(&opts.baseFlag, keyBase, ".", "base directory for file=\"...\" references")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug details")
}

func quietFlag(cmd *cobra.Command, opts *options) {
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress status messages")
}

func dirFlag(cmd *cobra.Command, opts *options) {
	cmd.Flags().StringVarP(&opts.dir, "dir", "d", "", "working directory for extracted tabs (default temporary)")
}

// load merges defaults, the config file, CODETABS_* variables and flags.
func (o *options) load(cmd *cobra.Command) error {
	v := viper.New()

	v.SetDefault(keySync, "false")
	v.SetDefault(keyBase, ".")

	v.SetConfigType("toml")

	if len(o.config) != 0 {
		v.SetConfigFile(o.config)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(configName)
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	for _, key := range []string{keySync, keyBase} {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(key)); err != nil {
			return err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if len(o.config) != 0 || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	o.sync = codetabs.ParseSync(v.GetString(keySync))
	o.base = v.GetString(keyBase)

	o.labels = make(map[string]string)
	maps.Copy(o.labels, v.GetStringMapString(keyLabels))
	maps.Copy(o.labels, o.labelFlags)

	o.log.Debug().Str("config", v.ConfigFileUsed()).Stringer("sync", o.sync).Str("base", o.base).Msg("configuration")

	return nil
}

func (o *options) plugin() *codetabs.Plugin {
	return codetabs.New(codetabs.Options{
		Sync:         o.sync,
		CustomLabels: o.labels,
		FileBasePath: o.base,
		Logger:       &o.log,
	})
}

func (o *options) createLogger(w io.Writer) {
	level := zerolog.WarnLevel
	if o.verbose {
		level = zerolog.DebugLevel
	}

	o.log = zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(level).With().Timestamp().Logger()
}

func (o *options) createStatus(w io.Writer) {
	o.status = func(format string, args ...interface{}) {
		if !o.quiet {
			fmt.Fprintf(w, format, args...)
		}
	}
}

func checkargs(cmd *cobra.Command, args []string) error {
	n := len(args)
	if dash := cmd.ArgsLenAtDash(); dash >= 0 {
		n = dash
	}

	if n > 1 {
		return fmt.Errorf("%w, received %d", errTooManyFiles, n)
	}

	return nil
}

func source(args []string) string {
	if len(args) == 0 {
		return stdinName
	}

	return args[0]
}

func script(cmd *cobra.Command, args []string) (string, []string) {
	dash := cmd.ArgsLenAtDash()
	if dash < 0 {
		return "", args
	}

	return strings.Join(args[dash:], " "), args[:dash]
}

func readSource(stdin io.Reader, filename string) ([]byte, error) {
	if filename == stdinName {
		var buff bytes.Buffer

		if _, err := buff.ReadFrom(stdin); err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}

		return buff.Bytes(), nil
	}

	return os.ReadFile(filename)
}

var (
	errTooManyFiles = errors.New("accepts at most one filename")
	errWriteStdin   = errors.New("cannot write back to stdin, pass a filename")
)
