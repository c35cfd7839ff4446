package main

import (
	"os"
	"strings"

	"github.com/kotaroooo0/nori"
	"github.com/kotaroooo0/nori/morphology"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "NORI"

const (
	keyTokenizeMode   = "tokenize-mode"
	keyOutputFormat   = "output-format"
	keyUserDictionary = "user-dictionary"
	keyNFC            = "nfc"
	keyCharMapping    = "char-mapping"
	keyVerbose        = "verbose"
)

type options struct {
	mode           morphology.DecompoundMode
	format         nori.OutputFormat
	userDictionary string
	nfc            bool
	verbose        bool
	charMappings   []string
	configFile     string
	mapper         map[string]string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "nori [OPTIONS] [INPUT_FILE]",
		Short: "Split Korean text into morphemes",
		Long: `nori reads Korean text line by line, from INPUT_FILE or standard input,
and prints the morphemes of every line either in MeCab format
(terminated by EOS) or as one JSON array per line.`,
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return errors.Wrap(err, "bind flags")
			}
			return opts.resolve(v)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// ここから先のエラーは使い方の誤りではない
			cmd.SilenceUsage = true
			return run(cmd, args, opts)
		},
	}
	cmd.SetVersionTemplate("{{.Version}}\n")

	flags := cmd.Flags()
	flags.VarP(&opts.mode, keyTokenizeMode, "m", "The tokenization mode. none, discard or mixed can be specified.")
	flags.VarP(&opts.format, keyOutputFormat, "o", "The output format. mecab or json can be specified.")
	flags.StringVarP(&opts.userDictionary, keyUserDictionary, "u", "", "Specifies the file path of the user dictionary.")
	flags.BoolVar(&opts.nfc, keyNFC, false, "Normalize input to NFC before tokenizing.")
	flags.BoolVar(&opts.verbose, keyVerbose, false, "Print debug logs to standard error.")
	flags.StringSliceVar(&opts.charMappings, keyCharMapping, nil, "Replace text before tokenizing, given as from=to. Can be repeated.")
	flags.StringVar(&opts.configFile, "config", "", "Read options from a YAML config file.")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return cmd
}

// resolve merges flags, NORI_* environment variables and the config file
// (in that order of precedence) and validates the result.
func (o *options) resolve(v *viper.Viper) error {
	if o.configFile != "" {
		v.SetConfigFile(o.configFile)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "read config %s", o.configFile)
		}
	}

	if err := o.mode.Set(v.GetString(keyTokenizeMode)); err != nil {
		return err
	}
	if err := o.format.Set(v.GetString(keyOutputFormat)); err != nil {
		return err
	}
	o.userDictionary = v.GetString(keyUserDictionary)
	o.nfc = v.GetBool(keyNFC)
	o.verbose = v.GetBool(keyVerbose)
	o.charMappings = v.GetStringSlice(keyCharMapping)

	mapper, err := nori.ParseCharMappings(o.charMappings)
	if err != nil {
		return err
	}
	o.mapper = mapper

	if o.userDictionary != "" {
		if _, err := os.Stat(o.userDictionary); err != nil {
			return errors.Errorf("unexpected user dictionary file: %s", o.userDictionary)
		}
	}
	return nil
}

func (o *options) config() nori.Config {
	cfg := nori.NewConfig()
	cfg.Mode = o.mode
	cfg.UserDictionary = o.userDictionary
	cfg.NormalizeNFC = o.nfc
	cfg.CharMappings = o.mapper
	return cfg
}

func run(cmd *cobra.Command, args []string, opts *options) error {
	logger := newLogger(cmd.ErrOrStderr(), opts.verbose)
	defer logger.Sync()

	analyzer, err := nori.NewKoreanAnalyzer(opts.config())
	if err != nil {
		return err
	}
	logger.Debug("analyzer ready")

	var src *nori.LineSource
	if len(args) > 0 {
		src, err = nori.OpenLineSource(args[0])
		if err != nil {
			return err
		}
		defer src.Close()
	} else {
		// 標準入力は呼び出し元のものなので閉じない
		src = nori.NewLineSource(cmd.InOrStdin())
	}

	p := nori.NewPipeline(
		nori.NewTokenizer(analyzer),
		nori.NewFormatter(opts.format),
		cmd.OutOrStdout(),
		nori.WithLogger(logger),
		nori.Interactive(len(args) == 0),
	)
	return p.Run(src)
}
