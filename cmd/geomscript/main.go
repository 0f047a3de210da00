// geomscript is a command-line runner for geometry scripts. It evaluates
// Lisp source with the engine package and prints the final expression
// value as text, JSON or YAML.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/davcamer/elm-geometry/pkg/codec"
	"github.com/davcamer/elm-geometry/pkg/engine"
)

const (
	appName = "geomscript"
	version = "v0.1.0"
)

var (
	cfgFile string
	logger  *zap.Logger
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Evaluate geometry scripts",
	Long: `geomscript evaluates Lisp scripts that construct and transform
geometric values: points, vectors, directions, axes, frames, planes and
bounding boxes in 2D and 3D. The value of the final expression is printed
as an s-expression, or encoded as JSON or YAML with --format.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}
		logger = newLogger(viper.GetBool("verbose"))
		return nil
	},
}

var runCmd = &cobra.Command{
	Use:   "run FILE",
	Short: "Evaluate a script file and print its final value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read script: %w", err)
		}
		logger.Debug("evaluating script",
			zap.String("file", args[0]),
			zap.Int("bytes", len(source)))
		return evaluateAndPrint(string(source))
	},
}

var evalCmd = &cobra.Command{
	Use:   "eval EXPR...",
	Short: "Evaluate an inline expression and print its value",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source := strings.Join(args, " ")
		logger.Debug("evaluating expression", zap.String("source", source))
		return evaluateAndPrint(source)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default $HOME/.geomscript.yaml)")
	rootCmd.PersistentFlags().String("format", "text",
		"output format: text, json or yaml")
	rootCmd.PersistentFlags().Duration("timeout", engine.EvalTimeout,
		"evaluation timeout")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false,
		"enable debug logging")

	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(evalCmd)
}

// initConfig reads the config file and environment variables.
func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.SetConfigName(".geomscript")
			viper.SetConfigType("yaml")
		}
	}

	viper.SetEnvPrefix("GEOMSCRIPT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; a malformed one is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			return err
		}
	}
	return nil
}

// newLogger builds a console zap logger writing to stderr.
func newLogger(verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}
	l, err := config.Build()
	if err != nil {
		panic(err)
	}
	return l
}

// evaluateAndPrint runs source through a fresh engine and prints the
// result in the configured format.
func evaluateAndPrint(source string) error {
	eng := engine.NewEngineWithTimeout(viper.GetDuration("timeout"))

	res, evalErrs, err := eng.Evaluate(source)
	if err != nil {
		return err
	}
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			fmt.Fprintln(os.Stderr, e.Error())
		}
		return fmt.Errorf("script failed with %d error(s)", len(evalErrs))
	}

	out, err := formatResult(res, viper.GetString("format"))
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

// formatResult renders a result. Geometry values go through the codec in
// json/yaml mode; scalars are marshalled directly.
func formatResult(res *engine.Result, format string) (string, error) {
	switch format {
	case "text":
		return res.Repr, nil
	case "json", "yaml":
		f := codec.JSON
		if format == "yaml" {
			f = codec.YAML
		}
		switch res.Value.(type) {
		case nil, float64, bool, string:
			return marshalScalar(res.Value, format)
		default:
			data, err := codec.Encode(f, res.Value)
			if err != nil {
				return "", err
			}
			return strings.TrimRight(string(data), "\n"), nil
		}
	default:
		return "", fmt.Errorf("unknown format %q (want text, json or yaml)", format)
	}
}

func marshalScalar(v any, format string) (string, error) {
	if format == "json" {
		data, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := yaml.Marshal(v)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\n"), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
