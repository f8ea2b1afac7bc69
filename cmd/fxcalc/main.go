package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sbilibin2017/gw-currency-converter/internal/facades"
	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
)

var version = "dev"

// Viper keys
const (
	keyAPIKey    = "api_key"
	keyURL       = "url"
	keyTimeout   = "timeout"
	keyBoltPath  = "bolt_path"
	keyEphemeral = "ephemeral"
	keyLogLevel  = "log_level"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(viper.New()).ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Flags are bound into v, and the
// environment fills whatever no flag sets.
func newRootCmd(v *viper.Viper) *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:     "fxcalc",
		Short:   "Convert an amount into up to four currencies",
		Version: version,
		Long: `fxcalc converts one base amount into up to four target currencies using
the latest openexchangerates.org rates. The last fetched rates are cached
locally, so conversions keep working offline.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(v, cfgFile)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "config.env", "env file holding OPENEXCHANGE_API_KEY")
	flags.String("api-key", "", "openexchangerates.org app id")
	flags.String("url", facades.DefaultOpenExchangeRatesURL, "rates API root")
	flags.Duration("timeout", defaultTimeout, "rates request timeout")
	flags.String("bolt-path", defaultBoltPath(), "rate cache file")
	flags.Bool("ephemeral", false, "keep the rate cache in memory only")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")

	_ = v.BindPFlag(keyAPIKey, flags.Lookup("api-key"))
	_ = v.BindPFlag(keyURL, flags.Lookup("url"))
	_ = v.BindPFlag(keyTimeout, flags.Lookup("timeout"))
	_ = v.BindPFlag(keyBoltPath, flags.Lookup("bolt-path"))
	_ = v.BindPFlag(keyEphemeral, flags.Lookup("ephemeral"))
	_ = v.BindPFlag(keyLogLevel, flags.Lookup("log-level"))

	root.AddCommand(convertCmd(v))
	root.AddCommand(ratesCmd(v))
	root.AddCommand(currenciesCmd(v))

	return root
}

func initConfig(v *viper.Viper, cfgFile string) error {
	_ = godotenv.Load(cfgFile)

	_ = v.BindEnv(keyAPIKey, "OPENEXCHANGE_API_KEY")
	_ = v.BindEnv(keyURL, "OPENEXCHANGE_URL")
	_ = v.BindEnv(keyBoltPath, "BOLT_PATH")
	_ = v.BindEnv(keyLogLevel, "APP_LOG_LEVEL")

	if err := logger.Initialize(v.GetString(keyLogLevel), logger.FormatConsole); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	return nil
}
