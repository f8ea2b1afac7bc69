package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/viper"

	"github.com/sbilibin2017/gw-currency-converter/internal/facades"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/sbilibin2017/gw-currency-converter/internal/repositories"
	"github.com/sbilibin2017/gw-currency-converter/internal/services"
)

const defaultTimeout = 10 * time.Second

var errInvalidAmount = errors.New("invalid amount")

var offlineMarker = color.New(color.FgYellow, color.Bold)

func defaultBoltPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "fxcalc.db"
	}
	return filepath.Join(dir, "fxcalc", "rates.db")
}

// openConverter builds a converter over the configured rate cache. The
// returned close func releases the cache.
func openConverter(v *viper.Viper) (*services.Converter, func() error, error) {
	var (
		kv      repositories.KeyValue
		closeFn = func() error { return nil }
	)
	if v.GetBool(keyEphemeral) {
		kv = repositories.NewMemoryKeyValue()
	} else {
		path := v.GetString(keyBoltPath)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create cache dir: %w", err)
		}
		bolt, err := repositories.NewBoltKeyValue(path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open rate cache: %w", err)
		}
		kv, closeFn = bolt, bolt.Close
	}

	provider := facades.NewOpenExchangeRatesFacade(
		v.GetString(keyURL),
		&http.Client{Timeout: v.GetDuration(keyTimeout)},
		nil,
	)
	converter := services.NewConverter(
		repositories.NewRateStore(kv),
		provider,
		services.WithAPIKey(v.GetString(keyAPIKey)),
	)
	return converter, closeFn, nil
}

// convertAmount replaces the converter's selection with base and targets,
// then refreshes rates and converts amount from the base.
func convertAmount(ctx context.Context, c *services.Converter, amount, base string, targets []string) (models.ConversionState, error) {
	if _, ok := models.ParseAmount(amount); !ok {
		return models.ConversionState{}, fmt.Errorf("%w: %q", errInvalidAmount, amount)
	}
	if len(targets) > models.MaxTargets {
		return models.ConversionState{}, services.ErrTargetLimit
	}

	for _, t := range c.State().Targets {
		if err := c.RemoveTarget(t.ID); err != nil {
			return models.ConversionState{}, err
		}
	}

	base = strings.ToUpper(base)
	if err := c.SetBaseCurrency(base); err != nil {
		return models.ConversionState{}, fmt.Errorf("%s: %w", base, err)
	}
	for _, code := range targets {
		code = strings.ToUpper(code)
		if _, err := c.AddTarget(code); err != nil {
			return models.ConversionState{}, fmt.Errorf("%s: %w", code, err)
		}
	}

	c.SetBaseAmount(amount)
	c.Refresh(ctx, models.BaseFocus)
	return c.State(), nil
}

// printState writes one line per target and a footer with the rates date.
// A target with no known rate prints a dash.
func printState(w io.Writer, state models.ConversionState, baseAmount string) {
	fmt.Fprintf(w, "%s %s\n", baseAmount, state.BaseCurrency)
	for _, t := range state.Targets {
		amount := t.Amount
		if amount == "" {
			amount = "-"
		}
		fmt.Fprintf(w, "  = %s %s\n", amount, t.Code)
	}
	printFooter(w, state)
}

func printFooter(w io.Writer, state models.ConversionState) {
	date := state.RatesDate
	if date == "" {
		date = "unknown"
	}
	if state.IsOfflineMode {
		fmt.Fprintf(w, "rates as of %s %s\n", date, offlineMarker.Sprint("(offline)"))
		return
	}
	fmt.Fprintf(w, "rates as of %s\n", date)
}
