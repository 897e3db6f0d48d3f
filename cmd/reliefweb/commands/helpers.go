package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/reliefweb-go/reliefweb/pkg/reliefweb"
	"github.com/reliefweb-go/reliefweb/pkg/rwclient"
)

// Static errors for flag parsing.
var (
	ErrAppNameNotSet    = errors.New("appname is required: set --appname, RW_APPNAME, or the config file")
	ErrInvalidFilter    = errors.New("invalid filter, expected field=value")
	ErrInvalidSort      = errors.New("invalid sort, expected field:asc or field:desc")
	ErrInvalidOperator  = errors.New("invalid operator, expected AND or OR")
	ErrInvalidProfile   = errors.New("invalid profile, expected minimal, full, or list")
	ErrInvalidPreset    = errors.New("invalid preset, expected minimal, latest, or analysis")
	ErrUnknownOutputFmt = errors.New("unknown output format, expected table, json, or yaml")
)

// CreateClient builds the API client from viper configuration.
func CreateClient() (reliefweb.Client, error) {
	appName := viper.GetString("appname")
	if appName == "" {
		return nil, ErrAppNameNotSet
	}

	config := &reliefweb.Config{
		Host:    viper.GetString("host"),
		AppName: appName,
		Version: reliefweb.APIVersion(viper.GetString("api-version")),
		Debug:   viper.GetBool("debug"),
	}

	if config.Debug {
		config.Logger = newZerologAdapter()
	}

	return rwclient.New(config)
}

// zerologAdapter exposes a zerolog.Logger through the reliefweb.Logger
// interface.
type zerologAdapter struct {
	logger zerolog.Logger
}

func newZerologAdapter() *zerologAdapter {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.DebugLevel).
		With().Timestamp().Logger()

	return &zerologAdapter{logger: logger}
}

func (z *zerologAdapter) Debug(msg string, fields map[string]interface{}) {
	z.logger.Debug().Fields(fields).Msg(msg)
}

func (z *zerologAdapter) Info(msg string, fields map[string]interface{}) {
	z.logger.Info().Fields(fields).Msg(msg)
}

func (z *zerologAdapter) Warn(msg string, fields map[string]interface{}) {
	z.logger.Warn().Fields(fields).Msg(msg)
}

func (z *zerologAdapter) Error(msg string, fields map[string]interface{}) {
	z.logger.Error().Fields(fields).Msg(msg)
}

// parseFilter turns "field=value" into a Filter. A leading "!" negates the
// condition: "!status=expired" keeps everything except expired records.
func parseFilter(raw string, operator reliefweb.Operator) (reliefweb.Filter, error) {
	negate := strings.HasPrefix(raw, "!")
	raw = strings.TrimPrefix(raw, "!")

	field, value, found := strings.Cut(raw, "=")
	if !found || field == "" {
		return reliefweb.Filter{}, fmt.Errorf("%w: %q", ErrInvalidFilter, raw)
	}

	return reliefweb.Filter{
		Field:    field,
		Value:    value,
		Operator: operator,
		Negate:   negate,
	}, nil
}

// parseSort turns "field:desc" into a SortDescriptor. Direction defaults to
// ascending when omitted.
func parseSort(raw string) (reliefweb.SortDescriptor, error) {
	field, direction, found := strings.Cut(raw, ":")
	if field == "" {
		return reliefweb.SortDescriptor{}, fmt.Errorf("%w: %q", ErrInvalidSort, raw)
	}

	if !found || direction == "" {
		return reliefweb.SortDescriptor{Field: field, Direction: reliefweb.SortAsc}, nil
	}

	switch reliefweb.SortDirection(direction) {
	case reliefweb.SortAsc, reliefweb.SortDesc:
		return reliefweb.SortDescriptor{
			Field:     field,
			Direction: reliefweb.SortDirection(direction),
		}, nil
	default:
		return reliefweb.SortDescriptor{}, fmt.Errorf("%w: %q", ErrInvalidSort, raw)
	}
}

// parseOperator validates an AND/OR flag value. Empty is allowed and means
// "let the API default apply".
func parseOperator(raw string) (reliefweb.Operator, error) {
	switch strings.ToUpper(raw) {
	case "":
		return "", nil
	case string(reliefweb.OperatorAnd):
		return reliefweb.OperatorAnd, nil
	case string(reliefweb.OperatorOr):
		return reliefweb.OperatorOr, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidOperator, raw)
	}
}

// parseProfile validates a profile flag value. Empty means unset.
func parseProfile(raw string) (reliefweb.Profile, error) {
	switch reliefweb.Profile(raw) {
	case "", reliefweb.ProfileMinimal, reliefweb.ProfileFull, reliefweb.ProfileList:
		return reliefweb.Profile(raw), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidProfile, raw)
	}
}

// parsePreset validates a preset flag value. Empty means unset.
func parsePreset(raw string) (reliefweb.Preset, error) {
	switch reliefweb.Preset(raw) {
	case "", reliefweb.PresetMinimal, reliefweb.PresetLatest, reliefweb.PresetAnalysis:
		return reliefweb.Preset(raw), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPreset, raw)
	}
}

// deref renders an optional string for table output.
func deref(value *string) string {
	if value == nil {
		return ""
	}

	return *value
}

// derefInt renders an optional count for summary lines.
func derefInt(value *int) string {
	if value == nil {
		return "unknown"
	}

	return fmt.Sprintf("%d", *value)
}
