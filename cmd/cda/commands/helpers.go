package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/cda/internal/constants"
	"github.com/fivetwenty-io/cda/pkg/cda"
	"github.com/fivetwenty-io/cda/pkg/cdaclient"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	NotAvailable = "N/A"
)

// CreateClient creates a Delivery API client from the resolved viper
// configuration (flags, environment, config file).
func CreateClient() (cda.Client, error) {
	spaceID := viper.GetString("space")
	if spaceID == "" {
		return nil, constants.ErrNoSpaceConfigured
	}

	token := viper.GetString("token")
	if token == "" {
		return nil, constants.ErrNoTokenConfigured
	}

	config := &cda.Config{
		SpaceID:  spaceID,
		Token:    token,
		Endpoint: viper.GetString("api"),
		Preview:  viper.GetBool("preview"),
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = &stderrLogger{}
	}

	return cdaclient.New(config)
}

// renderStructured writes value as JSON or YAML and reports whether the
// requested output format was one of the two. Table rendering stays with the
// caller.
func renderStructured(value any) (bool, error) {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		return true, encoder.Encode(value)
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		return true, encoder.Encode(value)
	default:
		return false, nil
	}
}

// stderrLogger writes debug output to stderr for --verbose runs.
type stderrLogger struct{}

func (l *stderrLogger) Debug(msg string, fields map[string]interface{}) { l.log("DEBUG", msg, fields) }
func (l *stderrLogger) Info(msg string, fields map[string]interface{})  { l.log("INFO", msg, fields) }
func (l *stderrLogger) Warn(msg string, fields map[string]interface{})  { l.log("WARN", msg, fields) }
func (l *stderrLogger) Error(msg string, fields map[string]interface{}) { l.log("ERROR", msg, fields) }

func (l *stderrLogger) log(level, msg string, fields map[string]interface{}) {
	fmt.Fprintf(os.Stderr, "[%s] %s", level, msg)

	for key, value := range fields {
		fmt.Fprintf(os.Stderr, " %s=%v", key, value)
	}

	fmt.Fprintln(os.Stderr)
}
