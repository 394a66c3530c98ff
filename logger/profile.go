package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/philipp01105/sinklog/formatter"
	"github.com/philipp01105/sinklog/handler"
)

// StyleMode selects when console lines are colored
type StyleMode string

const (
	// StyleAuto colors the console only when it is a terminal and NO_COLOR is unset
	StyleAuto StyleMode = "auto"
	// StyleAlways always colors the console
	StyleAlways StyleMode = "always"
	// StyleNever never colors the console
	StyleNever StyleMode = "never"
)

// DefaultEnvVar is the environment variable read for a level override
const DefaultEnvVar = "SINKLOG_LEVEL"

// Profile holds the settings fixed at installation time
type Profile struct {
	// Stream is the console stream, "stdout" or "stderr".
	// Default: "stderr"
	Stream handler.Stream `yaml:"stream" validate:"omitempty,oneof=stdout stderr"`
	// Style controls ANSI styling of console lines.
	// Default: "auto"
	Style StyleMode `yaml:"style" validate:"omitempty,oneof=auto always never"`
	// Timestamps prefixes lines with an RFC3339 microsecond timestamp.
	// Default: true
	Timestamps bool `yaml:"timestamps"`
	// UTC renders timestamps in UTC rather than local time.
	// Default: true
	UTC bool `yaml:"utc"`
	// EnvOverride reads the initial level from EnvVar at installation.
	// Default: true
	EnvOverride bool `yaml:"env_override"`
	// EnvVar names the override variable.
	// Default: "SINKLOG_LEVEL"
	EnvVar string `yaml:"env_var" validate:"required_if=EnvOverride true"`
	// BridgeSlog routes slog.Default (and the standard log package) to the
	// logger once it is installed.
	// Default: true
	BridgeSlog bool `yaml:"bridge_slog"`
	// Writer replaces Stream as the console destination when set
	Writer io.Writer `yaml:"-" validate:"-"`
}

// DefaultProfile returns the profile used when SetProfile is never called
func DefaultProfile() Profile {
	return Profile{
		Stream:      handler.Stderr,
		Style:       StyleAuto,
		Timestamps:  true,
		UTC:         true,
		EnvOverride: true,
		EnvVar:      DefaultEnvVar,
		BridgeSlog:  true,
	}
}

// applyProfileDefaults fills in zero-value fields with defaults.
func applyProfileDefaults(p *Profile) {
	if p.Stream == "" {
		p.Stream = handler.Stderr
	}
	if p.Style == "" {
		p.Style = StyleAuto
	}
	if p.EnvVar == "" {
		p.EnvVar = DefaultEnvVar
	}
}

var validate = validator.New()

// Validate checks the profile's enumerated fields
func (p Profile) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}
	return nil
}

// LoadProfile reads a YAML profile. Keys absent from the file keep their
// DefaultProfile values.
func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to read profile %s: %w", path, err)
	}
	return ParseProfile(data)
}

// ParseProfile decodes a YAML profile on top of DefaultProfile
func ParseProfile(data []byte) (Profile, error) {
	p := DefaultProfile()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("failed to parse profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	applyProfileDefaults(&p)
	return p, nil
}

// consoleWriter returns the console destination
func (p Profile) consoleWriter() io.Writer {
	if p.Writer != nil {
		return p.Writer
	}
	return p.Stream.Writer()
}

// palette resolves Style against the console destination
func (p Profile) palette() formatter.Palette {
	switch p.Style {
	case StyleAlways:
		return formatter.ANSI{}
	case StyleNever:
		return formatter.Plain{}
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return formatter.Plain{}
	}
	if f, ok := p.consoleWriter().(*os.File); ok {
		if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
			return formatter.ANSI{}
		}
	}
	return formatter.Plain{}
}

// clock resolves Timestamps and UTC
func (p Profile) clock() formatter.Clock {
	if !p.Timestamps {
		return formatter.NoClock{}
	}
	return formatter.RFC3339Micros{UTC: p.UTC}
}
