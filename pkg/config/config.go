package config

import (
	_ "embed"
	"strings"

	"github.com/arthur-debert/themeup/pkg/errors"
	"github.com/arthur-debert/themeup/pkg/filesystem"
	"github.com/arthur-debert/themeup/pkg/logging"
	"github.com/arthur-debert/themeup/pkg/paths"
	"github.com/arthur-debert/themeup/pkg/value"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

//go:embed embedded/defaults.yaml
var defaultConfig []byte

// Environment variables read on top of config.yaml
const (
	EnvPrefix = "THEMEUP_"
	EnvTheme  = EnvPrefix + "THEME"
	EnvHooks  = EnvPrefix + "HOOKS"
)

// Keys accepted in overrides
const (
	KeyTheme = "theme"
	KeyHooks = "hooks"
)

// TemplateEntry is one item of the templates list
type TemplateEntry struct {
	Source string `koanf:"source" validate:"required"`
	Target string `koanf:"target" validate:"required"`
}

// Config is the merged configuration
type Config struct {
	Theme     string          `koanf:"theme"`
	Hooks     []string        `koanf:"hooks"`
	Templates []TemplateEntry `koanf:"templates" validate:"dive"`
	Variables value.Mapping   `koanf:"-"`
}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "not implemented")
}

// Load reads the config file at path with no command line overrides
func Load(fsys filesystem.FS, path string) (*Config, error) {
	return LoadWithOverrides(fsys, path, nil)
}

// LoadWithOverrides reads the config file at path and applies overrides
// (keyed by KeyTheme and KeyHooks) last.
func LoadWithOverrides(fsys filesystem.FS, path string, overrides map[string]interface{}) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, yaml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "could not load default config")
	}

	// 2. config.yaml
	variables, err := loadFile(k, fsys, path)
	if err != nil {
		return nil, err
	}

	// 3. Environment, ignoring empty values
	err = k.Load(env.ProviderWithValue(EnvPrefix, ".", func(key, val string) (string, interface{}) {
		if strings.TrimSpace(val) == "" {
			return "", nil
		}
		switch key {
		case EnvTheme:
			return KeyTheme, val
		case EnvHooks:
			return KeyHooks, val
		default:
			return "", nil
		}
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "could not read environment")
	}

	// 4. Command line
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "could not apply command line options")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigInvalid, "invalid config").WithDetail("path", path)
	}
	cfg.Variables = variables

	if err := validate(&cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigInvalid, "invalid config").WithDetail("path", path)
	}

	postProcess(&cfg)

	logger.Debug().
		Str("path", path).
		Str("theme", cfg.Theme).
		Int("templates", len(cfg.Templates)).
		Strs("hooks", cfg.Hooks).
		Int("variables", len(cfg.Variables)).
		Msg("loaded config")
	return &cfg, nil
}

// loadFile merges config.yaml into k and returns its variables block
func loadFile(k *koanf.Koanf, fsys filesystem.FS, path string) (value.Mapping, error) {
	logger := logging.GetLogger("config")

	contents, err := filesystem.ReadText(fsys, path)
	if err != nil {
		var readErr *filesystem.ReadError
		if errors.As(err, &readErr) && readErr.Kind == filesystem.ReadNotFound {
			logger.Debug().Str("path", path).Msg("no config file, using defaults")
			return value.Mapping{}, nil
		}
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "could not read config").WithDetail("path", path)
	}

	// The value parser reports locations and rejects duplicate keys.
	doc, err := value.Parse(contents)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "could not parse config").WithDetail("path", path)
	}

	var root value.Mapping
	switch doc := doc.(type) {
	case value.Null:
		return value.Mapping{}, nil
	case value.Mapping:
		root = doc
	default:
		return nil, errors.New(errors.ErrConfigInvalid, "invalid config (expected a mapping at the top level)").
			WithDetail("path", path)
	}

	if err := k.Load(&rawBytesProvider{bytes: []byte(contents)}, yaml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "could not parse config").WithDetail("path", path)
	}

	switch vars := root["variables"].(type) {
	case nil, value.Null:
		return value.Mapping{}, nil
	case value.Mapping:
		return vars, nil
	default:
		return nil, errors.New(errors.ErrConfigInvalid, "invalid config (variables must be a mapping)").
			WithDetail("path", path)
	}
}

func postProcess(cfg *Config) {
	for i := range cfg.Templates {
		cfg.Templates[i].Target = paths.ExpandHome(cfg.Templates[i].Target)
	}

	hooks := cfg.Hooks[:0]
	for _, h := range cfg.Hooks {
		if h = strings.TrimSpace(h); h != "" {
			hooks = append(hooks, h)
		}
	}
	cfg.Hooks = hooks
}
