package petal

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// TweenConfig is one transition in configuration form. An empty Ease means
// the animation default.
type TweenConfig struct {
	Duration float32 `mapstructure:"duration" yaml:"duration"`
	Ease     string  `mapstructure:"ease" yaml:"ease,omitempty"`
}

// AnimationConfig configures DefaultAnimation. Per-phase entries with a zero
// duration fall back to the top-level duration.
type AnimationConfig struct {
	Duration float32     `mapstructure:"duration" yaml:"duration"`
	Ease     string      `mapstructure:"ease" yaml:"ease"`
	Enter    TweenConfig `mapstructure:"enter" yaml:"enter"`
	Leave    TweenConfig `mapstructure:"leave" yaml:"leave"`
	Press    TweenConfig `mapstructure:"press" yaml:"press"`
	Release  TweenConfig `mapstructure:"release" yaml:"release"`
	Cancel   TweenConfig `mapstructure:"cancel" yaml:"cancel"`
	Disable  TweenConfig `mapstructure:"disable" yaml:"disable"`
}

// Config holds the package-wide settings.
type Config struct {
	LogLevel        string          `mapstructure:"log_level" yaml:"log_level"`
	LogFormat       string          `mapstructure:"log_format" yaml:"log_format"`
	Debug           bool            `mapstructure:"debug" yaml:"debug"`
	WarnOnOverwrite bool            `mapstructure:"warn_on_overwrite" yaml:"warn_on_overwrite"`
	AssetRoot       string          `mapstructure:"asset_root" yaml:"asset_root"`
	Animation       AnimationConfig `mapstructure:"animation" yaml:"animation"`
}

// EnvPrefix prefixes environment overrides: PETAL_LOG_LEVEL,
// PETAL_ANIMATION_DURATION and so on.
const EnvPrefix = "PETAL"

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		LogLevel:        "warn",
		LogFormat:       "text",
		WarnOnOverwrite: true,
		AssetRoot:       ".",
		Animation: AnimationConfig{
			Duration: 0.15,
			Ease:     "out_quad",
		},
	}
}

var easeByName = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"in_quad":      ease.InQuad,
	"out_quad":     ease.OutQuad,
	"in_out_quad":  ease.InOutQuad,
	"in_cubic":     ease.InCubic,
	"out_cubic":    ease.OutCubic,
	"in_out_cubic": ease.InOutCubic,
	"in_sine":      ease.InSine,
	"out_sine":     ease.OutSine,
	"in_out_sine":  ease.InOutSine,
	"out_back":     ease.OutBack,
	"out_bounce":   ease.OutBounce,
	"out_elastic":  ease.OutElastic,
}

// EaseNames lists the easing names accepted in configuration.
func EaseNames() []string {
	names := lo.Keys(easeByName)
	sort.Strings(names)
	return names
}

// LookupEase returns the easing function for name.
func LookupEase(name string) (ease.TweenFunc, bool) {
	fn, ok := easeByName[strings.ToLower(strings.TrimSpace(name))]
	return fn, ok
}

func configKeys() map[string]any {
	def := DefaultConfig()
	keys := map[string]any{
		"log_level":          def.LogLevel,
		"log_format":         def.LogFormat,
		"debug":              def.Debug,
		"warn_on_overwrite":  def.WarnOnOverwrite,
		"asset_root":         def.AssetRoot,
		"animation.duration": def.Animation.Duration,
		"animation.ease":     def.Animation.Ease,
	}
	for _, phase := range []string{"enter", "leave", "press", "release", "cancel", "disable"} {
		keys["animation."+phase+".duration"] = float32(0)
		keys["animation."+phase+".ease"] = ""
	}
	return keys
}

// LoadConfig reads a YAML config from fs. A missing file yields the
// defaults; environment variables prefixed with PETAL_ override both.
func LoadConfig(fs afero.Fs, path string) (Config, error) {
	v := viper.New()
	v.SetFs(fs)
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for key, value := range configKeys() {
		v.SetDefault(key, value)
		if err := v.BindEnv(key); err != nil {
			return Config{}, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	exists, err := afero.Exists(fs, path)
	if err != nil {
		return Config{}, fmt.Errorf("stat config %s: %w", path, err)
	}
	if exists {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// WriteDefaultConfig writes DefaultConfig as YAML to path.
func WriteDefaultConfig(fs afero.Fs, path string) error {
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshal default config: %w", err)
	}
	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// Validate checks level, format, durations and easing names.
func (c Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if !lo.Contains([]string{"text", "json"}, c.LogFormat) {
		return fmt.Errorf("log_format: unknown format %q", c.LogFormat)
	}
	a := c.Animation
	if a.Duration < 0 {
		return fmt.Errorf("animation.duration: negative duration %v", a.Duration)
	}
	if a.Ease != "" {
		if _, ok := LookupEase(a.Ease); !ok {
			return fmt.Errorf("animation.ease: unknown easing %q", a.Ease)
		}
	}
	for _, p := range []struct {
		name  string
		tween TweenConfig
	}{
		{"enter", a.Enter},
		{"leave", a.Leave},
		{"press", a.Press},
		{"release", a.Release},
		{"cancel", a.Cancel},
		{"disable", a.Disable},
	} {
		if p.tween.Duration < 0 {
			return fmt.Errorf("animation.%s.duration: negative duration %v", p.name, p.tween.Duration)
		}
		if p.tween.Ease == "" {
			continue
		}
		if _, ok := LookupEase(p.tween.Ease); !ok {
			return fmt.Errorf("animation.%s.ease: unknown easing %q", p.name, p.tween.Ease)
		}
	}
	return nil
}

// AnimationSettings converts the animation section into settings usable
// with StyleBuilder.Animated.
func (c Config) AnimationSettings() AnimationSettings {
	a := c.Animation
	def, _ := LookupEase(a.Ease)
	tween := func(t TweenConfig) PhaseTween {
		if t.Duration <= 0 {
			return PhaseTween{}
		}
		fn, ok := LookupEase(t.Ease)
		if !ok {
			fn = def
		}
		return PhaseTween{Duration: t.Duration, Ease: fn}
	}
	return AnimationSettings{
		Default: PhaseTween{Duration: a.Duration, Ease: def},
		Enter:   tween(a.Enter),
		Leave:   tween(a.Leave),
		Press:   tween(a.Press),
		Release: tween(a.Release),
		Cancel:  tween(a.Cancel),
		Disable: tween(a.Disable),
	}
}

// Apply installs the logger level and format, the overwrite warning flag
// and the default animation settings. Debug turns on node debug checks;
// per-update stats still need Scene.SetDebugMode. The logger is
// reconfigured in place only when it is a *logrus.Logger.
func (c Config) Apply() {
	warnOnOverwrite = c.WarnOnOverwrite
	globalDebug = c.Debug
	defaultAnimation = c.AnimationSettings()
	l, ok := logger.(*logrus.Logger)
	if !ok {
		return
	}
	if lvl, err := logrus.ParseLevel(c.LogLevel); err == nil {
		l.SetLevel(lvl)
	}
	if c.LogFormat == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
}

// NewAssetServer returns an asset server reading from fs under AssetRoot.
func (c Config) NewAssetServer(fs afero.Fs) *AssetServer {
	return NewAssetServer(fs, c.AssetRoot)
}

// DefaultAnimation returns the animation settings of the last applied
// Config, or of DefaultConfig if none was applied.
func DefaultAnimation() AnimationSettings {
	return defaultAnimation
}

var defaultAnimation = DefaultConfig().AnimationSettings()
