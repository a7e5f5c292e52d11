package petal

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanema/gween/ease"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(afero.NewMemMapFs(), "petal.yaml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigFromYAML(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "petal.yaml", []byte(`
log_level: debug
log_format: json
warn_on_overwrite: false
asset_root: assets/ui
animation:
  duration: 0.3
  ease: linear
  press:
    duration: 0.05
    ease: out_back
`), 0o644))

	cfg, err := LoadConfig(fs, "petal.yaml")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.False(t, cfg.WarnOnOverwrite)
	assert.Equal(t, "assets/ui", cfg.AssetRoot)
	assert.InDelta(t, 0.3, cfg.Animation.Duration, 1e-6)
	assert.Equal(t, "linear", cfg.Animation.Ease)
	assert.InDelta(t, 0.05, cfg.Animation.Press.Duration, 1e-6)
	assert.Equal(t, "out_back", cfg.Animation.Press.Ease)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "petal.yaml", []byte("log_level: info\n"), 0o644))
	t.Setenv("PETAL_LOG_LEVEL", "error")
	t.Setenv("PETAL_ANIMATION_DURATION", "0.5")

	cfg, err := LoadConfig(fs, "petal.yaml")
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.InDelta(t, 0.5, cfg.Animation.Duration, 1e-6)
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"level":    "log_level: loud\n",
		"format":   "log_format: xml\n",
		"ease":     "animation:\n  ease: wobbly\n",
		"duration": "animation:\n  duration: -1\n",
		"enter":    "animation:\n  enter:\n    duration: -0.1\n",
		"press":    "animation:\n  press:\n    duration: -2\n",
		"disable":  "animation:\n  disable:\n    duration: -1\n",
		"release":  "animation:\n  release:\n    ease: wobbly\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, "petal.yaml", []byte(body), 0o644))
			_, err := LoadConfig(fs, "petal.yaml")
			assert.Error(t, err)
		})
	}
}

func TestValidateNegativePhaseDurations(t *testing.T) {
	for _, set := range []func(a *AnimationConfig){
		func(a *AnimationConfig) { a.Enter.Duration = -1 },
		func(a *AnimationConfig) { a.Leave.Duration = -1 },
		func(a *AnimationConfig) { a.Press.Duration = -1 },
		func(a *AnimationConfig) { a.Release.Duration = -1 },
		func(a *AnimationConfig) { a.Cancel.Duration = -1 },
		func(a *AnimationConfig) { a.Disable.Duration = -1 },
	} {
		cfg := DefaultConfig()
		set(&cfg.Animation)
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "negative duration")
	}
	assert.NoError(t, DefaultConfig().Validate())
}

func TestConfigNewAssetServerUsesRoot(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AssetRoot = "ui"

	a := cfg.NewAssetServer(newTestFs(t))
	h := a.Load("icon.png")
	assert.Equal(t, 1, a.Poll())
	assert.Equal(t, AssetLoaded, a.State(h))
}

func TestWriteDefaultConfigRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, WriteDefaultConfig(fs, "out/petal.yaml"))

	cfg, err := LoadConfig(fs, "out/petal.yaml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfigAnimationSettings(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Animation.Duration = 1
	cfg.Animation.Ease = "linear"
	cfg.Animation.Press = TweenConfig{Duration: 0.25}
	cfg.Animation.Leave = TweenConfig{Duration: 0.5, Ease: "in_quad"}

	s := cfg.AnimationSettings()
	assert.Equal(t, float32(1), s.Default.Duration)
	assert.Equal(t, float32(0.25), s.Press.Duration)
	assert.InDelta(t, ease.Linear(0.5, 0, 1, 1), s.Press.Ease(0.5, 0, 1, 1), 1e-6)
	assert.InDelta(t, ease.InQuad(0.5, 0, 1, 1), s.Leave.Ease(0.5, 0, 1, 1), 1e-6)
	assert.Equal(t, PhaseTween{}, s.Enter)
}

func TestConfigApply(t *testing.T) {
	l := logrus.New()
	SetLogger(l)
	t.Cleanup(func() {
		SetLogger(nil)
		DefaultConfig().Apply()
	})

	cfg := DefaultConfig()
	cfg.LogLevel = "debug"
	cfg.LogFormat = "json"
	cfg.WarnOnOverwrite = false
	cfg.Animation.Duration = 2
	cfg.Apply()

	assert.Equal(t, logrus.DebugLevel, l.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, l.Formatter)
	assert.False(t, warnOnOverwrite)
	assert.Equal(t, float32(2), DefaultAnimation().Default.Duration)
}

func TestEaseNames(t *testing.T) {
	names := EaseNames()
	assert.Contains(t, names, "linear")
	assert.IsNonDecreasing(t, names)
	for _, n := range names {
		_, ok := LookupEase(n)
		assert.True(t, ok, n)
	}
	_, ok := LookupEase("  Out_Quad ")
	assert.True(t, ok)
}
