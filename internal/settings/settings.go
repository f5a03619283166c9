// Package settings loads and stores the terminal client's preferences file.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// DefaultPath is the preferences file used when none is given.
const DefaultPath = "settings.json"

const (
	keyMusicVolume  = "music_volume"
	keySoundEffects = "sound_effects"
)

// Settings holds the client preferences.
type Settings struct {
	MusicVolume  float64 `mapstructure:"music_volume" validate:"gte=0,lte=1"`
	SoundEffects bool    `mapstructure:"sound_effects"`
}

var validate = validator.New()

// Default returns the preferences used when no file exists.
func Default() Settings {
	return Settings{MusicVolume: 0.5, SoundEffects: true}
}

// Validate checks value ranges.
func (s Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}

func newViper(path string) *viper.Viper {
	d := Default()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.SetDefault(keyMusicVolume, d.MusicVolume)
	v.SetDefault(keySoundEffects, d.SoundEffects)
	return v
}

// Load reads the preferences at path. A missing file yields Default; keys
// absent from the file keep their default values.
func Load(path string) (Settings, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}

	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		return Settings{}, fmt.Errorf("read settings %s: %w", path, err)
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decode settings %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Save writes s to path, replacing any existing file.
func Save(path string, s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}

	v := newViper(path)
	v.Set(keyMusicVolume, s.MusicVolume)
	v.Set(keySoundEffects, s.SoundEffects)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write settings %s: %w", path, err)
	}
	return nil
}
