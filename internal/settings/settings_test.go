package settings_test

import (
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/sbilibin2017/clicker/internal/settings"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	c := qt.New(t)

	s, err := settings.Load(filepath.Join(t.TempDir(), "settings.json"))

	c.Assert(err, qt.IsNil)
	c.Assert(s, qt.Equals, settings.Default())
	c.Assert(s.MusicVolume, qt.Equals, 0.5)
	c.Assert(s.SoundEffects, qt.IsTrue)
}

func TestSaveThenLoad(t *testing.T) {
	c := qt.New(t)
	path := filepath.Join(t.TempDir(), "settings.json")

	want := settings.Settings{MusicVolume: 0.8, SoundEffects: false}
	c.Assert(settings.Save(path, want), qt.IsNil)

	got, err := settings.Load(path)
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, want)

	// Saving again overwrites the file.
	want.MusicVolume = 0.1
	c.Assert(settings.Save(path, want), qt.IsNil)
	got, err = settings.Load(path)
	c.Assert(err, qt.IsNil)
	c.Assert(got.MusicVolume, qt.Equals, 0.1)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	c := qt.New(t)
	path := filepath.Join(t.TempDir(), "settings.json")
	c.Assert(os.WriteFile(path, []byte(`{"sound_effects": false}`), 0o600), qt.IsNil)

	s, err := settings.Load(path)

	c.Assert(err, qt.IsNil)
	c.Assert(s.MusicVolume, qt.Equals, 0.5)
	c.Assert(s.SoundEffects, qt.IsFalse)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{name: "malformed json", content: `{"music_volume":`, errMsg: "read settings.*"},
		{name: "volume out of range", content: `{"music_volume": 3}`, errMsg: "invalid settings.*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)
			path := filepath.Join(t.TempDir(), "settings.json")
			c.Assert(os.WriteFile(path, []byte(tt.content), 0o600), qt.IsNil)

			_, err := settings.Load(path)
			c.Assert(err, qt.ErrorMatches, tt.errMsg)
		})
	}
}

func TestSave_RejectsInvalid(t *testing.T) {
	c := qt.New(t)
	path := filepath.Join(t.TempDir(), "settings.json")

	err := settings.Save(path, settings.Settings{MusicVolume: -0.1})

	c.Assert(err, qt.ErrorMatches, "invalid settings.*")
	_, statErr := os.Stat(path)
	c.Assert(os.IsNotExist(statErr), qt.IsTrue)
}
