package persistence

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mash-protocol/mash-av/pkg/model"
	"github.com/mash-protocol/mash-av/pkg/parcel"
)

func TestModelStore(t *testing.T) {
	t.Run("SaveAndLoad", func(t *testing.T) {
		dir := t.TempDir()
		store := NewModelStore(filepath.Join(dir, "nested", "audio.json"))
		fixed := time.Date(2026, 10, 14, 8, 0, 0, 0, time.UTC)
		store.now = func() time.Time { return fixed }

		state := &ModelState{ResourceType: model.OICTypeAudio, Parcel: []byte{1, 2, 3}}
		if err := store.Save(state); err != nil {
			t.Fatalf("Save() error = %v", err)
		}

		got, err := store.Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if got.Version != StateVersion {
			t.Errorf("Version = %d, want %d", got.Version, StateVersion)
		}
		if !got.SavedAt.Equal(fixed) {
			t.Errorf("SavedAt = %v, want %v", got.SavedAt, fixed)
		}
		if string(got.Parcel) != string([]byte{1, 2, 3}) {
			t.Errorf("Parcel = %v, want [1 2 3]", got.Parcel)
		}
	})

	t.Run("LoadNonExistent", func(t *testing.T) {
		store := NewModelStore(filepath.Join(t.TempDir(), "nonexistent.json"))

		got, err := store.Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		// Should return nil (empty state) for non-existent file
		if got != nil {
			t.Errorf("Load() = %v, want nil for non-existent file", got)
		}

		a := model.NewAudio()
		ok, err := store.LoadModel(model.OICTypeAudio, a)
		if ok || err != nil {
			t.Errorf("LoadModel() = %v, %v, want false, nil", ok, err)
		}
	})

	t.Run("ModelRoundTrip", func(t *testing.T) {
		store := NewModelStore(filepath.Join(t.TempDir(), "audio.json"))

		src := model.NewAudio()
		src.Name = "den"
		src.URI = "/ocf/audio/1"
		src.SetMute(true)
		src.SetVolume(-5)

		if err := store.SaveModel(model.OICTypeAudio, src.URI, src); err != nil {
			t.Fatalf("SaveModel() error = %v", err)
		}

		dst := model.NewAudio()
		ok, err := store.LoadModel(model.OICTypeAudio, dst)
		if err != nil || !ok {
			t.Fatalf("LoadModel() = %v, %v", ok, err)
		}
		if dst.String() != src.String() {
			t.Errorf("LoadModel() = %s, want %s", dst, src)
		}
	})

	t.Run("LoadModelWrongType", func(t *testing.T) {
		store := NewModelStore(filepath.Join(t.TempDir(), "switch.json"))
		if err := store.SaveModel(model.OICTypeBinarySwitch, "", model.NewBinarySwitch()); err != nil {
			t.Fatalf("SaveModel() error = %v", err)
		}

		if _, err := store.LoadModel(model.OICTypeAudio, model.NewAudio()); err == nil {
			t.Error("LoadModel() expected error for mismatched resource type")
		}
	})

	t.Run("LoadModelTruncated", func(t *testing.T) {
		store := NewModelStore(filepath.Join(t.TempDir(), "audio.json"))
		if err := store.Save(&ModelState{ResourceType: model.OICTypeAudio, Parcel: []byte{0, 0}}); err != nil {
			t.Fatalf("Save() error = %v", err)
		}

		_, err := store.LoadModel(model.OICTypeAudio, model.NewAudio())
		if !errors.Is(err, parcel.ErrTruncated) {
			t.Errorf("LoadModel() error = %v, want ErrTruncated", err)
		}
	})

	t.Run("NewerVersion", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "audio.json")
		if err := os.WriteFile(path, []byte(`{"version": 99, "rt": "oic.r.audio"}`), 0644); err != nil {
			t.Fatal(err)
		}

		_, err := NewModelStore(path).Load()
		if !errors.Is(err, ErrVersion) {
			t.Errorf("Load() error = %v, want ErrVersion", err)
		}
	})

	t.Run("Corrupt", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "audio.json")
		if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
			t.Fatal(err)
		}

		if _, err := NewModelStore(path).Load(); err == nil {
			t.Error("Load() expected error for corrupt file")
		}
	})

	t.Run("Clear", func(t *testing.T) {
		store := NewModelStore(filepath.Join(t.TempDir(), "audio.json"))
		if err := store.SaveModel(model.OICTypeAudio, "", model.NewAudio()); err != nil {
			t.Fatalf("SaveModel() error = %v", err)
		}
		if err := store.Clear(); err != nil {
			t.Fatalf("Clear() error = %v", err)
		}
		if err := store.Clear(); err != nil {
			t.Errorf("Clear() on missing file error = %v", err)
		}

		got, err := store.Load()
		if err != nil || got != nil {
			t.Errorf("Load() after Clear = %v, %v", got, err)
		}
	})
}
