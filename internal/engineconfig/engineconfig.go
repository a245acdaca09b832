package engineconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"wireframe/internal/camera"
	"wireframe/internal/scene"
)

// EngineConfigPath is the path to the engine config file, relative to the process working directory.
const EngineConfigPath = "config/engine.json"

// EnginePrefs holds viewer preferences (overlays, camera, line colour, scene file). Persisted across runs.
// The shapes themselves live in the scene file.
type EnginePrefs struct {
	ShowFPS       bool    `json:"show_fps"`
	ShowLineCount bool    `json:"show_line_count"`
	PixelsPerUnit float32 `json:"pixels_per_unit"`
	CameraZ       float32 `json:"camera_z"`
	FocalLength   float32 `json:"focal_length"`
	LineColor     string  `json:"line_color"`
	ScenePath     string  `json:"scene_path"`
}

// Default returns default preferences: overlays off, camera five units in front of the origin, white lines.
func Default() EnginePrefs {
	return EnginePrefs{
		ShowFPS:       false,
		ShowLineCount: false,
		PixelsPerUnit: 150,
		CameraZ:       camera.DefaultPosition,
		FocalLength:   camera.DefaultFocalLength,
		LineColor:     "#ffffff",
		ScenePath:     scene.ScenePath,
	}
}

// Load reads preferences from EngineConfigPath. See LoadFrom.
func Load() (EnginePrefs, error) {
	return LoadFrom(EngineConfigPath)
}

// LoadFrom reads preferences from path. A missing file returns Default() and does not create one.
// Fields absent from the file keep their defaults; invalid JSON is an error.
func LoadFrom(path string) (EnginePrefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("engineconfig: %w", err)
	}
	p := Default()
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("engineconfig %s: %w", path, err)
	}
	return p, nil
}

// Save writes preferences to EngineConfigPath. See SaveTo.
func Save(p EnginePrefs) error {
	return SaveTo(EngineConfigPath, p)
}

// SaveTo writes preferences to path, creating the directory if needed.
func SaveTo(path string, p EnginePrefs) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Camera returns the perspective camera described by p.
func (p EnginePrefs) Camera() *camera.PerspectiveCamera {
	return &camera.PerspectiveCamera{Position: p.CameraZ, FocalLength: p.FocalLength}
}
