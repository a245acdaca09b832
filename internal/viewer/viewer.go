// Package viewer ties the scene, preferences and render pass together and exposes them
// as terminal commands. It has no raylib dependency; the host supplies a render.Target.
package viewer

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"wireframe/internal/camera"
	"wireframe/internal/commands"
	"wireframe/internal/engineconfig"
	"wireframe/internal/logger"
	"wireframe/internal/primitives"
	"wireframe/internal/render"
	"wireframe/internal/scene"
)

// Viewer owns everything one frame needs. Frame is called once per host frame; commands
// mutate the scene and preferences between frames.
type Viewer struct {
	Log       *logger.Logger
	Prefs     engineconfig.EnginePrefs
	PrefsPath string
	Scene     *scene.Scene

	cam       *camera.PerspectiveCamera
	pass      *render.Pass
	material  *render.Material
	lastLines int
}

// New returns a Viewer drawing scn with the camera and line colour from prefs.
// An unparsable line colour falls back to the default material and is logged.
func New(log *logger.Logger, prefs engineconfig.EnginePrefs, scn *scene.Scene) *Viewer {
	cam := prefs.Camera()
	v := &Viewer{
		Log:       log,
		Prefs:     prefs,
		PrefsPath: engineconfig.EngineConfigPath,
		Scene:     scn,
		cam:       cam,
		pass:      render.NewPass(cam, log),
		material:  render.DefaultMaterial(),
	}
	if c, ok := render.ParseColor(prefs.LineColor); ok {
		v.material.Color = c
	} else {
		log.Logf("line_color %q is not #RGB or #RRGGBB; using white", prefs.LineColor)
	}
	return v
}

// Material returns the bound material, or nil when drawing is disabled.
func (v *Viewer) Material() *render.Material {
	return v.material
}

// LastLines returns how many lines the previous Frame drew.
func (v *Viewer) LastLines() int {
	return v.lastLines
}

// Frame draws every enabled shape to target. A missing material skips the frame.
func (v *Viewer) Frame(target render.Target) error {
	n, err := v.pass.Draw(target, v.material, v.Scene.Enabled())
	v.lastLines = n
	return err
}

// DrawFrame runs Frame and logs any error other than a missing material, which the pass reports itself.
func (v *Viewer) DrawFrame(target render.Target) {
	if err := v.Frame(target); err != nil && !errors.Is(err, render.ErrMissingMaterial) {
		v.Log.Log(err.Error())
	}
}

// RegisterCommands adds the viewer's subcommands to reg:
//
//	shape <kind|all>          draw one kind, or every shape
//	segments <n>              subdivision of cylinders and spheres
//	scale <f>                 global length multiplier
//	material --on|--off       bind or unbind the line material
//	color <#hex>              line colour
//	camera [-z f] [-focal f]  move the camera or change its focal length
//	fps --show|--hide         FPS overlay
//	lines --show|--hide       line count overlay
//	save                      write scene and preferences
func (v *Viewer) RegisterCommands(reg *commands.Registry) {
	reg.Register("shape", nil, func(fs *flag.FlagSet) error {
		args := fs.Args()
		if len(args) != 1 {
			return fmt.Errorf("usage: shape <cube|pyramid|column|cylinder|sphere|all>")
		}
		if strings.EqualFold(args[0], "all") {
			v.Scene.EnableAll()
			return nil
		}
		kind, err := primitives.ParseKind(args[0])
		if err != nil {
			return err
		}
		if !v.Scene.Select(kind) {
			return fmt.Errorf("scene has no %s", kind)
		}
		return nil
	})

	reg.Register("segments", nil, func(fs *flag.FlagSet) error {
		args := fs.Args()
		if len(args) != 1 {
			return fmt.Errorf("usage: segments <n>")
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("segments: %w", err)
		}
		if n < primitives.MinSegments {
			v.Log.Logf("segments %d is below %d; curved shapes use %d", n, primitives.MinSegments, primitives.MinSegments)
		}
		v.Scene.SetSegments(n)
		return nil
	})

	reg.Register("scale", nil, func(fs *flag.FlagSet) error {
		args := fs.Args()
		if len(args) != 1 {
			return fmt.Errorf("usage: scale <factor>")
		}
		f, err := strconv.ParseFloat(args[0], 32)
		if err != nil {
			return fmt.Errorf("scale: %w", err)
		}
		v.Scene.SetScale(float32(f))
		return nil
	})

	matFlags := commands.NewFlagSet("material")
	on := matFlags.Bool("on", false, "bind the line material")
	off := matFlags.Bool("off", false, "unbind the line material")
	reg.Register("material", matFlags, func(*flag.FlagSet) error {
		switch {
		case *on == *off:
			return fmt.Errorf("usage: material --on|--off")
		case *on:
			if v.material == nil {
				v.material = render.DefaultMaterial()
				if c, ok := render.ParseColor(v.Prefs.LineColor); ok {
					v.material.Color = c
				}
			}
		default:
			v.material = nil
		}
		return nil
	})

	reg.Register("color", nil, func(fs *flag.FlagSet) error {
		args := fs.Args()
		if len(args) != 1 {
			return fmt.Errorf("usage: color <#RGB|#RRGGBB>")
		}
		c, ok := render.ParseColor(args[0])
		if !ok {
			return fmt.Errorf("color: %q is not #RGB or #RRGGBB", args[0])
		}
		v.Prefs.LineColor = args[0]
		if v.material != nil {
			v.material.Color = c
		}
		return nil
	})

	camFlags := commands.NewFlagSet("camera")
	camZ := camFlags.Float64("z", 0, "camera position on the Z axis")
	focal := camFlags.Float64("focal", 0, "focal length")
	reg.Register("camera", camFlags, func(fs *flag.FlagSet) error {
		fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "z":
				v.cam.Position = float32(*camZ)
				v.Prefs.CameraZ = v.cam.Position
			case "focal":
				v.cam.FocalLength = float32(*focal)
				v.Prefs.FocalLength = v.cam.FocalLength
			}
		})
		return nil
	})

	registerToggle(reg, "fps", func(show bool) { v.Prefs.ShowFPS = show })
	registerToggle(reg, "lines", func(show bool) { v.Prefs.ShowLineCount = show })

	reg.Register("save", nil, func(*flag.FlagSet) error {
		if err := v.Scene.Save(v.Prefs.ScenePath); err != nil {
			return err
		}
		if err := engineconfig.SaveTo(v.PrefsPath, v.Prefs); err != nil {
			return fmt.Errorf("save prefs: %w", err)
		}
		v.Log.Logf("saved %s and %s", v.Prefs.ScenePath, v.PrefsPath)
		return nil
	})
}

// registerToggle adds a "name --show|--hide" command that calls set with the chosen state.
func registerToggle(reg *commands.Registry, name string, set func(show bool)) {
	fs := commands.NewFlagSet(name)
	show := fs.Bool("show", false, "show the overlay")
	hide := fs.Bool("hide", false, "hide the overlay")
	reg.Register(name, fs, func(*flag.FlagSet) error {
		if *show == *hide {
			return fmt.Errorf("usage: %s --show|--hide", name)
		}
		set(*show)
		return nil
	})
}
