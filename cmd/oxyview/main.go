// oxyview - orbit camera viewer
//
// Opens a window and drives an orbit camera rig around a target from mouse and keyboard input.
//
// Controls:
//
//	Left drag   - Orbit (rotation / inclination)
//	Right drag  - Zoom (drag up to move away)
//	Arrows/WASD - Step rotation / inclination, held keys step twice as far
//	M           - Toggle orbit / free-fly mode
//	Space       - Start / stop the turntable spin
//	R           - Reset the view to its home pose
//	Esc         - Quit
package main

import (
	"fmt"
	"log"
	"math"
	"os"
	"runtime"

	"github.com/Carmen-Shannon/oxy-view/engine"
	"github.com/Carmen-Shannon/oxy-view/engine/camera"
	"github.com/Carmen-Shannon/oxy-view/engine/window"
	"github.com/spf13/cobra"
)

func init() {
	// GLFW must be driven from the main OS thread.
	runtime.LockOSThread()
}

// spinInclination is the starting pitch used when the viewer opens spinning.
const spinInclination = -math.Pi / 6

// viewerFlags holds every command-line setting shared by the root and transform commands.
type viewerFlags struct {
	width  int
	height int
	title  string

	target      []float32
	radius      float32
	baseRadius  float32
	inclination float32
	rotation    float32
	dragSpeed   float32
	keySpeed    float32
	mode        string

	fov      float32
	tickRate float64
	spin     bool
	profile  bool
	verbose  bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCommand builds the viewer command tree.
func newRootCommand() *cobra.Command {
	f := &viewerFlags{}

	cmd := &cobra.Command{
		Use:   "oxyview",
		Short: "Orbit camera viewer",
		Long: `oxyview - orbit camera viewer

Opens a window and orbits a camera around a target.

Controls:
  Left drag   - Orbit
  Right drag  - Zoom
  Arrows/WASD - Step rotation and inclination
  M           - Toggle orbit / free-fly
  Space       - Turntable spin
  R           - Reset view
  Esc         - Quit`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runViewer(cmd, f)
		},
	}

	cmd.Flags().IntVar(&f.width, "width", 1280, "Window width in pixels")
	cmd.Flags().IntVar(&f.height, "height", 720, "Window height in pixels")
	cmd.Flags().StringVar(&f.title, "title", "oxy-view", "Window title")
	cmd.Flags().Float32Var(&f.fov, "fov", 60, "Vertical field of view in degrees")
	cmd.Flags().Float64Var(&f.tickRate, "tick-rate", 60, "Engine ticks per second")
	cmd.Flags().BoolVar(&f.spin, "spin", false, "Start with a turntable spin")
	cmd.Flags().BoolVar(&f.profile, "profile", false, "Log tick rate, event rate and heap usage")

	pf := cmd.PersistentFlags()
	pf.Float32SliceVar(&f.target, "target", []float32{0, 0, 0}, "Orbit target as x,y,z")
	pf.Float32Var(&f.radius, "radius", 2, "Distance from the target")
	pf.Float32Var(&f.baseRadius, "base-radius", 2, "Radius a zoom gesture starts from")
	pf.Float32Var(&f.inclination, "inclination", 0, "Pitch in radians, clamped to [-pi/2, pi/2]")
	pf.Float32Var(&f.rotation, "rotation", 0, "Yaw in radians")
	pf.Float32Var(&f.dragSpeed, "drag-speed", 0.01, "Radians per pixel of drag")
	pf.Float32Var(&f.keySpeed, "key-speed", 0.01, "Radians per key press")
	pf.StringVar(&f.mode, "mode", "orbit", "Motion mode (orbit, freefly)")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "Log every published camera pose")

	cmd.AddCommand(newTransformCommand(f))
	return cmd
}

// rigOptions converts the flags into rig options. spin lowers the starting inclination unless
// one was given explicitly.
func (f *viewerFlags) rigOptions(cmd *cobra.Command, logger *log.Logger) ([]camera.RigOption, error) {
	mode, err := camera.ParseMotionMode(f.mode)
	if err != nil {
		return nil, fmt.Errorf("invalid --mode: %w", err)
	}
	if len(f.target) != 3 {
		return nil, fmt.Errorf("invalid --target: want 3 components, got %d", len(f.target))
	}

	inclination := f.inclination
	if f.spin && !cmd.Flags().Changed("inclination") {
		inclination = spinInclination
	}

	options := []camera.RigOption{
		camera.WithMode(mode),
		camera.WithTarget(f.target[0], f.target[1], f.target[2]),
		camera.WithInclination(inclination),
		camera.WithRotation(f.rotation),
		camera.WithRadius(f.radius),
		camera.WithBaseRadius(f.baseRadius),
		camera.WithDragSpeed(f.dragSpeed),
		camera.WithKeySpeed(f.keySpeed),
		camera.WithLogger(logger),
	}
	if f.verbose {
		options = append(options, camera.WithSink(camera.LogSink{Logger: logger}))
	}
	return options, nil
}

func runViewer(cmd *cobra.Command, f *viewerFlags) error {
	logger := log.New(cmd.ErrOrStderr(), "", log.LstdFlags)

	rigOptions, err := f.rigOptions(cmd, logger)
	if err != nil {
		return err
	}
	if f.fov <= 0 || f.fov >= 180 {
		return fmt.Errorf("invalid --fov %.1f: must be in (0, 180)", f.fov)
	}

	eng := engine.NewEngine(
		engine.WithLogger(logger),
		engine.WithProfiling(f.profile),
		engine.WithTickRate(f.tickRate),
		engine.WithRig(camera.NewRig(rigOptions...)),
		engine.WithCamera(camera.NewCamera(camera.WithFov(f.fov*math.Pi/180))),
		engine.WithWindow(window.NewWindow(
			window.WithTitle(f.title),
			window.WithWidth(f.width),
			window.WithHeight(f.height),
		)),
	)
	if f.spin {
		eng.Turntable().Start()
	}

	if err := eng.Run(); err != nil {
		return fmt.Errorf("run viewer: %w", err)
	}
	return nil
}
