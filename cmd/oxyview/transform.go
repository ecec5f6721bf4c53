package main

import (
	"fmt"
	"log"

	"github.com/Carmen-Shannon/oxy-view/engine/camera"
	"github.com/spf13/cobra"
)

func newTransformCommand(f *viewerFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "transform",
		Short: "Print the camera pose for the given rig settings",
		Long:  "Build a rig from the flags without opening a window and print the composed position, orientation and forward direction.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(cmd, f)
		},
	}
}

func runTransform(cmd *cobra.Command, f *viewerFlags) error {
	logger := log.New(cmd.ErrOrStderr(), "", 0)

	options, err := f.rigOptions(cmd, logger)
	if err != nil {
		return err
	}
	t := camera.NewRig(options...).Transform()

	p, q, fwd := t.Position, t.Orientation, t.Forward()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Position:    (%s, %s, %s)\n", component(p[0]), component(p[1]), component(p[2]))
	fmt.Fprintf(out, "Orientation: (w=%s, x=%s, y=%s, z=%s)\n", component(q.W), component(q.V[0]), component(q.V[1]), component(q.V[2]))
	fmt.Fprintf(out, "Forward:     (%s, %s, %s)\n", component(fwd[0]), component(fwd[1]), component(fwd[2]))
	return nil
}

// component formats v to four decimals, printing values that round to zero without a sign.
func component(v float32) string {
	s := fmt.Sprintf("%.4f", v)
	if s == "-0.0000" {
		return "0.0000"
	}
	return s
}
