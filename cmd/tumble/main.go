// tumble - Spinning mesh renderer for the terminal
// Renders an OBJ or GLB mesh tumbling about two axes with flat shading,
// back-face culling and painter's-algorithm ordering.
//
// Controls:
//
//	?           - Toggle HUD overlay (FPS, filename, triangle counts)
//	q / Esc     - Quit
package main

import (
	"context"
	"fmt"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

func main() {
	opts := defaultOptions()
	cmd := &cobra.Command{
		Use:   "tumble [model.obj|model.glb]",
		Short: "Render a tumbling 3D mesh in the terminal",
		Long: "tumble rotates a triangle mesh about Z and, at half speed, about X,\n" +
			"culls back faces, shades each face by a single light and paints\n" +
			"the result back to front. Without a model it shows a unit cube.",
		Example: "  tumble\n" +
			"  tumble --mode wireframe teapot.obj\n" +
			"  tumble --fit 1.5 --snapshot frame.png --time 2 model.glb",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.modelPath = args[0]
			}
			opts.sizeSet = cmd.Flags().Changed("width") || cmd.Flags().Changed("height")
			return run(cmd.Context(), opts)
		},
	}
	opts.bind(cmd.Flags())

	if err := fang.Execute(context.Background(), cmd,
		fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM),
	); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, opts *options) error {
	closeLog, err := setupLogging(opts.logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := opts.config()
	if err != nil {
		return err
	}
	mesh, err := loadMesh(opts.modelPath, opts.fit)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}

	if opts.snapshot != "" {
		return snapshot(mesh, cfg, opts.snapshot, opts.time, opts.background)
	}
	return view(ctx, mesh, cfg, opts)
}
