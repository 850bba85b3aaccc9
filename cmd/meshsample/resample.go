package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/philipparndt/meshsample/internal/config"
	"github.com/philipparndt/meshsample/pkg/analysis"
	"github.com/philipparndt/meshsample/pkg/meshio"
	"github.com/philipparndt/meshsample/pkg/remesh"
	"github.com/philipparndt/meshsample/pkg/watcher"
	"github.com/philipparndt/meshsample/version"
	"github.com/spf13/cobra"
)

var (
	resampleConfig       string
	resampleTarget       int
	resampleSpacing      float64
	resampleTopFace      bool
	resampleCos          float64
	resampleAxis         []float64
	resampleSimplify     float64
	resampleSampler      string
	resampleJitter       float64
	resampleSeed         int64
	resampleWorkers      int
	resampleOut          string
	resampleName         string
	resampleSTL          bool
	resampleGeoJSON      bool
	resampleManifest     bool
	resampleWatch        bool
	resampleWatchDelay   time.Duration
	resampleSkipAnalysis bool
)

var resampleCmd = &cobra.Command{
	Use:   "resample [file]",
	Short: "Resample a mesh to an exact vertex count",
	Long: `Trace the boundary of the mesh, resample it at a fixed spacing, add
farthest point interior samples up to the target count and retriangulate.

Parameters come from the built-in defaults, then --config, then flags given
on the command line.`,
	Args: cobra.ExactArgs(1),
	Run:  runResample,
}

func init() {
	rootCmd.AddCommand(resampleCmd)

	defaults := config.Default()
	f := resampleCmd.Flags()
	f.StringVarP(&resampleConfig, "config", "c", "", "TOML parameter file")
	f.IntVarP(&resampleTarget, "target", "n", defaults.Target, "Exact number of output vertices")
	f.Float64VarP(&resampleSpacing, "spacing", "s", defaults.Spacing, "Boundary resampling distance")
	f.BoolVar(&resampleTopFace, "top-face", defaults.TopFace, "Isolate the faces pointing along --axis first (3D input)")
	f.Float64Var(&resampleCos, "cos", defaults.CosThreshold, "Cosine threshold of the top-face filter")
	f.Float64SliceVar(&resampleAxis, "axis", defaults.Axis[:], "Reference direction of the top-face filter; the face is flattened onto the plane orthogonal to it")
	f.Float64Var(&resampleSimplify, "simplify", defaults.Simplify, "Douglas-Peucker tolerance for the traced boundary (0 = off)")
	f.StringVar(&resampleSampler, "sampler", defaults.Sampler, "Interior candidate sampler: grid or poisson")
	f.Float64Var(&resampleJitter, "jitter", defaults.Jitter, "Grid jitter as a fraction of the cell size")
	f.Int64Var(&resampleSeed, "seed", defaults.Seed, "Random seed")
	f.IntVarP(&resampleWorkers, "workers", "j", defaults.Workers, "Goroutines for distance and containment tests")
	f.StringVarP(&resampleOut, "out", "o", defaults.Output.Dir, "Output directory")
	f.StringVar(&resampleName, "name", "", "Base name of the OBJ/STL/GeoJSON/manifest files (default: input name)")
	f.BoolVar(&resampleSTL, "stl", false, "Also write a binary STL file")
	f.BoolVar(&resampleGeoJSON, "geojson", false, "Also write the boundary chain and triangles as GeoJSON")
	f.BoolVar(&resampleManifest, "manifest", false, "Also write a TOML run manifest")
	f.BoolVarP(&resampleWatch, "watch", "w", false, "Re-run whenever the input (or a .scad dependency) changes")
	f.DurationVar(&resampleWatchDelay, "watch-delay", 300*time.Millisecond, "Debounce delay of --watch")
	f.BoolVar(&resampleSkipAnalysis, "no-analysis", false, "Do not print statistics of the output mesh")
}

// resolveParams applies defaults, then the config file, then explicitly set flags
func resolveParams(cmd *cobra.Command) (config.Params, error) {
	params := config.Default()
	if resampleConfig != "" {
		var err error
		if params, err = config.Load(resampleConfig); err != nil {
			return params, err
		}
	}

	changed := cmd.Flags().Changed
	if changed("target") {
		params.Target = resampleTarget
	}
	if changed("spacing") {
		params.Spacing = resampleSpacing
	}
	if changed("top-face") {
		params.TopFace = resampleTopFace
	}
	if changed("cos") {
		params.CosThreshold = resampleCos
	}
	if changed("axis") {
		if len(resampleAxis) != 3 {
			return params, fmt.Errorf("--axis needs three components, got %d", len(resampleAxis))
		}
		copy(params.Axis[:], resampleAxis)
	}
	if changed("simplify") {
		params.Simplify = resampleSimplify
	}
	if changed("sampler") {
		params.Sampler = resampleSampler
	}
	if changed("jitter") {
		params.Jitter = resampleJitter
	}
	if changed("seed") {
		params.Seed = resampleSeed
	}
	if changed("workers") {
		params.Workers = resampleWorkers
	}
	if changed("out") {
		params.Output.Dir = resampleOut
	}
	if changed("name") {
		params.Output.Name = resampleName
	}
	if changed("stl") {
		params.Output.STL = resampleSTL
	}
	if changed("geojson") {
		params.Output.GeoJSON = resampleGeoJSON
	}
	if changed("manifest") {
		params.Output.Manifest = resampleManifest
	}
	return params, params.Validate()
}

func runResample(cmd *cobra.Command, args []string) {
	filename := args[0]

	params, err := resolveParams(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error in parameters: %v\n", err)
		os.Exit(1)
	}
	logger := newLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := resampleFile(ctx, filename, params, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error resampling %s: %v\n", filename, err)
		if !resampleWatch {
			os.Exit(1)
		}
	}
	if !resampleWatch {
		return
	}

	if err := watchAndResample(ctx, filename, params, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error watching %s: %v\n", filename, err)
		os.Exit(1)
	}
}

// resampleFile runs the pipeline once and writes the selected artifacts
func resampleFile(ctx context.Context, filename string, params config.Params, logger *log.Logger) error {
	start := time.Now()

	input, err := meshio.Load(ctx, filename)
	if err != nil {
		return err
	}
	logger.Printf("loaded %s: %d vertices, %d triangles", filename, input.VertexCount(), input.TriangleCount())

	result, err := remesh.Resample(input, params.Options(logger))
	if err != nil {
		return err
	}

	manifest := meshio.NewManifest(filename, version.GetVersion())
	manifest.Params = params
	manifest.Boundary = meshio.ManifestBoundary{
		Kind:  result.Trace.Kind.String(),
		Loop:  len(result.Loop),
		Chain: result.ChainLen,
	}
	if result.Trace.Reason != nil {
		manifest.Boundary.Reason = result.Trace.Reason.Error()
	}
	manifest.Counts = meshio.ManifestCounts{
		InputVertices:     input.VertexCount(),
		InputTriangles:    input.TriangleCount(),
		FilteredTriangles: result.FilteredTriangles,
		Candidates:        result.Candidates,
		Requested:         result.Requested,
		Vertices:          len(result.Points),
		Triangles:         len(result.Triangles),
		Shortfall:         result.Shortfall,
	}

	out := params.MeshOutput()
	if out.Name == "" {
		out.Name = meshio.BaseName(filename)
	}
	written, err := meshio.WriteAll(out, result.Mesh, meshio.Artifacts{
		Boundary: result.Points[:result.ChainLen],
		Manifest: manifest,
	})
	if err != nil {
		return err
	}

	fmt.Println("Resample Summary")
	fmt.Println("================")
	fmt.Printf("Input: %s\n", filename)
	fmt.Printf("Boundary: %s (%d loop points, %d after resampling)\n", result.Trace.Kind, len(result.Loop), result.ChainLen)
	if result.Trace.Reason != nil {
		fmt.Printf("  Fallback reason: %v\n", result.Trace.Reason)
	}
	fmt.Printf("Interior candidates: %d\n", result.Candidates)
	fmt.Printf("Vertices: %d of %d requested\n", len(result.Points), result.Requested)
	fmt.Printf("Triangles: %d\n", len(result.Triangles))
	fmt.Printf("Elapsed: %s\n", time.Since(start).Round(time.Millisecond))
	fmt.Println("\nWritten:")
	for _, path := range written {
		fmt.Printf("  %s\n", path)
	}

	if !resampleSkipAnalysis {
		printMeshStatistics(analysis.AnalyzeMesh(result.Mesh))
	}
	return nil
}

func watchAndResample(ctx context.Context, filename string, params config.Params, logger *log.Logger) error {
	files, err := meshio.WatchList(filename)
	if err != nil {
		return err
	}

	fw, err := watcher.NewFileWatcher(resampleWatchDelay, logger)
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := fw.Watch(files); err != nil {
		return err
	}
	logger.Printf("watching %d file(s), press Ctrl+C to stop", len(files))

	return fw.Run(ctx, func(changed string) {
		logger.Printf("%s changed, resampling", changed)
		if err := resampleFile(ctx, filename, params, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error resampling %s: %v\n", filename, err)
		}
		// dependencies of .scad files can change with the edit
		if files, err := meshio.WatchList(filename); err == nil {
			if err := fw.Watch(files); err != nil {
				logger.Printf("watch: %v", err)
			}
		}
	})
}
