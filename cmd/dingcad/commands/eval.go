package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/itchyny/gojq"
	"github.com/spf13/cobra"

	"github.com/yacineMTB/dingcad-sub001/pkg/scene"
	"github.com/yacineMTB/dingcad-sub001/pkg/scene/source"
	"github.com/yacineMTB/dingcad-sub001/pkg/solid"
	"github.com/yacineMTB/dingcad-sub001/pkg/solid/meshio"
)

var evalCmd = &cobra.Command{
	Use:   "eval <scene.lua>",
	Short: "Evaluate a scene script",
	Long: `Evaluate a scene script in a fresh context and report the result.

The script runs isolated: nothing carries over between evaluations. Module
imports resolve against the configured roots (in order), then the library.

Examples:
  dingcad eval scene.lua
  dingcad eval scene.lua --root ./lib --out model.stl
  dingcad eval scene.lua --query '.boundingBox.max'`,
	Args: cobra.ExactArgs(1),
	RunE: runEval,
}

var (
	evalOut     string
	evalQuery   string
	evalRoots   []string
	evalMeshDir string
)

func init() {
	evalCmd.Flags().StringVar(&evalOut, "out", "", "write the scene mesh to this path (.stl or .msgpack)")
	evalCmd.Flags().StringVar(&evalQuery, "query", "", "print evaluation stats filtered by a jq expression")
	evalCmd.Flags().StringArrayVar(&evalRoots, "root", nil, "extra module root directory (repeatable, searched before config roots)")
	evalCmd.Flags().StringVar(&evalMeshDir, "mesh-dir", "", "directory loadMesh() reads from (overrides config)")

	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	scriptPath := args[0]
	cfg, err := getConfig()
	if err != nil {
		return err
	}

	src, err := os.ReadFile(scriptPath)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	chain, closeLib, err := buildSources(append(evalRoots, cfg.Roots...), cfg.Library)
	if err != nil {
		return err
	}
	defer closeLib()

	meshDir := evalMeshDir
	if meshDir == "" {
		meshDir = cfg.MeshDir
	}

	logger := slog.Default().With("eval", uuid.NewString(), "script", scriptPath)
	logger.Debug("evaluating scene")

	start := time.Now()
	s, err := scene.Load(src, filepath.Base(scriptPath),
		scene.WithSource(chain),
		scene.WithLogger(logger),
		scene.WithMeshDir(meshDir),
	)
	elapsed := time.Since(start)
	if err != nil {
		var d *scene.Diagnostic
		if errors.As(err, &d) && d.Trace != "" {
			fmt.Fprintln(os.Stderr, d.Trace)
		}
		return fmt.Errorf("eval %s: %w", scriptPath, err)
	}
	logger.Debug("scene evaluated", "elapsed", elapsed, "status", s.Status().String())

	if evalOut != "" {
		if err := writeMesh(evalOut, s); err != nil {
			return err
		}
	}

	stats := evalStats(s, elapsed)
	if evalQuery != "" {
		return printQuery(evalQuery, stats)
	}
	printSummary(scriptPath, s, stats)
	return nil
}

// buildSources assembles the module lookup chain: root directories in
// order, then the library when one exists on disk.
func buildSources(roots []string, library string) (source.Chain, func(), error) {
	var chain source.Chain
	for _, root := range roots {
		chain = append(chain, source.NewDir(root))
	}
	closeLib := func() {}
	if library != "" {
		if _, err := os.Stat(library); err == nil {
			lib, err := source.OpenBadger(source.BadgerOptions{Dir: library})
			if err != nil {
				return nil, nil, err
			}
			chain = append(chain, lib)
			closeLib = func() { lib.Close() }
		} else {
			slog.Debug("module library not found, skipping", "path", library)
		}
	}
	return chain, closeLib, nil
}

// writeMesh exports the scene mesh, picking the format from the extension:
// .stl for binary STL, .msgpack for the mesh record format.
func writeMesh(path string, s *solid.Solid) error {
	switch filepath.Ext(path) {
	case ".stl":
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		defer f.Close()
		if err := meshio.WriteBinarySTL(f, s.Mesh()); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		return nil
	case ".msgpack":
		data, err := meshio.MarshalMesh(s.Mesh())
		if err != nil {
			return fmt.Errorf("encode %s: %w", path, err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		return nil
	}
	return fmt.Errorf("unsupported output format %q (use .stl or .msgpack)", filepath.Ext(path))
}

// evalStats builds the queryable stats document for one evaluation.
func evalStats(s *solid.Solid, elapsed time.Duration) map[string]any {
	box := s.BoundingBox()
	return map[string]any{
		"status":      s.Status().String(),
		"empty":       s.IsEmpty(),
		"volume":      s.Volume(),
		"surfaceArea": s.SurfaceArea(),
		"triangles":   s.NumTriangles(),
		"vertices":    s.NumVertices(),
		"edges":       s.NumEdges(),
		"genus":       s.Genus(),
		"boundingBox": map[string]any{
			"min": []any{box.Min.X, box.Min.Y, box.Min.Z},
			"max": []any{box.Max.X, box.Max.Y, box.Max.Z},
		},
		"elapsedMs": float64(elapsed.Microseconds()) / 1000,
	}
}

// printQuery runs a jq expression over the stats document and prints every
// result as one JSON line.
func printQuery(expr string, stats map[string]any) error {
	query, err := gojq.Parse(expr)
	if err != nil {
		return fmt.Errorf("invalid jq expression %q: %w", expr, err)
	}
	iter := query.Run(stats)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, ok := v.(error); ok {
			return fmt.Errorf("query: %w", err)
		}
		out, err := json.Marshal(v)
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	}
	return nil
}

var (
	summaryTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff9f"))
	summaryBad   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff5f5f"))
	summaryLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681"))
)

func printSummary(scriptPath string, s *solid.Solid, stats map[string]any) {
	status := summaryTitle.Render(s.Status().String())
	if s.Status() != solid.NoError {
		status = summaryBad.Render(s.Status().String())
	}
	fmt.Printf("%s  %s\n", summaryTitle.Render(filepath.Base(scriptPath)), status)
	box := s.BoundingBox()
	rows := []struct {
		label, value string
	}{
		{"volume", fmt.Sprintf("%.6g", s.Volume())},
		{"surfaceArea", fmt.Sprintf("%.6g", s.SurfaceArea())},
		{"triangles", fmt.Sprintf("%d", s.NumTriangles())},
		{"vertices", fmt.Sprintf("%d", s.NumVertices())},
		{"genus", fmt.Sprintf("%d", s.Genus())},
		{"bounds", fmt.Sprintf("[%.4g %.4g %.4g] .. [%.4g %.4g %.4g]",
			box.Min.X, box.Min.Y, box.Min.Z, box.Max.X, box.Max.Y, box.Max.Z)},
		{"elapsed", fmt.Sprintf("%.3fms", stats["elapsedMs"].(float64))},
	}
	for _, row := range rows {
		fmt.Printf("  %s  %s\n", summaryLabel.Width(12).Render(row.label), row.value)
	}
}
