package main

import (
	"flag"
	"fmt"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/GyrosOfWar/go-spectral-raytracer/pkg/film"
	"github.com/GyrosOfWar/go-spectral-raytracer/pkg/renderer"
	"github.com/GyrosOfWar/go-spectral-raytracer/pkg/scene"
	"github.com/GyrosOfWar/go-spectral-raytracer/pkg/spectral"
)

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene type: 'default' or 'cornell'")
	colorSpaceName := flag.String("colorspace", "srgb", "Output color space: 'srgb', 'dci_p3', 'rec2020', or 'aces'")
	widthFlag := flag.Int("width", 0, "Image width in pixels (0 = scene default)")
	heightFlag := flag.Int("height", 0, "Image height in pixels (0 = scene default)")
	samples := flag.Int("samples", 50, "Samples per pixel")
	maxDepth := flag.Int("depth", 25, "Maximum ray bounce depth")
	exposure := flag.Float64("exposure", 1.0, "Sensor exposure time")
	iso := flag.Float64("iso", 100.0, "Sensor ISO")
	maxComponent := flag.Float64("clamp", math.Inf(1), "Per-sample sensor RGB clamp for firefly suppression")
	outFile := flag.String("out", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Spectral Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Default scene with spheres and a blackbody sun")
		fmt.Println("  cornell - Cornell box scene with a D65 quad light")
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene_type>/render_<timestamp>.png")
		return
	}

	fmt.Println("Starting Spectral Raytracer...")

	spaces, err := spectral.StandardColorSpaces()
	if err != nil {
		fmt.Printf("Error loading color spaces: %v\n", err)
		os.Exit(1)
	}
	colorSpace := spaces.Lookup(*colorSpaceName)
	if colorSpace == nil {
		fmt.Printf("Unknown color space: %s\n", *colorSpaceName)
		os.Exit(1)
	}

	// Create scene based on command line argument
	var selectedScene *scene.Scene
	var width, height int

	switch *sceneType {
	case "cornell":
		fmt.Println("Using Cornell scene...")
		selectedScene = scene.NewCornellScene(colorSpace)
		width = 400
		height = 400 // Square aspect ratio for Cornell box
	case "default":
		fmt.Println("Using default scene...")
		selectedScene = scene.NewDefaultScene(colorSpace)
		width = 400
		height = 225 // 16:9 aspect ratio
	default:
		fmt.Printf("Unknown scene type: %s. Using default scene.\n", *sceneType)
		selectedScene = scene.NewDefaultScene(colorSpace)
		width = 400
		height = 225
		*sceneType = "default" // Normalize the scene type for directory creation
	}

	if *widthFlag > 0 {
		width = *widthFlag
	}
	if *heightFlag > 0 {
		height = *heightFlag
	}

	// Resolve the output path, defaulting to a timestamped file per scene
	filename := *outFile
	if filename == "" {
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join("output", *sceneType, fmt.Sprintf("render_%s.png", timestamp))
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		return
	}

	sensor := film.NewXyzPixelSensor(float32(*exposure), float32(*iso))
	sceneFilm := film.NewRgbFilm(width, height, sensor, colorSpace, float32(*maxComponent))

	raytracer := renderer.NewRaytracer(selectedScene, width, height)
	raytracer.SetSamplingConfig(renderer.SamplingConfig{
		SamplesPerPixel:           *samples,
		MaxDepth:                  *maxDepth,
		RussianRouletteMinBounces: 8,
	})

	startTime := time.Now()
	img := raytracer.RenderPass(sceneFilm)
	renderTime := time.Since(startTime)

	fmt.Printf("Render completed in %v (%d samples per pixel)\n", renderTime, *samples)

	file, err := os.Create(filename)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		return
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		return
	}

	fmt.Printf("Render saved as %s\n", filename)
}
