package main

import (
	"fmt"
	"log"
	"os"

	"rayscene/pkg/loaders"
	"rayscene/pkg/ppm"
	"rayscene/pkg/renderer"
)

const usage = "Usage: rayscene <scene.json> <output.ppm>"

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}

	if err := run(os.Args[1], os.Args[2]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run loads the scene, renders it and writes the PPM image. Every error is
// terminal: no partial output is written on failure.
func run(scenePath, outputPath string) error {
	sceneObj, err := loaders.LoadScene(scenePath)
	if err != nil {
		return err
	}

	fmt.Printf("Rendering %s (%dx%d, %d objects, %d lights)...\n",
		scenePath, sceneObj.CameraConfig.Width, sceneObj.CameraConfig.Height,
		len(sceneObj.Shapes), len(sceneObj.Lights))

	raytracer := renderer.NewRaytracer(sceneObj, log.New(os.Stdout, "", 0))
	pixels, stats := raytracer.Render(0)

	fmt.Printf("Render completed in %v\n", stats.Elapsed)

	if err := ppm.WriteFile(outputPath, pixels); err != nil {
		return err
	}

	fmt.Printf("Image saved as %s\n", outputPath)
	return nil
}
