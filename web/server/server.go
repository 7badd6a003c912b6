package server

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"net/http"
	"strconv"

	"rayscene/pkg/core"
	"rayscene/pkg/loaders"
	"rayscene/pkg/renderer"
	"rayscene/pkg/scene"
)

// Server previews ray-traced scenes over HTTP: it accepts a JSON scene
// description and replies with the rendered image as PNG
type Server struct {
	port int
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port}
}

// Handler returns the HTTP handler with all API routes registered
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/health", s.handleHealth)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting preview server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleRender renders a scene and returns it as PNG. A POST body supplies
// the JSON scene description; a GET renders the built-in default scene.
// Optional width and height query parameters override the raster size.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var sceneObj *scene.Scene
	if r.Method == http.MethodPost {
		parsed, err := loaders.ParseScene(r.Body)
		if err != nil {
			http.Error(w, fmt.Sprintf("Invalid scene: %v", err), http.StatusBadRequest)
			return
		}
		sceneObj = parsed
	} else {
		sceneObj = scene.NewDefaultScene()
	}

	sceneObj, err := applyRasterOverrides(r, sceneObj)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	raytracer := renderer.NewRaytracer(sceneObj, log.Default())
	pixels, stats := raytracer.Render(0)
	log.Printf("Rendered preview %dx%d in %v", stats.Width, stats.Height, stats.Elapsed)

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, pixelsToImage(pixels)); err != nil {
		log.Printf("Error encoding PNG: %v", err)
	}
}

// applyRasterOverrides rebuilds the scene with width/height query overrides
func applyRasterOverrides(r *http.Request, sceneObj *scene.Scene) (*scene.Scene, error) {
	config := sceneObj.CameraConfig
	changed := false

	for _, param := range []struct {
		name  string
		field *int
	}{
		{"width", &config.Width},
		{"height", &config.Height},
	} {
		value := r.URL.Query().Get(param.name)
		if value == "" {
			continue
		}
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed < 1 {
			return nil, fmt.Errorf("invalid %s: %q", param.name, value)
		}
		*param.field = parsed
		changed = true
	}

	if !changed {
		return sceneObj, nil
	}
	return scene.NewScene(config, sceneObj.Shapes, sceneObj.Lights), nil
}

// pixelsToImage converts the renderer's pixel grid to an RGBA image using
// the same quantization as the PPM writer
func pixelsToImage(pixels [][]core.Vec3) *image.RGBA {
	height := len(pixels)
	width := 0
	if height > 0 {
		width = len(pixels[0])
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for j, row := range pixels {
		for i, colorVec := range row {
			c := colorVec.Clamp(0.0, 1.0)
			img.SetRGBA(i, j, color.RGBA{
				R: uint8(c.X * 255),
				G: uint8(c.Y * 255),
				B: uint8(c.Z * 255),
				A: 255,
			})
		}
	}
	return img
}
