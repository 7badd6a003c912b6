package loaders

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"rayscene/pkg/core"
	"rayscene/pkg/geometry"
	"rayscene/pkg/lights"
	"rayscene/pkg/renderer"
	"rayscene/pkg/scene"
)

// Scene description defaults
const (
	defaultFov    = 60.0
	defaultWidth  = 320
	defaultHeight = 240
)

// sceneData mirrors the top level of the JSON scene document
type sceneData struct {
	Camera  *cameraData  `json:"camera"`
	Objects []objectData `json:"objects"`
	Lights  []lightData  `json:"lights"`
}

// cameraData holds the camera block. Pointer and slice fields distinguish
// absent values, so defaults only apply when a field is missing.
type cameraData struct {
	Position []float64 `json:"position"`
	LookAt   []float64 `json:"look_at"`
	Up       []float64 `json:"up"`
	Fov      *float64  `json:"fov"`
	Width    *int      `json:"width"`
	Height   *int      `json:"height"`
}

// objectData holds one entry of the objects array; shape-specific fields
// stay nil for the other shape kind
type objectData struct {
	Type   string    `json:"type"`
	Color  []float64 `json:"color"`
	Center []float64 `json:"center"`
	Radius *float64  `json:"radius"`
	Min    []float64 `json:"min"`
	Max    []float64 `json:"max"`
}

// lightData holds one entry of the lights array
type lightData struct {
	Type      string    `json:"type"`
	Position  []float64 `json:"position"`
	Intensity []float64 `json:"intensity"`
}

// LoadScene loads and parses a JSON scene file
func LoadScene(filename string) (*scene.Scene, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %v", err)
	}
	defer file.Close()

	return ParseScene(file)
}

// ParseScene parses a JSON scene description from an io.Reader. Any error
// is a load-time error: no partially parsed scene is ever returned.
func ParseScene(reader io.Reader) (*scene.Scene, error) {
	var data sceneData
	if err := json.NewDecoder(reader).Decode(&data); err != nil {
		return nil, fmt.Errorf("invalid scene JSON: %v", err)
	}

	if data.Camera == nil {
		return nil, fmt.Errorf("scene must include a camera")
	}
	cameraConfig, err := parseCamera(data.Camera)
	if err != nil {
		return nil, err
	}

	shapes := make([]core.Shape, 0, len(data.Objects))
	for i, obj := range data.Objects {
		shape, err := parseObject(i, obj)
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, shape)
	}

	sceneLights := make([]lights.PointLight, 0, len(data.Lights))
	for i, light := range data.Lights {
		pointLight, err := parseLight(i, light)
		if err != nil {
			return nil, err
		}
		sceneLights = append(sceneLights, pointLight)
	}

	return scene.NewScene(cameraConfig, shapes, sceneLights), nil
}

func parseCamera(data *cameraData) (renderer.CameraConfig, error) {
	var config renderer.CameraConfig
	var err error

	if config.Center, err = parseVec3("camera.position", data.Position); err != nil {
		return config, err
	}
	if config.LookAt, err = parseVec3("camera.look_at", data.LookAt); err != nil {
		return config, err
	}

	config.Up = core.NewVec3(0, 1, 0)
	if data.Up != nil {
		if config.Up, err = parseVec3("camera.up", data.Up); err != nil {
			return config, err
		}
	}

	config.VFov = defaultFov
	if data.Fov != nil {
		config.VFov = *data.Fov
	}
	if config.VFov <= 0 || config.VFov >= 180 {
		return config, fmt.Errorf("camera.fov must be in (0, 180), got %v", config.VFov)
	}

	config.Width = defaultWidth
	if data.Width != nil {
		config.Width = *data.Width
	}
	config.Height = defaultHeight
	if data.Height != nil {
		config.Height = *data.Height
	}
	if config.Width < 1 || config.Height < 1 {
		return config, fmt.Errorf("camera raster must be at least 1x1, got %dx%d", config.Width, config.Height)
	}

	return config, nil
}

func parseObject(index int, data objectData) (core.Shape, error) {
	color := core.NewVec3(1, 1, 1)
	if data.Color != nil {
		var err error
		if color, err = parseVec3(fmt.Sprintf("objects[%d].color", index), data.Color); err != nil {
			return nil, err
		}
	}

	switch data.Type {
	case "sphere":
		center, err := parseVec3(fmt.Sprintf("objects[%d].center", index), data.Center)
		if err != nil {
			return nil, err
		}
		if data.Radius == nil {
			return nil, fmt.Errorf("objects[%d]: sphere requires a radius", index)
		}
		if *data.Radius <= 0 {
			return nil, fmt.Errorf("objects[%d]: sphere radius must be positive, got %v", index, *data.Radius)
		}
		return geometry.NewSphere(center, *data.Radius, color), nil

	case "box":
		minCorner, err := parseVec3(fmt.Sprintf("objects[%d].min", index), data.Min)
		if err != nil {
			return nil, err
		}
		maxCorner, err := parseVec3(fmt.Sprintf("objects[%d].max", index), data.Max)
		if err != nil {
			return nil, err
		}
		if minCorner.X >= maxCorner.X || minCorner.Y >= maxCorner.Y || minCorner.Z >= maxCorner.Z {
			return nil, fmt.Errorf("objects[%d]: box min must be component-wise less than max", index)
		}
		return geometry.NewBox(minCorner, maxCorner, color), nil

	default:
		return nil, fmt.Errorf("objects[%d]: unsupported object type %q", index, data.Type)
	}
}

func parseLight(index int, data lightData) (lights.PointLight, error) {
	if data.Type != "point" {
		return lights.PointLight{}, fmt.Errorf("lights[%d]: unsupported light type %q", index, data.Type)
	}

	position, err := parseVec3(fmt.Sprintf("lights[%d].position", index), data.Position)
	if err != nil {
		return lights.PointLight{}, err
	}

	intensity := core.NewVec3(1, 1, 1)
	if data.Intensity != nil {
		if intensity, err = parseVec3(fmt.Sprintf("lights[%d].intensity", index), data.Intensity); err != nil {
			return lights.PointLight{}, err
		}
	}

	return lights.NewPointLight(position, intensity), nil
}

// parseVec3 converts a JSON array to a Vec3, requiring exactly 3 components
func parseVec3(field string, values []float64) (core.Vec3, error) {
	if values == nil {
		return core.Vec3{}, fmt.Errorf("%s is required", field)
	}
	if len(values) != 3 {
		return core.Vec3{}, fmt.Errorf("%s must have exactly 3 components, got %d", field, len(values))
	}
	return core.NewVec3(values[0], values[1], values[2]), nil
}
