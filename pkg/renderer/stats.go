package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width       int           // Raster width in pixels
	Height      int           // Raster height in pixels
	TotalPixels int           // Total number of pixels rendered
	HitPixels   int           // Pixels whose primary ray hit a shape
	ShadowRays  int           // Shadow rays cast during shading
	Elapsed     time.Duration // Wall-clock render time
}

// HitRatio returns the fraction of primary rays that hit a shape
func (rs RenderStats) HitRatio() float64 {
	if rs.TotalPixels == 0 {
		return 0
	}
	return float64(rs.HitPixels) / float64(rs.TotalPixels)
}
