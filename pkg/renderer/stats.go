package renderer

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int     // Total number of pixels rendered
	TotalSamples   int     // Total number of samples taken
	AverageSamples float64 // Average samples per pixel
	MaxSamples     int     // Maximum samples allowed per pixel
	MinSamples     int     // Minimum samples taken per pixel
	MaxSamplesUsed int     // Maximum samples actually used by any pixel
}

// Merge combines per-tile statistics into an aggregate
func (rs *RenderStats) Merge(other RenderStats) {
	rs.TotalPixels += other.TotalPixels
	rs.TotalSamples += other.TotalSamples
	rs.MaxSamples = max(rs.MaxSamples, other.MaxSamples)
	if rs.MinSamples == 0 || other.MinSamples < rs.MinSamples {
		rs.MinSamples = other.MinSamples
	}
	rs.MaxSamplesUsed = max(rs.MaxSamplesUsed, other.MaxSamplesUsed)
	if rs.TotalPixels > 0 {
		rs.AverageSamples = float64(rs.TotalSamples) / float64(rs.TotalPixels)
	}
}
