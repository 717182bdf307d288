package renderer

import "time"

// TileStats counts the work done for a single tile
type TileStats struct {
	Pixels  int
	Samples int
	Elapsed time.Duration
}

// WorkerStats accumulates the tiles rendered by one worker
type WorkerStats struct {
	WorkerID int
	Tiles    int
	Pixels   int
	Samples  int
	BusyTime time.Duration
}

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int           // Total number of pixels rendered
	TotalSamples   int           // Total number of camera samples taken
	AverageSamples float64       // Average samples per pixel
	TotalTiles     int           // Tiles in the grid
	RenderTime     time.Duration // Wall clock time of the whole render
	Workers        []WorkerStats // Per-worker breakdown, indexed by worker ID
}

func newRenderStats(numWorkers, numTiles int) RenderStats {
	workers := make([]WorkerStats, numWorkers)
	for i := range workers {
		workers[i].WorkerID = i
	}
	return RenderStats{
		TotalTiles: numTiles,
		Workers:    workers,
	}
}

// addTile folds a finished tile into the totals
func (s *RenderStats) addTile(workerID int, tile TileStats) {
	s.TotalPixels += tile.Pixels
	s.TotalSamples += tile.Samples

	w := &s.Workers[workerID]
	w.Tiles++
	w.Pixels += tile.Pixels
	w.Samples += tile.Samples
	w.BusyTime += tile.Elapsed
}

// finalize calculates the derived statistics once every tile has reported
func (s *RenderStats) finalize(elapsed time.Duration) {
	s.RenderTime = elapsed
	if s.TotalPixels > 0 {
		s.AverageSamples = float64(s.TotalSamples) / float64(s.TotalPixels)
	}
}

// Utilization returns the share of the wall clock time a worker spent rendering
func (w WorkerStats) Utilization(renderTime time.Duration) float64 {
	if renderTime <= 0 {
		return 0
	}
	return float64(w.BusyTime) / float64(renderTime)
}
