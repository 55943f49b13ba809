package bounds

import (
	"github.com/akmonengine/bounds/actor"
	"github.com/akmonengine/bounds/screen"
)

const DEFAULT_WORKERS = 1

// World is a collection of volumes queried together.
// With more than one worker, the Context and Random of every volume must be
// safe for concurrent use.
type World struct {
	Volumes []*Volume
	Workers int
	// Grid accelerates Within; nil falls back to testing every volume
	Grid *SpatialGrid
}

// Sample is the result of NextPoint for one volume
type Sample struct {
	Volume *Volume
	Point  screen.Point
	OK     bool
}

// AddVolume adds a volume to the world
func (w *World) AddVolume(volume *Volume) {
	w.Volumes = append(w.Volumes, volume)
}

// RemoveVolume removes a volume from the world
func (w *World) RemoveVolume(volume *Volume) {
	k := -1
	for i, v := range w.Volumes {
		if v == volume {
			k = i
			break
		}
	}

	if k != -1 {
		w.Volumes = append(w.Volumes[:k], w.Volumes[k+1:]...)
	}
}

// Pick returns the volumes containing the screen point, in insertion order
func (w *World) Pick(p screen.Point) []*Volume {
	hits := make([]bool, len(w.Volumes))
	task(w.workers(), indices(len(w.Volumes)), func(i int) {
		hits[i] = w.Volumes[i].Contains(p)
	})

	var picked []*Volume
	for i, hit := range hits {
		if hit {
			picked = append(picked, w.Volumes[i])
		}
	}
	return picked
}

// VisiblePoints samples one visible point per volume, in insertion order
func (w *World) VisiblePoints() []Sample {
	samples := make([]Sample, len(w.Volumes))
	task(w.workers(), indices(len(w.Volumes)), func(i int) {
		p, ok := w.Volumes[i].NextPoint()
		samples[i] = Sample{Volume: w.Volumes[i], Point: p, OK: ok}
	})
	return samples
}

// Within returns the volumes whose world bounds overlap region, in insertion order
func (w *World) Within(region actor.Box) []*Volume {
	boxes := make([]actor.Box, len(w.Volumes))
	task(w.workers(), indices(len(w.Volumes)), func(i int) {
		boxes[i] = w.Volumes[i].WorldBounds()
	})

	var candidates []int
	if w.Grid != nil {
		// Broad phase
		w.Grid.Clear()
		for i, box := range boxes {
			w.Grid.Insert(i, box)
		}
		candidates = w.Grid.Query(region)
	} else {
		candidates = indices(len(w.Volumes))
	}

	var found []*Volume
	for _, i := range candidates {
		if boxes[i].Overlaps(region) {
			found = append(found, w.Volumes[i])
		}
	}
	return found
}

func (w *World) workers() int {
	return max(DEFAULT_WORKERS, w.Workers)
}
