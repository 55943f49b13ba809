package bounds

import (
	"testing"

	"github.com/akmonengine/bounds/actor"
	"github.com/akmonengine/bounds/screen"
)

func newTestWorld(workers int, grid *SpatialGrid) (*World, []*Volume) {
	ctx := readOnlyContext{viewport: wideViewport}
	volumes := []*Volume{
		New(ctx, actor.Point{WorldX: 0, WorldZ: 0}, fixedRandom(0), 0, 10, 0, 10, 0, 10),
		New(ctx, actor.Point{WorldX: 5, WorldZ: 0}, fixedRandom(0), 0, 10, 0, 10, 0, 10),
		New(ctx, actor.Point{WorldX: 100, WorldZ: 100}, fixedRandom(0), 0, 10, 0, 10, 0, 10),
		New(ctx, actor.Point{WorldX: -50, WorldZ: 20}, fixedRandom(0), 0, 4, 0, 4, 0, 4),
	}

	w := &World{Workers: workers, Grid: grid}
	for _, v := range volumes {
		w.AddVolume(v)
	}
	return w, volumes
}

func TestWorldAddRemove(t *testing.T) {
	w, volumes := newTestWorld(1, nil)
	if len(w.Volumes) != 4 {
		t.Fatalf("len(Volumes) = %d, want 4", len(w.Volumes))
	}

	w.RemoveVolume(volumes[1])
	if len(w.Volumes) != 3 {
		t.Fatalf("len(Volumes) = %d, want 3", len(w.Volumes))
	}
	for _, v := range w.Volumes {
		if v == volumes[1] {
			t.Error("removed volume is still in the world")
		}
	}

	// Removing an unknown volume is a no-op
	w.RemoveVolume(volumes[1])
	if len(w.Volumes) != 3 {
		t.Errorf("len(Volumes) = %d, want 3", len(w.Volumes))
	}
}

func TestWorldPick(t *testing.T) {
	for _, workers := range []int{0, 1, 3, 8} {
		w, volumes := newTestWorld(workers, nil)

		tests := []struct {
			name     string
			point    screen.Point
			expected []*Volume
		}{
			{"overlapping volumes", screen.Point{X: 7, Y: 2}, []*Volume{volumes[0], volumes[1]}},
			{"first only", screen.Point{X: 2, Y: 2}, []*Volume{volumes[0]}},
			{"second only", screen.Point{X: 12, Y: 2}, []*Volume{volumes[1]}},
			{"far volume", screen.Point{X: 101, Y: 1}, []*Volume{volumes[2]}},
			{"nothing", screen.Point{X: 500, Y: 500}, nil},
		}

		for _, tt := range tests {
			got := w.Pick(tt.point)
			if len(got) != len(tt.expected) {
				t.Errorf("workers %d, %s: Pick() returned %d volumes, want %d", workers, tt.name, len(got), len(tt.expected))
				continue
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("workers %d, %s: Pick()[%d] is not the expected volume", workers, tt.name, i)
				}
			}
		}
	}
}

func TestWorldVisiblePoints(t *testing.T) {
	w, volumes := newTestWorld(4, nil)

	samples := w.VisiblePoints()
	if len(samples) != len(volumes) {
		t.Fatalf("len(samples) = %d, want %d", len(samples), len(volumes))
	}
	for i, sample := range samples {
		if sample.Volume != volumes[i] {
			t.Errorf("sample %d belongs to another volume", i)
		}
		want, _ := volumes[i].Centroid(0)
		if !sample.OK || sample.Point != want {
			t.Errorf("sample %d = %v, %v, want %v", i, sample.Point, sample.OK, want)
		}
	}
}

func TestWorldWithin(t *testing.T) {
	for _, grid := range []*SpatialGrid{nil, NewSpatialGrid(16, 256), NewSpatialGrid(16, 1)} {
		w, volumes := newTestWorld(2, grid)

		tests := []struct {
			name     string
			region   actor.Box
			expected []*Volume
		}{
			{"origin", actor.NewBox(0, 1, 0, 1, 0, 1), []*Volume{volumes[0]}},
			{"shared edge", actor.NewBox(8, 9, 0, 1, 0, 1), []*Volume{volumes[0], volumes[1]}},
			{"far", actor.NewBox(105, 106, 5, 6, 105, 106), []*Volume{volumes[2]}},
			{"negative space", actor.NewBox(-49, -48, 0, 1, 21, 22), []*Volume{volumes[3]}},
			{"above everything", actor.NewBox(0, 200, 50, 60, 0, 200), nil},
		}

		for _, tt := range tests {
			got := w.Within(tt.region)
			if len(got) != len(tt.expected) {
				t.Errorf("%s: Within() returned %d volumes, want %d", tt.name, len(got), len(tt.expected))
				continue
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("%s: Within()[%d] is not the expected volume", tt.name, i)
				}
			}
		}
	}
}

func TestTask(t *testing.T) {
	data := indices(100)
	results := make([]int, len(data))

	for _, workers := range []int{1, 3, 7, 200} {
		clear(results)
		task(workers, data, func(i int) {
			results[i] = i * 2
		})
		for i, r := range results {
			if r != i*2 {
				t.Fatalf("workers %d: results[%d] = %d, want %d", workers, i, r, i*2)
			}
		}
	}

	// Empty input
	task(4, []int{}, func(int) { t.Error("fn called on empty data") })
}
