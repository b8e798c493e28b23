package track

import (
	"reflect"
	"sync"
	"testing"

	"github.com/nearsyh/go-ranges/model"
	"go.uber.org/zap"
)

func TestTracker_Observe(t *testing.T) {
	tcs := []struct {
		name     string
		observe  [][]int
		expected model.Range[int]
	}{
		{
			name:     "SingleValue",
			observe:  [][]int{{4}},
			expected: model.New(4, 4),
		},
		{
			name:     "SingleBatch",
			observe:  [][]int{{0, 6, -11, -2, 4, 9}},
			expected: model.New(-11, 9),
		},
		{
			name:     "MultipleBatches",
			observe:  [][]int{{0}, {6, -11}, {-2, 4, 9}},
			expected: model.New(-11, 9),
		},
		{
			name:     "InteriorValuesDontNarrow",
			observe:  [][]int{{-5, 5}, {0, 1, 2}},
			expected: model.New(-5, 5),
		},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			tracker := New[int]()
			for _, batch := range tc.observe {
				tracker.Observe("latency", batch...)
			}
			got, ok := tracker.Get("latency")
			if !ok {
				t.Fatalf("Got no range for series %q", "latency")
			}
			if !got.Equal(tc.expected) {
				t.Errorf("Got %v, want %v", got, tc.expected)
			}
		})
	}
}

func TestTracker_ObserveNothing(t *testing.T) {
	tracker := New[int]()
	tracker.Observe("empty")
	if _, ok := tracker.Get("empty"); ok {
		t.Errorf("Got a range for a series with no observations")
	}
}

func TestTracker_GetUnknown(t *testing.T) {
	tracker := New[int]()
	if _, ok := tracker.Get("missing"); ok {
		t.Errorf("Got a range for an unknown series")
	}
}

func TestTracker_Names(t *testing.T) {
	tracker := New[int](WithLogger(zap.NewNop()))
	tracker.Observe("b", 1)
	tracker.Observe("a", 2)
	tracker.Observe("c", 3)
	got := tracker.Names()
	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Got %v, want %v", got, want)
	}
}

func TestTracker_Overall(t *testing.T) {
	tracker := New[int]()
	if _, ok := tracker.Overall(); ok {
		t.Errorf("Got an overall range for an empty tracker")
	}

	tracker.Observe("a", -11, 9)
	tracker.Observe("b", 0, 16)
	tracker.Observe("c", -12, 0)
	got, ok := tracker.Overall()
	if !ok {
		t.Fatalf("Got no overall range")
	}
	if want := model.New(-12, 16); !got.Equal(want) {
		t.Errorf("Got %v, want %v", got, want)
	}
}

func TestTracker_ConcurrentObserve(t *testing.T) {
	t.Parallel()

	tracker := New[int]()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for v := -i * 10; v <= i*10; v++ {
				tracker.Observe("shared", v)
			}
		}(i)
	}
	wg.Wait()

	got, ok := tracker.Get("shared")
	if !ok {
		t.Fatalf("Got no range for series %q", "shared")
	}
	if want := model.New(-70, 70); !got.Equal(want) {
		t.Errorf("Got %v, want %v", got, want)
	}
}
