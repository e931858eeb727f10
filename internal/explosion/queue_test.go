package explosion

import (
	"errors"
	"testing"

	"blastradius/internal/grid"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestExecuteRunsInOrder(t *testing.T) {
	q := NewQueue(false, nil)
	var got []int
	q.Handle(KindRegular, func(ev Event) { got = append(got, ev.Pos.X) })
	for i := range 3 {
		if err := q.Add(Event{Pos: grid.P(i, 0)}); err != nil {
			t.Fatal(err)
		}
	}
	if q.Len() != 3 {
		t.Errorf("Len = %d; want 3", q.Len())
	}
	q.Execute()
	if len(got) != 3 || got[0] != 0 || got[1] != 1 || got[2] != 2 {
		t.Errorf("dispatch order %v; want [0 1 2]", got)
	}
	if q.Len() != 0 {
		t.Errorf("Len after drain = %d; want 0", q.Len())
	}
}

func TestEventsAddedDuringDrainRunAfterEarlierOnes(t *testing.T) {
	q := NewQueue(true, nil)
	var got []string
	q.Handle(KindRegular, func(ev Event) {
		got = append(got, "regular")
		if ev.Pos.X == 0 {
			q.Add(Event{Kind: KindShockwave, Pos: grid.P(9, 9)})
			// A nested drain must not run the new event now.
			q.Execute()
			got = append(got, "regular done")
		}
	})
	q.Handle(KindFlashbang, func(Event) { got = append(got, "flashbang") })
	q.Handle(KindShockwave, func(Event) { got = append(got, "shockwave") })

	q.Add(Event{Kind: KindRegular})
	q.Add(Event{Kind: KindFlashbang})
	q.Execute()

	want := []string{"regular", "regular done", "flashbang", "shockwave"}
	if len(got) != len(want) {
		t.Fatalf("got %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v; want %v", got, want)
		}
	}
}

func TestStrictQueueRejectsUnknownKind(t *testing.T) {
	q := NewQueue(true, nil)
	err := q.Add(Event{Kind: Kind(42)})
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("err = %v; want ErrUnknownKind", err)
	}
	if q.Len() != 0 {
		t.Error("rejected events are not queued")
	}
}

func TestStrictQueuePanicsWithoutHandler(t *testing.T) {
	q := NewQueue(true, nil)
	q.Add(Event{Kind: KindFlashbang})
	defer func() {
		if recover() == nil {
			t.Error("expected a panic")
		}
	}()
	q.Execute()
}

func TestLenientQueueSkipsUnknownKind(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	q := NewQueue(false, zap.New(core))
	ran := 0
	q.Handle(KindRegular, func(Event) { ran++ })

	if err := q.Add(Event{Kind: Kind(7)}); err != nil {
		t.Fatalf("lenient Add: %v", err)
	}
	q.Add(Event{Kind: KindRegular})
	q.Execute()

	if ran != 1 {
		t.Errorf("regular handler ran %d times; want 1", ran)
	}
	if logs.FilterMessage("skipping event without handler").Len() != 1 {
		t.Error("expected one warning for the unknown event")
	}
}

func TestExecuteOnEmptyQueue(t *testing.T) {
	q := NewQueue(false, nil)
	q.Execute()
	if q.Len() != 0 {
		t.Error("empty queue stays empty")
	}
}
