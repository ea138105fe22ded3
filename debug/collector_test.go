package debug

import "testing"

func TestCollectorCountsMatchRecordCalls(t *testing.T) {
	c := NewCollector(3)

	c.RecordHalt()
	c.RecordHalt()
	c.RecordAccelClamp()
	c.EndTick()

	c.RecordCorridorFailure()
	c.EndTick()

	snap := c.Snapshot()
	if snap.Ticks != 2 {
		t.Errorf("Ticks = %d, want 2", snap.Ticks)
	}
	if snap.Halts != 2 {
		t.Errorf("Halts = %d, want 2", snap.Halts)
	}
	if snap.AccelClamps != 1 {
		t.Errorf("AccelClamps = %d, want 1", snap.AccelClamps)
	}
	if snap.CorridorFailures != 1 {
		t.Errorf("CorridorFailures = %d, want 1", snap.CorridorFailures)
	}
}

func TestCollectorResetsAcrossWindowBoundary(t *testing.T) {
	c := NewCollector(2)

	c.RecordHalt()
	c.EndTick() // tick 1: 1 halt

	c.RecordHalt()
	c.EndTick() // tick 2: 1 halt

	c.RecordHalt()
	c.EndTick() // tick 3 overwrites tick 1's slot

	snap := c.Snapshot()
	if snap.Ticks != 2 {
		t.Fatalf("Ticks = %d, want 2 (window size)", snap.Ticks)
	}
	if snap.Halts != 2 {
		t.Errorf("Halts = %d, want 2 (ticks 2 and 3 only)", snap.Halts)
	}
}
