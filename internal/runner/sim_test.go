package runner

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dash-runner/internal/config"
	"github.com/vovakirdan/dash-runner/internal/core"
)

const frame = 16 * time.Millisecond

type fakeStore struct {
	best    int
	loadErr error
	saveErr error
	saved   []int
}

func (f *fakeStore) Best() (int, error) {
	if f.loadErr != nil {
		return 0, f.loadErr
	}
	return f.best, nil
}

func (f *fakeStore) SetBest(score int) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.best = score
	f.saved = append(f.saved, score)
	return nil
}

func newTestSim(opts ...Option) *Sim {
	return New(config.DefaultRunnerConfig(), 42, opts...)
}

// crash puts an obstacle right on top of the grounded player.
func crash(s *Sim) {
	s.field.obstacles = append(s.field.obstacles, Obstacle{
		Kind: KindGround,
		Box:  core.NewBox(60, 300, 40, 60),
	})
}

func TestSimStartsPlaying(t *testing.T) {
	s := newTestSim()
	snap := s.Snapshot()

	if snap.State != Playing || snap.Score != 0 || snap.Best != 0 {
		t.Errorf("initial snapshot: %+v", snap)
	}
	if snap.Player != core.NewBox(50, 300, 50, 50) {
		t.Errorf("player box = %+v", snap.Player)
	}
	if snap.GroundLine != 350 || snap.WorldW != 800 || snap.WorldH != 400 {
		t.Errorf("world geometry: ground=%v size=%vx%v", snap.GroundLine, snap.WorldW, snap.WorldH)
	}
}

func TestSimJumpAppliedOnNextTick(t *testing.T) {
	s := newTestSim()
	s.Jump()

	if s.player.Airborne() {
		t.Fatal("Jump() must not mutate the player before the tick")
	}

	snap := s.Tick(frame)
	if !snap.Airborne {
		t.Error("player should be airborne after the tick")
	}
	if snap.Player.Y >= 300 {
		t.Errorf("player should have risen, y=%v", snap.Player.Y)
	}
}

func TestSimJumpIgnoredAfterGameOver(t *testing.T) {
	s := newTestSim()
	crash(s)
	s.Tick(frame)
	if s.State() != GameOver {
		t.Fatal("expected game over")
	}

	s.Jump()
	snap := s.Tick(frame)
	if snap.Airborne || snap.Player.Y != 300 {
		t.Errorf("jump applied during game over: y=%v airborne=%v", snap.Player.Y, snap.Airborne)
	}
}

func TestSimCollisionEndsRun(t *testing.T) {
	s := newTestSim()
	crash(s)

	snap := s.Tick(frame)
	if snap.State != GameOver {
		t.Errorf("state = %v, expected game over", snap.State)
	}
}

func TestSimFrozenWhileGameOver(t *testing.T) {
	s := newTestSim()
	for i := 0; i < 200; i++ {
		s.Tick(frame)
	}
	crash(s)
	before := s.Tick(frame)

	for i := 0; i < 100; i++ {
		s.Tick(time.Second)
	}
	after := s.Snapshot()

	if !reflect.DeepEqual(before, after) {
		t.Errorf("world changed during game over:\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestSimRestart(t *testing.T) {
	s := newTestSim()

	// Ignored while playing.
	s.Tick(frame)
	s.Restart()
	s.Tick(frame)
	if s.Snapshot().Ticks != 2 {
		t.Errorf("restart while playing reset the run, ticks=%d", s.Snapshot().Ticks)
	}

	// One long frame: a ratchet step and a spawn far from the player.
	s.Tick(6 * time.Second)
	if s.Snapshot().Level != 1 {
		t.Fatalf("level = %d, expected 1", s.Snapshot().Level)
	}
	crash(s)
	s.score = 3
	s.Tick(frame)
	if s.State() != GameOver {
		t.Fatal("expected game over")
	}

	s.Restart()
	if s.State() != GameOver {
		t.Fatal("Restart() must wait for the next tick")
	}

	snap := s.Tick(frame)
	if snap.State != Playing {
		t.Fatalf("state = %v after restart", snap.State)
	}
	if snap.Score != 0 || snap.Best != 3 {
		t.Errorf("score=%d best=%d, expected 0 and 3", snap.Score, snap.Best)
	}
	if snap.Speed != 6 || snap.Interval != 1500*time.Millisecond || snap.Level != 0 {
		t.Errorf("difficulty not reset: speed=%v interval=%v level=%d", snap.Speed, snap.Interval, snap.Level)
	}
	if len(snap.Obstacles) != 0 {
		t.Errorf("obstacles survived the restart: %d", len(snap.Obstacles))
	}
	if snap.Player.Y != 300 || snap.Airborne {
		t.Errorf("player not reset: %+v", snap.Player)
	}
}

func TestSimScoresPassedObstacles(t *testing.T) {
	s := newTestSim()
	// After one advance of 6 the right edge is at 49, left of the player.
	s.field.obstacles = append(s.field.obstacles, s.field.newObstacle(KindGround, 15, 6))

	snap := s.Tick(frame)
	if snap.Score != 1 {
		t.Errorf("score = %d, expected 1", snap.Score)
	}
	if snap.State != Playing {
		t.Error("passing an obstacle must not end the run")
	}

	snap = s.Tick(frame)
	if snap.Score != 1 {
		t.Errorf("score = %d, an obstacle must only score once", snap.Score)
	}
}

func TestSimBestScoreMerge(t *testing.T) {
	store := &fakeStore{best: 10}
	s := newTestSim(WithStore(store))

	if s.Best() != 10 {
		t.Fatalf("best = %d, expected 10 from the store", s.Best())
	}

	s.score = 42
	crash(s)
	snap := s.Tick(frame)

	if snap.Best != 42 || !snap.Record {
		t.Errorf("best=%d record=%v, expected a new record of 42", snap.Best, snap.Record)
	}
	if store.best != 42 || !reflect.DeepEqual(store.saved, []int{42}) {
		t.Errorf("store best=%d saved=%v, expected 42 once", store.best, store.saved)
	}

	s.Restart()
	s.Tick(frame)
	s.score = 5
	crash(s)
	snap = s.Tick(frame)

	if snap.State != GameOver || snap.Best != 42 || snap.Record {
		t.Errorf("second run: state=%v best=%d record=%v", snap.State, snap.Best, snap.Record)
	}
	if store.best != 42 || len(store.saved) != 1 {
		t.Errorf("store written for a lower score: best=%d saved=%v", store.best, store.saved)
	}
}

func TestSimStoreLoadFailureCountsAsZero(t *testing.T) {
	var buf bytes.Buffer
	store := &fakeStore{loadErr: errors.New(`best score "abc" is not a number`)}
	s := newTestSim(WithStore(store), WithLogger(log.New(&buf)))

	if s.Best() != 0 {
		t.Errorf("best = %d, expected 0 on load failure", s.Best())
	}
	if !strings.Contains(buf.String(), "ignoring stored best score") {
		t.Errorf("load failure should be logged, got %q", buf.String())
	}

	// A later record still reaches the store.
	store.loadErr = nil
	s.score = 1
	crash(s)
	s.Tick(frame)
	if store.best != 1 {
		t.Errorf("store best = %d, expected 1", store.best)
	}
}

func TestSimStoreSaveFailureIsNotFatal(t *testing.T) {
	var buf bytes.Buffer
	store := &fakeStore{saveErr: errors.New("disk full")}
	s := newTestSim(WithStore(store), WithLogger(log.New(&buf)))

	s.score = 7
	crash(s)
	snap := s.Tick(frame)

	if snap.State != GameOver || snap.Best != 7 {
		t.Errorf("state=%v best=%d, expected game over with in-memory best 7", snap.State, snap.Best)
	}
	if !strings.Contains(buf.String(), "failed to save best score") {
		t.Errorf("save failure should be logged, got %q", buf.String())
	}
}

func TestSimNegativeDeltaIsHarmless(t *testing.T) {
	s := newTestSim()
	snap := s.Tick(-time.Hour)
	if snap.Elapsed != 0 || snap.State != Playing {
		t.Errorf("negative delta: elapsed=%v state=%v", snap.Elapsed, snap.State)
	}
}

func TestSimSnapshotIsACopy(t *testing.T) {
	s := newTestSim(withRand(&seqRand{values: []float64{0.9}}))
	s.Tick(1500 * time.Millisecond)

	snap := s.Snapshot()
	if len(snap.Obstacles) != 1 {
		t.Fatalf("expected one obstacle, got %d", len(snap.Obstacles))
	}
	snap.Obstacles[0].Box.X = -1000

	if s.field.Obstacles()[0].Box.X == -1000 {
		t.Error("snapshot shares memory with the field")
	}
}

func TestSimDeterministic(t *testing.T) {
	run := func() Snapshot {
		s := New(config.DefaultRunnerConfig(), 12345)
		var snap Snapshot
		for i := 0; i < 3000; i++ {
			if i%40 == 0 {
				s.Jump()
			}
			snap = s.Tick(frame)
			if snap.State == GameOver {
				break
			}
		}
		return snap
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed and inputs diverged:\n%+v\n%+v", a, b)
	}
}

func TestSimRunEventuallyEndsWithoutInput(t *testing.T) {
	s := newTestSim()
	for i := 0; i < 20000; i++ {
		if s.Tick(frame).State == GameOver {
			return
		}
	}
	t.Error("a player who never jumps should eventually hit a ground obstacle")
}

func TestSimInvariantsOverLongRun(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	s := New(cfg, 7)

	for i := 0; i < 20000; i++ {
		if i%23 == 0 {
			s.Jump()
		}
		snap := s.Tick(frame)
		if snap.Player.Y > cfg.World.GroundY {
			t.Fatalf("tick %d: player below ground, y=%v", i, snap.Player.Y)
		}
		for _, o := range snap.Obstacles {
			if o.Box.Right() < 0 {
				t.Fatalf("tick %d: culled obstacle still live: %+v", i, o)
			}
		}
		if snap.Speed > cfg.Difficulty.MaxSpeed || snap.Interval < cfg.Difficulty.MinInterval {
			t.Fatalf("tick %d: difficulty out of bounds: %v %v", i, snap.Speed, snap.Interval)
		}
		if snap.State == GameOver {
			s.Restart()
		}
	}
}

func TestRunStateString(t *testing.T) {
	if Playing.String() != "playing" || GameOver.String() != "game over" {
		t.Error("unexpected RunState names")
	}
}
