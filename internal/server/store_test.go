package server

import (
	"context"
	"io"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/engine"
	"github.com/lgbarn/chess-go/internal/errors"
	"github.com/lgbarn/chess-go/internal/testutil"
)

func TestStore(t *testing.T) {
	st := NewStore(2)

	a, err := st.Create("")
	testutil.AssertNoError(t, err)
	b, err := st.Create("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, a.ID != b.ID, "IDs are unique")
	testutil.AssertEqual(t, st.Len(), 2)

	_, err = st.Create("")
	testutil.AssertErrorIs(t, err, errors.ErrTooManyGames)

	got, err := st.Get(b.ID)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, got == b, "Get returns the stored session")

	st.Delete(b.ID)
	_, err = st.Get(b.ID)
	testutil.AssertErrorIs(t, err, errors.ErrGameNotFound)

	_, err = st.Create("not a fen")
	testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
	testutil.AssertEqual(t, st.Len(), 1, "failed create stores nothing")
}

func TestStoreUnlimited(t *testing.T) {
	st := NewStore(0)
	for i := 0; i < 50; i++ {
		if _, err := st.Create(""); err != nil {
			t.Fatalf("Create #%d: %v", i, err)
		}
	}
	testutil.AssertEqual(t, st.Len(), 50)
}

func TestSessionConcurrentMoves(t *testing.T) {
	st := NewStore(0)
	s, err := st.Create("")
	testutil.AssertNoError(t, err)

	e2 := chess.MustParseSquare("e2")
	e4 := chess.MustParseSquare("e4")

	// Only one of the racing e2e4 attempts can succeed.
	var wg sync.WaitGroup
	var mu sync.Mutex
	accepted := 0
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.With(func(g *engine.Game) {
				if _, err := g.Move(e2, e4); err == nil {
					mu.Lock()
					accepted++
					mu.Unlock()
				}
			})
		}()
	}
	wg.Wait()

	testutil.AssertEqual(t, accepted, 1)
	s.With(func(g *engine.Game) {
		testutil.AssertEqual(t, g.Ply(), 1)
	})
}

func TestHubStopped(t *testing.T) {
	h := NewHub(log.New(io.Discard, "", 0))
	ctx, cancel := context.WithCancel(context.Background())

	stopped := make(chan struct{})
	go func() {
		h.Run(ctx)
		close(stopped)
	}()
	cancel()

	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("hub did not stop")
	}

	done := make(chan struct{})
	go func() {
		h.Broadcast("game", []byte("{}"))
		h.Close("game")
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("hub calls blocked after the hub stopped")
	}
	testutil.AssertEqual(t, h.Watchers("game"), 0)
}
