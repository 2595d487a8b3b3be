package playback

import (
	"testing"
	"testing/synctest"

	"github.com/llehouerou/earmark/internal/store"
)

func TestNewSubscription_ChannelsReadable(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		sub := newSubscription()

		sub.sendStateRestored(StateRestored{State: store.PlayerState{NowPlaying: "a", PlaybackSpeed: 1.5}})

		e := <-sub.StateRestored
		if e.State.NowPlaying != "a" {
			t.Errorf("StateRestored.State.NowPlaying = %q, want a", e.State.NowPlaying)
		}
		if e.State.PlaybackSpeed != 1.5 {
			t.Errorf("StateRestored.State.PlaybackSpeed = %v, want 1.5", e.State.PlaybackSpeed)
		}
	})
}

func TestSubscription_Close_SignalsDone(t *testing.T) {
	synctest.Test(t, func(_ *testing.T) {
		sub := newSubscription()
		sub.close()
		<-sub.Done
	})
}

func TestSubscription_NonBlocking_DropsWhenFull(t *testing.T) {
	sub := newSubscription()

	// Fill buffer
	for range eventBufferSize + 5 {
		sub.sendStateRestored(StateRestored{})
	}

	// Should not block or panic - count what we got
	count := 0
	for {
		select {
		case <-sub.StateRestored:
			count++
		default:
			goto done
		}
	}
done:
	if count != eventBufferSize {
		t.Errorf("received %d events, want %d (buffer size)", count, eventBufferSize)
	}
}
