package tuning

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/fennwick/groundview/avatar"
)

func writeSpec(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestWatcherEmitsDecodedTuning(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "viewer.yaml")
	writeSpec(t, path, "walk_speed: 4.5\n")

	w, err := NewWatcher(dir, "viewer.yaml", zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	writeSpec(t, path, "walk_speed: 5.5\n")

	select {
	case tun := <-w.Tunings:
		if tun.WalkSpeed != 5.5 {
			t.Fatalf("WalkSpeed = %v, want 5.5", tun.WalkSpeed)
		}
		if want := avatar.DefaultTuning().RunSpeed; tun.RunSpeed != want {
			t.Fatalf("RunSpeed = %v, want default %v", tun.RunSpeed, want)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no tuning emitted after edit")
	}
}

func TestWatcherIgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir, "viewer.yaml", zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	writeSpec(t, filepath.Join(dir, "notes.txt"), "walk_speed: 9\n")
	writeSpec(t, filepath.Join(dir, "other.yaml"), "walk_speed: 9\n")

	select {
	case tun := <-w.Tunings:
		t.Fatalf("unexpected tuning %+v from unrelated files", tun)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherSkipsBadEdit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "viewer.yaml")

	w, err := NewWatcher(dir, "viewer.yaml", zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	writeSpec(t, path, "walk_speed: [not a number\n")

	select {
	case tun := <-w.Tunings:
		t.Fatalf("unexpected tuning %+v from a broken file", tun)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherCloseClosesTunings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "viewer.yaml")

	w, err := NewWatcher(dir, "viewer.yaml", zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 20; i++ {
			_ = os.WriteFile(path, []byte("walk_speed: 4\n"), 0o644)
			time.Sleep(5 * time.Millisecond)
		}
	}()

	time.Sleep(25 * time.Millisecond)
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	timeout := time.After(3 * time.Second)
	for {
		select {
		case _, ok := <-w.Tunings:
			if !ok {
				<-done
				return
			}
		case <-timeout:
			t.Fatal("Tunings not closed after Close")
		}
	}
}
