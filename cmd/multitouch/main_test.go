package main

import (
	"context"
	"image/png"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/akeil/multitouch"
	"github.com/akeil/multitouch/pkg/host"
)

func TestSampleAndReplay(t *testing.T) {
	dir := t.TempDir()
	tracePath := filepath.Join(dir, "zoom.trace")
	pngPath := filepath.Join(dir, "zoom.png")
	pdfPath := filepath.Join(dir, "zoom.pdf")

	err := doSample("zoom", tracePath, 10)
	if err != nil {
		t.Fatal(err)
	}

	tr, err := readTrace(tracePath)
	if err != nil {
		t.Fatal(err)
	}
	if tr.Len() != 14 {
		t.Errorf("unexpected number of events: %d", tr.Len())
	}

	cfg := multitouch.DefaultConfig()
	cfg.Render.Width = 160
	cfg.Render.Height = 120
	err = doReplay(cfg, tracePath, "", pngPath, pdfPath)
	if err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(pngPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	i, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if i.Bounds().Dx() != 160 || i.Bounds().Dy() != 120 {
		t.Errorf("unexpected image size %v", i.Bounds())
	}

	info, err := os.Stat(pdfPath)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Errorf("empty PDF output")
	}
}

func TestSampleUnknownKind(t *testing.T) {
	err := doSample("fling", filepath.Join(t.TempDir(), "x.trace"), 5)
	if err == nil {
		t.Errorf("unknown gesture kind should not be accepted")
	}
}

func TestServeAndShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}

	srv := host.NewServer(multitouch.DefaultThresholds())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- runServer(ctx, srv, ln)
	}()

	c := host.NewClient("ws://" + ln.Addr().String() + "/")
	err = c.Connect()
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	r, err := c.Send(host.Message{Kind: "contact-begin"})
	if err != nil {
		t.Fatal(err)
	}
	if r.Error != "" {
		t.Errorf("unexpected error reply: %v", r.Error)
	}
	if srv.Sessions() != 1 {
		t.Errorf("unexpected number of sessions: %d", srv.Sessions())
	}

	cancel()
	select {
	case err = <-done:
		if err != nil {
			t.Errorf("unexpected error on shutdown: %v", err)
		}
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("server did not shut down")
	}
}
