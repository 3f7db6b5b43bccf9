package main

import (
	"fmt"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/akeil/multitouch"
)

const (
	checkmark = "✓"
	crossmark = "✗"
	ellipsis  = "…"
)

type settings struct {
	configPath string
	verbose    bool
}

func main() {
	app := kingpin.New("multitouch", "Two finger gesture transformer")
	app.HelpFlag.Short('h')

	var s settings
	app.Flag("config", "Path to a TOML config file").Short('c').StringVar(&s.configPath)
	app.Flag("verbose", "Enable debug output").Short('v').BoolVar(&s.verbose)

	replay := app.Command("replay", "Replay a gesture trace and render the result")
	var (
		tracePath = replay.Arg("trace", "Trace file").Required().ExistingFile()
		imagePath = replay.Flag("image", "Source image (PNG or JPEG)").Short('i').ExistingFile()
		pngOut    = replay.Flag("png", "Write the result as PNG").String()
		pdfOut    = replay.Flag("pdf", "Write the result as PDF").String()
	)

	sample := app.Command("sample", "Write a synthetic gesture trace")
	var (
		kind      = sample.Arg("kind", "Gesture kind").Required().Enum("rotate", "zoom", "drag", "idle")
		sampleOut = sample.Arg("output", "Trace file to write").Required().String()
		steps     = sample.Flag("steps", "Number of move events").Short('n').Default("20").Int()
	)

	serve := app.Command("serve", "Run the websocket host")
	var (
		listen = serve.Flag("listen", "Address to listen on").Short('l').Default("localhost:8080").String()
	)

	app.Command("config", "Print the effective config")

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg, err := setup(s)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	switch command {
	case "replay":
		err = doReplay(cfg, *tracePath, *imagePath, *pngOut, *pdfOut)
	case "sample":
		err = doSample(*kind, *sampleOut, *steps)
	case "serve":
		err = doServe(cfg, *listen)
	case "config":
		err = multitouch.WriteConfig(os.Stdout, cfg)
	default:
		err = fmt.Errorf("unknown command: %q", command)
	}

	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

func setup(s settings) (multitouch.Config, error) {
	cfg, err := multitouch.LoadConfig(s.configPath)
	if err != nil {
		return cfg, err
	}

	if s.verbose {
		cfg.Log.Level = "debug"
	}
	multitouch.SetLogLevel(cfg.Log.Level)

	return cfg, nil
}
