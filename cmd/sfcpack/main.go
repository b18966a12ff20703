package main

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/dustin/go-humanize"
	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/spf13/pflag"
	"github.com/xaionaro-go/avsfc"
	"github.com/xaionaro-go/avsfc/cmdbuf"
	fmtastiav "github.com/xaionaro-go/avsfc/format/astiav"
	"github.com/xaionaro-go/avsfc/linebuffer"
	"github.com/xaionaro-go/avsfc/scaler"
	"github.com/xaionaro-go/avsfc/sfc"
	"github.com/xaionaro-go/observability"
)

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "syntax: %s [flags] <request.yaml>\n", os.Args[0])
		pflag.PrintDefaults()
	}

	loggerLevel := logger.LevelWarning
	pflag.Var(&loggerLevel, "log-level", "Log level")
	var generation sfc.Generation
	pflag.Var(textFlag{&generation}, "generation", "override the hardware generation of the request: gen12 or xehpm")
	dump := pflag.Bool("dump", false, "dump the logical state of every engine")
	memoryLimit := pflag.Uint64("line-buffer-limit", 0, "the maximal amount of line-buffer memory in bytes; zero is unlimited")
	netPprofAddr := pflag.String("net-pprof-listen-addr", "", "an address to listen for incoming net/pprof connections")
	pflag.Parse()
	if len(pflag.Args()) != 1 {
		pflag.Usage()
		os.Exit(1)
	}

	l := logrus.Default().WithLevel(loggerLevel)
	ctx := logger.CtxWithLogger(context.Background(), l)
	logger.Default = func() logger.Logger {
		return l
	}
	defer belt.Flush(ctx)

	if *netPprofAddr != "" {
		observability.Go(ctx, func() { l.Error(http.ListenAndServe(*netPprofAddr, nil)) })
	}

	cfg, err := avsfc.LoadRequestConfig(pflag.Arg(0))
	if err != nil {
		l.Fatal(err)
	}
	if generation != sfc.UndefinedGeneration {
		cfg.Generation = generation
	}
	req := cfg.Request()
	l.Debugf("input %s (libav: %s) -> output %s (libav: %s)",
		req.InputFormat, fmtastiav.FormatToAstiav(req.InputFormat),
		req.Output.Format, fmtastiav.FormatToAstiav(req.Output.Format),
	)

	alloc := linebuffer.NewHeapAllocator()
	alloc.Limit = *memoryLimit
	renderer, err := avsfc.NewRenderer(ctx, cfg.Generation, alloc, nil)
	if err != nil {
		l.Fatal(err)
	}
	var s scaler.Scaler = renderer
	defer func() {
		if err := s.Close(ctx); err != nil {
			l.Error(err)
		}
	}()

	buf := cmdbuf.NewBuffer(0)
	states, err := s.RenderAll(ctx, req, buf)
	if err != nil {
		l.Fatal(err)
	}

	size := buf.Len() / len(states)
	for idx, state := range states {
		fmt.Printf("engine %d/%d (%s):\n", idx, len(states), state.Engine.Role)
		if *dump {
			spew.Dump(state)
		}
		words := buf.Words()[idx*size : (idx+1)*size]
		for dw, word := range words {
			fmt.Printf("  DW%-2d 0x%08x\n", dw, word)
		}
	}
	fmt.Println("bindings:")
	for _, b := range buf.Bindings() {
		fmt.Printf("  %s\n", b)
	}

	stats := s.GetStats(ctx)
	fmt.Printf("%s: %d commands, %d words, %s of line buffers\n",
		s, stats.Commands.Count, stats.Commands.Words, humanize.IBytes(stats.LineBufferBytes))
}

// textFlag adapts an encoding.TextUnmarshaler to pflag.Value.
type textFlag struct {
	v interface {
		MarshalText() ([]byte, error)
		UnmarshalText([]byte) error
	}
}

func (f textFlag) String() string {
	b, _ := f.v.MarshalText()
	return string(b)
}

func (f textFlag) Set(s string) error {
	return f.v.UnmarshalText([]byte(s))
}

func (f textFlag) Type() string {
	return "string"
}
