// Command rtldiag exercises the shaping package's entry-point wrappers
// end to end against a line of text supplied on the command line, the
// same round trip the watch firmware drives on every measure/draw call:
// shape, hand off to a (here, stubbed) host primitive, then unshape so the
// caller's buffer comes back untouched. Bidi reordering is not part of
// this round trip: it's scoped to the per-line renderer, which this
// demonstration CLI doesn't drive.
//
// It doubles as the diagnostic hook spec §3's magic cookie describes: run
// with --sentinel to leave the shaped bytes in the buffer after the call,
// the same behavior the firmware's own diagnostics app relies on
// overflow_mode == 0xE5 for.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/elbbep/rtlshim/shaping"
)

var (
	flagText      string
	flagSentinel  bool
	flagImmutable bool
	flagAlign     string
	flagVerbose   bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rtldiag",
		Short: "Drive the RTL shaping shim against a line of text",
		Long: "rtldiag feeds a line of text through the same shape -> host -> unshape\n" +
			"round trip the firmware's measure/draw wrappers perform, and reports\n" +
			"the buffer at each stage so a developer can confirm shaping behaves\n" +
			"as the on-device patch expects without flashing firmware.",
		RunE: runDiag,
	}
	cmd.Flags().StringVarP(&flagText, "text", "t", "", "line of text to shape (required)")
	cmd.Flags().BoolVar(&flagSentinel, "sentinel", false, "pass the 0xE5 diagnostic overflow_mode, suppressing unshape")
	cmd.Flags().BoolVar(&flagImmutable, "immutable", false, "simulate a flash-resident (non-mutable) buffer")
	cmd.Flags().StringVar(&flagAlign, "align", "left", "requested alignment: left, right, or center")
	cmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "log each stage at debug level")
	_ = cmd.MarkFlagRequired("text")
	return cmd
}

func newLogger() *log.Logger {
	level := log.InfoLevel
	if flagVerbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Level:           level,
		Prefix:          "rtldiag",
	})
	return logger
}

func parseAlignment(s string) (shaping.Alignment, error) {
	switch s {
	case "left":
		return shaping.AlignLeft, nil
	case "right":
		return shaping.AlignRight, nil
	case "center":
		return shaping.AlignCenter, nil
	default:
		return 0, fmt.Errorf("unrecognized alignment %q (want left, right, or center)", s)
	}
}

func runDiag(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	align, err := parseAlignment(flagAlign)
	if err != nil {
		return err
	}

	// NUL-terminate, matching the host's string representation (spec §3).
	buf := append([]byte(flagText), 0)
	addr := diagBufferAddr(flagImmutable)

	attrs := shaping.TextAttributes{Alignment: align}
	if flagSentinel {
		attrs.Overflow = shaping.DiagnosticSentinel
	}

	logger.Info("input", "text", flagText, "mutable", shaping.IsMutable(addr), "align", flagAlign)
	logger.Debug("buffer before", "hex", fmt.Sprintf("% x", buf))

	size := shaping.MeasureText(addr, buf, attrs, func(text []byte, a shaping.TextAttributes) shaping.Size {
		logger.Debug("host measure called", "hex", fmt.Sprintf("% x", text))
		return shaping.Size{W: int32(len(text)), H: 1}
	})
	logger.Info("measured", "width", size.W, "height", size.H)
	logger.Debug("buffer after measure", "hex", fmt.Sprintf("% x", buf))

	// Re-NUL-terminate a fresh copy for the draw pass: MeasureText's
	// restore already unshaped buf in place (unless --sentinel was set).
	drawBuf := append([]byte(flagText), 0)
	drawAttrs := attrs
	shaping.DrawText(addr, shaping.DrawContext{}, drawBuf, shaping.Rect{W: size.W, H: size.H}, drawAttrs,
		func(ctx shaping.DrawContext, text []byte, box shaping.Rect, a shaping.TextAttributes) {
			logger.Debug("host draw called", "hex", fmt.Sprintf("% x", text), "align", a.Alignment)
		})

	if flagSentinel {
		logger.Info("sentinel active: buffer left shaped", "hex", fmt.Sprintf("% x", buf))
	} else {
		logger.Info("buffer restored", "text", string(buf[:len(buf)-1]))
	}
	return nil
}

// diagBufferAddr stands in for the pointer the firmware would pass: a
// representative address inside the SRAM window, or just below it when
// --immutable asks to simulate a flash-resident string (scenario S6).
func diagBufferAddr(immutable bool) uintptr {
	if immutable {
		return shaping.SRAMBase - 1
	}
	return shaping.SRAMBase
}
