package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docket [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render a directory of markdown files into a static HTML site.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -s, --source <dir>        Documentation directory (default: current directory)")
	fmt.Fprintln(w, "  -t, --target <dir>        Output directory (default: ./build)")
	fmt.Fprintln(w, "  -w, --watch               Rebuild when the source changes")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Configuration:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path (default: docket.yaml if present)")
	fmt.Fprintln(w, "  -j, --workers <n>         Pages rendered in parallel (0 = auto)")
	fmt.Fprintln(w, "      --title <s>           Site title (default: source directory name)")
	fmt.Fprintln(w, "      --dump-config         Print the effective configuration and exit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug output")
	fmt.Fprintln(w, "      --version             Show version")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  DOCKET_CONFIG, DOCKET_SOURCE, DOCKET_TARGET, DOCKET_TITLE, DOCKET_WORKERS,")
	fmt.Fprintln(w, "  DOCKET_HIGHLIGHT_MODE, DOCKET_HIGHLIGHT_STYLE, DOCKET_ASSET_PATH,")
	fmt.Fprintln(w, "  DOCKET_LOG_LEVEL, DOCKET_FORCE_JS_HL")
}
