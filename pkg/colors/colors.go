package colors

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// ANSI color codes
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"

	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Cyan    = "\033[36m"
	White   = "\033[37m"
	Gray    = "\033[90m"

	BrightRed     = "\033[91m"
	BrightGreen   = "\033[92m"
	BrightYellow  = "\033[93m"
	BrightBlue    = "\033[94m"
	BrightMagenta = "\033[95m"
	BrightCyan    = "\033[96m"
	BrightWhite   = "\033[97m"
)

var (
	mu       sync.Mutex
	out      io.Writer = os.Stdout
	plain              = os.Getenv("NO_COLOR") != ""
	debugOn            = os.Getenv("LOG_DEBUG") == "true"
	clockFmt           = "15:04:05"
)

// SetOutput redirects all log output. Passing nil restores stdout.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = os.Stdout
	}
	out = w
}

// SetPlain disables ANSI escapes, used for non-terminal output such as log files and tests.
func SetPlain(p bool) {
	mu.Lock()
	defer mu.Unlock()
	plain = p
}

// SetDebug toggles PrintDebug output.
func SetDebug(d bool) {
	mu.Lock()
	defer mu.Unlock()
	debugOn = d
}

func paint(color, s string) string {
	if plain {
		return s
	}
	return color + s + Reset
}

func line(iconColor, icon, textColor, msg string) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, "%s %s %s\n",
		paint(Gray, "["+time.Now().Format(clockFmt)+"]"),
		paint(iconColor, icon),
		paint(textColor, msg))
}

// PrintInfo prints informational messages with cyan color
func PrintInfo(format string, args ...interface{}) {
	line(Cyan, "ℹ ", BrightCyan, fmt.Sprintf(format, args...))
}

// PrintSuccess prints success messages with green color
func PrintSuccess(format string, args ...interface{}) {
	line(Green, "✅", BrightGreen, fmt.Sprintf(format, args...))
}

// PrintWarning prints warning messages with yellow color
func PrintWarning(format string, args ...interface{}) {
	line(Yellow, "⚠️ ", BrightYellow, fmt.Sprintf(format, args...))
}

// PrintError prints error messages with red color
func PrintError(format string, args ...interface{}) {
	line(Red, "❌", BrightRed, fmt.Sprintf(format, args...))
}

// PrintDebug prints debug messages in gray when LOG_DEBUG=true
func PrintDebug(format string, args ...interface{}) {
	mu.Lock()
	enabled := debugOn
	mu.Unlock()
	if !enabled {
		return
	}
	line(Gray, "🔍", Gray, fmt.Sprintf(format, args...))
}

// PrintServer prints server-related messages
func PrintServer(icon, format string, args ...interface{}) {
	line(BrightBlue, icon, White, fmt.Sprintf(format, args...))
}

// PrintData prints catalog write events
func PrintData(icon, format string, args ...interface{}) {
	line(Cyan, icon, BrightWhite, fmt.Sprintf(format, args...))
}

// PrintHeader prints a boxed header
func PrintHeader(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	border := strings.Repeat("═", len([]rune(message))+2)

	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, "\n%s\n", paint(BrightBlue+Bold, "╔"+border+"╗"))
	fmt.Fprintf(out, "%s\n", paint(BrightBlue+Bold, "║ "+message+" ║"))
	fmt.Fprintf(out, "%s\n\n", paint(BrightBlue+Bold, "╚"+border+"╝"))
}

// PrintSubHeader prints sub-header messages
func PrintSubHeader(format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, "%s\n", paint(BrightMagenta+Bold, "▶ "+fmt.Sprintf(format, args...)))
}

// PrintBanner prints the application banner
func PrintBanner() {
	banner := `
 ____       _            _
|  _ \ ___ | | _____  __| | _____  __
| |_) / _ \| |/ / _ \/ _' |/ _ \ \/ /
|  __/ (_) |   <  __/ (_| |  __/>  <
|_|   \___/|_|\_\___|\__,_|\___/_/\_\
`
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprint(out, paint(BrightCyan+Bold, banner))
	fmt.Fprintf(out, "%s\n\n", paint(BrightYellow, "        Pokémon catalog REST API"))
}

// PrintEndpoint prints API endpoint information
func PrintEndpoint(method, path, description string) {
	var methodColor string
	switch method {
	case "GET":
		methodColor = BrightGreen
	case "POST":
		methodColor = BrightBlue
	case "PUT", "PATCH":
		methodColor = BrightYellow
	case "DELETE":
		methodColor = BrightRed
	default:
		methodColor = White
	}

	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, "  %s %s %s\n",
		paint(methodColor, fmt.Sprintf("%-6s", method)),
		paint(Cyan, fmt.Sprintf("%-42s", path)),
		paint(Gray, description))
}

// PrintShutdown prints shutdown message
func PrintShutdown() {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, "\n%s\n", paint(BrightRed+Bold, "🛑 Pokedex server shutdown initiated..."))
	fmt.Fprintf(out, "%s\n\n", paint(Yellow+Bold, "⏳ Draining in-flight requests and closing the database..."))
}
