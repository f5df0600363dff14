package terminal

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/term"
)

// Colors for terminal output. Cleared at startup when stdout is not a TTY
// so piped output stays plain.
var (
	Reset   = "\033[0m"
	Bold    = "\033[1m"
	Dim     = "\033[2m"
	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
)

var interactive = term.IsTerminal(int(os.Stdout.Fd()))

func init() {
	if !interactive {
		Reset, Bold, Dim, Red, Green, Yellow, Blue, Magenta, Cyan = "", "", "", "", "", "", "", "", ""
	}
}

// Spinner provides a terminal spinner for long-running operations.
// On non-TTY output it prints the message once and stays quiet.
type Spinner struct {
	mu      sync.Mutex
	message string
	running bool
	done    chan struct{}
}

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// NewSpinner creates a new spinner.
func NewSpinner(message string) *Spinner {
	return &Spinner{
		message: message,
		done:    make(chan struct{}),
	}
}

// Start begins the spinner animation.
func (s *Spinner) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.mu.Unlock()

	if !interactive {
		fmt.Printf("  %s\n", s.message)
		return
	}

	go func() {
		i := 0
		for {
			select {
			case <-s.done:
				return
			default:
				s.mu.Lock()
				msg := s.message
				s.mu.Unlock()

				frame := spinnerFrames[i%len(spinnerFrames)]
				fmt.Printf("\r%s%s %s%s", Cyan, frame, msg, Reset)
				i++
				time.Sleep(80 * time.Millisecond)
			}
		}
	}()
}

// Stop stops the spinner and clears the line.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	if !interactive {
		return
	}
	close(s.done)
	fmt.Printf("\r%s\r", strings.Repeat(" ", 80))
}

// StopWithMessage stops the spinner and prints a final message.
func (s *Spinner) StopWithMessage(message string) {
	s.Stop()
	fmt.Println(message)
}

// UI helper functions.

// Success prints a green success message.
func Success(msg string) {
	fmt.Printf("%s%s✓%s %s\n", Bold, Green, Reset, msg)
}

// Error prints a red error message.
func Error(msg string) {
	fmt.Printf("%s%s✗%s %s\n", Bold, Red, Reset, msg)
}

// Info prints a blue info message.
func Info(msg string) {
	fmt.Printf("%s%si%s %s\n", Bold, Blue, Reset, msg)
}

// Warning prints a yellow warning message.
func Warning(msg string) {
	fmt.Printf("%s%s!%s %s\n", Bold, Yellow, Reset, msg)
}

// Header prints a bold header.
func Header(msg string) {
	fmt.Printf("\n%s%s%s\n", Bold, msg, Reset)
}

// Detail prints an indented detail line.
func Detail(label, value string) {
	fmt.Printf("  %s%s:%s %s\n", Dim, label, Reset, value)
}

// Section prints a magenta section banner, used between matrix runs.
func Section(msg string) {
	line := strings.Repeat("=", 72)
	fmt.Printf("\n%s%s%s\n", Magenta, line, Reset)
	fmt.Printf("%s  %s%s\n", Magenta, msg, Reset)
	fmt.Printf("%s%s%s\n", Magenta, line, Reset)
}

// Divider prints a horizontal line.
func Divider() {
	fmt.Printf("%s%s%s\n", Dim, strings.Repeat("─", 60), Reset)
}
