package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns every line. A missing file yields nil, nil.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// attrPattern matches one key=value pair of slog's text format. Values are
// either a quoted string with escapes or a run of non-space characters.
var attrPattern = regexp.MustCompile(`([A-Za-z_][\w.]*)=("(?:[^"\\]|\\.)*"|\S*)`)

// Colorizer highlights diagnostics lines for terminal output.
type Colorizer struct {
	key   lipgloss.Style
	time  lipgloss.Style
	msg   lipgloss.Style
	id    lipgloss.Style
	fail  lipgloss.Style
	level map[string]lipgloss.Style
}

// NewColorizer builds a Colorizer rendering through r. A nil renderer uses
// lipgloss's default, which detects the color profile of stdout.
func NewColorizer(r *lipgloss.Renderer) *Colorizer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Colorizer{
		key:  r.NewStyle().Foreground(lipgloss.Color("#6C7086")),
		time: r.NewStyle().Foreground(lipgloss.Color("#808080")),
		msg:  r.NewStyle().Bold(true),
		id:   r.NewStyle().Foreground(lipgloss.Color("#87AFFF")),
		fail: r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		level: map[string]lipgloss.Style{
			"DEBUG": r.NewStyle().Foreground(lipgloss.Color("#87CEEB")).Bold(true),
			"INFO":  r.NewStyle().Foreground(lipgloss.Color("#5FD75F")).Bold(true),
			"WARN":  r.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
			"ERROR": r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		},
	}
}

// Line colorizes a single line. Lines that are not key=value records are
// returned unchanged.
func (c *Colorizer) Line(line string) string {
	if strings.TrimSpace(line) == "" {
		return line
	}
	matches := attrPattern.FindAllStringSubmatchIndex(line, -1)
	if len(matches) == 0 {
		return line
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		b.WriteString(line[last:m[0]])
		key := line[m[2]:m[3]]
		value := line[m[4]:m[5]]
		b.WriteString(c.key.Render(key + "="))
		b.WriteString(c.value(key, value))
		last = m[1]
	}
	b.WriteString(line[last:])
	return b.String()
}

// Lines colorizes each line in order.
func (c *Colorizer) Lines(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = c.Line(line)
	}
	return out
}

func (c *Colorizer) value(key, value string) string {
	if value == "" {
		return ""
	}
	switch key {
	case "time":
		return c.time.Render(value)
	case "level":
		if style, ok := c.level[strings.ToUpper(value)]; ok {
			return style.Render(value)
		}
	case "msg":
		return c.msg.Render(value)
	case "request_id", "object_id":
		return c.id.Render(value)
	case "error", "kind":
		return c.fail.Render(value)
	}
	return value
}
