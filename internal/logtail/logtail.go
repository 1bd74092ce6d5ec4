package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns every line. A missing file yields no lines.
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

var levelStyles = map[string]lipgloss.Style{
	"debug": lipgloss.NewStyle().Foreground(lipgloss.Color("#738091")),
	"info":  lipgloss.NewStyle().Foreground(lipgloss.Color("#63cdcf")),
	"warn":  lipgloss.NewStyle().Foreground(lipgloss.Color("#dbc074")),
	"error": lipgloss.NewStyle().Foreground(lipgloss.Color("#c94f6d")).Bold(true),
}

// reserved keys are rendered in fixed positions rather than as key=value.
var reserved = map[string]bool{"ts": true, "level": true, "msg": true, "caller": true, "logger": true}

// Format renders one zap JSON line as "ts LEVEL msg key=value ...". Lines
// that are not JSON objects are returned unchanged.
func Format(line string, color bool) string {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "{") {
		return line
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(trimmed), &entry); err != nil {
		return line
	}

	level := strings.ToLower(stringField(entry, "level"))
	levelText := fmt.Sprintf("%-5s", strings.ToUpper(level))
	if color {
		if style, ok := levelStyles[level]; ok {
			levelText = style.Render(levelText)
		}
	}

	keys := make([]string, 0, len(entry))
	for k := range entry {
		if !reserved[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var b strings.Builder
	if ts := stringField(entry, "ts"); ts != "" {
		b.WriteString(ts)
		b.WriteByte(' ')
	}
	b.WriteString(levelText)
	b.WriteByte(' ')
	b.WriteString(stringField(entry, "msg"))
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, entry[k])
	}
	return b.String()
}

func stringField(entry map[string]any, key string) string {
	v, ok := entry[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
