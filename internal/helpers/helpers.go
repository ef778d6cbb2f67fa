package helpers

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"
)

// Timestamp layouts emitted by the different PBX firmware revisions.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.000000",
	"01/02/2006 15:04:05",
	"02/01/2006 15:04:05",
}

var (
	nonDigits          = regexp.MustCompile(`[^\d+]`)
	sipURI             = regexp.MustCompile(`^sip:[^@]+@[^@]+$`)
	invalidFileChars   = regexp.MustCompile(`[<>:"/\\|?*]`)
	repeatedUnderscore = regexp.MustCompile(`_+`)
)

// ParsePBXTimestamp tries every known layout in order.
func ParsePBXTimestamp(timestamp string) (parsed time.Time, ok bool) {
	for _, layout := range timestampLayouts {
		var err error
		if parsed, err = time.Parse(layout, timestamp); err == nil {
			ok = true
			return
		}
	}
	return
}

// FormatDuration renders a duration in seconds as a short human-readable string.
func FormatDuration(seconds int) string {
	if seconds <= 0 {
		return "0s"
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	remainder := seconds % 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, remainder)
	}
	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, remainder)
	}
	return fmt.Sprintf("%ds", remainder)
}

// ValidatePhoneNumber accepts anything that strips down to 3 to 15 digits.
func ValidatePhoneNumber(number string) bool {
	if number == "" {
		return false
	}
	cleaned := nonDigits.ReplaceAllString(number, "")
	return len(cleaned) >= 3 && len(cleaned) <= 15
}

func ValidateSIPURI(uri string) bool {
	return uri != "" && sipURI.MatchString(uri)
}

// SanitizeFilename replaces characters the filesystem rejects.
func SanitizeFilename(filename string) string {
	sanitized := invalidFileChars.ReplaceAllString(filename, "_")
	sanitized = repeatedUnderscore.ReplaceAllString(sanitized, "_")
	sanitized = strings.Trim(sanitized, "_.")
	if sanitized == "" {
		return "unnamed_file"
	}
	return sanitized
}

func EnsureDirectory(path string) (err error) {
	if _, err = os.Stat(path); os.IsNotExist(err) {
		err = os.MkdirAll(path, 0755)
	}
	return
}

func FileSizeMB(path string) float64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return float64(info.Size()) / (1024 * 1024)
}
