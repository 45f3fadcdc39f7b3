package importer

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// epoch serial tanggal spreadsheet
var serialEpoch = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)

// serial > maxSerial (31-12-9999) tidak dianggap tanggal
const maxSerial = 2958465

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006/01/02",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2-1-2006",
	"02 Jan 2006",
	"2 Jan 2006",
	"02 January 2006",
	"2 January 2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// CoerceDate menormalisasi nilai sel tanggal ke YYYY-MM-DD.
// nil untuk nilai kosong; string yang tidak dikenali dikembalikan apa adanya.
// Tidak pernah panic.
func CoerceDate(v any) (out *string) {
	defer func() {
		if r := recover(); r != nil {
			s := fmt.Sprint(v)
			out = &s
		}
	}()

	switch t := v.(type) {
	case nil:
		return nil
	case time.Time:
		if t.IsZero() {
			return nil
		}
		return strPtr(t.Format("2006-01-02"))
	case float64:
		return fromSerial(t)
	case float32:
		return fromSerial(float64(t))
	case int:
		return fromSerial(float64(t))
	case int64:
		return fromSerial(float64(t))
	case string:
		return coerceDateString(t)
	default:
		return coerceDateString(fmt.Sprint(t))
	}
}

func coerceDateString(raw string) *string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	// sel xlsx dibaca mentah: tanggal datang sebagai serial "45306" atau "45306.5"
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		// "2024" di sel teks lebih mungkin tahun daripada serial 1905
		if isYearText(s) {
			return &raw
		}
		if d := fromSerial(f); d != nil {
			return d
		}
		return &raw
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return strPtr(t.Format("2006-01-02"))
		}
	}
	return &raw
}

const (
	minYearText = 1900
	maxYearText = 2100
)

func isYearText(s string) bool {
	if len(s) != 4 {
		return false
	}
	y, err := strconv.Atoi(s)
	return err == nil && y >= minYearText && y <= maxYearText
}

func fromSerial(f float64) *string {
	if f == 0 {
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || f > maxSerial {
		s := strconv.FormatFloat(f, 'f', -1, 64)
		return &s
	}
	days := math.Floor(f)
	return strPtr(serialEpoch.AddDate(0, 0, int(days)).Format("2006-01-02"))
}

func strPtr(s string) *string { return &s }
