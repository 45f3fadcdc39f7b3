package importer

import (
	"errors"
	"strings"
)

var ErrNoSheet = errors.New("file tidak memiliki sheet yang dapat diimport")

var guideSheetMarkers = []string{"panduan", "guide", "instruksi"}

// DiscoverSheet memilih tepat satu sheet data:
//  1. nama "data"/"sheet1" atau mengandung "data" (urutan sheet);
//  2. sheet pertama yang bukan panduan/guide/instruksi;
//  3. sheet pertama.
func DiscoverSheet(wb *Workbook) (*Sheet, error) {
	if wb == nil || len(wb.Sheets) == 0 {
		return nil, ErrNoSheet
	}

	for i := range wb.Sheets {
		name := strings.ToLower(wb.Sheets[i].Name)
		if name == "data" || name == "sheet1" || strings.Contains(name, "data") {
			return &wb.Sheets[i], nil
		}
	}

	for i := range wb.Sheets {
		if !isGuideSheet(wb.Sheets[i].Name) {
			return &wb.Sheets[i], nil
		}
	}

	return &wb.Sheets[0], nil
}

func isGuideSheet(name string) bool {
	name = strings.ToLower(name)
	for _, m := range guideSheetMarkers {
		if strings.Contains(name, m) {
			return true
		}
	}
	return false
}
