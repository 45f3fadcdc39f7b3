package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

var ErrUnreadableFile = errors.New("file tidak dapat dibaca, gunakan format .xlsx, .xls, atau .csv")

// Row adalah satu baris data: kunci kolom kanonik → nilai mentah sel.
type Row struct {
	Number int // nomor baris di sheet, header = 1
	Cells  map[string]string
}

// Get mengembalikan "" untuk kolom yang tidak ada.
func (r Row) Get(key string) string {
	if r.Cells == nil {
		return ""
	}
	return r.Cells[key]
}

type Sheet struct {
	Name    string
	Headers []string
	Rows    []Row
}

type Workbook struct {
	Sheets []Sheet
}

// ReadWorkbook membaca file spreadsheet berdasarkan ekstensinya.
func ReadWorkbook(filename string, r io.Reader) (*Workbook, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableFile, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrUnreadableFile
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		return readXLSX(data)
	case ".xls":
		return readXLS(data)
	case ".csv":
		name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
		return readCSV(name, data)
	default:
		return nil, ErrUnreadableFile
	}
}

func readXLSX(data []byte) (*Workbook, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableFile, err)
	}
	defer f.Close()

	wb := &Workbook{}
	for _, name := range f.GetSheetList() {
		// RawCellValue: tanggal tetap berupa serial angka, bukan teks terformat
		rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("%w: sheet %q: %v", ErrUnreadableFile, name, err)
		}
		wb.Sheets = append(wb.Sheets, buildSheet(name, rows))
	}
	if len(wb.Sheets) == 0 {
		return nil, ErrUnreadableFile
	}
	return wb, nil
}

func readXLS(data []byte) (wb *Workbook, err error) {
	// parser xls bisa panic untuk file rusak
	defer func() {
		if r := recover(); r != nil {
			wb, err = nil, fmt.Errorf("%w: %v", ErrUnreadableFile, r)
		}
	}()

	book, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableFile, err)
	}

	wb = &Workbook{}
	for i := 0; i < book.NumSheets(); i++ {
		ws := book.GetSheet(i)
		if ws == nil {
			continue
		}
		var rows [][]string
		for r := 0; r <= int(ws.MaxRow); r++ {
			row := ws.Row(r)
			if row == nil {
				rows = append(rows, nil)
				continue
			}
			cells := make([]string, row.LastCol())
			for c := row.FirstCol(); c < row.LastCol(); c++ {
				cells[c] = row.Col(c)
			}
			rows = append(rows, cells)
		}
		wb.Sheets = append(wb.Sheets, buildSheet(ws.Name, rows))
	}
	if len(wb.Sheets) == 0 {
		return nil, ErrUnreadableFile
	}
	return wb, nil
}

func readCSV(name string, data []byte) (*Workbook, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	rd := csv.NewReader(bytes.NewReader(data))
	rd.FieldsPerRecord = -1
	rd.LazyQuotes = true
	rd.Comma = detectDelimiter(data)

	rows, err := rd.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableFile, err)
	}
	if name == "" {
		name = "data"
	}
	return &Workbook{Sheets: []Sheet{buildSheet(name, rows)}}, nil
}

// detectDelimiter: export Excel berlocale Indonesia memakai ';'.
func detectDelimiter(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}
	if bytes.Count(line, []byte(";")) > bytes.Count(line, []byte(",")) {
		return ';'
	}
	return ','
}

// buildSheet memakai baris pertama sebagai header; baris kosong dilewati
// tetapi nomor baris asli tetap dipertahankan untuk pesan error.
func buildSheet(name string, rows [][]string) Sheet {
	sh := Sheet{Name: name}
	if len(rows) == 0 {
		return sh
	}

	sh.Headers = make([]string, len(rows[0]))
	for i, h := range rows[0] {
		sh.Headers[i] = CanonicalHeader(h)
	}

	for i, cells := range rows[1:] {
		if isBlank(cells) {
			continue
		}
		row := Row{Number: i + 2, Cells: make(map[string]string, len(sh.Headers))}
		for col, key := range sh.Headers {
			if key == "" {
				continue
			}
			v := ""
			if col < len(cells) {
				v = cells[col]
			}
			// header ganda: nilai pertama yang terisi menang
			if existing, ok := row.Cells[key]; ok && strings.TrimSpace(existing) != "" {
				continue
			}
			row.Cells[key] = v
		}
		sh.Rows = append(sh.Rows, row)
	}
	return sh
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
