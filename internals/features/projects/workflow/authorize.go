package workflow

import (
	"errors"
	"fmt"
	"strings"
)

const (
	DivisionPlanning   = "PLANNING"
	DivisionDeployment = "DEPLOYMENT"
)

var ErrDivisionForbidden = errors.New("divisi tidak berwenang")

// AuthorizeDivision adalah satu-satunya gerbang PLANNING/DEPLOYMENT untuk
// import, create manual, dan update manual. Divisi lain (admin dsb.) bebas.
func AuthorizeDivision(division, uic string) error {
	division = strings.ToUpper(strings.TrimSpace(division))
	switch {
	case division == DivisionPlanning && uic == UICDeployment:
		return fmt.Errorf("%w: divisi PLANNING tidak boleh mengelola progress milik DEPLOYMENT", ErrDivisionForbidden)
	case division == DivisionDeployment && uic == UICPlanning:
		return fmt.Errorf("%w: divisi DEPLOYMENT tidak boleh mengelola progress milik PLANNING", ErrDivisionForbidden)
	}
	return nil
}
