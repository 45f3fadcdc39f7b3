package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"ftth_backend/internals/features/projects/importer"
)

// errValidation: exit code 1 tanpa mencetak ulang error (sudah dicetak per baris).
var errValidation = errors.New("validasi gagal")

func newValidateImportCmd() *cobra.Command {
	var (
		division string
		maxRows  int
	)
	cmd := &cobra.Command{
		Use:   "validate-import FILE",
		Short: "Validasi file import (xlsx/xls/csv) tanpa menyimpan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()

			plan, err := validateFile(filepath.Base(path), f, division, maxRows)
			out := cmd.OutOrStdout()
			if err != nil {
				var verr *importer.ValidationError
				if errors.As(err, &verr) {
					for _, m := range verr.Messages {
						fmt.Fprintln(out, "❌", m)
					}
					fmt.Fprintf(out, "%d error ditemukan\n", len(verr.Messages))
					cmd.SilenceErrors = true
					return errValidation
				}
				return err
			}
			fmt.Fprintf(out, "✅ sheet %q: %d baris valid, %d baris kosong dilewati (division %s)\n",
				plan.Sheet, len(plan.Records), plan.Skipped, plan.Division)
			return nil
		},
	}
	cmd.Flags().StringVar(&division, "division", "", "Divisi pengimport: PLANNING atau DEPLOYMENT (wajib)")
	cmd.Flags().IntVar(&maxRows, "max-rows", importer.DefaultMaxRows, "Batas baris data")
	_ = cmd.MarkFlagRequired("division")
	return cmd
}

func validateFile(name string, r io.Reader, division string, maxRows int) (*importer.Plan, error) {
	wb, err := importer.ReadWorkbook(name, r)
	if err != nil {
		return nil, err
	}
	p := &importer.Pipeline{MaxRows: maxRows}
	return p.Validate(wb, division)
}

func newTemplateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "template OUT.xlsx",
		Short: "Tulis template import kosong",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Create(args[0])
			if err != nil {
				return err
			}
			if err := importer.WriteTemplate(f, importer.DefaultMaxRows); err != nil {
				_ = f.Close()
				return err
			}
			return f.Close()
		},
	}
}
