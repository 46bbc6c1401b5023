package workbook_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/xuri/excelize/v2"

	"github.com/san-kum/kinograph/internal/kinematics"
	"github.com/san-kum/kinograph/internal/workbook"
)

func writeSheet(path string, rows [][]interface{}) {
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		Expect(err).NotTo(HaveOccurred())
		Expect(f.SetSheetRow("Sheet1", cell, &row)).To(Succeed())
	}
	Expect(f.SaveAs(path)).To(Succeed())
}

var _ = Describe("Workbook", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	Describe("Write and Load", func() {
		It("round-trips a table and skips the header row", func() {
			path := filepath.Join(dir, workbook.DefaultPath)
			table := kinematics.Table{{1, 0, -10}, {0.99975, -0.05, -9.9475}, {0.5, 0.25, -5.25}}

			Expect(workbook.Write(path, table)).To(Succeed())

			loaded, err := workbook.Load(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded).To(Equal(table))
		})

		It("writes the column labels as header", func() {
			path := filepath.Join(dir, "out.xlsx")
			Expect(workbook.Write(path, kinematics.Table{{1, 2, 3}})).To(Succeed())

			f, err := excelize.OpenFile(path)
			Expect(err).NotTo(HaveOccurred())
			defer f.Close()

			rows, err := f.GetRows("Sheet1")
			Expect(err).NotTo(HaveOccurred())
			Expect(rows[0]).To(Equal([]string{"Position [m]", "Velocity [m/s]", "Acceleration [m/s^2]"}))
		})

		It("loads the same table on repeated reads", func() {
			path := filepath.Join(dir, "out.xlsx")
			Expect(workbook.Write(path, kinematics.Table{{1, 2, 3}, {4, 5, 6}})).To(Succeed())

			first, err := workbook.Load(path)
			Expect(err).NotTo(HaveOccurred())
			second, err := workbook.Load(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(second).To(Equal(first))
		})

		It("refuses to write short rows", func() {
			err := workbook.Write(filepath.Join(dir, "out.xlsx"), kinematics.Table{{1, 2}})
			Expect(err).To(MatchError(kinematics.ErrShortRow))
		})
	})

	Describe("Load failures", func() {
		expectLoadError := func(err error, cause error) {
			var loadErr *workbook.LoadError
			Expect(errors.As(err, &loadErr)).To(BeTrue())
			Expect(loadErr.Message()).To(Equal("Please close the output file and try again."))
			Expect(errors.Is(err, workbook.ErrFileAccess)).To(BeTrue())
			if cause != nil {
				Expect(errors.Is(err, cause)).To(BeTrue())
			}
		}

		It("reports a missing file without panicking", func() {
			var (
				table kinematics.Table
				err   error
			)
			Expect(func() {
				table, err = workbook.Load(filepath.Join(dir, "missing.xlsx"))
			}).NotTo(Panic())
			Expect(table).To(BeNil())
			expectLoadError(err, fs.ErrNotExist)
		})

		It("rejects a file that is not a spreadsheet", func() {
			path := filepath.Join(dir, "garbage.xlsx")
			Expect(os.WriteFile(path, []byte("not a zip archive"), 0644)).To(Succeed())

			_, err := workbook.Load(path)
			expectLoadError(err, nil)
		})

		It("rejects a sheet with only a header", func() {
			path := filepath.Join(dir, "header.xlsx")
			writeSheet(path, [][]interface{}{{"Position [m]", "Velocity [m/s]", "Acceleration [m/s^2]"}})

			_, err := workbook.Load(path)
			expectLoadError(err, workbook.ErrSchema)
		})

		It("rejects rows with fewer than three columns", func() {
			path := filepath.Join(dir, "narrow.xlsx")
			writeSheet(path, [][]interface{}{{"x", "v"}, {1.0, 2.0}})

			_, err := workbook.Load(path)
			expectLoadError(err, workbook.ErrSchema)
		})

		It("rejects non-numeric cells", func() {
			path := filepath.Join(dir, "text.xlsx")
			writeSheet(path, [][]interface{}{{"x", "v", "a"}, {1.0, "fast", 3.0}})

			_, err := workbook.Load(path)
			expectLoadError(err, workbook.ErrSchema)
			Expect(err.Error()).To(ContainSubstring("row 2 column 2"))
		})
	})
})
