package pdftrim_test

import (
	"errors"
	"math"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ironsheep/ink-tools/internal/ioerr"
	"github.com/ironsheep/ink-tools/internal/logger"
	"github.com/ironsheep/ink-tools/internal/pdftrim"
)

func trimTestLogger() *logger.Logger {
	return logger.New(
		logger.WithOutput(GinkgoWriter),
		logger.WithPrefix("[pdftrim-test] "),
		logger.WithFlags(0),
		logger.WithLevel(logger.LevelTrace),
	)
}

func expectValidationError(err error) {
	var ve *ioerr.ValidationError
	ExpectWithOffset(1, errors.As(err, &ve)).To(BeTrue(), "expected *ioerr.ValidationError, got %v", err)
}

var _ = Describe("ValidateThickness", func() {
	DescribeTable("accepting and rejecting values",
		func(thickness float64, valid bool) {
			err := pdftrim.ValidateThickness(thickness)
			if valid {
				Expect(err).NotTo(HaveOccurred())
			} else {
				expectValidationError(err)
			}
		},
		Entry("zero", 0.0, true),
		Entry("positive", 12.5, true),
		Entry("negative", -1.0, false),
		Entry("NaN", math.NaN(), false),
		Entry("infinity", math.Inf(1), false),
	)
})

var _ = Describe("Rect", func() {
	It("should inset symmetrically", func() {
		r := pdftrim.Rect{LLX: 0, LLY: 0, URX: 200, URY: 100}
		in := r.Inset(10)

		Expect(in).To(Equal(pdftrim.Rect{LLX: 10, LLY: 10, URX: 190, URY: 90}))
		Expect(in.Width()).To(Equal(r.Width() - 20))
		Expect(in.Height()).To(Equal(r.Height() - 20))

		cx, cy := in.Center()
		ox, oy := r.Center()
		Expect(cx).To(Equal(ox))
		Expect(cy).To(Equal(oy))
	})
})

var _ = Describe("Trimmer", func() {
	var (
		trimmer *pdftrim.Trimmer
		tempDir string
		input   string
		output  string
	)

	letter := box{0, 0, 612, 792}
	landscape := box{0, 0, 500, 400}
	framed := box{50, 50, 450, 350} // 400 x 300

	BeforeEach(func() {
		tempDir = GinkgoT().TempDir()
		input = filepath.Join(tempDir, "scan.pdf")
		output = filepath.Join(tempDir, "trimmed.pdf")

		writePDF(input, nil,
			pageSpec{media: &letter},
			pageSpec{media: &landscape, crop: &framed},
		)

		trimmer = pdftrim.New(trimTestLogger())
	})

	Context("reading page boxes", func() {
		It("should report media boxes and fall back to them for missing crop boxes", func() {
			boxes, err := trimmer.PageBoxes(input)
			Expect(err).NotTo(HaveOccurred())
			Expect(boxes).To(HaveLen(2))

			Expect(boxes[0].Page).To(Equal(1))
			Expect(boxes[0].MediaBox.Width()).To(BeNumerically("~", 612, 0.01))
			Expect(boxes[0].CropBox).To(Equal(boxes[0].MediaBox))

			Expect(boxes[1].CropBox.LLX).To(BeNumerically("~", 50, 0.01))
			Expect(boxes[1].CropBox.Width()).To(BeNumerically("~", 400, 0.01))
			Expect(boxes[1].CropBox.Height()).To(BeNumerically("~", 300, 0.01))
		})

		It("should resolve a media box inherited from the page tree", func() {
			inherited := filepath.Join(tempDir, "inherited.pdf")
			writePDF(inherited, &letter, pageSpec{}, pageSpec{})

			boxes, err := trimmer.PageBoxes(inherited)
			Expect(err).NotTo(HaveOccurred())
			Expect(boxes).To(HaveLen(2))
			for _, b := range boxes {
				Expect(b.MediaBox.Height()).To(BeNumerically("~", 792, 0.01))
			}
		})
	})

	Context("trimming", func() {
		DescribeTable("crop invariant",
			func(thickness float64) {
				before, err := trimmer.PageBoxes(input)
				Expect(err).NotTo(HaveOccurred())

				result, err := trimmer.Trim(input, output, thickness)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Pages).To(HaveLen(2))
				Expect(output).To(BeAnExistingFile())

				after, err := trimmer.PageBoxes(output)
				Expect(err).NotTo(HaveOccurred())
				Expect(after).To(HaveLen(len(before)))

				for i := range before {
					old, trimmed := before[i].CropBox, after[i].CropBox
					Expect(trimmed.Width()).To(BeNumerically("~", old.Width()-2*thickness, 0.01))
					Expect(trimmed.Height()).To(BeNumerically("~", old.Height()-2*thickness, 0.01))

					ocx, ocy := old.Center()
					ncx, ncy := trimmed.Center()
					Expect(ncx).To(BeNumerically("~", ocx, 0.01))
					Expect(ncy).To(BeNumerically("~", ocy, 0.01))

					Expect(after[i].MediaBox).To(Equal(before[i].MediaBox))
				}
			},
			Entry("zero thickness is the identity", 0.0),
			Entry("small border", 10.0),
			Entry("fractional border", 36.5),
			Entry("just under the limit of the smallest page", 149.5),
		)

		It("should use the existing crop box origin as reference", func() {
			_, err := trimmer.Trim(input, output, 20)
			Expect(err).NotTo(HaveOccurred())

			after, err := trimmer.PageBoxes(output)
			Expect(err).NotTo(HaveOccurred())
			Expect(after[1].CropBox.LLX).To(BeNumerically("~", 70, 0.01))
			Expect(after[1].CropBox.LLY).To(BeNumerically("~", 70, 0.01))
			Expect(after[1].CropBox.URX).To(BeNumerically("~", 430, 0.01))
			Expect(after[1].CropBox.URY).To(BeNumerically("~", 330, 0.01))
		})

		It("should report before and after boxes", func() {
			result, err := trimmer.Trim(input, output, 5)
			Expect(err).NotTo(HaveOccurred())

			Expect(result.Input).To(Equal(input))
			Expect(result.Output).To(Equal(output))
			Expect(result.Thickness).To(Equal(5.0))
			Expect(result.Pages[0].Before.URX).To(BeNumerically("~", 612, 0.01))
			Expect(result.Pages[0].After.URX).To(BeNumerically("~", 607, 0.01))
		})
	})

	Context("with an excessive border", func() {
		DescribeTable("rejecting thicknesses that would collapse a page",
			func(thickness float64) {
				_, err := trimmer.Trim(input, output, thickness)
				expectValidationError(err)
				Expect(output).NotTo(BeAnExistingFile())
			},
			Entry("exactly half the smaller side of the framed page", 150.0),
			Entry("larger than the page", 1000.0),
			Entry("negative", -3.0),
		)
	})

	Context("planning without writing", func() {
		It("should compute boxes and leave no output", func() {
			result, err := trimmer.Plan(input, 10)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Output).To(BeEmpty())
			Expect(result.Pages).To(HaveLen(2))
			Expect(result.Pages[1].After.LLX).To(BeNumerically("~", 60, 0.01))
			Expect(output).NotTo(BeAnExistingFile())
		})

		It("should apply the same validation", func() {
			_, err := trimmer.Plan(input, 400)
			expectValidationError(err)
		})
	})

	Context("with unreadable input", func() {
		It("should return a decode error for a missing file", func() {
			_, err := trimmer.Trim(filepath.Join(tempDir, "missing.pdf"), output, 10)

			var de *ioerr.DecodeError
			Expect(errors.As(err, &de)).To(BeTrue())
		})

		It("should return a decode error for a file that is not a PDF", func() {
			bogus := filepath.Join(tempDir, "bogus.pdf")
			Expect(os.WriteFile(bogus, []byte("hello, not a pdf"), 0644)).To(Succeed())

			_, err := trimmer.Trim(bogus, output, 10)

			var de *ioerr.DecodeError
			Expect(errors.As(err, &de)).To(BeTrue())
			Expect(output).NotTo(BeAnExistingFile())
		})
	})

	Context("with an unwritable output", func() {
		It("should return an encode error", func() {
			_, err := trimmer.Trim(input, filepath.Join(tempDir, "missing", "out.pdf"), 10)

			var ee *ioerr.EncodeError
			Expect(errors.As(err, &ee)).To(BeTrue())
		})
	})
})
