package pdftrim

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/ironsheep/ink-tools/internal/logger"
)

func onePagePDF() []byte {
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 100 100] /Resources << >> >>",
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, body := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, body)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

var _ = Describe("reading a PDF", func() {
	It("should parse once with the trimmer's own configuration", func() {
		path := filepath.Join(GinkgoT().TempDir(), "one.pdf")
		Expect(os.WriteFile(path, onePagePDF(), 0644)).To(Succeed())

		trimmer := New(logger.New(logger.WithOutput(GinkgoWriter), logger.WithFlags(0)))
		ctx, err := trimmer.read(path)
		Expect(err).NotTo(HaveOccurred())

		Expect(ctx.Configuration).To(BeIdenticalTo(trimmer.conf))
		Expect(ctx.Configuration.ValidationMode).To(Equal(model.ValidationRelaxed))
		Expect(ctx.PageCount).To(Equal(1))
	})
})
