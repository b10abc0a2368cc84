package pdftrim_test

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	. "github.com/onsi/gomega"
)

type box [4]float64

func (b box) pdf() string {
	return fmt.Sprintf("[%g %g %g %g]", b[0], b[1], b[2], b[3])
}

type pageSpec struct {
	media *box // nil inherits from the page tree root
	crop  *box
}

// writePDF writes a minimal, well-formed PDF with one page per pageSpec and a
// correct cross-reference table. rootMedia, when set, is placed on the Pages
// node and inherited by pages without their own MediaBox.
func writePDF(path string, rootMedia *box, pages ...pageSpec) {
	var buf bytes.Buffer
	offsets := []int{0}

	object := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets)-1, body)
	}

	buf.WriteString("%PDF-1.4\n")

	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 3+2*i)
	}

	object("<< /Type /Catalog /Pages 2 0 R >>")

	root := fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d", strings.Join(kids, " "), len(pages))
	if rootMedia != nil {
		root += " /MediaBox " + rootMedia.pdf()
	}
	object(root + " >>")

	for i, p := range pages {
		page := "<< /Type /Page /Parent 2 0 R"
		if p.media != nil {
			page += " /MediaBox " + p.media.pdf()
		}
		if p.crop != nil {
			page += " /CropBox " + p.crop.pdf()
		}
		page += fmt.Sprintf(" /Resources << >> /Contents %d 0 R >>", 4+2*i)
		object(page)

		content := "0 0 m 100 100 l S"
		object(fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content))
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets))
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets[1:] {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets), xref)

	Expect(os.WriteFile(path, buf.Bytes(), 0644)).To(Succeed())
}
