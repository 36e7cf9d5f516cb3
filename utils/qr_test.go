package utils

import (
	"bytes"
	"image/png"
	"testing"
)

func TestGenerateQRCodeProducesDecodablePNG(t *testing.T) {
	data, err := GenerateQRCode("ORD-9F3A21C4", 256)
	if err != nil {
		t.Fatalf("GenerateQRCode: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a valid PNG: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 256 || bounds.Dy() != 256 {
		t.Fatalf("QR image is %dx%d, want 256x256", bounds.Dx(), bounds.Dy())
	}
}

func TestOrderMailTemplateRendersItems(t *testing.T) {
	data := OrderConfirmationData{
		OrderCode: "ORD-AB12CD34",
		Items: []OrderConfirmationItem{
			{MovieName: "Life", Amount: 2, Price: 39.5},
		},
		Total: 79,
	}

	var body bytes.Buffer
	if err := orderMailTemplate.Execute(&body, data); err != nil {
		t.Fatalf("template: %v", err)
	}

	out := body.String()
	for _, want := range []string{"ORD-AB12CD34", "Life", "2 x 39.50", "79.00"} {
		if !bytes.Contains(body.Bytes(), []byte(want)) {
			t.Fatalf("rendered mail missing %q:\n%s", want, out)
		}
	}
}
