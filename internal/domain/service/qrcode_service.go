package service

// QRCodeService defines the interface for QR code generation. Used to
// render the payment reference a buyer scans for electronic orders.
type QRCodeService interface {
	// GenerateQRCode encodes the content as a PNG QR code.
	GenerateQRCode(content string) ([]byte, error)
}
