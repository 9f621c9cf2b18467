package domain

// SlotRole identifies one of the three fixed upload slots.
type SlotRole string

const (
	SlotInvoice      SlotRole = "invoice"
	SlotPackingList  SlotRole = "packing_list"
	SlotBillOfLading SlotRole = "bill_of_lading"
)

// SlotOrder is the canonical slot ordering used when assembling model
// requests, independent of the order files arrive in.
var SlotOrder = []SlotRole{SlotInvoice, SlotPackingList, SlotBillOfLading}

// Label returns the human-readable name of the slot.
func (s SlotRole) Label() string {
	switch s {
	case SlotInvoice:
		return "Commercial Invoice"
	case SlotPackingList:
		return "Packing List"
	case SlotBillOfLading:
		return "Bill of Lading"
	default:
		return string(s)
	}
}

// FileType represents the allowed file types for upload.
type FileType string

const (
	FileTypePDF FileType = "pdf"
	FileTypeJPG FileType = "jpg"
	FileTypePNG FileType = "png"
)

// AllowedFileTypes maps FileType to its MIME content type.
var AllowedFileTypes = map[FileType]string{
	FileTypePDF: "application/pdf",
	FileTypeJPG: "image/jpeg",
	FileTypePNG: "image/png",
}

// AllowedContentTypes maps MIME content types back to FileType.
var AllowedContentTypes = map[string]FileType{
	"application/pdf": FileTypePDF,
	"image/jpeg":      FileTypeJPG,
	"image/png":       FileTypePNG,
}

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"pdf":  FileTypePDF,
	"jpg":  FileTypeJPG,
	"jpeg": FileTypeJPG,
	"png":  FileTypePNG,
}

// ExtractionStatus represents the lifecycle of a single extraction attempt.
type ExtractionStatus string

const (
	ExtractionStatusIdle      ExtractionStatus = "idle"
	ExtractionStatusEncoding  ExtractionStatus = "encoding"
	ExtractionStatusAwaiting  ExtractionStatus = "awaiting_response"
	ExtractionStatusSucceeded ExtractionStatus = "succeeded"
	ExtractionStatusFailed    ExtractionStatus = "failed"
)
