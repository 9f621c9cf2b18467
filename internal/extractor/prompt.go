package extractor

import "strings"

// BuildTradeDocumentPrompt returns the extraction instruction sent ahead of
// the document parts. The field list and the missing-field sentinel come from
// configuration; both have changed between prompt revisions.
func BuildTradeDocumentPrompt(fields []string, sentinel string) string {
	var b strings.Builder
	b.WriteString("You are a trade documentation assistant. Analyze the attached trade documents")
	b.WriteString(" (commercial invoice, packing list, and/or bill of lading) and extract the following fields:\n\n")
	for _, f := range fields {
		b.WriteString("- ")
		b.WriteString(f)
		b.WriteString("\n")
	}
	b.WriteString("\nPresent the extracted values as a clearly labeled list, one field per line.\n")
	b.WriteString("If a field is not present in any of the provided documents, report its value as \"")
	b.WriteString(sentinel)
	b.WriteString("\" rather than omitting it.\n")
	b.WriteString("Do not invent values. Use only what appears in the documents.")
	return b.String()
}
