package scaffold

import "strings"

// BaseRequirements are always the first lines of requirements.txt.
var BaseRequirements = []string{
	"fastapi==0.115.12",
	"uvicorn==0.34.2",
	"pydantic==2.11.4",
	"python-dotenv==1.1.0",
}

// Manifest composes requirements.txt.
type Manifest struct {
	// Features are the per-feature lines, already in declaration order.
	Features []string

	// Extra is the raw --dependencies literal.
	Extra string
}

// String renders the manifest: the base block, then feature lines, then the
// extra literal. Every line is newline-terminated.
func (m Manifest) String() string {
	var sb strings.Builder
	for _, line := range BaseRequirements {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	for _, line := range m.Features {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	if m.Extra != "" {
		sb.WriteString(m.Extra)
		if !strings.HasSuffix(m.Extra, "\n") {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
