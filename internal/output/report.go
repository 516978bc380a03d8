package output

import "fmt"

// Created reports a successful file write.
func Created(path string) {
	Println(FormatFileLine(path, StatusCreated))
}

// Registered reports a name newly appended to a registry file.
func Registered(name, registry string) {
	Println(FormatFileLine(registry, StatusRegistered) + StyleDim.Render(fmt.Sprintf(" (%s)", name)))
}

// AlreadyRegistered reports a registry append that was a no-op.
func AlreadyRegistered(name, registry string) {
	Println(FormatFileLine(registry, StatusUnchanged) + StyleDim.Render(fmt.Sprintf(" (%s already registered)", name)))
}

// Summary prints a bold completion line prefixed with a checkmark.
func Summary(msg string) {
	Println(FormatCheckmark(StyleSummary.Render(msg)))
}
