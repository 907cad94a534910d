package assetgate

import "fmt"

var (
	major = 0
	minor = 1
	patch = 0
)

// StringVersion returns the service version in semantic form.
func StringVersion() string {
	return fmt.Sprintf("%d.%d.%d", major, minor, patch)
}
