package version

import "fmt"

// Populated at build time via -ldflags "-X ...".
var (
	Version   = "dev"
	GitCommit = "HEAD"
)

func FriendlyVersion() string {
	return fmt.Sprintf("%s (%s)", Version, GitCommit)
}
