package version

// Set at build time via -ldflags.
var (
	Version = "dev"
	Commit  = ""
)

func GetInfo() string {
	if Commit == "" {
		return Version
	}
	return Version + " (" + Commit + ")"
}
