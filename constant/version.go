package constant

// Set with -ldflags "-X github.com/fwupd/fwupd-images/constant.Version=..."
var (
	Version   = "dev"
	BuildTime = "unknown"
)
