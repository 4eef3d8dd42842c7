package buildmeta

var (
	AppVersion  string
	BuildNumber string
)

// Use ldflags to set build metadata
// go build -ldflags "-X github.com/crispmark/lifion-kinesis/pkg/buildmeta.AppVersion=0.0.0 -X github.com/crispmark/lifion-kinesis/pkg/buildmeta.BuildNumber=dev1"
