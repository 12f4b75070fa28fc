package version

import "fmt"

// SynthesizerVersion indicates what version of the synthesizer the binary belongs to
var SynthesizerVersion string

// GitCommit indicates which git commit the binary was built from
var GitCommit string

// String returns a pretty string concatenation of SynthesizerVersion and GitCommit
func String() string {
	return fmt.Sprintf("Synthesizer Version:    %s\n Git commit: %s\n", SynthesizerVersion, GitCommit)
}
