package synthesis_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestSynthesis(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Synthesis Suite")
}
