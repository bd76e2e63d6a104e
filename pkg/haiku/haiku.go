package haiku

import (
	"time"

	"github.com/yelinaung/go-haikunator"
)

// Name returns the haiku ("adjective-noun-NNNN") for a seed. The same seed
// always gives the same name.
func Name(seed int64) string {
	return haikunator.New(seed).Haikunate()
}

// RunName names one run of the tool, seeded from the clock.
func RunName() string {
	return Name(time.Now().UnixNano())
}
