package burstbuffer

import "github.com/wlmkit/dataparser/registry"

func init() {
	registry.Register(newAllocDescriptor())
}
