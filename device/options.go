package device

import (
	"io"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

const (
	// defaultMaxQueues is the number of queues retrieved from the compute queue family when
	// CreateOptions.MaxQueues is left at zero
	defaultMaxQueues int = 2
)

// CreateOptions contains optional settings when creating a Device
type CreateOptions struct {
	// Flags indicates specific device behaviors to activate or deactivate
	Flags CreateFlags

	// MaxQueues caps how many queues of the compute queue family are handed out by
	// Device.AllocateQueue. The queue family's own QueueCount is never exceeded. Zero
	// means 2.
	MaxQueues int
}

func (o CreateOptions) queueCount(familyQueueCount int) int {
	maxQueues := o.MaxQueues
	if maxQueues == 0 {
		maxQueues = defaultMaxQueues
	}

	if familyQueueCount < maxQueues {
		return familyQueueCount
	}
	return maxQueues
}

type fileOptions struct {
	MaxQueues              int  `yaml:"maxQueues"`
	ExternallySynchronized bool `yaml:"externallySynchronized"`
}

// LoadOptions reads CreateOptions from a YAML document such as:
//
//	maxQueues: 4
//	externallySynchronized: true
//
// Unknown keys are rejected. An empty document yields the zero CreateOptions.
func LoadOptions(reader io.Reader) (CreateOptions, error) {
	var fileOpts fileOptions

	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)
	err := decoder.Decode(&fileOpts)
	if err != nil && !errors.Is(err, io.EOF) {
		return CreateOptions{}, errors.Wrap(err, "could not parse device options")
	}

	if fileOpts.MaxQueues < 0 {
		return CreateOptions{}, errors.Newf("maxQueues must not be negative, but was %d", fileOpts.MaxQueues)
	}

	options := CreateOptions{
		MaxQueues: fileOpts.MaxQueues,
	}
	if fileOpts.ExternallySynchronized {
		options.Flags |= CreateExternallySynchronized
	}

	return options, nil
}
