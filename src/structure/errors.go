package structure

import (
	"fmt"
)

type ConfigurationError struct {
	Path   string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

// Check returns a ConfigurationError if the node itself (not its children)
// carries a tag the walker cannot act on.
func Check(node *Node, path string) error {
	switch node.Kind {
	case KindNone:
		if !node.HasChildren() {
			return &ConfigurationError{Path: path, Reason: "missing type"}
		}
	case KindUnknown:
		return &ConfigurationError{Path: path, Reason: "unrecognized type"}
	}

	if node.Condition == ConditionUnknown {
		return &ConfigurationError{Path: path, Reason: "unrecognized condition"}
	}

	if node.DefaultContent != nil {
		if node.Kind != KindFile {
			return &ConfigurationError{Path: path, Reason: "default_content is only valid for files"}
		}
		if node.DefaultContent.Source == SourceUnknown {
			return &ConfigurationError{Path: path, Reason: "unrecognized content source"}
		}
	}

	return nil
}
