package structure

import (
	"strings"
)

type Kind int

const (
	KindNone Kind = iota
	KindDirectory
	KindFile
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return ""
	case KindDirectory:
		return "directory"
	case KindFile:
		return "file"
	}
	return "unknown"
}

// Unrecognized tags decode to KindUnknown rather than failing so that the
// walker decides whether they are an error.
func (k *Kind) UnmarshalText(text []byte) error {
	switch strings.TrimSpace(string(text)) {
	case "":
		*k = KindNone
	case "directory":
		*k = KindDirectory
	case "file":
		*k = KindFile
	default:
		*k = KindUnknown
	}
	return nil
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

type Condition int

const (
	ConditionNone Condition = iota
	ConditionParentNotEmpty
	ConditionUnknown
)

func (c Condition) String() string {
	switch c {
	case ConditionNone:
		return ""
	case ConditionParentNotEmpty:
		return "when-parent-not-empty"
	}
	return "unknown"
}

func (c *Condition) UnmarshalText(text []byte) error {
	switch strings.TrimSpace(string(text)) {
	case "":
		*c = ConditionNone
	case "when-parent-not-empty":
		*c = ConditionParentNotEmpty
	default:
		*c = ConditionUnknown
	}
	return nil
}

func (c Condition) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type Source int

const (
	SourceUnknown Source = iota
	SourceRaw
	SourceFile
	SourceURL
	SourceS3
)

func (s Source) String() string {
	switch s {
	case SourceRaw:
		return "raw"
	case SourceFile:
		return "from_file"
	case SourceURL:
		return "from_url"
	case SourceS3:
		return "from_s3"
	}
	return "unknown"
}

func (s *Source) UnmarshalText(text []byte) error {
	switch strings.TrimSpace(string(text)) {
	case "raw":
		*s = SourceRaw
	case "from_file":
		*s = SourceFile
	case "from_url":
		*s = SourceURL
	case "from_s3":
		*s = SourceS3
	default:
		*s = SourceUnknown
	}
	return nil
}

func (s Source) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type Content struct {
	Source Source `json:"source" yaml:"source"`
	Value  string `json:"value"  yaml:"value"`
}

type Node struct {
	Name           string    `json:"name"                      yaml:"name"`
	Kind           Kind      `json:"type"                      yaml:"type"`
	Children       []*Node   `json:"children,omitempty"        yaml:"children,omitempty"`
	DefaultContent *Content  `json:"default_content,omitempty" yaml:"default_content,omitempty"`
	Condition      Condition `json:"condition,omitempty"       yaml:"condition,omitempty"`
}

func (n *Node) HasChildren() bool {
	return len(n.Children) > 0
}

// Recognized reports whether the node maps to a filesystem action.
func (n *Node) Recognized() bool {
	return n.Kind == KindDirectory || n.Kind == KindFile
}
