package structure

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/illikainen/go-utils/src/errorx"
	"github.com/illikainen/go-utils/src/iofs"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

type Document struct {
	Items []*Node `json:"items" yaml:"items"`
	Path  string  `json:"-"     yaml:"-"`
}

func Load(path string) (*Document, error) {
	log.Debugf("decoding %s", path)

	data, err := iofs.ReadFile(path)
	if err != nil {
		return nil, err
	}

	doc, err := Decode(data, filepath.Ext(path))
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}

	doc.Path, err = filepath.Abs(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return doc, nil
}

func Decode(data []byte, ext string) (*Document, error) {
	doc := &Document{}

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		err := yaml.Unmarshal(data, doc)
		if err != nil {
			return nil, errors.WithStack(err)
		}
	default:
		decoder := json.NewDecoder(bytes.NewReader(data))
		err := decoder.Decode(doc)
		if err != nil {
			return nil, errors.WithStack(err)
		}
	}

	if doc.Items == nil {
		return nil, errors.Errorf("missing \"items\"")
	}

	return doc, nil
}

// Dir is the directory that relative from_file values are resolved against.
func (d *Document) Dir() string {
	if d.Path == "" {
		return "."
	}
	return filepath.Dir(d.Path)
}

func (d *Document) Problems() []*ConfigurationError {
	var problems []*ConfigurationError

	var visit func(node *Node, path string)
	visit = func(node *Node, path string) {
		path = filepath.Join(path, node.Name)

		var cerr *ConfigurationError
		if err := Check(node, path); errors.As(err, &cerr) {
			problems = append(problems, cerr)
		}

		for _, child := range node.Children {
			visit(child, path)
		}
	}

	for _, item := range d.Items {
		visit(item, string(os.PathSeparator))
	}

	return problems
}

func (d *Document) Validate() error {
	errs := []error{}
	for _, problem := range d.Problems() {
		errs = append(errs, problem)
	}

	if len(errs) == 0 {
		return nil
	}
	return errorx.Join(errs...)
}
