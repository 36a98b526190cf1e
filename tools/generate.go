//go:build generate

package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"strings"

	"github.com/illikainen/scaffold/src/metadata"

	"github.com/illikainen/go-utils/src/errorx"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func main() {
	err := writeMetadata("src/metadata/metadata.json")
	if err != nil {
		log.Fatalf("%s", err)
	}
}

func git(args ...string) (string, error) {
	cmd := exec.Command("git", args...) // #nosec G204
	out, err := cmd.Output()
	if err != nil {
		return "", errors.WithStack(err)
	}
	return strings.Trim(string(out), "\r\n"), nil
}

func writeMetadata(file string) (err error) {
	commit, err := git("rev-parse", "HEAD")
	if err != nil {
		return err
	}

	branch, err := git("rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return err
	}

	version := os.Getenv("SCAFFOLD_VERSION")
	if version == "" {
		version = "0.0.0"
	}

	data, err := json.MarshalIndent(metadata.Metadata{
		Name:    "scaffold",
		Version: version,
		Commit:  commit,
		Branch:  branch,
	}, "", "    ")
	if err != nil {
		return err
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer errorx.Defer(f.Close, &err)

	data = append(data, '\n')
	n, err := f.Write(data)
	if err != nil {
		return err
	}
	if n != len(data) {
		return errors.Errorf("invalid write")
	}

	return nil
}
